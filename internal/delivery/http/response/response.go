package response

import (
	"github.com/gin-gonic/gin"
)

// Text sends a plain text response. Every route of the relay answers in
// plain text, errors included.
func Text(c *gin.Context, code int, message string) {
	c.String(code, message)
}

// RequestID returns the id assigned by the RequestID middleware, if any
func RequestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
