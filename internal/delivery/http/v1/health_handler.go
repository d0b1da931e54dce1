package v1

import (
	"net/http"

	"contact-relay/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// NewHealthHandler registers the liveness route. It never depends on mail
// configuration.
func NewHealthHandler(r gin.IRoutes) {
	r.GET("/", Liveness)
}

// Liveness godoc
// @Summary      Liveness
// @Description  Liveness check. Answers regardless of mail configuration.
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "Server running"
// @Router       / [get]
func Liveness(c *gin.Context) {
	response.Text(c, http.StatusOK, "Server running")
}
