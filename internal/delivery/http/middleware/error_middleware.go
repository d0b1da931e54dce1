package middleware

import (
	"errors"
	"net/http"

	"contact-relay/internal/delivery/http/response"
	"contact-relay/pkg/apperror"
	"contact-relay/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed",
					"request_id", response.RequestID(c),
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Text(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error", "request_id", response.RequestID(c), "error", err)
		response.Text(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
