package middleware

import (
	"errors"
	"net/http"

	"ajans99-backend/internal/delivery/http/response"
	"ajans99-backend/internal/domain"
	"ajans99-backend/pkg/apperror"
	"ajans99-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the gin context into the JSON
// envelope. Internal detail (provider bodies, wrapped errors) is logged and
// never sent to the client.
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
				logger.Log.Error("request failed",
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unexpected error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, domain.MsgGenericError)
	}
}
