package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				// Never expose internal error details to clients; log them
				// server-side instead.
				logger.Log.Error("unhandled request error",
					"path", c.FullPath(), "error", err.Error())
				response.Error(c, http.StatusInternalServerError,
					"An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
