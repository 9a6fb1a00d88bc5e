package middleware

import (
	"Alkhabir/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware renders the last error pushed by a handler
func ErrorHandlerMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			if customErr.StatusCode >= http.StatusInternalServerError {
				log.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
			}
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}

		// anything else is an internal error
		log.Error("Unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
