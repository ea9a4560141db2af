package middleware

import (
	"net/http"

	"github.com/shivaji43/mymuseum/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware turns errors attached to the context into the
// standard error envelope. A *utils.CustomError keeps its status code,
// anything else becomes a 500.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
