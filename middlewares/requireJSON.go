package middlewares

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects POST and PUT requests that carry a body with any
// content type other than application/json.
func RequireJSON() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		method := ctx.Request.Method
		if method != http.MethodPost && method != http.MethodPut {
			ctx.Next()
			return
		}
		if ctx.Request.ContentLength == 0 && ctx.GetHeader("Content-Type") == "" {
			ctx.Next()
			return
		}

		mediaType, _, err := mime.ParseMediaType(ctx.GetHeader("Content-Type"))
		if err != nil || mediaType != "application/json" {
			ctx.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"message": "Content-Type must be application/json",
				"error":   "unsupported media type",
			})
			return
		}
		ctx.Next()
	}
}
