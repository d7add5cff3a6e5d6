package httpx

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := RequestIDFrom(c)
				log.Printf("panic recovered: request_id=%s error=%v stack=%s", requestID, err, string(debug.Stack()))

				if !c.Writer.Written() {
					JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
				} else {
					c.Abort()
				}
			}
		}()
		c.Next()
	}
}
