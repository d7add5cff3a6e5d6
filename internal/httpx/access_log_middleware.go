package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func AccessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		log.Printf("access method=%s path=%s status=%d bytes=%d duration_ms=%d request_id=%s user_id=%s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.Writer.Size(),
			duration.Milliseconds(),
			RequestIDFrom(c),
			UserIDFrom(c),
		)
	}
}
