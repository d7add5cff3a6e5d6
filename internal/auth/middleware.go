package auth

import (
	"net/http"
	"strings"

	"catalogapi/internal/httpx"

	"github.com/gin-gonic/gin"
)

// Middleware validates the Bearer token and stores the user identity on the
// request context for downstream handlers.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			httpx.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or malformed Authorization header", nil)
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := ParseToken(secret, token)
		if err != nil {
			httpx.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
			return
		}

		httpx.SetUser(c, claims.Sub, claims.Role)
		c.Next()
	}
}
