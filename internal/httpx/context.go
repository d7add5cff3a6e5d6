package httpx

import "github.com/gin-gonic/gin"

const (
	userIDKey    = "userID"
	roleKey      = "role"
	requestIDKey = "requestID"
)

// UserIDFrom retrieves the authenticated user ID from the gin context.
func UserIDFrom(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// RoleFrom retrieves the authenticated user role from the gin context.
func RoleFrom(c *gin.Context) string {
	return c.GetString(roleKey)
}

// SetUser stores the user ID and role on the gin context.
func SetUser(c *gin.Context, userID, role string) {
	c.Set(userIDKey, userID)
	c.Set(roleKey, role)
}

// RequestIDFrom retrieves the request ID from the gin context.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func setRequestID(c *gin.Context, requestID string) {
	c.Set(requestIDKey, requestID)
}
