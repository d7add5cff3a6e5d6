package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalogapi/internal/httpx"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Middleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": httpx.UserIDFrom(c),
			"role":    httpx.RoleFrom(c),
		})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_ValidToken(t *testing.T) {
	router := newProtectedRouter("secret")

	token, err := GenerateToken("secret", "user-1", "ADMIN", time.Hour)
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
	assert.Contains(t, rec.Body.String(), "ADMIN")
}

func TestMiddleware_MissingHeader(t *testing.T) {
	router := newProtectedRouter("secret")

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	router := newProtectedRouter("secret")

	rec := doRequest(router, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_InvalidToken(t *testing.T) {
	router := newProtectedRouter("secret")

	token, err := GenerateToken("other-secret", "user-1", "USER", time.Hour)
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
