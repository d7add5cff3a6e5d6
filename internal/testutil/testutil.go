// Package testutil holds shared fixtures and helpers for handler tests.
package testutil

import (
	"io"
	"net/http/httptest"
	"time"

	"catalogapi/internal/auth"
	"catalogapi/internal/book"
	"catalogapi/internal/listing"
	"catalogapi/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Secret is the JWT secret used across handler tests.
const Secret = "test-secret"

// TestUser is a fixture user for testing.
var TestUser = user.User{
	ID:        "test-user-id-123",
	Username:  "testuser",
	Email:     "test@example.com",
	Password:  "hashedpassword",
	Role:      "USER",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestBook is a fixture book for testing.
var TestBook = book.Book{
	ID:            "test-book-id-789",
	Title:         "Test Book Title",
	Author:        "Test Author",
	Description:   "A test book description",
	PublishedDate: "2020-01-01",
	CreatedAt:     time.Now(),
	UpdatedAt:     time.Now(),
}

// TestListing is a fixture listing for testing.
var TestListing = listing.Listing{
	ID:          "test-listing-id-456",
	Name:        "Test Listing",
	Location:    "Lisbon",
	Description: "A test listing description",
	Price:       120.50,
	CreatedAt:   time.Now(),
	UpdatedAt:   time.Now(),
}

// GenerateTestToken generates a valid JWT token for testing.
func GenerateTestToken(secret, userID, role string) string {
	token, _ := auth.GenerateToken(secret, userID, role, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired JWT token for testing.
func GenerateExpiredToken(secret, userID, role string) string {
	c := auth.Claims{
		Sub:  userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRouter returns a quiet gin engine for tests.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// PerformRequest runs a request through the router and returns the recorder.
func PerformRequest(router *gin.Engine, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// AuthHeader builds an Authorization header for the given token.
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
