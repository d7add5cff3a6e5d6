package user

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"catalogapi/internal/auth"
	"catalogapi/internal/httpx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const accessTokenTTL = 15 * time.Minute

type HTTPHandler struct {
	repo   Repository
	secret string
}

func NewHTTPHandler(repo Repository, secret string) *HTTPHandler {
	return &HTTPHandler{repo: repo, secret: secret}
}

// RegisterRoutes wires the auth endpoints.
func (h *HTTPHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.GET("/me", authRequired, h.GetCurrentUser)
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,password_strength"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register
// @Summary Register new user
// @Description Create a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body registerReq true "User registration data"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /auth/register [post]
func (h *HTTPHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", httpx.BindingErrors(err))
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	_, err := h.repo.GetByEmail(c.Request.Context(), req.Email)
	if err == nil {
		httpx.JSONError(c, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)
		return
	}
	if !errors.Is(err, ErrNotFound) {
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	now := time.Now().UTC().Truncate(time.Second)
	newUser := &User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Username:  req.Username,
		Password:  hashedPassword,
		Role:      "USER",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.repo.Create(c.Request.Context(), newUser); err != nil {
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(c, map[string]any{
		"id":       newUser.ID,
		"email":    newUser.Email,
		"username": newUser.Username,
		"role":     newUser.Role,
	})
}

// Login handles POST /auth/login
// @Summary Login user
// @Description Authenticate user and issue an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body loginReq true "Login credentials"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /auth/login [post]
func (h *HTTPHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", httpx.BindingErrors(err))
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	u, err := h.repo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.VerifyPassword(u.Password, req.Password) {
		httpx.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, u.ID, u.Role, accessTokenTTL)
	if err != nil {
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(c, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(accessTokenTTL.Seconds()),
	}, nil)
}

// GetCurrentUser handles GET /me
// @Summary Get current user
// @Description Get currently authenticated user details
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /me [get]
func (h *HTTPHandler) GetCurrentUser(c *gin.Context) {
	userID := httpx.UserIDFrom(c)
	if userID == "" {
		httpx.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	u, err := h.repo.GetByID(c.Request.Context(), userID)
	if err != nil {
		httpx.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	httpx.JSONSuccess(c, map[string]any{
		"id":       u.ID,
		"email":    u.Email,
		"username": u.Username,
		"role":     u.Role,
	}, nil)
}
