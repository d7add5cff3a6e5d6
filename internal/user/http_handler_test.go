package user_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"catalogapi/internal/auth"
	"catalogapi/internal/testutil"
	"catalogapi/internal/user"
	"catalogapi/internal/user/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRouter(repo user.Repository) *gin.Engine {
	router := testutil.NewRouter()
	handler := user.NewHTTPHandler(repo, testutil.Secret)
	handler.RegisterRoutes(router.Group("/api/v1"), auth.Middleware(testutil.Secret))
	return router
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), "new@example.com").
			Return(user.User{}, user.ErrNotFound)
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		router := newUserRouter(mockRepo)
		payload := `{"email":"new@example.com","username":"newuser","password":"Password1"}`
		rec := testutil.PerformRequest(router, http.MethodPost, "/api/v1/auth/register", strings.NewReader(payload), nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("email already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), testutil.TestUser.Email).
			Return(testutil.TestUser, nil)

		router := newUserRouter(mockRepo)
		payload := `{"email":"test@example.com","username":"testuser","password":"Password1"}`
		rec := testutil.PerformRequest(router, http.MethodPost, "/api/v1/auth/register", strings.NewReader(payload), nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("weak password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		router := newUserRouter(mockRepo)
		payload := `{"email":"new@example.com","username":"newuser","password":"short"}`
		rec := testutil.PerformRequest(router, http.MethodPost, "/api/v1/auth/register", strings.NewReader(payload), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Error struct {
				Code    string `json:"code"`
				Details []struct {
					Field string `json:"field"`
				} `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		require.NotEmpty(t, resp.Error.Details)
		assert.Equal(t, "password", resp.Error.Details[0].Field)
	})
}

func TestUserHandler_Login(t *testing.T) {
	hashed, err := auth.HashPassword("Password1")
	require.NoError(t, err)

	stored := testutil.TestUser
	stored.Password = hashed

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), stored.Email).
			Return(stored, nil)

		router := newUserRouter(mockRepo)
		payload := `{"email":"test@example.com","password":"Password1"}`
		rec := testutil.PerformRequest(router, http.MethodPost, "/api/v1/auth/login", strings.NewReader(payload), nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				AccessToken string `json:"access_token"`
				TokenType   string `json:"token_type"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.AccessToken)
		assert.Equal(t, "Bearer", resp.Data.TokenType)

		claims, err := auth.ParseToken(testutil.Secret, resp.Data.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, claims.Sub)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), stored.Email).
			Return(stored, nil)

		router := newUserRouter(mockRepo)
		payload := `{"email":"test@example.com","password":"WrongPassword1"}`
		rec := testutil.PerformRequest(router, http.MethodPost, "/api/v1/auth/login", strings.NewReader(payload), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), "nobody@example.com").
			Return(user.User{}, user.ErrNotFound)

		router := newUserRouter(mockRepo)
		payload := `{"email":"nobody@example.com","password":"Password1"}`
		rec := testutil.PerformRequest(router, http.MethodPost, "/api/v1/auth/login", strings.NewReader(payload), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_GetCurrentUser(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			GetByID(gomock.Any(), testutil.TestUser.ID).
			Return(testutil.TestUser, nil)

		router := newUserRouter(mockRepo)
		token := testutil.GenerateTestToken(testutil.Secret, testutil.TestUser.ID, testutil.TestUser.Role)
		rec := testutil.PerformRequest(router, http.MethodGet, "/api/v1/me", nil, testutil.AuthHeader(token))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		router := newUserRouter(mockRepo)
		rec := testutil.PerformRequest(router, http.MethodGet, "/api/v1/me", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		router := newUserRouter(mockRepo)
		token := testutil.GenerateExpiredToken(testutil.Secret, testutil.TestUser.ID, testutil.TestUser.Role)
		rec := testutil.PerformRequest(router, http.MethodGet, "/api/v1/me", nil, testutil.AuthHeader(token))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
