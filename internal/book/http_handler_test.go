package book_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"catalogapi/internal/book"
	"catalogapi/internal/book/mocks"
	"catalogapi/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopAuth(c *gin.Context) { c.Next() }

func newBookRouter(repo book.Repository) *gin.Engine {
	router := testutil.NewRouter()
	handler := book.NewHTTPHandler(book.NewService(repo))
	handler.RegisterRoutes(router.Group("/api/v1"), noopAuth)
	return router
}

func TestBookHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		setupMock      func(m *mocks.MockRepository)
		expectedStatus int
	}{
		{
			name:        "success - empty list",
			queryParams: "?page=1&page_size=20",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Return([]book.Book{}, 0, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success - with books",
			queryParams: "?page=1&page_size=20",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Return([]book.Book{testutil.TestBook}, 1, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success - with author filter",
			queryParams: "?author=Test+Author",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q book.Query) ([]book.Book, int, error) {
						assert.Equal(t, "Test Author", q.Author)
						return []book.Book{testutil.TestBook}, 1, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success - with search query",
			queryParams: "?q=test",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q book.Query) ([]book.Book, int, error) {
						assert.Equal(t, "test", q.Q)
						return []book.Book{}, 0, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "page size capped at 100",
			queryParams: "?page_size=1000",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q book.Query) ([]book.Book, int, error) {
						assert.Equal(t, 100, q.Limit)
						return []book.Book{}, 0, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "server error",
			queryParams: "",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Return(nil, 0, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := mocks.NewMockRepository(ctrl)
			tt.setupMock(mockRepo)

			router := newBookRouter(mockRepo)
			rec := testutil.PerformRequest(router, http.MethodGet, "/api/v1/books"+tt.queryParams, nil, nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestBookHandler_GetByID(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMock      func(m *mocks.MockRepository)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "found",
			id:   testutil.TestBook.ID,
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					GetByID(gomock.Any(), testutil.TestBook.ID).
					Return(testutil.TestBook, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					GetByID(gomock.Any(), "missing-id").
					Return(book.Book{}, book.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name: "server error",
			id:   "boom",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					GetByID(gomock.Any(), "boom").
					Return(book.Book{}, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := mocks.NewMockRepository(ctrl)
			tt.setupMock(mockRepo)

			router := newBookRouter(mockRepo)
			rec := testutil.PerformRequest(router, http.MethodGet, "/api/v1/books/"+tt.id, nil, nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				var resp struct {
					Success bool `json:"success"`
					Error   struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedCode, resp.Error.Code)
			}
		})
	}
}

func TestBookHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		payload        string
		setupMock      func(m *mocks.MockRepository)
		expectedStatus int
	}{
		{
			name:    "created",
			payload: `{"title":"Dune","author":"Frank Herbert","description":"Sand.","published_date":"1965-08-01"}`,
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *book.Book) error {
						assert.NotEmpty(t, b.ID)
						assert.Equal(t, "Dune", b.Title)
						assert.False(t, b.CreatedAt.IsZero())
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			payload:        `{"author":"Frank Herbert"}`,
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad published date",
			payload:        `{"title":"Dune","author":"Frank Herbert","published_date":"August 1965"}`,
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			payload:        `{"title":`,
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "repo error",
			payload: `{"title":"Dune","author":"Frank Herbert"}`,
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := mocks.NewMockRepository(ctrl)
			tt.setupMock(mockRepo)

			router := newBookRouter(mockRepo)
			rec := testutil.PerformRequest(router, http.MethodPost, "/api/v1/books", strings.NewReader(tt.payload), nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestBookHandler_Update(t *testing.T) {
	payload := `{"title":"Dune Messiah","author":"Frank Herbert"}`

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *book.Book) error {
				assert.Equal(t, testutil.TestBook.ID, b.ID)
				assert.Equal(t, "Dune Messiah", b.Title)
				return nil
			})
		mockRepo.EXPECT().
			GetByID(gomock.Any(), testutil.TestBook.ID).
			Return(testutil.TestBook, nil)

		router := newBookRouter(mockRepo)
		rec := testutil.PerformRequest(router, http.MethodPut, "/api/v1/books/"+testutil.TestBook.ID, strings.NewReader(payload), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(book.ErrNotFound)

		router := newBookRouter(mockRepo)
		rec := testutil.PerformRequest(router, http.MethodPut, "/api/v1/books/missing-id", strings.NewReader(payload), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		router := newBookRouter(mockRepo)
		rec := testutil.PerformRequest(router, http.MethodPut, "/api/v1/books/some-id", strings.NewReader(`{}`), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			Delete(gomock.Any(), testutil.TestBook.ID).
			Return(nil)

		router := newBookRouter(mockRepo)
		rec := testutil.PerformRequest(router, http.MethodDelete, "/api/v1/books/"+testutil.TestBook.ID, nil, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := mocks.NewMockRepository(ctrl)

		mockRepo.EXPECT().
			Delete(gomock.Any(), "missing-id").
			Return(book.ErrNotFound)

		router := newBookRouter(mockRepo)
		rec := testutil.PerformRequest(router, http.MethodDelete, "/api/v1/books/missing-id", nil, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
