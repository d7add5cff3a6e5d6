package book

import (
	"errors"
	"net/http"
	"strconv"

	"catalogapi/internal/httpx"

	"github.com/gin-gonic/gin"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes wires the book endpoints. Mutations go through authRequired.
func (h *HTTPHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("/books", h.List)
	rg.GET("/books/:id", h.GetByID)

	protected := rg.Group("")
	protected.Use(authRequired)
	protected.POST("/books", h.Create)
	protected.PUT("/books/:id", h.Update)
	protected.DELETE("/books/:id", h.Delete)
}

type bookReq struct {
	Title         string `json:"title" binding:"required,max=255"`
	Author        string `json:"author" binding:"required,max=255"`
	Description   string `json:"description"`
	PublishedDate string `json:"published_date" binding:"omitempty,datetime=2006-01-02"`
}

// List handles GET /books
// @Summary List books
// @Description Get all books with filters and pagination
// @Tags books
// @Produce json
// @Param author query string false "Filter by author"
// @Param q query string false "Search in title, author and description"
// @Param sort query string false "Sort column (title, author, created_at, published_date)"
// @Param desc query bool false "Sort descending"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(c *gin.Context) {
	params := Query{
		Author: c.Query("author"),
		Q:      c.Query("q"),
		Sort:   c.Query("sort"),
		Desc:   c.Query("desc") == "true",
	}

	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	switch {
	case pageSize <= 0:
		pageSize = 20
	case pageSize > 100:
		pageSize = 100
	}
	params.Limit = pageSize
	params.Offset = (page - 1) * pageSize

	books, total, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.JSONSuccess(c, books, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// GetByID handles GET /books/{id}
// @Summary Get book by ID
// @Description Get a single book by its ID
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(c, b, nil)
}

// Create handles POST /books
// @Summary Create a book
// @Description Create a new book record
// @Tags books
// @Accept json
// @Produce json
// @Param book body bookReq true "Book data"
// @Security Bearer
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(c *gin.Context) {
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", httpx.BindingErrors(err))
		return
	}

	b := Book{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		PublishedDate: req.PublishedDate,
	}
	if err := h.service.Create(c.Request.Context(), &b); err != nil {
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(c, b)
}

// Update handles PUT /books/{id}
// @Summary Update a book
// @Description Replace the fields of an existing book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body bookReq true "Book data"
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [put]
func (h *HTTPHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", httpx.BindingErrors(err))
		return
	}

	b := Book{
		ID:            id,
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		PublishedDate: req.PublishedDate,
	}
	if err := h.service.Update(c.Request.Context(), &b); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	updated, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(c, updated, nil)
}

// Delete handles DELETE /books/{id}
// @Summary Delete a book
// @Description Delete a book by its ID
// @Tags books
// @Param id path string true "Book ID"
// @Security Bearer
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessNoContent(c)
}
