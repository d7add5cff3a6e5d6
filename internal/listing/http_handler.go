package listing

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

// RegisterRoutes wires the listing endpoints. Mutations go through authRequired.
func (h *HTTPHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("/listings", h.List)
	rg.GET("/listings/:id", h.GetByID)

	protected := rg.Group("")
	protected.Use(authRequired)
	protected.POST("/listings", h.Create)
	protected.PUT("/listings/:id", h.Update)
	protected.DELETE("/listings/:id", h.Delete)
}

type listingReq struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Location    string  `json:"location" binding:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
}

// List handles GET /listings
// @Summary List listings
// @Description Get all listings with filters and pagination
// @Tags listings
// @Produce json
// @Param location query string false "Filter by location"
// @Param q query string false "Search in name, location and description"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort query string false "Sort column (created_at, price, name)"
// @Param desc query bool false "Sort descending"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /listings [get]
func (h *HTTPHandler) List(c *gin.Context) {
	params := Query{
		Location: c.Query("location"),
		Q:        c.Query("q"),
		Sort:     c.Query("sort"),
		Desc:     c.Query("desc") == "true",
	}

	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if val, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			params.MinPrice = &val
		}
	}
	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if val, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			params.MaxPrice = &val
		}
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

	listings, total, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if listings == nil {
		listings = []Listing{}
	}

	httpx.JSONSuccess(c, listings, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// GetByID handles GET /listings/{id}
// @Summary Get listing by ID
// @Description Get a single listing by its ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /listings/{id} [get]
func (h *HTTPHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Listing not found", nil)
			return
		}
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(c, l, nil)
}

// Create handles POST /listings
// @Summary Create a listing
// @Description Create a new listing record
// @Tags listings
// @Accept json
// @Produce json
// @Param listing body listingReq true "Listing data"
// @Security Bearer
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /listings [post]
func (h *HTTPHandler) Create(c *gin.Context) {
	var req listingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", httpx.BindingErrors(err))
		return
	}

	l := Listing{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.service.Create(c.Request.Context(), &l); err != nil {
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(c, l)
}

// Update handles PUT /listings/{id}
// @Summary Update a listing
// @Description Replace the fields of an existing listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param listing body listingReq true "Listing data"
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /listings/{id} [put]
func (h *HTTPHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req listingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", httpx.BindingErrors(err))
		return
	}

	l := Listing{
		ID:          id,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.service.Update(c.Request.Context(), &l); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Listing not found", nil)
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

// Delete handles DELETE /listings/{id}
// @Summary Delete a listing
// @Description Delete a listing by its ID
// @Tags listings
// @Param id path string true "Listing ID"
// @Security Bearer
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /listings/{id} [delete]
func (h *HTTPHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Listing not found", nil)
			return
		}
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessNoContent(c)
}
