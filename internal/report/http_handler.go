package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"catalogapi/internal/httpx"
	"catalogapi/internal/jobs"

	"github.com/gin-gonic/gin"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes wires the report endpoints. Both require authentication.
func (h *HTTPHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	protected := rg.Group("")
	protected.Use(authRequired)
	protected.POST("/reports", h.Create)
	protected.GET("/reports/:id", h.GetByID)
}

type reportView struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	RequestedBy string          `json:"requested_by"`
	Result      json.RawMessage `json:"result,omitempty"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

func toView(rep Report) reportView {
	view := reportView{
		ID:          rep.ID,
		Status:      rep.Status,
		RequestedBy: rep.RequestedBy,
		Error:       rep.Error,
		CreatedAt:   rep.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   rep.UpdatedAt.Format(time.RFC3339),
	}
	if len(rep.ResultJSON) > 0 {
		view.Result = json.RawMessage(rep.ResultJSON)
	}
	return view
}

// Create handles POST /reports
// @Summary Request a market report
// @Description Enqueue asynchronous generation of a listings market report
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 202 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /reports [post]
func (h *HTTPHandler) Create(c *gin.Context) {
	rep, err := h.service.Request(c.Request.Context(), httpx.UserIDFrom(c))
	if err != nil {
		if errors.Is(err, jobs.ErrQueueFull) || errors.Is(err, jobs.ErrStopped) {
			httpx.JSONError(c, http.StatusServiceUnavailable, "QUEUE_UNAVAILABLE", "Report queue is unavailable, try again later", nil)
			return
		}
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessAccepted(c, toView(rep))
}

// GetByID handles GET /reports/{id}
// @Summary Get report by ID
// @Description Get the status and, once completed, the result of a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /reports/{id} [get]
func (h *HTTPHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	rep, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Report not found", nil)
			return
		}
		httpx.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(c, toView(rep), nil)
}
