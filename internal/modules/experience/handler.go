package experience

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/response"
	"wayfarer/internal/repository"
)

const defaultPageSize = 12

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hosts/:id/experiences", h.ListExperiences)
}

func (h *Handler) ListExperiences(c *gin.Context) {
	hostID, ok := actingHostID(c)
	if !ok {
		return
	}

	page, ok := intQuery(c, "page", 1)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", defaultPageSize)
	if !ok {
		return
	}

	rows, total, err := h.service.List(c.Request.Context(), hostID, ListParams{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, rows, response.NewPagination(page, limit, total))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ownership.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "Host not found")
	case errors.Is(err, ErrInvalidStatus):
		response.Fail(c, http.StatusBadRequest, "Unknown experience status filter")
	default:
		response.Internal(c, http.StatusInternalServerError,
			"Failed to list experiences", repository.DiagnosticCode(err))
	}
}

func actingHostID(c *gin.Context) (int64, bool) {
	pathID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Host id must be numeric")
		return 0, false
	}
	if pathID != c.GetInt64("user_id") {
		response.Fail(c, http.StatusNotFound, "Host not found")
		return 0, false
	}
	return pathID, true
}

func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, name+" must be numeric")
		return 0, false
	}
	return v, true
}
