package story

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/response"
	"wayfarer/internal/repository"
)

const defaultPageSize = 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/host-dashboard/comments", h.ListComments)
	rg.PUT("/host-dashboard/comments/:commentId", h.Moderate)
}

func (h *Handler) ListComments(c *gin.Context) {
	hostID := c.GetInt64("user_id")

	page, ok := intQuery(c, "page", 1)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", defaultPageSize)
	if !ok {
		return
	}

	rows, total, err := h.service.ListComments(c.Request.Context(), hostID, ListParams{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, rows, response.NewPagination(page, limit, total))
}

func (h *Handler) Moderate(c *gin.Context) {
	hostID := c.GetInt64("user_id")

	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid commentId")
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Approved == nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.service.Moderate(c.Request.Context(), hostID, commentID, *req.Approved)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithMessage(c, http.StatusOK, comment, "Comment updated")
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ownership.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "Comment not found")
	case errors.Is(err, ErrInvalidFilter):
		response.Fail(c, http.StatusBadRequest, "status must be approved, pending or all")
	default:
		response.Internal(c, http.StatusInternalServerError,
			"Failed to process comment request", repository.DiagnosticCode(err))
	}
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
