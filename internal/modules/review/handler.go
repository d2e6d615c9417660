package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/response"
	"wayfarer/internal/repository"
)

const defaultPageSize = 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hosts/:id/reviews", h.ListReviews)
	rg.PUT("/hosts/:id/reviews/:reviewId/respond", h.Respond)
	rg.DELETE("/hosts/:id/reviews/:reviewId/respond", h.ClearResponse)
}

func (h *Handler) ListReviews(c *gin.Context) {
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
	rating, ok := intQuery(c, "rating", 0)
	if !ok {
		return
	}

	rows, total, err := h.service.List(c.Request.Context(), hostID, ListParams{
		Rating: rating,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, rows, response.NewPagination(page, limit, total))
}

func (h *Handler) Respond(c *gin.Context) {
	hostID, ok := actingHostID(c)
	if !ok {
		return
	}
	reviewID, ok := int64Param(c, "reviewId")
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rv, err := h.service.Respond(c.Request.Context(), hostID, reviewID, req.Response)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithMessage(c, http.StatusOK, rv, "Response saved")
}

func (h *Handler) ClearResponse(c *gin.Context) {
	hostID, ok := actingHostID(c)
	if !ok {
		return
	}
	reviewID, ok := int64Param(c, "reviewId")
	if !ok {
		return
	}

	rv, err := h.service.ClearResponse(c.Request.Context(), hostID, reviewID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithMessage(c, http.StatusOK, rv, "Response removed")
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ownership.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "Review not found")
	case errors.Is(err, ErrEmptyResponse):
		response.Fail(c, http.StatusBadRequest, "Response text cannot be empty")
	case errors.Is(err, ErrResponseTooLong):
		response.Fail(c, http.StatusBadRequest, "Response text exceeds 2000 characters")
	case errors.Is(err, ErrInvalidRating):
		response.Fail(c, http.StatusBadRequest, "Rating filter must be between 1 and 5")
	default:
		response.Internal(c, http.StatusInternalServerError,
			"Failed to process review request", repository.DiagnosticCode(err))
	}
}

func actingHostID(c *gin.Context) (int64, bool) {
	pathID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Host id must be numeric")
		return 0, false
	}
	if pathID != c.GetInt64("user_id") {
		response.Fail(c, http.StatusNotFound, "Review not found")
		return 0, false
	}
	return pathID, true
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
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
