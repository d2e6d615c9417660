package booking

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
	rg.GET("/hosts/:id/bookings", h.ListBookings)
	rg.GET("/hosts/:id/bookings/:bookingId", h.GetBooking)
	rg.PUT("/hosts/:id/bookings/:bookingId/status", h.UpdateStatus)
}

func (h *Handler) ListBookings(c *gin.Context) {
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

	var experienceID int64
	if raw := c.Query("experience_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "experience_id must be numeric")
			return
		}
		experienceID = id
	}

	rows, total, err := h.service.List(c.Request.Context(), hostID, ListParams{
		Status:       c.Query("status"),
		ExperienceID: experienceID,
		Sort:         c.Query("sort"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, rows, response.NewPagination(page, limit, total))
}

func (h *Handler) GetBooking(c *gin.Context) {
	hostID, ok := actingHostID(c)
	if !ok {
		return
	}
	bookingID, ok := int64Param(c, "bookingId")
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), hostID, bookingID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	hostID, ok := actingHostID(c)
	if !ok {
		return
	}
	bookingID, ok := int64Param(c, "bookingId")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Transition(c.Request.Context(), hostID, bookingID, req.Status, req.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithMessage(c, http.StatusOK, updated, "Booking status updated")
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ownership.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrInvalidStatus):
		response.Fail(c, http.StatusBadRequest,
			"Invalid status. Valid statuses: pending, confirmed, cancelled, completed")
	default:
		response.Internal(c, http.StatusInternalServerError,
			"Failed to process booking request", repository.DiagnosticCode(err))
	}
}

// actingHostID requires the path host id to match the authenticated caller.
// A mismatch is reported as not found so ids stay unenumerable.
func actingHostID(c *gin.Context) (int64, bool) {
	pathID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Host id must be numeric")
		return 0, false
	}
	if pathID != c.GetInt64("user_id") {
		response.Fail(c, http.StatusNotFound, "Booking not found")
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
