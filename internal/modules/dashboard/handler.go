package dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/response"
	"wayfarer/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hosts/:id/dashboard", h.GetOverview)
	rg.GET("/hosts/:id/experiences/stats", h.GetExperienceStats)
}

func (h *Handler) GetOverview(c *gin.Context) {
	hostID, ok := actingHostID(c)
	if !ok {
		return
	}

	overview, err := h.service.Overview(c.Request.Context(), hostID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, overview)
}

func (h *Handler) GetExperienceStats(c *gin.Context) {
	hostID, ok := actingHostID(c)
	if !ok {
		return
	}

	stats, err := h.service.ExperienceOverview(c.Request.Context(), hostID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, http.StatusOK, stats)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, ownership.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, "Host not found")
		return
	}
	response.Internal(c, http.StatusInternalServerError,
		"Failed to compute dashboard statistics", repository.DiagnosticCode(err))
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
