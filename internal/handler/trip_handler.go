package handler

import (
	"strconv"

	"github.com/GreenRoute/service-ecoroute/internal/application"
	"github.com/GreenRoute/service-ecoroute/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TripHandler handles HTTP requests for the trip history.
type TripHandler struct {
	service *application.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(service *application.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// RegisterRoutes registers the trip routes on the given router group.
func (h *TripHandler) RegisterRoutes(r *gin.RouterGroup) {
	trips := r.Group("/api/v1/trips")
	{
		trips.GET("", h.ListTrips)
		trips.GET("/:id", h.GetTrip)
	}
}

// ListTrips handles GET /api/v1/trips.
func (h *TripHandler) ListTrips(c *gin.Context) {
	page, limit := parsePagination(c)

	items, total, err := h.service.ListTrips(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, items, total, page, limit)
}

// GetTrip handles GET /api/v1/trips/:id.
func (h *TripHandler) GetTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid trip ID")
		return
	}

	result, err := h.service.GetTrip(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parsePagination extracts page and limit query parameters with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}
