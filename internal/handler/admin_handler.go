package handler

import (
	"github.com/GreenRoute/service-ecoroute/internal/application"
	"github.com/GreenRoute/service-ecoroute/internal/response"
	"github.com/gin-gonic/gin"
)

// AdminTripHandler exposes aggregate trip statistics.
type AdminTripHandler struct {
	service *application.TripService
}

// NewAdminTripHandler creates a new AdminTripHandler.
func NewAdminTripHandler(service *application.TripService) *AdminTripHandler {
	return &AdminTripHandler{service: service}
}

// RegisterRoutes registers the admin routes on the given router group.
func (h *AdminTripHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/api/v1/admin")
	{
		admin.GET("/trips/stats", h.GetTripStats)
	}
}

// GetTripStats handles GET /api/v1/admin/trips/stats.
func (h *AdminTripHandler) GetTripStats(c *gin.Context) {
	stats, err := h.service.GetTripStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, stats)
}
