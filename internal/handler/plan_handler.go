package handler

import (
	"github.com/GreenRoute/service-ecoroute/internal/application"
	"github.com/GreenRoute/service-ecoroute/internal/response"
	"github.com/gin-gonic/gin"
)

// PlanHandler handles HTTP requests for route plans.
type PlanHandler struct {
	service *application.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(service *application.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// RegisterRoutes registers the plan routes on the given router group.
func (h *PlanHandler) RegisterRoutes(r *gin.RouterGroup) {
	routes := r.Group("/api/v1/routes")
	{
		routes.POST("/plan", h.PlanRoute)
	}
}

// PlanRoute handles POST /api/v1/routes/plan.
func (h *PlanHandler) PlanRoute(c *gin.Context) {
	var req application.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.PlanRoute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
