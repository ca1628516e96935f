package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopkart/admin-api/internal/application/service"
	"github.com/shopkart/admin-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the dashboard summary statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetTopCities returns the top-5 city ranking
func (h *DashboardHandler) GetTopCities(c *gin.Context) {
	cities, err := h.dashboardService.GetTopCities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// GetAnalytics returns the analytics chart data
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.GetAnalytics())
}
