package handlers

import (
	"net/http"

	"servicehub_backend/internal/middleware"
	"servicehub_backend/internal/models"
	"servicehub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService *services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware(), middleware.AccountStatusGuard())
	{
		dash.GET("/customer", middleware.RequireRoles(models.UserRoleCustomer, models.UserRoleAdmin), h.CustomerDashboard)
		dash.GET("/vendor", middleware.RequireRoles(models.UserRoleVendor, models.UserRoleAdmin), h.VendorDashboard)
	}
}

func (h *DashboardHandler) CustomerDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.dashboardService.CustomerDashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) VendorDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.dashboardService.VendorDashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
