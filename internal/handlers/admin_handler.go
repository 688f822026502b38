package handlers

import (
	"net/http"

	"servicehub_backend/internal/middleware"
	"servicehub_backend/internal/models"
	"servicehub_backend/internal/repositories"
	"servicehub_backend/internal/services"
	"servicehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the management panels: vendors, customers,
// payments and categories. Every route is admin-only.
type AdminHandler struct {
	*BaseHandler
	adminService *services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AccountStatusGuard(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/vendors", h.ListVendors)
		admin.PUT("/vendors/:vendorId/status", h.SetVendorStatus)

		admin.GET("/customers", h.ListCustomers)
		admin.PUT("/customers/:customerId/status", h.SetCustomerStatus)

		admin.GET("/payments", h.ListPayments)
		admin.PUT("/payments/:paymentId/status", h.SetPaymentStatus)

		admin.GET("/categories", h.ListCategories)
		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:categoryId/toggle", h.ToggleCategory)
	}
}

// --- Vendors ---

func (h *AdminHandler) ListVendors(c *gin.Context) {
	filters := repositories.UserFilters{Search: c.Query("search")}
	filters.Page, filters.PageSize = ParsePagination(c)

	resp, err := h.adminService.ListVendors(c.Request.Context(), models.VendorStatus(c.Query("status")), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetVendorStatus(c *gin.Context) {
	var req dto.UpdateVendorStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	vendor, err := h.adminService.SetVendorStatus(c.Request.Context(), c.Param("vendorId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// --- Customers ---

func (h *AdminHandler) ListCustomers(c *gin.Context) {
	filters := repositories.UserFilters{Search: c.Query("search")}
	filters.Page, filters.PageSize = ParsePagination(c)

	resp, err := h.adminService.ListCustomers(c.Request.Context(), models.CustomerStatus(c.Query("status")), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetCustomerStatus(c *gin.Context) {
	var req dto.UpdateCustomerStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	customer, err := h.adminService.SetCustomerStatus(c.Request.Context(), c.Param("customerId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// --- Payments ---

func (h *AdminHandler) ListPayments(c *gin.Context) {
	resp, err := h.adminService.ListPayments(c.Request.Context(), models.PaymentStatus(c.Query("status")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetPaymentStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payment, err := h.adminService.SetPaymentStatus(c.Request.Context(), c.Param("paymentId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// --- Categories ---

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.adminService.ListCategories(c.Request.Context(), models.CategoryType(c.Query("type")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.adminService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

func (h *AdminHandler) ToggleCategory(c *gin.Context) {
	category, err := h.adminService.ToggleCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}
