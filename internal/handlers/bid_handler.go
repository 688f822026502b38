package handlers

import (
	"net/http"

	"servicehub_backend/internal/middleware"
	"servicehub_backend/internal/models"
	"servicehub_backend/internal/services"
	"servicehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	*BaseHandler
	bidService  *services.BidService
	authService *services.AuthService
}

func NewBidHandler(base *BaseHandler, bidService *services.BidService, authService *services.AuthService) *BidHandler {
	return &BidHandler{
		BaseHandler: base,
		bidService:  bidService,
		authService: authService,
	}
}

func (h *BidHandler) RegisterRoutes(r *gin.RouterGroup) {
	vendor := r.Group("/jobs/:jobId/bids")
	vendor.Use(middleware.AuthMiddleware(), middleware.AccountStatusGuard())
	{
		vendor.POST("", middleware.RequireRoles(models.UserRoleVendor), h.PlaceBid)
		vendor.GET("", h.ListBids)
	}

	bids := r.Group("/bids")
	bids.Use(middleware.AuthMiddleware(), middleware.AccountStatusGuard(), middleware.RequireRoles(models.UserRoleCustomer, models.UserRoleAdmin))
	{
		bids.POST("/:bidId/accept", h.AcceptBid)
		bids.POST("/:bidId/reject", h.RejectBid)
	}
}

func (h *BidHandler) PlaceBid(c *gin.Context) {
	vendorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PlaceBidRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	bid, err := h.bidService.PlaceBid(c.Request.Context(), vendorID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bid": bid})
}

func (h *BidHandler) ListBids(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	bids, err := h.bidService.ListForJob(c.Request.Context(), actor, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bids": bids})
}

func (h *BidHandler) AcceptBid(c *gin.Context) {
	customerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bid, err := h.bidService.Accept(c.Request.Context(), customerID, c.Param("bidId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bid": bid})
}

func (h *BidHandler) RejectBid(c *gin.Context) {
	customerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.bidService.Reject(c.Request.Context(), customerID, c.Param("bidId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bid rejected"})
}

func (h *BidHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return nil, false
	}
	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}
	return user, true
}
