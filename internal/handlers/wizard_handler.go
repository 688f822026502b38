package handlers

import (
	"net/http"

	"servicehub_backend/internal/middleware"
	"servicehub_backend/internal/models"
	"servicehub_backend/internal/services"
	"servicehub_backend/internal/services/dto"
	"servicehub_backend/internal/wizard"

	"github.com/gin-gonic/gin"
)

type WizardHandler struct {
	*BaseHandler
	wizardService *services.WizardService
}

func NewWizardHandler(base *BaseHandler, wizardService *services.WizardService) *WizardHandler {
	return &WizardHandler{
		BaseHandler:   base,
		wizardService: wizardService,
	}
}

func (h *WizardHandler) RegisterRoutes(r *gin.RouterGroup) {
	// The catalog is static; no auth needed to browse it.
	r.GET("/catalog", h.GetCatalog)

	w := r.Group("/wizard")
	w.Use(middleware.AuthMiddleware(), middleware.AccountStatusGuard(), middleware.RequireRoles(models.UserRoleCustomer, models.UserRoleAdmin))
	{
		w.POST("/drafts", h.StartDraft)
		w.GET("/drafts/:draftId", h.GetDraft)
		w.PATCH("/drafts/:draftId", h.UpdateDraft)
		w.POST("/drafts/:draftId/category", h.SelectCategory)
		w.POST("/drafts/:draftId/advance", h.Advance)
		w.POST("/drafts/:draftId/back", h.Back)
		w.POST("/drafts/:draftId/images", h.AttachImages)
		w.DELETE("/drafts/:draftId/images/:imageId", h.RemoveImage)
		w.POST("/drafts/:draftId/submit", h.Submit)
		w.DELETE("/drafts/:draftId", h.CancelDraft)
	}
}

func (h *WizardHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"catalog": wizard.Catalog()})
}

func (h *WizardHandler) StartDraft(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.StartWizardRequest
	if c.Request.ContentLength > 0 && !h.BindAndValidate_JSON(c, &req) {
		return
	}

	draft, err := h.wizardService.Start(c.Request.Context(), userID, req.JobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"draft": draft})
}

func (h *WizardHandler) GetDraft(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	draft, err := h.wizardService.Get(c.Request.Context(), userID, c.Param("draftId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateDraftRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	draft, err := h.wizardService.Update(c.Request.Context(), userID, c.Param("draftId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *WizardHandler) SelectCategory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SelectCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	draft, err := h.wizardService.SelectCategory(c.Request.Context(), userID, c.Param("draftId"), req.Category, req.ServiceType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Advance runs the current step's gate. A gate failure keeps the draft on
// its step; the stored draft records the failure either way.
func (h *WizardHandler) Advance(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	draft, err := h.wizardService.Advance(c.Request.Context(), userID, c.Param("draftId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *WizardHandler) Back(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	draft, exited, err := h.wizardService.Back(c.Request.Context(), userID, c.Param("draftId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if exited {
		c.JSON(http.StatusOK, gin.H{"exited": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *WizardHandler) AttachImages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AttachImagesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	draft, err := h.wizardService.AttachImages(c.Request.Context(), userID, c.Param("draftId"), req.Names)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *WizardHandler) RemoveImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	draft, err := h.wizardService.RemoveImage(c.Request.Context(), userID, c.Param("draftId"), c.Param("imageId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *WizardHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.wizardService.Submit(c.Request.Context(), userID, c.Param("draftId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func (h *WizardHandler) CancelDraft(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.wizardService.Cancel(c.Request.Context(), userID, c.Param("draftId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft cancelled"})
}
