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

type JobHandler struct {
	*BaseHandler
	jobService  *services.JobService
	authService *services.AuthService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService, authService *services.AuthService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		authService: authService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware(), middleware.AccountStatusGuard())
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/export", h.ExportJobs)
		jobs.GET("/:jobId", h.GetJob)
		jobs.PUT("/:jobId/status", h.UpdateJobStatus)
		jobs.DELETE("/:jobId", h.DeleteJob)
	}

	admin := r.Group("/admin/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/bulk/status", h.BulkUpdateStatus)
		admin.POST("/bulk/delete", h.BulkDelete)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	filters := h.parseFilters(c)

	jobs, total, err := h.jobService.List(c.Request.Context(), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	pages := int64(0)
	if filters.PageSize > 0 {
		pages = (total + int64(filters.PageSize) - 1) / int64(filters.PageSize)
	}
	c.JSON(http.StatusOK, dto.JobListResponse{
		Jobs:  jobs,
		Total: total,
		Page:  filters.Page,
		Pages: pages,
	})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	jobID := c.Param("jobId")
	if err := h.jobService.UpdateStatus(c.Request.Context(), actor, jobID, req.Status, req.Reason); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Re-read so the caller renders the row the database now holds.
	job, err := h.jobService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), actor, c.Param("jobId"), c.Query("reason")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// BulkUpdateStatus applies one transition to many jobs; rows the
// transition is illegal for are skipped and the applied count returned.
func (h *JobHandler) BulkUpdateStatus(c *gin.Context) {
	var req dto.BulkJobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	updated, err := h.jobService.BulkUpdateStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"updated":   updated,
		"requested": len(req.IDs),
	})
}

func (h *JobHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkJobDeleteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	deleted, err := h.jobService.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deleted":   deleted,
		"requested": len(req.IDs),
	})
}

func (h *JobHandler) ExportJobs(c *gin.Context) {
	format := c.DefaultQuery("format", "json")

	data, contentType, err := h.jobService.Export(c.Request.Context(), format, h.parseFilters(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	filename := "jobs." + format
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

func (h *JobHandler) parseFilters(c *gin.Context) repositories.JobFilters {
	filters := repositories.JobFilters{
		Status:   models.JobStatus(c.Query("status")),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	filters.Page, filters.PageSize = ParsePagination(c)
	return filters
}

func (h *JobHandler) currentUser(c *gin.Context) (*models.User, bool) {
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
