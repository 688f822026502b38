package repositories

import (
	"context"

	"servicehub_backend/internal/dashboard"
	"servicehub_backend/internal/models"

	"gorm.io/gorm"
)

type JobFilters struct {
	Status   models.JobStatus
	Category string
	Search   string
	Page     int
	PageSize int
}

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// UpdateStatus writes only the status (and optional reason) column.
func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status models.JobStatus, reason *string) error {
	updates := map[string]interface{}{"status": status}
	if reason != nil {
		updates["cancel_reason"] = *reason
	}
	return r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Updates(updates).Error
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id).Error
}

func (r *JobRepository) BulkUpdateStatus(ctx context.Context, ids []string, status models.JobStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Job{}).Where("id IN ?", ids).Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *JobRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}

// List applies the panel filters with pagination and fills per-job bid
// counts.
func (r *JobRepository) List(ctx context.Context, filters JobFilters) ([]models.Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filters.PageSize > 0 {
		page := filters.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filters.PageSize).Limit(filters.PageSize)
	}

	var jobs []models.Job
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	if err := r.fillBidCounts(ctx, jobs); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	if err := r.fillBidCounts(ctx, jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) ListAssignedToVendor(ctx context.Context, vendorID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("assigned_vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// StatsForCustomer computes the dashboard summary server-side. It must
// agree with dashboard.DeriveStats over ListByCustomer for the same
// customer.
func (r *JobRepository) StatsForCustomer(ctx context.Context, customerID string) (dashboard.Stats, error) {
	var stats dashboard.Stats
	row := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_jobs,
			COUNT(*) FILTER (WHERE status IN ('OPEN', 'IN_PROGRESS')) AS active_jobs,
			COUNT(*) FILTER (WHERE status = 'COMPLETED') AS completed_jobs,
			COALESCE((SELECT COUNT(*) FROM bids WHERE bids.job_id IN
				(SELECT id FROM jobs WHERE customer_id = ?)), 0) AS total_bids
		FROM jobs WHERE customer_id = ?
	`, customerID, customerID).Row()
	err := row.Scan(&stats.TotalJobs, &stats.ActiveJobs, &stats.CompletedJobs, &stats.TotalBids)
	return stats, err
}

// CancelExpired cancels open jobs whose deadline has passed. Used by the
// background worker.
func (r *JobRepository) CancelExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE jobs
		SET status = 'CANCELLED', cancel_reason = 'deadline expired', updated_at = NOW()
		WHERE status = 'OPEN'
		AND deadline IS NOT NULL
		AND deadline < NOW()
	`)
	return result.RowsAffected, result.Error
}

func (r *JobRepository) fillBidCounts(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}

	type jobCount struct {
		JobID string
		Count int64
	}
	var counts []jobCount
	err := r.db.WithContext(ctx).Model(&models.Bid{}).
		Select("job_id, COUNT(*) AS count").
		Where("job_id IN ?", ids).
		Group("job_id").
		Scan(&counts).Error
	if err != nil {
		return err
	}

	byJob := make(map[string]int64, len(counts))
	for _, c := range counts {
		byJob[c.JobID] = c.Count
	}
	for i := range jobs {
		jobs[i].BidCount = byJob[jobs[i].ID]
	}
	return nil
}
