package repositories

import (
	"context"

	"servicehub_backend/internal/models"

	"gorm.io/gorm"
)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) Create(ctx context.Context, bid *models.Bid) error {
	return r.db.WithContext(ctx).Create(bid).Error
}

func (r *BidRepository) GetByID(ctx context.Context, id string) (*models.Bid, error) {
	var bid models.Bid
	if err := r.db.WithContext(ctx).First(&bid, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepository) ListByJob(ctx context.Context, jobID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("submitted_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepository) ListByVendor(ctx context.Context, vendorID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("submitted_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepository) UpdateStatus(ctx context.Context, id string, status models.BidStatus) error {
	return r.db.WithContext(ctx).Model(&models.Bid{}).Where("id = ?", id).Update("status", status).Error
}

// AcceptCascade applies the whole accept decision in one transaction: the
// bid accepted, its siblings rejected, the vendor assigned with the job
// moved to in progress, and the escrow payment opened. Either every write
// lands or none do.
func (r *BidRepository) AcceptCascade(ctx context.Context, bid *models.Bid, payment *models.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Bid{}).Where("id = ?", bid.ID).
			Update("status", models.BidStatusAccepted).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Bid{}).
			Where("job_id = ? AND id <> ?", bid.JobID, bid.ID).
			Update("status", models.BidStatusRejected).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Job{}).Where("id = ?", bid.JobID).
			Updates(map[string]interface{}{
				"assigned_vendor_id": bid.VendorID,
				"status":             models.JobStatusInProgress,
			}).Error; err != nil {
			return err
		}
		return tx.Create(payment).Error
	})
}

func (r *BidRepository) ExistsForVendor(ctx context.Context, jobID, vendorID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bid{}).
		Where("job_id = ? AND vendor_id = ?", jobID, vendorID).
		Count(&count).Error
	return count > 0, err
}
