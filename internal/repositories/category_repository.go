package repositories

import (
	"context"

	"servicehub_backend/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context, categoryType models.CategoryType) ([]models.Category, error) {
	query := r.db.WithContext(ctx).Model(&models.Category{})
	if categoryType != "" {
		query = query.Where("type = ?", categoryType)
	}
	var categories []models.Category
	err := query.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) UpdateStatus(ctx context.Context, id string, status models.CategoryStatus) error {
	return r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("status", status).Error
}
