package repositories

import (
	"context"

	"servicehub_backend/internal/models"

	"gorm.io/gorm"
)

type UserFilters struct {
	Search   string
	Page     int
	PageSize int
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) ListVendors(ctx context.Context, status models.VendorStatus, filters UserFilters) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.UserRoleVendor)
	if status != "" {
		query = query.Where("vendor_status = ?", status)
	}
	return r.listUsers(query, filters)
}

func (r *UserRepository) ListCustomers(ctx context.Context, status models.CustomerStatus, filters UserFilters) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.UserRoleCustomer)
	if status != "" {
		query = query.Where("customer_status = ?", status)
	}
	return r.listUsers(query, filters)
}

func (r *UserRepository) listUsers(query *gorm.DB, filters UserFilters) ([]models.User, int64, error) {
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
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

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) UpdateVendorStatus(ctx context.Context, id string, status models.VendorStatus) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("vendor_status", status).Error
}

func (r *UserRepository) UpdateCustomerStatus(ctx context.Context, id string, status models.CustomerStatus) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("customer_status", status).Error
}
