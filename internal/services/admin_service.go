package services

import (
	"context"
	"errors"
	"fmt"

	"servicehub_backend/internal/fetch"
	"servicehub_backend/internal/models"
	"servicehub_backend/internal/repositories"
	"servicehub_backend/internal/services/dto"
	"servicehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type adminUserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ListVendors(ctx context.Context, status models.VendorStatus, filters repositories.UserFilters) ([]models.User, int64, error)
	ListCustomers(ctx context.Context, status models.CustomerStatus, filters repositories.UserFilters) ([]models.User, int64, error)
	UpdateVendorStatus(ctx context.Context, id string, status models.VendorStatus) error
	UpdateCustomerStatus(ctx context.Context, id string, status models.CustomerStatus) error
}

type adminPaymentStore interface {
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context, status models.PaymentStatus) ([]models.Payment, error)
	UpdateStatus(ctx context.Context, id string, status models.PaymentStatus) error
}

type adminCategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	List(ctx context.Context, categoryType models.CategoryType) ([]models.Category, error)
	UpdateStatus(ctx context.Context, id string, status models.CategoryStatus) error
}

// AdminService implements the management panels' state-transition actions.
// Every transition is validated against the whitelist tables before any
// write, and each target row is guarded so one slow action never blocks
// the rest of the panel.
type AdminService struct {
	users        adminUserStore
	payments     adminPaymentStore
	categories   adminCategoryStore
	guard        *ActionGuard
	notifier     *NotificationService
	demoFallback bool
}

func NewAdminService(users adminUserStore, payments adminPaymentStore, categories adminCategoryStore, guard *ActionGuard, notifier *NotificationService, demoFallback bool) *AdminService {
	return &AdminService{
		users:        users,
		payments:     payments,
		categories:   categories,
		guard:        guard,
		notifier:     notifier,
		demoFallback: demoFallback,
	}
}

// --- Vendor management ---

func (s *AdminService) ListVendors(ctx context.Context, status models.VendorStatus, filters repositories.UserFilters) (*dto.VendorListResponse, error) {
	var fallback []models.User
	if s.demoFallback {
		fallback = demoVendors()
	}
	var total int64
	vendors, fromFallback, err := fetch.WithFallback(ctx, func(ctx context.Context) ([]models.User, error) {
		var err error
		var list []models.User
		list, total, err = s.users.ListVendors(ctx, status, filters)
		return list, err
	}, fallback)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "vendor", "Failed to list vendors", 500)
	}
	if fromFallback {
		total = int64(len(vendors))
	}
	return &dto.VendorListResponse{Vendors: vendors, Total: total, Fallback: fromFallback}, nil
}

// SetVendorStatus performs one whitelisted vendor transition
// (pending → approved/rejected, approved ↔ suspended). It returns the
// vendor re-read after the write, not the requested value.
func (s *AdminService) SetVendorStatus(ctx context.Context, vendorID string, status models.VendorStatus) (*models.User, error) {
	if err := s.guard.Begin("vendor", vendorID); err != nil {
		return nil, err
	}
	defer s.guard.End("vendor", vendorID)

	vendor, err := s.getUser(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsVendor() {
		return nil, apperrors.ErrInvalidOperation("vendor", "User is not a vendor")
	}
	if !models.CanTransitionVendor(vendor.VendorStatus, status) {
		return nil, apperrors.ErrInvalidStatus("vendor",
			fmt.Sprintf("Cannot move vendor from %s to %s", vendor.VendorStatus, status))
	}
	if err := s.users.UpdateVendorStatus(ctx, vendorID, status); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "vendor", "Failed to update vendor status", 500)
	}
	s.notifier.NotifyVendorStatus(ctx, vendorID, status)
	return s.getUser(ctx, vendorID)
}

// --- Customer management ---

func (s *AdminService) ListCustomers(ctx context.Context, status models.CustomerStatus, filters repositories.UserFilters) (*dto.CustomerListResponse, error) {
	customers, total, err := s.users.ListCustomers(ctx, status, filters)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "customer", "Failed to list customers", 500)
	}
	return &dto.CustomerListResponse{Customers: customers, Total: total}, nil
}

// SetCustomerStatus returns the customer re-read after the write.
func (s *AdminService) SetCustomerStatus(ctx context.Context, customerID string, status models.CustomerStatus) (*models.User, error) {
	if err := s.guard.Begin("customer", customerID); err != nil {
		return nil, err
	}
	defer s.guard.End("customer", customerID)

	customer, err := s.getUser(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsCustomer() {
		return nil, apperrors.ErrInvalidOperation("customer", "User is not a customer")
	}
	if !models.CanTransitionCustomer(customer.CustomerStatus, status) {
		return nil, apperrors.ErrInvalidStatus("customer",
			fmt.Sprintf("Cannot move customer from %s to %s", customer.CustomerStatus, status))
	}
	if err := s.users.UpdateCustomerStatus(ctx, customerID, status); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "customer", "Failed to update customer status", 500)
	}
	return s.getUser(ctx, customerID)
}

// --- Payment management ---

func (s *AdminService) ListPayments(ctx context.Context, status models.PaymentStatus) (*dto.PaymentListResponse, error) {
	var fallback []models.Payment
	if s.demoFallback {
		fallback = demoPayments()
	}
	payments, fromFallback, err := fetch.WithFallback(ctx, func(ctx context.Context) ([]models.Payment, error) {
		return s.payments.List(ctx, status)
	}, fallback)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "payment", "Failed to list payments", 500)
	}
	return &dto.PaymentListResponse{Payments: payments, Fallback: fromFallback}, nil
}

// SetPaymentStatus performs one whitelisted payment transition. Released
// and refunded are mutually exclusive terminal states. The returned
// payment is re-read after the write.
func (s *AdminService) SetPaymentStatus(ctx context.Context, paymentID string, status models.PaymentStatus) (*models.Payment, error) {
	if err := s.guard.Begin("payment", paymentID); err != nil {
		return nil, err
	}
	defer s.guard.End("payment", paymentID)

	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransitionPayment(payment.Status, status) {
		return nil, apperrors.ErrInvalidStatus("payment",
			fmt.Sprintf("Cannot move payment from %s to %s", payment.Status, status))
	}
	if err := s.payments.UpdateStatus(ctx, paymentID, status); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "payment", "Failed to update payment status", 500)
	}
	s.notifier.NotifyPaymentStatus(ctx, payment.CustomerID, status)
	return s.getPayment(ctx, paymentID)
}

// --- Category management ---

func (s *AdminService) ListCategories(ctx context.Context, categoryType models.CategoryType) ([]models.Category, error) {
	return s.categories.List(ctx, categoryType)
}

// CreateCategory adds a category; a sub category must point at an
// existing main category.
func (s *AdminService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:   req.Name,
		Type:   req.Type,
		Status: models.CategoryStatusActive,
	}

	if req.Type == models.CategoryTypeSub {
		if req.ParentID == "" {
			return nil, apperrors.ErrCategoryParentRequired
		}
		parent, err := s.categories.GetByID(ctx, req.ParentID)
		if err != nil || parent.Type != models.CategoryTypeMain {
			return nil, apperrors.ErrCategoryParentRequired
		}
		category.ParentID = &req.ParentID
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "category", "Failed to create category", 500)
	}
	return category, nil
}

// ToggleCategory flips a category between active and inactive.
func (s *AdminService) ToggleCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	if err := s.guard.Begin("category", categoryID); err != nil {
		return nil, err
	}
	defer s.guard.End("category", categoryID)

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	next := models.CategoryStatusInactive
	if category.Status == models.CategoryStatusInactive {
		next = models.CategoryStatusActive
	}
	if !models.CanTransitionCategory(category.Status, next) {
		return nil, apperrors.ErrInvalidStatus("category", "Category cannot be toggled")
	}
	if err := s.categories.UpdateStatus(ctx, categoryID, next); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "category", "Failed to update category", 500)
	}

	// Respond with the stored row, not the in-memory copy.
	category, err = s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *AdminService) getPayment(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return payment, nil
}

func (s *AdminService) getUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
