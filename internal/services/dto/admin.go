package dto

import "servicehub_backend/internal/models"

type VendorListResponse struct {
	Vendors []models.User `json:"vendors"`
	Total   int64         `json:"total"`
	// Fallback marks substituted demo data (list fetch failed).
	Fallback bool `json:"fallback"`
}

type CustomerListResponse struct {
	Customers []models.User `json:"customers"`
	Total     int64         `json:"total"`
	Fallback  bool          `json:"fallback"`
}

type PaymentListResponse struct {
	Payments []models.Payment `json:"payments"`
	Fallback bool             `json:"fallback"`
}

type UpdateVendorStatusRequest struct {
	Status models.VendorStatus `json:"status" validate:"required,is-vendor-status"`
}

type UpdateCustomerStatusRequest struct {
	Status models.CustomerStatus `json:"status" validate:"required,oneof=active inactive suspended"`
}

type UpdatePaymentStatusRequest struct {
	Status models.PaymentStatus `json:"status" validate:"required,is-payment-status"`
}

type CreateCategoryRequest struct {
	Name     string              `json:"name" validate:"required"`
	Type     models.CategoryType `json:"type" validate:"required,oneof=main sub"`
	ParentID string              `json:"parentId"`
}
