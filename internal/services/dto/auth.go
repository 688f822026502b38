package dto

import "servicehub_backend/internal/models"

type RegisterRequest struct {
	Email     string          `json:"email" binding:"required" validate:"required,email"`
	Password  string          `json:"password" binding:"required" validate:"required,min=6"`
	Role      models.UserRole `json:"role" binding:"required" validate:"required,oneof=CUSTOMER VENDOR"`
	FirstName string          `json:"firstName" validate:"required"`
	LastName  string          `json:"lastName" validate:"required"`
	Phone     string          `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
