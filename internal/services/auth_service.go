package services

import (
	"context"
	"errors"

	"servicehub_backend/internal/auth"
	"servicehub_backend/internal/models"
	"servicehub_backend/internal/services/dto"
	"servicehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type authUserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type AuthService struct {
	users authUserStore
}

func NewAuthService(users authUserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account. New vendors start pending admin approval;
// new customers are active immediately.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       models.AccountStatusActive,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
	}
	switch req.Role {
	case models.UserRoleVendor:
		user.VendorStatus = models.VendorStatusPending
	case models.UserRoleCustomer:
		user.CustomerStatus = models.CustomerStatusActive
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create user", 500)
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// Login checks credentials and the account status gate before issuing a
// token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case models.AccountStatusSuspended:
		return nil, apperrors.ErrAccountSuspended
	case models.AccountStatusDeleted:
		return nil, apperrors.ErrAccountDeleted
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// CurrentUser resolves the authenticated user from its token subject.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
