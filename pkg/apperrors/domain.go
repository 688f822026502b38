package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation reports an operation that is not allowed in the
// entity's current state.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus reports a status transition rejected by the transition
// table.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ErrActionInFlight reports that another transition is already running
// against the same entity.
func ErrActionInFlight(domain string) *AppError {
	return New(CodeActionInFlight, domain, "Another action is already in progress for this entity", http.StatusConflict)
}

// Predefined static errors.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrAccountSuspended blocks suspended accounts at the route guard.
var ErrAccountSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

// ErrAccountDeleted blocks deleted accounts at the route guard.
var ErrAccountDeleted = New(
	CodeForbidden,
	"auth",
	"Your account has been deleted",
	http.StatusForbidden,
)

var ErrImageLimitExceeded = New(
	CodeLimitExceeded,
	"wizard",
	"A job posting can have at most 5 images",
	http.StatusBadRequest,
)

var ErrUnknownCategory = New(
	CodeValidationFailed,
	"wizard",
	"Unknown service category or service type",
	http.StatusBadRequest,
)

var ErrInvalidBudget = New(
	CodeValidationFailed,
	"wizard",
	"Budget must be a non-negative number",
	http.StatusBadRequest,
)

var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"bid",
	"Bids can only be placed on open jobs",
	http.StatusConflict,
)

var ErrCategoryParentRequired = New(
	CodeValidationFailed,
	"category",
	"A sub category requires an existing main category as parent",
	http.StatusBadRequest,
)
