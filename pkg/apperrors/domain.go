package apperrors

import (
	"net/http"
)

// Factories for common business errors. Services wrap repository errors
// through these so handlers only ever see AppError.

// ErrNotFound wraps a repository miss (gorm.ErrRecordNotFound etc.) as a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness violation as a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation reports an operation the current state does not allow (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus reports an unknown status value (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidTransition reports a status move the lifecycle table forbids (409).
func ErrInvalidTransition(domain, message string) *AppError {
	return New(CodeInvalidTransition, domain, message, http.StatusConflict)
}

// ErrExternalService wraps a failure from an upstream provider (502).
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// Predefined errors for frequent, static cases.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrAccountInactive = New(
	CodeForbidden,
	"auth",
	"Account is deactivated",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Username already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrTooManyLoginAttempts = New(
	CodeRateLimited,
	"auth",
	"Too many failed login attempts. Try again later.",
	http.StatusTooManyRequests,
)

var ErrTrainerAlreadyAssigned = New(
	CodeConflict,
	"training",
	"A trainer is already assigned to this training",
	http.StatusConflict,
)

var ErrApplicationAlreadyExists = New(
	CodeAlreadyExists,
	"application",
	"You have already applied for this training",
	http.StatusConflict,
)

var ErrApplicationNotPending = New(
	CodeInvalidStatus,
	"application",
	"Application has already been reviewed",
	http.StatusConflict,
)

var ErrRegistrationNotPending = New(
	CodeInvalidStatus,
	"registration",
	"Registration has already been reviewed",
	http.StatusConflict,
)
