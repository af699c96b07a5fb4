package apperr

import (
	"errors"

	"github.com/vats147/Inventory-mobile-app/pkg/zerror"
)

const (
	ValidationErrorCode = "VALIDATION_FAILED"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	ErrProductNotFound    = zerror.NewNotFound("PRODUCT_NOT_FOUND", "no product found with this code")
	ErrUserNotFound       = zerror.NewNotFound("USER_NOT_FOUND", "user not found")
	ErrNotFound           = zerror.NewNotFound("NOT_FOUND", "resource not found")
	ErrInvalidCredentials = zerror.NewUnauthorized("INVALID_CREDENTIALS", "invalid username or password")
	ErrUnauthorized       = zerror.NewUnauthorized("UNAUTHORIZED", "missing or invalid token")
	ErrForbidden          = zerror.NewForbidden("FORBIDDEN", "admin role required")
	ErrBackendUnavailable = zerror.NewServiceUnavailable("BACKEND_UNAVAILABLE", "cannot connect to server")
	ErrRequestTimeout     = zerror.NewTimeout("REQUEST_TIMEOUT", "request timed out")
)

// IsNotFound reports whether err is any not-found error.
func IsNotFound(err error) bool {
	return hasStatus(err, zerror.StatusNotFound)
}

// IsUnauthorized reports whether err means bad or missing credentials.
func IsUnauthorized(err error) bool {
	return hasStatus(err, zerror.StatusUnauthorized)
}

// IsUnavailable reports whether err means the backend could not be reached.
// Callers use this to offer the demo-mode fallback.
func IsUnavailable(err error) bool {
	return hasStatus(err, zerror.StatusServiceUnavailable) ||
		hasStatus(err, zerror.StatusTimeout)
}

// IsValidation reports whether err was raised by local input validation,
// before any dispatch happened.
func IsValidation(err error) bool {
	return hasStatus(err, zerror.StatusValidationFailed)
}

func hasStatus(err error, status zerror.Status) bool {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return zErr.Status() == status
	}
	return false
}
