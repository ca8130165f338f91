package errors

import (
	"net/http"

	"innkeep/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication errors. The three token errors carry distinct codes so
	// clients can tell "log in again" from "token was never valid".
	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Authorization header is missing",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired. Please login again.",
		"",
	)

	// ErrInvalidCredentials keeps one message for wrong email and wrong
	// password so the endpoint cannot be used for account enumeration.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Account status errors.
	ErrAccountPending = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_PENDING",
		"Your account is pending verification. Please wait for approval.",
		"",
	)

	ErrAccountRejected = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_REJECTED",
		"Your account has been rejected. Please contact support.",
		"",
	)

	ErrAccountSuspended = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_SUSPENDED",
		"Your account has been suspended. Please contact support.",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"Your account is not active. Please contact support.",
		"",
	)

	// Authorization errors.
	ErrHotelAdminOnly = NewBaseError(
		http.StatusForbidden,
		"HOTEL_ADMIN_ONLY",
		"This endpoint is only available for hotel administrators",
		"",
	)

	ErrSuperadminOnly = NewBaseError(
		http.StatusForbidden,
		"SUPERADMIN_ONLY",
		"This endpoint is only available for superadmins",
		"",
	)

	// ErrHotelAccessDenied covers both "no such hotel" and "someone else's
	// hotel" so a request can never probe for another tenant's ids.
	ErrHotelAccessDenied = NewBaseError(
		http.StatusForbidden,
		"HOTEL_ACCESS_DENIED",
		"Hotel not found or access denied",
		"",
	)

	// ErrSetupIncomplete is distinct from a plain not-found: the account is
	// fine, it simply has no hotel yet.
	ErrSetupIncomplete = NewBaseError(
		http.StatusNotFound,
		"SETUP_INCOMPLETE",
		"No hotel configured yet. Complete the property setup first.",
		"",
	)

	// Registration errors.
	ErrTermsNotAccepted = NewBaseError(
		http.StatusBadRequest,
		"TERMS_NOT_ACCEPTED",
		"You must accept the Terms of Service to register",
		"",
	)

	ErrPrivacyNotAccepted = NewBaseError(
		http.StatusBadRequest,
		"PRIVACY_NOT_ACCEPTED",
		"You must accept the Privacy Policy to register",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
		"",
	)

	// Password lifecycle errors.
	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Invalid or expired reset token",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusUnauthorized,
		"WRONG_PASSWORD",
		"Current password is incorrect",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the security requirements",
		"",
	)

	ErrSameEmail = NewBaseError(
		http.StatusBadRequest,
		"SAME_EMAIL",
		"New email is the same as the current email",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_IN_USE",
		"Email is already in use by another account",
		"",
	)

	// Resource errors.
	ErrHotelNotFound = NewBaseError(
		http.StatusNotFound,
		"HOTEL_NOT_FOUND",
		"Hotel not found",
		"",
	)

	ErrRoomTypeNotFound = NewBaseError(
		http.StatusNotFound,
		"ROOM_TYPE_NOT_FOUND",
		"Room type not found",
		"",
	)

	ErrAddonNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDON_NOT_FOUND",
		"Add-on not found",
		"",
	)

	ErrSlugTaken = NewBaseError(
		http.StatusConflict,
		"SLUG_TAKEN",
		"Hotel slug is already in use",
		"",
	)

	// Validation errors.
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Integration errors.
	ErrUpstreamFailed = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FAILED",
		"Upstream service request failed",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
