package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrResolution indicates that a referenced entity (cash box, bank, currency, account)
// does not map to a usable ledger account. It is reported apart from ErrValidation so callers
// can tell a malformed request from an incomplete configuration.
var ErrResolution = errors.New("resolution error")

// ErrRateBounds indicates a supplied exchange rate outside the currency's [min_rate, max_rate].
var ErrRateBounds = errors.New("exchange rate out of bounds")

// ErrStore indicates an underlying transaction failure (constraint violation, connectivity).
var ErrStore = errors.New("store error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the principal may not act on the requested resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates a missing or invalid principal.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-ish code, a message that is safe to show to callers and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a code and a caller-facing message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError reports a missing or invalid required field.
func NewValidationError(format string, args ...any) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), Err: ErrValidation}
}

// NewResolutionError reports an entity that does not resolve to a usable leg account.
func NewResolutionError(format string, args ...any) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: fmt.Sprintf(format, args...), Err: ErrResolution}
}

// NewRateBoundsError reports a rate outside the allowed range of a currency.
func NewRateBoundsError(format string, args ...any) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), Err: ErrRateBounds}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewStoreError wraps a database failure. The message never includes the cause.
func NewStoreError(message string, cause error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: errors.Join(ErrStore, cause)}
}

// PublicMessage returns the caller-facing message of err. Store and unknown failures collapse to
// fallback so internal detail never leaks.
func PublicMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && !errors.Is(err, ErrStore) {
		return appErr.Message
	}
	return fallback
}

// StatusCode maps an error onto the HTTP status the handlers respond with.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrRateBounds):
		return http.StatusBadRequest
	case errors.Is(err, ErrResolution):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
