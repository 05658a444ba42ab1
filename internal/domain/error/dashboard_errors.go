// Package error defines domain-specific errors for the household budget application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidMonth is returned when the selected month is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the selected year is not plausible.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidProfileFilter is returned when the profile filter is unknown.
	ErrInvalidProfileFilter = errors.New("invalid profile filter")

	// ErrUnknownCardMethod is returned when a card forecast is requested for
	// a method without a statement closing day.
	ErrUnknownCardMethod = errors.New("payment method is not a card")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth         DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidYear          DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidProfileFilter DashboardErrorCode = "DSH-010003"
	ErrCodeUnknownCardMethod    DashboardErrorCode = "DSH-010004"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
