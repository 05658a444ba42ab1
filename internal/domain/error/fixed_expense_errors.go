// Package error defines domain-specific errors for the household budget application.
package error

import "errors"

// Fixed expense domain errors.
var (
	// ErrFixedExpenseNotFound is returned when a fixed expense record is not found.
	ErrFixedExpenseNotFound = errors.New("fixed expense not found")

	// ErrInvalidDueDay is returned when the due day is outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrInvalidFixedExpenseAmount is returned when the amount is zero or negative.
	ErrInvalidFixedExpenseAmount = errors.New("invalid fixed expense amount")

	// ErrFixedExpenseAlreadyPaid is returned when marking an already paid record as paid.
	ErrFixedExpenseAlreadyPaid = errors.New("fixed expense already paid")

	// ErrFixedExpenseNotPaid is returned when reverting a record that is still pending.
	ErrFixedExpenseNotPaid = errors.New("fixed expense is not paid")
)

// FixedExpenseErrorCode defines error codes for fixed expense errors.
// Format: FXD-XXYYYY where XX is category and YYYY is specific error.
type FixedExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDueDay             FixedExpenseErrorCode = "FXD-010001"
	ErrCodeInvalidFixedExpenseAmount FixedExpenseErrorCode = "FXD-010002"

	// State errors (02XXXX)
	ErrCodeFixedExpenseNotFound    FixedExpenseErrorCode = "FXD-020001"
	ErrCodeFixedExpenseAlreadyPaid FixedExpenseErrorCode = "FXD-020002"
	ErrCodeFixedExpenseNotPaid     FixedExpenseErrorCode = "FXD-020003"
)

// FixedExpenseError represents a fixed expense error with code and message.
type FixedExpenseError struct {
	Code    FixedExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FixedExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FixedExpenseError) Unwrap() error {
	return e.Err
}

// NewFixedExpenseError creates a new FixedExpenseError with the given code and message.
func NewFixedExpenseError(code FixedExpenseErrorCode, message string, err error) *FixedExpenseError {
	return &FixedExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
