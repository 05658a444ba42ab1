// Package error defines domain-specific errors for the household budget application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense record is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrInvalidInstallmentCount is returned when the installment count is below 1.
	ErrInvalidInstallmentCount = errors.New("invalid installment count")

	// ErrInvalidPurchaseDate is returned when the purchase date is missing or malformed.
	ErrInvalidPurchaseDate = errors.New("invalid purchase date")

	// ErrMissingPaymentMethod is returned when no payment method is selected.
	ErrMissingPaymentMethod = errors.New("payment method is required")

	// ErrEmptyExpenseDescription is returned when the description is empty.
	ErrEmptyExpenseDescription = errors.New("description cannot be empty")

	// ErrExpenseDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrExpenseDescriptionTooLong = errors.New("description too long")

	// ErrInvalidExpenseProfile is returned when the responsible profile is unknown.
	ErrInvalidExpenseProfile = errors.New("invalid responsible profile")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidInstallmentCount   ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidPurchaseDate       ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingPaymentMethod      ExpenseErrorCode = "EXP-010004"
	ErrCodeEmptyExpenseDescription   ExpenseErrorCode = "EXP-010005"
	ErrCodeExpenseDescriptionTooLong ExpenseErrorCode = "EXP-010006"
	ErrCodeInvalidExpenseProfile     ExpenseErrorCode = "EXP-010007"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
