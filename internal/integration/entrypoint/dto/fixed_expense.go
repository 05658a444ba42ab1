// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-budget/backend/internal/application/usecase/fixedexpense"
)

// CreateFixedExpenseRequest represents the request body for fixed expense creation.
type CreateFixedExpenseRequest struct {
	Description    string  `json:"description" binding:"required,min=1,max=255"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	DueDay         int     `json:"due_day" binding:"required,min=1,max=31"`
	PaymentMethod  string  `json:"payment_method" binding:"required"`
	Profile        string  `json:"profile" binding:"required"`
	ReferenceMonth int     `json:"reference_month" binding:"required,min=1,max=12"`
	ReferenceYear  int     `json:"reference_year" binding:"required"`
	Notes          string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateFixedExpenseRequest represents the request body for fixed expense update.
type UpdateFixedExpenseRequest struct {
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	DueDay        *int     `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Profile       *string  `json:"profile,omitempty"`
	Active        *bool    `json:"active,omitempty"`
	Notes         *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// MarkPaymentRequest represents the request body for marking a payment.
type MarkPaymentRequest struct {
	PaidAt *string `json:"paid_at,omitempty"` // YYYY-MM-DD, defaults to today
}

// FixedExpenseResponse represents a fixed expense instance in API responses.
type FixedExpenseResponse struct {
	ID             string     `json:"id"`
	Description    string     `json:"description"`
	Amount         string     `json:"amount"`
	Category       string     `json:"category"`
	DueDay         int        `json:"due_day"`
	DueDate        string     `json:"due_date"`
	PaymentMethod  string     `json:"payment_method"`
	Profile        string     `json:"profile"`
	ReferenceMonth int        `json:"reference_month"`
	ReferenceYear  int        `json:"reference_year"`
	PaymentStatus  string     `json:"payment_status"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
	Active         bool       `json:"active"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// FixedExpenseListResponse represents the response for listing fixed expenses.
type FixedExpenseListResponse struct {
	FixedExpenses []FixedExpenseResponse `json:"fixed_expenses"`
}

// ToFixedExpenseResponse converts a FixedExpenseOutput to its DTO.
func ToFixedExpenseResponse(f *fixedexpense.FixedExpenseOutput) FixedExpenseResponse {
	return FixedExpenseResponse{
		ID:             f.ID.String(),
		Description:    f.Description,
		Amount:         f.Amount.StringFixed(2),
		Category:       f.Category,
		DueDay:         f.DueDay,
		DueDate:        f.DueDate.Format("2006-01-02"),
		PaymentMethod:  f.PaymentMethod,
		Profile:        f.Profile,
		ReferenceMonth: f.ReferenceMonth,
		ReferenceYear:  f.ReferenceYear,
		PaymentStatus:  f.PaymentStatus,
		PaymentDate:    f.PaymentDate,
		Active:         f.Active,
		Notes:          f.Notes,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

// ToFixedExpenseListResponse converts a list of fixed expense outputs to the list DTO.
func ToFixedExpenseListResponse(fixed []*fixedexpense.FixedExpenseOutput) FixedExpenseListResponse {
	response := FixedExpenseListResponse{
		FixedExpenses: make([]FixedExpenseResponse, len(fixed)),
	}
	for i, f := range fixed {
		response.FixedExpenses[i] = ToFixedExpenseResponse(f)
	}
	return response
}
