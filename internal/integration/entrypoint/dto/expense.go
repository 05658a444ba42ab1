// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-budget/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Description      string  `json:"description" binding:"required,min=1,max=255"`
	TotalAmount      float64 `json:"total_amount" binding:"required,gt=0"`
	Category         string  `json:"category,omitempty"`
	PaymentMethod    string  `json:"payment_method" binding:"required"`
	Profile          string  `json:"profile" binding:"required"`
	PurchaseDate     string  `json:"purchase_date" binding:"required"`
	InstallmentCount int     `json:"installment_count,omitempty"`
	DeferNextMonth   bool    `json:"defer_next_month,omitempty"`
	Notes            string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateExpenseRequest represents the request body for expense update. Only
// descriptive fields are accepted; billing fields never change after
// scheduling.
type UpdateExpenseRequest struct {
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Category    *string `json:"category,omitempty"`
	Notes       *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ExpenseResponse represents a single expense record in API responses.
type ExpenseResponse struct {
	ID               string    `json:"id"`
	Description      string    `json:"description"`
	Amount           string    `json:"amount"`
	TotalAmount      string    `json:"total_amount"`
	Category         string    `json:"category"`
	PaymentMethod    string    `json:"payment_method"`
	Profile          string    `json:"profile"`
	PurchaseDate     string    `json:"purchase_date"`
	BillingMonth     int       `json:"billing_month"`
	BillingYear      int       `json:"billing_year"`
	InstallmentIndex int       `json:"installment_index"`
	InstallmentCount int       `json:"installment_count"`
	PlanID           string    `json:"plan_id"`
	DeferredStart    bool      `json:"deferred_start,omitempty"`
	Notes            string    `json:"notes"`
	Progress         string    `json:"progress"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpensePlanResponse represents all installments of one purchase plan.
type ExpensePlanResponse struct {
	PlanID   string            `json:"plan_id"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:               e.ID.String(),
		Description:      e.Description,
		Amount:           e.Amount.StringFixed(2),
		TotalAmount:      e.TotalAmount.StringFixed(2),
		Category:         e.Category,
		PaymentMethod:    e.PaymentMethod,
		Profile:          e.Profile,
		PurchaseDate:     e.PurchaseDate.Format("2006-01-02"),
		BillingMonth:     e.BillingMonth,
		BillingYear:      e.BillingYear,
		InstallmentIndex: e.InstallmentIndex,
		InstallmentCount: e.InstallmentCount,
		PlanID:           e.PlanID.String(),
		DeferredStart:    e.DeferredStart,
		Notes:            e.Notes,
		Progress:         e.Progress.StringFixed(2),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list of expense outputs to the list DTO.
func ToExpenseListResponse(expenses []*expense.ExpenseOutput) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, len(expenses)),
	}
	for i, e := range expenses {
		response.Expenses[i] = ToExpenseResponse(e)
	}
	return response
}
