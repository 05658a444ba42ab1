// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/billing"
	"github.com/household-budget/backend/internal/domain/entity"
)

// ExpenseOutput represents an expense record returned by use cases.
type ExpenseOutput struct {
	ID               uuid.UUID
	Description      string
	Amount           decimal.Decimal
	TotalAmount      decimal.Decimal
	Category         string
	PaymentMethod    string
	Profile          string
	PurchaseDate     time.Time
	BillingMonth     int
	BillingYear      int
	InstallmentIndex int
	InstallmentCount int
	PlanID           uuid.UUID
	DeferredStart    bool
	Notes            string
	Progress         decimal.Decimal // percent of the plan billed through this record
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ToExpenseOutput maps an expense entity to its use case output.
func ToExpenseOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:               e.ID,
		Description:      e.Description,
		Amount:           e.Amount,
		TotalAmount:      e.TotalAmount,
		Category:         e.Category,
		PaymentMethod:    string(e.PaymentMethod),
		Profile:          string(e.Profile),
		PurchaseDate:     e.PurchaseDate,
		BillingMonth:     e.BillingMonth,
		BillingYear:      e.BillingYear,
		InstallmentIndex: e.InstallmentIndex,
		InstallmentCount: e.InstallmentCount,
		PlanID:           e.PlanID,
		DeferredStart:    e.DeferredStart,
		Notes:            e.Notes,
		Progress:         billing.PlanProgress(e.InstallmentIndex, e.InstallmentCount),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
