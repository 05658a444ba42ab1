// Package fixedexpense contains fixed expense use cases.
package fixedexpense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// ListFixedExpensesInput represents the input for listing fixed expenses.
type ListFixedExpensesInput struct {
	ReferenceMonth *int
	ReferenceYear  *int
	Profile        *valueobject.Profile
	PaymentStatus  *entity.PaymentStatus
	ActiveOnly     bool
}

// FixedExpenseOutput represents a fixed expense instance in the output.
type FixedExpenseOutput struct {
	ID             uuid.UUID
	Description    string
	Amount         decimal.Decimal
	Category       string
	DueDay         int
	DueDate        time.Time
	PaymentMethod  string
	Profile        string
	ReferenceMonth int
	ReferenceYear  int
	PaymentStatus  string
	PaymentDate    *time.Time
	Active         bool
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ToFixedExpenseOutput maps a fixed expense entity to its use case output.
func ToFixedExpenseOutput(f *entity.FixedExpense) *FixedExpenseOutput {
	return &FixedExpenseOutput{
		ID:             f.ID,
		Description:    f.Description,
		Amount:         f.Amount,
		Category:       f.Category,
		DueDay:         f.DueDay,
		DueDate:        f.DueDate(),
		PaymentMethod:  string(f.PaymentMethod),
		Profile:        string(f.Profile),
		ReferenceMonth: f.ReferenceMonth,
		ReferenceYear:  f.ReferenceYear,
		PaymentStatus:  string(f.PaymentStatus),
		PaymentDate:    f.PaymentDate,
		Active:         f.Active,
		Notes:          f.Notes,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

// ListFixedExpensesOutput represents the output of listing fixed expenses.
type ListFixedExpensesOutput struct {
	FixedExpenses []*FixedExpenseOutput
}

// ListFixedExpensesUseCase handles listing fixed expense instances.
type ListFixedExpensesUseCase struct {
	fixedRepo adapter.FixedExpenseRepository
}

// NewListFixedExpensesUseCase creates a new ListFixedExpensesUseCase instance.
func NewListFixedExpensesUseCase(fixedRepo adapter.FixedExpenseRepository) *ListFixedExpensesUseCase {
	return &ListFixedExpensesUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute lists fixed expense instances matching the filter, pending first
// and then by due day.
func (uc *ListFixedExpensesUseCase) Execute(ctx context.Context, input ListFixedExpensesInput) (*ListFixedExpensesOutput, error) {
	fixed, err := uc.fixedRepo.FindByFilter(ctx, adapter.FixedExpenseFilter{
		ReferenceMonth: input.ReferenceMonth,
		ReferenceYear:  input.ReferenceYear,
		Profile:        input.Profile,
		PaymentStatus:  input.PaymentStatus,
		ActiveOnly:     input.ActiveOnly,
	})
	if err != nil {
		return nil, err
	}

	output := &ListFixedExpensesOutput{
		FixedExpenses: make([]*FixedExpenseOutput, len(fixed)),
	}
	for i, f := range fixed {
		output.FixedExpenses[i] = ToFixedExpenseOutput(f)
	}
	return output, nil
}
