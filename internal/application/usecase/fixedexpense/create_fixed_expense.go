// Package fixedexpense contains fixed expense use cases.
package fixedexpense

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// CreateFixedExpenseInput represents the input for fixed expense creation.
type CreateFixedExpenseInput struct {
	Description    string
	Amount         decimal.Decimal
	DueDay         int
	PaymentMethod  valueobject.PaymentMethod
	Profile        valueobject.Profile
	ReferenceMonth int
	ReferenceYear  int
	Notes          string
}

// CreateFixedExpenseOutput represents the output of fixed expense creation.
type CreateFixedExpenseOutput struct {
	FixedExpense *FixedExpenseOutput
}

// CreateFixedExpenseUseCase handles fixed expense creation logic.
type CreateFixedExpenseUseCase struct {
	fixedRepo adapter.FixedExpenseRepository
}

// NewCreateFixedExpenseUseCase creates a new CreateFixedExpenseUseCase instance.
func NewCreateFixedExpenseUseCase(fixedRepo adapter.FixedExpenseRepository) *CreateFixedExpenseUseCase {
	return &CreateFixedExpenseUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute creates a pending fixed expense instance for its reference month.
// The category is always forced to the fixed category regardless of input.
func (uc *CreateFixedExpenseUseCase) Execute(ctx context.Context, input CreateFixedExpenseInput) (*CreateFixedExpenseOutput, error) {
	if input.DueDay < 1 || input.DueDay > 31 {
		return nil, domainerror.NewFixedExpenseError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewFixedExpenseError(
			domainerror.ErrCodeInvalidFixedExpenseAmount,
			"amount must be positive",
			domainerror.ErrInvalidFixedExpenseAmount,
		)
	}

	fixed := entity.NewFixedExpense(
		input.Description,
		input.Amount,
		input.DueDay,
		input.PaymentMethod,
		input.Profile,
		input.ReferenceMonth,
		input.ReferenceYear,
		input.Notes,
	)

	if err := uc.fixedRepo.Create(ctx, fixed); err != nil {
		return nil, fmt.Errorf("failed to create fixed expense: %w", err)
	}

	return &CreateFixedExpenseOutput{FixedExpense: ToFixedExpenseOutput(fixed)}, nil
}
