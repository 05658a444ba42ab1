// Package fixedexpense contains fixed expense use cases.
package fixedexpense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// UpdateFixedExpenseInput represents the input for fixed expense update.
type UpdateFixedExpenseInput struct {
	FixedExpenseID uuid.UUID
	Description    *string
	Amount         *decimal.Decimal
	DueDay         *int
	PaymentMethod  *valueobject.PaymentMethod
	Profile        *valueobject.Profile
	Active         *bool
	Notes          *string
}

// UpdateFixedExpenseOutput represents the output of fixed expense update.
type UpdateFixedExpenseOutput struct {
	FixedExpense *FixedExpenseOutput
}

// UpdateFixedExpenseUseCase handles fixed expense update logic.
type UpdateFixedExpenseUseCase struct {
	fixedRepo adapter.FixedExpenseRepository
}

// NewUpdateFixedExpenseUseCase creates a new UpdateFixedExpenseUseCase instance.
func NewUpdateFixedExpenseUseCase(fixedRepo adapter.FixedExpenseRepository) *UpdateFixedExpenseUseCase {
	return &UpdateFixedExpenseUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute performs the fixed expense update.
func (uc *UpdateFixedExpenseUseCase) Execute(ctx context.Context, input UpdateFixedExpenseInput) (*UpdateFixedExpenseOutput, error) {
	fixed, err := uc.fixedRepo.FindByID(ctx, input.FixedExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFixedExpenseNotFound) {
			return nil, domainerror.NewFixedExpenseError(
				domainerror.ErrCodeFixedExpenseNotFound,
				"fixed expense not found",
				domainerror.ErrFixedExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find fixed expense: %w", err)
	}

	if input.Description != nil {
		fixed.Description = *input.Description
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewFixedExpenseError(
				domainerror.ErrCodeInvalidFixedExpenseAmount,
				"amount must be positive",
				domainerror.ErrInvalidFixedExpenseAmount,
			)
		}
		fixed.Amount = *input.Amount
	}

	if input.DueDay != nil {
		if *input.DueDay < 1 || *input.DueDay > 31 {
			return nil, domainerror.NewFixedExpenseError(
				domainerror.ErrCodeInvalidDueDay,
				"due day must be between 1 and 31",
				domainerror.ErrInvalidDueDay,
			)
		}
		fixed.DueDay = *input.DueDay
	}

	if input.PaymentMethod != nil {
		fixed.PaymentMethod = *input.PaymentMethod
	}

	if input.Profile != nil {
		fixed.Profile = *input.Profile
	}

	if input.Active != nil {
		fixed.Active = *input.Active
	}

	if input.Notes != nil {
		fixed.Notes = *input.Notes
	}

	fixed.UpdatedAt = time.Now().UTC()

	if err := uc.fixedRepo.Update(ctx, fixed); err != nil {
		return nil, fmt.Errorf("failed to update fixed expense: %w", err)
	}

	return &UpdateFixedExpenseOutput{FixedExpense: ToFixedExpenseOutput(fixed)}, nil
}
