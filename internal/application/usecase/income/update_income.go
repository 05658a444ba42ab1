// Package income contains income-related use cases.
package income

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

// UpdateIncomeInput represents the input for income update.
type UpdateIncomeInput struct {
	IncomeID    uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	Profile     *valueobject.Profile
	Month       *int
	Year        *int
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *IncomeOutput
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	if input.Description != nil {
		if *input.Description == "" {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeEmptyIncomeDescription,
				"description cannot be empty",
				domainerror.ErrEmptyIncomeDescription,
			)
		}
		income.Description = *input.Description
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeInvalidIncomeAmount,
				"amount must be positive",
				domainerror.ErrInvalidIncomeAmount,
			)
		}
		income.Amount = *input.Amount
	}

	if input.Category != nil {
		income.Category = *input.Category
	}

	if input.Profile != nil {
		income.Profile = *input.Profile
	}

	if input.Month != nil {
		income.Month = *input.Month
	}

	if input.Year != nil {
		income.Year = *input.Year
	}

	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return &UpdateIncomeOutput{Income: ToIncomeOutput(income)}, nil
}
