// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// CreateIncomeInput represents the input for income creation. Month and year
// are taken as entered; no billing-cycle resolution applies to income.
type CreateIncomeInput struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Profile     valueobject.Profile
	Month       int
	Year        int
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *IncomeOutput
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if input.Description == "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeEmptyIncomeDescription,
			"description cannot be empty",
			domainerror.ErrEmptyIncomeDescription,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"amount must be positive",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	income := entity.NewIncome(
		input.Description,
		input.Amount,
		input.Category,
		input.Profile,
		input.Month,
		input.Year,
	)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &CreateIncomeOutput{Income: ToIncomeOutput(income)}, nil
}
