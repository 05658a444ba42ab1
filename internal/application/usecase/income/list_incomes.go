// Package income contains income-related use cases.
package income

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// ListIncomesInput represents the input for listing incomes.
type ListIncomesInput struct {
	Month   *int
	Year    *int
	Profile *valueobject.Profile
}

// IncomeOutput represents a single income record in the output.
type IncomeOutput struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Profile     string
	Month       int
	Year        int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToIncomeOutput maps an income entity to its use case output.
func ToIncomeOutput(i *entity.Income) *IncomeOutput {
	return &IncomeOutput{
		ID:          i.ID,
		Description: i.Description,
		Amount:      i.Amount,
		Category:    i.Category,
		Profile:     string(i.Profile),
		Month:       i.Month,
		Year:        i.Year,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*IncomeOutput
}

// ListIncomesUseCase handles listing income records.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute lists income records matching the filter.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.FindByFilter(ctx, adapter.IncomeFilter{
		Month:   input.Month,
		Year:    input.Year,
		Profile: input.Profile,
	})
	if err != nil {
		return nil, err
	}

	output := &ListIncomesOutput{
		Incomes: make([]*IncomeOutput, len(incomes)),
	}
	for i, inc := range incomes {
		output.Incomes[i] = ToIncomeOutput(inc)
	}
	return output, nil
}
