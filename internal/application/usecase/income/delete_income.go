// Package income contains income-related use cases.
package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	IncomeID uuid.UUID
}

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute removes an income record.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) error {
	if _, err := uc.incomeRepo.FindByID(ctx, input.IncomeID); err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return fmt.Errorf("failed to find income: %w", err)
	}

	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}

	return nil
}
