// Package fixedexpense contains fixed expense use cases.
package fixedexpense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// DeleteFixedExpenseInput represents the input for fixed expense deletion.
type DeleteFixedExpenseInput struct {
	FixedExpenseID uuid.UUID
}

// DeleteFixedExpenseUseCase handles fixed expense deletion logic.
type DeleteFixedExpenseUseCase struct {
	fixedRepo adapter.FixedExpenseRepository
}

// NewDeleteFixedExpenseUseCase creates a new DeleteFixedExpenseUseCase instance.
func NewDeleteFixedExpenseUseCase(fixedRepo adapter.FixedExpenseRepository) *DeleteFixedExpenseUseCase {
	return &DeleteFixedExpenseUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute removes a fixed expense instance.
func (uc *DeleteFixedExpenseUseCase) Execute(ctx context.Context, input DeleteFixedExpenseInput) error {
	if _, err := uc.fixedRepo.FindByID(ctx, input.FixedExpenseID); err != nil {
		if errors.Is(err, domainerror.ErrFixedExpenseNotFound) {
			return domainerror.NewFixedExpenseError(
				domainerror.ErrCodeFixedExpenseNotFound,
				"fixed expense not found",
				domainerror.ErrFixedExpenseNotFound,
			)
		}
		return fmt.Errorf("failed to find fixed expense: %w", err)
	}

	if err := uc.fixedRepo.Delete(ctx, input.FixedExpenseID); err != nil {
		return fmt.Errorf("failed to delete fixed expense: %w", err)
	}

	return nil
}
