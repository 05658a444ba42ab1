// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update. Only
// descriptive fields can change; amount, payment method, date and the
// resolved billing cycle are immutable once the plan is scheduled.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	Description *string
	Category    *string
	Notes       *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if input.Description != nil {
		if *input.Description == "" {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeEmptyExpenseDescription,
				"description cannot be empty",
				domainerror.ErrEmptyExpenseDescription,
			)
		}
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				domainerror.ErrExpenseDescriptionTooLong,
			)
		}
		expense.Description = *input.Description
	}

	if input.Category != nil {
		expense.Category = *input.Category
	}

	if input.Notes != nil {
		expense.Notes = *input.Notes
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: ToExpenseOutput(expense)}, nil
}
