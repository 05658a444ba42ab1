// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// GetExpensePlanInput represents the input for fetching an installment plan.
type GetExpensePlanInput struct {
	PlanID uuid.UUID
}

// GetExpensePlanOutput represents every record of one installment plan,
// ordered by installment index.
type GetExpensePlanOutput struct {
	PlanID   uuid.UUID
	Expenses []*ExpenseOutput
}

// GetExpensePlanUseCase handles fetching all installments of a purchase.
type GetExpensePlanUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpensePlanUseCase creates a new GetExpensePlanUseCase instance.
func NewGetExpensePlanUseCase(expenseRepo adapter.ExpenseRepository) *GetExpensePlanUseCase {
	return &GetExpensePlanUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves the full installment schedule of a plan.
func (uc *GetExpensePlanUseCase) Execute(ctx context.Context, input GetExpensePlanInput) (*GetExpensePlanOutput, error) {
	expenses, err := uc.expenseRepo.FindByPlan(ctx, input.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense plan: %w", err)
	}
	if len(expenses) == 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense plan not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	output := &GetExpensePlanOutput{PlanID: input.PlanID}
	for _, e := range expenses {
		output.Expenses = append(output.Expenses, ToExpenseOutput(e))
	}
	return output, nil
}
