// Package expense contains expense-related use cases.
package expense

import (
	"context"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	BillingMonth  *int
	BillingYear   *int
	Profile       *valueobject.Profile
	Category      *string
	PaymentMethod *valueobject.PaymentMethod
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles listing expense records.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists expense records matching the filter. Each installment of a
// plan is its own record, so a month view only shows the installments billed
// in that month.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		BillingMonth:  input.BillingMonth,
		BillingYear:   input.BillingYear,
		Profile:       input.Profile,
		Category:      input.Category,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	output := &ListExpensesOutput{
		Expenses: make([]*ExpenseOutput, len(expenses)),
	}
	for i, e := range expenses {
		output.Expenses[i] = ToExpenseOutput(e)
	}
	return output, nil
}
