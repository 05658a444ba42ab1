// Package dashboard contains the monthly aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
)

// GetBreakdownsOutput groups the month's variable expenses three ways.
type GetBreakdownsOutput struct {
	Month     int
	Year      int
	Profile   string
	ByCategory map[string]decimal.Decimal
	ByMethod   map[string]decimal.Decimal
	ByProfile  map[string]decimal.Decimal
}

// GetBreakdownsUseCase computes the grouped expense views.
type GetBreakdownsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetBreakdownsUseCase creates a new GetBreakdownsUseCase instance.
func NewGetBreakdownsUseCase(expenseRepo adapter.ExpenseRepository) *GetBreakdownsUseCase {
	return &GetBreakdownsUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute computes category, payment method and member breakdowns for one
// cycle.
func (uc *GetBreakdownsUseCase) Execute(ctx context.Context, input SummaryInput) (*GetBreakdownsOutput, error) {
	filter, err := normalizeInput(&input)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		BillingMonth: &input.Month,
		BillingYear:  &input.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	return &GetBreakdownsOutput{
		Month:      input.Month,
		Year:       input.Year,
		Profile:    string(filter),
		ByCategory: GroupExpensesByCategory(expenses, input.Month, input.Year, filter),
		ByMethod:   GroupExpensesByPaymentMethod(expenses, input.Month, input.Year, filter),
		ByProfile:  GroupExpensesByProfile(expenses, input.Month, input.Year, filter),
	}, nil
}
