// Package dashboard contains the monthly aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// MinDashboardYear bounds the accepted year range at the bottom. There is no
// household data before this.
const MinDashboardYear = 2000

// SummaryInput selects the cycle and profile view for every dashboard query.
type SummaryInput struct {
	Month   int
	Year    int
	Profile valueobject.Profile // empty defaults to "Ambos"
}

// GetSummaryOutput is the month's headline numbers.
type GetSummaryOutput struct {
	Month            int
	Year             int
	Profile          string
	TotalIncome      decimal.Decimal
	VariableExpenses decimal.Decimal
	FixedExpenses    decimal.Decimal
	TotalExpenses    decimal.Decimal
	RemainingBalance decimal.Decimal
	SpendRatio       *decimal.Decimal // nil when there is no income
	FinancialStatus  FinancialStatus
	AlertLevel       AlertLevel
	AlertPercentage  decimal.Decimal
}

// GetSummaryUseCase computes the monthly summary.
type GetSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
	fixedRepo   adapter.FixedExpenseRepository
	incomeRepo  adapter.IncomeRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	fixedRepo adapter.FixedExpenseRepository,
	incomeRepo adapter.IncomeRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo: expenseRepo,
		fixedRepo:   fixedRepo,
		incomeRepo:  incomeRepo,
	}
}

// Execute computes the summary for one cycle. Profile filtering is applied
// in the reducers so the shared-household tag is handled consistently.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input SummaryInput) (*GetSummaryOutput, error) {
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

	fixed, err := uc.fixedRepo.FindByFilter(ctx, adapter.FixedExpenseFilter{
		ReferenceMonth: &input.Month,
		ReferenceYear:  &input.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed expenses: %w", err)
	}

	incomes, err := uc.incomeRepo.FindByFilter(ctx, adapter.IncomeFilter{
		Month: &input.Month,
		Year:  &input.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	income := TotalIncome(incomes, input.Month, input.Year, filter)
	variable := TotalVariableExpenses(expenses, input.Month, input.Year, filter)
	fixedTotal := TotalFixedExpenses(fixed, input.Month, input.Year, filter)
	totalExpenses := variable.Add(fixedTotal)

	output := &GetSummaryOutput{
		Month:            input.Month,
		Year:             input.Year,
		Profile:          string(filter),
		TotalIncome:      income,
		VariableExpenses: variable,
		FixedExpenses:    fixedTotal,
		TotalExpenses:    totalExpenses,
		RemainingBalance: RemainingBalance(income, variable, fixedTotal),
		FinancialStatus:  FinancialStatusFor(totalExpenses, income),
	}

	if ratio, ok := SpendRatio(totalExpenses, income); ok {
		rounded := ratio.Round(1)
		output.SpendRatio = &rounded
	}

	output.AlertLevel, output.AlertPercentage = AlertLevelFor(totalExpenses, income)

	return output, nil
}

// normalizeInput validates the cycle and defaults an empty profile filter to
// the everyone view. Shared across the dashboard use cases.
func normalizeInput(input *SummaryInput) (valueobject.Profile, error) {
	if input.Month < 1 || input.Month > 12 {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if input.Year < MinDashboardYear {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidYear,
			fmt.Sprintf("year must be %d or later", MinDashboardYear),
			domainerror.ErrInvalidYear,
		)
	}
	if input.Profile == "" {
		input.Profile = valueobject.ProfileBoth
	}
	return input.Profile, nil
}
