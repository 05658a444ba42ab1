// Package dashboard contains the monthly aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// CardForecast is the projection for one card.
type CardForecast struct {
	Method                 string
	CurrentCycleTotal      decimal.Decimal
	FutureInstallmentTotal decimal.Decimal
	NextMonthForecast      decimal.Decimal
}

// GetCardForecastOutput holds one forecast per configured card.
type GetCardForecastOutput struct {
	Month int
	Year  int
	Cards []CardForecast
}

// GetCardForecastUseCase computes per-card installment projections.
type GetCardForecastUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetCardForecastUseCase creates a new GetCardForecastUseCase instance.
func NewGetCardForecastUseCase(expenseRepo adapter.ExpenseRepository) *GetCardForecastUseCase {
	return &GetCardForecastUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute projects each card's future installment load and next statement.
// The whole expense collection is loaded because future cycles by definition
// fall outside any single-month filter.
func (uc *GetCardForecastUseCase) Execute(ctx context.Context, input SummaryInput) (*GetCardForecastOutput, error) {
	if _, err := normalizeInput(&input); err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	output := &GetCardForecastOutput{
		Month: input.Month,
		Year:  input.Year,
	}

	for _, method := range valueobject.CardPaymentMethods() {
		current := decimal.Zero
		for _, e := range expenses {
			if e.PaymentMethod == method && e.BillingMonth == input.Month && e.BillingYear == input.Year {
				current = current.Add(e.Amount)
			}
		}

		output.Cards = append(output.Cards, CardForecast{
			Method:                 string(method),
			CurrentCycleTotal:      current,
			FutureInstallmentTotal: FutureInstallmentTotal(expenses, method, input.Month, input.Year),
			NextMonthForecast:      NextMonthForecast(expenses, method, input.Month, input.Year),
		})
	}

	return output, nil
}
