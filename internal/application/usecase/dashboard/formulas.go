// Package dashboard contains the monthly aggregation use cases. The reducers
// in this file are pure functions over entity slices so they can be tested
// without any persistence in place.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// FinancialStatus classifies how much of the month's income has been spent.
type FinancialStatus string

const (
	StatusNoData    FinancialStatus = "Sem dados"
	StatusExcellent FinancialStatus = "Excelente"
	StatusGood      FinancialStatus = "Bom"
	StatusCaution   FinancialStatus = "Atenção"
	StatusCritical  FinancialStatus = "Crítico"
)

// AlertLevel is the notification badge color for the month.
type AlertLevel string

const (
	AlertGreen  AlertLevel = "green"
	AlertYellow AlertLevel = "yellow"
	AlertOrange AlertLevel = "orange"
	AlertRed    AlertLevel = "red"
)

var (
	hundred = decimal.NewFromInt(100)

	statusExcellentMax = decimal.NewFromInt(50)
	statusGoodMax      = decimal.NewFromInt(70)
	statusCautionMax   = decimal.NewFromInt(85)

	alertRedMin    = decimal.NewFromInt(95)
	alertOrangeMin = decimal.NewFromInt(75)
	alertYellowMin = decimal.NewFromInt(65)
)

// TotalIncome sums income amounts for the cycle and profile filter.
func TotalIncome(incomes []*entity.Income, month, year int, filter valueobject.Profile) decimal.Decimal {
	total := decimal.Zero
	for _, i := range incomes {
		if i.Month == month && i.Year == year && i.Profile.Matches(filter) {
			total = total.Add(i.Amount)
		}
	}
	return total
}

// TotalVariableExpenses sums the billed share of every expense record whose
// billing cycle matches. Each installment counts only the month it bills to;
// the plan's total amount is never summed here.
func TotalVariableExpenses(expenses []*entity.Expense, month, year int, filter valueobject.Profile) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.BillingMonth == month && e.BillingYear == year && e.Profile.Matches(filter) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalFixedExpenses sums fixed expense amounts for the reference cycle,
// regardless of payment status.
func TotalFixedExpenses(fixed []*entity.FixedExpense, month, year int, filter valueobject.Profile) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fixed {
		if f.ReferenceMonth == month && f.ReferenceYear == year && f.Profile.Matches(filter) {
			total = total.Add(f.Amount)
		}
	}
	return total
}

// RemainingBalance is what is left of the month's income after variable and
// fixed expenses. Negative when the household overspent.
func RemainingBalance(income, variable, fixed decimal.Decimal) decimal.Decimal {
	return income.Sub(variable).Sub(fixed)
}

// SpendRatio returns the percentage of income consumed by expenses. The
// second return value is false when there is no income to divide by; callers
// must treat that as "no data", not as zero.
func SpendRatio(expenses, income decimal.Decimal) (decimal.Decimal, bool) {
	if income.IsZero() {
		return decimal.Zero, false
	}
	return expenses.Div(income).Mul(hundred), true
}

// StatusForRatio buckets a spend percentage into a financial status. Bucket
// edges are inclusive on the lower side: exactly 50% is still Excellent.
func StatusForRatio(ratio decimal.Decimal) FinancialStatus {
	switch {
	case ratio.LessThanOrEqual(statusExcellentMax):
		return StatusExcellent
	case ratio.LessThanOrEqual(statusGoodMax):
		return StatusGood
	case ratio.LessThanOrEqual(statusCautionMax):
		return StatusCaution
	default:
		return StatusCritical
	}
}

// FinancialStatusFor combines the ratio and the no-data sentinel.
func FinancialStatusFor(expenses, income decimal.Decimal) FinancialStatus {
	ratio, ok := SpendRatio(expenses, income)
	if !ok {
		return StatusNoData
	}
	return StatusForRatio(ratio)
}

// AlertLevelFor computes the badge level from total expenses and income.
// Zero income is green with a zero percentage.
func AlertLevelFor(expenses, income decimal.Decimal) (AlertLevel, decimal.Decimal) {
	ratio, ok := SpendRatio(expenses, income)
	if !ok {
		return AlertGreen, decimal.Zero
	}
	ratio = ratio.Round(1)
	switch {
	case ratio.GreaterThanOrEqual(alertRedMin):
		return AlertRed, ratio
	case ratio.GreaterThanOrEqual(alertOrangeMin):
		return AlertOrange, ratio
	case ratio.GreaterThanOrEqual(alertYellowMin):
		return AlertYellow, ratio
	default:
		return AlertGreen, ratio
	}
}

// GroupExpensesByCategory sums matching records per category.
func GroupExpensesByCategory(expenses []*entity.Expense, month, year int, filter valueobject.Profile) map[string]decimal.Decimal {
	groups := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.BillingMonth == month && e.BillingYear == year && e.Profile.Matches(filter) {
			groups[e.Category] = groups[e.Category].Add(e.Amount)
		}
	}
	return groups
}

// GroupExpensesByPaymentMethod sums matching records per payment method.
func GroupExpensesByPaymentMethod(expenses []*entity.Expense, month, year int, filter valueobject.Profile) map[string]decimal.Decimal {
	groups := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.BillingMonth == month && e.BillingYear == year && e.Profile.Matches(filter) {
			key := string(e.PaymentMethod)
			groups[key] = groups[key].Add(e.Amount)
		}
	}
	return groups
}

// GroupExpensesByProfile sums matching records per responsible member.
func GroupExpensesByProfile(expenses []*entity.Expense, month, year int, filter valueobject.Profile) map[string]decimal.Decimal {
	groups := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.BillingMonth == month && e.BillingYear == year && e.Profile.Matches(filter) {
			key := string(e.Profile)
			groups[key] = groups[key].Add(e.Amount)
		}
	}
	return groups
}

// FutureInstallmentTotal sums installment-plan records of one card that bill
// strictly after the given cycle. One-off purchases are excluded even when
// they bill to a future month.
func FutureInstallmentTotal(expenses []*entity.Expense, method valueobject.PaymentMethod, month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.PaymentMethod != method || !e.IsInstallmentPlan() {
			continue
		}
		if cycleAfter(e.BillingMonth, e.BillingYear, month, year) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// NextMonthForecast sums every record of one card billing exactly to the
// cycle after the given one.
func NextMonthForecast(expenses []*entity.Expense, method valueobject.PaymentMethod, month, year int) decimal.Decimal {
	nextMonth := month + 1
	nextYear := year
	if nextMonth > 12 {
		nextMonth = 1
		nextYear++
	}

	total := decimal.Zero
	for _, e := range expenses {
		if e.PaymentMethod == method && e.BillingMonth == nextMonth && e.BillingYear == nextYear {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func cycleAfter(month, year, refMonth, refYear int) bool {
	if year != refYear {
		return year > refYear
	}
	return month > refMonth
}
