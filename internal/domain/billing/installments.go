package billing

import (
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// Installment is one of the N dated charges a purchase is split into.
type Installment struct {
	Index  int // 1-based position within the plan
	Count  int // total installments in the plan
	Amount decimal.Decimal
	Cycle  Cycle

	// EffectiveDate is the purchase day-of-month carried into the
	// installment's cycle, clamped to the cycle's last valid day. It is
	// used for display and date arithmetic only; the resolved Cycle is
	// authoritative for aggregation.
	EffectiveDate time.Time
}

// ScheduleInput describes a purchase to be expanded into installments.
type ScheduleInput struct {
	TotalAmount    decimal.Decimal
	Count          int
	PurchaseDate   time.Time
	PaymentMethod  valueobject.PaymentMethod
	DeferNextMonth bool
}

// ScheduleInstallments expands a purchase into its installment records.
//
// Each installment carries total/count rounded to the currency's minor unit.
// The rounding policy is deliberately simple: every share is rounded the
// same way and the remainder is not redistributed, so the sum of shares may
// differ from the total by less than half a cent per installment.
//
// Installment i bills to the base cycle (resolved once from the purchase
// date, payment method and defer flag) advanced by i-1 months. Scheduling is
// all-or-nothing: invalid input produces no installments.
func ScheduleInstallments(input ScheduleInput) ([]Installment, error) {
	if input.Count < 1 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installment count must be at least 1",
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	share := input.TotalAmount.Div(decimal.NewFromInt(int64(input.Count))).Round(2)
	baseCycle := ResolveCycle(input.PurchaseDate, input.PaymentMethod, input.DeferNextMonth)
	purchaseDay := input.PurchaseDate.Day()

	installments := make([]Installment, 0, input.Count)
	for i := 1; i <= input.Count; i++ {
		cycle := baseCycle.AddMonths(i - 1)
		day := cycle.ClampDay(purchaseDay)

		installments = append(installments, Installment{
			Index:  i,
			Count:  input.Count,
			Amount: share,
			Cycle:  cycle,
			EffectiveDate: time.Date(
				cycle.Year, time.Month(cycle.Month), day,
				0, 0, 0, 0, time.UTC,
			),
		})
	}

	return installments, nil
}

// PlanProgress returns the percentage of a plan already billed, given the
// 1-based index of the current installment.
func PlanProgress(current, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(current)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

// PlanCompletionCycle returns the cycle the last installment of a plan bills
// to, given the cycle of the first installment.
func PlanCompletionCycle(first Cycle, total int) Cycle {
	if total < 1 {
		return first
	}
	return first.AddMonths(total - 1)
}
