package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

func TestScheduleInstallments_SingleInstallment(t *testing.T) {
	out, err := ScheduleInstallments(ScheduleInput{
		TotalAmount:   decimal.NewFromFloat(120.50),
		Count:         1,
		PurchaseDate:  date(2024, time.March, 2),
		PaymentMethod: valueobject.PaymentMethodPix,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 installment, got %d", len(out))
	}
	if !out[0].Amount.Equal(decimal.NewFromFloat(120.50)) {
		t.Errorf("expected full amount, got %s", out[0].Amount)
	}
	if out[0].Cycle != (Cycle{Month: 3, Year: 2024}) {
		t.Errorf("expected 03/2024, got %s", out[0].Cycle)
	}
	if out[0].Index != 1 || out[0].Count != 1 {
		t.Errorf("expected index 1 of 1, got %d of %d", out[0].Index, out[0].Count)
	}
}

func TestScheduleInstallments_SumInvariant(t *testing.T) {
	// Every share is total/count rounded to the cent, applied uniformly
	// with no remainder redistribution; the sum must stay within half a
	// cent per installment of the total.
	cases := []struct {
		total string
		count int
	}{
		{"100.00", 3},
		{"999.99", 7},
		{"0.01", 2},
		{"1500.00", 12},
		{"73.27", 5},
	}

	for _, tc := range cases {
		total := decimal.RequireFromString(tc.total)
		out, err := ScheduleInstallments(ScheduleInput{
			TotalAmount:   total,
			Count:         tc.count,
			PurchaseDate:  date(2024, time.June, 10),
			PaymentMethod: valueobject.PaymentMethodCash,
		})
		if err != nil {
			t.Fatalf("%s in %d: unexpected error: %v", tc.total, tc.count, err)
		}

		sum := decimal.Zero
		for _, inst := range out {
			sum = sum.Add(inst.Amount)
		}

		tolerance := decimal.NewFromFloat(0.005).Mul(decimal.NewFromInt(int64(tc.count)))
		if sum.Sub(total).Abs().GreaterThan(tolerance) {
			t.Errorf("%s in %d: sum %s deviates from total by more than %s",
				tc.total, tc.count, sum, tolerance)
		}
	}
}

func TestScheduleInstallments_UniformShares(t *testing.T) {
	out, err := ScheduleInstallments(ScheduleInput{
		TotalAmount:   decimal.NewFromInt(100),
		Count:         3,
		PurchaseDate:  date(2024, time.June, 10),
		PaymentMethod: valueobject.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := decimal.NewFromFloat(33.33)
	for _, inst := range out {
		if !inst.Amount.Equal(want) {
			t.Errorf("installment %d: expected %s, got %s", inst.Index, want, inst.Amount)
		}
	}
}

func TestScheduleInstallments_MonthlyOffset(t *testing.T) {
	// count=12 starting 11/2024: installment 3 must bill to 01/2025.
	out, err := ScheduleInstallments(ScheduleInput{
		TotalAmount:   decimal.NewFromInt(1200),
		Count:         12,
		PurchaseDate:  date(2024, time.November, 2),
		PaymentMethod: valueobject.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := Cycle{Month: 11, Year: 2024}
	for i, inst := range out {
		if inst.Index != i+1 {
			t.Errorf("expected contiguous 1-based indexes, got %d at position %d", inst.Index, i)
		}
		if want := base.AddMonths(i); inst.Cycle != want {
			t.Errorf("installment %d: expected cycle %s, got %s", inst.Index, want, inst.Cycle)
		}
	}

	if out[2].Cycle != (Cycle{Month: 1, Year: 2025}) {
		t.Errorf("installment 3: expected 01/2025, got %s", out[2].Cycle)
	}
}

func TestScheduleInstallments_BaseCycleRespectsClosingDay(t *testing.T) {
	// Purchase on Nubank after closing day 5: the whole plan shifts by one
	// month relative to the purchase date.
	out, err := ScheduleInstallments(ScheduleInput{
		TotalAmount:   decimal.NewFromInt(300),
		Count:         3,
		PurchaseDate:  date(2024, time.March, 10),
		PaymentMethod: valueobject.PaymentMethodNubank,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCycles := []Cycle{
		{Month: 4, Year: 2024},
		{Month: 5, Year: 2024},
		{Month: 6, Year: 2024},
	}
	for i, inst := range out {
		if inst.Cycle != wantCycles[i] {
			t.Errorf("installment %d: expected %s, got %s", inst.Index, wantCycles[i], inst.Cycle)
		}
	}
}

func TestScheduleInstallments_MonthEndClamp(t *testing.T) {
	// Purchase on the 31st of a 31-day month, four installments: the
	// effective date clamps in shorter months but the resolved cycles are
	// untouched.
	out, err := ScheduleInstallments(ScheduleInput{
		TotalAmount:   decimal.NewFromInt(400),
		Count:         4,
		PurchaseDate:  date(2024, time.January, 31),
		PaymentMethod: valueobject.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDays := []int{31, 29, 31, 30} // Jan, Feb (leap), Mar, Apr
	wantCycles := []Cycle{
		{Month: 1, Year: 2024},
		{Month: 2, Year: 2024},
		{Month: 3, Year: 2024},
		{Month: 4, Year: 2024},
	}

	for i, inst := range out {
		if inst.Cycle != wantCycles[i] {
			t.Errorf("installment %d: expected cycle %s, got %s", inst.Index, wantCycles[i], inst.Cycle)
		}
		if inst.EffectiveDate.Day() != wantDays[i] {
			t.Errorf("installment %d: expected effective day %d, got %d",
				inst.Index, wantDays[i], inst.EffectiveDate.Day())
		}
		if int(inst.EffectiveDate.Month()) != inst.Cycle.Month || inst.EffectiveDate.Year() != inst.Cycle.Year {
			t.Errorf("installment %d: effective date %s left its cycle %s",
				inst.Index, inst.EffectiveDate.Format("2006-01-02"), inst.Cycle)
		}
	}
}

func TestScheduleInstallments_RejectsInvalidInput(t *testing.T) {
	t.Run("zero installment count", func(t *testing.T) {
		out, err := ScheduleInstallments(ScheduleInput{
			TotalAmount:   decimal.NewFromInt(100),
			Count:         0,
			PurchaseDate:  date(2024, time.March, 2),
			PaymentMethod: valueobject.PaymentMethodPix,
		})
		if !errors.Is(err, domainerror.ErrInvalidInstallmentCount) {
			t.Errorf("expected ErrInvalidInstallmentCount, got %v", err)
		}
		if out != nil {
			t.Error("expected no installments on rejected input")
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		out, err := ScheduleInstallments(ScheduleInput{
			TotalAmount:   decimal.NewFromInt(-5),
			Count:         2,
			PurchaseDate:  date(2024, time.March, 2),
			PaymentMethod: valueobject.PaymentMethodPix,
		})
		if !errors.Is(err, domainerror.ErrInvalidExpenseAmount) {
			t.Errorf("expected ErrInvalidExpenseAmount, got %v", err)
		}
		if out != nil {
			t.Error("expected no installments on rejected input")
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := ScheduleInstallments(ScheduleInput{
			TotalAmount:   decimal.Zero,
			Count:         2,
			PurchaseDate:  date(2024, time.March, 2),
			PaymentMethod: valueobject.PaymentMethodPix,
		})
		if !errors.Is(err, domainerror.ErrInvalidExpenseAmount) {
			t.Errorf("expected ErrInvalidExpenseAmount, got %v", err)
		}
	})
}

func TestPlanProgress(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 4, "25"},
		{3, 4, "75"},
		{4, 4, "100"},
		{1, 3, "33.3"},
		{2, 0, "0"},
	}

	for _, tt := range tests {
		got := PlanProgress(tt.current, tt.total)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("PlanProgress(%d, %d): expected %s, got %s", tt.current, tt.total, tt.want, got)
		}
	}
}

func TestPlanCompletionCycle(t *testing.T) {
	first := Cycle{Month: 11, Year: 2024}
	if got := PlanCompletionCycle(first, 4); got != (Cycle{Month: 2, Year: 2025}) {
		t.Errorf("expected 02/2025, got %s", got)
	}
	if got := PlanCompletionCycle(first, 1); got != first {
		t.Errorf("expected first cycle for single installment, got %s", got)
	}
}
