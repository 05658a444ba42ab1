package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/billing"
	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func expenseRecord(amount, profile, method, category string, month, year int) *entity.Expense {
	return &entity.Expense{
		ID:               uuid.New(),
		Description:      "registro",
		Amount:           dec(amount),
		TotalAmount:      dec(amount),
		Category:         category,
		PaymentMethod:    valueobject.PaymentMethod(method),
		Profile:          valueobject.Profile(profile),
		PurchaseDate:     time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		BillingMonth:     month,
		BillingYear:      year,
		InstallmentIndex: 1,
		InstallmentCount: 1,
	}
}

func incomeRecord(amount, profile string, month, year int) *entity.Income {
	return &entity.Income{
		ID:      uuid.New(),
		Amount:  dec(amount),
		Profile: valueobject.Profile(profile),
		Month:   month,
		Year:    year,
	}
}

func TestTotals_ProfileFilter(t *testing.T) {
	expenses := []*entity.Expense{
		expenseRecord("100.00", "Gabriel", "Pix", "Mercado", 3, 2024),
		expenseRecord("200.00", "Paloma", "Pix", "Mercado", 3, 2024),
		expenseRecord("50.00", "Casa", "Pix", "Contas", 3, 2024),
		expenseRecord("999.00", "Gabriel", "Pix", "Mercado", 4, 2024), // other cycle
	}

	tests := []struct {
		name   string
		filter string
		want   string
	}{
		{"everyone filter matches all profiles", "Ambos", "350.00"},
		{"member filter includes shared records", "Gabriel", "150.00"},
		{"other member filter includes shared records", "Paloma", "250.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalVariableExpenses(expenses, 3, 2024, valueobject.Profile(tt.filter))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSpendRatio_ZeroIncomeSentinel(t *testing.T) {
	ratio, ok := SpendRatio(dec("500.00"), decimal.Zero)
	if ok {
		t.Error("expected ok=false for zero income")
	}
	if !ratio.IsZero() {
		t.Errorf("expected zero ratio, got %s", ratio)
	}

	if status := FinancialStatusFor(dec("500.00"), decimal.Zero); status != StatusNoData {
		t.Errorf("expected %s, got %s", StatusNoData, status)
	}

	level, pct := AlertLevelFor(dec("500.00"), decimal.Zero)
	if level != AlertGreen || !pct.IsZero() {
		t.Errorf("expected green/0 for zero income, got %s/%s", level, pct)
	}
}

func TestFinancialStatus_Thresholds(t *testing.T) {
	income := dec("1000.00")
	tests := []struct {
		expenses string
		want     FinancialStatus
	}{
		{"500.00", StatusExcellent}, // exactly 50%
		{"500.01", StatusGood},
		{"700.00", StatusGood}, // exactly 70%
		{"700.01", StatusCaution},
		{"850.00", StatusCaution}, // exactly 85%
		{"850.01", StatusCritical},
		{"1200.00", StatusCritical}, // over 100%
		{"0.00", StatusExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.expenses, func(t *testing.T) {
			if got := FinancialStatusFor(dec(tt.expenses), income); got != tt.want {
				t.Errorf("expenses %s: expected %s, got %s", tt.expenses, tt.want, got)
			}
		})
	}
}

func TestAlertLevel_Thresholds(t *testing.T) {
	income := dec("1000.00")
	tests := []struct {
		expenses string
		want     AlertLevel
	}{
		{"640.00", AlertGreen},
		{"650.00", AlertYellow}, // exactly 65%
		{"740.00", AlertYellow},
		{"750.00", AlertOrange}, // exactly 75%
		{"940.00", AlertOrange},
		{"950.00", AlertRed}, // exactly 95%
		{"1500.00", AlertRed},
	}

	for _, tt := range tests {
		t.Run(tt.expenses, func(t *testing.T) {
			got, _ := AlertLevelFor(dec(tt.expenses), income)
			if got != tt.want {
				t.Errorf("expenses %s: expected %s, got %s", tt.expenses, tt.want, got)
			}
		})
	}
}

func TestRemainingBalance_CanGoNegative(t *testing.T) {
	balance := RemainingBalance(dec("1000.00"), dec("800.00"), dec("400.00"))
	if !balance.Equal(dec("-200.00")) {
		t.Errorf("expected -200.00, got %s", balance)
	}
}

func TestGroupReducers(t *testing.T) {
	expenses := []*entity.Expense{
		expenseRecord("100.00", "Gabriel", "Pix", "Mercado", 3, 2024),
		expenseRecord("80.00", "Gabriel", "Nubank", "Mercado", 3, 2024),
		expenseRecord("50.00", "Paloma", "Pix", "Lazer", 3, 2024),
	}

	byCategory := GroupExpensesByCategory(expenses, 3, 2024, valueobject.ProfileBoth)
	if !byCategory["Mercado"].Equal(dec("180.00")) {
		t.Errorf("expected Mercado 180.00, got %s", byCategory["Mercado"])
	}
	if !byCategory["Lazer"].Equal(dec("50.00")) {
		t.Errorf("expected Lazer 50.00, got %s", byCategory["Lazer"])
	}

	byMethod := GroupExpensesByPaymentMethod(expenses, 3, 2024, valueobject.ProfileBoth)
	if !byMethod["Pix"].Equal(dec("150.00")) {
		t.Errorf("expected Pix 150.00, got %s", byMethod["Pix"])
	}

	byProfile := GroupExpensesByProfile(expenses, 3, 2024, valueobject.Profile("Gabriel"))
	if _, ok := byProfile["Paloma"]; ok {
		t.Error("member filter must not include the other member's records")
	}
	if !byProfile["Gabriel"].Equal(dec("180.00")) {
		t.Errorf("expected Gabriel 180.00, got %s", byProfile["Gabriel"])
	}
}

func TestInstallmentAggregation_EachMonthCountsOnlyItsShare(t *testing.T) {
	installments, err := billing.ScheduleInstallments(billing.ScheduleInput{
		TotalAmount:   dec("300.00"),
		Count:         3,
		PurchaseDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: valueobject.PaymentMethodPix,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	planID := uuid.New()
	var expenses []*entity.Expense
	for _, inst := range installments {
		expenses = append(expenses, entity.NewExpenseFromInstallment(
			planID, "TV", dec("300.00"), "Eletrônicos",
			valueobject.PaymentMethodPix, valueobject.Profile("Casa"),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false, "", inst,
		))
	}

	for month := 3; month <= 5; month++ {
		total := TotalVariableExpenses(expenses, month, 2024, valueobject.ProfileBoth)
		if !total.Equal(dec("100.00")) {
			t.Errorf("month %d: expected 100.00, got %s", month, total)
		}
	}
	if total := TotalVariableExpenses(expenses, 6, 2024, valueobject.ProfileBoth); !total.IsZero() {
		t.Errorf("month 6: expected zero, got %s", total)
	}
}

func TestCardForecasts(t *testing.T) {
	plan := func(amount string, method string, month, year, index, count int) *entity.Expense {
		e := expenseRecord(amount, "Gabriel", method, "Parcelas", month, year)
		e.InstallmentIndex = index
		e.InstallmentCount = count
		return e
	}

	expenses := []*entity.Expense{
		plan("100.00", "Nubank", 3, 2024, 1, 3),
		plan("100.00", "Nubank", 4, 2024, 2, 3),
		plan("100.00", "Nubank", 5, 2024, 3, 3),
		expenseRecord("70.00", "Gabriel", "Nubank", "Mercado", 4, 2024), // one-off next month
		plan("40.00", "Itaú", 4, 2024, 1, 2),
		plan("50.00", "Nubank", 12, 2024, 1, 2),
		plan("50.00", "Nubank", 1, 2025, 2, 2), // year rollover still "future"
	}

	future := FutureInstallmentTotal(expenses, valueobject.PaymentMethodNubank, 3, 2024)
	if !future.Equal(dec("300.00")) {
		t.Errorf("expected future installments 300.00, got %s", future)
	}

	forecast := NextMonthForecast(expenses, valueobject.PaymentMethodNubank, 3, 2024)
	if !forecast.Equal(dec("170.00")) {
		t.Errorf("expected next month forecast 170.00, got %s", forecast)
	}

	rollover := NextMonthForecast(expenses, valueobject.PaymentMethodNubank, 12, 2024)
	if !rollover.Equal(dec("50.00")) {
		t.Errorf("expected December forecast 50.00 for January, got %s", rollover)
	}
}
