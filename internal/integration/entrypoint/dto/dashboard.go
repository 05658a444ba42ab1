// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the monthly summary in API responses.
type SummaryResponse struct {
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	Profile          string  `json:"profile"`
	TotalIncome      string  `json:"total_income"`
	VariableExpenses string  `json:"variable_expenses"`
	FixedExpenses    string  `json:"fixed_expenses"`
	TotalExpenses    string  `json:"total_expenses"`
	RemainingBalance string  `json:"remaining_balance"`
	SpendRatio       *string `json:"spend_ratio,omitempty"`
	FinancialStatus  string  `json:"financial_status"`
	AlertLevel       string  `json:"alert_level"`
	AlertPercentage  string  `json:"alert_percentage"`
}

// BreakdownsResponse represents grouped expense totals in API responses.
type BreakdownsResponse struct {
	Month      int               `json:"month"`
	Year       int               `json:"year"`
	Profile    string            `json:"profile"`
	ByCategory map[string]string `json:"by_category"`
	ByMethod   map[string]string `json:"by_method"`
	ByProfile  map[string]string `json:"by_profile"`
}

// CardForecastResponse represents one card's projection in API responses.
type CardForecastResponse struct {
	Method                 string `json:"method"`
	CurrentCycleTotal      string `json:"current_cycle_total"`
	FutureInstallmentTotal string `json:"future_installment_total"`
	NextMonthForecast      string `json:"next_month_forecast"`
}

// CardForecastListResponse represents the per-card projections.
type CardForecastListResponse struct {
	Month int                    `json:"month"`
	Year  int                    `json:"year"`
	Cards []CardForecastResponse `json:"cards"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		Month:            output.Month,
		Year:             output.Year,
		Profile:          output.Profile,
		TotalIncome:      output.TotalIncome.StringFixed(2),
		VariableExpenses: output.VariableExpenses.StringFixed(2),
		FixedExpenses:    output.FixedExpenses.StringFixed(2),
		TotalExpenses:    output.TotalExpenses.StringFixed(2),
		RemainingBalance: output.RemainingBalance.StringFixed(2),
		FinancialStatus:  string(output.FinancialStatus),
		AlertLevel:       string(output.AlertLevel),
		AlertPercentage:  output.AlertPercentage.StringFixed(1),
	}
	if output.SpendRatio != nil {
		ratio := output.SpendRatio.StringFixed(1)
		response.SpendRatio = &ratio
	}
	return response
}

// ToBreakdownsResponse converts a GetBreakdownsOutput to a BreakdownsResponse DTO.
func ToBreakdownsResponse(output *dashboard.GetBreakdownsOutput) BreakdownsResponse {
	return BreakdownsResponse{
		Month:      output.Month,
		Year:       output.Year,
		Profile:    output.Profile,
		ByCategory: formatTotals(output.ByCategory),
		ByMethod:   formatTotals(output.ByMethod),
		ByProfile:  formatTotals(output.ByProfile),
	}
}

// ToCardForecastListResponse converts a GetCardForecastOutput to its DTO.
func ToCardForecastListResponse(output *dashboard.GetCardForecastOutput) CardForecastListResponse {
	response := CardForecastListResponse{
		Month: output.Month,
		Year:  output.Year,
		Cards: make([]CardForecastResponse, len(output.Cards)),
	}
	for i, card := range output.Cards {
		response.Cards[i] = CardForecastResponse{
			Method:                 card.Method,
			CurrentCycleTotal:      card.CurrentCycleTotal.StringFixed(2),
			FutureInstallmentTotal: card.FutureInstallmentTotal.StringFixed(2),
			NextMonthForecast:      card.NextMonthForecast.StringFixed(2),
		}
	}
	return response
}

func formatTotals(totals map[string]decimal.Decimal) map[string]string {
	formatted := make(map[string]string, len(totals))
	for key, total := range totals {
		formatted[key] = total.StringFixed(2)
	}
	return formatted
}
