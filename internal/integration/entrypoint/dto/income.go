// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-budget/backend/internal/application/usecase/income"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category,omitempty"`
	Profile     string  `json:"profile" binding:"required"`
	Month       int     `json:"month" binding:"required,min=1,max=12"`
	Year        int     `json:"year" binding:"required"`
}

// UpdateIncomeRequest represents the request body for income update.
type UpdateIncomeRequest struct {
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
	Profile     *string  `json:"profile,omitempty"`
	Month       *int     `json:"month,omitempty" binding:"omitempty,min=1,max=12"`
	Year        *int     `json:"year,omitempty"`
}

// IncomeResponse represents a single income record in API responses.
type IncomeResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Profile     string    `json:"profile"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts an IncomeOutput to an IncomeResponse DTO.
func ToIncomeResponse(i *income.IncomeOutput) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID.String(),
		Description: i.Description,
		Amount:      i.Amount.StringFixed(2),
		Category:    i.Category,
		Profile:     i.Profile,
		Month:       i.Month,
		Year:        i.Year,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ToIncomeListResponse converts a list of income outputs to the list DTO.
func ToIncomeListResponse(incomes []*income.IncomeOutput) IncomeListResponse {
	response := IncomeListResponse{
		Incomes: make([]IncomeResponse, len(incomes)),
	}
	for i, inc := range incomes {
		response.Incomes[i] = ToIncomeResponse(inc)
	}
	return response
}
