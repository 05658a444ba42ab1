package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/valueobject"
)

// Income represents a monthly income record. No billing-cycle or installment
// logic applies to income: month and year are taken as entered.
type Income struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Profile     valueobject.Profile
	Month       int
	Year        int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncome creates a new Income record.
func NewIncome(
	description string,
	amount decimal.Decimal,
	category string,
	profile valueobject.Profile,
	month, year int,
) *Income {
	now := time.Now().UTC()
	return &Income{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Profile:     profile,
		Month:       month,
		Year:        year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
