package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/billing"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// PaymentStatus tracks whether a fixed expense instance has been paid for
// its reference month.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pendente"
	PaymentStatusPaid    PaymentStatus = "pago"
)

// FixedExpense is a recurring monthly obligation materialized as one record
// per reference month, tracked with a payment status.
type FixedExpense struct {
	ID             uuid.UUID
	Description    string
	Amount         decimal.Decimal
	Category       string // always FixedCategory
	DueDay         int    // nominal day 1-31; clamped per reference month
	PaymentMethod  valueobject.PaymentMethod
	Profile        valueobject.Profile
	ReferenceMonth int
	ReferenceYear  int
	PaymentStatus  PaymentStatus
	PaymentDate    *time.Time
	Active         bool
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewFixedExpense creates a pending fixed expense instance for the given
// reference month.
func NewFixedExpense(
	description string,
	amount decimal.Decimal,
	dueDay int,
	method valueobject.PaymentMethod,
	profile valueobject.Profile,
	referenceMonth, referenceYear int,
	notes string,
) *FixedExpense {
	now := time.Now().UTC()
	return &FixedExpense{
		ID:             uuid.New(),
		Description:    description,
		Amount:         amount,
		Category:       FixedCategory,
		DueDay:         dueDay,
		PaymentMethod:  method,
		Profile:        profile,
		ReferenceMonth: referenceMonth,
		ReferenceYear:  referenceYear,
		PaymentStatus:  PaymentStatusPending,
		Active:         true,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ReferenceCycle returns the cycle this instance belongs to.
func (f *FixedExpense) ReferenceCycle() billing.Cycle {
	return billing.Cycle{Month: f.ReferenceMonth, Year: f.ReferenceYear}
}

// DueDate returns the effective due date within the reference month, with
// the nominal due day clamped to the month's last valid day (day 31 in a
// 30-day month falls due on the 30th).
func (f *FixedExpense) DueDate() time.Time {
	cycle := f.ReferenceCycle()
	return time.Date(
		cycle.Year, time.Month(cycle.Month), cycle.ClampDay(f.DueDay),
		0, 0, 0, 0, time.UTC,
	)
}

// MarkPaid records the payment date and flips the status to paid.
func (f *FixedExpense) MarkPaid(paidAt time.Time) {
	f.PaymentStatus = PaymentStatusPaid
	f.PaymentDate = &paidAt
	f.UpdatedAt = time.Now().UTC()
}

// MarkPending reverts the instance to pending and clears the payment date.
func (f *FixedExpense) MarkPending() {
	f.PaymentStatus = PaymentStatusPending
	f.PaymentDate = nil
	f.UpdatedAt = time.Now().UTC()
}
