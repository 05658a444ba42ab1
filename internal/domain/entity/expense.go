// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/billing"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// FixedCategory is the category every fixed expense is forced to.
const FixedCategory = "Fixo"

// Expense represents one billed expense record: either a one-off purchase or
// a single installment of a multi-installment plan. Amount is the value
// billed for this record; TotalAmount is the sum across the whole plan.
type Expense struct {
	ID               uuid.UUID
	Description      string
	Amount           decimal.Decimal
	TotalAmount      decimal.Decimal
	Category         string
	PaymentMethod    valueobject.PaymentMethod
	Profile          valueobject.Profile
	PurchaseDate     time.Time
	BillingMonth     int
	BillingYear      int
	InstallmentIndex int // 1-based; 1 of 1 when not an installment plan
	InstallmentCount int
	PlanID           uuid.UUID // shared by every installment of one purchase
	DeferredStart    bool
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewExpenseFromInstallment builds the expense record for one installment of
// a scheduled purchase. Every record of a plan shares the same planID.
func NewExpenseFromInstallment(
	planID uuid.UUID,
	description string,
	totalAmount decimal.Decimal,
	category string,
	method valueobject.PaymentMethod,
	profile valueobject.Profile,
	purchaseDate time.Time,
	deferredStart bool,
	notes string,
	inst billing.Installment,
) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:               uuid.New(),
		Description:      description,
		Amount:           inst.Amount,
		TotalAmount:      totalAmount,
		Category:         category,
		PaymentMethod:    method,
		Profile:          profile,
		PurchaseDate:     purchaseDate,
		BillingMonth:     inst.Cycle.Month,
		BillingYear:      inst.Cycle.Year,
		InstallmentIndex: inst.Index,
		InstallmentCount: inst.Count,
		PlanID:           planID,
		DeferredStart:    deferredStart,
		Notes:            notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// BillingCycle returns the cycle this record counts against.
func (e *Expense) BillingCycle() billing.Cycle {
	return billing.Cycle{Month: e.BillingMonth, Year: e.BillingYear}
}

// IsInstallmentPlan reports whether the record belongs to a plan with more
// than one installment.
func (e *Expense) IsInstallmentPlan() bool {
	return e.InstallmentCount > 1
}
