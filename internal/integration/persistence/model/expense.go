// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// ExpenseModel represents the expenses table in the database. One row per
// billed installment; rows of the same purchase share plan_id.
type ExpenseModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description      string          `gorm:"type:varchar(255);not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category         string          `gorm:"type:varchar(100);index"`
	PaymentMethod    string          `gorm:"type:varchar(50);not null;index"`
	Profile          string          `gorm:"type:varchar(50);not null;index"`
	PurchaseDate     time.Time       `gorm:"type:date;not null"`
	BillingMonth     int             `gorm:"not null;index:idx_expenses_cycle"`
	BillingYear      int             `gorm:"not null;index:idx_expenses_cycle"`
	InstallmentIndex int             `gorm:"not null;default:1"`
	InstallmentCount int             `gorm:"not null;default:1"`
	PlanID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeferredStart    bool            `gorm:"default:false"`
	Notes            string          `gorm:"type:text"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:               m.ID,
		Description:      m.Description,
		Amount:           m.Amount,
		TotalAmount:      m.TotalAmount,
		Category:         m.Category,
		PaymentMethod:    valueobject.PaymentMethod(m.PaymentMethod),
		Profile:          valueobject.Profile(m.Profile),
		PurchaseDate:     m.PurchaseDate,
		BillingMonth:     m.BillingMonth,
		BillingYear:      m.BillingYear,
		InstallmentIndex: m.InstallmentIndex,
		InstallmentCount: m.InstallmentCount,
		PlanID:           m.PlanID,
		DeferredStart:    m.DeferredStart,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:               e.ID,
		Description:      e.Description,
		Amount:           e.Amount,
		TotalAmount:      e.TotalAmount,
		Category:         e.Category,
		PaymentMethod:    string(e.PaymentMethod),
		Profile:          string(e.Profile),
		PurchaseDate:     e.PurchaseDate,
		BillingMonth:     e.BillingMonth,
		BillingYear:      e.BillingYear,
		InstallmentIndex: e.InstallmentIndex,
		InstallmentCount: e.InstallmentCount,
		PlanID:           e.PlanID,
		DeferredStart:    e.DeferredStart,
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
