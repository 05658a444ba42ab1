// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// FixedExpenseModel represents the fixed_expenses table in the database.
type FixedExpenseModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description    string          `gorm:"type:varchar(255);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category       string          `gorm:"type:varchar(100);not null"`
	DueDay         int             `gorm:"not null"`
	PaymentMethod  string          `gorm:"type:varchar(50)"`
	Profile        string          `gorm:"type:varchar(50);not null;index"`
	ReferenceMonth int             `gorm:"not null;index:idx_fixed_cycle"`
	ReferenceYear  int             `gorm:"not null;index:idx_fixed_cycle"`
	PaymentStatus  string          `gorm:"type:varchar(20);not null;default:'pendente';index"`
	PaymentDate    sql.NullTime
	Active         bool            `gorm:"not null;default:true"`
	Notes          string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedExpenseModel.
func (FixedExpenseModel) TableName() string {
	return "fixed_expenses"
}

// ToEntity converts a FixedExpenseModel to a domain FixedExpense entity.
func (m *FixedExpenseModel) ToEntity() *entity.FixedExpense {
	var paymentDate *time.Time
	if m.PaymentDate.Valid {
		paymentDate = &m.PaymentDate.Time
	}

	return &entity.FixedExpense{
		ID:             m.ID,
		Description:    m.Description,
		Amount:         m.Amount,
		Category:       m.Category,
		DueDay:         m.DueDay,
		PaymentMethod:  valueobject.PaymentMethod(m.PaymentMethod),
		Profile:        valueobject.Profile(m.Profile),
		ReferenceMonth: m.ReferenceMonth,
		ReferenceYear:  m.ReferenceYear,
		PaymentStatus:  entity.PaymentStatus(m.PaymentStatus),
		PaymentDate:    paymentDate,
		Active:         m.Active,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FixedExpenseFromEntity creates a FixedExpenseModel from a domain FixedExpense entity.
func FixedExpenseFromEntity(f *entity.FixedExpense) *FixedExpenseModel {
	var paymentDate sql.NullTime
	if f.PaymentDate != nil {
		paymentDate = sql.NullTime{Time: *f.PaymentDate, Valid: true}
	}

	return &FixedExpenseModel{
		ID:             f.ID,
		Description:    f.Description,
		Amount:         f.Amount,
		Category:       f.Category,
		DueDay:         f.DueDay,
		PaymentMethod:  string(f.PaymentMethod),
		Profile:        string(f.Profile),
		ReferenceMonth: f.ReferenceMonth,
		ReferenceYear:  f.ReferenceYear,
		PaymentStatus:  string(f.PaymentStatus),
		PaymentDate:    paymentDate,
		Active:         f.Active,
		Notes:          f.Notes,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}
