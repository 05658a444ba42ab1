// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(100)"`
	Profile     string          `gorm:"type:varchar(50);not null;index"`
	Month       int             `gorm:"not null;index:idx_incomes_cycle"`
	Year        int             `gorm:"not null;index:idx_incomes_cycle"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    m.Category,
		Profile:     valueobject.Profile(m.Profile),
		Month:       m.Month,
		Year:        m.Year,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(i *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:          i.ID,
		Description: i.Description,
		Amount:      i.Amount,
		Category:    i.Category,
		Profile:     string(i.Profile),
		Month:       i.Month,
		Year:        i.Year,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
