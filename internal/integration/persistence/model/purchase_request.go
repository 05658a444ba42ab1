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

// PurchaseRequestModel represents the purchase_requests table in the database.
type PurchaseRequestModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Requester    string          `gorm:"type:varchar(50);not null;index"`
	Recipient    string          `gorm:"type:varchar(50);not null;index"`
	Item         string          `gorm:"type:varchar(255);not null"`
	Reason       string          `gorm:"type:text"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pendente';index"`
	ResponseNote string          `gorm:"type:text"`
	RespondedAt  sql.NullTime
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PurchaseRequestModel.
func (PurchaseRequestModel) TableName() string {
	return "purchase_requests"
}

// ToEntity converts a PurchaseRequestModel to a domain PurchaseRequest entity.
func (m *PurchaseRequestModel) ToEntity() *entity.PurchaseRequest {
	var respondedAt *time.Time
	if m.RespondedAt.Valid {
		respondedAt = &m.RespondedAt.Time
	}

	return &entity.PurchaseRequest{
		ID:           m.ID,
		Requester:    valueobject.Profile(m.Requester),
		Recipient:    valueobject.Profile(m.Recipient),
		Item:         m.Item,
		Reason:       m.Reason,
		Amount:       m.Amount,
		Status:       entity.RequestStatus(m.Status),
		ResponseNote: m.ResponseNote,
		RespondedAt:  respondedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// PurchaseRequestFromEntity creates a PurchaseRequestModel from a domain PurchaseRequest entity.
func PurchaseRequestFromEntity(r *entity.PurchaseRequest) *PurchaseRequestModel {
	var respondedAt sql.NullTime
	if r.RespondedAt != nil {
		respondedAt = sql.NullTime{Time: *r.RespondedAt, Valid: true}
	}

	return &PurchaseRequestModel{
		ID:           r.ID,
		Requester:    string(r.Requester),
		Recipient:    string(r.Recipient),
		Item:         r.Item,
		Reason:       r.Reason,
		Amount:       r.Amount,
		Status:       string(r.Status),
		ResponseNote: r.ResponseNote,
		RespondedAt:  respondedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
