package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/valueobject"
)

// RequestStatus is the lifecycle state of a purchase request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pendente"
	RequestStatusApproved RequestStatus = "aprovado"
	RequestStatusRejected RequestStatus = "rejeitado"
)

// PurchaseRequest is a spending request one household member sends to the
// other for approval before the purchase is made.
type PurchaseRequest struct {
	ID           uuid.UUID
	Requester    valueobject.Profile
	Recipient    valueobject.Profile
	Item         string
	Reason       string
	Amount       decimal.Decimal
	Status       RequestStatus
	ResponseNote string
	RespondedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPurchaseRequest creates a pending purchase request.
func NewPurchaseRequest(
	requester, recipient valueobject.Profile,
	item, reason string,
	amount decimal.Decimal,
) *PurchaseRequest {
	now := time.Now().UTC()
	return &PurchaseRequest{
		ID:        uuid.New(),
		Requester: requester,
		Recipient: recipient,
		Item:      item,
		Reason:    reason,
		Amount:    amount,
		Status:    RequestStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsPending reports whether the request still awaits a response.
func (r *PurchaseRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// Respond resolves the request with the given status and optional note.
func (r *PurchaseRequest) Respond(status RequestStatus, note string) {
	now := time.Now().UTC()
	r.Status = status
	r.ResponseNote = note
	r.RespondedAt = &now
	r.UpdatedAt = now
}
