// Package request contains purchase request use cases.
package request

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// RequestOutput represents a purchase request in the output.
type RequestOutput struct {
	ID           uuid.UUID
	Requester    string
	Recipient    string
	Item         string
	Reason       string
	Amount       decimal.Decimal
	Status       string
	ResponseNote string
	RespondedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToRequestOutput maps a purchase request entity to its use case output.
func ToRequestOutput(r *entity.PurchaseRequest) *RequestOutput {
	return &RequestOutput{
		ID:           r.ID,
		Requester:    string(r.Requester),
		Recipient:    string(r.Recipient),
		Item:         r.Item,
		Reason:       r.Reason,
		Amount:       r.Amount,
		Status:       string(r.Status),
		ResponseNote: r.ResponseNote,
		RespondedAt:  r.RespondedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ListRequestsInput represents the input for listing purchase requests.
type ListRequestsInput struct {
	Member valueobject.Profile
}

// ListRequestsOutput splits requests into those received by the member and
// those the member sent.
type ListRequestsOutput struct {
	Received []*RequestOutput
	Sent     []*RequestOutput
}

// ListRequestsUseCase handles listing purchase requests for a member.
type ListRequestsUseCase struct {
	requestRepo adapter.RequestRepository
}

// NewListRequestsUseCase creates a new ListRequestsUseCase instance.
func NewListRequestsUseCase(requestRepo adapter.RequestRepository) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
	}
}

// Execute lists requests addressed to and sent by the member, newest first.
func (uc *ListRequestsUseCase) Execute(ctx context.Context, input ListRequestsInput) (*ListRequestsOutput, error) {
	received, err := uc.requestRepo.FindByRecipient(ctx, input.Member)
	if err != nil {
		return nil, err
	}

	sent, err := uc.requestRepo.FindByRequester(ctx, input.Member)
	if err != nil {
		return nil, err
	}

	output := &ListRequestsOutput{
		Received: make([]*RequestOutput, len(received)),
		Sent:     make([]*RequestOutput, len(sent)),
	}
	for i, r := range received {
		output.Received[i] = ToRequestOutput(r)
	}
	for i, r := range sent {
		output.Sent[i] = ToRequestOutput(r)
	}
	return output, nil
}
