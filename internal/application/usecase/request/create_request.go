// Package request contains purchase request use cases.
package request

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// CreateRequestInput represents the input for purchase request creation.
type CreateRequestInput struct {
	Requester valueobject.Profile
	Recipient valueobject.Profile
	Item      string
	Reason    string
	Amount    decimal.Decimal
}

// CreateRequestOutput represents the output of purchase request creation.
type CreateRequestOutput struct {
	Request *RequestOutput
}

// CreateRequestUseCase handles purchase request creation logic.
type CreateRequestUseCase struct {
	requestRepo adapter.RequestRepository
}

// NewCreateRequestUseCase creates a new CreateRequestUseCase instance.
func NewCreateRequestUseCase(requestRepo adapter.RequestRepository) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
	}
}

// Execute creates a pending purchase request addressed to the other member.
func (uc *CreateRequestUseCase) Execute(ctx context.Context, input CreateRequestInput) (*CreateRequestOutput, error) {
	if input.Requester == input.Recipient {
		return nil, domainerror.NewRequestError(
			domainerror.ErrCodeRequestToSelf,
			"cannot send a purchase request to yourself",
			domainerror.ErrRequestToSelf,
		)
	}

	request := entity.NewPurchaseRequest(
		input.Requester,
		input.Recipient,
		input.Item,
		input.Reason,
		input.Amount,
	)

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create purchase request: %w", err)
	}

	return &CreateRequestOutput{Request: ToRequestOutput(request)}, nil
}
