// Package request contains purchase request use cases.
package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// RespondRequestInput represents the input for responding to a request.
type RespondRequestInput struct {
	RequestID uuid.UUID
	Member    valueobject.Profile // who is responding
	Status    entity.RequestStatus
	Note      string
}

// RespondRequestOutput represents the output of responding to a request.
type RespondRequestOutput struct {
	Request *RequestOutput
}

// RespondRequestUseCase handles approving or rejecting a purchase request.
type RespondRequestUseCase struct {
	requestRepo adapter.RequestRepository
}

// NewRespondRequestUseCase creates a new RespondRequestUseCase instance.
func NewRespondRequestUseCase(requestRepo adapter.RequestRepository) *RespondRequestUseCase {
	return &RespondRequestUseCase{
		requestRepo: requestRepo,
	}
}

// Execute resolves a pending request. Only the recipient may respond, and a
// request can only be resolved once.
func (uc *RespondRequestUseCase) Execute(ctx context.Context, input RespondRequestInput) (*RespondRequestOutput, error) {
	if input.Status != entity.RequestStatusApproved && input.Status != entity.RequestStatusRejected {
		return nil, domainerror.NewRequestError(
			domainerror.ErrCodeInvalidRequestStatus,
			"response status must be 'aprovado' or 'rejeitado'",
			domainerror.ErrInvalidRequestStatus,
		)
	}

	request, err := uc.requestRepo.FindByID(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRequestNotFound) {
			return nil, domainerror.NewRequestError(
				domainerror.ErrCodeRequestNotFound,
				"purchase request not found",
				domainerror.ErrRequestNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find purchase request: %w", err)
	}

	if request.Recipient != input.Member {
		return nil, domainerror.NewRequestError(
			domainerror.ErrCodeNotRequestRecipient,
			"only the recipient can respond to a request",
			domainerror.ErrNotRequestRecipient,
		)
	}

	if !request.IsPending() {
		return nil, domainerror.NewRequestError(
			domainerror.ErrCodeRequestAlreadyResolved,
			"purchase request already resolved",
			domainerror.ErrRequestAlreadyResolved,
		)
	}

	request.Respond(input.Status, input.Note)

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update purchase request: %w", err)
	}

	return &RespondRequestOutput{Request: ToRequestOutput(request)}, nil
}
