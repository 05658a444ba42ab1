// Package request contains purchase request use cases.
package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// DeleteRequestInput represents the input for purchase request deletion.
type DeleteRequestInput struct {
	RequestID uuid.UUID
}

// DeleteRequestUseCase handles purchase request deletion logic.
type DeleteRequestUseCase struct {
	requestRepo adapter.RequestRepository
}

// NewDeleteRequestUseCase creates a new DeleteRequestUseCase instance.
func NewDeleteRequestUseCase(requestRepo adapter.RequestRepository) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo: requestRepo,
	}
}

// Execute removes a purchase request.
func (uc *DeleteRequestUseCase) Execute(ctx context.Context, input DeleteRequestInput) error {
	if _, err := uc.requestRepo.FindByID(ctx, input.RequestID); err != nil {
		if errors.Is(err, domainerror.ErrRequestNotFound) {
			return domainerror.NewRequestError(
				domainerror.ErrCodeRequestNotFound,
				"purchase request not found",
				domainerror.ErrRequestNotFound,
			)
		}
		return fmt.Errorf("failed to find purchase request: %w", err)
	}

	if err := uc.requestRepo.Delete(ctx, input.RequestID); err != nil {
		return fmt.Errorf("failed to delete purchase request: %w", err)
	}

	return nil
}
