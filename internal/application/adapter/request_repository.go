// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// RequestRepository defines the interface for purchase request persistence operations.
type RequestRepository interface {
	// Create creates a new purchase request.
	Create(ctx context.Context, request *entity.PurchaseRequest) error

	// FindByID retrieves a purchase request by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRequest, error)

	// FindByRecipient retrieves requests addressed to a member, newest first.
	FindByRecipient(ctx context.Context, recipient valueobject.Profile) ([]*entity.PurchaseRequest, error)

	// FindByRequester retrieves requests sent by a member, newest first.
	FindByRequester(ctx context.Context, requester valueobject.Profile) ([]*entity.PurchaseRequest, error)

	// Update updates an existing purchase request.
	Update(ctx context.Context, request *entity.PurchaseRequest) error

	// Delete removes a purchase request.
	Delete(ctx context.Context, id uuid.UUID) error
}
