// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// IncomeFilter defines filter options for listing incomes.
type IncomeFilter struct {
	Month   *int
	Year    *int
	Profile *valueobject.Profile
}

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income record.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindByFilter retrieves incomes matching the filter.
	FindByFilter(ctx context.Context, filter IncomeFilter) ([]*entity.Income, error)

	// FindAll retrieves the full income collection.
	FindAll(ctx context.Context) ([]*entity.Income, error)

	// Update updates an existing income record.
	Update(ctx context.Context, income *entity.Income) error

	// Delete removes an income record.
	Delete(ctx context.Context, id uuid.UUID) error
}
