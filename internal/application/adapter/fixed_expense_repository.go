// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// FixedExpenseFilter defines filter options for listing fixed expenses.
type FixedExpenseFilter struct {
	ReferenceMonth *int
	ReferenceYear  *int
	Profile        *valueobject.Profile
	PaymentStatus  *entity.PaymentStatus
	ActiveOnly     bool
}

// FixedExpenseRepository defines the interface for fixed expense persistence operations.
type FixedExpenseRepository interface {
	// Create creates a new fixed expense instance.
	Create(ctx context.Context, fixed *entity.FixedExpense) error

	// FindByID retrieves a fixed expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error)

	// FindByFilter retrieves fixed expenses matching the filter, pending
	// first and then by due day ascending.
	FindByFilter(ctx context.Context, filter FixedExpenseFilter) ([]*entity.FixedExpense, error)

	// Update updates an existing fixed expense instance.
	Update(ctx context.Context, fixed *entity.FixedExpense) error

	// Delete removes a fixed expense instance.
	Delete(ctx context.Context, id uuid.UUID) error
}
