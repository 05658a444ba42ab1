// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	BillingMonth  *int
	BillingYear   *int
	Profile       *valueobject.Profile
	Category      *string
	PaymentMethod *valueobject.PaymentMethod
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// CreateBatch persists every record of an installment plan in one
	// transaction. Either all records are written or none are.
	CreateBatch(ctx context.Context, expenses []*entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses matching the filter, ordered by
	// purchase date descending.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// FindAll retrieves the full expense collection.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// FindByPlan retrieves every installment record sharing a plan ID,
	// ordered by installment index.
	FindByPlan(ctx context.Context, planID uuid.UUID) ([]*entity.Expense, error)

	// Update updates an existing expense record.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes a single expense record. Sibling installments of the
	// same plan are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
