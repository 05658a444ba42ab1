// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
)

// UserRepository defines the interface for household member persistence operations.
type UserRepository interface {
	// Create creates a new household member.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a member by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByName retrieves a member by their name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// FindAll retrieves every household member.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// ExistsByName checks if a member with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
