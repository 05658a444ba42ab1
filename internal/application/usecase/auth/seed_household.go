// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// HouseholdMember is one member to seed at startup.
type HouseholdMember struct {
	Name     string
	Email    string
	Password string
}

// SeedHouseholdInput lists the members the household should contain.
type SeedHouseholdInput struct {
	Members []HouseholdMember
}

// SeedHouseholdUseCase creates the household members on first startup.
// Members that already exist are left untouched, so reruns are safe.
type SeedHouseholdUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewSeedHouseholdUseCase creates a new SeedHouseholdUseCase instance.
func NewSeedHouseholdUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *SeedHouseholdUseCase {
	return &SeedHouseholdUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute seeds any missing household members.
func (uc *SeedHouseholdUseCase) Execute(ctx context.Context, input SeedHouseholdInput) error {
	for _, member := range input.Members {
		exists, err := uc.userRepo.ExistsByName(ctx, member.Name)
		if err != nil {
			return fmt.Errorf("failed to check member %q: %w", member.Name, err)
		}
		if exists {
			continue
		}

		hash, err := uc.passwordService.HashPassword(member.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", member.Name, err)
		}

		user := entity.NewUser(member.Name, member.Email, hash)
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create member %q: %w", member.Name, err)
		}

		slog.Info("Household member seeded", "name", member.Name)
	}

	return nil
}
