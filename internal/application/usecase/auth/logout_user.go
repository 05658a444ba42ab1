// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/household-budget/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for member logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput represents the output of member logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles member logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the member logout by revoking the refresh token.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	// Revocation errors are ignored: the token may already be invalid
	_ = uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken)

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
