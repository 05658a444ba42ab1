package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/household-budget/backend/internal/domain/error"
)

func newTestTokenService(t *testing.T) *tokenService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTokenService("test-secret", client).(*tokenService)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(ctx, userID, "Gabriel")
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if claims.UserID != userID || claims.Name != "Gabriel" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	refreshClaims, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("ValidateRefreshToken failed: %v", err)
	}
	if refreshClaims.UserID != userID {
		t.Errorf("unexpected refresh claims: %+v", refreshClaims)
	}
}

func TestTokenService_TokenTypeMismatch(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, uuid.New(), "Paloma")
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected refresh token to fail access validation")
	}
	if _, err := svc.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
		t.Error("expected access token to fail refresh validation")
	}
}

func TestTokenService_RevokedTokenRejected(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, uuid.New(), "Gabriel")
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	if err := svc.RevokeRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("RevokeRefreshToken failed: %v", err)
	}

	if _, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken); !errors.Is(err, domainerror.ErrRevokedToken) {
		t.Errorf("expected ErrRevokedToken, got %v", err)
	}
}

func TestTokenService_WrongSecretRejected(t *testing.T) {
	svc := newTestTokenService(t)
	other := newTestTokenService(t)
	other.secret = []byte("other-secret")
	ctx := context.Background()

	pair, err := other.GenerateTokenPair(ctx, uuid.New(), "Gabriel")
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	if _, err := svc.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}
