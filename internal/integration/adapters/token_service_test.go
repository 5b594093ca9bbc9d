package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

func signToken(t *testing.T, secret string, claims CustomClaims, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestTokenVerifier_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	verifier := NewTokenVerifier("test-secret")
	now := time.Now()

	valid := CustomClaims{
		Username:  "sam",
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	t.Run("valid token returns claims", func(t *testing.T) {
		claims, err := verifier.ValidateAccessToken(ctx, signToken(t, "test-secret", valid, jwt.SigningMethodHS256))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Subject != "42" || claims.Username != "sam" {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		if _, err := verifier.ValidateAccessToken(ctx, signToken(t, "other", valid, jwt.SigningMethodHS256)); err == nil {
			t.Error("expected error for token signed with another secret")
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := valid
		expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
		_, err := verifier.ValidateAccessToken(ctx, signToken(t, "test-secret", expired, jwt.SigningMethodHS256))
		if !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("token without expiry is rejected", func(t *testing.T) {
		noExpiry := valid
		noExpiry.ExpiresAt = nil
		if _, err := verifier.ValidateAccessToken(ctx, signToken(t, "test-secret", noExpiry, jwt.SigningMethodHS256)); err == nil {
			t.Error("expected error for token without exp")
		}
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		refresh := valid
		refresh.TokenType = "refresh"
		if _, err := verifier.ValidateAccessToken(ctx, signToken(t, "test-secret", refresh, jwt.SigningMethodHS256)); err == nil {
			t.Error("expected error for refresh token")
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := verifier.ValidateAccessToken(ctx, "not-a-token")
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
