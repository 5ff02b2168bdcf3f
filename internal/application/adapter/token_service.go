// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a JWT access token issued by
// the external auth service.
type TokenClaims struct {
	WorkspaceID uuid.UUID
	Email       string
	ExpiresAt   time.Time
}

// TokenService defines the interface for access-token validation. This service
// never issues tokens; it only validates the ones the auth service signed.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
