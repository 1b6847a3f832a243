package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in the access tokens.
// The token binds the user's ID and email plus an expiration instant.
type Claims struct {
	UserID uuid.UUID `json:"sub"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the token format from the delivery and use case layers.
type TokenService interface {
	// GenerateToken creates a signed, tamper-evident token for a user.
	GenerateToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken verifies signature and expiry and returns the embedded
	// identity. Expired or tampered tokens yield an error result, never a panic.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
