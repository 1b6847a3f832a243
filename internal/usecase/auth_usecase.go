// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"myfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// SignupInput defines the data required to sign up a new account.
// The optional profile fields are stored as NULL when absent.
type SignupInput struct {
	Email          string
	Password       string
	FullName       *string
	Address        *string
	GPSLocation    *string
	PhoneNumber    *string
	Birthday       *string
	Gender         *string
	ReferralSource *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SessionOutput returns the authenticated user and their access token.
type SessionOutput struct {
	User        *entity.User
	AccessToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup creates a User and its 1:1 Profile atomically and returns a
	// fresh session token.
	Signup(ctx context.Context, input *SignupInput) (*SessionOutput, error)

	// Login verifies credentials and returns a fresh session token.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Me resolves the caller's identity record.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
