package repository

import (
	"context"
	"errors"

	"myfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile exists for the given user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for profile persistence.
type ProfileRepository interface {
	// Create persists a new profile row bound to its owning user.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile of a user, joined with the owning
	// user's creation timestamp.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Update applies a partial update: nil fields of the update leave the
	// stored values unchanged (COALESCE semantics).
	Update(ctx context.Context, userID uuid.UUID, update *entity.ProfileUpdate) error

	// ListAll returns every profile joined with the owning user's email and
	// join time, newest user first. Administrative listing.
	ListAll(ctx context.Context) ([]*entity.AdminProfile, error)
}
