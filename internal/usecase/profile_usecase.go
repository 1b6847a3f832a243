package usecase

import (
	"context"

	"myfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines a partial profile update. Nil fields leave the
// stored values unchanged. The delivery layer normalizes the two accepted
// field spellings (snake_case and camelCase) into this single canonical set.
type UpdateProfileInput struct {
	FullName       *string
	Address        *string
	GPSLocation    *string
	PhoneNumber    *string
	Birthday       *string
	Gender         *string
	ReferralSource *string
}

// ProfileUsecase defines the interface for profile business operations.
type ProfileUsecase interface {
	// GetProfile returns a user's profile joined with the owning user's
	// creation time.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile merges the non-nil input fields into the stored profile
	// and returns the updated row.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// ListProfiles returns every profile with its owner's email, newest user
	// first. Administrative listing.
	ListProfiles(ctx context.Context) ([]*entity.AdminProfile, error)
}
