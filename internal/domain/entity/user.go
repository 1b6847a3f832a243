// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record of the system. It is created once at signup and
// never mutated afterwards; only an administrative action removes it.
type User struct {
	ID           uuid.UUID // The unique, stable identifier for the user.
	Email        string    // Login identifier, globally unique.
	PasswordHash string    // Opaque bcrypt hash, never exposed outside the domain.
	Profile      *Profile  // The 1:1 profile created alongside the user at signup.
	CreatedAt    time.Time // Server-set on insert, immutable.
}

// Profile holds the user-editable data attached 1:1 to a User.
// All optional fields are pointers so that a nil value means "not set",
// which is what the partial-update merge semantics rely on.
type Profile struct {
	ID             uuid.UUID
	UserID         uuid.UUID // Foreign key to the owning User, immutable.
	FullName       *string
	Address        *string
	GPSLocation    *string
	PhoneNumber    *string
	Birthday       *string
	Gender         *string
	ReferralSource *string
	ReferralID     string    // Human-shareable code, generated once at creation.
	UserCreatedAt  time.Time // Owning user's creation time, populated on reads.
}

// ProfileUpdate carries the fields of a partial profile update.
// Nil fields leave the stored values untouched.
type ProfileUpdate struct {
	FullName       *string
	Address        *string
	GPSLocation    *string
	PhoneNumber    *string
	Birthday       *string
	Gender         *string
	ReferralSource *string
}

// AdminProfile is the admin-wide listing row: a profile joined with its
// owning user's email and join time.
type AdminProfile struct {
	Profile
	Email    string
	JoinedAt time.Time
}
