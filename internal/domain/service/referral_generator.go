package service

// ReferralCodeGenerator produces the human-shareable referral code assigned
// to a profile once at creation. Codes are random; uniqueness is not enforced
// by the store (collision odds are negligible at the current code length).
type ReferralCodeGenerator interface {
	// Generate returns a fresh referral code.
	Generate() (string, error)
}
