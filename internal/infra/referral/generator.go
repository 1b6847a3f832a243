// Package referral generates the shareable referral codes assigned to profiles.
package referral

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"myfarm/internal/domain/service"
)

const (
	codePrefix      = "REF-"
	codeRandomBytes = 4
)

type generator struct{}

// NewGenerator is the constructor for the referral code generator.
func NewGenerator() service.ReferralCodeGenerator {
	return &generator{}
}

// Generate returns a code of the form "REF-" followed by eight uppercase hex
// characters. Codes are random; the store does not enforce uniqueness.
func (g *generator) Generate() (string, error) {
	buf := make([]byte, codeRandomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for referral code")
	}

	return codePrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
