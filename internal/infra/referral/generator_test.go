package referral

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^REF-[0-9A-F]{8}$`)

func TestGenerator_Format(t *testing.T) {
	gen := NewGenerator()

	for range 20 {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
	}
}

func TestGenerator_CodesVary(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for range 50 {
		code, err := gen.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	// 50 draws from a 32-bit space collide with negligible probability.
	assert.Greater(t, len(seen), 45)
}
