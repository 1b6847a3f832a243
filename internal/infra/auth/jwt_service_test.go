package auth

import (
	"strings"
	"testing"
	"time"

	"myfarm/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: ttl},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig("", time.Hour))

	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newJWTTestConfig("issuer-secret", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newJWTTestConfig("other-secret", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), "alice@example.com")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Tampered(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), "alice@example.com")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.ValidateToken(tampered)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	// A negative TTL issues an already-expired token.
	svc := &jwtService{secret: "test-secret", accessTTL: -time.Minute}

	token, err := svc.GenerateToken(uuid.New(), "alice@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("not.a.token")

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig("test-secret", 2*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, svc.AccessTokenDuration())
}
