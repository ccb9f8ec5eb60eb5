package auth

import (
	"testing"
	"time"

	"monsoon/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret"

func newTestService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.Session.Secret = testSecret
	cfg.Session.Issuer = "monsoon-auth"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := newTestService(t)

	signed := mintToken(t, testSecret, jwt.MapClaims{
		"sub":        "user-42",
		"email":      "asha@example.com",
		"first_name": "Asha",
		"last_name":  "Nair",
		"iss":        "monsoon-auth",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-42", identity.UserID)
	assert.Equal(t, "asha@example.com", identity.Email)
	assert.Equal(t, "Asha", identity.FirstName)
	assert.Equal(t, "Nair", identity.LastName)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestService(t)

	signed := mintToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"iss": "monsoon-auth",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	signed := mintToken(t, "another-secret", jwt.MapClaims{
		"sub": "user-42",
		"iss": "monsoon-auth",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_MissingSubject(t *testing.T) {
	svc := newTestService(t)

	signed := mintToken(t, testSecret, jwt.MapClaims{
		"iss": "monsoon-auth",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
