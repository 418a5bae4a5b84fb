package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	jwtService := NewJWTService([]byte("test-secret"), "taberu-api", 15*time.Minute)

	token, err := jwtService.GenerateToken("device-hash-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "device-hash-1", claims.Subject)
	assert.Equal(t, "taberu-api", claims.Issuer)
}

func TestJWTService_Expired(t *testing.T) {
	jwtService := NewJWTService([]byte("test-secret"), "taberu-api", -time.Minute)

	token, err := jwtService.GenerateToken("device-hash-1")
	assert.NoError(t, err)

	_, err = jwtService.ParseToken(token)
	assert.Error(t, err, "an expired credential must not verify")
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer := NewJWTService([]byte("secret-a"), "taberu-api", 15*time.Minute)
	verifier := NewJWTService([]byte("secret-b"), "taberu-api", 15*time.Minute)

	token, err := signer.GenerateToken("device-hash-1")
	assert.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService := NewJWTService(nil, "taberu-api", 15*time.Minute)

	_, err := jwtService.GenerateToken("device-hash-1")
	assert.Error(t, err)

	_, err = jwtService.ParseToken("whatever")
	assert.Error(t, err)
}

func TestJWTService_EmptySubjectRejected(t *testing.T) {
	jwtService := NewJWTService([]byte("test-secret"), "taberu-api", 15*time.Minute)

	token, err := jwtService.GenerateToken("")
	assert.NoError(t, err)

	_, err = jwtService.ParseToken(token)
	assert.Error(t, err)
}
