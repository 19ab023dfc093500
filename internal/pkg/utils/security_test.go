package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	assert.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	assert.True(t, CheckPasswordHash("Sup3rSecret!", hash))
	assert.False(t, CheckPasswordHash("WrongPass1!", hash))
}

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("sess-1", "test-secret", 1)
	assert.NoError(t, err)

	sessionID, err := ParseJWT(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, "sess-1", sessionID)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT("sess-1", "test-secret", 1)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", "test-secret")
	assert.Error(t, err)
}
