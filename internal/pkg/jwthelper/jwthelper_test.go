package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateToken(key, "alice@example.com", 10*time.Minute)
	require.NoError(t, err)

	identity, err := ParseToken(key, token)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken([]byte("key-one"), "alice@example.com", 10*time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("key-two"), token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateToken(key, "alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(key, token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken([]byte("test-signing-key"), "not-a-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
