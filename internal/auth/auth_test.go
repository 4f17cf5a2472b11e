package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "123456"))
	assert.False(t, CheckPassword(hash, "654321"))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("segredo")
	token, err := IssueToken("op-1", secret)
	require.NoError(t, err)

	id, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "op-1", id)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("op-1", []byte("a"))
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("b"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("nao-e-um-jwt", []byte("a"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
