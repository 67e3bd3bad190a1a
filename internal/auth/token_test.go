package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_EncodeDecode(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	exp := time.Now().Add(time.Hour)
	token, err := codec.Encode("alice", PurposeAccess, exp)
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, PurposeAccess, claims.Purpose)
	assert.WithinDuration(t, exp, claims.ExpiresAt, time.Second)
}

func TestTokenCodec_ExpiredToken(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	// Подпись валидна, но exp в прошлом - decode обязан провалиться.
	token, err := codec.Encode("alice", PurposeAccess, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	codec := NewTokenCodec("test-secret")
	other := NewTokenCodec("other-secret")

	token, err := codec.Encode("alice", PurposeAccess, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = other.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	_, err := codec.Decode("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.Decode("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_KeepsPurpose(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Encode("bob", PurposeRefresh, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, PurposeRefresh, claims.Purpose)
}
