package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("super_password123")
	require.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
}

func TestCheckPasswordHash_SingleCharMismatch(t *testing.T) {
	hash, err := HashPassword("super_password123")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("super_password124", hash))
	assert.False(t, CheckPasswordHash("Super_password123", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

// Поврежденный хеш должен давать false, а не панику или ошибку наружу.
func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("whatever", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("whatever", ""))
}

func TestGeneratePassword_AlphabetAndLength(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		pw, err := GeneratePassword()
		require.NoError(t, err)
		assert.Len(t, pw, GeneratedPasswordLength)
		for _, r := range pw {
			assert.True(t, strings.ContainsRune(passwordAlphabet, r), "unexpected rune %q", r)
		}
		assert.False(t, seen[pw], "generated passwords must not repeat")
		seen[pw] = true
	}
}
