package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	assert.True(t, CheckPasswordHash("Sup3rSecret!", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	h1, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	h2, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)

	// bcrypt salts every hash.
	assert.NotEqual(t, h1, h2)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Sup3rSecret!"))
	assert.NoError(t, ValidatePassword("Another1@"))

	assert.Error(t, ValidatePassword("Sh0rt!"))                    // under 8
	assert.Error(t, ValidatePassword("alllowercase1!"))            // no uppercase
	assert.Error(t, ValidatePassword("NoDigitsHere!"))             // no digit
	assert.Error(t, ValidatePassword("NoSpecial123"))              // no special
	assert.Error(t, ValidatePassword(string(make([]byte, 80))+"A1!")) // over 72 bytes
}
