package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	// bcrypt salts per hash
	other, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "secret123"))
}

func TestConstantTimeEquals(t *testing.T) {
	assert.True(t, ConstantTimeEquals("admin@campusrate.local", "admin@campusrate.local"))
	assert.False(t, ConstantTimeEquals("admin@campusrate.local", "other@campusrate.local"))
	assert.False(t, ConstantTimeEquals("short", "longer-value"))
}
