package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Abc12345!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Abc12345!", hash)

	// A fresh salt is embedded per call, so two hashes of the same
	// input must differ while both still verifying.
	second, err := HashPassword("Abc12345!")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, second)
	assert.True(t, CheckPassword("Abc12345!", hash))
	assert.True(t, CheckPassword("Abc12345!", second))
}

func TestHashPassword_Empty(t *testing.T) {
	hash, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
	assert.Empty(t, hash)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Abc12345!")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
		hash      string
		want      bool
	}{
		{"matching password", "Abc12345!", hash, true},
		{"wrong password", "Abc12345?", hash, false},
		{"empty candidate", "", hash, false},
		{"malformed hash", "Abc12345!", "not-a-bcrypt-hash", false},
		{"empty hash", "Abc12345!", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.plaintext, tt.hash))
		})
	}
}
