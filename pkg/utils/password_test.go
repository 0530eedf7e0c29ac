package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid minimal", "Abcdef!1", true},
		{"exactly 8 chars", "A!bcdefg", true},
		{"exactly 16 chars", "A!bcdefghijklmno", true},
		{"7 chars rejected", "A!bcdef", false},
		{"17 chars rejected", "A!bcdefghijklmnop", false},
		{"no uppercase", "abcdef!1", false},
		{"no special char", "Abcdefg1", false},
		{"only letters", "Abcdefgh", false},
		{"empty", "", false},
		{"space counts as special", "Abcdef g", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePasswordStrength(tt.password))
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret!123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret!123", hash)

	assert.True(t, CheckPasswordHash("Secret!123", hash))
	assert.False(t, CheckPasswordHash("Secret!124", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestPasswordHashesDiffer(t *testing.T) {
	// bcrypt salts per call
	h1, err := HashPassword("Secret!123")
	require.NoError(t, err)
	h2, err := HashPassword("Secret!123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
