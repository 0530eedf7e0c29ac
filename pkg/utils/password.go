package utils

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// ValidatePasswordStrength reports whether a password is 8-16 characters
// long, has at least one uppercase letter and at least one character
// outside [A-Za-z0-9].
func ValidatePasswordStrength(password string) bool {
	runes := []rune(password)
	if len(runes) < 8 || len(runes) > 16 {
		return false
	}

	hasUpper := false
	hasSpecial := false
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			// plain alphanumeric
		default:
			hasSpecial = true
		}
	}

	return hasUpper && hasSpecial
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
