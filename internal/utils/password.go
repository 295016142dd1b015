package utils

import (
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost) // Hash with default cost
	if err != nil {
		return "", err // Return error if hashing fails
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a stored bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
