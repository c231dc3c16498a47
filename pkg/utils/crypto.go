package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCode hashes a confirmation code for storage.
func HashCode(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckCodeHash compares a plaintext code against its stored hash.
func CheckCodeHash(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
