package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptySecret is returned when account creation tries to hash a blank
// PIN or password. Login verification of a blank secret simply fails the
// comparison instead.
var ErrEmptySecret = errors.New("secret must not be empty")

// HashSecret hashes a PIN or password with bcrypt. The cost factor is
// embedded in the hash, so verification needs no extra parameters.
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckSecretHash compares a clear secret against a bcrypt hash
func CheckSecretHash(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}
