package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPasskey = errors.New("invalid passkey")

// HashPasskey returns the bcrypt hash stored in ADMIN_PASSKEY_HASH.
func HashPasskey(passkey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passkey), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasskey compares a submitted passkey against the stored hash. An empty
// hash disables the admin dashboard.
func CheckPasskey(hash, passkey string) error {
	if hash == "" || passkey == "" {
		return ErrInvalidPasskey
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passkey)); err != nil {
		return ErrInvalidPasskey
	}
	return nil
}
