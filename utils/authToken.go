package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

const (
	RolePatient = "Patient"
	RoleAdmin   = "Admin"

	// Session lifetimes.
	PatientSessionExpiry = 24 * time.Hour
	AdminSessionExpiry   = 8 * time.Hour
)

var (
	ErrTokenExpired           = errors.New("token expired")
	ErrInsufficientPermission = errors.New("insufficient permissions")
)

// TokenClaims struct represents the data in the token (UserID, Role, Expiry).
type TokenClaims struct {
	UserID string    `json:"userId"`
	Role   string    `json:"role"`
	Expiry time.Time `json:"expiry"`
}

// TokenMaker encrypts and decrypts PASETO v2 local tokens with a symmetric key.
type TokenMaker struct {
	key []byte
	now func() time.Time
}

func NewTokenMaker(symmetricKey string) (*TokenMaker, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("symmetric key must be 32 bytes long, got %d", len(symmetricKey))
	}
	return &TokenMaker{key: []byte(symmetricKey), now: time.Now}, nil
}

// Generate issues a token for userID with the given role.
func (m *TokenMaker) Generate(userID, role string, expiry time.Duration) (string, error) {
	claims := TokenClaims{
		UserID: userID,
		Role:   role,
		Expiry: m.now().Add(expiry),
	}
	token, err := paseto.NewV2().Encrypt(m.key, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Validate decrypts the token and checks expiry and, when given, the role.
func (m *TokenMaker) Validate(token string, requiredRoles ...string) (*TokenClaims, error) {
	var claims TokenClaims
	if err := paseto.NewV2().Decrypt(token, m.key, &claims, nil); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	if m.now().After(claims.Expiry) {
		return nil, ErrTokenExpired
	}

	if len(requiredRoles) == 0 {
		return &claims, nil
	}
	for _, role := range requiredRoles {
		if claims.Role == role {
			return &claims, nil
		}
	}
	return nil, fmt.Errorf("%w: role %q", ErrInsufficientPermission, claims.Role)
}
