package security

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "hrms-lite"

// Identity is the caller an API token is minted for, usually the HR admin
// console or an integration.
type Identity struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
}

type IdentityClaims struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// DecodeSecret decodes the base64 signing secret from configuration.
func DecodeSecret(base64Secret string) ([]byte, error) {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("invalid signing secret: %w", err)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("invalid signing secret: empty")
	}
	return secret, nil
}

func CreateIdentityToken(identity *Identity, base64Secret string, expiresIn time.Duration) (string, error) {
	secret, err := DecodeSecret(base64Secret)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := IdentityClaims{
		Name:  identity.Name,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}

	// Use HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
