// Package auth issues and verifies the bearer tokens that protect the
// payment API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/cardworks/payment-gateway/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid client credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// TokenIssuer signs short-lived HS256 tokens for authenticated API clients
// and verifies them on every request.
type TokenIssuer struct {
	key              []byte
	issuer           string
	audience         string
	tokenTTL         time.Duration
	clientID         string
	clientSecretHash string
}

func NewTokenIssuer(cfg *config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		key:              []byte(cfg.JWTKey),
		issuer:           cfg.Issuer,
		audience:         cfg.Audience,
		tokenTTL:         cfg.TokenTTL,
		clientID:         cfg.ClientID,
		clientSecretHash: cfg.ClientSecretHash,
	}
}

// Authenticate checks the client credentials and returns a signed token on
// success. The configured secret is a bcrypt hash, so a leaked config file
// never exposes the secret itself.
func (t *TokenIssuer) Authenticate(clientID, clientSecret string) (string, error) {
	if clientID != t.clientID {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(t.clientSecretHash), []byte(clientSecret)); err != nil {
		return "", ErrInvalidCredentials
	}
	return t.Issue(clientID)
}

func (t *TokenIssuer) Issue(clientID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   clientID,
		Audience:  jwt.ClaimStrings{t.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and returns the client it was issued to.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return t.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
