package auth_test

import (
	"testing"
	"time"

	"github.com/cardworks/payment-gateway/internal/auth"
	"github.com/cardworks/payment-gateway/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testClientID     = "checkout-service"
	testClientSecret = "s3cret"
)

func newIssuer(t *testing.T, ttl time.Duration) *auth.TokenIssuer {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testClientSecret), bcrypt.MinCost)
	require.NoError(t, err)

	return auth.NewTokenIssuer(&config.AuthConfig{
		JWTKey:           "test-signing-key",
		Issuer:           "payment-gateway",
		Audience:         "payment-gateway-clients",
		TokenTTL:         ttl,
		ClientID:         testClientID,
		ClientSecretHash: string(hash),
	})
}

func TestAuthenticateAndVerify(t *testing.T) {
	issuer := newIssuer(t, time.Hour)

	token, err := issuer.Authenticate(testClientID, testClientSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testClientID, subject)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	issuer := newIssuer(t, time.Hour)

	_, err := issuer.Authenticate("unknown-client", testClientSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = issuer.Authenticate(testClientID, "wrong-secret")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := newIssuer(t, -time.Minute)

	token, err := issuer.Issue(testClientID)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := newIssuer(t, time.Hour)

	_, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = issuer.Verify("")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsTokenFromOtherIssuer(t *testing.T) {
	issuer := newIssuer(t, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte(testClientSecret), bcrypt.MinCost)
	require.NoError(t, err)
	other := auth.NewTokenIssuer(&config.AuthConfig{
		JWTKey:           "a-different-key",
		Issuer:           "payment-gateway",
		Audience:         "payment-gateway-clients",
		TokenTTL:         time.Hour,
		ClientID:         testClientID,
		ClientSecretHash: string(hash),
	})

	token, err := other.Issue(testClientID)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
