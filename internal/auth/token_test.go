package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "food-paradise"
	testAudience = "food-paradise"
)

func newTestAuthenticator() *Authenticator {
	return NewAuthenticator(testSecret, testIssuer, testAudience)
}

func TestIssueAndVerifyToken(t *testing.T) {
	a := newTestAuthenticator()

	token, err := a.IssueToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestVerifyToken_Expiry(t *testing.T) {
	a := newTestAuthenticator()

	token, err := a.IssueToken("alice@example.com")
	require.NoError(t, err)

	claims, err := a.VerifyToken(token)
	require.NoError(t, err)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, TokenTTL)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	a := newTestAuthenticator()
	other := NewAuthenticator("different-secret", testIssuer, testAudience)

	token, err := other.IssueToken("alice@example.com")
	require.NoError(t, err)

	_, err = a.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Tampered(t *testing.T) {
	a := newTestAuthenticator()

	token, err := a.IssueToken("alice@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = a.VerifyToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	a := newTestAuthenticator()

	now := time.Now()
	claims := Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = a.VerifyToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_MissingExpiry(t *testing.T) {
	a := newTestAuthenticator()

	claims := Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   testIssuer,
			Audience: jwt.ClaimStrings{testAudience},
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = a.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongIssuer(t *testing.T) {
	a := newTestAuthenticator()
	other := NewAuthenticator(testSecret, "someone-else", testAudience)

	token, err := other.IssueToken("alice@example.com")
	require.NoError(t, err)

	_, err = a.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	a := newTestAuthenticator()

	_, err := a.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_UnsignedAlgRejected(t *testing.T) {
	a := newTestAuthenticator()

	claims := Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = a.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
