package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT("64a0f1d2c3b4a5968778695a", "alice@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "64a0f1d2c3b4a5968778695a", claims.UserID)
	require.Equal(t, "alice@x.com", claims.Email)

	expiry := time.Unix(claims.ExpiresAt, 0)
	issued := time.Unix(claims.IssuedAt, 0)
	require.Equal(t, TokenTTL, expiry.Sub(issued))
}

func TestParseTokenWrongSecret(t *testing.T) {
	JwtKey = []byte("secret-one")
	token, err := GenerateJWT("id", "a@b.com")
	require.NoError(t, err)

	JwtKey = []byte("secret-two")
	_, err = ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	JwtKey = []byte("test-secret")

	claims := &Claims{
		UserID: "id",
		Email:  "a@b.com",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Add(-8 * 24 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-24 * time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JwtKey)
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	JwtKey = []byte("test-secret")

	_, err := ParseToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
