package auth

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexturdayadmin/internal/domain"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeExtractsRoleClaim(t *testing.T) {
	d := NewClaimsDecoder()
	token := signedToken(t, jwt.MapClaims{"role": "ADMIN", "sub": "society-42"})

	claims, err := d.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Role())
	assert.Equal(t, domain.RoleAdmin, claims.Role())
	assert.Equal(t, "society-42", claims["sub"])
}

func TestDecodeNonAdminRole(t *testing.T) {
	d := NewClaimsDecoder()
	claims, err := d.Decode(signedToken(t, jwt.MapClaims{"role": "SOCIETY"}))
	require.NoError(t, err)
	assert.Equal(t, "SOCIETY", claims.Role())
}

func TestDecodeMissingRoleClaim(t *testing.T) {
	d := NewClaimsDecoder()
	claims, err := d.Decode(signedToken(t, jwt.MapClaims{"sub": "society-42"}))
	require.NoError(t, err)
	assert.Equal(t, "", claims.Role())
}

func TestDecodeDoesNotVerifySignature(t *testing.T) {
	// the decoder is a routing hint: a tampered signature must not matter
	d := NewClaimsDecoder()
	token := signedToken(t, jwt.MapClaims{"role": "ADMIN"}) + "garbage"
	claims, err := d.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Role())
}

func TestDecodeMalformedTokens(t *testing.T) {
	d := NewClaimsDecoder()

	badPayload := base64.RawURLEncoding.EncodeToString([]byte("{not json"))
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no dots", "nodotsatall"},
		{"one segment", "one.two"},
		{"invalid base64 payload", header + ".!!!not-base64!!!.sig"},
		{"non-json payload", header + "." + badPayload + ".sig"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := d.Decode(tc.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domain.ErrTokenDecode))
		})
	}
}
