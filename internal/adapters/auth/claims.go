package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"nexturdayadmin/internal/domain"
)

type claimsDecoder struct {
	parser *jwt.Parser
}

// NewClaimsDecoder returns a TokenDecoder that extracts a token's claims
// without verifying its signature or expiry. The token has already been
// accepted by the backend; the claims are only used to pick a post-login
// route, never to grant access.
func NewClaimsDecoder() domain.TokenDecoder {
	return &claimsDecoder{parser: jwt.NewParser()}
}

func (d *claimsDecoder) Decode(token string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenDecode, err)
	}
	return domain.Claims(claims), nil
}
