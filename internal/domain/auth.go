package domain

import "context"

// Known role claim values.
const RoleAdmin = "ADMIN"

// Claims is the decoded key-value payload of a bearer token.
type Claims map[string]any

// Role returns the role claim, or "" when absent or not a string.
func (c Claims) Role() string {
	role, _ := c["role"].(string)
	return role
}

// TokenDecoder extracts the claims of a bearer token without verifying its
// signature or expiry. It is a routing convenience, not a security boundary:
// the backend re-checks authorization on every privileged request.
type TokenDecoder interface {
	Decode(token string) (Claims, error)
}

// AuthAPI is the outbound collaborator that exchanges credentials for an
// access token.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (accessToken string, err error)
}

// Notifier receives human-readable progress and failure messages. The host
// decides how to present them (toast, log line, modal).
type Notifier interface {
	Info(message string)
	Success(message string)
	Error(message string)
}
