package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"nexturdayadmin/internal/domain"
)

// Post-login routes, branched on the role claim of the access token.
const (
	RouteMasterAdmin   = "/master-admin"
	RouteUpdateProfile = "/update-profile"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginResult carries the access token and the route the host should
// navigate to after a successful login.
type LoginResult struct {
	Token string
	Route string
}

// LoginService runs the society login flow: credential check, token
// exchange, and the role-based redirect decision.
type LoginService struct {
	api            domain.AuthAPI
	decoder        domain.TokenDecoder
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewLoginService creates a LoginService with the given collaborators.
func NewLoginService(api domain.AuthAPI, decoder domain.TokenDecoder, logger *slog.Logger, timeout time.Duration) *LoginService {
	return &LoginService{
		api:            api,
		decoder:        decoder,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Login validates the email format, exchanges credentials for a token, and
// decodes the role claim to pick the landing route. The decoded claims are a
// display hint only; the backend re-checks authorization on every request.
// An undecodable token is treated as an authentication failure.
func (s *LoginService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return LoginResult{}, &domain.ValidationError{Message: "Invalid email address"}
	}

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}

	claims, err := s.decoder.Decode(token)
	if err != nil {
		s.logger.Warn("token decode failed, forcing re-login", "error", err)
		return LoginResult{}, fmt.Errorf("decode access token: %w", domain.ErrUnauthorized)
	}

	route := RouteUpdateProfile
	if claims.Role() == domain.RoleAdmin {
		route = RouteMasterAdmin
	}
	s.logger.Info("society logged in", "role", claims.Role(), "route", route)

	return LoginResult{Token: token, Route: route}, nil
}
