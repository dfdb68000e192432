// Package api is the HTTP client for the event-platform backend. It owns
// the wire exchange only: request shaping, auth headers, and mapping
// response status to domain errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"nexturdayadmin/internal/domain"
)

const (
	loginPath  = "/society/login"
	eventsPath = "/events"
)

// Client implements domain.AuthAPI and domain.EventAPI against the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns an API client for the backend at baseURL. A nil
// httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginEnvelope mirrors the backend's response envelope; only the access
// token is consumed.
type loginEnvelope struct {
	Data struct {
		AccessToken string `json:"accessToken"`
	} `json:"data"`
	Message string `json:"message"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	// the backend answers a successful login with 201
	if resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("login returned status: %d", resp.StatusCode)
	}

	var envelope loginEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if envelope.Data.AccessToken == "" {
		return "", fmt.Errorf("login response missing access token")
	}
	return envelope.Data.AccessToken, nil
}

func (c *Client) CreateEvent(ctx context.Context, token, idempotencyKey string, payload *domain.Payload) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+eventsPath, bytes.NewReader(payload.Body))
	if err != nil {
		return fmt.Errorf("create event request: %w", err)
	}
	req.Header.Set("Content-Type", payload.ContentType)
	req.Header.Set("Authorization", "Bearer "+token)
	if idempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return fmt.Errorf("%w: status %d", domain.ErrSubmitFailed, resp.StatusCode)
	}
}
