package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/rosterboard/roster-api/internal/models"
)

// CredentialProvider supplies bearer tokens. Invalidate drops a cached
// token after the server rejects it.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// StaticToken always returns the same token.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) { return string(s), nil }
func (StaticToken) Invalidate()                               {}

// PasswordCredentials exchanges an email and password for a token on first
// use and caches it until invalidated.
type PasswordCredentials struct {
	BaseURL    string
	Email      string
	Password   string
	DeviceName string
	HTTPClient *http.Client

	mu    sync.Mutex
	token string
}

func (p *PasswordCredentials) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" {
		return p.token, nil
	}
	token, err := RequestToken(ctx, p.HTTPClient, p.BaseURL, models.TokenRequest{
		Email:      p.Email,
		Password:   p.Password,
		DeviceName: p.DeviceName,
	})
	if err != nil {
		return "", err
	}
	p.token = token
	return token, nil
}

func (p *PasswordCredentials) Invalidate() {
	p.mu.Lock()
	p.token = ""
	p.mu.Unlock()
}

// RequestToken calls POST /auth/token.
func RequestToken(ctx context.Context, hc *http.Client, baseURL string, req models.TokenRequest) (string, error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(baseURL, "/")+"/auth/token", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := hc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readAPIError(resp)
	}
	var out models.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("token response has no token")
	}
	return out.Token, nil
}
