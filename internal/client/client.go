// Package client is a typed HTTP client for the roster API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rosterboard/roster-api/internal/models"
)

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string][]string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	var parts []string
	for field, msgs := range e.Errors {
		parts = append(parts, field+": "+strings.Join(msgs, " "))
	}
	return fmt.Sprintf("api: %d %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialProvider
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for baseURL. creds may be nil for public endpoints.
func New(baseURL string, creds CredentialProvider, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		creds:   creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.getJSON(ctx, "/health", nil, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Leaderboard(ctx context.Context, params models.LeaderboardParams) (*models.PageResponse[models.LeaderboardRow], error) {
	var out models.PageResponse[models.LeaderboardRow]
	if err := c.getJSON(ctx, "/leaderboard", queryValues(params), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportResult describes a downloaded CSV.
type ExportResult struct {
	Filename string
	Bytes    int64
}

// Export streams the leaderboard CSV into w.
func (c *Client) Export(ctx context.Context, params models.LeaderboardParams, w io.Writer) (*ExportResult, error) {
	resp, err := c.do(ctx, http.MethodGet, "/leaderboard/export", queryValues(params), nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	res := &ExportResult{}
	if _, p, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		res.Filename = p["filename"]
	}
	res.Bytes, err = io.Copy(w, resp.Body)
	if err != nil {
		return res, fmt.Errorf("read export: %w", err)
	}
	return res, nil
}

func (c *Client) Games(ctx context.Context, params models.GameListParams) ([]models.GameSummary, error) {
	var out models.DataResponse[[]models.GameSummary]
	if err := c.getJSON(ctx, "/games", queryValues(params), true, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) Players(ctx context.Context, params models.PlayerListParams) (*models.PageResponse[models.Player], error) {
	var out models.PageResponse[models.Player]
	if err := c.getJSON(ctx, "/players", queryValues(params), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Player(ctx context.Context, id int64) (*models.Player, error) {
	var out models.DataResponse[models.Player]
	if err := c.getJSON(ctx, playerPath(id), nil, true, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// CreatePlayer posts fields as given; keys may be snake_case or camelCase.
func (c *Client) CreatePlayer(ctx context.Context, fields map[string]any) (*models.Player, error) {
	return c.sendPlayer(ctx, http.MethodPost, "/players", fields)
}

// UpdatePlayer sends a partial update. A nil value clears an optional field.
func (c *Client) UpdatePlayer(ctx context.Context, id int64, fields map[string]any) (*models.Player, error) {
	return c.sendPlayer(ctx, http.MethodPatch, playerPath(id), fields)
}

func (c *Client) DeletePlayer(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, playerPath(id), nil, nil, true)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *Client) sendPlayer(ctx context.Context, method, path string, fields map[string]any) (*models.Player, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, method, path, nil, body, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out models.DataResponse[models.Player]
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &out.Data, nil
}

func playerPath(id int64) string {
	return "/players/" + strconv.FormatInt(id, 10)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, auth bool, dst any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, auth)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// do sends one request and returns a 2xx response. A 401 invalidates the
// credentials so the next call authenticates again.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, auth bool) (*http.Response, error) {
	resp, err := c.send(ctx, method, path, query, body, auth)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusUnauthorized && auth && c.creds != nil {
			c.creds.Invalidate()
		}
		return nil, readAPIError(resp)
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body []byte, auth bool) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("credentials: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body struct {
		Error  string              `json:"error"`
		Errors map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		}
		apiErr.Errors = body.Errors
	}
	if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
		apiErr.RetryAfter = time.Duration(secs) * time.Second
	}
	return apiErr
}

// queryValues encodes the `query`-tagged fields of a params struct.
// Empty strings and nil pointers are left out.
func queryValues(params any) url.Values {
	values := url.Values{}
	v := reflect.ValueOf(params)
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("query")
		if name == "" {
			continue
		}
		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.String:
			if s := fv.String(); s != "" {
				values.Set(name, s)
			}
		case reflect.Pointer:
			if !fv.IsNil() {
				values.Set(name, fmt.Sprint(fv.Elem().Interface()))
			}
		}
	}
	return values
}
