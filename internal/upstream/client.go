// Package upstream fetches raw payloads from the Atoms platform API.
//
// The client never builds records: it returns decoded JSON values for
// internal/normalize to validate.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"voiceagent-bridge/internal/config"
	"voiceagent-bridge/internal/normalize"
)

var (
	ErrNotFound    = errors.New("upstream: not found")
	ErrUnavailable = errors.New("upstream: unavailable")
)

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s: status %d: %s", e.Op, e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrUnavailable
}

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func New(cfg config.UpstreamConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("upstream base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpc:   &http.Client{Timeout: timeout},
	}, nil
}

// GetAgent returns the raw agent payload for id.
func (c *Client) GetAgent(ctx context.Context, id string) (any, error) {
	if id == "" {
		return nil, errors.New("agent id is required")
	}
	items, err := c.list(ctx, "get agent", "/agent/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if len(items) != 1 {
		return nil, fmt.Errorf("upstream get agent: expected one payload, got %d", len(items))
	}
	return items[0], nil
}

func (c *Client) ListCampaigns(ctx context.Context) ([]any, error) {
	return c.list(ctx, "list campaigns", "/campaign", nil)
}

// CallLogQuery pages through the call-counts log.
// Zero values are omitted from the request.
type CallLogQuery struct {
	Page  int
	Limit int
	From  time.Time
	To    time.Time
}

func (q CallLogQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if !q.From.IsZero() {
		v.Set("from", q.From.UTC().Format(time.RFC3339))
	}
	if !q.To.IsZero() {
		v.Set("to", q.To.UTC().Format(time.RFC3339))
	}
	return v
}

func (c *Client) CallLogs(ctx context.Context, q CallLogQuery) ([]any, error) {
	return c.list(ctx, "call logs", "/analytics/call-counts-log", q.values())
}

func (c *Client) PhoneNumbers(ctx context.Context) ([]any, error) {
	return c.list(ctx, "phone numbers", "/product/phone-numbers", nil)
}

func (c *Client) list(ctx context.Context, op, path string, query url.Values) ([]any, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w: %v", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		x, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(x))}
	}

	body, err := normalize.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w: %v", op, ErrUnavailable, err)
	}
	items, err := normalize.Items(body)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w", op, err)
	}
	return items, nil
}
