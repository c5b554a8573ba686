// Package content is the read-only client for the headless content store's
// HTTP query API.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	Timeout    time.Duration
}

type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// ErrNotFound is returned when a single-document query matches nothing.
var ErrNotFound = fmt.Errorf("content: document not found")

func New(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("content: project id is required")
	}
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "v2021-10-21"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: fmt.Sprintf("https://%s.%s/%s/data/query/%s", cfg.ProjectID, host, cfg.APIVersion, cfg.Dataset),
		token:   cfg.Token,
	}, nil
}

// NewWithBaseURL builds a client against an explicit query endpoint. Used by
// tests to point at a local server.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

func (c *Client) fetch(ctx context.Context, query string, params map[string]string, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for k, v := range params {
		// GROQ parameters are JSON-encoded values keyed as $name
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode query param %s: %w", k, err)
		}
		values.Set("$"+k, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build content query request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("content store returned %d: %s", resp.StatusCode, body)
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return fmt.Errorf("failed to decode content response: %w", err)
	}

	if len(qr.Result) == 0 || string(qr.Result) == "null" {
		return ErrNotFound
	}

	if err := json.Unmarshal(qr.Result, out); err != nil {
		return fmt.Errorf("failed to decode content result: %w", err)
	}

	return nil
}
