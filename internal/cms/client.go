// Package cms is the read-only client for the headless CMS. It executes
// parameterized GROQ queries and decodes each response into the tagged result
// struct for that query; loosely-typed payloads never leave this package or
// the service layer consuming it.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Config holds CMS connection settings.
type Config struct {
	BaseURL    string
	Dataset    string
	APIVersion string
	Token      string
	Timeout    time.Duration
}

// Client executes GROQ queries against the CMS query endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	dataset    string
	apiVersion string
	token      string
}

// NewClient creates a new CMS client.
func NewClient(cfg Config) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		dataset:    cfg.Dataset,
		apiVersion: cfg.APIVersion,
		token:      cfg.Token,
	}
}

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a GROQ query with the given parameter bag and unmarshals the
// result into result. Parameters are sent as JSON-encoded $-prefixed query
// string values, matching the CMS HTTP query API.
func (c *Client) Query(ctx context.Context, query string, params map[string]any, result any) error {
	values := url.Values{}
	values.Set("query", query)
	for key, val := range params {
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("encode param %q: %w", key, err)
		}
		values.Set("$"+key, string(encoded))
	}

	u := fmt.Sprintf("%s/v%s/data/query/%s?%s", c.baseURL, c.apiVersion, c.dataset, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}

	if result == nil {
		return nil
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}

	return nil
}
