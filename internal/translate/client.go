// Package translate wraps the Google Translate web endpoint.
//
// The source language is always auto-detected and the target is fixed at
// client construction. Failures are returned as errors; callers decide what
// to fall back to (playback falls back to the untranslated line).
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://translate.googleapis.com"
	defaultHTTPTimeout = 10 * time.Second
)

// Client translates text into one fixed target language.
type Client struct {
	target     string
	baseURL    string
	httpClient *http.Client
}

// Option customizes the translate client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default endpoint base (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// NewClient constructs a client translating into the given target language
// (ISO 639-1 code).
func NewClient(target string, opts ...Option) *Client {
	client := &Client{
		target:     strings.TrimSpace(target),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Target reports the configured target language code.
func (c *Client) Target() string {
	return c.target
}

// Translate renders text into the target language, auto-detecting the
// source. Blank input translates to the empty string without a request.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", c.target)
	query.Set("dt", "t")
	query.Set("q", text)
	endpoint := c.baseURL + "/translate_a/single?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("translate: build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("translate: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("translate: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	translated, err := decodeSegments(body)
	if err != nil {
		return "", err
	}
	if translated == "" {
		return "", fmt.Errorf("translate: empty result")
	}
	return translated, nil
}

// HealthCheck verifies the endpoint responds to a minimal translation
// request. Used by readiness checks before the serve loop starts.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.Translate(ctx, "hola")
	return err
}

// decodeSegments extracts the translated text from the endpoint's nested
// array payload: [[["<translated>", "<original>", ...], ...], ...].
func decodeSegments(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("translate: decode response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("translate: empty payload")
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("translate: unexpected payload shape")
	}

	var b strings.Builder
	for _, segment := range segments {
		pair, ok := segment.([]any)
		if !ok || len(pair) == 0 {
			continue
		}
		if part, ok := pair[0].(string); ok {
			b.WriteString(part)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
