// Package api is the HTTP client for the content platform REST API.
//
// All requests go through an explicit middleware chain: a correlation id and
// the bearer credential are attached on the way out, and session expiry is
// detected on the way in. Successful responses carry a {message, data}
// envelope; the client strips it and returns only the data payload.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production endpoint of the content platform.
const DefaultBaseURL = "http://geek.itheima.net/v1_0"

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 5 * time.Second

// Client issues requests against a fixed base endpoint with a fixed timeout.
type Client struct {
	baseURL string
	do      RoundTripFunc
	logger  *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Tokens    TokenStore
	Navigator Navigator
	Logger    *slog.Logger

	// HTTPClient overrides the underlying transport, used in tests.
	HTTPClient *http.Client
}

// New creates a client with the standard middleware chain.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	chain := Chain(hc.Do,
		RequestID(),
		BearerAuth(opts.Tokens),
		SessionExpiry(opts.Tokens, opts.Navigator),
	)

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		do:      chain,
		logger:  opts.Logger,
	}
}

// envelope is the transport wrapper around every API response body.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// request issues a JSON request and decodes the envelope's data into out.
// A nil out discards the response payload.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, out)
}

// send runs a prepared request through the middleware chain and unwraps the
// response envelope.
func (c *Client) send(req *http.Request, out any) error {
	c.logger.Debug("api request", "method", req.Method, "url", req.URL.String())

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.logger.Debug("api response", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var env envelope
		if json.Unmarshal(raw, &env) == nil {
			apiErr.Message = env.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding response envelope: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.request(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPut, path, nil, body, out)
}
