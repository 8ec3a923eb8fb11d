package tally

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/tally/internal/xhttp"
	"github.com/garrettladley/tally/internal/xslog"
)

// Client is a thin gateway to the counting service. Every method performs
// exactly one request: no retries, no queueing, no deduplication.
type Client struct {
	Counters CounterService
	Causes   CauseService
	Auth     AuthService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		logger:  slog.Default(),
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = xhttp.NewHTTPClient(
			xhttp.WithTransport(xhttp.NewTransport(xhttp.WithSessionID(cfg.sessionID))),
			xhttp.WithTimeout(cfg.timeout),
		)
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.logger,
	}

	c.Counters = &counterService{client: c}
	c.Causes = &causeService{client: c}
	c.Auth = &authService{client: c}

	return c
}

type clientConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	sessionID  string
	timeout    time.Duration
}

type Option func(*clientConfig)

// WithHTTPClient replaces the default client; the tally transport headers
// are then the caller's responsibility.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithSessionID(sessionID string) Option {
	return func(cfg *clientConfig) { cfg.sessionID = sessionID }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// BaseURL returns the service address the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// do sends body (if non-nil) as JSON and decodes a 2xx response into result
// (if non-nil). Request bodies are never logged: /auth carries the password.
func (c *Client) do(ctx context.Context, op string, method string, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		payload, err := go_json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", op, err)
	}
	xhttp.SetRequestHeaderJSON(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "request failed",
			xslog.Operation(op),
			xslog.Duration(time.Since(start)),
			xslog.Error(err),
		)
		return &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "request complete",
		xslog.Operation(op),
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseServiceError(op, resp)
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}
	if err := go_json.Unmarshal(raw, result); err != nil {
		return &ServiceError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    "malformed response body",
			Cause:      err,
		}
	}

	return nil
}
