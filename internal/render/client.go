package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// RenderPath is the endpoint a rendering service must implement: a JSON POST
// of a Request answered with a Rendering.
const RenderPath = "/api/v1/render"

// Client is an HTTP renderer talking to a rendering service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// New creates a Client for the rendering service at baseURL. The bearer
// token is sent as an Authorization header on every request; pass "" for an
// unauthenticated service.
func New(baseURL, bearerToken string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("render: baseURL is required")
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	cfg := &clientConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    baseURL,
		token:      bearerToken,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets a timeout on the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		cfg.timeout = d
		return nil
	}
}

// Render posts the request to the service and decodes both predicted
// variants. Non-2xx responses become an *APIError.
func (c *Client) Render(ctx context.Context, r Request) (*Rendering, error) {
	const operation = "render file"

	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RenderPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.InfoContext(ctx, "render request", "repo", r.Repo, "filepath", r.Path, "style", r.Style)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do request: %w", operation, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "render response", "filepath", r.Path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var errRS struct {
			Message string `json:"message"`
		}
		msg := string(respBody)
		if json.Unmarshal(respBody, &errRS) == nil && errRS.Message != "" {
			msg = errRS.Message
		}
		if msg == "" {
			msg = resp.Status
		}
		return nil, &APIError{Operation: operation, StatusCode: resp.StatusCode, Message: msg}
	}

	var rendering Rendering
	if err := json.NewDecoder(resp.Body).Decode(&rendering); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return &rendering, nil
}

// ReadToken reads the first line of a token file (e.g. .render-token) and
// returns it trimmed.
func ReadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(strings.Split(string(data), "\n")[0])
	return line, nil
}
