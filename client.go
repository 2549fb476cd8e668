package hunter

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/obaidrock78/hunter-io-client/internal/api"
)

// EnvAPIKey is the environment variable consulted when New is called with an
// empty API key.
const EnvAPIKey = "HUNTER_API_KEY"

// Client is the Hunter API client. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// New creates a new Hunter client. An empty apiKey falls back to the
// HUNTER_API_KEY environment variable; if that is also empty, New returns
// ErrMissingAPIKey. New performs no network I/O; the key is only validated
// by the API on the first request.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		UserAgent:  cfg.userAgent,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
