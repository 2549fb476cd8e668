package hunter

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://api.hunter.io/v2"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "hunter-go-client/1.0"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP timeout for API calls.
// Ignored when a custom HTTP client is supplied.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger for debug-level request logging.
// By default all log output is discarded.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
