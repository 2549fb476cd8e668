package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://api.hunter.io/v2"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "hunter-go-client/1.0"
)

// Client is the HTTP API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Config configures the API client.
type Config struct {
	// BaseURL is the API root. Empty uses the production endpoint.
	BaseURL string
	// APIKey is appended to every request as the api_key query parameter.
	APIKey string
	// UserAgent is sent as the User-Agent header on every request.
	UserAgent string
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// Timeout applies to the default HTTP client. Ignored when HTTPClient is set.
	Timeout time.Duration
	// Logger receives debug-level request logs. The zero value discards them.
	Logger zerolog.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}

	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request and decodes the JSON response into result.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, result)
}

// Do performs an HTTP request against the API. The api_key parameter is added
// to the query on every request. A non-nil body is sent as JSON. A non-2xx
// response is returned as *APIError; transport failures as *NetworkError.
// A nil result discards the response body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query.Encode(), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Msg("api request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The reported URL excludes the query string, which carries the API key.
		return &NetworkError{Err: err, URL: c.baseURL + path}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// parseErrorResponse converts a non-2xx response into an *APIError. The API
// reports failures as {"errors": [{"id", "code", "details"}, ...]}; the
// details of all entries are joined into the error message. Anything that
// does not match that shape is surfaced as the raw response body.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Errors []ErrorDetail `json:"errors"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Errors) > 0 {
		details := make([]string, 0, len(errResp.Errors))
		for _, e := range errResp.Errors {
			d := e.Details
			if d == "" {
				d = "unknown error"
			}
			details = append(details, d)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.Join(details, "; "),
			Errors:     errResp.Errors,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}
