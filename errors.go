package hunter

import (
	"errors"
	"fmt"

	"github.com/obaidrock78/hunter-io-client/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided and the
	// HUNTER_API_KEY environment variable is not set.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingDomainOrCompany is returned when an operation needs a domain
	// or a company name and neither is provided.
	ErrMissingDomainOrCompany = errors.New("either domain or company must be provided")

	// ErrMissingName is returned by EmailFinder when neither a full name nor
	// both a first and last name are provided.
	ErrMissingName = errors.New("either full name or both first and last name must be provided")

	// ErrMissingEmail is returned when an email address is required but empty.
	ErrMissingEmail = errors.New("email address is required")

	// ErrMissingListName is returned when creating a leads list without a name.
	ErrMissingListName = errors.New("leads list name is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrLeadsListNotFound is returned when a leads list is not found.
	ErrLeadsListNotFound = errors.New("leads list not found")
)

// HunterError is implemented by all SDK errors.
type HunterError interface {
	error
	HunterError() // marker method
}

// ErrorDetail is a single entry of the Hunter error payload.
type ErrorDetail = api.ErrorDetail

// ResourceType indicates which type of resource an API error relates to.
type ResourceType = api.ResourceType

// Resource type constants.
const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown = api.ResourceUnknown
	// ResourceLead indicates the error relates to a lead.
	ResourceLead = api.ResourceLead
	// ResourceLeadsList indicates the error relates to a leads list.
	ResourceLeadsList = api.ResourceLeadsList
)

// APIError represents an HTTP error from the Hunter API.
type APIError struct {
	StatusCode   int
	Message      string
	Errors       []ErrorDetail
	ResourceType ResourceType
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// HunterError implements the HunterError interface.
func (e *APIError) HunterError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		// Use ResourceType for precise error matching
		switch e.ResourceType {
		case ResourceLead:
			return target == ErrLeadNotFound
		case ResourceLeadsList:
			return target == ErrLeadsListNotFound
		default:
			// Fallback: match both for unknown resource type
			return target == ErrLeadNotFound || target == ErrLeadsListNotFound
		}
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HunterError implements the HunterError interface.
func (e *NetworkError) HunterError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			Message:      apiErr.Message,
			Errors:       apiErr.Errors,
			ResourceType: apiErr.ResourceType,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
