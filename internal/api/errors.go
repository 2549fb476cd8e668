package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrLeadNotFound indicates the requested lead does not exist.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrLeadsListNotFound indicates the requested leads list does not exist.
	ErrLeadsListNotFound = errors.New("leads list not found")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceLead indicates the error relates to a lead.
	ResourceLead ResourceType = "lead"
	// ResourceLeadsList indicates the error relates to a leads list.
	ResourceLeadsList ResourceType = "leads_list"
)

// ErrorDetail is a single entry of the Hunter error payload.
type ErrorDetail struct {
	ID      string `json:"id"`
	Code    int    `json:"code"`
	Details string `json:"details"`
}

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

// WithResourceType returns a copy of the error with the resource type set.
// If the error is not an *APIError, it is returned unchanged.
func WithResourceType(err error, rt ResourceType) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			Message:      apiErr.Message,
			Errors:       apiErr.Errors,
			ResourceType: rt,
		}
	}
	return err
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
