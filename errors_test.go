package hunter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/obaidrock78/hunter-io-client/internal/api"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrMissingAPIKey", ErrMissingAPIKey},
		{"ErrMissingDomainOrCompany", ErrMissingDomainOrCompany},
		{"ErrMissingName", ErrMissingName},
		{"ErrMissingEmail", ErrMissingEmail},
		{"ErrMissingListName", ErrMissingListName},
		{"ErrUnauthorized", ErrUnauthorized},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrLeadNotFound", ErrLeadNotFound},
		{"ErrLeadsListNotFound", ErrLeadsListNotFound},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "with message",
			err:      &APIError{StatusCode: 401, Message: "The API key is invalid."},
			expected: "API error 401: The API key is invalid.",
		},
		{
			name:     "without message",
			err:      &APIError{StatusCode: 500},
			expected: "API error 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		target     error
		expected   bool
	}{
		{"401 matches ErrUnauthorized", 401, ErrUnauthorized, true},
		{"404 matches ErrLeadNotFound", 404, ErrLeadNotFound, true},
		{"404 matches ErrLeadsListNotFound", 404, ErrLeadsListNotFound, true},
		{"429 matches ErrRateLimited", 429, ErrRateLimited, true},
		{"500 does not match ErrUnauthorized", 500, ErrUnauthorized, false},
		{"200 does not match anything", 200, ErrUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: tt.statusCode}
			result := errors.Is(err, tt.target)
			if result != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAPIError_Is_404Differentiation(t *testing.T) {
	tests := []struct {
		name         string
		resourceType ResourceType
		target       error
		expected     bool
	}{
		{"lead resource matches ErrLeadNotFound", ResourceLead, ErrLeadNotFound, true},
		{"lead resource does not match ErrLeadsListNotFound", ResourceLead, ErrLeadsListNotFound, false},
		{"list resource matches ErrLeadsListNotFound", ResourceLeadsList, ErrLeadsListNotFound, true},
		{"list resource does not match ErrLeadNotFound", ResourceLeadsList, ErrLeadNotFound, false},
		{"unknown resource matches ErrLeadNotFound", ResourceUnknown, ErrLeadNotFound, true},
		{"unknown resource matches ErrLeadsListNotFound", ResourceUnknown, ErrLeadsListNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: 404, ResourceType: tt.resourceType}
			result := errors.Is(err, tt.target)
			if result != tt.expected {
				t.Errorf("errors.Is() = %v, want %v for resource type %q", result, tt.expected, tt.resourceType)
			}
		})
	}
}

func TestAPIError_ImplementsHunterError(t *testing.T) {
	var err HunterError = &APIError{StatusCode: 400}
	err.HunterError()
}

func TestNetworkError_Error(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &NetworkError{Err: underlying}

	expected := "network error: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &NetworkError{Err: underlying}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

func TestNetworkError_Is(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &NetworkError{Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() should match underlying error")
	}
}

func TestErrorWrapping(t *testing.T) {
	root := errors.New("root cause")
	wrapped := fmt.Errorf("wrapped: %w", root)
	netErr := &NetworkError{Err: wrapped}

	if !errors.Is(netErr, root) {
		t.Error("errors.Is() should match through wrapped chain")
	}
}

func TestWrapError_PreservesAPIError(t *testing.T) {
	internalErr := &api.APIError{
		StatusCode: 401,
		Message:    "The API key is invalid.",
		Errors: []api.ErrorDetail{
			{ID: "unauthorized", Code: 401, Details: "The API key is invalid."},
		},
	}

	wrapped := wrapError(internalErr)

	var publicErr *APIError
	if !errors.As(wrapped, &publicErr) {
		t.Fatal("wrapError should convert internal API error to public APIError")
	}

	if publicErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", publicErr.StatusCode)
	}
	if publicErr.Message != "The API key is invalid." {
		t.Errorf("Message = %s, want the payload details", publicErr.Message)
	}
	if len(publicErr.Errors) != 1 || publicErr.Errors[0].ID != "unauthorized" {
		t.Errorf("Errors = %+v, want the payload entries", publicErr.Errors)
	}

	if !errors.Is(wrapped, ErrUnauthorized) {
		t.Error("wrapped error should match ErrUnauthorized sentinel")
	}
}

func TestWrapError_PreservesNetworkError(t *testing.T) {
	underlying := errors.New("connection refused")
	internalErr := &api.NetworkError{
		Err: underlying,
		URL: "https://api.example.com/test",
	}

	wrapped := wrapError(internalErr)

	var publicErr *NetworkError
	if !errors.As(wrapped, &publicErr) {
		t.Fatal("wrapError should convert internal network error to public NetworkError")
	}

	if publicErr.URL != "https://api.example.com/test" {
		t.Errorf("URL = %s, want 'https://api.example.com/test'", publicErr.URL)
	}

	if !errors.Is(wrapped, underlying) {
		t.Error("wrapped error should still match underlying error")
	}
}

func TestWrapError_PassesThroughOther(t *testing.T) {
	originalErr := errors.New("some other error")

	wrapped := wrapError(originalErr)

	if wrapped != originalErr {
		t.Error("wrapError should pass through non-API/non-Network errors unchanged")
	}
}

func TestWrapError_NilReturnsNil(t *testing.T) {
	wrapped := wrapError(nil)
	if wrapped != nil {
		t.Error("wrapError(nil) should return nil")
	}
}

func TestErrorChain_CanUnwrapToSentinel(t *testing.T) {
	tests := []struct {
		name          string
		internalErr   error
		expectedMatch error
	}{
		{
			name:          "401 matches ErrUnauthorized",
			internalErr:   &api.APIError{StatusCode: 401, Message: "unauthorized"},
			expectedMatch: ErrUnauthorized,
		},
		{
			name:          "404 with lead resource matches ErrLeadNotFound",
			internalErr:   &api.APIError{StatusCode: 404, Message: "not found", ResourceType: api.ResourceLead},
			expectedMatch: ErrLeadNotFound,
		},
		{
			name:          "404 with list resource matches ErrLeadsListNotFound",
			internalErr:   &api.APIError{StatusCode: 404, Message: "not found", ResourceType: api.ResourceLeadsList},
			expectedMatch: ErrLeadsListNotFound,
		},
		{
			name:          "429 matches ErrRateLimited",
			internalErr:   &api.APIError{StatusCode: 429, Message: "rate limit exceeded"},
			expectedMatch: ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapError(tt.internalErr)

			if !errors.Is(wrapped, tt.expectedMatch) {
				t.Errorf("wrapped error should match %v", tt.expectedMatch)
			}

			doubleWrapped := fmt.Errorf("operation failed: %w", wrapped)
			if !errors.Is(doubleWrapped, tt.expectedMatch) {
				t.Errorf("double-wrapped error should still match %v", tt.expectedMatch)
			}
		})
	}
}
