// Package api provides HTTP client functionality for communicating with the
// Hunter API. It handles authentication, request/response serialization, and
// translation of error payloads into typed errors.
//
// # Authentication
//
// Every request carries the API key as the api_key query parameter, which is
// how the Hunter API authenticates callers. The key is injected by [Client.Do];
// callers never add it themselves. Logged output and error values only ever
// contain the request path, never the query string.
//
// # Error Handling
//
// Non-2xx responses are parsed from Hunter's error envelope:
//
//	{"errors": [{"id": "unauthorized", "code": 401, "details": "..."}]}
//
// and returned as [*APIError] with the details of all entries joined into the
// message. Responses that do not match the envelope keep the raw body as the
// message. The package defines sentinel errors for common conditions:
//
//   - [ErrUnauthorized]: Invalid or expired API key (401).
//   - [ErrRateLimited]: Rate limit exceeded (429).
//   - [ErrLeadNotFound]: Lead does not exist (404).
//   - [ErrLeadsListNotFound]: Leads list does not exist (404).
//
// Use errors.Is to check for specific error types:
//
//	if errors.Is(err, api.ErrUnauthorized) {
//	    // Handle bad credentials
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
