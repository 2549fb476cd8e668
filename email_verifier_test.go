package hunter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const emailVerifierBody = `{
	"data": {
		"status": "valid",
		"result": "deliverable",
		"score": 100,
		"email": "patrick@stripe.com",
		"regexp": true,
		"gibberish": false,
		"disposable": false,
		"webmail": false,
		"mx_records": true,
		"smtp_server": true,
		"smtp_check": true,
		"accept_all": false,
		"block": false,
		"sources": [
			{
				"domain": "stripe.com",
				"uri": "http://stripe.com/about",
				"extracted_on": "2023-01-01",
				"last_seen_on": "2024-05-01",
				"still_on_page": true
			}
		]
	},
	"meta": {
		"params": {
			"email": "patrick@stripe.com"
		}
	}
}`

func TestEmailVerifier_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/email-verifier" {
			t.Errorf("path = %s, want /email-verifier", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "patrick@stripe.com" {
			t.Errorf("email = %s, want patrick@stripe.com", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(emailVerifierBody))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	resp, err := client.EmailVerifier(context.Background(), "patrick@stripe.com")
	if err != nil {
		t.Fatalf("EmailVerifier() error = %v", err)
	}

	if resp.Data.Status != VerificationStatusValid {
		t.Errorf("Data.Status = %s, want %s", resp.Data.Status, VerificationStatusValid)
	}
	if resp.Data.Result != VerificationResultDeliverable {
		t.Errorf("Data.Result = %s, want %s", resp.Data.Result, VerificationResultDeliverable)
	}
	if resp.Data.Score != 100 {
		t.Errorf("Data.Score = %d, want 100", resp.Data.Score)
	}
	if !resp.Data.MXRecords {
		t.Error("Data.MXRecords = false, want true")
	}
	if !resp.Data.SMTPCheck {
		t.Error("Data.SMTPCheck = false, want true")
	}
	if len(resp.Data.Sources) != 1 {
		t.Errorf("Sources length = %d, want 1", len(resp.Data.Sources))
	}
}

func TestEmailVerifier_RequiresEmail(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	_, err := client.EmailVerifier(context.Background(), "")
	if !errors.Is(err, ErrMissingEmail) {
		t.Errorf("EmailVerifier() error = %v, want ErrMissingEmail", err)
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("server received %d requests, want 0", n)
	}
}

func TestEmailVerifier_EscapesEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Query() decodes the escaped value back to the original address
		if got := r.URL.Query().Get("email"); got != "o'brien+test@example.com" {
			t.Errorf("email = %s, want o'brien+test@example.com", got)
		}
		w.Write([]byte(`{"data":{"status":"unknown"},"meta":{}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	if _, err := client.EmailVerifier(context.Background(), "o'brien+test@example.com"); err != nil {
		t.Fatalf("EmailVerifier() error = %v", err)
	}
}

func TestEmailVerifier_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"id":"wrong_params","code":400,"details":"The email address is invalid"}]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	_, err := client.EmailVerifier(context.Background(), "not-an-email")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message != "The email address is invalid" {
		t.Errorf("Message = %q, want payload details", apiErr.Message)
	}
}
