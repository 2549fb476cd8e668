package hunter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAccount_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/account" {
			t.Errorf("path = %s, want /account", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"first_name": "Jane",
				"last_name": "Doe",
				"email": "jane@example.com",
				"plan_name": "Starter",
				"plan_level": 1,
				"reset_date": "2026-09-01",
				"team_id": 42,
				"requests": {
					"searches": {"used": 3, "available": 500},
					"verifications": {"used": 10, "available": 1000}
				}
			}
		}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	resp, err := client.Account(context.Background())
	if err != nil {
		t.Fatalf("Account() error = %v", err)
	}

	if resp.Data.Email != "jane@example.com" {
		t.Errorf("Data.Email = %s, want jane@example.com", resp.Data.Email)
	}
	if resp.Data.PlanName != "Starter" {
		t.Errorf("Data.PlanName = %s, want Starter", resp.Data.PlanName)
	}
	if resp.Data.Requests.Searches.Available != 500 {
		t.Errorf("Searches.Available = %d, want 500", resp.Data.Requests.Searches.Available)
	}
	if resp.Data.Requests.Verifications.Used != 10 {
		t.Errorf("Verifications.Used = %d, want 10", resp.Data.Requests.Verifications.Used)
	}
}

func TestAccount_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"id":"unauthorized","code":401,"details":"No valid API key provided"}]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	_, err := client.Account(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Account() error = %v, want ErrUnauthorized", err)
	}
}
