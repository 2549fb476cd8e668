package hunter

import (
	"net/url"
	"testing"
)

func TestSetIfNotEmpty(t *testing.T) {
	q := url.Values{}
	setIfNotEmpty(q, "domain", "stripe.com")
	setIfNotEmpty(q, "company", "")

	if got := q.Get("domain"); got != "stripe.com" {
		t.Errorf("domain = %s, want stripe.com", got)
	}
	if q.Has("company") {
		t.Error("empty value should not be added")
	}
}

func TestSetIfPositive(t *testing.T) {
	q := url.Values{}
	setIfPositive(q, "limit", 25)
	setIfPositive(q, "offset", 0)
	setIfPositive(q, "max_duration", -1)

	if got := q.Get("limit"); got != "25" {
		t.Errorf("limit = %s, want 25", got)
	}
	if q.Has("offset") {
		t.Error("zero value should not be added")
	}
	if q.Has("max_duration") {
		t.Error("negative value should not be added")
	}
}
