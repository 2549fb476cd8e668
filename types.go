package hunter

import "encoding/json"

// Meta is the metadata envelope the API returns alongside response data.
type Meta struct {
	Results int `json:"results,omitempty"`
	Limit   int `json:"limit,omitempty"`
	Offset  int `json:"offset,omitempty"`
	// Params echoes the request parameters back. Its shape differs per
	// endpoint, so it is kept as raw JSON.
	Params json.RawMessage `json:"params,omitempty"`
}

// ListMeta is the metadata envelope for list endpoints such as GET /leads.
type ListMeta struct {
	Count  int             `json:"count,omitempty"`
	Total  int             `json:"total,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Source records a page where an email address was found. Dates are in
// YYYY-MM-DD form.
type Source struct {
	Domain      string `json:"domain"`
	URI         string `json:"uri"`
	ExtractedOn string `json:"extracted_on"`
	LastSeenOn  string `json:"last_seen_on"`
	StillOnPage bool   `json:"still_on_page"`
}

// Verification is the verification summary attached to a discovered email
// address. Status holds one of the VerificationStatus constants.
type Verification struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}
