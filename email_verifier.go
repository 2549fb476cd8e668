package hunter

import (
	"context"
	"net/url"
)

// Verification statuses reported by the email verifier.
const (
	VerificationStatusValid      = "valid"
	VerificationStatusInvalid    = "invalid"
	VerificationStatusAcceptAll  = "accept_all"
	VerificationStatusWebmail    = "webmail"
	VerificationStatusDisposable = "disposable"
	VerificationStatusUnknown    = "unknown"
)

// Deliverability results reported by the email verifier.
const (
	VerificationResultDeliverable   = "deliverable"
	VerificationResultUndeliverable = "undeliverable"
	VerificationResultRisky         = "risky"
)

// EmailVerifierResponse is the email verifier response envelope.
type EmailVerifierResponse struct {
	Data EmailVerifierData `json:"data"`
	Meta Meta              `json:"meta"`
}

// EmailVerifierData is the outcome of verifying a single email address.
// Status holds one of the VerificationStatus constants and Result one of the
// VerificationResult constants; Score is the deliverability score out of 100.
type EmailVerifierData struct {
	Status     string   `json:"status"`
	Result     string   `json:"result"`
	Score      int      `json:"score"`
	Email      string   `json:"email"`
	Regexp     bool     `json:"regexp"`
	Gibberish  bool     `json:"gibberish"`
	Disposable bool     `json:"disposable"`
	Webmail    bool     `json:"webmail"`
	MXRecords  bool     `json:"mx_records"`
	SMTPServer bool     `json:"smtp_server"`
	SMTPCheck  bool     `json:"smtp_check"`
	AcceptAll  bool     `json:"accept_all"`
	Block      bool     `json:"block"`
	Sources    []Source `json:"sources"`
}

// EmailVerifier checks the deliverability of an email address.
func (c *Client) EmailVerifier(ctx context.Context, email string) (*EmailVerifierResponse, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}

	q := url.Values{}
	q.Set("email", email)

	var resp EmailVerifierResponse
	if err := c.apiClient.Get(ctx, "/email-verifier", q, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}
