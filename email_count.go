package hunter

import (
	"context"
	"net/url"
)

// EmailCountParams are the parameters for EmailCount. One of Domain or
// Company is required.
type EmailCountParams struct {
	// Domain is the domain to count addresses for.
	Domain string
	// Company is the company name, used when Domain is empty.
	Company string
	// Type restricts the count to EmailTypePersonal or EmailTypeGeneric.
	Type string
}

func (p *EmailCountParams) values() url.Values {
	q := url.Values{}
	setIfNotEmpty(q, "domain", p.Domain)
	setIfNotEmpty(q, "company", p.Company)
	setIfNotEmpty(q, "type", p.Type)
	return q
}

// EmailCountResponse is the email count response envelope.
type EmailCountResponse struct {
	Data EmailCountData `json:"data"`
	Meta Meta           `json:"meta"`
}

// EmailCountData breaks down how many email addresses the API has for a
// domain, by type, department and seniority.
type EmailCountData struct {
	Total          int            `json:"total"`
	PersonalEmails int            `json:"personal_emails"`
	GenericEmails  int            `json:"generic_emails"`
	Department     map[string]int `json:"department"`
	Seniority      map[string]int `json:"seniority"`
}

// EmailCount returns how many email addresses the API has for a domain or
// company. This endpoint is free and does not consume searches.
func (c *Client) EmailCount(ctx context.Context, params *EmailCountParams) (*EmailCountResponse, error) {
	if params == nil {
		params = &EmailCountParams{}
	}
	if params.Domain == "" && params.Company == "" {
		return nil, ErrMissingDomainOrCompany
	}

	var resp EmailCountResponse
	if err := c.apiClient.Get(ctx, "/email-count", params.values(), &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}
