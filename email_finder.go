package hunter

import (
	"context"
	"net/url"
)

// EmailFinderParams are the parameters for EmailFinder. One of Domain or
// Company is required, plus either FullName or both FirstName and LastName.
type EmailFinderParams struct {
	// Domain is the domain to search against, e.g. "reddit.com".
	Domain string
	// Company is the company name, used when Domain is empty.
	Company string
	// FirstName is the person's first name.
	FirstName string
	// LastName is the person's last name.
	LastName string
	// FullName is the person's full name, used instead of FirstName and
	// LastName.
	FullName string
	// MaxDuration bounds the search, in seconds (3 to 20). Longer searches
	// give more accurate results.
	MaxDuration int
}

func (p *EmailFinderParams) values() url.Values {
	q := url.Values{}
	setIfNotEmpty(q, "domain", p.Domain)
	setIfNotEmpty(q, "company", p.Company)
	setIfNotEmpty(q, "first_name", p.FirstName)
	setIfNotEmpty(q, "last_name", p.LastName)
	setIfNotEmpty(q, "full_name", p.FullName)
	setIfPositive(q, "max_duration", p.MaxDuration)
	return q
}

// EmailFinderResponse is the email finder response envelope.
type EmailFinderResponse struct {
	Data EmailFinderData `json:"data"`
	Meta Meta            `json:"meta"`
}

// EmailFinderData is the most likely email address for a person, with the
// sources it was found in and a confidence score out of 100.
type EmailFinderData struct {
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	Email        string        `json:"email"`
	Score        int           `json:"score"`
	Domain       string        `json:"domain"`
	AcceptAll    bool          `json:"accept_all"`
	Position     string        `json:"position"`
	Twitter      string        `json:"twitter"`
	LinkedinURL  string        `json:"linkedin_url"`
	PhoneNumber  string        `json:"phone_number"`
	Company      string        `json:"company"`
	Sources      []Source      `json:"sources"`
	Verification *Verification `json:"verification"`
}

// EmailFinder returns the most likely email address for a person at a given
// domain or company.
func (c *Client) EmailFinder(ctx context.Context, params *EmailFinderParams) (*EmailFinderResponse, error) {
	if params == nil {
		params = &EmailFinderParams{}
	}
	if params.Domain == "" && params.Company == "" {
		return nil, ErrMissingDomainOrCompany
	}
	if params.FullName == "" && (params.FirstName == "" || params.LastName == "") {
		return nil, ErrMissingName
	}

	var resp EmailFinderResponse
	if err := c.apiClient.Get(ctx, "/email-finder", params.values(), &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}
