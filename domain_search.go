package hunter

import (
	"context"
	"net/url"
)

// Email address types accepted by the Type filter.
const (
	EmailTypePersonal = "personal"
	EmailTypeGeneric  = "generic"
)

// DomainSearchParams are the parameters for DomainSearch. One of Domain or
// Company is required; the rest narrow the search. Zero values are omitted
// from the request.
type DomainSearchParams struct {
	// Domain is the domain to search, e.g. "stripe.com".
	Domain string
	// Company is the company name, e.g. "Stripe". The API resolves it to a
	// domain when Domain is empty.
	Company string
	// Limit caps the number of emails returned. The API defaults to 10 and
	// accepts at most 100.
	Limit int
	// Offset skips the given number of emails.
	Offset int
	// Type restricts results to EmailTypePersonal or EmailTypeGeneric.
	Type string
	// Seniority filters by seniority level: "junior", "senior" or
	// "executive". Several values can be combined with commas.
	Seniority string
	// Department filters by department, e.g. "it" or "management". Several
	// values can be combined with commas.
	Department string
}

func (p *DomainSearchParams) values() url.Values {
	q := url.Values{}
	setIfNotEmpty(q, "domain", p.Domain)
	setIfNotEmpty(q, "company", p.Company)
	setIfPositive(q, "limit", p.Limit)
	setIfPositive(q, "offset", p.Offset)
	setIfNotEmpty(q, "type", p.Type)
	setIfNotEmpty(q, "seniority", p.Seniority)
	setIfNotEmpty(q, "department", p.Department)
	return q
}

// DomainSearchResponse is the domain search response envelope.
type DomainSearchResponse struct {
	Data DomainSearchData `json:"data"`
	Meta Meta             `json:"meta"`
}

// DomainSearchData describes the organization behind a domain and the email
// addresses found for it.
type DomainSearchData struct {
	Domain       string   `json:"domain"`
	Disposable   bool     `json:"disposable"`
	Webmail      bool     `json:"webmail"`
	AcceptAll    bool     `json:"accept_all"`
	Pattern      string   `json:"pattern"`
	Organization string   `json:"organization"`
	Description  string   `json:"description"`
	Industry     string   `json:"industry"`
	Twitter      string   `json:"twitter"`
	Facebook     string   `json:"facebook"`
	Linkedin     string   `json:"linkedin"`
	Instagram    string   `json:"instagram"`
	Youtube      string   `json:"youtube"`
	Technologies []string `json:"technologies"`
	Country      string   `json:"country"`
	State        string   `json:"state"`
	City         string   `json:"city"`
	PostalCode   string   `json:"postal_code"`
	Street       string   `json:"street"`
	Emails       []Email  `json:"emails"`
}

// Email is a single address found during a domain search.
type Email struct {
	Value        string        `json:"value"`
	Type         string        `json:"type"`
	Confidence   int           `json:"confidence"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	Position     string        `json:"position"`
	Seniority    string        `json:"seniority"`
	Department   string        `json:"department"`
	Linkedin     string        `json:"linkedin"`
	Twitter      string        `json:"twitter"`
	PhoneNumber  string        `json:"phone_number"`
	Sources      []Source      `json:"sources"`
	Verification *Verification `json:"verification"`
}

// DomainSearch returns the email addresses an organization uses, searched by
// domain or company name.
func (c *Client) DomainSearch(ctx context.Context, params *DomainSearchParams) (*DomainSearchResponse, error) {
	if params == nil {
		params = &DomainSearchParams{}
	}
	if params.Domain == "" && params.Company == "" {
		return nil, ErrMissingDomainOrCompany
	}

	var resp DomainSearchResponse
	if err := c.apiClient.Get(ctx, "/domain-search", params.values(), &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}
