package hunter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/obaidrock78/hunter-io-client/internal/api"
)

// Lead is a contact saved in the leads section of the account.
type Lead struct {
	ID              int           `json:"id"`
	Email           string        `json:"email"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	Position        string        `json:"position"`
	Company         string        `json:"company"`
	CompanyIndustry string        `json:"company_industry"`
	CompanySize     string        `json:"company_size"`
	ConfidenceScore int           `json:"confidence_score"`
	Website         string        `json:"website"`
	CountryCode     string        `json:"country_code"`
	Source          string        `json:"source"`
	LinkedinURL     string        `json:"linkedin_url"`
	PhoneNumber     string        `json:"phone_number"`
	Twitter         string        `json:"twitter"`
	Notes           string        `json:"notes"`
	SendingStatus   string        `json:"sending_status"`
	LastActivityAt  string        `json:"last_activity_at"`
	LastContactedAt string        `json:"last_contacted_at"`
	Verification    *Verification `json:"verification"`
	LeadsList       *LeadsList    `json:"leads_list"`
	CreatedAt       string        `json:"created_at"`
}

// LeadParams are the attributes accepted when creating or updating a lead.
// Email is required on creation; everything else is optional. Fields are sent
// in the request body as JSON, zero values omitted.
type LeadParams struct {
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Position        string `json:"position,omitempty"`
	Company         string `json:"company,omitempty"`
	CompanyIndustry string `json:"company_industry,omitempty"`
	CompanySize     string `json:"company_size,omitempty"`
	ConfidenceScore int    `json:"confidence_score,omitempty"`
	Website         string `json:"website,omitempty"`
	CountryCode     string `json:"country_code,omitempty"`
	LinkedinURL     string `json:"linkedin_url,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	Twitter         string `json:"twitter,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Source          string `json:"source,omitempty"`
	// LeadsListID files the lead under an existing leads list.
	LeadsListID int `json:"leads_list_id,omitempty"`
}

// ListLeadsParams filter the leads returned by ListLeads. All fields are
// optional; zero values are omitted from the request.
type ListLeadsParams struct {
	LeadsListID int
	Email       string
	FirstName   string
	LastName    string
	Position    string
	Company     string
	Website     string
	CountryCode string
	CompanySize string
	Source      string
	Twitter     string
	LinkedinURL string
	PhoneNumber string
	// Limit caps the number of leads returned (API default 20).
	Limit int
	// Offset skips the given number of leads.
	Offset int
}

func (p *ListLeadsParams) values() url.Values {
	q := url.Values{}
	setIfPositive(q, "leads_list_id", p.LeadsListID)
	setIfNotEmpty(q, "email", p.Email)
	setIfNotEmpty(q, "first_name", p.FirstName)
	setIfNotEmpty(q, "last_name", p.LastName)
	setIfNotEmpty(q, "position", p.Position)
	setIfNotEmpty(q, "company", p.Company)
	setIfNotEmpty(q, "website", p.Website)
	setIfNotEmpty(q, "country_code", p.CountryCode)
	setIfNotEmpty(q, "company_size", p.CompanySize)
	setIfNotEmpty(q, "source", p.Source)
	setIfNotEmpty(q, "twitter", p.Twitter)
	setIfNotEmpty(q, "linkedin_url", p.LinkedinURL)
	setIfNotEmpty(q, "phone_number", p.PhoneNumber)
	setIfPositive(q, "limit", p.Limit)
	setIfPositive(q, "offset", p.Offset)
	return q
}

// LeadsResponse is the response envelope for ListLeads.
type LeadsResponse struct {
	Data LeadsData `json:"data"`
	Meta ListMeta  `json:"meta"`
}

// LeadsData wraps the returned leads.
type LeadsData struct {
	Leads []Lead `json:"leads"`
}

// LeadResponse is the response envelope for a single lead.
type LeadResponse struct {
	Data Lead `json:"data"`
}

// ListLeads returns the leads saved in the account, newest first. A nil
// params returns all leads.
func (c *Client) ListLeads(ctx context.Context, params *ListLeadsParams) (*LeadsResponse, error) {
	if params == nil {
		params = &ListLeadsParams{}
	}

	var resp LeadsResponse
	if err := c.apiClient.Get(ctx, "/leads", params.values(), &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}

// GetLead returns one lead by ID.
func (c *Client) GetLead(ctx context.Context, id int) (*LeadResponse, error) {
	var resp LeadResponse
	err := c.apiClient.Get(ctx, fmt.Sprintf("/leads/%d", id), nil, &resp)
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceLead))
	}
	return &resp, nil
}

// CreateLead saves a new lead. Email is required.
func (c *Client) CreateLead(ctx context.Context, params *LeadParams) (*LeadResponse, error) {
	if params == nil || params.Email == "" {
		return nil, ErrMissingEmail
	}

	var resp LeadResponse
	if err := c.apiClient.Do(ctx, http.MethodPost, "/leads", nil, params, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}

// UpdateLead modifies the given fields of a lead. The API returns no body on
// success.
func (c *Client) UpdateLead(ctx context.Context, id int, params *LeadParams) error {
	if params == nil {
		params = &LeadParams{}
	}

	err := c.apiClient.Do(ctx, http.MethodPut, fmt.Sprintf("/leads/%d", id), nil, params, nil)
	if err != nil {
		return wrapError(api.WithResourceType(err, api.ResourceLead))
	}
	return nil
}

// DeleteLead removes a lead.
func (c *Client) DeleteLead(ctx context.Context, id int) error {
	err := c.apiClient.Do(ctx, http.MethodDelete, fmt.Sprintf("/leads/%d", id), nil, nil, nil)
	if err != nil {
		return wrapError(api.WithResourceType(err, api.ResourceLead))
	}
	return nil
}
