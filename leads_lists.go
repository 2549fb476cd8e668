package hunter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/obaidrock78/hunter-io-client/internal/api"
)

// LeadsList is a named collection of leads.
type LeadsList struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	LeadsCount int    `json:"leads_count"`
	TeamID     int    `json:"team_id"`
	CreatedAt  string `json:"created_at"`
	// Leads is only populated when fetching a single list.
	Leads []Lead `json:"leads,omitempty"`
}

// LeadsListParams are the attributes accepted when creating or updating a
// leads list. Name is required on creation.
type LeadsListParams struct {
	Name string `json:"name,omitempty"`
	// TeamID shares the list with the team.
	TeamID int `json:"team_id,omitempty"`
}

// ListLeadsListsParams control the pagination of ListLeadsLists.
type ListLeadsListsParams struct {
	Limit  int
	Offset int
}

func (p *ListLeadsListsParams) values() url.Values {
	q := url.Values{}
	setIfPositive(q, "limit", p.Limit)
	setIfPositive(q, "offset", p.Offset)
	return q
}

// LeadsListsResponse is the response envelope for ListLeadsLists.
type LeadsListsResponse struct {
	Data LeadsListsData `json:"data"`
	Meta ListMeta       `json:"meta"`
}

// LeadsListsData wraps the returned leads lists.
type LeadsListsData struct {
	LeadsLists []LeadsList `json:"leads_lists"`
}

// LeadsListResponse is the response envelope for a single leads list.
type LeadsListResponse struct {
	Data LeadsList `json:"data"`
}

// ListLeadsLists returns the leads lists in the account. A nil params returns
// the first page.
func (c *Client) ListLeadsLists(ctx context.Context, params *ListLeadsListsParams) (*LeadsListsResponse, error) {
	if params == nil {
		params = &ListLeadsListsParams{}
	}

	var resp LeadsListsResponse
	if err := c.apiClient.Get(ctx, "/leads_lists", params.values(), &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}

// GetLeadsList returns one leads list by ID, including its leads.
func (c *Client) GetLeadsList(ctx context.Context, id int) (*LeadsListResponse, error) {
	var resp LeadsListResponse
	err := c.apiClient.Get(ctx, fmt.Sprintf("/leads_lists/%d", id), nil, &resp)
	if err != nil {
		return nil, wrapError(api.WithResourceType(err, api.ResourceLeadsList))
	}
	return &resp, nil
}

// CreateLeadsList creates a new leads list. Name is required.
func (c *Client) CreateLeadsList(ctx context.Context, params *LeadsListParams) (*LeadsListResponse, error) {
	if params == nil || params.Name == "" {
		return nil, ErrMissingListName
	}

	var resp LeadsListResponse
	if err := c.apiClient.Do(ctx, http.MethodPost, "/leads_lists", nil, params, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}

// UpdateLeadsList renames or reshares a leads list. The API returns no body
// on success.
func (c *Client) UpdateLeadsList(ctx context.Context, id int, params *LeadsListParams) error {
	if params == nil || params.Name == "" {
		return ErrMissingListName
	}

	err := c.apiClient.Do(ctx, http.MethodPut, fmt.Sprintf("/leads_lists/%d", id), nil, params, nil)
	if err != nil {
		return wrapError(api.WithResourceType(err, api.ResourceLeadsList))
	}
	return nil
}

// DeleteLeadsList removes a leads list and the leads it contains.
func (c *Client) DeleteLeadsList(ctx context.Context, id int) error {
	err := c.apiClient.Do(ctx, http.MethodDelete, fmt.Sprintf("/leads_lists/%d", id), nil, nil, nil)
	if err != nil {
		return wrapError(api.WithResourceType(err, api.ResourceLeadsList))
	}
	return nil
}
