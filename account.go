package hunter

import "context"

// AccountResponse is the account information response envelope.
type AccountResponse struct {
	Data AccountData `json:"data"`
}

// AccountData describes the account behind the API key, its plan and the
// remaining quotas for the current period.
type AccountData struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	PlanName  string          `json:"plan_name"`
	PlanLevel int             `json:"plan_level"`
	ResetDate string          `json:"reset_date"`
	TeamID    int             `json:"team_id"`
	Requests  AccountRequests `json:"requests"`
}

// AccountRequests holds the per-feature usage quotas.
type AccountRequests struct {
	Searches      UsageQuota `json:"searches"`
	Verifications UsageQuota `json:"verifications"`
}

// UsageQuota is the used and available portion of a quota.
type UsageQuota struct {
	Used      int `json:"used"`
	Available int `json:"available"`
}

// Account returns information about the account tied to the API key. It is a
// cheap way to check that a key works.
func (c *Client) Account(ctx context.Context) (*AccountResponse, error) {
	var resp AccountResponse
	if err := c.apiClient.Get(ctx, "/account", nil, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp, nil
}
