package domain

import "time"

const (
	ClientActive  = "active"
	ClientPaused  = "paused"
	ClientChurned = "churned"
)

// Client is an agency customer. Every KPI table hangs off a client row.
type Client struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Industry         string    `json:"industry"`
	ContactName      string    `json:"contact_name"`
	ContactEmail     string    `json:"contact_email"`
	Phone            string    `json:"phone"`
	Website          string    `json:"website"`
	Status           string    `json:"status"`
	MonthlyBudget    float64   `json:"monthly_budget"`
	AccountManagerID *int64    `json:"account_manager_id"`
	StartDate        *Date     `json:"start_date"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ClientFilter narrows client listings.
type ClientFilter struct {
	Status string
	Search string // partial match on name, industry or contact name
	Page   int
	Limit  int
}

// ClientOverview is the dashboard header for a single client: the client row,
// the most recent record per channel and how many records each channel holds.
type ClientOverview struct {
	Client         *Client          `json:"client"`
	LatestSocial   *SocialMediaKPI  `json:"latest_social_media"`
	LatestSEO      *WebsiteSEOKPI   `json:"latest_website_seo"`
	LatestAds      *AdsKPI          `json:"latest_ads"`
	LatestEmail    *EmailKPI        `json:"latest_email"`
	LatestResponse *ClientResponse  `json:"latest_response"`
	Counts         map[string]int64 `json:"counts"`
}
