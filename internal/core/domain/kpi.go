package domain

import (
	"fmt"
	"math"
	"time"
)

// KPIRecord is implemented by pointers to every per-channel KPI row so the
// KPI service can treat the channel tables uniformly.
type KPIRecord interface {
	RecordID() int64
	// Derive recomputes the ratio columns from the raw counters.
	Derive()
	// Describe returns a short human label used in the activity feed.
	Describe() string
}

// KPIFilter carries the list parameters shared by all channel tables.
// Zero values mean "no filter".
type KPIFilter struct {
	ClientID     int64
	TeamMemberID int64
	Category     string // platform for social/ads, channel for responses
	From         Date
	To           Date
	Page         int
	Limit        int
}

// SocialMediaKPI is one reporting period of a client's social account.
type SocialMediaKPI struct {
	ID             int64     `json:"id"`
	ClientID       int64     `json:"client_id"`
	Platform       string    `json:"platform"`
	PeriodDate     Date      `json:"period_date"`
	Followers      int64     `json:"followers"`
	NewFollowers   int64     `json:"new_followers"`
	PostsCount     int64     `json:"posts_count"`
	Likes          int64     `json:"likes"`
	Comments       int64     `json:"comments"`
	Shares         int64     `json:"shares"`
	Reach          int64     `json:"reach"`
	Impressions    int64     `json:"impressions"`
	EngagementRate float64   `json:"engagement_rate"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (k *SocialMediaKPI) RecordID() int64 { return k.ID }

func (k *SocialMediaKPI) Derive() {
	k.EngagementRate = percent(float64(k.Likes+k.Comments+k.Shares), float64(k.Reach))
}

func (k *SocialMediaKPI) Describe() string {
	return fmt.Sprintf("%s metrics for %s", k.Platform, k.PeriodDate)
}

// WebsiteSEOKPI is one reporting period of a client's website analytics.
type WebsiteSEOKPI struct {
	ID                 int64     `json:"id"`
	ClientID           int64     `json:"client_id"`
	PeriodDate         Date      `json:"period_date"`
	OrganicTraffic     int64     `json:"organic_traffic"`
	TotalSessions      int64     `json:"total_sessions"`
	BounceRate         float64   `json:"bounce_rate"`
	AvgSessionDuration float64   `json:"avg_session_duration"`
	PagesPerSession    float64   `json:"pages_per_session"`
	Conversions        int64     `json:"conversions"`
	ConversionRate     float64   `json:"conversion_rate"`
	KeywordsTop10      int64     `json:"keywords_top10"`
	Backlinks          int64     `json:"backlinks"`
	DomainAuthority    int       `json:"domain_authority"`
	PageSpeedScore     int       `json:"page_speed_score"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (k *WebsiteSEOKPI) RecordID() int64 { return k.ID }

func (k *WebsiteSEOKPI) Derive() {
	k.ConversionRate = percent(float64(k.Conversions), float64(k.TotalSessions))
}

func (k *WebsiteSEOKPI) Describe() string {
	return fmt.Sprintf("website metrics for %s", k.PeriodDate)
}

// AdsKPI is one reporting period of a paid campaign.
type AdsKPI struct {
	ID           int64     `json:"id"`
	ClientID     int64     `json:"client_id"`
	Platform     string    `json:"platform"`
	CampaignName string    `json:"campaign_name"`
	PeriodDate   Date      `json:"period_date"`
	Spend        float64   `json:"spend"`
	Impressions  int64     `json:"impressions"`
	Clicks       int64     `json:"clicks"`
	Conversions  int64     `json:"conversions"`
	Revenue      float64   `json:"revenue"`
	CTR          float64   `json:"ctr"`
	CPC          float64   `json:"cpc"`
	CPA          float64   `json:"cpa"`
	ROAS         float64   `json:"roas"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (k *AdsKPI) RecordID() int64 { return k.ID }

func (k *AdsKPI) Derive() {
	k.CTR = percent(float64(k.Clicks), float64(k.Impressions))
	k.CPC = ratio(k.Spend, float64(k.Clicks))
	k.CPA = ratio(k.Spend, float64(k.Conversions))
	k.ROAS = ratio(k.Revenue, k.Spend)
}

func (k *AdsKPI) Describe() string {
	return fmt.Sprintf("%s campaign %q for %s", k.Platform, k.CampaignName, k.PeriodDate)
}

// EmailKPI is one email campaign send.
type EmailKPI struct {
	ID              int64     `json:"id"`
	ClientID        int64     `json:"client_id"`
	CampaignName    string    `json:"campaign_name"`
	PeriodDate      Date      `json:"period_date"`
	EmailsSent      int64     `json:"emails_sent"`
	Delivered       int64     `json:"delivered"`
	Opens           int64     `json:"opens"`
	Clicks          int64     `json:"clicks"`
	Bounces         int64     `json:"bounces"`
	Unsubscribes    int64     `json:"unsubscribes"`
	Conversions     int64     `json:"conversions"`
	OpenRate        float64   `json:"open_rate"`
	ClickRate       float64   `json:"click_rate"`
	BounceRate      float64   `json:"bounce_rate"`
	UnsubscribeRate float64   `json:"unsubscribe_rate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (k *EmailKPI) RecordID() int64 { return k.ID }

func (k *EmailKPI) Derive() {
	k.OpenRate = percent(float64(k.Opens), float64(k.Delivered))
	k.ClickRate = percent(float64(k.Clicks), float64(k.Delivered))
	k.BounceRate = percent(float64(k.Bounces), float64(k.EmailsSent))
	k.UnsubscribeRate = percent(float64(k.Unsubscribes), float64(k.Delivered))
}

func (k *EmailKPI) Describe() string {
	return fmt.Sprintf("email campaign %q for %s", k.CampaignName, k.PeriodDate)
}

const (
	ResponsePending   = "pending"
	ResponseResolved  = "resolved"
	ResponseEscalated = "escalated"
)

// ClientResponse records how the agency handled one client contact.
type ClientResponse struct {
	ID                int64     `json:"id"`
	ClientID          int64     `json:"client_id"`
	TeamMemberID      *int64    `json:"team_member_id"`
	Channel           string    `json:"channel"`
	PeriodDate        Date      `json:"period_date"`
	ResponseTimeHours float64   `json:"response_time_hours"`
	SatisfactionScore int       `json:"satisfaction_score"`
	Status            string    `json:"status"`
	Feedback          string    `json:"feedback"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (k *ClientResponse) RecordID() int64 { return k.ID }

func (k *ClientResponse) Derive() {
	k.ResponseTimeHours = round2(k.ResponseTimeHours)
}

func (k *ClientResponse) Describe() string {
	return fmt.Sprintf("%s response on %s", k.Channel, k.PeriodDate)
}

// TeamKPI is one reporting period of a team member's output.
type TeamKPI struct {
	ID                 int64     `json:"id"`
	TeamMemberID       int64     `json:"team_member_id"`
	ClientID           *int64    `json:"client_id"`
	PeriodDate         Date      `json:"period_date"`
	TasksAssigned      int64     `json:"tasks_assigned"`
	TasksCompleted     int64     `json:"tasks_completed"`
	HoursLogged        float64   `json:"hours_logged"`
	BillableHours      float64   `json:"billable_hours"`
	DeadlinesMet       int64     `json:"deadlines_met"`
	DeadlinesTotal     int64     `json:"deadlines_total"`
	ClientSatisfaction float64   `json:"client_satisfaction"`
	CompletionRate     float64   `json:"completion_rate"`
	UtilizationRate    float64   `json:"utilization_rate"`
	OnTimeRate         float64   `json:"on_time_rate"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (k *TeamKPI) RecordID() int64 { return k.ID }

func (k *TeamKPI) Derive() {
	k.CompletionRate = percent(float64(k.TasksCompleted), float64(k.TasksAssigned))
	k.UtilizationRate = percent(k.BillableHours, k.HoursLogged)
	k.OnTimeRate = percent(float64(k.DeadlinesMet), float64(k.DeadlinesTotal))
}

func (k *TeamKPI) Describe() string {
	return fmt.Sprintf("team member %d metrics for %s", k.TeamMemberID, k.PeriodDate)
}

// ratio returns num/den rounded to cents, or 0 when den is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return round2(num / den)
}

func percent(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return round2(num / den * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
