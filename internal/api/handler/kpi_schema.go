package handler

import (
	"fmt"
	"strings"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

// kpiRequest is a channel row as posted by the dashboard forms.
type kpiRequest[T any] interface {
	toRecord() (*T, error)
}

func periodDate(d *domain.Date) (domain.Date, error) {
	if d == nil || d.IsZero() {
		return domain.Date{}, fmt.Errorf("%w: period_date is required", domain.ErrValidation)
	}
	return *d, nil
}

type socialMediaRequest struct {
	ClientID     int64        `json:"client_id"     validate:"required,gt=0"`
	Platform     string       `json:"platform"      validate:"required,oneof=facebook instagram twitter linkedin tiktok youtube pinterest"`
	PeriodDate   *domain.Date `json:"period_date"   validate:"required"`
	Followers    int64        `json:"followers"     validate:"gte=0"`
	NewFollowers int64        `json:"new_followers"`
	PostsCount   int64        `json:"posts_count"   validate:"gte=0"`
	Likes        int64        `json:"likes"         validate:"gte=0"`
	Comments     int64        `json:"comments"      validate:"gte=0"`
	Shares       int64        `json:"shares"        validate:"gte=0"`
	Reach        int64        `json:"reach"         validate:"gte=0"`
	Impressions  int64        `json:"impressions"   validate:"gte=0"`
	Notes        string       `json:"notes"`
}

func (r socialMediaRequest) toRecord() (*domain.SocialMediaKPI, error) {
	period, err := periodDate(r.PeriodDate)
	if err != nil {
		return nil, err
	}
	return &domain.SocialMediaKPI{
		ClientID:     r.ClientID,
		Platform:     r.Platform,
		PeriodDate:   period,
		Followers:    r.Followers,
		NewFollowers: r.NewFollowers,
		PostsCount:   r.PostsCount,
		Likes:        r.Likes,
		Comments:     r.Comments,
		Shares:       r.Shares,
		Reach:        r.Reach,
		Impressions:  r.Impressions,
		Notes:        r.Notes,
	}, nil
}

type websiteSEORequest struct {
	ClientID           int64        `json:"client_id"            validate:"required,gt=0"`
	PeriodDate         *domain.Date `json:"period_date"          validate:"required"`
	OrganicTraffic     int64        `json:"organic_traffic"      validate:"gte=0"`
	TotalSessions      int64        `json:"total_sessions"       validate:"gte=0"`
	BounceRate         float64      `json:"bounce_rate"          validate:"gte=0,lte=100"`
	AvgSessionDuration float64      `json:"avg_session_duration" validate:"gte=0"`
	PagesPerSession    float64      `json:"pages_per_session"    validate:"gte=0"`
	Conversions        int64        `json:"conversions"          validate:"gte=0"`
	KeywordsTop10      int64        `json:"keywords_top10"       validate:"gte=0"`
	Backlinks          int64        `json:"backlinks"            validate:"gte=0"`
	DomainAuthority    int          `json:"domain_authority"     validate:"gte=0,lte=100"`
	PageSpeedScore     int          `json:"page_speed_score"     validate:"gte=0,lte=100"`
}

func (r websiteSEORequest) toRecord() (*domain.WebsiteSEOKPI, error) {
	period, err := periodDate(r.PeriodDate)
	if err != nil {
		return nil, err
	}
	return &domain.WebsiteSEOKPI{
		ClientID:           r.ClientID,
		PeriodDate:         period,
		OrganicTraffic:     r.OrganicTraffic,
		TotalSessions:      r.TotalSessions,
		BounceRate:         r.BounceRate,
		AvgSessionDuration: r.AvgSessionDuration,
		PagesPerSession:    r.PagesPerSession,
		Conversions:        r.Conversions,
		KeywordsTop10:      r.KeywordsTop10,
		Backlinks:          r.Backlinks,
		DomainAuthority:    r.DomainAuthority,
		PageSpeedScore:     r.PageSpeedScore,
	}, nil
}

type adsRequest struct {
	ClientID     int64        `json:"client_id"     validate:"required,gt=0"`
	Platform     string       `json:"platform"      validate:"required,oneof=google facebook instagram linkedin tiktok twitter bing"`
	CampaignName string       `json:"campaign_name" validate:"max=255"`
	PeriodDate   *domain.Date `json:"period_date"   validate:"required"`
	Spend        float64      `json:"spend"         validate:"gte=0"`
	Impressions  int64        `json:"impressions"   validate:"gte=0"`
	Clicks       int64        `json:"clicks"        validate:"gte=0"`
	Conversions  int64        `json:"conversions"   validate:"gte=0"`
	Revenue      float64      `json:"revenue"       validate:"gte=0"`
}

func (r adsRequest) toRecord() (*domain.AdsKPI, error) {
	period, err := periodDate(r.PeriodDate)
	if err != nil {
		return nil, err
	}
	return &domain.AdsKPI{
		ClientID:     r.ClientID,
		Platform:     r.Platform,
		CampaignName: strings.TrimSpace(r.CampaignName),
		PeriodDate:   period,
		Spend:        r.Spend,
		Impressions:  r.Impressions,
		Clicks:       r.Clicks,
		Conversions:  r.Conversions,
		Revenue:      r.Revenue,
	}, nil
}

type emailRequest struct {
	ClientID     int64        `json:"client_id"     validate:"required,gt=0"`
	CampaignName string       `json:"campaign_name" validate:"max=255"`
	PeriodDate   *domain.Date `json:"period_date"   validate:"required"`
	EmailsSent   int64        `json:"emails_sent"   validate:"gte=0"`
	Delivered    int64        `json:"delivered"     validate:"gte=0"`
	Opens        int64        `json:"opens"         validate:"gte=0"`
	Clicks       int64        `json:"clicks"        validate:"gte=0"`
	Bounces      int64        `json:"bounces"       validate:"gte=0"`
	Unsubscribes int64        `json:"unsubscribes"  validate:"gte=0"`
	Conversions  int64        `json:"conversions"   validate:"gte=0"`
}

func (r emailRequest) toRecord() (*domain.EmailKPI, error) {
	period, err := periodDate(r.PeriodDate)
	if err != nil {
		return nil, err
	}
	return &domain.EmailKPI{
		ClientID:     r.ClientID,
		CampaignName: strings.TrimSpace(r.CampaignName),
		PeriodDate:   period,
		EmailsSent:   r.EmailsSent,
		Delivered:    r.Delivered,
		Opens:        r.Opens,
		Clicks:       r.Clicks,
		Bounces:      r.Bounces,
		Unsubscribes: r.Unsubscribes,
		Conversions:  r.Conversions,
	}, nil
}

type clientResponseRequest struct {
	ClientID          int64        `json:"client_id"           validate:"required,gt=0"`
	TeamMemberID      *int64       `json:"team_member_id"      validate:"omitempty,gt=0"`
	Channel           string       `json:"channel"             validate:"required,oneof=email phone meeting chat social"`
	PeriodDate        *domain.Date `json:"period_date"         validate:"required"`
	ResponseTimeHours float64      `json:"response_time_hours" validate:"gte=0"`
	SatisfactionScore int          `json:"satisfaction_score"  validate:"required,gte=1,lte=5"`
	Status            string       `json:"status"              validate:"omitempty,oneof=pending resolved escalated"`
	Feedback          string       `json:"feedback"`
}

func (r clientResponseRequest) toRecord() (*domain.ClientResponse, error) {
	period, err := periodDate(r.PeriodDate)
	if err != nil {
		return nil, err
	}
	status := r.Status
	if status == "" {
		status = domain.ResponsePending
	}
	return &domain.ClientResponse{
		ClientID:          r.ClientID,
		TeamMemberID:      r.TeamMemberID,
		Channel:           r.Channel,
		PeriodDate:        period,
		ResponseTimeHours: r.ResponseTimeHours,
		SatisfactionScore: r.SatisfactionScore,
		Status:            status,
		Feedback:          r.Feedback,
	}, nil
}

type teamKPIRequest struct {
	TeamMemberID       int64        `json:"team_member_id"      validate:"required,gt=0"`
	ClientID           *int64       `json:"client_id"           validate:"omitempty,gt=0"`
	PeriodDate         *domain.Date `json:"period_date"         validate:"required"`
	TasksAssigned      int64        `json:"tasks_assigned"      validate:"gte=0"`
	TasksCompleted     int64        `json:"tasks_completed"     validate:"gte=0"`
	HoursLogged        float64      `json:"hours_logged"        validate:"gte=0"`
	BillableHours      float64      `json:"billable_hours"      validate:"gte=0"`
	DeadlinesMet       int64        `json:"deadlines_met"       validate:"gte=0"`
	DeadlinesTotal     int64        `json:"deadlines_total"     validate:"gte=0"`
	ClientSatisfaction float64      `json:"client_satisfaction" validate:"gte=0,lte=5"`
}

func (r teamKPIRequest) toRecord() (*domain.TeamKPI, error) {
	period, err := periodDate(r.PeriodDate)
	if err != nil {
		return nil, err
	}
	return &domain.TeamKPI{
		TeamMemberID:       r.TeamMemberID,
		ClientID:           r.ClientID,
		PeriodDate:         period,
		TasksAssigned:      r.TasksAssigned,
		TasksCompleted:     r.TasksCompleted,
		HoursLogged:        r.HoursLogged,
		BillableHours:      r.BillableHours,
		DeadlinesMet:       r.DeadlinesMet,
		DeadlinesTotal:     r.DeadlinesTotal,
		ClientSatisfaction: r.ClientSatisfaction,
	}, nil
}
