package postgres

import (
	"time"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

func NewSocialMediaStore(db *DB) *KPIStore[domain.SocialMediaKPI] {
	return newKPIStore(db, kpiTable[domain.SocialMediaKPI]{
		name: "social_media_kpis",
		columns: []string{
			"client_id", "platform", "period_date", "followers", "new_followers", "posts_count",
			"likes", "comments", "shares", "reach", "impressions", "engagement_rate", "notes",
		},
		values: func(k *domain.SocialMediaKPI) []any {
			return []any{
				k.ClientID, k.Platform, k.PeriodDate, k.Followers, k.NewFollowers, k.PostsCount,
				k.Likes, k.Comments, k.Shares, k.Reach, k.Impressions, k.EngagementRate, k.Notes,
			}
		},
		fields: func(k *domain.SocialMediaKPI) []any {
			return []any{
				&k.ClientID, &k.Platform, &k.PeriodDate, &k.Followers, &k.NewFollowers, &k.PostsCount,
				&k.Likes, &k.Comments, &k.Shares, &k.Reach, &k.Impressions, &k.EngagementRate, &k.Notes,
			}
		},
		meta: func(k *domain.SocialMediaKPI) (*int64, *time.Time, *time.Time) {
			return &k.ID, &k.CreatedAt, &k.UpdatedAt
		},
		clientCol:   "client_id",
		categoryCol: "platform",
	})
}

func NewWebsiteSEOStore(db *DB) *KPIStore[domain.WebsiteSEOKPI] {
	return newKPIStore(db, kpiTable[domain.WebsiteSEOKPI]{
		name: "website_seo_kpis",
		columns: []string{
			"client_id", "period_date", "organic_traffic", "total_sessions", "bounce_rate",
			"avg_session_duration", "pages_per_session", "conversions", "conversion_rate",
			"keywords_top10", "backlinks", "domain_authority", "page_speed_score",
		},
		values: func(k *domain.WebsiteSEOKPI) []any {
			return []any{
				k.ClientID, k.PeriodDate, k.OrganicTraffic, k.TotalSessions, k.BounceRate,
				k.AvgSessionDuration, k.PagesPerSession, k.Conversions, k.ConversionRate,
				k.KeywordsTop10, k.Backlinks, k.DomainAuthority, k.PageSpeedScore,
			}
		},
		fields: func(k *domain.WebsiteSEOKPI) []any {
			return []any{
				&k.ClientID, &k.PeriodDate, &k.OrganicTraffic, &k.TotalSessions, &k.BounceRate,
				&k.AvgSessionDuration, &k.PagesPerSession, &k.Conversions, &k.ConversionRate,
				&k.KeywordsTop10, &k.Backlinks, &k.DomainAuthority, &k.PageSpeedScore,
			}
		},
		meta: func(k *domain.WebsiteSEOKPI) (*int64, *time.Time, *time.Time) {
			return &k.ID, &k.CreatedAt, &k.UpdatedAt
		},
		clientCol: "client_id",
	})
}

func NewAdsStore(db *DB) *KPIStore[domain.AdsKPI] {
	return newKPIStore(db, kpiTable[domain.AdsKPI]{
		name: "ads_kpis",
		columns: []string{
			"client_id", "platform", "campaign_name", "period_date", "spend", "impressions",
			"clicks", "conversions", "revenue", "ctr", "cpc", "cpa", "roas",
		},
		values: func(k *domain.AdsKPI) []any {
			return []any{
				k.ClientID, k.Platform, k.CampaignName, k.PeriodDate, k.Spend, k.Impressions,
				k.Clicks, k.Conversions, k.Revenue, k.CTR, k.CPC, k.CPA, k.ROAS,
			}
		},
		fields: func(k *domain.AdsKPI) []any {
			return []any{
				&k.ClientID, &k.Platform, &k.CampaignName, &k.PeriodDate, &k.Spend, &k.Impressions,
				&k.Clicks, &k.Conversions, &k.Revenue, &k.CTR, &k.CPC, &k.CPA, &k.ROAS,
			}
		},
		meta: func(k *domain.AdsKPI) (*int64, *time.Time, *time.Time) {
			return &k.ID, &k.CreatedAt, &k.UpdatedAt
		},
		clientCol:   "client_id",
		categoryCol: "platform",
	})
}

func NewEmailStore(db *DB) *KPIStore[domain.EmailKPI] {
	return newKPIStore(db, kpiTable[domain.EmailKPI]{
		name: "email_marketing_kpis",
		columns: []string{
			"client_id", "campaign_name", "period_date", "emails_sent", "delivered", "opens",
			"clicks", "bounces", "unsubscribes", "conversions", "open_rate", "click_rate",
			"bounce_rate", "unsubscribe_rate",
		},
		values: func(k *domain.EmailKPI) []any {
			return []any{
				k.ClientID, k.CampaignName, k.PeriodDate, k.EmailsSent, k.Delivered, k.Opens,
				k.Clicks, k.Bounces, k.Unsubscribes, k.Conversions, k.OpenRate, k.ClickRate,
				k.BounceRate, k.UnsubscribeRate,
			}
		},
		fields: func(k *domain.EmailKPI) []any {
			return []any{
				&k.ClientID, &k.CampaignName, &k.PeriodDate, &k.EmailsSent, &k.Delivered, &k.Opens,
				&k.Clicks, &k.Bounces, &k.Unsubscribes, &k.Conversions, &k.OpenRate, &k.ClickRate,
				&k.BounceRate, &k.UnsubscribeRate,
			}
		},
		meta: func(k *domain.EmailKPI) (*int64, *time.Time, *time.Time) {
			return &k.ID, &k.CreatedAt, &k.UpdatedAt
		},
		clientCol: "client_id",
	})
}

func NewClientResponseStore(db *DB) *KPIStore[domain.ClientResponse] {
	return newKPIStore(db, kpiTable[domain.ClientResponse]{
		name: "client_responses",
		columns: []string{
			"client_id", "team_member_id", "channel", "period_date", "response_time_hours",
			"satisfaction_score", "status", "feedback",
		},
		values: func(k *domain.ClientResponse) []any {
			return []any{
				k.ClientID, nullableID(k.TeamMemberID), k.Channel, k.PeriodDate, k.ResponseTimeHours,
				k.SatisfactionScore, k.Status, k.Feedback,
			}
		},
		fields: func(k *domain.ClientResponse) []any {
			return []any{
				&k.ClientID, &k.TeamMemberID, &k.Channel, &k.PeriodDate, &k.ResponseTimeHours,
				&k.SatisfactionScore, &k.Status, &k.Feedback,
			}
		},
		meta: func(k *domain.ClientResponse) (*int64, *time.Time, *time.Time) {
			return &k.ID, &k.CreatedAt, &k.UpdatedAt
		},
		clientCol:   "client_id",
		memberCol:   "team_member_id",
		categoryCol: "channel",
	})
}

func NewTeamKPIStore(db *DB) *KPIStore[domain.TeamKPI] {
	return newKPIStore(db, kpiTable[domain.TeamKPI]{
		name: "team_kpis",
		columns: []string{
			"team_member_id", "client_id", "period_date", "tasks_assigned", "tasks_completed",
			"hours_logged", "billable_hours", "deadlines_met", "deadlines_total",
			"client_satisfaction", "completion_rate", "utilization_rate", "on_time_rate",
		},
		values: func(k *domain.TeamKPI) []any {
			return []any{
				k.TeamMemberID, nullableID(k.ClientID), k.PeriodDate, k.TasksAssigned, k.TasksCompleted,
				k.HoursLogged, k.BillableHours, k.DeadlinesMet, k.DeadlinesTotal,
				k.ClientSatisfaction, k.CompletionRate, k.UtilizationRate, k.OnTimeRate,
			}
		},
		fields: func(k *domain.TeamKPI) []any {
			return []any{
				&k.TeamMemberID, &k.ClientID, &k.PeriodDate, &k.TasksAssigned, &k.TasksCompleted,
				&k.HoursLogged, &k.BillableHours, &k.DeadlinesMet, &k.DeadlinesTotal,
				&k.ClientSatisfaction, &k.CompletionRate, &k.UtilizationRate, &k.OnTimeRate,
			}
		},
		meta: func(k *domain.TeamKPI) (*int64, *time.Time, *time.Time) {
			return &k.ID, &k.CreatedAt, &k.UpdatedAt
		},
		clientCol: "client_id",
		memberCol: "team_member_id",
	})
}
