package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateKPITables, downCreateKPITables)
}

// Channel rows reference clients without ON DELETE actions; client and team
// member deletion clean them up explicitly inside one transaction.
var kpiTables = []string{`
	CREATE TABLE IF NOT EXISTS social_media_kpis (
		id BIGSERIAL PRIMARY KEY,
		client_id BIGINT NOT NULL REFERENCES clients(id),
		platform VARCHAR(20) NOT NULL
			CHECK (platform IN ('facebook', 'instagram', 'twitter', 'linkedin', 'tiktok', 'youtube', 'pinterest')),
		period_date DATE NOT NULL,
		followers BIGINT NOT NULL DEFAULT 0,
		new_followers BIGINT NOT NULL DEFAULT 0,
		posts_count BIGINT NOT NULL DEFAULT 0,
		likes BIGINT NOT NULL DEFAULT 0,
		comments BIGINT NOT NULL DEFAULT 0,
		shares BIGINT NOT NULL DEFAULT 0,
		reach BIGINT NOT NULL DEFAULT 0,
		impressions BIGINT NOT NULL DEFAULT 0,
		engagement_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`, `
	CREATE TABLE IF NOT EXISTS website_seo_kpis (
		id BIGSERIAL PRIMARY KEY,
		client_id BIGINT NOT NULL REFERENCES clients(id),
		period_date DATE NOT NULL,
		organic_traffic BIGINT NOT NULL DEFAULT 0,
		total_sessions BIGINT NOT NULL DEFAULT 0,
		bounce_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		avg_session_duration DOUBLE PRECISION NOT NULL DEFAULT 0,
		pages_per_session DOUBLE PRECISION NOT NULL DEFAULT 0,
		conversions BIGINT NOT NULL DEFAULT 0,
		conversion_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		keywords_top10 BIGINT NOT NULL DEFAULT 0,
		backlinks BIGINT NOT NULL DEFAULT 0,
		domain_authority INTEGER NOT NULL DEFAULT 0 CHECK (domain_authority BETWEEN 0 AND 100),
		page_speed_score INTEGER NOT NULL DEFAULT 0 CHECK (page_speed_score BETWEEN 0 AND 100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`, `
	CREATE TABLE IF NOT EXISTS ads_kpis (
		id BIGSERIAL PRIMARY KEY,
		client_id BIGINT NOT NULL REFERENCES clients(id),
		platform VARCHAR(20) NOT NULL
			CHECK (platform IN ('google', 'facebook', 'instagram', 'linkedin', 'tiktok', 'twitter', 'bing')),
		campaign_name VARCHAR(255) NOT NULL DEFAULT '',
		period_date DATE NOT NULL,
		spend DOUBLE PRECISION NOT NULL DEFAULT 0,
		impressions BIGINT NOT NULL DEFAULT 0,
		clicks BIGINT NOT NULL DEFAULT 0,
		conversions BIGINT NOT NULL DEFAULT 0,
		revenue DOUBLE PRECISION NOT NULL DEFAULT 0,
		ctr DOUBLE PRECISION NOT NULL DEFAULT 0,
		cpc DOUBLE PRECISION NOT NULL DEFAULT 0,
		cpa DOUBLE PRECISION NOT NULL DEFAULT 0,
		roas DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`, `
	CREATE TABLE IF NOT EXISTS email_marketing_kpis (
		id BIGSERIAL PRIMARY KEY,
		client_id BIGINT NOT NULL REFERENCES clients(id),
		campaign_name VARCHAR(255) NOT NULL DEFAULT '',
		period_date DATE NOT NULL,
		emails_sent BIGINT NOT NULL DEFAULT 0,
		delivered BIGINT NOT NULL DEFAULT 0,
		opens BIGINT NOT NULL DEFAULT 0,
		clicks BIGINT NOT NULL DEFAULT 0,
		bounces BIGINT NOT NULL DEFAULT 0,
		unsubscribes BIGINT NOT NULL DEFAULT 0,
		conversions BIGINT NOT NULL DEFAULT 0,
		open_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		click_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		bounce_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		unsubscribe_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`, `
	CREATE TABLE IF NOT EXISTS client_responses (
		id BIGSERIAL PRIMARY KEY,
		client_id BIGINT NOT NULL REFERENCES clients(id),
		team_member_id BIGINT REFERENCES team_members(id),
		channel VARCHAR(20) NOT NULL CHECK (channel IN ('email', 'phone', 'meeting', 'chat', 'social')),
		period_date DATE NOT NULL,
		response_time_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		satisfaction_score INTEGER NOT NULL CHECK (satisfaction_score BETWEEN 1 AND 5),
		status VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'resolved', 'escalated')),
		feedback TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`, `
	CREATE TABLE IF NOT EXISTS team_kpis (
		id BIGSERIAL PRIMARY KEY,
		team_member_id BIGINT NOT NULL REFERENCES team_members(id),
		client_id BIGINT REFERENCES clients(id),
		period_date DATE NOT NULL,
		tasks_assigned BIGINT NOT NULL DEFAULT 0,
		tasks_completed BIGINT NOT NULL DEFAULT 0,
		hours_logged DOUBLE PRECISION NOT NULL DEFAULT 0,
		billable_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		deadlines_met BIGINT NOT NULL DEFAULT 0,
		deadlines_total BIGINT NOT NULL DEFAULT 0,
		client_satisfaction DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (client_satisfaction BETWEEN 0 AND 5),
		completion_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		utilization_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		on_time_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`, `
	CREATE INDEX IF NOT EXISTS idx_social_client_period ON social_media_kpis(client_id, period_date DESC);
	CREATE INDEX IF NOT EXISTS idx_seo_client_period ON website_seo_kpis(client_id, period_date DESC);
	CREATE INDEX IF NOT EXISTS idx_ads_client_period ON ads_kpis(client_id, period_date DESC);
	CREATE INDEX IF NOT EXISTS idx_email_client_period ON email_marketing_kpis(client_id, period_date DESC);
	CREATE INDEX IF NOT EXISTS idx_responses_client_period ON client_responses(client_id, period_date DESC);
	CREATE INDEX IF NOT EXISTS idx_responses_member ON client_responses(team_member_id);
	CREATE INDEX IF NOT EXISTS idx_team_kpis_member_period ON team_kpis(team_member_id, period_date DESC);
	CREATE INDEX IF NOT EXISTS idx_team_kpis_client ON team_kpis(client_id);
	`,
}

func upCreateKPITables(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range kpiTables {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func downCreateKPITables(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{
		"team_kpis", "client_responses", "email_marketing_kpis", "ads_kpis", "website_seo_kpis", "social_media_kpis",
	} {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+table+`;`); err != nil {
			return err
		}
	}
	return nil
}
