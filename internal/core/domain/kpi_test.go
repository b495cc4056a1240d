package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAdsKPI_Derive(t *testing.T) {
	k := &AdsKPI{Spend: 250, Impressions: 10000, Clicks: 400, Conversions: 20, Revenue: 1000}
	k.Derive()

	if k.CTR != 4 {
		t.Errorf("ctr: expected 4, got %v", k.CTR)
	}
	if k.CPC != 0.63 {
		t.Errorf("cpc: expected 0.63, got %v", k.CPC)
	}
	if k.CPA != 12.5 {
		t.Errorf("cpa: expected 12.5, got %v", k.CPA)
	}
	if k.ROAS != 4 {
		t.Errorf("roas: expected 4, got %v", k.ROAS)
	}
}

func TestAdsKPI_Derive_ZeroDenominators(t *testing.T) {
	k := &AdsKPI{Revenue: 50}
	k.Derive()

	if k.CTR != 0 || k.CPC != 0 || k.CPA != 0 || k.ROAS != 0 {
		t.Fatalf("expected all ratios 0 on empty counters, got %+v", k)
	}
}

func TestEmailKPI_Derive(t *testing.T) {
	k := &EmailKPI{EmailsSent: 1000, Delivered: 950, Opens: 380, Clicks: 57, Bounces: 50, Unsubscribes: 3}
	k.Derive()

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"open_rate", k.OpenRate, 40},
		{"click_rate", k.ClickRate, 6},
		{"bounce_rate", k.BounceRate, 5},
		{"unsubscribe_rate", k.UnsubscribeRate, 0.32},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, tc.got)
		}
	}
}

func TestSocialMediaKPI_Derive(t *testing.T) {
	k := &SocialMediaKPI{Likes: 300, Comments: 50, Shares: 25, Reach: 5000}
	k.Derive()
	if k.EngagementRate != 7.5 {
		t.Errorf("expected engagement 7.5, got %v", k.EngagementRate)
	}
}

func TestTeamKPI_Derive(t *testing.T) {
	k := &TeamKPI{TasksAssigned: 8, TasksCompleted: 6, HoursLogged: 40, BillableHours: 30, DeadlinesMet: 3, DeadlinesTotal: 4}
	k.Derive()
	if k.CompletionRate != 75 || k.UtilizationRate != 75 || k.OnTimeRate != 75 {
		t.Errorf("unexpected rates: %+v", k)
	}
}

func TestWebsiteSEOKPI_Derive(t *testing.T) {
	k := &WebsiteSEOKPI{TotalSessions: 3000, Conversions: 45}
	k.Derive()
	if k.ConversionRate != 1.5 {
		t.Errorf("expected 1.5, got %v", k.ConversionRate)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	var payload struct {
		PeriodDate Date  `json:"period_date"`
		StartDate  *Date `json:"start_date"`
	}
	if err := json.Unmarshal([]byte(`{"period_date":"2024-03-15T13:45:00Z","start_date":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.PeriodDate.String() != "2024-03-15" {
		t.Errorf("expected time-of-day dropped, got %s", payload.PeriodDate)
	}
	if payload.StartDate != nil {
		t.Errorf("expected nil start date")
	}

	out, err := json.Marshal(payload.PeriodDate)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-03-15"` {
		t.Errorf("unexpected encoding %s", out)
	}
}

func TestDate_ParseRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestDate_Scan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2024-01-02" {
		t.Errorf("unexpected date %s", d)
	}
	if err := d.Scan(nil); err != nil || !d.IsZero() {
		t.Errorf("expected zero date from NULL, got %v (%v)", d, err)
	}
}

func TestNewActivity_AnonymousActor(t *testing.T) {
	a := NewActivity(Actor{}, ActionLogin, EntityUser, 0, "failed")
	if a.UserID != nil || a.EntityID != nil {
		t.Fatalf("expected nil ids for anonymous entry, got %+v", a)
	}
}
