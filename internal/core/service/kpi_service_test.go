package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

func newAdsService() (*KPIService[domain.AdsKPI, *domain.AdsKPI], *stubKPIRepo[domain.AdsKPI], *stubRecorder) {
	repo := newStubKPIRepo(
		func(k *domain.AdsKPI) int64 { return k.ID },
		func(k *domain.AdsKPI, id int64) { k.ID = id },
	)
	rec := &stubRecorder{}
	svc := NewKPIService[domain.AdsKPI, *domain.AdsKPI](domain.EntityAds, repo, rec, zerolog.Nop())
	return svc, repo, rec
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestKPIService_Create_DerivesMetrics(t *testing.T) {
	svc, repo, rec := newAdsService()

	row, err := svc.Create(context.Background(), admin, &domain.AdsKPI{
		ClientID:     3,
		Platform:     "google",
		CampaignName: "spring",
		PeriodDate:   mustDate(t, "2024-03-01"),
		Spend:        500,
		Impressions:  10000,
		Clicks:       250,
		Conversions:  10,
		Revenue:      1500,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	want := struct{ CTR, CPC, CPA, ROAS float64 }{2.5, 2, 50, 3}
	got := struct{ CTR, CPC, CPA, ROAS float64 }{row.CTR, row.CPC, row.CPA, row.ROAS}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("derived metrics mismatch (-want +got):\n%s", diff)
	}
	if stored := repo.rows[row.ID]; stored.ROAS != 3 {
		t.Errorf("derived metrics must be persisted, got %+v", stored)
	}

	act := rec.last()
	if act.EntityType != domain.EntityAds || *act.EntityID != row.ID {
		t.Errorf("unexpected activity %+v", act)
	}
	if act.Description != `added google campaign "spring" for 2024-03-01` {
		t.Errorf("unexpected description %q", act.Description)
	}
}

func TestKPIService_Update(t *testing.T) {
	svc, _, rec := newAdsService()
	row, _ := svc.Create(context.Background(), admin, &domain.AdsKPI{Platform: "bing", Spend: 100, Clicks: 10})

	updated, err := svc.Update(context.Background(), admin, row.ID, &domain.AdsKPI{Platform: "bing", Spend: 100, Clicks: 50})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != row.ID || updated.CPC != 2 {
		t.Errorf("unexpected row after update: %+v", updated)
	}
	if rec.last().Action != domain.ActionUpdate {
		t.Errorf("expected update activity")
	}

	_, err = svc.Update(context.Background(), admin, 404, &domain.AdsKPI{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestKPIService_Delete(t *testing.T) {
	svc, repo, rec := newAdsService()
	row, _ := svc.Create(context.Background(), admin, &domain.AdsKPI{Platform: "tiktok", CampaignName: "launch"})

	if err := svc.Delete(context.Background(), admin, row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.rows) != 0 {
		t.Errorf("row must be removed")
	}
	if got := rec.last(); got.Action != domain.ActionDelete || got.Description != `removed tiktok campaign "launch" for ` {
		t.Errorf("unexpected activity %+v", got)
	}
	if err := svc.Delete(context.Background(), admin, row.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestKPIService_List_RejectsInvertedRange(t *testing.T) {
	svc, repo, _ := newAdsService()

	_, err := svc.List(context.Background(), domain.KPIFilter{
		From: mustDate(t, "2024-05-01"),
		To:   mustDate(t, "2024-04-01"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.lastFilter.Limit != 0 {
		t.Errorf("repository must not be queried for an invalid range")
	}
}

func TestKPIService_List_Pagination(t *testing.T) {
	svc, repo, _ := newAdsService()
	for i := 0; i < 45; i++ {
		_, _ = svc.Create(context.Background(), admin, &domain.AdsKPI{ClientID: 1})
	}

	res, err := svc.List(context.Background(), domain.KPIFilter{ClientID: 1, Page: 3})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 45 || res.TotalPages != 3 || len(res.Items) != 5 {
		t.Errorf("unexpected page: total=%d pages=%d items=%d", res.Total, res.TotalPages, len(res.Items))
	}
	if repo.lastFilter.Limit != 20 || repo.lastFilter.ClientID != 1 {
		t.Errorf("unexpected filter passed to repo: %+v", repo.lastFilter)
	}
}

func TestKPIService_TeamKPI(t *testing.T) {
	repo := newStubKPIRepo(
		func(k *domain.TeamKPI) int64 { return k.ID },
		func(k *domain.TeamKPI, id int64) { k.ID = id },
	)
	svc := NewKPIService[domain.TeamKPI, *domain.TeamKPI](domain.EntityTeamKPI, repo, &stubRecorder{}, zerolog.Nop())

	row, err := svc.Create(context.Background(), admin, &domain.TeamKPI{
		TeamMemberID:   2,
		TasksAssigned:  0,
		TasksCompleted: 0,
		HoursLogged:    40,
		BillableHours:  30,
	})
	if err != nil {
		t.Fatal(err)
	}
	if row.CompletionRate != 0 || row.UtilizationRate != 75 {
		t.Errorf("unexpected rates: completion=%v utilization=%v", row.CompletionRate, row.UtilizationRate)
	}
}

func TestKPIService_List_HugePageIsCapped(t *testing.T) {
	svc, repo, _ := newAdsService()
	_, _ = svc.Create(context.Background(), admin, &domain.AdsKPI{ClientID: 1})

	res, err := svc.List(context.Background(), domain.KPIFilter{Page: math.MaxInt64 / 10, Limit: 100})
	if err != nil {
		t.Fatal(err)
	}
	if repo.lastFilter.Page != maxPage {
		t.Fatalf("expected page capped at %d, got %d", maxPage, repo.lastFilter.Page)
	}
	if offset := (repo.lastFilter.Page - 1) * repo.lastFilter.Limit; offset < 0 || offset > math.MaxInt32 {
		t.Fatalf("offset out of range: %d", offset)
	}
	if len(res.Items) != 0 || res.Total != 1 {
		t.Errorf("expected an empty page past the end, got items=%d total=%d", len(res.Items), res.Total)
	}
}
