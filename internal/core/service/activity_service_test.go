package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

func TestActivityService_List(t *testing.T) {
	repo := &stubActivityRepo{entries: []domain.Activity{
		{ID: 2, Action: domain.ActionLogin},
		{ID: 1, Action: domain.ActionCreate},
	}}
	svc := NewActivityService(repo, zerolog.Nop())

	res, err := svc.List(context.Background(), domain.ActivityFilter{Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 || res.TotalPages != 2 || res.Page != 1 {
		t.Errorf("unexpected envelope: %+v", res)
	}
}

func TestActivityService_Prune(t *testing.T) {
	repo := &stubActivityRepo{deleted: 7}
	svc := NewActivityService(repo, zerolog.Nop())

	before := time.Now().UTC()
	n, err := svc.Prune(context.Background(), 90*24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("expected 7 pruned, got %d", n)
	}
	want := before.Add(-90 * 24 * time.Hour)
	if d := repo.lastCutoff.Sub(want); d < 0 || d > time.Minute {
		t.Errorf("cutoff %v not within a minute of %v", repo.lastCutoff, want)
	}
}

func TestActivityService_Prune_Disabled(t *testing.T) {
	repo := &stubActivityRepo{deleted: 7}
	svc := NewActivityService(repo, zerolog.Nop())

	n, err := svc.Prune(context.Background(), 0)
	if err != nil || n != 0 {
		t.Fatalf("expected no-op, got n=%d err=%v", n, err)
	}
	if !repo.lastCutoff.IsZero() {
		t.Errorf("repository must not be called when retention is disabled")
	}
}
