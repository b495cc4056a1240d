package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/agencypulse/kpi-dashboard/internal/metrics"
	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

type ActivityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

func (s *ActivityService) List(ctx context.Context, filter domain.ActivityFilter) (*ports.ListResult[domain.Activity], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return newListResult(items, total, filter.Page, filter.Limit), nil
}

// Prune deletes entries older than retention. A non-positive retention keeps
// everything.
func (s *ActivityService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().Add(-retention)
	n, err := s.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune activities: %w", err)
	}
	metrics.ActivityPrunedTotal.Add(float64(n))
	s.logger.Info().Int64("deleted", n).Time("cutoff", cutoff).Msg("activity log pruned")
	return n, nil
}
