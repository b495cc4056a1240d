package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agencypulse/kpi-dashboard/internal/metrics"
	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

// kpiRow constrains P to be the pointer type of T implementing KPIRecord,
// so the service can call Derive and Describe on *T.
type kpiRow[T any] interface {
	*T
	domain.KPIRecord
}

// KPIService implements the CRUD use cases for one channel table. The same
// implementation serves social, SEO, ads, email, responses and team KPIs.
type KPIService[T any, P kpiRow[T]] struct {
	entity   string
	repo     ports.KPIRepository[T]
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewKPIService[T any, P kpiRow[T]](
	entity string,
	repo ports.KPIRepository[T],
	activity ports.ActivityRecorder,
	logger zerolog.Logger,
) *KPIService[T, P] {
	return &KPIService[T, P]{
		entity:   entity,
		repo:     repo,
		activity: activity,
		logger:   logger.With().Str("entity", entity).Logger(),
	}
}

func (s *KPIService[T, P]) Create(ctx context.Context, actor domain.Actor, rec *T) (*T, error) {
	row := P(rec)
	row.Derive()
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.entity, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues(s.entity, domain.ActionCreate).Inc()
	s.activity.Record(domain.NewActivity(actor, domain.ActionCreate, s.entity, row.RecordID(), "added "+row.Describe()))
	s.logger.Debug().Int64("id", row.RecordID()).Str("by", actor.Username).Msg("kpi row created")
	return rec, nil
}

func (s *KPIService[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *KPIService[T, P]) List(ctx context.Context, filter domain.KPIFilter) (*ports.ListResult[T], error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From.Time) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", domain.ErrValidation)
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entity, err)
	}
	return newListResult(items, total, filter.Page, filter.Limit), nil
}

func (s *KPIService[T, P]) Update(ctx context.Context, actor domain.Actor, id int64, rec *T) (*T, error) {
	row := P(rec)
	row.Derive()
	if err := s.repo.Update(ctx, id, rec); err != nil {
		return nil, fmt.Errorf("update %s %d: %w", s.entity, id, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues(s.entity, domain.ActionUpdate).Inc()
	s.activity.Record(domain.NewActivity(actor, domain.ActionUpdate, s.entity, id, "updated "+row.Describe()))
	return rec, nil
}

func (s *KPIService[T, P]) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", s.entity, id, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues(s.entity, domain.ActionDelete).Inc()
	s.activity.Record(domain.NewActivity(actor, domain.ActionDelete, s.entity, id, "removed "+P(existing).Describe()))
	return nil
}
