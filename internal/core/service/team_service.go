package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agencypulse/kpi-dashboard/internal/metrics"
	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

type TeamService struct {
	repo     ports.TeamRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewTeamService(repo ports.TeamRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, activity: activity, logger: logger}
}

func (s *TeamService) Create(ctx context.Context, actor domain.Actor, m *domain.TeamMember) (*domain.TeamMember, error) {
	if err := prepareMember(m); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues(domain.EntityTeamMember, domain.ActionCreate).Inc()
	s.activity.Record(domain.NewActivity(actor, domain.ActionCreate, domain.EntityTeamMember, m.ID, "added team member "+m.Name))
	return m, nil
}

func (s *TeamService) Get(ctx context.Context, id int64) (*domain.TeamMember, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TeamService) List(ctx context.Context, filter domain.TeamFilter) (*ports.ListResult[domain.TeamMember], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return newListResult(items, total, filter.Page, filter.Limit), nil
}

func (s *TeamService) Update(ctx context.Context, actor domain.Actor, id int64, m *domain.TeamMember) (*domain.TeamMember, error) {
	if err := prepareMember(m); err != nil {
		return nil, err
	}
	m.ID = id
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update team member %d: %w", id, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues(domain.EntityTeamMember, domain.ActionUpdate).Inc()
	s.activity.Record(domain.NewActivity(actor, domain.ActionUpdate, domain.EntityTeamMember, id, "updated team member "+m.Name))
	return m, nil
}

func (s *TeamService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete team member %d: %w", id, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues(domain.EntityTeamMember, domain.ActionDelete).Inc()
	s.activity.Record(domain.NewActivity(actor, domain.ActionDelete, domain.EntityTeamMember, id, "removed team member "+existing.Name))
	s.logger.Info().Int64("team_member_id", id).Str("by", actor.Username).Msg("team member deleted")
	return nil
}

func prepareMember(m *domain.TeamMember) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	if m.Name == "" || m.Email == "" {
		return fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	switch m.Status {
	case "":
		m.Status = domain.MemberActive
	case domain.MemberActive, domain.MemberInactive:
	default:
		return fmt.Errorf("%w: unknown member status %q", domain.ErrValidation, m.Status)
	}
	return nil
}
