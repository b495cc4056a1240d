package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agencypulse/kpi-dashboard/internal/metrics"
	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

// ChannelRepositories gives the client overview read access to every
// client-scoped channel table.
type ChannelRepositories struct {
	Social    ports.KPIRepository[domain.SocialMediaKPI]
	SEO       ports.KPIRepository[domain.WebsiteSEOKPI]
	Ads       ports.KPIRepository[domain.AdsKPI]
	Email     ports.KPIRepository[domain.EmailKPI]
	Responses ports.KPIRepository[domain.ClientResponse]
}

type ClientService struct {
	repo     ports.ClientRepository
	channels ChannelRepositories
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewClientService(
	repo ports.ClientRepository,
	channels ChannelRepositories,
	activity ports.ActivityRecorder,
	logger zerolog.Logger,
) *ClientService {
	return &ClientService{repo: repo, channels: channels, activity: activity, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, actor domain.Actor, c *domain.Client) (*domain.Client, error) {
	if err := prepareClient(c); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues(domain.EntityClient, domain.ActionCreate).Inc()
	s.activity.Record(domain.NewActivity(actor, domain.ActionCreate, domain.EntityClient, c.ID, "created client "+c.Name))
	s.logger.Info().Int64("client_id", c.ID).Str("by", actor.Username).Msg("client created")
	return c, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context, filter domain.ClientFilter) (*ports.ListResult[domain.Client], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return newListResult(items, total, filter.Page, filter.Limit), nil
}

func (s *ClientService) Update(ctx context.Context, actor domain.Actor, id int64, c *domain.Client) (*domain.Client, error) {
	if err := prepareClient(c); err != nil {
		return nil, err
	}
	c.ID = id
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update client %d: %w", id, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues(domain.EntityClient, domain.ActionUpdate).Inc()
	s.activity.Record(domain.NewActivity(actor, domain.ActionUpdate, domain.EntityClient, id, "updated client "+c.Name))
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues(domain.EntityClient, domain.ActionDelete).Inc()
	s.activity.Record(domain.NewActivity(actor, domain.ActionDelete, domain.EntityClient, id, "deleted client "+existing.Name))
	s.logger.Info().Int64("client_id", id).Str("by", actor.Username).Msg("client deleted")
	return nil
}

// Overview loads the client and the latest row of each channel concurrently.
func (s *ClientService) Overview(ctx context.Context, id int64) (*domain.ClientOverview, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ov := &domain.ClientOverview{Client: client}
	filter := domain.KPIFilter{ClientID: id, Page: 1, Limit: 1}
	var (
		socialTotal, seoTotal, adsTotal, emailTotal, respTotal int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ov.LatestSocial, socialTotal, err = latest(gctx, s.channels.Social, filter)
		return err
	})
	g.Go(func() error {
		var err error
		ov.LatestSEO, seoTotal, err = latest(gctx, s.channels.SEO, filter)
		return err
	})
	g.Go(func() error {
		var err error
		ov.LatestAds, adsTotal, err = latest(gctx, s.channels.Ads, filter)
		return err
	})
	g.Go(func() error {
		var err error
		ov.LatestEmail, emailTotal, err = latest(gctx, s.channels.Email, filter)
		return err
	})
	g.Go(func() error {
		var err error
		ov.LatestResponse, respTotal, err = latest(gctx, s.channels.Responses, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("client %d overview: %w", id, err)
	}

	ov.Counts = map[string]int64{
		domain.EntitySocialMedia:    socialTotal,
		domain.EntityWebsiteSEO:     seoTotal,
		domain.EntityAds:            adsTotal,
		domain.EntityEmail:          emailTotal,
		domain.EntityClientResponse: respTotal,
	}
	return ov, nil
}

func latest[T any](ctx context.Context, repo ports.KPIRepository[T], filter domain.KPIFilter) (*T, int64, error) {
	items, total, err := repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if len(items) == 0 {
		return nil, total, nil
	}
	return &items[0], total, nil
}

func prepareClient(c *domain.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if c.MonthlyBudget < 0 {
		return fmt.Errorf("%w: monthly_budget must not be negative", domain.ErrValidation)
	}
	switch c.Status {
	case "":
		c.Status = domain.ClientActive
	case domain.ClientActive, domain.ClientPaused, domain.ClientChurned:
	default:
		return fmt.Errorf("%w: unknown client status %q", domain.ErrValidation, c.Status)
	}
	c.ContactEmail = strings.ToLower(strings.TrimSpace(c.ContactEmail))
	return nil
}
