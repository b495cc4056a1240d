package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

type stubClientRepo struct {
	clients    map[int64]*domain.Client
	nextID     int64
	deleteErr  error
	deletedIDs []int64
	lastFilter domain.ClientFilter
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) List(_ context.Context, f domain.ClientFilter) ([]domain.Client, int64, error) {
	r.lastFilter = f
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *c
	r.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.clients, id)
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

func emptyChannels() ChannelRepositories {
	return ChannelRepositories{
		Social: newStubKPIRepo(
			func(k *domain.SocialMediaKPI) int64 { return k.ID },
			func(k *domain.SocialMediaKPI, id int64) { k.ID = id }),
		SEO: newStubKPIRepo(
			func(k *domain.WebsiteSEOKPI) int64 { return k.ID },
			func(k *domain.WebsiteSEOKPI, id int64) { k.ID = id }),
		Ads: newStubKPIRepo(
			func(k *domain.AdsKPI) int64 { return k.ID },
			func(k *domain.AdsKPI, id int64) { k.ID = id }),
		Email: newStubKPIRepo(
			func(k *domain.EmailKPI) int64 { return k.ID },
			func(k *domain.EmailKPI, id int64) { k.ID = id }),
		Responses: newStubKPIRepo(
			func(k *domain.ClientResponse) int64 { return k.ID },
			func(k *domain.ClientResponse, id int64) { k.ID = id }),
	}
}

var admin = domain.Actor{UserID: 1, Username: "root", Role: domain.RoleAdmin}

func TestClientService_Create_DefaultsStatus(t *testing.T) {
	repo := newStubClientRepo()
	rec := &stubRecorder{}
	svc := NewClientService(repo, emptyChannels(), rec, zerolog.Nop())

	c, err := svc.Create(context.Background(), admin, &domain.Client{Name: "  Acme  ", ContactEmail: "OPS@ACME.IO"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("expected id to be assigned")
	}
	if c.Name != "Acme" || c.Status != domain.ClientActive || c.ContactEmail != "ops@acme.io" {
		t.Errorf("unexpected normalized client: %+v", c)
	}

	got := rec.last()
	if got.Action != domain.ActionCreate || got.EntityType != domain.EntityClient || *got.EntityID != c.ID {
		t.Errorf("unexpected activity: %+v", got)
	}
}

func TestClientService_Create_Validation(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), emptyChannels(), &stubRecorder{}, zerolog.Nop())

	cases := []*domain.Client{
		{Name: ""},
		{Name: "Acme", MonthlyBudget: -1},
		{Name: "Acme", Status: "archived"},
	}
	for _, c := range cases {
		if _, err := svc.Create(context.Background(), admin, c); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation for %+v, got %v", c, err)
		}
	}
}

func TestClientService_Update_NotFound(t *testing.T) {
	rec := &stubRecorder{}
	svc := NewClientService(newStubClientRepo(), emptyChannels(), rec, zerolog.Nop())

	_, err := svc.Update(context.Background(), admin, 42, &domain.Client{Name: "Ghost"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(rec.entries) != 0 {
		t.Errorf("failed update must not be recorded")
	}
}

func TestClientService_Delete(t *testing.T) {
	repo := newStubClientRepo()
	rec := &stubRecorder{}
	svc := NewClientService(repo, emptyChannels(), rec, zerolog.Nop())
	c, _ := svc.Create(context.Background(), admin, &domain.Client{Name: "Acme"})

	if err := svc.Delete(context.Background(), admin, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deletedIDs) != 1 || repo.deletedIDs[0] != c.ID {
		t.Errorf("expected repo delete of %d, got %v", c.ID, repo.deletedIDs)
	}
	if got := rec.last(); got.Action != domain.ActionDelete || got.Description != "deleted client Acme" {
		t.Errorf("unexpected activity: %+v", got)
	}
}

func TestClientService_Delete_NotFound(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, emptyChannels(), &stubRecorder{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), admin, 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.deletedIDs) != 0 {
		t.Errorf("repo delete must not run for a missing client")
	}
}

func TestClientService_Delete_TransactionFailure(t *testing.T) {
	repo := newStubClientRepo()
	rec := &stubRecorder{}
	svc := NewClientService(repo, emptyChannels(), rec, zerolog.Nop())
	c, _ := svc.Create(context.Background(), admin, &domain.Client{Name: "Acme"})
	repo.deleteErr = errors.New("tx rolled back")

	if err := svc.Delete(context.Background(), admin, c.ID); err == nil {
		t.Fatal("expected error")
	}
	if rec.last().Action != domain.ActionCreate {
		t.Errorf("failed delete must not be recorded")
	}
}

func TestClientService_List_NormalizesPagination(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, emptyChannels(), &stubRecorder{}, zerolog.Nop())

	res, err := svc.List(context.Background(), domain.ClientFilter{Page: 0, Limit: 500})
	if err != nil {
		t.Fatal(err)
	}
	if res.Page != 1 || res.Limit != 100 {
		t.Errorf("expected page 1 limit 100, got %d/%d", res.Page, res.Limit)
	}
	if repo.lastFilter.Limit != 100 {
		t.Errorf("repo must receive capped limit, got %d", repo.lastFilter.Limit)
	}
	if res.Items == nil {
		t.Errorf("items must be an empty slice, not nil")
	}
}

func TestClientService_Overview(t *testing.T) {
	repo := newStubClientRepo()
	channels := emptyChannels()
	svc := NewClientService(repo, channels, &stubRecorder{}, zerolog.Nop())
	c, _ := svc.Create(context.Background(), admin, &domain.Client{Name: "Acme"})

	ads := channels.Ads.(*stubKPIRepo[domain.AdsKPI])
	_ = ads.Create(context.Background(), &domain.AdsKPI{ClientID: c.ID, CampaignName: "spring"})
	_ = ads.Create(context.Background(), &domain.AdsKPI{ClientID: c.ID, CampaignName: "summer"})

	ov, err := svc.Overview(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if ov.Client.Name != "Acme" {
		t.Errorf("unexpected client %+v", ov.Client)
	}
	if ov.LatestAds == nil || ov.LatestAds.CampaignName != "summer" {
		t.Errorf("expected latest ads row 'summer', got %+v", ov.LatestAds)
	}
	if ov.Counts[domain.EntityAds] != 2 {
		t.Errorf("expected 2 ads rows, got %d", ov.Counts[domain.EntityAds])
	}
	if ov.LatestSocial != nil || ov.Counts[domain.EntitySocialMedia] != 0 {
		t.Errorf("expected no social rows")
	}
	if ads.lastFilter.ClientID != c.ID || ads.lastFilter.Limit != 1 {
		t.Errorf("overview must query one row scoped to the client, got %+v", ads.lastFilter)
	}
}

func TestClientService_Overview_PropagatesChannelError(t *testing.T) {
	repo := newStubClientRepo()
	channels := emptyChannels()
	channels.Email.(*stubKPIRepo[domain.EmailKPI]).listErr = errors.New("db down")
	svc := NewClientService(repo, channels, &stubRecorder{}, zerolog.Nop())
	c, _ := svc.Create(context.Background(), admin, &domain.Client{Name: "Acme"})

	if _, err := svc.Overview(context.Background(), c.ID); err == nil {
		t.Fatal("expected overview to fail when a channel query fails")
	}
}

func TestClientService_Overview_UnknownClient(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), emptyChannels(), &stubRecorder{}, zerolog.Nop())

	if _, err := svc.Overview(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
