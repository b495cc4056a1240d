package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agencypulse/kpi-dashboard/internal/api/middleware"
	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

var testExpiry = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

// newContext builds an echo context with the validator registered and, when
// body is non-empty, a JSON request body.
func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withClaims(c echo.Context) {
	c.Set(middleware.ClaimsKey, ports.TokenClaims{
		UserID:    1,
		Username:  "root",
		Role:      domain.RoleAdmin,
		TokenID:   "jti-1",
		ExpiresAt: testExpiry,
	})
}

func withID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

// httpCode returns the status carried by an *echo.HTTPError, or 0.
func httpCode(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

// --- auth ---

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, login, password string) (string, *domain.User, error)
	meFn       func(ctx context.Context, userID int64) (*domain.User, error)
	logoutFn   func(ctx context.Context, actor domain.Actor, tokenID string, expiresAt time.Time) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, login, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, login, password)
}

func (s *stubAuthService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.meFn(ctx, userID)
}

func (s *stubAuthService) Logout(ctx context.Context, actor domain.Actor, tokenID string, expiresAt time.Time) error {
	return s.logoutFn(ctx, actor, tokenID, expiresAt)
}

// --- clients ---

type stubClientService struct {
	created    *domain.Client
	updatedID  int64
	deletedID  int64
	lastActor  domain.Actor
	lastFilter domain.ClientFilter
	err        error
}

func (s *stubClientService) Create(_ context.Context, actor domain.Actor, c *domain.Client) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastActor = actor
	c.ID = 10
	s.created = c
	return c, nil
}

func (s *stubClientService) Get(_ context.Context, id int64) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Client{ID: id, Name: "Acme", Status: domain.ClientActive}, nil
}

func (s *stubClientService) List(_ context.Context, f domain.ClientFilter) (*ports.ListResult[domain.Client], error) {
	s.lastFilter = f
	if s.err != nil {
		return nil, s.err
	}
	return &ports.ListResult[domain.Client]{
		Items:      []domain.Client{{ID: 1, Name: "Acme"}},
		Total:      41,
		Page:       2,
		Limit:      20,
		TotalPages: 3,
	}, nil
}

func (s *stubClientService) Update(_ context.Context, actor domain.Actor, id int64, c *domain.Client) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastActor = actor
	s.updatedID = id
	c.ID = id
	return c, nil
}

func (s *stubClientService) Delete(_ context.Context, actor domain.Actor, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.lastActor = actor
	s.deletedID = id
	return nil
}

func (s *stubClientService) Overview(_ context.Context, id int64) (*domain.ClientOverview, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.ClientOverview{
		Client:    &domain.Client{ID: id, Name: "Acme"},
		LatestAds: &domain.AdsKPI{ID: 4, ClientID: id, CampaignName: "summer"},
		Counts:    map[string]int64{domain.EntityAds: 2},
	}, nil
}

// --- team ---

type stubTeamService struct {
	lastFilter domain.TeamFilter
	created    *domain.TeamMember
	err        error
}

func (s *stubTeamService) Create(_ context.Context, _ domain.Actor, m *domain.TeamMember) (*domain.TeamMember, error) {
	if s.err != nil {
		return nil, s.err
	}
	m.ID = 5
	s.created = m
	return m, nil
}

func (s *stubTeamService) Get(_ context.Context, id int64) (*domain.TeamMember, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.TeamMember{ID: id, Name: "Dana"}, nil
}

func (s *stubTeamService) List(_ context.Context, f domain.TeamFilter) (*ports.ListResult[domain.TeamMember], error) {
	s.lastFilter = f
	return &ports.ListResult[domain.TeamMember]{Items: []domain.TeamMember{}, Page: 1, Limit: 20}, nil
}

func (s *stubTeamService) Update(_ context.Context, _ domain.Actor, id int64, m *domain.TeamMember) (*domain.TeamMember, error) {
	if s.err != nil {
		return nil, s.err
	}
	m.ID = id
	return m, nil
}

func (s *stubTeamService) Delete(_ context.Context, _ domain.Actor, _ int64) error {
	return s.err
}

// --- kpis ---

type stubKPIService[T any] struct {
	created    *T
	lastFilter domain.KPIFilter
	lastID     int64
	err        error
}

func (s *stubKPIService[T]) Create(_ context.Context, _ domain.Actor, rec *T) (*T, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = rec
	return rec, nil
}

func (s *stubKPIService[T]) Get(_ context.Context, id int64) (*T, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return new(T), nil
}

func (s *stubKPIService[T]) List(_ context.Context, f domain.KPIFilter) (*ports.ListResult[T], error) {
	s.lastFilter = f
	if s.err != nil {
		return nil, s.err
	}
	return &ports.ListResult[T]{Items: []T{}, Page: 1, Limit: 20}, nil
}

func (s *stubKPIService[T]) Update(_ context.Context, _ domain.Actor, id int64, rec *T) (*T, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return rec, nil
}

func (s *stubKPIService[T]) Delete(_ context.Context, _ domain.Actor, id int64) error {
	s.lastID = id
	return s.err
}

// --- activities ---

type stubActivityService struct {
	lastFilter domain.ActivityFilter
}

func (s *stubActivityService) List(_ context.Context, f domain.ActivityFilter) (*ports.ListResult[domain.Activity], error) {
	s.lastFilter = f
	return &ports.ListResult[domain.Activity]{
		Items: []domain.Activity{{ID: 9, Username: "root", Action: domain.ActionDelete, EntityType: domain.EntityClient}},
		Total:      1,
		Page:       1,
		Limit:      20,
		TotalPages: 1,
	}, nil
}
