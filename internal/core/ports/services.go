package ports

import (
	"context"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

// ListResult is a single page of rows plus the pagination envelope.
type ListResult[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ActivityRecorder accepts audit entries for asynchronous persistence.
type ActivityRecorder interface {
	Record(a domain.Activity)
}

type ClientService interface {
	Create(ctx context.Context, actor domain.Actor, c *domain.Client) (*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, filter domain.ClientFilter) (*ListResult[domain.Client], error)
	Update(ctx context.Context, actor domain.Actor, id int64, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
	Overview(ctx context.Context, id int64) (*domain.ClientOverview, error)
}

type TeamService interface {
	Create(ctx context.Context, actor domain.Actor, m *domain.TeamMember) (*domain.TeamMember, error)
	Get(ctx context.Context, id int64) (*domain.TeamMember, error)
	List(ctx context.Context, filter domain.TeamFilter) (*ListResult[domain.TeamMember], error)
	Update(ctx context.Context, actor domain.Actor, id int64, m *domain.TeamMember) (*domain.TeamMember, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

// KPIService is the use-case contract shared by every channel resource.
type KPIService[T any] interface {
	Create(ctx context.Context, actor domain.Actor, rec *T) (*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, filter domain.KPIFilter) (*ListResult[T], error)
	Update(ctx context.Context, actor domain.Actor, id int64, rec *T) (*T, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type ActivityService interface {
	List(ctx context.Context, filter domain.ActivityFilter) (*ListResult[domain.Activity], error)
}
