package ports

import (
	"context"
	"time"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int64, error)
	Update(ctx context.Context, c *domain.Client) error
	// Delete removes the client together with its channel rows in a single
	// transaction. Team KPIs that referenced the client keep their row with
	// client_id cleared.
	Delete(ctx context.Context, id int64) error
}

// TeamRepository defines persistence operations for team members.
type TeamRepository interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	FindByID(ctx context.Context, id int64) (*domain.TeamMember, error)
	List(ctx context.Context, filter domain.TeamFilter) ([]domain.TeamMember, int64, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	// Delete removes the member and its team KPIs in a single transaction,
	// clearing the member from managed clients and client responses.
	Delete(ctx context.Context, id int64) error
}

// KPIRepository is the CRUD contract shared by every channel table.
type KPIRepository[T any] interface {
	Create(ctx context.Context, rec *T) error
	FindByID(ctx context.Context, id int64) (*T, error)
	// List returns a page of rows ordered newest period first, and the total
	// number of rows matching filter.
	List(ctx context.Context, filter domain.KPIFilter) ([]T, int64, error)
	Update(ctx context.Context, id int64, rec *T) error
	Delete(ctx context.Context, id int64) error
}

// ActivityRepository persists and lists audit entries.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error)
	// DeleteBefore prunes entries created before cutoff and reports how many
	// rows were removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
