package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

type ActivityRepository struct {
	db *DB
}

func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, a *domain.Activity) error {
	const q = `
		INSERT INTO activity_log (user_id, username, action, entity_type, entity_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, q,
		nullableID(a.UserID), a.Username, a.Action, a.EntityType, nullableID(a.EntityID), a.Description, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert activity: %w", translate(err, domain.ErrConflict))
	}
	return nil
}

// List returns entries newest first.
func (r *ActivityRepository) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, int64, error) {
	var w whereBuilder
	if f.EntityType != "" {
		w.add("entity_type = $%d", f.EntityType)
	}
	if f.Action != "" {
		w.add("action = $%d", f.Action)
	}
	if f.UserID != 0 {
		w.add("user_id = $%d", f.UserID)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity_log`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activities: %w", err)
	}

	where := w.sql()
	q := `SELECT id, user_id, username, action, entity_type, entity_id, description, created_at
		FROM activity_log` + where + ` ORDER BY created_at DESC, id DESC` + w.page(f.Page, f.Limit)
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Activity, 0, f.Limit)
	for rows.Next() {
		var (
			a              domain.Activity
			userID, entity sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &userID, &a.Username, &a.Action, &a.EntityType, &entity, &a.Description, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan activity: %w", err)
		}
		a.UserID = idPtr(userID)
		a.EntityID = idPtr(entity)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate activities: %w", err)
	}
	return out, total, nil
}

func (r *ActivityRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activity_log WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune activities: %w", err)
	}
	return res.RowsAffected()
}
