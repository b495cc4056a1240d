package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

const teamColumns = `id, name, email, position, department, phone, hire_date, status, created_at, updated_at`

type TeamRepository struct {
	db *DB
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, m *domain.TeamMember) error {
	const q = `
		INSERT INTO team_members (name, email, position, department, phone, hire_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, q,
		m.Name, m.Email, m.Position, m.Department, m.Phone, nullableDate(m.HireDate), m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert team member: %w", translate(err, domain.ErrConflict))
	}
	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	q := `SELECT ` + teamColumns + ` FROM team_members WHERE id = $1`
	m, err := scanMember(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, translate(err, domain.ErrConflict)
	}
	return m, nil
}

func (r *TeamRepository) List(ctx context.Context, f domain.TeamFilter) ([]domain.TeamMember, int64, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	if f.Department != "" {
		w.add("department = $%d", f.Department)
	}
	if f.Search != "" {
		w.add(`(name ILIKE $%[1]d ESCAPE '\' OR email ILIKE $%[1]d ESCAPE '\' OR position ILIKE $%[1]d ESCAPE '\')`, containsPattern(f.Search))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM team_members`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count team members: %w", err)
	}

	where := w.sql()
	q := `SELECT ` + teamColumns + ` FROM team_members` + where + ` ORDER BY name ASC, id ASC` + w.page(f.Page, f.Limit)
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TeamMember, 0, f.Limit)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan team member: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate team members: %w", err)
	}
	return out, total, nil
}

func (r *TeamRepository) Update(ctx context.Context, m *domain.TeamMember) error {
	const q = `
		UPDATE team_members SET name = $1, email = $2, position = $3, department = $4, phone = $5,
			hire_date = $6, status = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, q,
		m.Name, m.Email, m.Position, m.Department, m.Phone, nullableDate(m.HireDate), m.Status, m.ID,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return translate(err, domain.ErrConflict)
	}
	return nil
}

// Delete detaches the member from clients and responses, drops their team
// KPIs and removes the member, all in one transaction.
func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE clients SET account_manager_id = NULL WHERE account_manager_id = $1`, id); err != nil {
			return fmt.Errorf("detach clients of member %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE client_responses SET team_member_id = NULL WHERE team_member_id = $1`, id); err != nil {
			return fmt.Errorf("detach responses of member %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM team_kpis WHERE team_member_id = $1`, id); err != nil {
			return fmt.Errorf("delete team kpis of member %d: %w", id, err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete team member %d: %w", id, err)
		}
		return requireAffected(res)
	})
}

func scanMember(row rowScanner) (*domain.TeamMember, error) {
	var (
		m    domain.TeamMember
		hire sql.NullTime
	)
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Position, &m.Department, &m.Phone, &hire,
		&m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.HireDate = datePtr(hire)
	return &m, nil
}
