package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

const clientColumns = `id, name, industry, contact_name, contact_email, phone, website, status,
	monthly_budget, account_manager_id, start_date, notes, created_at, updated_at`

// clientChildTables hold rows owned by a client; they are removed with it.
var clientChildTables = []string{
	"social_media_kpis",
	"website_seo_kpis",
	"ads_kpis",
	"email_marketing_kpis",
	"client_responses",
}

type ClientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	const q = `
		INSERT INTO clients (name, industry, contact_name, contact_email, phone, website, status,
			monthly_budget, account_manager_id, start_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, q,
		c.Name, c.Industry, c.ContactName, c.ContactEmail, c.Phone, c.Website, c.Status,
		c.MonthlyBudget, nullableID(c.AccountManagerID), nullableDate(c.StartDate), c.Notes,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert client: %w", translate(err, domain.ErrConflict))
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, translate(err, domain.ErrConflict)
	}
	return c, nil
}

func (r *ClientRepository) List(ctx context.Context, f domain.ClientFilter) ([]domain.Client, int64, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	if f.Search != "" {
		w.add(`(name ILIKE $%[1]d ESCAPE '\' OR industry ILIKE $%[1]d ESCAPE '\' OR contact_name ILIKE $%[1]d ESCAPE '\')`, containsPattern(f.Search))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	where := w.sql()
	q := `SELECT ` + clientColumns + ` FROM clients` + where + ` ORDER BY name ASC, id ASC` + w.page(f.Page, f.Limit)
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Client, 0, f.Limit)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate clients: %w", err)
	}
	return out, total, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	const q = `
		UPDATE clients SET name = $1, industry = $2, contact_name = $3, contact_email = $4, phone = $5,
			website = $6, status = $7, monthly_budget = $8, account_manager_id = $9, start_date = $10,
			notes = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, q,
		c.Name, c.Industry, c.ContactName, c.ContactEmail, c.Phone, c.Website, c.Status,
		c.MonthlyBudget, nullableID(c.AccountManagerID), nullableDate(c.StartDate), c.Notes, c.ID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return translate(err, domain.ErrConflict)
	}
	return nil
}

// Delete removes the client and every channel row it owns in one
// transaction. Team KPIs survive with client_id cleared.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, table := range clientChildTables {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE client_id = $1`, id); err != nil {
				return fmt.Errorf("delete %s of client %d: %w", table, id, err)
			}
		}
		if _, err := tx.ExecContext(ctx, `UPDATE team_kpis SET client_id = NULL WHERE client_id = $1`, id); err != nil {
			return fmt.Errorf("detach team kpis of client %d: %w", id, err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete client %d: %w", id, err)
		}
		return requireAffected(res)
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var (
		c       domain.Client
		manager sql.NullInt64
		start   sql.NullTime
	)
	err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.ContactName, &c.ContactEmail, &c.Phone, &c.Website,
		&c.Status, &c.MonthlyBudget, &manager, &start, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.AccountManagerID = idPtr(manager)
	c.StartDate = datePtr(start)
	return &c, nil
}

func nullableDate(d *domain.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.Time
}

func datePtr(v sql.NullTime) *domain.Date {
	if !v.Valid {
		return nil
	}
	d := domain.NewDate(v.Time)
	return &d
}
