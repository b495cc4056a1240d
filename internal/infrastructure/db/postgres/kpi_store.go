package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

// kpiTable maps one channel table onto its row type. columns lists the
// writable columns; values and fields must return matching slices in the same
// order for inserts/updates and scans respectively.
type kpiTable[T any] struct {
	name    string
	columns []string
	values  func(*T) []any
	fields  func(*T) []any
	meta    func(*T) (id *int64, createdAt, updatedAt *time.Time)

	// Optional filter columns; empty means the table has no such filter.
	clientCol   string
	memberCol   string
	categoryCol string
}

// KPIStore is the PostgreSQL implementation of ports.KPIRepository shared by
// every channel table.
type KPIStore[T any] struct {
	db    *DB
	table kpiTable[T]
}

func newKPIStore[T any](db *DB, table kpiTable[T]) *KPIStore[T] {
	return &KPIStore[T]{db: db, table: table}
}

func (s *KPIStore[T]) selectColumns() string {
	return "id, " + strings.Join(s.table.columns, ", ") + ", created_at, updated_at"
}

func (s *KPIStore[T]) scanDest(rec *T) []any {
	id, created, updated := s.table.meta(rec)
	dest := make([]any, 0, len(s.table.columns)+3)
	dest = append(dest, id)
	dest = append(dest, s.table.fields(rec)...)
	return append(dest, created, updated)
}

func (s *KPIStore[T]) Create(ctx context.Context, rec *T) error {
	placeholders := make([]string, len(s.table.columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id, created_at, updated_at`,
		s.table.name, strings.Join(s.table.columns, ", "), strings.Join(placeholders, ", "))

	id, created, updated := s.table.meta(rec)
	if err := s.db.QueryRowContext(ctx, q, s.table.values(rec)...).Scan(id, created, updated); err != nil {
		return fmt.Errorf("insert into %s: %w", s.table.name, translate(err, domain.ErrConflict))
	}
	return nil
}

func (s *KPIStore[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.selectColumns(), s.table.name)

	rec := new(T)
	if err := s.db.QueryRowContext(ctx, q, id).Scan(s.scanDest(rec)...); err != nil {
		return nil, translate(err, domain.ErrConflict)
	}
	return rec, nil
}

func (s *KPIStore[T]) List(ctx context.Context, f domain.KPIFilter) ([]T, int64, error) {
	var w whereBuilder
	if f.ClientID != 0 && s.table.clientCol != "" {
		w.add(s.table.clientCol+" = $%d", f.ClientID)
	}
	if f.TeamMemberID != 0 && s.table.memberCol != "" {
		w.add(s.table.memberCol+" = $%d", f.TeamMemberID)
	}
	if f.Category != "" && s.table.categoryCol != "" {
		w.add(s.table.categoryCol+" = $%d", f.Category)
	}
	if !f.From.IsZero() {
		w.add("period_date >= $%d", f.From.Time)
	}
	if !f.To.IsZero() {
		w.add("period_date <= $%d", f.To.Time)
	}

	var total int64
	countQ := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, s.table.name, w.sql())
	if err := s.db.QueryRowContext(ctx, countQ, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", s.table.name, err)
	}

	where := w.sql()
	q := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY period_date DESC, id DESC%s`,
		s.selectColumns(), s.table.name, where, w.page(f.Page, f.Limit))
	rows, err := s.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", s.table.name, err)
	}
	defer rows.Close()

	out := make([]T, 0, f.Limit)
	for rows.Next() {
		var rec T
		if err := rows.Scan(s.scanDest(&rec)...); err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", s.table.name, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate %s: %w", s.table.name, err)
	}
	return out, total, nil
}

func (s *KPIStore[T]) Update(ctx context.Context, id int64, rec *T) error {
	sets := make([]string, len(s.table.columns))
	for i, col := range s.table.columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args := append(s.table.values(rec), id)
	q := fmt.Sprintf(`UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d RETURNING id, created_at, updated_at`,
		s.table.name, strings.Join(sets, ", "), len(args))

	recID, created, updated := s.table.meta(rec)
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(recID, created, updated); err != nil {
		return translate(err, domain.ErrConflict)
	}
	return nil
}

func (s *KPIStore[T]) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table.name), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", s.table.name, err)
	}
	return requireAffected(res)
}
