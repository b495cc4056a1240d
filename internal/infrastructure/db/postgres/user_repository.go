package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

const userColumns = `id, username, email, full_name, password_hash, role, created_at, updated_at`

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const q = `
		INSERT INTO users (username, email, full_name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, q,
		user.Username, user.Email, user.FullName, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", translate(err, domain.ErrUserExists))
	}
	return user, nil
}

// FindByLogin matches the username exactly or the email case-insensitively.
// An exact username match wins over an email match.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2
		ORDER BY (username = $1) DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, login, strings.ToLower(login)))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
