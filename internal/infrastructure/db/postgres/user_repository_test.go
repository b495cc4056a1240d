package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := repo.Create(context.Background(), &domain.User{Username: "ana", Email: "ana@x.io", Role: "member"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now().UTC()
	cols := []string{"id", "username", "email", "full_name", "password_hash", "role", "created_at", "updated_at"}

	mock.ExpectQuery(`FROM users WHERE username = \$1 OR email = \$2\s+ORDER BY \(username = \$1\) DESC LIMIT 1`).
		WithArgs("Ana@X.io", "ana@x.io").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), "ana", "ana@x.io", "Ana", "hash", "admin", now, now))

	u, err := repo.FindByLogin(context.Background(), "Ana@X.io")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "admin", u.Role)

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(cols))

	_, err = repo.FindByID(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
