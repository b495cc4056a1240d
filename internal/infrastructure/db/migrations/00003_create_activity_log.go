package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateActivityLog, downCreateActivityLog)
}

func upCreateActivityLog(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS activity_log (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		username VARCHAR(50) NOT NULL DEFAULT '',
		action VARCHAR(20) NOT NULL CHECK (action IN ('create', 'update', 'delete', 'login', 'logout')),
		entity_type VARCHAR(50) NOT NULL,
		entity_id BIGINT,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_activity_created ON activity_log(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_activity_entity ON activity_log(entity_type, entity_id);
	`)
	return err
}

func downCreateActivityLog(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS activity_log;`)
	return err
}
