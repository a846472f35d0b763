package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS session_credentials (
		profile    TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		user_name  TEXT NOT NULL DEFAULT '',
		user_email TEXT NOT NULL,
		token      TEXT NOT NULL,
		saved_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS report_exports (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL,
		format     TEXT NOT NULL,
		file_name  TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		trigger    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS report_exports_created_at_idx ON report_exports (created_at DESC)`,
}

// EnsureSchema cria as tabelas usadas pela aplicação, se ainda não existirem
func EnsureSchema(ctx context.Context, conn Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return errors.Wrap(err, "postgres: erro ao criar schema")
			}
		}
		return nil
	})
}
