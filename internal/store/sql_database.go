package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/migrations"
)

// DB wraps the raw database connection shared by all repositories of the
// contact store.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// sqlTx is the slice of [*sql.Tx] the batch-apply helpers need.
type sqlTx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
