package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	ContactRepository ContactRepository
	GroupRepository   GroupRepository
}

// NewStorages opens the SQLite store, applies pending migrations and wires
// the repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return Storages{}, err
	}

	if err = db.Migrate(); err != nil {
		return Storages{}, err
	}

	return Storages{
		ContactRepository: NewContactRepository(db, logger),
		GroupRepository:   NewGroupRepository(db, logger),
	}, nil
}
