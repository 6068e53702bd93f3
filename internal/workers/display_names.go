package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

// DisplayNameWorker periodically refreshes contacts whose store-computed
// display name is NULL. Batches recompute names for the contacts they touch,
// so under normal operation the worker finds nothing to do; it exists to
// repair contacts left nameless by interrupted runs or external edits of the
// database file.
type DisplayNameWorker struct {
	contacts store.ContactRepository
	interval time.Duration

	logger *logger.Logger
}

func NewDisplayNameWorker(contacts store.ContactRepository, interval time.Duration, logger *logger.Logger) *DisplayNameWorker {
	return &DisplayNameWorker{
		contacts: contacts,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks, recomputing on every tick.
func (w *DisplayNameWorker) Run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for range ticker.C {
		w.recompute()
	}
}

func (w *DisplayNameWorker) recompute() {
	ctx := w.logger.GetChildLogger().WithContext(context.Background())

	visited, err := w.contacts.RecomputeMissingDisplayNames(ctx)
	if err != nil {
		w.logger.Err(err).
			Str("func", "DisplayNameWorker.recompute").
			Msg("display name recompute failed")
		return
	}

	if visited > 0 {
		w.logger.Info().
			Str("func", "DisplayNameWorker.recompute").
			Int("contacts", visited).
			Msg("recomputed missing display names")
	}
}
