package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ContactRepository is the aggregate-contact surface over the row store:
// it assembles scattered kind-tagged rows into [models.Contact] values on
// read and decomposes caller payloads into atomic row batches on write.
type ContactRepository interface {
	// Count returns the number of aggregate contacts in the store.
	Count(ctx context.Context) (int, error)

	// List returns contacts ordered by display name ascending. A non-nil
	// limit caps the result; offset is honoured only together with limit.
	List(ctx context.Context, limit, offset *int) ([]models.Contact, error)

	// GetByID assembles one contact. Returns [ErrContactNotFound] when the
	// id does not resolve to a contact row.
	GetByID(ctx context.Context, contactID string) (models.Contact, error)

	// Create inserts a new contact as one atomic batch and returns the
	// aggregate contact id assigned by the store.
	Create(ctx context.Context, data models.ContactData) (string, error)

	// Update replaces every data row of the contact with rows for the
	// fields present in data. Fields the payload omits are dropped.
	Update(ctx context.Context, contactID string, data models.ContactData) error

	// Delete removes the contact and, via the store's cascade guarantee,
	// every row it owns. Returns [ErrContactNotFound] when nothing was
	// deleted.
	Delete(ctx context.Context, contactID string) error

	// RecomputeMissingDisplayNames refreshes the display name of contacts
	// whose stored value is NULL and returns how many were visited.
	RecomputeMissingDisplayNames(ctx context.Context) (int, error)
}

// GroupRepository resolves groups and account identity pairs.
type GroupRepository interface {
	// ListGroups returns every group ordered by title ascending.
	ListGroups(ctx context.Context) ([]models.Group, error)

	// GetGroupByID returns one group or [ErrGroupNotFound].
	GetGroupByID(ctx context.Context, groupID string) (models.Group, error)

	// CreateGroup inserts a group and returns its id.
	CreateGroup(ctx context.Context, data models.GroupData) (string, error)

	// DeleteGroup removes a group. Returns [ErrGroupNotFound] when nothing
	// was deleted.
	DeleteGroup(ctx context.Context, groupID string) error

	// ListAccounts returns the distinct account name/type pairs found across
	// raw records, first occurrence first.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}
