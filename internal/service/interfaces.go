package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ContactService is the application-facing surface for contact operations.
// Every method checks the caller's permission grants (carried in ctx) before
// touching the store and validates its inputs before planning any mutation.
type ContactService interface {
	CountContacts(ctx context.Context) (int, error)
	ListContacts(ctx context.Context, limit, offset *int) ([]models.Contact, error)
	GetContact(ctx context.Context, contactID string) (models.Contact, error)

	CreateContact(ctx context.Context, data models.ContactData) (string, error)
	UpdateContact(ctx context.Context, contactID string, data models.ContactData) error
	DeleteContact(ctx context.Context, contactID string) error
}

// GroupService covers group management and account discovery.
type GroupService interface {
	ListGroups(ctx context.Context) ([]models.Group, error)
	GetGroup(ctx context.Context, groupID string) (models.Group, error)
	CreateGroup(ctx context.Context, data models.GroupData) (string, error)
	DeleteGroup(ctx context.Context, groupID string) error

	ListAccounts(ctx context.Context) ([]models.Account, error)
}

// AppInfoService exposes static application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
