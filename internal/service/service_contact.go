package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type contactService struct {
	contactRepository store.ContactRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validators.NewContactDataValidator(),
		logger:            logger,
	}
}

func (s *contactService) CountContacts(ctx context.Context) (int, error) {
	if err := requireReadGrant(ctx); err != nil {
		return 0, err
	}

	return s.contactRepository.Count(ctx)
}

func (s *contactService) ListContacts(ctx context.Context, limit, offset *int) ([]models.Contact, error) {
	if err := requireReadGrant(ctx); err != nil {
		return nil, err
	}

	if (limit != nil && *limit < 0) || (offset != nil && *offset < 0) {
		return nil, ErrValidationNegativePage
	}

	return s.contactRepository.List(ctx, limit, offset)
}

func (s *contactService) GetContact(ctx context.Context, contactID string) (models.Contact, error) {
	if err := requireReadGrant(ctx); err != nil {
		return models.Contact{}, err
	}

	if contactID == "" {
		return models.Contact{}, ErrValidationNoContactID
	}

	return s.contactRepository.GetByID(ctx, contactID)
}

func (s *contactService) CreateContact(ctx context.Context, data models.ContactData) (string, error) {
	if err := requireWriteGrant(ctx); err != nil {
		return "", err
	}

	if isEmptyContactData(data) {
		return "", ErrValidationNoContactData
	}

	if err := s.validator.Validate(ctx, data); err != nil {
		return "", err
	}

	return s.contactRepository.Create(ctx, data)
}

func (s *contactService) UpdateContact(ctx context.Context, contactID string, data models.ContactData) error {
	if err := requireWriteGrant(ctx); err != nil {
		return err
	}

	if contactID == "" {
		return ErrValidationNoContactID
	}

	if err := s.validator.Validate(ctx, data); err != nil {
		return err
	}

	return s.contactRepository.Update(ctx, contactID, data)
}

func (s *contactService) DeleteContact(ctx context.Context, contactID string) error {
	if err := requireWriteGrant(ctx); err != nil {
		return err
	}

	if contactID == "" {
		return ErrValidationNoContactID
	}

	return s.contactRepository.Delete(ctx, contactID)
}

// requireReadGrant resolves the caller's grants from ctx and demands the
// read permission. Absent grants resolve to the zero value, which denies.
func requireReadGrant(ctx context.Context) error {
	grants, _ := utils.GetGrantsFromContext(ctx)
	if !grants.ReadContacts {
		logger.FromContext(ctx).Warn().
			Str("func", "requireReadGrant").
			Msg("read access denied")
		return ErrPermissionDenied
	}
	return nil
}

func requireWriteGrant(ctx context.Context) error {
	grants, _ := utils.GetGrantsFromContext(ctx)
	if !grants.WriteContacts {
		logger.FromContext(ctx).Warn().
			Str("func", "requireWriteGrant").
			Msg("write access denied")
		return ErrPermissionDenied
	}
	return nil
}

// isEmptyContactData reports whether the payload carries nothing to persist.
// An update may legitimately be empty (it clears every field); a create may
// not.
func isEmptyContactData(data models.ContactData) bool {
	return !data.HasName() && !data.HasOrganization() && data.Note == nil &&
		len(data.EmailAddresses) == 0 && len(data.PhoneNumbers) == 0 &&
		len(data.PostalAddresses) == 0 && len(data.URLAddresses) == 0
}
