package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/models"
)

const (
	FieldEmailAddresses  = "email_addresses"
	FieldPhoneNumbers    = "phone_numbers"
	FieldPostalAddresses = "postal_addresses"
	FieldURLAddresses    = "url_addresses"
)

// ContactDataValidator enforces row-level rules on a contact mutation
// payload: value-bearing rows must carry a value, and a postal address must
// carry at least one component. Presence of the payload itself is checked by
// the service layer, not here.
type ContactDataValidator struct {
}

func NewContactDataValidator() Validator {
	return &ContactDataValidator{}
}

func (v *ContactDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactData:
		return v.validateContactData(ctx, value, fields...)
	case *models.ContactData:
		return v.validateContactData(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContactDataValidator) validateContactData(_ context.Context, data models.ContactData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmailAddresses, FieldPhoneNumbers, FieldPostalAddresses, FieldURLAddresses}
	}

	for _, field := range fields {
		switch field {
		case FieldEmailAddresses:
			for idx, email := range data.EmailAddresses {
				if email.Value == "" {
					return fmt.Errorf("%w: row %d", ErrEmptyEmailValue, idx)
				}
			}

		case FieldPhoneNumbers:
			for idx, phone := range data.PhoneNumbers {
				if phone.Value == "" {
					return fmt.Errorf("%w: row %d", ErrEmptyPhoneValue, idx)
				}
			}

		case FieldPostalAddresses:
			for idx, postal := range data.PostalAddresses {
				if isEmptyPostalAddress(postal) {
					return fmt.Errorf("%w: row %d", ErrEmptyPostalAddress, idx)
				}
			}

		case FieldURLAddresses:
			for idx, url := range data.URLAddresses {
				if url.Value == "" {
					return fmt.Errorf("%w: row %d", ErrEmptyURLValue, idx)
				}
			}

		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isEmptyPostalAddress(postal models.PostalAddress) bool {
	return postal.Street == nil && postal.City == nil && postal.Region == nil &&
		postal.PostalCode == nil && postal.Country == nil && postal.Neighborhood == nil
}
