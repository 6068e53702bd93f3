package store

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/typemap"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// contactBuilder is the mutable accumulator of the read-side fold: rows are
// applied one by one and the finished aggregate is taken with build. The
// builder is owned exclusively by the assembling call; nothing is shared.
//
// Single-valued kinds (name, organization, note) overwrite on repeat rows,
// last write wins. List kinds append in row order. Entries whose primary
// value is NULL are dropped silently; malformed optional sub-fields (event
// dates, type codes) degrade to absent values instead of failing the fold.
type contactBuilder struct {
	contact models.Contact
}

func newContactBuilder(contactID string) *contactBuilder {
	return &contactBuilder{
		contact: models.Contact{
			ID:              contactID,
			GroupIDs:        []string{},
			EmailAddresses:  []models.EmailAddress{},
			PhoneNumbers:    []models.PhoneNumber{},
			PostalAddresses: []models.PostalAddress{},
			URLAddresses:    []models.URLAddress{},
		},
	}
}

func (b *contactBuilder) applyRow(row dataRow) {
	switch row.Kind {
	case KindName:
		b.contact.GivenName = row.str(1)
		b.contact.FamilyName = row.str(2)
		b.contact.MiddleName = row.str(3)
		b.contact.NamePrefix = row.str(4)
		b.contact.NameSuffix = row.str(5)
	case KindEmail:
		b.addEmail(row)
	case KindPhone:
		b.addPhone(row)
	case KindPostal:
		b.addPostalAddress(row)
	case KindURL:
		b.addURLAddress(row)
	case KindOrganization:
		b.contact.OrganizationName = row.str(1)
		b.contact.JobTitle = row.str(4)
	case KindNote:
		b.contact.Note = row.str(1)
	case KindEvent:
		if row.typeCode(2, -1) == eventSubtypeBirthday {
			b.setBirthday(row.str(1))
		}
	case KindGroupMembership:
		if groupID := row.str(1); groupID != nil {
			b.contact.GroupIDs = append(b.contact.GroupIDs, *groupID)
		}
	case KindPhoto:
		if len(row.Blob) > 0 {
			encoded := base64.StdEncoding.EncodeToString(row.Blob)
			b.contact.Photo = &encoded
		}
	}
}

func (b *contactBuilder) addEmail(row dataRow) {
	value := row.str(1)
	if value == nil {
		return
	}

	code := row.typeCode(2, typemap.Email.OtherCode())
	email := models.EmailAddress{
		Value:     *value,
		Type:      typemap.Email.Label(code),
		IsPrimary: row.IsPrimary,
	}
	if typemap.Email.IsCustom(code) {
		email.Label = row.str(3)
	}

	b.contact.EmailAddresses = append(b.contact.EmailAddresses, email)
}

func (b *contactBuilder) addPhone(row dataRow) {
	value := row.str(1)
	if value == nil {
		return
	}

	code := row.typeCode(2, typemap.Phone.OtherCode())
	phone := models.PhoneNumber{
		Value:     *value,
		Type:      typemap.Phone.Label(code),
		IsPrimary: row.IsPrimary,
	}
	if typemap.Phone.IsCustom(code) {
		phone.Label = row.str(3)
	}

	b.contact.PhoneNumbers = append(b.contact.PhoneNumbers, phone)
}

func (b *contactBuilder) addPostalAddress(row dataRow) {
	code := row.typeCode(2, typemap.Postal.OtherCode())
	address := models.PostalAddress{
		Street:       row.str(4),
		City:         row.str(5),
		Region:       row.str(6),
		PostalCode:   row.str(7),
		Country:      row.str(8),
		Neighborhood: row.str(9),
		Type:         typemap.Postal.Label(code),
		IsPrimary:    row.IsPrimary,
	}
	address.Formatted = models.FormatPostalAddress(
		orEmpty(address.Street),
		orEmpty(address.City),
		orEmpty(address.Region),
		orEmpty(address.PostalCode),
		orEmpty(address.Country),
	)
	if typemap.Postal.IsCustom(code) {
		address.Label = row.str(3)
	}

	b.contact.PostalAddresses = append(b.contact.PostalAddresses, address)
}

func (b *contactBuilder) addURLAddress(row dataRow) {
	value := row.str(1)
	if value == nil {
		return
	}

	code := row.typeCode(2, typemap.URL.OtherCode())
	address := models.URLAddress{
		Value: *value,
		Type:  typemap.URL.Label(code),
	}
	if typemap.URL.IsCustom(code) {
		address.Label = row.str(3)
	}

	b.contact.URLAddresses = append(b.contact.URLAddresses, address)
}

// setBirthday parses a "month-day[-year]" event date component-wise.
// A component that fails to parse stays absent; nothing aborts the fold.
func (b *contactBuilder) setBirthday(startDate *string) {
	if startDate == nil || *startDate == "" {
		return
	}

	parts := strings.Split(*startDate, "-")
	birthday := models.Birthday{}
	if len(parts) >= 2 {
		birthday.Month = safeParseInt(parts[0])
		birthday.Day = safeParseInt(parts[1])
	}
	if len(parts) >= 3 {
		birthday.Year = safeParseInt(parts[2])
	}

	if birthday.Month != nil || birthday.Day != nil || birthday.Year != nil {
		b.contact.Birthday = &birthday
	}
}

func (b *contactBuilder) build() models.Contact {
	return b.contact
}

func safeParseInt(value string) *int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
