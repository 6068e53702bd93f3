package models

import "strings"

// Contact is the aggregate view of a single logical contact, assembled from
// the kind-tagged rows owned by its raw record.
//
// ID is the aggregate contact identifier assigned by the store. It is stable
// across reads but lives in a different identifier space than the raw-record
// id that anchors the contact's data rows; the two are translated explicitly
// by the repository layer.
//
// FullName is the store-computed display name and is read-only from the
// engine's point of view: writes never carry it, and the listing query's
// value overrides whatever the assembler derived.
type Contact struct {
	ID               string          `json:"id"`
	GivenName        *string         `json:"givenName"`
	FamilyName       *string         `json:"familyName"`
	MiddleName       *string         `json:"middleName"`
	NamePrefix       *string         `json:"namePrefix"`
	NameSuffix       *string         `json:"nameSuffix"`
	FullName         *string         `json:"fullName"`
	OrganizationName *string         `json:"organizationName"`
	JobTitle         *string         `json:"jobTitle"`
	Note             *string         `json:"note"`
	Birthday         *Birthday       `json:"birthday,omitempty"`
	Photo            *string         `json:"photo"`
	Account          *Account        `json:"account"`
	GroupIDs         []string        `json:"groupIds"`
	EmailAddresses   []EmailAddress  `json:"emailAddresses"`
	PhoneNumbers     []PhoneNumber   `json:"phoneNumbers"`
	PostalAddresses  []PostalAddress `json:"postalAddresses"`
	URLAddresses     []URLAddress    `json:"urlAddresses"`
}

// Birthday holds the components of a contact's birthday event. Each component
// is independently optional: a stored date like "04-12" carries no year, and a
// component that fails to parse is simply absent.
type Birthday struct {
	Day   *int `json:"day,omitempty"`
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

// Account identifies the account a raw record is scoped to, as a name/type
// pair. A nil Account on a Contact means its raw record is local-only.
type Account struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

// EmailAddress is one email row of a contact.
// Label is surfaced only for the CUSTOM type.
type EmailAddress struct {
	Value     string  `json:"value"`
	Type      string  `json:"type"`
	Label     *string `json:"label,omitempty"`
	IsPrimary bool    `json:"isPrimary"`
}

// PhoneNumber is one phone row of a contact.
// Label is surfaced only for the CUSTOM type.
type PhoneNumber struct {
	Value     string  `json:"value"`
	Type      string  `json:"type"`
	Label     *string `json:"label,omitempty"`
	IsPrimary bool    `json:"isPrimary"`
}

// PostalAddress is one structured postal row of a contact. Formatted is
// derived during assembly via [FormatPostalAddress]; it is never stored.
type PostalAddress struct {
	Street       *string `json:"street"`
	City         *string `json:"city"`
	Region       *string `json:"region"`
	PostalCode   *string `json:"postalCode"`
	Country      *string `json:"country"`
	Neighborhood *string `json:"neighborhood"`
	Formatted    string  `json:"formatted"`
	Type         string  `json:"type"`
	Label        *string `json:"label,omitempty"`
	IsPrimary    bool    `json:"isPrimary"`
}

// URLAddress is one website row of a contact.
// Label is surfaced only for the CUSTOM type.
type URLAddress struct {
	Value string  `json:"value"`
	Type  string  `json:"type"`
	Label *string `json:"label,omitempty"`
}

// FormatPostalAddress joins address components into a display string:
// street on its own line, then "city, region postalCode", then country on a
// final line. Empty components are skipped; all-empty input yields "".
func FormatPostalAddress(street, city, region, postalCode, country string) string {
	b := new(strings.Builder)

	if street != "" {
		b.WriteString(street)
		b.WriteByte('\n')
	}
	if city != "" {
		b.WriteString(city)
	}
	if region != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(region)
	}
	if postalCode != "" {
		b.WriteByte(' ')
		b.WriteString(postalCode)
	}
	if country != "" {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(country)
	}

	return b.String()
}
