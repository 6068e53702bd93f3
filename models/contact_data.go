package models

// ContactData is the caller-supplied aggregate payload for create and update
// operations. Pointer and slice fields distinguish "absent" from "empty":
// the mutation planner only emits a row for a field that is present, and the
// replace-all update drops whatever the payload omits.
//
// FullName, Photo, Birthday and GroupIDs are intentionally not part of the
// write payload: the display name is store-computed, and the remaining kinds
// are read-only in this engine's scope.
type ContactData struct {
	GivenName        *string         `json:"givenName"`
	FamilyName       *string         `json:"familyName"`
	MiddleName       *string         `json:"middleName"`
	NamePrefix       *string         `json:"namePrefix"`
	NameSuffix       *string         `json:"nameSuffix"`
	OrganizationName *string         `json:"organizationName"`
	JobTitle         *string         `json:"jobTitle"`
	Note             *string         `json:"note"`
	EmailAddresses   []EmailAddress  `json:"emailAddresses"`
	PhoneNumbers     []PhoneNumber   `json:"phoneNumbers"`
	PostalAddresses  []PostalAddress `json:"postalAddresses"`
	URLAddresses     []URLAddress    `json:"urlAddresses"`

	// Account optionally targets an account for the new raw record.
	// When nil the contact is created account-less (local-only).
	// Ignored on update: a raw record never changes its account.
	Account *Account `json:"account,omitempty"`
}

// HasName reports whether any structured-name component is present, i.e.
// whether the mutation planner should emit a structured-name row.
func (c *ContactData) HasName() bool {
	return c.GivenName != nil || c.FamilyName != nil || c.MiddleName != nil ||
		c.NamePrefix != nil || c.NameSuffix != nil
}

// HasOrganization reports whether an organization row should be emitted.
func (c *ContactData) HasOrganization() bool {
	return c.OrganizationName != nil || c.JobTitle != nil
}
