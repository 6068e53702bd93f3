package store

import (
	"github.com/MKhiriev/go-contact-keeper/internal/typemap"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// planDataRows decomposes an aggregate write payload into the value maps of
// the data rows to insert, in batch order, without the raw-record reference:
// the caller attaches either a back-reference (create) or a literal raw id
// (replace-style update) before applying.
//
// Only fields present in the payload produce a row; this is what makes the
// replace-all update drop omitted fields.
func planDataRows(data models.ContactData) []map[string]any {
	rows := make([]map[string]any, 0, 4+len(data.EmailAddresses)+len(data.PhoneNumbers)+len(data.PostalAddresses)+len(data.URLAddresses))

	if data.HasName() {
		rows = append(rows, map[string]any{
			"kind":   KindName,
			colData1: data.GivenName,
			colData2: data.FamilyName,
			colData3: data.MiddleName,
			colData4: data.NamePrefix,
			colData5: data.NameSuffix,
		})
	}

	if data.HasOrganization() {
		rows = append(rows, map[string]any{
			"kind":   KindOrganization,
			colData1: data.OrganizationName,
			colData4: data.JobTitle,
		})
	}

	if data.Note != nil {
		rows = append(rows, map[string]any{
			"kind":   KindNote,
			colData1: data.Note,
		})
	}

	for _, email := range data.EmailAddresses {
		rows = append(rows, map[string]any{
			"kind":   KindEmail,
			colData1: email.Value,
			colData2: typemap.Email.Code(email.Type),
			colData3: email.Label,
		})
	}

	for _, phone := range data.PhoneNumbers {
		rows = append(rows, map[string]any{
			"kind":   KindPhone,
			colData1: phone.Value,
			colData2: typemap.Phone.Code(phone.Type),
			colData3: phone.Label,
		})
	}

	for _, address := range data.PostalAddresses {
		rows = append(rows, map[string]any{
			"kind":   KindPostal,
			colData2: typemap.Postal.Code(address.Type),
			colData3: address.Label,
			colData4: address.Street,
			colData5: address.City,
			colData6: address.Region,
			colData7: address.PostalCode,
			colData8: address.Country,
			colData9: address.Neighborhood,
		})
	}

	for _, address := range data.URLAddresses {
		rows = append(rows, map[string]any{
			"kind":   KindURL,
			colData1: address.Value,
			colData2: typemap.URL.Code(address.Type),
			colData3: address.Label,
		})
	}

	return rows
}
