package store

// Tables of the row store. The contact provider's shape: one aggregate row
// per contact, one account-scoped raw record anchoring the contact's data
// rows, one generic kind-tagged data table, and free-standing groups.
const (
	tableContacts    = "contacts"
	tableRawContacts = "raw_contacts"
	tableData        = "data"
	tableGroups      = "groups"
)

const (
	countContacts = `SELECT COUNT(*) FROM contacts;`

	contactExists = `SELECT contact_id FROM contacts WHERE contact_id = $1;`

	selectDisplayNameByContact = `SELECT display_name FROM contacts WHERE contact_id = $1;`

	selectDataRowsByContact = `
		SELECT kind, data1, data2, data3, data4, data5, data6, data7, data8, data9, is_primary, blob_data
		FROM data
		WHERE contact_id = $1
		ORDER BY data_id;`

	selectAccountByContact = `
		SELECT account_name, account_type
		FROM raw_contacts
		WHERE contact_id = $1
		ORDER BY raw_contact_id
		LIMIT 1;`

	selectRawRecordByContact = `
		SELECT raw_contact_id
		FROM raw_contacts
		WHERE contact_id = $1
		ORDER BY raw_contact_id
		LIMIT 1;`

	selectContactIDOfRawRecord = `SELECT contact_id FROM raw_contacts WHERE raw_contact_id = $1;`

	deleteContactByID = `DELETE FROM contacts WHERE contact_id = $1;`

	selectGroups = `SELECT group_id, title FROM groups ORDER BY title ASC;`

	selectGroupByID = `SELECT title FROM groups WHERE group_id = $1;`

	deleteGroupByID = `DELETE FROM groups WHERE group_id = $1;`

	selectAccounts = `SELECT account_name, account_type FROM raw_contacts;`

	selectContactsMissingDisplayName = `SELECT contact_id FROM contacts WHERE display_name IS NULL;`
)

// Queries used by the batch-apply provider obligations.
const (
	insertContact = `INSERT INTO contacts (display_name) VALUES (NULL);`

	updateDisplayName = `UPDATE contacts SET display_name = $1 WHERE contact_id = $2;`

	selectNameRowForDisplay = `
		SELECT data1, data2, data3, data4, data5
		FROM data
		WHERE contact_id = $1 AND kind = 'name'
		ORDER BY data_id DESC
		LIMIT 1;`

	selectDisplayNameFallback = `
		SELECT COALESCE(
			(SELECT data1 FROM data WHERE contact_id = $1 AND kind = 'org' AND data1 IS NOT NULL ORDER BY data_id LIMIT 1),
			(SELECT data1 FROM data WHERE contact_id = $2 AND kind = 'email' AND data1 IS NOT NULL ORDER BY data_id LIMIT 1),
			(SELECT data1 FROM data WHERE contact_id = $3 AND kind = 'phone' AND data1 IS NOT NULL ORDER BY data_id LIMIT 1)
		);`
)
