package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &contactRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func dataRowColumns() []string {
	return []string{"kind", "data1", "data2", "data3", "data4", "data5", "data6", "data7", "data8", "data9", "is_primary", "blob_data"}
}

func TestCountContacts(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count=3, got %d", count)
	}
}

func TestGetContactByID_AssemblesRows(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(dataRowColumns()).
		AddRow("name", "John", "Doe", nil, nil, nil, nil, nil, nil, nil, false, nil).
		AddRow("email", "john@example.com", "1", nil, nil, nil, nil, nil, nil, nil, true, nil).
		AddRow("phone", "+123", "0", "carrier pigeon", nil, nil, nil, nil, nil, nil, false, nil).
		AddRow("note", "likes go", nil, nil, nil, nil, nil, nil, nil, nil, false, nil)

	mock.ExpectQuery("SELECT kind, data1").WithArgs(int64(5)).WillReturnRows(rows)
	mock.ExpectQuery("SELECT account_name, account_type").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"account_name", "account_type"}).AddRow("me@gmail.com", "com.google"))
	mock.ExpectQuery("SELECT display_name FROM contacts").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"display_name"}).AddRow("John Doe"))

	contact, err := repo.GetByID(context.Background(), "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contact.ID != "5" {
		t.Errorf("expected ID=5, got %s", contact.ID)
	}
	if contact.GivenName == nil || *contact.GivenName != "John" {
		t.Errorf("expected given name John, got %v", contact.GivenName)
	}
	if contact.FullName == nil || *contact.FullName != "John Doe" {
		t.Errorf("expected full name John Doe, got %v", contact.FullName)
	}
	if len(contact.EmailAddresses) != 1 {
		t.Fatalf("expected 1 email, got %d", len(contact.EmailAddresses))
	}
	email := contact.EmailAddresses[0]
	if email.Value != "john@example.com" || email.Type != "HOME" || !email.IsPrimary {
		t.Errorf("unexpected email: %+v", email)
	}
	if email.Label != nil {
		t.Errorf("non-custom email must not surface a label, got %v", *email.Label)
	}
	if len(contact.PhoneNumbers) != 1 {
		t.Fatalf("expected 1 phone, got %d", len(contact.PhoneNumbers))
	}
	phone := contact.PhoneNumbers[0]
	if phone.Type != "CUSTOM" || phone.Label == nil || *phone.Label != "carrier pigeon" {
		t.Errorf("expected custom phone with label, got %+v", phone)
	}
	if contact.Note == nil || *contact.Note != "likes go" {
		t.Errorf("expected note, got %v", contact.Note)
	}
	if contact.Account == nil || *contact.Account.Name != "me@gmail.com" {
		t.Errorf("expected account pair, got %+v", contact.Account)
	}
}

func TestGetContactByID_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT kind, data1").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(dataRowColumns()))
	mock.ExpectQuery("SELECT contact_id FROM contacts").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}))

	_, err := repo.GetByID(context.Background(), "9")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestGetContactByID_BareContact(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT kind, data1").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(dataRowColumns()))
	mock.ExpectQuery("SELECT contact_id FROM contacts").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(9))
	mock.ExpectQuery("SELECT account_name, account_type").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"account_name", "account_type"}))
	mock.ExpectQuery("SELECT display_name FROM contacts").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"display_name"}).AddRow(nil))

	contact, err := repo.GetByID(context.Background(), "9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.ID != "9" {
		t.Errorf("expected ID=9, got %s", contact.ID)
	}
	if contact.FullName != nil {
		t.Errorf("expected nil full name, got %v", *contact.FullName)
	}
	if contact.EmailAddresses == nil || len(contact.EmailAddresses) != 0 {
		t.Errorf("expected empty non-nil email slice, got %v", contact.EmailAddresses)
	}
}

func TestGetContactByID_InvalidID(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	_, err := repo.GetByID(context.Background(), "not-a-number")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no queries expected for malformed id: %v", err)
	}
}

func TestListContacts_OrderAndOverride(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id, display_name FROM contacts ORDER BY display_name ASC").
		WillReturnRows(sqlmock.NewRows([]string{"contact_id", "display_name"}).
			AddRow("1", "Alice").
			AddRow("2", nil))

	// contact 1 assembles normally
	mock.ExpectQuery("SELECT kind, data1").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(dataRowColumns()).
			AddRow("name", "Alice", nil, nil, nil, nil, nil, nil, nil, nil, false, nil))
	mock.ExpectQuery("SELECT account_name, account_type").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"account_name", "account_type"}))
	mock.ExpectQuery("SELECT display_name FROM contacts").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"display_name"}).AddRow("stale name"))

	// contact 2 is a bare contact without a display name
	mock.ExpectQuery("SELECT kind, data1").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(dataRowColumns()))
	mock.ExpectQuery("SELECT contact_id FROM contacts").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(2))
	mock.ExpectQuery("SELECT account_name, account_type").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"account_name", "account_type"}))
	mock.ExpectQuery("SELECT display_name FROM contacts").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"display_name"}).AddRow(nil))

	contacts, err := repo.List(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	// the listing's display name wins over whatever assembly resolved
	if contacts[0].FullName == nil || *contacts[0].FullName != "Alice" {
		t.Errorf("expected listing name Alice, got %v", contacts[0].FullName)
	}
	if contacts[1].FullName != nil {
		t.Errorf("expected nil listing name, got %v", *contacts[1].FullName)
	}
}

func TestListContacts_PaginationClauses(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id, display_name FROM contacts ORDER BY display_name ASC LIMIT 2 OFFSET 4").
		WillReturnRows(sqlmock.NewRows([]string{"contact_id", "display_name"}))

	limit, offset := 2, 4
	contacts, err := repo.List(context.Background(), &limit, &offset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("expected empty page, got %d contacts", len(contacts))
	}
}

func TestListContacts_OffsetWithoutLimitIgnored(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id, display_name FROM contacts ORDER BY display_name ASC$").
		WillReturnRows(sqlmock.NewRows([]string{"contact_id", "display_name"}))

	offset := 4
	if _, err := repo.List(context.Background(), nil, &offset); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListContacts_DropsVanishedContact(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id, display_name FROM contacts ORDER BY display_name ASC").
		WillReturnRows(sqlmock.NewRows([]string{"contact_id", "display_name"}).
			AddRow("1", "Alice").
			AddRow("2", "Bob"))

	mock.ExpectQuery("SELECT kind, data1").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(dataRowColumns()).
			AddRow("name", "Alice", nil, nil, nil, nil, nil, nil, nil, nil, false, nil))
	mock.ExpectQuery("SELECT account_name, account_type").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"account_name", "account_type"}))
	mock.ExpectQuery("SELECT display_name FROM contacts").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"display_name"}).AddRow("Alice"))

	// contact 2 was deleted between the listing and the assembly
	mock.ExpectQuery("SELECT kind, data1").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(dataRowColumns()))
	mock.ExpectQuery("SELECT contact_id FROM contacts").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}))

	contacts, err := repo.List(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected vanished contact to be dropped, got %d contacts", len(contacts))
	}
	if contacts[0].ID != "1" {
		t.Errorf("expected surviving contact 1, got %s", contacts[0].ID)
	}
}

func TestCreateContact_BatchWithBackReference(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	// raw record insert allocates a fresh aggregate contact first
	mock.ExpectExec("INSERT INTO contacts").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO raw_contacts").
		WithArgs(nil, nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(42, 1))
	// the data row inherits the contact of its back-referenced raw record
	mock.ExpectQuery("SELECT contact_id FROM raw_contacts").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO data").
		WillReturnResult(sqlmock.NewResult(101, 1))
	// display-name recompute: no structured name, email value wins
	mock.ExpectQuery("SELECT data1, data2, data3, data4, data5").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"data1", "data2", "data3", "data4", "data5"}))
	mock.ExpectQuery("SELECT COALESCE").WithArgs(int64(7), int64(7), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"display_name"}).AddRow("john@example.com"))
	mock.ExpectExec("UPDATE contacts SET display_name").
		WithArgs("john@example.com", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT contact_id FROM raw_contacts").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(7))

	data := models.ContactData{
		EmailAddresses: []models.EmailAddress{{Value: "john@example.com", Type: "HOME"}},
	}

	id, err := repo.Create(context.Background(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "7" {
		t.Errorf("expected contact id 7, got %s", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateContact_RollbackOnFailure(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contacts").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO raw_contacts").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	data := models.ContactData{
		EmailAddresses: []models.EmailAddress{{Value: "john@example.com", Type: "HOME"}},
	}

	_, err := repo.Create(context.Background(), data)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateContact_ReplaceAll(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT raw_contact_id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"raw_contact_id"}).AddRow(42))

	mock.ExpectBegin()
	// delete tracks which aggregates lose rows
	mock.ExpectQuery("SELECT DISTINCT contact_id FROM data").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(7))
	mock.ExpectExec("DELETE FROM data").WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	// re-inserted rows inherit the contact of their raw record
	mock.ExpectQuery("SELECT contact_id FROM raw_contacts").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO data").
		WillReturnResult(sqlmock.NewResult(102, 1))
	mock.ExpectQuery("SELECT data1, data2, data3, data4, data5").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"data1", "data2", "data3", "data4", "data5"}).
			AddRow("Johnny", "Doe", nil, nil, nil))
	mock.ExpectExec("UPDATE contacts SET display_name").
		WithArgs("Johnny Doe", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	given, family := "Johnny", "Doe"
	data := models.ContactData{GivenName: &given, FamilyName: &family}

	if err := repo.Update(context.Background(), "7", data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateContact_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT raw_contact_id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"raw_contact_id"}))

	err := repo.Update(context.Background(), "7", models.ContactData{})
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestDeleteContact_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM contacts").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteContact_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM contacts").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "7")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestRecomputeMissingDisplayNames(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id FROM contacts WHERE display_name IS NULL").
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(7).AddRow(8))

	mock.ExpectBegin()

	// contact 7 has a structured name row
	mock.ExpectQuery("SELECT data1, data2, data3, data4, data5").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"data1", "data2", "data3", "data4", "data5"}).
			AddRow("John", "Doe", nil, nil, nil))
	mock.ExpectExec("UPDATE contacts SET display_name").
		WithArgs("John Doe", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// contact 8 falls back to its email value
	mock.ExpectQuery("SELECT data1, data2, data3, data4, data5").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"data1", "data2", "data3", "data4", "data5"}))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(8), int64(8), int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("mara@example.com"))
	mock.ExpectExec("UPDATE contacts SET display_name").
		WithArgs("mara@example.com", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	visited, err := repo.RecomputeMissingDisplayNames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if visited != 2 {
		t.Fatalf("expected 2 visited contacts, got %d", visited)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecomputeMissingDisplayNames_NothingToDo(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id FROM contacts WHERE display_name IS NULL").
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}))

	visited, err := repo.RecomputeMissingDisplayNames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if visited != 0 {
		t.Fatalf("expected 0 visited contacts, got %d", visited)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
