package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// contactRepository is the SQLite-backed implementation of
// [ContactRepository]. Reads fold kind-tagged data rows into aggregate
// [models.Contact] values; writes go through [DB.ApplyBatch] so that every
// mutation is a single atomic unit.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all store interactions are traced with
// structured fields (contact_id, row counts, batch sizes).
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *contactRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.DB.QueryRowContext(ctx, countContacts).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "contactRepository.Count").
			Msg("failed to count contacts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// List runs the listing query ordered by the store-computed display name and
// assembles every discovered identifier. An id whose assembly comes back
// [ErrContactNotFound] lost a race with a concurrent deletion and is dropped
// from the result instead of failing the whole listing. The listing's
// display name is authoritative and overrides the assembled one.
func (r *contactRepository) List(ctx context.Context, limit, offset *int) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContactsQuery(limit, offset)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.List").
			Msg("failed to build listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.List").
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	type listedContact struct {
		id          string
		displayName *string
	}
	listed := make([]listedContact, 0, 50)

	for rows.Next() {
		var entry listedContact
		if scanErr := rows.Scan(&entry.id, &entry.displayName); scanErr != nil {
			log.Err(scanErr).
				Str("func", "contactRepository.List").
				Msg("failed to scan listing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		listed = append(listed, entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "contactRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	contacts := make([]models.Contact, 0, len(listed))
	for _, entry := range listed {
		contact, assembleErr := r.GetByID(ctx, entry.id)
		if assembleErr != nil {
			if errors.Is(assembleErr, ErrContactNotFound) {
				log.Debug().
					Str("func", "contactRepository.List").
					Str("contact_id", entry.id).
					Msg("contact vanished between listing and assembly, dropping")
				continue
			}
			return nil, assembleErr
		}

		contact.FullName = entry.displayName
		contacts = append(contacts, contact)
	}

	return contacts, nil
}

// GetByID assembles one aggregate contact from its kind-tagged data rows.
//
// A contact with zero data rows is not the same as a missing contact: a bare
// raw contact carrying only a display name legitimately has no rows, so the
// existence check runs against the contacts table before [ErrContactNotFound]
// is reported.
func (r *contactRepository) GetByID(ctx context.Context, contactID string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	id, err := parseID(contactID)
	if err != nil {
		return models.Contact{}, ErrContactNotFound
	}

	rows, err := r.DB.QueryContext(ctx, selectDataRowsByContact, id)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.GetByID").
			Str("contact_id", contactID).
			Msg("failed to query contact data rows")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	builder := newContactBuilder(contactID)
	rowCount := 0

	for rows.Next() {
		var row dataRow
		if scanErr := rows.Scan(row.scanTargets()...); scanErr != nil {
			log.Err(scanErr).
				Str("func", "contactRepository.GetByID").
				Str("contact_id", contactID).
				Msg("failed to scan data row")
			return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		builder.applyRow(row)
		rowCount++
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "contactRepository.GetByID").
			Str("contact_id", contactID).
			Msg("error occurred during rows iteration")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if rowCount == 0 {
		exists, existsErr := r.contactExists(ctx, id)
		if existsErr != nil {
			log.Err(existsErr).
				Str("func", "contactRepository.GetByID").
				Str("contact_id", contactID).
				Msg("failed to check contact existence")
			return models.Contact{}, existsErr
		}
		if !exists {
			return models.Contact{}, ErrContactNotFound
		}
	}

	contact := builder.build()

	account, err := r.resolveAccount(ctx, id)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.GetByID").
			Str("contact_id", contactID).
			Msg("failed to resolve account pair")
		return models.Contact{}, err
	}
	contact.Account = account

	if contact.FullName == nil {
		displayName, nameErr := r.resolveDisplayName(ctx, id)
		if nameErr != nil {
			log.Err(nameErr).
				Str("func", "contactRepository.GetByID").
				Str("contact_id", contactID).
				Msg("failed to resolve display name")
			return models.Contact{}, nameErr
		}
		contact.FullName = displayName
	}

	log.Debug().
		Str("func", "contactRepository.GetByID").
		Str("contact_id", contactID).
		Int("data_rows", rowCount).
		Msg("assembled contact")

	return contact, nil
}

// Create submits the insert batch: the raw record first, then one data row
// per present field, each referencing the raw record by back-reference since
// its id does not exist before the batch commits. On success the new raw
// record id is translated to the aggregate contact id the caller sees.
func (r *contactRepository) Create(ctx context.Context, data models.ContactData) (string, error) {
	log := logger.FromContext(ctx)

	rawValues := map[string]any{
		"account_name": nil,
		"account_type": nil,
	}
	if data.Account != nil {
		rawValues["account_name"] = data.Account.Name
		rawValues["account_type"] = data.Account.Type
	}

	ops := make([]BatchOp, 0, 8)
	ops = append(ops, NewInsert(tableRawContacts, rawValues))

	for _, rowValues := range planDataRows(data) {
		ops = append(ops, NewInsert(tableData, rowValues).WithBackReference("raw_contact_id", 0))
	}

	log.Debug().
		Str("func", "contactRepository.Create").
		Int("ops_count", len(ops)).
		Msg("submitting contact insert batch")

	results, err := r.DB.ApplyBatch(ctx, ops)
	if err != nil {
		return "", err
	}

	if len(results) == 0 || results[0].InsertedID == 0 {
		log.Error().
			Str("func", "contactRepository.Create").
			Msg("insert batch yielded no raw record reference")
		return "", ErrEmptyBatchResult
	}
	rawContactID := results[0].InsertedID

	var contactID int64
	err = r.DB.QueryRowContext(ctx, selectContactIDOfRawRecord, rawContactID).Scan(&contactID)
	if err != nil {
		if isNoRows(err) {
			log.Error().
				Str("func", "contactRepository.Create").
				Int64("raw_contact_id", rawContactID).
				Msg("created raw record resolves to no aggregate contact")
			return "", ErrContactNotFound
		}
		log.Err(err).
			Str("func", "contactRepository.Create").
			Int64("raw_contact_id", rawContactID).
			Msg("failed to translate raw record id")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "contactRepository.Create").
		Int64("contact_id", contactID).
		Int64("raw_contact_id", rawContactID).
		Msg("created contact")

	return strconv.FormatInt(contactID, 10), nil
}

// Update is the destructive replace: one batch deletes every data row scoped
// to the contact's raw record and re-inserts rows for the fields present in
// the payload, using the literal raw record id. A failure mid-way rolls the
// whole batch back, leaving the prior state intact.
func (r *contactRepository) Update(ctx context.Context, contactID string, data models.ContactData) error {
	log := logger.FromContext(ctx)

	id, err := parseID(contactID)
	if err != nil {
		return ErrContactNotFound
	}

	var rawContactID int64
	err = r.DB.QueryRowContext(ctx, selectRawRecordByContact, id).Scan(&rawContactID)
	if err != nil {
		if isNoRows(err) {
			log.Warn().
				Str("func", "contactRepository.Update").
				Str("contact_id", contactID).
				Msg("no raw record scoped to contact")
			return ErrContactNotFound
		}
		log.Err(err).
			Str("func", "contactRepository.Update").
			Str("contact_id", contactID).
			Msg("failed to resolve raw record id")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	ops := make([]BatchOp, 0, 8)
	ops = append(ops, NewDelete(tableData, sq.Eq{"raw_contact_id": rawContactID}))

	for _, rowValues := range planDataRows(data) {
		rowValues["raw_contact_id"] = rawContactID
		ops = append(ops, NewInsert(tableData, rowValues))
	}

	log.Debug().
		Str("func", "contactRepository.Update").
		Str("contact_id", contactID).
		Int64("raw_contact_id", rawContactID).
		Int("ops_count", len(ops)).
		Msg("submitting replace-all batch")

	if _, err = r.DB.ApplyBatch(ctx, ops); err != nil {
		return err
	}

	log.Info().
		Str("func", "contactRepository.Update").
		Str("contact_id", contactID).
		Msg("replaced contact data rows")

	return nil
}

func (r *contactRepository) Delete(ctx context.Context, contactID string) error {
	log := logger.FromContext(ctx)

	id, err := parseID(contactID)
	if err != nil {
		return ErrContactNotFound
	}

	res, err := r.DB.ExecContext(ctx, deleteContactByID, id)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.Delete").
			Str("contact_id", contactID).
			Msg("failed to delete contact")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.Delete").
			Str("contact_id", contactID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "contactRepository.Delete").
			Str("contact_id", contactID).
			Msg("contact not found")
		return ErrContactNotFound
	}

	log.Info().
		Str("func", "contactRepository.Delete").
		Str("contact_id", contactID).
		Msg("deleted contact")

	return nil
}

// RecomputeMissingDisplayNames refreshes the display name of every contact
// whose stored value is NULL, in a single transaction. Contacts whose data
// rows still offer no name source stay NULL and are picked up again on the
// next run. Returns the number of contacts visited.
func (r *contactRepository) RecomputeMissingDisplayNames(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectContactsMissingDisplayName)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.RecomputeMissingDisplayNames").
			Msg("failed to list contacts missing a display name")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		if err = recomputeDisplayName(ctx, tx, id); err != nil {
			log.Err(err).
				Str("func", "contactRepository.RecomputeMissingDisplayNames").
				Int64("contact_id", id).
				Msg("failed to recompute display name")
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "contactRepository.RecomputeMissingDisplayNames").
		Int("contacts", len(ids)).
		Msg("recomputed missing display names")

	return len(ids), nil
}

func (r *contactRepository) contactExists(ctx context.Context, id int64) (bool, error) {
	var existingID int64
	err := r.DB.QueryRowContext(ctx, contactExists, id).Scan(&existingID)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}

// resolveAccount returns the account pair of the first raw record scoped to
// the contact. An aggregate may span raw records from several accounts;
// surfacing only the first found is a documented simplification, not a
// "primary account" semantic.
func (r *contactRepository) resolveAccount(ctx context.Context, id int64) (*models.Account, error) {
	var name, accountType *string
	err := r.DB.QueryRowContext(ctx, selectAccountByContact, id).Scan(&name, &accountType)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if name == nil && accountType == nil {
		return nil, nil
	}
	return &models.Account{Name: name, Type: accountType}, nil
}

func (r *contactRepository) resolveDisplayName(ctx context.Context, id int64) (*string, error) {
	var displayName *string
	err := r.DB.QueryRowContext(ctx, selectDisplayNameByContact, id).Scan(&displayName)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return displayName, nil
}

// buildListContactsQuery attaches limit as a query-level cap and offset as a
// query-level skip; offset without limit is ignored.
func buildListContactsQuery(limit, offset *int) (string, []any, error) {
	builder := sq.Select("contact_id", "display_name").
		From(tableContacts).
		OrderBy("display_name ASC")

	if limit != nil {
		builder = builder.Limit(uint64(*limit))
		if offset != nil {
			builder = builder.Offset(uint64(*offset))
		}
	}

	return builder.ToSql()
}

func parseID(id string) (int64, error) {
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
