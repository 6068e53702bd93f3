package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// BatchOp is one tagged operation of an atomic batch: either an insert with
// optional back-references to rows inserted earlier in the same batch, or a
// delete addressed by an equality selector.
//
// Back-references exist because the mutation planner must link data rows to a
// raw record whose id does not exist until the batch commits: the planner
// emits a placeholder index for creation and a literal id for replace-style
// updates.
type BatchOp struct {
	insert   bool
	table    string
	values   map[string]any
	backRefs map[string]int
	where    sq.Eq
}

// NewInsert builds an insert operation for table. A nil map value inserts
// SQL NULL.
func NewInsert(table string, values map[string]any) BatchOp {
	return BatchOp{insert: true, table: table, values: values}
}

// WithBackReference makes column take the row id produced by the batch
// operation at opIndex. The referenced operation must be an insert that
// precedes this one in the same batch.
func (op BatchOp) WithBackReference(column string, opIndex int) BatchOp {
	refs := make(map[string]int, len(op.backRefs)+1)
	for col, idx := range op.backRefs {
		refs[col] = idx
	}
	refs[column] = opIndex
	op.backRefs = refs
	return op
}

// NewDelete builds a delete operation removing every row of table matching
// the equality selector.
func NewDelete(table string, where sq.Eq) BatchOp {
	return BatchOp{table: table, where: where}
}

// BatchOpResult reports the outcome of one batch operation after commit.
type BatchOpResult struct {
	// InsertedID is the row id produced by an insert operation; zero for
	// deletes.
	InsertedID int64

	// RowsAffected is the number of rows removed by a delete operation.
	RowsAffected int64
}

// ApplyBatch runs every operation inside one database transaction: either
// all of them commit or none do. No partial application is observable.
//
// Beyond the plain SQL, ApplyBatch implements the contact provider's own
// obligations that the repositories rely on as store-level guarantees:
//
//   - inserting a raw record without an explicit contact_id allocates a new
//     aggregate contact row and scopes the raw record to it (aggregation);
//   - data-row inserts inherit the contact_id of their raw record;
//   - the display name of every touched aggregate contact is recomputed
//     after the operations run, before commit.
func (db *DB) ApplyBatch(ctx context.Context, ops []BatchOp) ([]BatchOpResult, error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "DB.ApplyBatch").
			Int("ops_count", len(ops)).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	results := make([]BatchOpResult, len(ops))
	touched := make(map[int64]struct{})

	for idx, op := range ops {
		if op.insert {
			if err = db.applyInsert(ctx, tx, ops, results, idx, touched); err != nil {
				log.Err(err).
					Str("func", "DB.ApplyBatch").
					Int("op_index", idx).
					Str("table", op.table).
					Msg("batch insert failed, rolling back")
				return nil, err
			}
			continue
		}

		if err = db.applyDelete(ctx, tx, results, idx, op, touched); err != nil {
			log.Err(err).
				Str("func", "DB.ApplyBatch").
				Int("op_index", idx).
				Str("table", op.table).
				Msg("batch delete failed, rolling back")
			return nil, err
		}
	}

	for contactID := range touched {
		if err = recomputeDisplayName(ctx, tx, contactID); err != nil {
			log.Err(err).
				Str("func", "DB.ApplyBatch").
				Int64("contact_id", contactID).
				Msg("failed to recompute display name, rolling back")
			return nil, err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "DB.ApplyBatch").
			Int("ops_count", len(ops)).
			Msg("failed to commit batch")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return results, nil
}

func (db *DB) applyInsert(ctx context.Context, tx sqlTx, ops []BatchOp, results []BatchOpResult, idx int, touched map[int64]struct{}) error {
	op := ops[idx]

	values := make(map[string]any, len(op.values)+len(op.backRefs))
	for col, val := range op.values {
		values[col] = val
	}

	for col, refIdx := range op.backRefs {
		if refIdx < 0 || refIdx >= idx || !ops[refIdx].insert {
			return fmt.Errorf("%w: op %d references op %d", ErrBackReferenceOutOfRange, idx, refIdx)
		}
		values[col] = results[refIdx].InsertedID
	}

	switch op.table {
	case tableRawContacts:
		if _, ok := values["contact_id"]; !ok {
			contactID, err := allocateContact(ctx, tx)
			if err != nil {
				return err
			}
			values["contact_id"] = contactID
			touched[contactID] = struct{}{}
		}
	case tableData:
		if _, ok := values["contact_id"]; !ok {
			contactID, err := contactIDOfRawRecord(ctx, tx, values["raw_contact_id"])
			if err != nil {
				return err
			}
			values["contact_id"] = contactID
			touched[contactID] = struct{}{}
		}
	}

	query, args, err := sq.Insert(op.table).SetMap(values).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	results[idx] = BatchOpResult{InsertedID: insertedID}
	return nil
}

func (db *DB) applyDelete(ctx context.Context, tx sqlTx, results []BatchOpResult, idx int, op BatchOp, touched map[int64]struct{}) error {
	if op.table == tableData {
		// remember which aggregates lose rows: their display names must be
		// recomputed before commit
		query, args, err := sq.Select("DISTINCT contact_id").From(tableData).Where(op.where).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		for rows.Next() {
			var contactID int64
			if scanErr := rows.Scan(&contactID); scanErr != nil {
				rows.Close()
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			touched[contactID] = struct{}{}
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			rows.Close()
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		rows.Close()
	}

	query, args, err := sq.Delete(op.table).Where(op.where).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	results[idx] = BatchOpResult{RowsAffected: affected}
	return nil
}

// allocateContact creates a fresh aggregate contact row and returns its id.
func allocateContact(ctx context.Context, tx sqlTx) (int64, error) {
	res, err := tx.ExecContext(ctx, insertContact)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	contactID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contactID, nil
}

// contactIDOfRawRecord translates a raw-record id to its aggregate contact id
// inside the running transaction.
func contactIDOfRawRecord(ctx context.Context, tx sqlTx, rawContactID any) (int64, error) {
	var contactID int64
	if err := tx.QueryRowContext(ctx, selectContactIDOfRawRecord, rawContactID).Scan(&contactID); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return contactID, nil
}

// recomputeDisplayName refreshes the store-computed display name of one
// aggregate contact: structured name first, then organization, then the
// first email or phone value, otherwise NULL.
func recomputeDisplayName(ctx context.Context, tx sqlTx, contactID int64) error {
	var given, family, middle, prefix, suffix *string
	err := tx.QueryRowContext(ctx, selectNameRowForDisplay, contactID).
		Scan(&given, &family, &middle, &prefix, &suffix)
	if err == nil {
		if name := joinNameParts(prefix, given, middle, family, suffix); name != "" {
			_, execErr := tx.ExecContext(ctx, updateDisplayName, name, contactID)
			return wrapExecErr(execErr)
		}
	} else if !isNoRows(err) {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var fallback *string
	err = tx.QueryRowContext(ctx, selectDisplayNameFallback, contactID, contactID, contactID).Scan(&fallback)
	if err != nil && !isNoRows(err) {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	_, execErr := tx.ExecContext(ctx, updateDisplayName, fallback, contactID)
	return wrapExecErr(execErr)
}

func joinNameParts(parts ...*string) string {
	joined := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != nil && *part != "" {
			joined = append(joined, *part)
		}
	}
	return strings.Join(joined, " ")
}

func wrapExecErr(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
