package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactNotFound is returned when an aggregate contact id does not
	// resolve: the listing/data query yields no contact row, or the
	// aggregate-to-raw-record translation finds nothing.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrGroupNotFound is returned when a group id does not resolve.
	ErrGroupNotFound = errors.New("group was not found")

	// ErrEmptyBatchResult is returned when a committed batch unexpectedly
	// yields no row reference for the anchoring insert, so the new record's
	// identifier cannot be resolved.
	ErrEmptyBatchResult = errors.New("batch yielded no row reference")

	// ErrBackReferenceOutOfRange is returned when a batch operation refers to
	// an operation index that does not precede it in the same batch.
	ErrBackReferenceOutOfRange = errors.New("batch back-reference out of range")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
