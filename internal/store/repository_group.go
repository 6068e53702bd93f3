package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// groupRepository is the SQLite-backed implementation of [GroupRepository].
type groupRepository struct {
	*DB
	logger *logger.Logger
}

// NewGroupRepository constructs a [GroupRepository] backed by the provided
// database connection and logger.
func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	return &groupRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *groupRepository) ListGroups(ctx context.Context) ([]models.Group, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectGroups)
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.ListGroups").
			Msg("failed to query groups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	groups := make([]models.Group, 0, 10)
	for rows.Next() {
		var (
			id    int64
			title string
		)
		if scanErr := rows.Scan(&id, &title); scanErr != nil {
			log.Err(scanErr).
				Str("func", "groupRepository.ListGroups").
				Msg("failed to scan group row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		groups = append(groups, models.Group{
			ID:   strconv.FormatInt(id, 10),
			Name: title,
		})
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "groupRepository.ListGroups").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return groups, nil
}

func (r *groupRepository) GetGroupByID(ctx context.Context, groupID string) (models.Group, error) {
	log := logger.FromContext(ctx)

	id, err := parseID(groupID)
	if err != nil {
		return models.Group{}, ErrGroupNotFound
	}

	var title string
	err = r.DB.QueryRowContext(ctx, selectGroupByID, id).Scan(&title)
	if err != nil {
		if isNoRows(err) {
			return models.Group{}, ErrGroupNotFound
		}
		log.Err(err).
			Str("func", "groupRepository.GetGroupByID").
			Str("group_id", groupID).
			Msg("failed to query group")
		return models.Group{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.Group{ID: groupID, Name: title}, nil
}

// CreateGroup inserts through the batch machinery so that group creation
// carries the same atomicity contract as contact mutations.
func (r *groupRepository) CreateGroup(ctx context.Context, data models.GroupData) (string, error) {
	log := logger.FromContext(ctx)

	ops := []BatchOp{
		NewInsert(tableGroups, map[string]any{"title": data.Name}),
	}

	results, err := r.DB.ApplyBatch(ctx, ops)
	if err != nil {
		return "", err
	}

	if len(results) == 0 || results[0].InsertedID == 0 {
		log.Error().
			Str("func", "groupRepository.CreateGroup").
			Msg("insert batch yielded no group reference")
		return "", ErrEmptyBatchResult
	}

	groupID := strconv.FormatInt(results[0].InsertedID, 10)

	log.Info().
		Str("func", "groupRepository.CreateGroup").
		Str("group_id", groupID).
		Msg("created group")

	return groupID, nil
}

func (r *groupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	log := logger.FromContext(ctx)

	id, err := parseID(groupID)
	if err != nil {
		return ErrGroupNotFound
	}

	res, err := r.DB.ExecContext(ctx, deleteGroupByID, id)
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.DeleteGroup").
			Str("group_id", groupID).
			Msg("failed to delete group")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.DeleteGroup").
			Str("group_id", groupID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "groupRepository.DeleteGroup").
			Str("group_id", groupID).
			Msg("group not found")
		return ErrGroupNotFound
	}

	log.Info().
		Str("func", "groupRepository.DeleteGroup").
		Str("group_id", groupID).
		Msg("deleted group")

	return nil
}

// ListAccounts reports every distinct account pair present across raw
// records. Deduplication keys on the name|type pair, first occurrence wins,
// so the ordering of the underlying query is stable in the result.
func (r *groupRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectAccounts)
	if err != nil {
		log.Err(err).
			Str("func", "groupRepository.ListAccounts").
			Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	accounts := make([]models.Account, 0, 5)

	for rows.Next() {
		var name, accountType *string
		if scanErr := rows.Scan(&name, &accountType); scanErr != nil {
			log.Err(scanErr).
				Str("func", "groupRepository.ListAccounts").
				Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if name == nil && accountType == nil {
			continue
		}

		key := orEmpty(name) + "|" + orEmpty(accountType)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		accounts = append(accounts, models.Account{Name: name, Type: accountType})
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "groupRepository.ListAccounts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}
