package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type groupService struct {
	groupRepository store.GroupRepository

	logger *logger.Logger
}

func NewGroupService(groupRepository store.GroupRepository, logger *logger.Logger) GroupService {
	return &groupService{
		groupRepository: groupRepository,
		logger:          logger,
	}
}

func (s *groupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	if err := requireReadGrant(ctx); err != nil {
		return nil, err
	}

	return s.groupRepository.ListGroups(ctx)
}

func (s *groupService) GetGroup(ctx context.Context, groupID string) (models.Group, error) {
	if err := requireReadGrant(ctx); err != nil {
		return models.Group{}, err
	}

	if groupID == "" {
		return models.Group{}, ErrValidationNoGroupID
	}

	return s.groupRepository.GetGroupByID(ctx, groupID)
}

func (s *groupService) CreateGroup(ctx context.Context, data models.GroupData) (string, error) {
	if err := requireWriteGrant(ctx); err != nil {
		return "", err
	}

	if data.Name == "" {
		return "", ErrValidationNoGroupName
	}

	return s.groupRepository.CreateGroup(ctx, data)
}

func (s *groupService) DeleteGroup(ctx context.Context, groupID string) error {
	if err := requireWriteGrant(ctx); err != nil {
		return err
	}

	if groupID == "" {
		return ErrValidationNoGroupID
	}

	return s.groupRepository.DeleteGroup(ctx, groupID)
}

// ListAccounts is gated on the read grant: account pairs are contact
// metadata and leak contact provenance if exposed ungated.
func (s *groupService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	if err := requireReadGrant(ctx); err != nil {
		return nil, err
	}

	return s.groupRepository.ListAccounts(ctx)
}
