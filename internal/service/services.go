package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

type Services struct {
	ContactService ContactService
	GroupService   GroupService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ContactService: NewContactService(storages.ContactRepository, logger),
		GroupService:   NewGroupService(storages.GroupRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
