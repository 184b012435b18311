package service

import (
	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
)

type Services struct {
	PullService    PullService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the server services. AuthService is nil when no token
// sign key is configured.
func NewServices(storages *store.Storages, cache CVRCache, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	pullService, err := NewPullService(storages, cache, logger,
		NewListCollection(storages.ListRepository),
		NewTodoCollection(storages.TodoRepository),
	)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		PullService:    NewPullValidationService(logger).Wrap(pullService),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
