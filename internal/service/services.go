package service

import (
	"fmt"

	"github.com/MKhiriev/go-loyalty-keeper/internal/adapter"
	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/internal/utils"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

// Observer receives refresh and operation measurements.
type Observer interface {
	RefreshObserver
	OperationObserver
}

type Services struct {
	Records   RecordCache
	Status    StatusTracker
	Lifecycle LifecycleController
	AppInfo   AppInfoService
}

func NewServices(
	adapters *adapter.Adapters,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	observer Observer,
	logger *logger.Logger,
) (*Services, error) {
	var refreshObserver RefreshObserver
	var operationObserver OperationObserver
	if observer != nil {
		refreshObserver, operationObserver = observer, observer
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	records := NewRecordCache(adapters.Ledger, cfg.Cache, refreshObserver, logger)
	status := NewStatusTracker(cfg.Status)

	lifecycle := NewLifecycleController(
		adapters.Ledger,
		adapters.Encryption,
		adapters.Oracle,
		records,
		status,
		utils.NewIDGenerator(cfg.App.RecordIDPrefix),
		operationObserver,
		logger,
	)

	return &Services{
		Records:   records,
		Status:    status,
		Lifecycle: NewObservedLifecycleController(operationObserver).Wrap(lifecycle),
		AppInfo:   appInfo,
	}, nil
}
