package service

import (
	"testing"

	"github.com/MKhiriev/go-loyalty-keeper/internal/adapter"
	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/internal/mock"
	"github.com/MKhiriev/go-loyalty-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAdapters(ctrl *gomock.Controller) *adapter.Adapters {
	return &adapter.Adapters{
		Ledger:     mock.NewMockLedgerClient(ctrl),
		Encryption: mock.NewMockEncryptionService(ctrl),
		Oracle:     mock.NewMockDecryptionOracle(ctrl),
	}
}

func TestNewServices_BuildsEveryService(t *testing.T) {
	cfg := &config.ClientConfig{App: config.ClientApp{Version: "1.0.0"}}

	services, err := NewServices(newTestAdapters(gomock.NewController(t)), cfg, models.AppBuildInfo{}, nil, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(services.Status.Close)

	assert.NotNil(t, services.Records)
	assert.NotNil(t, services.Status)
	assert.NotNil(t, services.AppInfo)
	assert.IsType(t, &observedLifecycleController{}, services.Lifecycle)
}

func TestNewServices_MissingVersion(t *testing.T) {
	services, err := NewServices(newTestAdapters(gomock.NewController(t)), &config.ClientConfig{}, models.AppBuildInfo{}, nil, logger.Nop())

	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
	assert.Nil(t, services)
}
