package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-loyalty-keeper/internal/adapter"
	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/handler"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/internal/metrics"
	"github.com/MKhiriev/go-loyalty-keeper/internal/server"
	"github.com/MKhiriev/go-loyalty-keeper/internal/service"
	"github.com/MKhiriev/go-loyalty-keeper/internal/workers"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

type App struct {
	adapters *adapter.Adapters
	services *service.Services
	workers  *workers.Workers
	server   server.Server

	logger *logger.Logger
}

// NewApp dials the external services and builds the whole runtime.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	adapters, err := adapter.NewAdapters(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating adapters: %w", err)
	}

	app, err := newApp(adapters, cfg, buildInfo, logger)
	if err != nil {
		adapters.Close()
		return nil, err
	}
	return app, nil
}

func newApp(adapters *adapter.Adapters, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	recorder := metrics.NewRecorder()

	services, err := service.NewServices(adapters, cfg, buildInfo, recorder, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, recorder, cfg.Server, logger)
	if err != nil {
		services.Status.Close()
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, logger)
	if err != nil {
		services.Status.Close()
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		adapters: adapters,
		services: services,
		workers:  workers.NewWorkers(services, cfg.Workers, logger),
		server:   srv,
		logger:   logger,
	}, nil
}

// Run serves until SIGTERM, SIGINT or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.server.RunServer(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("loyalty keeper stopped")
	return nil
}

// Close stops pending status timers and releases the ledger connection.
func (a *App) Close() {
	a.services.Status.Close()
	a.adapters.Close()
}
