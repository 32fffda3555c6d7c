package workers

import (
	"context"

	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds every background worker of the client.
func NewWorkers(services *service.Services, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewRefreshJob(services.Records, cfg.RefreshInterval, logger),
	}}
}

// Start starts the workers in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse order and waits for each one.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
