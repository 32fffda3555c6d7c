package http

import (
	"net/http"

	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/internal/service"
)

// Observability instruments the router. *metrics.Recorder satisfies it.
type Observability interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

type Handler struct {
	services      *service.Services
	observability Observability

	logger *logger.Logger
}

// NewHandler returns the HTTP handler. observability may be nil, in which
// case /metrics is not served.
func NewHandler(services *service.Services, observability Observability, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		observability: observability,
		logger:        logger,
	}
}
