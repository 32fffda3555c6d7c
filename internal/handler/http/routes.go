package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.observability != nil {
		router.Use(h.observability.Middleware)
		router.Handle("/metrics", h.observability.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging, h.withWallet)

		r.Get("/version", h.getVersion)
		r.Get("/build", h.getBuildInfo)

		r.Route("/records", func(r chi.Router) {
			r.Get("/", h.listRecords)
			r.Post("/", h.createRecord)
			r.Get("/stats", h.recordStats)
			r.Post("/refresh", h.refreshRecords)
			r.Get("/{id}", h.getRecord)
			r.Post("/{id}/reveal", h.revealRecord)
		})

		r.Route("/draft", func(r chi.Router) {
			r.Get("/", h.getDraft)
			r.Put("/", h.setDraft)
			r.Delete("/", h.cancelDraft)
		})

		r.Get("/status", h.listStatuses)
		r.Get("/status/{class}", h.getStatus)
		r.Post("/availability", h.checkAvailability)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
