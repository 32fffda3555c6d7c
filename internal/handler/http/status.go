package http

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-loyalty-keeper/internal/utils"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

type availabilityResponse struct {
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

func (h *Handler) listStatuses(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.Status.All(), http.StatusOK)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	class := models.OperationClass(chi.URLParam(r, "class"))
	if !slices.Contains(models.OperationClasses, class) {
		h.writeError(w, r, fmt.Errorf("%w: %s", ErrUnknownOperationClass, class), "*Handler.getStatus")
		return
	}

	_, _ = utils.WriteJSON(w, h.services.Status.Get(class), http.StatusOK)
}

func (h *Handler) checkAvailability(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Lifecycle.CheckAvailability(r.Context()); err != nil {
		status := statusFromError(err)
		h.logger.Warn().Err(err).Str("func", "*Handler.checkAvailability").Send()
		_, _ = utils.WriteJSON(w, availabilityResponse{Available: false, Error: err.Error()}, status)
		return
	}

	_, _ = utils.WriteJSON(w, availabilityResponse{Available: true}, http.StatusOK)
}
