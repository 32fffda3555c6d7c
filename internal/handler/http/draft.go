package http

import (
	"net/http"

	"github.com/MKhiriev/go-loyalty-keeper/internal/utils"
)

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.Lifecycle.Draft(), http.StatusOK)
}

func (h *Handler) setDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := decodeDraft(r.Body)
	if err != nil {
		h.writeError(w, r, err, "*Handler.setDraft")
		return
	}

	h.services.Lifecycle.SetDraft(draft)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) cancelDraft(w http.ResponseWriter, r *http.Request) {
	h.services.Lifecycle.CancelDraft()
	w.WriteHeader(http.StatusNoContent)
}
