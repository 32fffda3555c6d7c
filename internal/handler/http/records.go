package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/internal/utils"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

const defaultPerPage = 5

// recordResponse is the public view of a record. Value is only present once
// the record is verified on-chain.
type recordResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
	CreatedAt   int64  `json:"created_at"`
	IsVerified  bool   `json:"is_verified"`
	Value       *int64 `json:"value,omitempty"`
	Mine        bool   `json:"mine"`
}

type recordPageResponse struct {
	Items       []recordResponse `json:"items"`
	Page        int              `json:"page"`
	TotalPages  int              `json:"total_pages"`
	Total       int              `json:"total"`
	RefreshedAt *time.Time       `json:"refreshed_at,omitempty"`
}

type createRecordResponse struct {
	ID string `json:"id"`
}

func newRecordResponse(record models.EncryptedRecord, wallet string) recordResponse {
	resp := recordResponse{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		Creator:     record.Creator,
		CreatedAt:   record.CreatedAt,
		IsVerified:  record.IsVerified,
		Mine:        wallet != "" && strings.EqualFold(record.Creator, wallet),
	}
	if value, ok := record.RevealedValue(); ok {
		resp.Value = &value
	}
	return resp
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := intQueryParam(query.Get("page"), 1)
	if err != nil {
		h.writeError(w, r, err, "*Handler.listRecords")
		return
	}
	perPage, err := intQueryParam(query.Get("per_page"), defaultPerPage)
	if err != nil {
		h.writeError(w, r, err, "*Handler.listRecords")
		return
	}

	wallet, _ := utils.GetWalletAddressFromContext(r.Context())
	result := h.services.Records.Page(query.Get("search"), page, perPage)

	resp := recordPageResponse{
		Items:      make([]recordResponse, 0, len(result.Items)),
		Page:       result.Page,
		TotalPages: result.TotalPages,
		Total:      result.Total,
	}
	for _, record := range result.Items {
		resp.Items = append(resp.Items, newRecordResponse(record, wallet))
	}
	if refreshedAt := h.services.Records.RefreshedAt(); !refreshedAt.IsZero() {
		resp.RefreshedAt = &refreshedAt
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) recordStats(w http.ResponseWriter, r *http.Request) {
	wallet, _ := utils.GetWalletAddressFromContext(r.Context())
	_, _ = utils.WriteJSON(w, h.services.Records.Stats(wallet), http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.Records.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "*Handler.getRecord")
		return
	}

	wallet, _ := utils.GetWalletAddressFromContext(r.Context())
	_, _ = utils.WriteJSON(w, newRecordResponse(record, wallet), http.StatusOK)
}

// createRecord creates a record from the request body, or from the stored
// draft when the body is empty.
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	draft, err := decodeDraft(r.Body)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createRecord")
		return
	}
	if draft.IsEmpty() {
		draft = h.services.Lifecycle.Draft()
	}

	wallet, _ := utils.GetWalletAddressFromContext(r.Context())
	id, err := h.services.Lifecycle.CreateRecord(r.Context(), draft, wallet)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createRecord")
		return
	}

	_, _ = utils.WriteJSON(w, createRecordResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) revealRecord(w http.ResponseWriter, r *http.Request) {
	wallet, _ := utils.GetWalletAddressFromContext(r.Context())

	result, err := h.services.Lifecycle.RevealRecord(r.Context(), chi.URLParam(r, "id"), wallet)
	if err != nil {
		h.writeError(w, r, err, "*Handler.revealRecord")
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) refreshRecords(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Lifecycle.RefreshRecords(r.Context()); err != nil {
		h.writeError(w, r, err, "*Handler.refreshRecords")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError logs err and answers with the status mapped from it.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	utils.WriteError(w, err.Error(), status)
}

func decodeDraft(body io.Reader) (models.NewRecordDraft, error) {
	var draft models.NewRecordDraft
	if body == nil {
		return draft, nil
	}
	if err := json.NewDecoder(body).Decode(&draft); err != nil && !errors.Is(err, io.EOF) {
		return draft, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return draft, nil
}

func intQueryParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQueryParam, raw)
	}
	return v, nil
}
