package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-loyalty-keeper/internal/service"
)

// errorStatusMap is scanned in order; the first match wins, so more
// specific errors come first.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},
	{ErrUnknownOperationClass, http.StatusNotFound},

	{service.ErrNotConnected, http.StatusUnauthorized},
	{service.ErrUserRejected, http.StatusForbidden},
	{service.ErrRecordNotFound, http.StatusNotFound},
	{service.ErrOperationInProgress, http.StatusConflict},
	{service.ErrLedgerUnavailable, http.StatusServiceUnavailable},
	{service.ErrEncryptionFailed, http.StatusBadGateway},
	{service.ErrSubmissionFailed, http.StatusBadGateway},
	{service.ErrConfirmationFailed, http.StatusBadGateway},
	{service.ErrRevealFailed, http.StatusBadGateway},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}
