package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/service"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/MKhiriev/go-review-keeper/internal/validators"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrEmptyPlaylistID, http.StatusBadRequest},
	{ErrChecksumMismatch, http.StatusBadRequest},

	{store.ErrNotFound, http.StatusNotFound},
	{service.ErrPreviewNotFound, http.StatusNotFound},

	{store.ErrDuplicateID, http.StatusConflict},
	{service.ErrNoPendingChanges, http.StatusConflict},
	{service.ErrAlreadyPublished, http.StatusConflict},

	{service.ErrPlaylistNotPollable, http.StatusUnprocessableEntity},
	{service.ErrEmptyDraft, http.StatusUnprocessableEntity},
	{service.ErrInvalidAttachment, http.StatusUnprocessableEntity},
	{service.ErrInvalidPlaylist, http.StatusUnprocessableEntity},
	{store.ErrQuickNotesLocalOnly, http.StatusUnprocessableEntity},
	{validators.ErrInvalidNote, http.StatusUnprocessableEntity},
	{validators.ErrInvalidVersion, http.StatusUnprocessableEntity},

	{service.ErrTransientFetch, http.StatusServiceUnavailable},
	{adapter.ErrUnavailable, http.StatusServiceUnavailable},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrBadRequest, http.StatusBadGateway},
	{adapter.ErrConflict, http.StatusBadGateway},
	{adapter.ErrInvalidResponse, http.StatusBadGateway},

	{service.ErrPersistence, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Internal errors
// are not echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Send()
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Send()
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	utils.WriteError(w, msg, status)
}
