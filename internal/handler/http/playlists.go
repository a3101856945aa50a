package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/service"
	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/MKhiriev/go-review-keeper/models"
)

type createPlaylistRequest struct {
	Name string              `json:"name"`
	Kind models.PlaylistKind `json:"kind"`
}

type importPlaylistRequest struct {
	RemoteID string              `json:"remote_id"`
	Name     string              `json:"name"`
	Kind     models.PlaylistKind `json:"kind"`
}

type addVersionsRequest struct {
	Versions []models.Version `json:"versions"`
}

type clearAddedResponse struct {
	Removed int64 `json:"removed"`
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) listPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.services.Playlists.ListPlaylists(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listPlaylists", err)
		return
	}
	utils.WriteJSON(w, playlists, http.StatusOK)
}

func (h *Handler) createPlaylist(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createPlaylist", err)
		return
	}
	if req.Kind == "" {
		req.Kind = models.KindList
	}

	p, err := h.services.Playlists.CreatePlaylist(r.Context(), req.Name, req.Kind)
	if err != nil {
		writeError(w, r, "Handler.createPlaylist", err)
		return
	}
	utils.WriteJSON(w, p, http.StatusCreated)
}

func (h *Handler) importPlaylist(w http.ResponseWriter, r *http.Request) {
	var req importPlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.importPlaylist", err)
		return
	}
	if req.Kind == "" {
		req.Kind = models.KindReviewSession
	}

	details, err := h.services.Playlists.ImportRemotePlaylist(r.Context(), req.RemoteID, req.Name, req.Kind)
	if err != nil {
		writeError(w, r, "Handler.importPlaylist", err)
		return
	}
	utils.WriteJSON(w, details, http.StatusCreated)
}

func (h *Handler) openQuickNotes(w http.ResponseWriter, r *http.Request) {
	details, err := h.services.Playlists.OpenQuickNotes(r.Context())
	if err != nil {
		writeError(w, r, "Handler.openQuickNotes", err)
		return
	}
	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) getPlaylist(w http.ResponseWriter, r *http.Request) {
	details, err := h.services.Playlists.GetPlaylist(r.Context(), playlistID(r))
	if err != nil {
		writeError(w, r, "Handler.getPlaylist", err)
		return
	}
	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) getRemovedVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.services.Playlists.GetRemovedVersions(r.Context(), playlistID(r))
	if err != nil {
		writeError(w, r, "Handler.getRemovedVersions", err)
		return
	}
	utils.WriteJSON(w, versions, http.StatusOK)
}

// getPending answers 204 when nothing is pending for the playlist.
func (h *Handler) getPending(w http.ResponseWriter, r *http.Request) {
	change, ok := h.services.Poller.Pending()
	if !ok || change.PlaylistID != playlistID(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.WriteJSON(w, change, http.StatusOK)
}

func (h *Handler) startPolling(w http.ResponseWriter, r *http.Request) {
	id := playlistID(r)
	if err := h.services.Poller.Start(r.Context(), id, nil); err != nil {
		writeError(w, r, "Handler.startPolling", err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "Handler.startPolling").Msg("polling started")
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) stopPolling(w http.ResponseWriter, r *http.Request) {
	h.services.Poller.Stop()
	w.WriteHeader(http.StatusNoContent)
}

// applyPending applies the pending change only when it belongs to the
// playlist in the path.
func (h *Handler) applyPending(w http.ResponseWriter, r *http.Request) {
	change, ok := h.services.Poller.Pending()
	if !ok || change.PlaylistID != playlistID(r) {
		writeError(w, r, "Handler.applyPending", service.ErrNoPendingChanges)
		return
	}

	result, err := h.services.Reconciler.ApplyPendingChanges(r.Context())
	if err != nil {
		writeError(w, r, "Handler.applyPending", err)
		return
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.Reconciler.DirectRefresh(r.Context(), playlistID(r))
	if err != nil {
		writeError(w, r, "Handler.refresh", err)
		return
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) addVersions(w http.ResponseWriter, r *http.Request) {
	var req addVersionsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.addVersions", err)
		return
	}

	id := playlistID(r)
	for i := range req.Versions {
		req.Versions[i].PlaylistID = id
		if err := h.services.Validator.Validate(r.Context(), req.Versions[i]); err != nil {
			writeError(w, r, "Handler.addVersions", err)
			return
		}
	}

	if err := h.services.Reconciler.AddManualVersions(r.Context(), id, req.Versions...); err != nil {
		writeError(w, r, "Handler.addVersions", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearAddedVersions(w http.ResponseWriter, r *http.Request) {
	n, err := h.services.Reconciler.ClearAddedVersions(r.Context(), playlistID(r))
	if err != nil {
		writeError(w, r, "Handler.clearAddedVersions", err)
		return
	}
	utils.WriteJSON(w, clearAddedResponse{Removed: n}, http.StatusOK)
}
