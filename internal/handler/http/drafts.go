package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/go-chi/chi/v5"
)

type saveDraftRequest struct {
	Content       string   `json:"content"`
	LabelID       *string  `json:"label_id,omitempty"`
	AttachmentIDs []string `json:"attachment_ids"`
}

// draftResponse adds the derived status to a draft.
type draftResponse struct {
	models.Draft
	Status models.DraftStatus `json:"status"`
}

func newDraftResponse(d models.Draft) draftResponse {
	return draftResponse{Draft: d, Status: d.Status()}
}

func (h *Handler) listDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.services.Drafts.ListDrafts(r.Context(), playlistID(r))
	if err != nil {
		writeError(w, r, "Handler.listDrafts", err)
		return
	}

	resp := make([]draftResponse, 0, len(drafts))
	for _, d := range drafts {
		resp = append(resp, newDraftResponse(d))
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	d, err := h.services.Drafts.GetDraft(r.Context(), playlistID(r), chi.URLParam(r, "versionID"))
	if err != nil {
		writeError(w, r, "Handler.getDraft", err)
		return
	}
	utils.WriteJSON(w, newDraftResponse(d), http.StatusOK)
}

func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	var req saveDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.saveDraft", err)
		return
	}

	d, err := h.services.Drafts.SaveDraft(r.Context(), playlistID(r), chi.URLParam(r, "versionID"), req.Content, req.LabelID, req.AttachmentIDs)
	if err != nil {
		writeError(w, r, "Handler.saveDraft", err)
		return
	}
	utils.WriteJSON(w, newDraftResponse(d), http.StatusOK)
}

func (h *Handler) clearDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Drafts.ClearDraft(r.Context(), playlistID(r), chi.URLParam(r, "versionID")); err != nil {
		writeError(w, r, "Handler.clearDraft", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	versionID := chi.URLParam(r, "versionID")

	d, err := h.services.Drafts.Publish(r.Context(), playlistID(r), versionID)
	if err != nil {
		writeError(w, r, "Handler.publish", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "Handler.publish").
		Str("version_id", versionID).
		Msg("note published")
	utils.WriteJSON(w, newDraftResponse(d), http.StatusOK)
}

// addAttachment takes the raw file as the body. The name comes from the
// "name" query parameter and the MIME type from Content-Type.
func (h *Handler) addAttachment(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, "Handler.addAttachment", err)
		return
	}

	upload := models.AttachmentUpload{
		Name:     r.URL.Query().Get("name"),
		MIMEType: r.Header.Get("Content-Type"),
		Data:     data,
	}

	a, err := h.services.Drafts.AddAttachment(r.Context(), playlistID(r), chi.URLParam(r, "versionID"), upload)
	if err != nil {
		writeError(w, r, "Handler.addAttachment", err)
		return
	}
	utils.WriteJSON(w, a, http.StatusCreated)
}

func (h *Handler) removeAttachment(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Drafts.RemoveAttachment(r.Context(), chi.URLParam(r, "attachmentID")); err != nil {
		writeError(w, r, "Handler.removeAttachment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) openPreview(w http.ResponseWriter, r *http.Request) {
	content, a, err := h.services.Drafts.OpenPreview(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		writeError(w, r, "Handler.openPreview", err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", a.MIMEType)
	if a.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(a.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		logger.FromRequest(r).Warn().Err(err).
			Str("func", "Handler.openPreview").
			Str("attachment_id", a.ID).
			Msg("preview copy interrupted")
	}
}
