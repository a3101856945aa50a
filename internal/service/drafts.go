package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/MKhiriev/go-review-keeper/internal/validators"
	"github.com/MKhiriev/go-review-keeper/models"
)

type draftManager struct {
	playlists   store.PlaylistRepository
	drafts      store.DraftRepository
	attachments store.AttachmentRepository
	files       store.AttachmentFileStorage
	tracking    adapter.TrackingAdapter
	validator   validators.Validator
	previews    *PreviewTracker
	publisher   events.Publisher
	ids         *utils.UUIDGenerator
}

// NewDraftManager builds a [DraftManager]. previews may be shared with
// other views; nil creates a private tracker.
func NewDraftManager(
	storages *store.ClientStorages,
	tracking adapter.TrackingAdapter,
	validator validators.Validator,
	previews *PreviewTracker,
	publisher events.Publisher,
) DraftManager {
	if previews == nil {
		previews = NewPreviewTracker()
	}
	if publisher == nil {
		publisher = events.Discard
	}

	return &draftManager{
		playlists:   storages.Playlists,
		drafts:      storages.Drafts,
		attachments: storages.Attachments,
		files:       storages.Files,
		tracking:    tracking,
		validator:   validator,
		previews:    previews,
		publisher:   publisher,
		ids:         utils.NewUUIDGenerator(),
	}
}

// GetDraft implements [DraftManager].
func (m *draftManager) GetDraft(ctx context.Context, playlistID, versionID string) (models.Draft, error) {
	d, err := m.drafts.GetDraft(ctx, playlistID, versionID)
	if err != nil {
		return models.Draft{}, err
	}
	m.attachPreviews(d.Attachments)
	return d, nil
}

// ListDrafts implements [DraftManager].
func (m *draftManager) ListDrafts(ctx context.Context, playlistID string) ([]models.Draft, error) {
	drafts, err := m.drafts.ListDrafts(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	for i := range drafts {
		m.attachPreviews(drafts[i].Attachments)
	}
	return drafts, nil
}

// SaveDraft implements [DraftManager].
func (m *draftManager) SaveDraft(ctx context.Context, playlistID, versionID, content string, labelID *string, attachmentIDs []string) (models.Draft, error) {
	log := logger.FromContext(ctx)

	current, err := m.drafts.GetDraft(ctx, playlistID, versionID)
	if err != nil {
		return models.Draft{}, err
	}

	owned := make(map[string]models.Attachment, len(current.Attachments))
	for _, a := range current.Attachments {
		owned[a.ID] = a
	}

	kept := make([]models.Attachment, 0, len(attachmentIDs))
	seen := make(map[string]struct{}, len(attachmentIDs))
	for _, id := range attachmentIDs {
		a, ok := owned[id]
		if !ok {
			return models.Draft{}, fmt.Errorf("%w: %s does not belong to this draft", ErrInvalidAttachment, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, a)
	}

	dropped := make([]models.Attachment, 0)
	for _, a := range current.Attachments {
		if _, ok := seen[a.ID]; !ok {
			dropped = append(dropped, a)
		}
	}

	next := models.Draft{
		PlaylistID:  playlistID,
		VersionID:   versionID,
		Content:     content,
		LabelID:     labelID,
		Attachments: kept,
	}
	if err := m.drafts.UpsertDraft(ctx, next, models.Draft{Attachments: dropped}.AttachmentIDs()...); err != nil {
		return models.Draft{}, err
	}
	m.releaseAttachments(ctx, dropped)

	saved, err := m.GetDraft(ctx, playlistID, versionID)
	if err != nil {
		return models.Draft{}, err
	}

	log.Debug().
		Str("func", "draftManager.SaveDraft").
		Str("playlist_id", playlistID).
		Str("version_id", versionID).
		Str("status", string(saved.Status())).
		Int("dropped_attachments", len(dropped)).
		Msg("draft saved")

	m.publisher.Publish(events.Event{Type: events.TypeDraftSaved, PlaylistID: playlistID, Data: saved})
	return saved, nil
}

// ClearDraft implements [DraftManager].
func (m *draftManager) ClearDraft(ctx context.Context, playlistID, versionID string) error {
	current, err := m.drafts.GetDraft(ctx, playlistID, versionID)
	if err != nil {
		return err
	}

	if err := m.drafts.ClearDraft(ctx, playlistID, versionID, current.AttachmentIDs()...); err != nil {
		return err
	}
	m.releaseAttachments(ctx, current.Attachments)

	m.publisher.Publish(events.Event{
		Type:       events.TypeDraftSaved,
		PlaylistID: playlistID,
		Data:       models.Draft{PlaylistID: playlistID, VersionID: versionID},
	})
	return nil
}

// AddAttachment implements [DraftManager].
func (m *draftManager) AddAttachment(ctx context.Context, playlistID, versionID string, upload models.AttachmentUpload) (models.Attachment, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, upload); err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrInvalidAttachment, err)
	}

	a := models.Attachment{
		ID:         m.ids.Generate(),
		PlaylistID: playlistID,
		VersionID:  versionID,
		Name:       upload.Name,
		MIMEType:   upload.MIMEType,
		Size:       int64(len(upload.Data)),
		Checksum:   utils.Checksum(upload.Data),
	}

	path, err := m.files.Save(ctx, a, upload.Data)
	if err != nil {
		return models.Attachment{}, err
	}
	a.StoragePath = path

	saved, err := m.attachments.SaveAttachment(ctx, a)
	if err != nil {
		if rmErr := m.files.Remove(ctx, path); rmErr != nil {
			log.Warn().Err(rmErr).
				Str("func", "draftManager.AddAttachment").
				Str("attachment_id", a.ID).
				Msg("failed to remove orphaned attachment file")
		}
		return models.Attachment{}, err
	}

	saved.PreviewHandle = m.previews.Acquire(saved)

	log.Info().
		Str("func", "draftManager.AddAttachment").
		Str("playlist_id", playlistID).
		Str("version_id", versionID).
		Str("attachment_id", saved.ID).
		Int64("size", saved.Size).
		Msg("attachment added")

	m.publisher.Publish(events.Event{Type: events.TypeDraftSaved, PlaylistID: playlistID, Data: saved})
	return saved, nil
}

// RemoveAttachment implements [DraftManager].
func (m *draftManager) RemoveAttachment(ctx context.Context, attachmentID string) error {
	a, err := m.attachments.GetAttachment(ctx, attachmentID)
	if err != nil {
		return err
	}
	if a.NoteID != nil {
		return fmt.Errorf("%w: %s is part of a published note", ErrInvalidAttachment, attachmentID)
	}

	return m.deleteAttachments(ctx, []models.Attachment{a})
}

// OpenPreview implements [DraftManager].
func (m *draftManager) OpenPreview(ctx context.Context, handle string) (io.ReadCloser, models.Attachment, error) {
	a, ok := m.previews.Resolve(handle)
	if !ok {
		return nil, models.Attachment{}, ErrPreviewNotFound
	}

	r, err := m.files.Open(ctx, a.StoragePath)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.previews.Release(a.ID)
			return nil, models.Attachment{}, ErrPreviewNotFound
		}
		return nil, models.Attachment{}, err
	}
	return r, a, nil
}

// Publish implements [DraftManager].
func (m *draftManager) Publish(ctx context.Context, playlistID, versionID string) (models.Draft, error) {
	log := logger.FromContext(ctx)

	d, err := m.drafts.GetDraft(ctx, playlistID, versionID)
	if err != nil {
		return models.Draft{}, err
	}
	switch d.Status() {
	case models.DraftStatusEmpty:
		return models.Draft{}, ErrEmptyDraft
	case models.DraftStatusPublished:
		return models.Draft{}, ErrAlreadyPublished
	}

	details, err := m.playlists.GetPlaylist(ctx, playlistID)
	if err != nil {
		return models.Draft{}, err
	}

	note := models.NoteRequest{
		VersionID:   versionID,
		Content:     d.Content,
		LabelID:     d.LabelID,
		Attachments: d.AttachmentIDs(),
	}
	fields := []string{validators.FieldVersionID, validators.FieldContent}
	if details.Playlist.RemoteID != nil {
		note.PlaylistRemoteID = *details.Playlist.RemoteID
		fields = append(fields, validators.FieldRemotePlaylistID)
	}
	if err := m.validator.Validate(ctx, note, fields...); err != nil {
		return models.Draft{}, err
	}

	// an attachment-only draft has no row yet
	if d.UpdatedAt.IsZero() {
		if err := m.drafts.UpsertDraft(ctx, d); err != nil {
			return models.Draft{}, err
		}
	}

	created, err := m.tracking.PublishNote(ctx, note)
	if err != nil {
		log.Err(err).
			Str("func", "draftManager.Publish").
			Str("playlist_id", playlistID).
			Str("version_id", versionID).
			Msg("failed to publish note")
		return models.Draft{}, fmt.Errorf("publish note: %w", err)
	}

	if err := m.drafts.MarkPublished(ctx, playlistID, versionID, created.NoteID); err != nil {
		return models.Draft{}, err
	}
	for _, a := range d.Attachments {
		m.previews.Release(a.ID)
	}

	published, err := m.drafts.GetDraft(ctx, playlistID, versionID)
	if err != nil {
		return models.Draft{}, err
	}

	m.publisher.Publish(events.Event{Type: events.TypeDraftPublished, PlaylistID: playlistID, Data: published})
	return published, nil
}

// Close implements [DraftManager].
func (m *draftManager) Close() {
	m.previews.ReleaseAll()
}

// deleteAttachments removes metadata rows, then content files and preview
// handles.
func (m *draftManager) deleteAttachments(ctx context.Context, list []models.Attachment) error {
	if len(list) == 0 {
		return nil
	}

	if _, err := m.attachments.DeleteAttachments(ctx, models.Draft{Attachments: list}.AttachmentIDs()...); err != nil {
		return err
	}
	m.releaseAttachments(ctx, list)
	return nil
}

// releaseAttachments drops preview handles and content files of attachments
// whose rows are already gone. A missing file is not an error.
func (m *draftManager) releaseAttachments(ctx context.Context, list []models.Attachment) {
	for _, a := range list {
		m.previews.Release(a.ID)
		if err := m.files.Remove(ctx, a.StoragePath); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "draftManager.releaseAttachments").
				Str("attachment_id", a.ID).
				Msg("failed to remove attachment file")
		}
	}
}

func (m *draftManager) attachPreviews(list []models.Attachment) {
	for i := range list {
		list[i].PreviewHandle = m.previews.Acquire(list[i])
	}
}
