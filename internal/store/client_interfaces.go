package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-review-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// PlaylistRepository stores playlist rows.
type PlaylistRepository interface {
	CreatePlaylist(ctx context.Context, p models.Playlist) error
	GetPlaylist(ctx context.Context, id string) (models.PlaylistDetails, error)
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	UpdateSyncState(ctx context.Context, id string, state models.SyncState) error
	SetDeletedUpstream(ctx context.Context, id string, deleted bool) error
}

// VersionRepository owns per-playlist version records and their soft-delete
// and manually-added bookkeeping.
type VersionRepository interface {
	AddVersions(ctx context.Context, playlistID string, versions ...models.Version) error
	SoftRemoveVersions(ctx context.Context, playlistID string, ids []string, opts models.RemoveOptions) (int64, error)
	GetActiveVersions(ctx context.Context, playlistID string) ([]models.Version, error)
	GetRemovedVersions(ctx context.Context, playlistID string) ([]models.Version, error)
	GetVersionStates(ctx context.Context, playlistID string) ([]models.VersionState, error)
	PurgeTombstones(ctx context.Context, olderThan time.Time) (int64, error)
}

// DraftRepository stores per-version drafts.
type DraftRepository interface {
	GetDraft(ctx context.Context, playlistID, versionID string) (models.Draft, error)
	ListDrafts(ctx context.Context, playlistID string) ([]models.Draft, error)
	// UpsertDraft and ClearDraft delete the pending attachment rows listed
	// in dropped within the same transaction.
	UpsertDraft(ctx context.Context, d models.Draft, dropped ...string) error
	MarkPublished(ctx context.Context, playlistID, versionID, noteID string) error
	ClearDraft(ctx context.Context, playlistID, versionID string, dropped ...string) error
}

// AttachmentRepository stores attachment metadata.
type AttachmentRepository interface {
	SaveAttachment(ctx context.Context, a models.Attachment) (models.Attachment, error)
	GetAttachment(ctx context.Context, id string) (models.Attachment, error)
	GetAttachments(ctx context.Context, ids ...string) ([]models.Attachment, error)
	ListAttachments(ctx context.Context, playlistID, versionID string) ([]models.Attachment, error)
	DeleteAttachments(ctx context.Context, ids ...string) (int64, error)
}

// AttachmentFileStorage keeps attachment content on disk.
type AttachmentFileStorage interface {
	Save(ctx context.Context, a models.Attachment, data []byte) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}
