package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-review-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// PollingCoordinator schedules the recurring fetch-and-diff cycle for at most
// one playlist at a time. It owns the "active playlist" state; Start and Stop
// are the only way to mutate it.
type PollingCoordinator interface {
	// Start stops any running cycle and begins polling playlistID. The first
	// tick runs immediately. Returns ErrPlaylistNotPollable for Quick Notes,
	// local-only playlists and playlists without a remote id.
	Start(ctx context.Context, playlistID string, onChange models.ChangeListener) error

	// Stop cancels the running cycle, blocks until its poll goroutine exits
	// and drops the pending change. It does not wait for a running listener,
	// so listeners may call it. Safe to call when idle.
	Stop()

	// Restart begins a fresh cycle for the active playlist. No-op when idle.
	Restart(ctx context.Context) error

	// Pending returns the change detected by the latest tick, if any.
	Pending() (models.PendingChange, bool)

	// ClearPending drops the pending change when it belongs to playlistID.
	ClearPending(playlistID string)

	// Active returns the playlist being polled.
	Active() (string, bool)
}

// ReconciliationController is the single place that knows what applying a
// remote state to the local cache means.
type ReconciliationController interface {
	// ApplyPendingChanges persists the pending change of the active playlist,
	// clears it and restarts polling. Returns ErrNoPendingChanges when nothing
	// is pending.
	ApplyPendingChanges(ctx context.Context) (models.RefreshResult, error)

	// DirectRefresh fetches the remote state of playlistID and applies it
	// without confirmation. A playlist deleted upstream has its versions
	// soft-removed and its last known list cached in memory. Calling it twice
	// with no remote change removes nothing the second time.
	DirectRefresh(ctx context.Context, playlistID string) (models.RefreshResult, error)

	// AddManualVersions adds user-picked versions flagged manually added.
	AddManualVersions(ctx context.Context, playlistID string, versions ...models.Version) error

	// ClearAddedVersions soft-removes every manually added version of
	// playlistID and returns how many were removed.
	ClearAddedVersions(ctx context.Context, playlistID string) (int64, error)

	// LastKnownVersions returns the snapshot cached when playlistID was found
	// deleted upstream.
	LastKnownVersions(playlistID string) ([]models.Version, bool)
}

// DraftManager persists per-version note drafts and their attachments. It is
// independent of sync state. Callers debounce SaveDraft.
type DraftManager interface {
	GetDraft(ctx context.Context, playlistID, versionID string) (models.Draft, error)
	ListDrafts(ctx context.Context, playlistID string) ([]models.Draft, error)

	// SaveDraft upserts content, label and the ordered attachment list and
	// resets the publish flag. Attachments missing from attachmentIDs are
	// deleted and their previews released.
	SaveDraft(ctx context.Context, playlistID, versionID, content string, labelID *string, attachmentIDs []string) (models.Draft, error)

	// ClearDraft empties the draft and removes its attachments. The version
	// record stays.
	ClearDraft(ctx context.Context, playlistID, versionID string) error

	AddAttachment(ctx context.Context, playlistID, versionID string, upload models.AttachmentUpload) (models.Attachment, error)
	RemoveAttachment(ctx context.Context, attachmentID string) error

	// OpenPreview resolves a preview handle to the attachment content.
	OpenPreview(ctx context.Context, handle string) (io.ReadCloser, models.Attachment, error)

	// Publish sends the draft to the tracking service as a note and marks it
	// published. Returns ErrEmptyDraft for an empty draft.
	Publish(ctx context.Context, playlistID, versionID string) (models.Draft, error)

	// Close releases every live preview handle.
	Close()
}

// PlaylistService is the read surface the rendering layers use, plus
// playlist creation.
type PlaylistService interface {
	// CreatePlaylist creates a local-only playlist with a generated id.
	CreatePlaylist(ctx context.Context, name string, kind models.PlaylistKind) (models.Playlist, error)

	// ImportRemotePlaylist mirrors a remote playlist locally and runs the
	// initial direct refresh.
	ImportRemotePlaylist(ctx context.Context, remoteID, name string, kind models.PlaylistKind) (models.PlaylistDetails, error)

	// OpenQuickNotes returns the Quick Notes playlist, creating it on first
	// use.
	OpenQuickNotes(ctx context.Context) (models.PlaylistDetails, error)

	// GetPlaylist returns a playlist with its active versions. For a playlist
	// deleted upstream the last known snapshot is returned instead.
	GetPlaylist(ctx context.Context, id string) (models.PlaylistDetails, error)

	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	GetRemovedVersions(ctx context.Context, id string) ([]models.Version, error)
}
