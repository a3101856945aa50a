package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/MKhiriev/go-review-keeper/internal/validators"
	"github.com/MKhiriev/go-review-keeper/models"
)

const quickNotesName = "Quick Notes"

type playlistService struct {
	playlists  store.PlaylistRepository
	versions   store.VersionRepository
	reconciler ReconciliationController
	validator  validators.Validator
	ids        *utils.UUIDGenerator
}

func NewPlaylistService(
	storages *store.ClientStorages,
	reconciler ReconciliationController,
	validator validators.Validator,
) PlaylistService {
	return &playlistService{
		playlists:  storages.Playlists,
		versions:   storages.Versions,
		reconciler: reconciler,
		validator:  validator,
		ids:        utils.NewUUIDGenerator(),
	}
}

// CreatePlaylist implements [PlaylistService].
func (s *playlistService) CreatePlaylist(ctx context.Context, name string, kind models.PlaylistKind) (models.Playlist, error) {
	if kind == models.KindQuickNotes {
		return models.Playlist{}, fmt.Errorf("%w: quick notes is opened, not created", ErrInvalidPlaylist)
	}

	p := models.Playlist{
		ID:        s.ids.Generate(),
		Name:      name,
		Kind:      kind,
		SyncState: models.SyncStateLocalOnly,
	}
	if err := s.validator.Validate(ctx, p); err != nil {
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrInvalidPlaylist, err)
	}

	if err := s.playlists.CreatePlaylist(ctx, p); err != nil {
		return models.Playlist{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "playlistService.CreatePlaylist").
		Str("playlist_id", p.ID).
		Str("kind", string(kind)).
		Msg("playlist created")
	return p, nil
}

// ImportRemotePlaylist implements [PlaylistService]. The local id is the
// remote id. A failed initial refresh leaves the playlist in place with its
// sync state set by the controller.
func (s *playlistService) ImportRemotePlaylist(ctx context.Context, remoteID, name string, kind models.PlaylistKind) (models.PlaylistDetails, error) {
	if kind == models.KindQuickNotes {
		return models.PlaylistDetails{}, fmt.Errorf("%w: quick notes cannot be synced", ErrInvalidPlaylist)
	}

	p := models.Playlist{
		ID:        remoteID,
		Name:      name,
		Kind:      kind,
		SyncState: models.SyncStatePendingSync,
		RemoteID:  &remoteID,
	}
	if err := s.validator.Validate(ctx, p); err != nil {
		return models.PlaylistDetails{}, fmt.Errorf("%w: %w", ErrInvalidPlaylist, err)
	}

	if err := s.playlists.CreatePlaylist(ctx, p); err != nil {
		return models.PlaylistDetails{}, err
	}

	if _, err := s.reconciler.DirectRefresh(ctx, p.ID); err != nil {
		return models.PlaylistDetails{}, fmt.Errorf("initial refresh of %s: %w", p.ID, err)
	}

	return s.GetPlaylist(ctx, p.ID)
}

// OpenQuickNotes implements [PlaylistService].
func (s *playlistService) OpenQuickNotes(ctx context.Context) (models.PlaylistDetails, error) {
	details, err := s.playlists.GetPlaylist(ctx, models.QuickNotesPlaylistID)
	if err == nil {
		return details, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.PlaylistDetails{}, err
	}

	p := models.Playlist{
		ID:        models.QuickNotesPlaylistID,
		Name:      quickNotesName,
		Kind:      models.KindQuickNotes,
		SyncState: models.SyncStateLocalOnly,
	}
	if err := s.playlists.CreatePlaylist(ctx, p); err != nil && !errors.Is(err, store.ErrDuplicateID) {
		return models.PlaylistDetails{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "playlistService.OpenQuickNotes").
		Msg("quick notes playlist ready")
	return s.playlists.GetPlaylist(ctx, models.QuickNotesPlaylistID)
}

// GetPlaylist implements [PlaylistService].
func (s *playlistService) GetPlaylist(ctx context.Context, id string) (models.PlaylistDetails, error) {
	details, err := s.playlists.GetPlaylist(ctx, id)
	if err != nil {
		return models.PlaylistDetails{}, err
	}

	if details.Playlist.DeletedUpstream && len(details.Versions) == 0 {
		if snapshot, ok := s.reconciler.LastKnownVersions(id); ok {
			details.Versions = snapshot
			details.FromSnapshot = true
		}
	}
	return details, nil
}

// ListPlaylists implements [PlaylistService].
func (s *playlistService) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return s.playlists.ListPlaylists(ctx)
}

// GetRemovedVersions implements [PlaylistService].
func (s *playlistService) GetRemovedVersions(ctx context.Context, id string) ([]models.Version, error) {
	if _, err := s.playlists.GetPlaylist(ctx, id); err != nil {
		return nil, err
	}
	return s.versions.GetRemovedVersions(ctx, id)
}
