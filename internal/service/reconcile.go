package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/models"
)

type reconciliationController struct {
	playlists   store.PlaylistRepository
	versions    store.VersionRepository
	tracking    adapter.TrackingAdapter
	coordinator PollingCoordinator
	publisher   events.Publisher

	mu sync.RWMutex
	// lastKnown holds the active list of playlists found deleted upstream.
	// It is memory only.
	lastKnown map[string][]models.Version
}

// NewReconciliationController wires the controller to the store, the
// tracking service and the coordinator whose pending change it applies.
func NewReconciliationController(
	storages *store.ClientStorages,
	tracking adapter.TrackingAdapter,
	coordinator PollingCoordinator,
	publisher events.Publisher,
) ReconciliationController {
	if publisher == nil {
		publisher = events.Discard
	}

	return &reconciliationController{
		playlists:   storages.Playlists,
		versions:    storages.Versions,
		tracking:    tracking,
		coordinator: coordinator,
		publisher:   publisher,
		lastKnown:   make(map[string][]models.Version),
	}
}

// ApplyPendingChanges implements [ReconciliationController].
func (r *reconciliationController) ApplyPendingChanges(ctx context.Context) (models.RefreshResult, error) {
	log := logger.FromContext(ctx)

	change, ok := r.coordinator.Pending()
	if !ok {
		return models.RefreshResult{}, ErrNoPendingChanges
	}

	result, err := r.apply(ctx, change.PlaylistID, change.RemoteSnapshot)
	if err != nil {
		log.Err(err).
			Str("func", "reconciliationController.ApplyPendingChanges").
			Str("playlist_id", change.PlaylistID).
			Msg("failed to apply pending changes")
		return models.RefreshResult{}, err
	}

	r.coordinator.ClearPending(change.PlaylistID)
	if active, ok := r.coordinator.Active(); ok && active == change.PlaylistID {
		if err := r.coordinator.Restart(ctx); err != nil {
			log.Warn().Err(err).
				Str("func", "reconciliationController.ApplyPendingChanges").
				Str("playlist_id", change.PlaylistID).
				Msg("failed to restart polling")
		}
	}

	log.Info().
		Str("func", "reconciliationController.ApplyPendingChanges").
		Str("playlist_id", change.PlaylistID).
		Int("added", len(result.Added)).
		Int("removed", len(result.Removed)).
		Msg("pending changes applied")
	return result, nil
}

// DirectRefresh implements [ReconciliationController].
func (r *reconciliationController) DirectRefresh(ctx context.Context, playlistID string) (models.RefreshResult, error) {
	log := logger.FromContext(ctx)

	details, err := r.playlists.GetPlaylist(ctx, playlistID)
	if err != nil {
		return models.RefreshResult{}, err
	}
	if !details.Playlist.Pollable() {
		return models.RefreshResult{}, fmt.Errorf("%w: %s", ErrPlaylistNotPollable, playlistID)
	}

	remote, err := r.tracking.FetchPlaylistVersions(ctx, *details.Playlist.RemoteID)
	if errors.Is(err, adapter.ErrPlaylistNotFound) {
		return r.markDeletedUpstream(ctx, details)
	}
	if err != nil {
		log.Warn().Err(err).
			Str("func", "reconciliationController.DirectRefresh").
			Str("playlist_id", playlistID).
			Msg("direct refresh fetch failed")
		r.setSyncState(ctx, playlistID, models.SyncStateSyncFailed)
		return models.RefreshResult{}, fmt.Errorf("%w: %w", ErrTransientFetch, err)
	}

	if details.Playlist.DeletedUpstream {
		if err := r.playlists.SetDeletedUpstream(ctx, playlistID, false); err != nil {
			return models.RefreshResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		r.forget(playlistID)
		log.Info().
			Str("func", "reconciliationController.DirectRefresh").
			Str("playlist_id", playlistID).
			Msg("playlist is back upstream")
	}

	result, err := r.apply(ctx, playlistID, remote)
	if err != nil {
		return models.RefreshResult{}, err
	}

	// the refreshed state supersedes whatever the poller was holding
	r.coordinator.ClearPending(playlistID)
	return result, nil
}

// apply merges remote into the local records of playlistID: remote records
// are upserted (remote attributes win, manually added flags stay) and active
// records that are neither remote nor manually added are soft-removed. Each
// repository call is atomic on its own.
func (r *reconciliationController) apply(ctx context.Context, playlistID string, remote []models.RemoteVersion) (models.RefreshResult, error) {
	states, err := r.versions.GetVersionStates(ctx, playlistID)
	if err != nil {
		return models.RefreshResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	active, manual := splitStates(states)
	diff := ComputeDiff(active, manual, remote)

	r.setSyncState(ctx, playlistID, models.SyncStateSyncing)

	incoming := make([]models.Version, 0, len(remote))
	for _, rv := range remote {
		incoming = append(incoming, rv.ToVersion(playlistID))
	}

	if err := r.versions.AddVersions(ctx, playlistID, incoming...); err != nil {
		r.setSyncState(ctx, playlistID, models.SyncStateSyncFailed)
		return models.RefreshResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if len(diff.Removed) > 0 {
		if _, err := r.versions.SoftRemoveVersions(ctx, playlistID, diff.Removed, models.RemoveOptions{}); err != nil {
			r.setSyncState(ctx, playlistID, models.SyncStateSyncFailed)
			return models.RefreshResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}

	r.setSyncState(ctx, playlistID, models.SyncStateSynced)

	result := models.RefreshResult{
		PlaylistID: playlistID,
		Added:      diff.Added,
		Removed:    diff.Removed,
	}
	if !diff.Empty() {
		r.publisher.Publish(events.Event{Type: events.TypeVersionsUpdated, PlaylistID: playlistID, Data: result})
	}
	return result, nil
}

// markDeletedUpstream soft-removes every active version of a playlist the
// tracking service no longer knows and keeps the last known list for
// display. A second call finds nothing active and removes nothing.
func (r *reconciliationController) markDeletedUpstream(ctx context.Context, details models.PlaylistDetails) (models.RefreshResult, error) {
	log := logger.FromContext(ctx)
	playlistID := details.Playlist.ID

	if len(details.Versions) > 0 {
		r.remember(playlistID, details.Versions)
	}

	removed := make([]string, 0, len(details.Versions))
	for _, v := range details.Versions {
		removed = append(removed, v.VersionID)
	}

	if len(removed) > 0 {
		if _, err := r.versions.SoftRemoveVersions(ctx, playlistID, removed, models.RemoveOptions{}); err != nil {
			return models.RefreshResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}

	if !details.Playlist.DeletedUpstream {
		if err := r.playlists.SetDeletedUpstream(ctx, playlistID, true); err != nil {
			return models.RefreshResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		r.publisher.Publish(events.Event{Type: events.TypeDeletedUpstream, PlaylistID: playlistID})

		log.Warn().
			Str("func", "reconciliationController.markDeletedUpstream").
			Str("playlist_id", playlistID).
			Int("removed", len(removed)).
			Msg("playlist deleted upstream")
	}

	r.coordinator.ClearPending(playlistID)

	return models.RefreshResult{
		PlaylistID:      playlistID,
		Added:           []string{},
		Removed:         removed,
		DeletedUpstream: true,
	}, nil
}

// AddManualVersions implements [ReconciliationController].
func (r *reconciliationController) AddManualVersions(ctx context.Context, playlistID string, versions ...models.Version) error {
	if len(versions) == 0 {
		return nil
	}

	manual := make([]models.Version, 0, len(versions))
	for _, v := range versions {
		v.PlaylistID = playlistID
		v.ManuallyAdded = true
		manual = append(manual, v)
	}

	if err := r.versions.AddVersions(ctx, playlistID, manual...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "reconciliationController.AddManualVersions").
			Str("playlist_id", playlistID).
			Msg("failed to add manual versions")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	// a pending diff may now list one of these as added
	r.coordinator.ClearPending(playlistID)
	r.publisher.Publish(events.Event{Type: events.TypeVersionsUpdated, PlaylistID: playlistID})
	return nil
}

// ClearAddedVersions implements [ReconciliationController].
func (r *reconciliationController) ClearAddedVersions(ctx context.Context, playlistID string) (int64, error) {
	states, err := r.versions.GetVersionStates(ctx, playlistID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	ids := make([]string, 0)
	for _, s := range states {
		if s.ManuallyAdded {
			ids = append(ids, s.VersionID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := r.versions.SoftRemoveVersions(ctx, playlistID, ids, models.RemoveOptions{OnlyManuallyAdded: true})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	r.publisher.Publish(events.Event{Type: events.TypeVersionsUpdated, PlaylistID: playlistID})
	return n, nil
}

// LastKnownVersions implements [ReconciliationController].
func (r *reconciliationController) LastKnownVersions(playlistID string) ([]models.Version, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions, ok := r.lastKnown[playlistID]
	if !ok {
		return nil, false
	}
	return slices.Clone(versions), true
}

func (r *reconciliationController) remember(playlistID string, versions []models.Version) {
	r.mu.Lock()
	r.lastKnown[playlistID] = slices.Clone(versions)
	r.mu.Unlock()
}

func (r *reconciliationController) forget(playlistID string) {
	r.mu.Lock()
	delete(r.lastKnown, playlistID)
	r.mu.Unlock()
}

// setSyncState records a sync state transition. Failing to record it does
// not fail the operation.
func (r *reconciliationController) setSyncState(ctx context.Context, playlistID string, state models.SyncState) {
	if err := r.playlists.UpdateSyncState(ctx, playlistID, state); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "reconciliationController.setSyncState").
			Str("playlist_id", playlistID).
			Str("sync_state", string(state)).
			Msg("failed to update sync state")
		return
	}
	r.publisher.Publish(events.Event{Type: events.TypeSyncState, PlaylistID: playlistID, Data: state})
}
