package service

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/mock"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/internal/validators"
	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcileFixture struct {
	storages   *store.ClientStorages
	tracking   *mock.MockTrackingAdapter
	poller     *pollingCoordinator
	reconciler ReconciliationController
	playlists  PlaylistService
}

func newReconcileFixture(t *testing.T) *reconcileFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	tracking := mock.NewMockTrackingAdapter(ctrl)
	poller := newTestPoller(t, s, tracking, nil, time.Hour)
	reconciler := NewReconciliationController(s, tracking, poller, nil)

	return &reconcileFixture{
		storages:   s,
		tracking:   tracking,
		poller:     poller,
		reconciler: reconciler,
		playlists:  NewPlaylistService(s, reconciler, validators.NewReviewValidator()),
	}
}

func (f *reconcileFixture) syncState(t *testing.T, playlistID string) models.SyncState {
	t.Helper()
	d, err := f.storages.Playlists.GetPlaylist(testContext(), playlistID)
	require.NoError(t, err)
	return d.Playlist.SyncState
}

func TestReconciliation_ApplyPendingChangesScenario(t *testing.T) {
	f := newReconcileFixture(t)
	seedRemotePlaylist(t, f.storages, "pl", "v1", "v2")

	f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v3"), nil).MinTimes(1)

	require.NoError(t, f.poller.Start(testContext(), "pl", nil))
	require.Eventually(t, func() bool { _, ok := f.poller.Pending(); return ok }, time.Second, 5*time.Millisecond)

	result, err := f.reconciler.ApplyPendingChanges(testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"v3"}, result.Added)
	assert.Equal(t, []string{"v2"}, result.Removed)

	assert.Equal(t, []string{"v1", "v3"}, activeIDs(t, f.storages, "pl"))
	assert.Equal(t, []string{"v2"}, removedIDs(t, f.storages, "pl"))
	assert.Equal(t, models.SyncStateSynced, f.syncState(t, "pl"))

	// polling was restarted on the same playlist
	id, active := f.poller.Active()
	assert.True(t, active)
	assert.Equal(t, "pl", id)
}

func TestReconciliation_ApplyWithNothingPending(t *testing.T) {
	f := newReconcileFixture(t)

	_, err := f.reconciler.ApplyPendingChanges(testContext())
	assert.ErrorIs(t, err, ErrNoPendingChanges)
}

func TestReconciliation_ApplyTwiceFailsSecondTime(t *testing.T) {
	f := newReconcileFixture(t)
	seedRemotePlaylist(t, f.storages, "pl", "v1")

	f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v2"), nil)
	// the restart after apply polls once more and finds nothing new
	f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v2"), nil).AnyTimes()

	require.NoError(t, f.poller.Start(testContext(), "pl", nil))
	require.Eventually(t, func() bool { _, ok := f.poller.Pending(); return ok }, time.Second, 5*time.Millisecond)

	_, err := f.reconciler.ApplyPendingChanges(testContext())
	require.NoError(t, err)

	_, err = f.reconciler.ApplyPendingChanges(testContext())
	assert.ErrorIs(t, err, ErrNoPendingChanges)
}

func TestReconciliation_ManuallyAddedSurvivesRemoteDrift(t *testing.T) {
	f := newReconcileFixture(t)
	seedRemotePlaylist(t, f.storages, "pl", "v1")

	require.NoError(t, f.reconciler.AddManualVersions(testContext(), "pl", models.Version{VersionID: "v9", Name: "pick"}))

	// remote never returns v9
	f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1"), nil).AnyTimes()

	require.NoError(t, f.poller.Start(testContext(), "pl", nil))
	for range 5 {
		f.poller.tick(testContext(), currentGeneration(f.poller))
		_, ok := f.poller.Pending()
		assert.False(t, ok)
	}

	for range 2 {
		result, err := f.reconciler.DirectRefresh(testContext(), "pl")
		require.NoError(t, err)
		assert.NotContains(t, result.Removed, "v9")
	}
	assert.ElementsMatch(t, []string{"v1", "v9"}, activeIDs(t, f.storages, "pl"))
}

func TestReconciliation_RemoteWinsForSharedIDs(t *testing.T) {
	f := newReconcileFixture(t)
	seedRemotePlaylist(t, f.storages, "pl", "v1")
	require.NoError(t, f.reconciler.AddManualVersions(testContext(), "pl", models.Version{VersionID: "v9", Name: "local name"}))

	f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return([]models.RemoteVersion{
		{ID: "v1", Name: "shot_v1", Revision: 1},
		{ID: "v9", Name: "remote name", Revision: 4},
	}, nil)

	_, err := f.reconciler.DirectRefresh(testContext(), "pl")
	require.NoError(t, err)

	vs, err := f.storages.Versions.GetActiveVersions(testContext(), "pl")
	require.NoError(t, err)
	require.Len(t, vs, 2)
	byID := map[string]models.Version{}
	for _, v := range vs {
		byID[v.VersionID] = v
	}
	assert.Equal(t, "remote name", byID["v9"].Name)
	assert.Equal(t, 4, byID["v9"].Revision)
	assert.True(t, byID["v9"].ManuallyAdded)
}

func TestReconciliation_DirectRefreshIsIdempotent(t *testing.T) {
	f := newReconcileFixture(t)
	seedRemotePlaylist(t, f.storages, "pl", "v1", "v2")

	f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v3"), nil).Times(2)

	first, err := f.reconciler.DirectRefresh(testContext(), "pl")
	require.NoError(t, err)
	assert.Equal(t, []string{"v2"}, first.Removed)
	assert.Equal(t, []string{"v3"}, first.Added)

	second, err := f.reconciler.DirectRefresh(testContext(), "pl")
	require.NoError(t, err)
	assert.Empty(t, second.Removed)
	assert.Empty(t, second.Added)

	assert.Equal(t, []string{"v1", "v3"}, activeIDs(t, f.storages, "pl"))
}

func TestReconciliation_DeletedUpstreamScenario(t *testing.T) {
	f := newReconcileFixture(t)
	seedRemotePlaylist(t, f.storages, "pl", "v1", "v2")
	require.NoError(t, f.reconciler.AddManualVersions(testContext(), "pl", models.Version{VersionID: "v9", Name: "pick"}))

	f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(nil, adapter.ErrPlaylistNotFound).Times(2)

	result, err := f.reconciler.DirectRefresh(testContext(), "pl")
	require.NoError(t, err)
	assert.True(t, result.DeletedUpstream)
	assert.ElementsMatch(t, []string{"v1", "v2", "v9"}, result.Removed)

	assert.Empty(t, activeIDs(t, f.storages, "pl"))
	assert.ElementsMatch(t, []string{"v1", "v2", "v9"}, removedIDs(t, f.storages, "pl"))

	details, err := f.playlists.GetPlaylist(testContext(), "pl")
	require.NoError(t, err)
	assert.True(t, details.Playlist.DeletedUpstream)
	assert.True(t, details.FromSnapshot)
	assert.ElementsMatch(t, []string{"v1", "v2", "v9"}, versionIDs(details.Versions))

	// a second refresh removes nothing and keeps the snapshot
	again, err := f.reconciler.DirectRefresh(testContext(), "pl")
	require.NoError(t, err)
	assert.Empty(t, again.Removed)

	details, err = f.playlists.GetPlaylist(testContext(), "pl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v1", "v2", "v9"}, versionIDs(details.Versions))
}

func TestReconciliation_PlaylistComesBack(t *testing.T) {
	f := newReconcileFixture(t)
	seedRemotePlaylist(t, f.storages, "pl", "v1")

	gomock.InOrder(
		f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(nil, adapter.ErrPlaylistNotFound),
		f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1"), nil),
	)

	_, err := f.reconciler.DirectRefresh(testContext(), "pl")
	require.NoError(t, err)

	result, err := f.reconciler.DirectRefresh(testContext(), "pl")
	require.NoError(t, err)
	assert.False(t, result.DeletedUpstream)

	details, err := f.playlists.GetPlaylist(testContext(), "pl")
	require.NoError(t, err)
	assert.False(t, details.Playlist.DeletedUpstream)
	assert.False(t, details.FromSnapshot)
	assert.Equal(t, []string{"v1"}, versionIDs(details.Versions))

	_, cached := f.reconciler.LastKnownVersions("pl")
	assert.False(t, cached)
}

func TestReconciliation_DirectRefreshTransientFailure(t *testing.T) {
	f := newReconcileFixture(t)
	seedRemotePlaylist(t, f.storages, "pl", "v1")

	f.tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(nil, adapter.ErrUnavailable)

	_, err := f.reconciler.DirectRefresh(testContext(), "pl")
	assert.ErrorIs(t, err, ErrTransientFetch)
	assert.ErrorIs(t, err, adapter.ErrUnavailable)
	assert.Equal(t, models.SyncStateSyncFailed, f.syncState(t, "pl"))
	assert.Equal(t, []string{"v1"}, activeIDs(t, f.storages, "pl"))
}

func TestReconciliation_DirectRefreshRefusesQuickNotes(t *testing.T) {
	f := newReconcileFixture(t)
	_, err := f.playlists.OpenQuickNotes(testContext())
	require.NoError(t, err)

	_, err = f.reconciler.DirectRefresh(testContext(), models.QuickNotesPlaylistID)
	assert.ErrorIs(t, err, ErrPlaylistNotPollable)
}

func TestReconciliation_ClearAddedVersions(t *testing.T) {
	f := newReconcileFixture(t)
	seedRemotePlaylist(t, f.storages, "pl", "v1")
	require.NoError(t, f.reconciler.AddManualVersions(testContext(), "pl",
		models.Version{VersionID: "v8", Name: "a"},
		models.Version{VersionID: "v9", Name: "b"},
	))

	n, err := f.reconciler.ClearAddedVersions(testContext(), "pl")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.Equal(t, []string{"v1"}, activeIDs(t, f.storages, "pl"))

	n, err = f.reconciler.ClearAddedVersions(testContext(), "pl")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReconciliation_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	playlists := mock.NewMockPlaylistRepository(ctrl)
	versions := mock.NewMockVersionRepository(ctrl)
	tracking := mock.NewMockTrackingAdapter(ctrl)
	poller := mock.NewMockPollingCoordinator(ctrl)

	details := models.PlaylistDetails{Playlist: models.Playlist{
		ID: "pl", Kind: models.KindReviewSession, SyncState: models.SyncStateSynced, RemoteID: strPtr("r"),
	}}

	playlists.EXPECT().GetPlaylist(gomock.Any(), "pl").Return(details, nil)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "r").Return(remoteVersions("v1"), nil)
	versions.EXPECT().GetVersionStates(gomock.Any(), "pl").Return([]models.VersionState{{VersionID: "v0"}}, nil)
	gomock.InOrder(
		playlists.EXPECT().UpdateSyncState(gomock.Any(), "pl", models.SyncStateSyncing).Return(nil),
		versions.EXPECT().AddVersions(gomock.Any(), "pl", gomock.Any()).Return(errors.New("disk full")),
		playlists.EXPECT().UpdateSyncState(gomock.Any(), "pl", models.SyncStateSyncFailed).Return(nil),
	)

	storages := &store.ClientStorages{Playlists: playlists, Versions: versions}
	r := NewReconciliationController(storages, tracking, poller, nil)

	_, err := r.DirectRefresh(testContext(), "pl")
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestReconciliation_ApplyPersistenceFailureKeepsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	playlists := mock.NewMockPlaylistRepository(ctrl)
	versions := mock.NewMockVersionRepository(ctrl)
	poller := mock.NewMockPollingCoordinator(ctrl)

	change := models.NewPendingChange("pl", models.Diff{Added: []string{"v2"}, RemoteSnapshot: remoteVersions("v1", "v2")}, time.Now())
	poller.EXPECT().Pending().Return(change, true)
	versions.EXPECT().GetVersionStates(gomock.Any(), "pl").Return(nil, errors.New("locked"))

	storages := &store.ClientStorages{Playlists: playlists, Versions: versions}
	r := NewReconciliationController(storages, mock.NewMockTrackingAdapter(ctrl), poller, nil)

	_, err := r.ApplyPendingChanges(testContext())
	assert.ErrorIs(t, err, ErrPersistence)
	// no ClearPending or Restart expected: the user may retry
}

func TestReconciliation_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1")

	broker := events.NewBroker()
	defer broker.Close()
	sub := broker.Subscribe()

	tracking := mock.NewMockTrackingAdapter(ctrl)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v2"), nil)

	poller := newTestPoller(t, s, tracking, broker, time.Hour)
	r := NewReconciliationController(s, tracking, poller, broker)

	_, err := r.DirectRefresh(testContext(), "pl")
	require.NoError(t, err)

	ev := waitEvent(t, sub, events.TypeVersionsUpdated)
	result, ok := ev.Data.(models.RefreshResult)
	require.True(t, ok)
	assert.Equal(t, []string{"v2"}, result.Added)
}
