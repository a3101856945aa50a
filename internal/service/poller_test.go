package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/mock"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPoller(t *testing.T, s *store.ClientStorages, tracking adapter.TrackingAdapter, publisher events.Publisher, interval time.Duration) *pollingCoordinator {
	t.Helper()
	c := NewPollingCoordinator(s, tracking, publisher, interval).(*pollingCoordinator)
	t.Cleanup(c.Stop)
	return c
}

func currentGeneration(c *pollingCoordinator) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func TestPollingCoordinator_RefusesUnpollablePlaylists(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	ctx := testContext()

	require.NoError(t, s.Playlists.CreatePlaylist(ctx, models.Playlist{
		ID: models.QuickNotesPlaylistID, Name: "Quick Notes", Kind: models.KindQuickNotes, SyncState: models.SyncStateLocalOnly,
	}))
	require.NoError(t, s.Playlists.CreatePlaylist(ctx, models.Playlist{
		ID: "local", Name: "Mine", Kind: models.KindList, SyncState: models.SyncStateLocalOnly,
	}))

	c := newTestPoller(t, s, mock.NewMockTrackingAdapter(ctrl), nil, time.Hour)

	for _, id := range []string{models.QuickNotesPlaylistID, "local"} {
		err := c.Start(ctx, id, nil)
		assert.ErrorIs(t, err, ErrPlaylistNotPollable, id)
	}
	_, active := c.Active()
	assert.False(t, active)

	err := c.Start(ctx, "missing", nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPollingCoordinator_DetectsChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1", "v2")

	tracking := mock.NewMockTrackingAdapter(ctrl)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v3"), nil).MinTimes(1)

	broker := events.NewBroker()
	defer broker.Close()
	sub := broker.Subscribe()

	changes := make(chan models.PendingChange, 4)
	c := newTestPoller(t, s, tracking, broker, time.Hour)
	require.NoError(t, c.Start(testContext(), "pl", func(pc models.PendingChange) { changes <- pc }))

	select {
	case pc := <-changes:
		assert.Equal(t, "pl", pc.PlaylistID)
		assert.Equal(t, 1, pc.AddedCount)
		assert.Equal(t, 1, pc.RemovedCount)
		assert.Equal(t, []string{"v3"}, pc.AddedIDs)
		assert.Equal(t, []string{"v2"}, pc.RemovedIDs)
		assert.Equal(t, remoteVersions("v1", "v3"), pc.RemoteSnapshot)
	case <-time.After(time.Second):
		t.Fatal("onChange not called")
	}

	ev := waitEvent(t, sub, events.TypePendingChanges)
	assert.Equal(t, "pl", ev.PlaylistID)

	pending, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, []string{"v3"}, pending.AddedIDs)

	id, active := c.Active()
	assert.True(t, active)
	assert.Equal(t, "pl", id)

	// polling never writes to the store
	assert.Equal(t, []string{"v1", "v2"}, activeIDs(t, s, "pl"))
}

func TestPollingCoordinator_EmptyDiffClearsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1")

	tracking := mock.NewMockTrackingAdapter(ctrl)
	gomock.InOrder(
		tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v2"), nil),
		tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1"), nil),
	)

	c := newTestPoller(t, s, tracking, nil, time.Hour)
	require.NoError(t, c.Start(testContext(), "pl", nil))

	require.Eventually(t, func() bool { _, ok := c.Pending(); return ok }, time.Second, 5*time.Millisecond)

	c.tick(testContext(), currentGeneration(c))

	_, ok := c.Pending()
	assert.False(t, ok)
}

func TestPollingCoordinator_FetchFailuresAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1")

	var calls atomic.Int32
	tracking := mock.NewMockTrackingAdapter(ctrl)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").DoAndReturn(
		func(ctx context.Context, _ string) ([]models.RemoteVersion, error) {
			if calls.Add(1) < 3 {
				return nil, adapter.ErrUnavailable
			}
			return remoteVersions("v1", "v2"), nil
		}).MinTimes(3)

	changes := make(chan models.PendingChange, 8)
	c := newTestPoller(t, s, tracking, nil, 10*time.Millisecond)
	require.NoError(t, c.Start(testContext(), "pl", func(pc models.PendingChange) {
		select {
		case changes <- pc:
		default:
		}
	}))

	select {
	case pc := <-changes:
		assert.Equal(t, []string{"v2"}, pc.AddedIDs)
	case <-time.After(2 * time.Second):
		t.Fatal("polling stopped after transient failures")
	}
}

func TestPollingCoordinator_SwitchingPlaylistsLeavesOneActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "a", "v1")
	seedRemotePlaylist(t, s, "b", "v1")

	tracking := mock.NewMockTrackingAdapter(ctrl)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-a").Return(remoteVersions("v1", "v2"), nil).AnyTimes()
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-b").Return(remoteVersions("v1"), nil).AnyTimes()

	var aChanges atomic.Int32
	c := newTestPoller(t, s, tracking, nil, time.Hour)
	require.NoError(t, c.Start(testContext(), "a", func(models.PendingChange) { aChanges.Add(1) }))
	require.Eventually(t, func() bool { return aChanges.Load() == 1 }, time.Second, 5*time.Millisecond)
	staleGen := currentGeneration(c)

	require.NoError(t, c.Start(testContext(), "b", nil))

	id, active := c.Active()
	require.True(t, active)
	assert.Equal(t, "b", id)

	// the previous cycle was stopped along with its pending change
	_, ok := c.Pending()
	assert.False(t, ok)

	// a late tick of the stopped cycle changes nothing
	c.tick(testContext(), staleGen)
	_, ok = c.Pending()
	assert.False(t, ok)
	assert.EqualValues(t, 1, aChanges.Load())
}

func TestPollingCoordinator_StaleResultIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1")

	firstDone := make(chan struct{})
	release := make(chan struct{})
	inFlight := make(chan struct{})
	tracking := mock.NewMockTrackingAdapter(ctrl)
	gomock.InOrder(
		tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").DoAndReturn(
			func(context.Context, string) ([]models.RemoteVersion, error) {
				close(firstDone)
				return remoteVersions("v1"), nil
			}),
		tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").DoAndReturn(
			func(context.Context, string) ([]models.RemoteVersion, error) {
				close(inFlight)
				<-release
				return remoteVersions("v1", "v2"), nil
			}),
	)

	var changes atomic.Int32
	c := newTestPoller(t, s, tracking, nil, time.Hour)
	require.NoError(t, c.Start(testContext(), "pl", func(models.PendingChange) { changes.Add(1) }))
	<-firstDone

	gen := currentGeneration(c)
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.tick(testContext(), gen)
	}()

	<-inFlight
	c.Stop()
	close(release)
	<-done

	_, ok := c.Pending()
	assert.False(t, ok)
	assert.Zero(t, changes.Load())
}

func TestPollingCoordinator_DeletedUpstreamNotifiedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1")

	tracking := mock.NewMockTrackingAdapter(ctrl)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(nil, adapter.ErrPlaylistNotFound).Times(2)

	broker := events.NewBroker()
	defer broker.Close()
	sub := broker.Subscribe()

	c := newTestPoller(t, s, tracking, broker, time.Hour)
	require.NoError(t, c.Start(testContext(), "pl", nil))

	ev := waitEvent(t, sub, events.TypeDeletedUpstream)
	assert.Equal(t, "pl", ev.PlaylistID)

	c.tick(testContext(), currentGeneration(c))
	noEvent(t, sub, events.TypeDeletedUpstream, 100*time.Millisecond)

	// the poller only reports; the local records are untouched
	assert.Equal(t, []string{"v1"}, activeIDs(t, s, "pl"))
}

func TestPollingCoordinator_ListenerMayStopPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1")

	tracking := mock.NewMockTrackingAdapter(ctrl)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v2"), nil).AnyTimes()

	c := newTestPoller(t, s, tracking, nil, time.Hour)
	stopped := make(chan struct{})
	require.NoError(t, c.Start(testContext(), "pl", func(models.PendingChange) {
		c.Stop()
		close(stopped)
	}))

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop called from the change listener did not return")
	}

	_, active := c.Active()
	assert.False(t, active)
}

func TestPollingCoordinator_ListenerMayRestartPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1")

	tracking := mock.NewMockTrackingAdapter(ctrl)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v2"), nil).AnyTimes()

	c := newTestPoller(t, s, tracking, nil, time.Hour)
	var calls atomic.Int32
	restarted := make(chan error, 1)
	require.NoError(t, c.Start(testContext(), "pl", func(models.PendingChange) {
		if calls.Add(1) == 1 {
			restarted <- c.Restart(testContext())
		}
	}))

	select {
	case err := <-restarted:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Restart called from the change listener did not return")
	}

	id, active := c.Active()
	assert.True(t, active)
	assert.Equal(t, "pl", id)
	// the restarted cycle reports to the same listener
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestPollingCoordinator_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1")

	tracking := mock.NewMockTrackingAdapter(ctrl)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v1", "v2"), nil).AnyTimes()

	c := newTestPoller(t, s, tracking, nil, time.Hour)
	c.Stop()

	require.NoError(t, c.Start(testContext(), "pl", nil))
	require.Eventually(t, func() bool { _, ok := c.Pending(); return ok }, time.Second, 5*time.Millisecond)

	c.Stop()
	c.Stop()

	_, active := c.Active()
	assert.False(t, active)
	_, ok := c.Pending()
	assert.False(t, ok)

	// restart while idle does nothing
	require.NoError(t, c.Restart(testContext()))
	_, active = c.Active()
	assert.False(t, active)
}

func TestPollingCoordinator_ClearPendingMatchesPlaylist(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	seedRemotePlaylist(t, s, "pl", "v1")

	tracking := mock.NewMockTrackingAdapter(ctrl)
	tracking.EXPECT().FetchPlaylistVersions(gomock.Any(), "remote-pl").Return(remoteVersions("v2"), nil).AnyTimes()

	c := newTestPoller(t, s, tracking, nil, time.Hour)
	require.NoError(t, c.Start(testContext(), "pl", nil))
	require.Eventually(t, func() bool { _, ok := c.Pending(); return ok }, time.Second, 5*time.Millisecond)

	c.ClearPending("other")
	_, ok := c.Pending()
	assert.True(t, ok)

	c.ClearPending("pl")
	_, ok = c.Pending()
	assert.False(t, ok)
}

func TestPollingCoordinator_StateReadFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	playlists := mock.NewMockPlaylistRepository(ctrl)
	versions := mock.NewMockVersionRepository(ctrl)
	tracking := mock.NewMockTrackingAdapter(ctrl)

	playlists.EXPECT().GetPlaylist(gomock.Any(), "pl").Return(models.PlaylistDetails{Playlist: models.Playlist{
		ID: "pl", Kind: models.KindReviewSession, SyncState: models.SyncStateSynced, RemoteID: strPtr("r"),
	}}, nil)
	versions.EXPECT().GetVersionStates(gomock.Any(), "pl").Return(nil, errors.New("db is gone")).MinTimes(1)

	storages := &store.ClientStorages{Playlists: playlists, Versions: versions}
	c := newTestPoller(t, storages, tracking, nil, time.Hour)

	require.NoError(t, c.Start(testContext(), "pl", nil))
	c.tick(testContext(), currentGeneration(c))

	_, ok := c.Pending()
	assert.False(t, ok)
}
