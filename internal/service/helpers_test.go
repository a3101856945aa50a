package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newTestStorages opens a private in-memory SQLite database with the schema
// applied and attachments stored in a temp dir.
func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.ClientStorage{
		DB:    config.ClientDB{DSN: fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)},
		Files: config.ClientFiles{AttachmentDir: t.TempDir()},
	}

	s, err := store.NewClientStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func seedRemotePlaylist(t *testing.T, s *store.ClientStorages, id string, versionIDs ...string) {
	t.Helper()
	ctx := testContext()

	require.NoError(t, s.Playlists.CreatePlaylist(ctx, models.Playlist{
		ID:        id,
		Name:      "Dailies " + id,
		Kind:      models.KindReviewSession,
		SyncState: models.SyncStateSynced,
		RemoteID:  strPtr("remote-" + id),
	}))

	versions := make([]models.Version, 0, len(versionIDs))
	for _, v := range versionIDs {
		versions = append(versions, models.Version{PlaylistID: id, VersionID: v, Name: "shot_" + v, Revision: 1})
	}
	require.NoError(t, s.Versions.AddVersions(ctx, id, versions...))
}

func remoteVersions(ids ...string) []models.RemoteVersion {
	out := make([]models.RemoteVersion, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.RemoteVersion{ID: id, Name: "shot_" + id, Revision: 1})
	}
	return out
}

func activeIDs(t *testing.T, s *store.ClientStorages, playlistID string) []string {
	t.Helper()
	vs, err := s.Versions.GetActiveVersions(testContext(), playlistID)
	require.NoError(t, err)
	return versionIDs(vs)
}

func removedIDs(t *testing.T, s *store.ClientStorages, playlistID string) []string {
	t.Helper()
	vs, err := s.Versions.GetRemovedVersions(testContext(), playlistID)
	require.NoError(t, err)
	return versionIDs(vs)
}

func versionIDs(vs []models.Version) []string {
	ids := make([]string, 0, len(vs))
	for _, v := range vs {
		ids = append(ids, v.VersionID)
	}
	return ids
}

// waitEvent returns the next event of type typ or fails after a second.
func waitEvent(t *testing.T, ch chan events.Event, typ events.Type) events.Event {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case ev := <-ch:
			if ev.Type == typ {
				return ev
			}
		case <-deadline:
			t.Fatalf("timeout waiting for %s", typ)
			return events.Event{}
		}
	}
}

// noEvent asserts that no event of type typ arrives within d.
func noEvent(t *testing.T, ch chan events.Event, typ events.Type, d time.Duration) {
	t.Helper()
	deadline := time.After(d)
	for {
		select {
		case ev := <-ch:
			if ev.Type == typ {
				t.Fatalf("unexpected %s event", typ)
			}
		case <-deadline:
			return
		}
	}
}
