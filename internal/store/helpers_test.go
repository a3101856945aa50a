package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newSQLiteStorages opens a private in-memory database with the schema
// applied.
func newSQLiteStorages(t *testing.T) *ClientStorages {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := NewConnectSQLite(testContext(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	s := newClientStorages(db, t.TempDir(), logger.Nop())
	t.Cleanup(func() { s.Close() })
	return s
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return newDBFromSQL(conn), mock
}

// newDBFromSQL wraps an existing *sql.DB (for tests).
func newDBFromSQL(conn *sql.DB) *DB {
	return newDB(conn, logger.Nop())
}

func ptr[T any](v T) *T { return &v }

func remotePlaylist(id string) models.Playlist {
	return models.Playlist{
		ID:        id,
		Name:      "Dailies " + id,
		Kind:      models.KindReviewSession,
		SyncState: models.SyncStateSynced,
		RemoteID:  ptr("remote-" + id),
	}
}

func version(playlistID, id, name string, revision int) models.Version {
	return models.Version{PlaylistID: playlistID, VersionID: id, Name: name, Revision: revision}
}

func versionIDs(vs []models.Version) []string {
	ids := make([]string, 0, len(vs))
	for _, v := range vs {
		ids = append(ids, v.VersionID)
	}
	return ids
}
