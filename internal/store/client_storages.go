package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
)

// ClientStorages groups all client-side storage components into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	Playlists   PlaylistRepository
	Versions    VersionRepository
	Drafts      DraftRepository
	Attachments AttachmentRepository

	// Files keeps attachment bytes under the configured directory.
	Files AttachmentFileStorage

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires every repository to the shared connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, cfg.Files.AttachmentDir, logger), nil
}

func newClientStorages(db *DB, attachmentDir string, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Playlists:   NewPlaylistRepository(db, logger),
		Versions:    NewVersionRepository(db, logger),
		Drafts:      NewDraftRepository(db, logger),
		Attachments: NewAttachmentRepository(db, logger),
		Files:       NewAttachmentFileStorage(attachmentDir, logger),
		db:          db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
