package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/models"
)

// playlistRepository is the SQLite-backed implementation of
// [PlaylistRepository]. Playlist rows live in "playlists"; GetPlaylist also
// reads the active records from "versions".
type playlistRepository struct {
	*DB
	logger *logger.Logger
}

// NewPlaylistRepository constructs a [PlaylistRepository] backed by db.
func NewPlaylistRepository(db *DB, logger *logger.Logger) PlaylistRepository {
	return &playlistRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePlaylist inserts p. An existing id yields [ErrDuplicateID].
func (r *playlistRepository) CreatePlaylist(ctx context.Context, p models.Playlist) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	err := r.inPlaylistTx(ctx, p.ID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, createPlaylist,
			p.ID,
			p.Name,
			p.Kind,
			p.SyncState,
			p.RemoteID,
			p.DeletedUpstream,
			p.CreatedAt.UTC(),
			p.UpdatedAt.UTC(),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: playlist %s", ErrDuplicateID, p.ID)
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "playlistRepository.CreatePlaylist").
			Str("playlist_id", p.ID).
			Msg("failed to create playlist")
		return err
	}

	log.Debug().
		Str("func", "playlistRepository.CreatePlaylist").
		Str("playlist_id", p.ID).
		Str("kind", string(p.Kind)).
		Msg("playlist created")

	return nil
}

// GetPlaylist returns the playlist with its active versions ordered by name
// then revision.
func (r *playlistRepository) GetPlaylist(ctx context.Context, id string) (models.PlaylistDetails, error) {
	log := logger.FromContext(ctx)

	var details models.PlaylistDetails
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		p, err := scanPlaylist(tx.QueryRowContext(ctx, getPlaylist, id))
		if err != nil {
			return err
		}

		versions, err := queryVersions(ctx, tx, getActiveVersions, id)
		if err != nil {
			return err
		}

		details = models.PlaylistDetails{Playlist: p, Versions: versions}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).
				Str("func", "playlistRepository.GetPlaylist").
				Str("playlist_id", id).
				Msg("failed to get playlist")
		}
		return models.PlaylistDetails{}, err
	}

	return details, nil
}

// ListPlaylists returns every playlist, Quick Notes first.
func (r *playlistRepository) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listPlaylists)
	if err != nil {
		log.Err(err).
			Str("func", "playlistRepository.ListPlaylists").
			Msg("failed to execute query for listing playlists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	playlists := make([]models.Playlist, 0)
	for rows.Next() {
		p, scanErr := scanPlaylist(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "playlistRepository.ListPlaylists").
				Msg("failed to scan playlist row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		playlists = append(playlists, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "playlistRepository.ListPlaylists").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return playlists, nil
}

// UpdateSyncState sets the sync state of playlist id. Quick Notes only
// accepts local-only.
func (r *playlistRepository) UpdateSyncState(ctx context.Context, id string, state models.SyncState) error {
	log := logger.FromContext(ctx)

	if id == models.QuickNotesPlaylistID && state != models.SyncStateLocalOnly {
		log.Warn().
			Str("func", "playlistRepository.UpdateSyncState").
			Str("state", string(state)).
			Msg("refusing to change quick notes sync state")
		return ErrQuickNotesLocalOnly
	}

	err := r.inPlaylistTx(ctx, id, func(tx *sql.Tx) error {
		return execAffectingOne(ctx, tx, updateSyncState, state, time.Now().UTC(), id)
	})
	if err != nil {
		log.Err(err).
			Str("func", "playlistRepository.UpdateSyncState").
			Str("playlist_id", id).
			Str("state", string(state)).
			Msg("failed to update sync state")
		return err
	}

	log.Debug().
		Str("func", "playlistRepository.UpdateSyncState").
		Str("playlist_id", id).
		Str("state", string(state)).
		Msg("sync state updated")
	return nil
}

// SetDeletedUpstream sets or clears the deleted-upstream flag.
func (r *playlistRepository) SetDeletedUpstream(ctx context.Context, id string, deleted bool) error {
	log := logger.FromContext(ctx)

	err := r.inPlaylistTx(ctx, id, func(tx *sql.Tx) error {
		return execAffectingOne(ctx, tx, setDeletedUpstream, deleted, time.Now().UTC(), id)
	})
	if err != nil {
		log.Err(err).
			Str("func", "playlistRepository.SetDeletedUpstream").
			Str("playlist_id", id).
			Bool("deleted", deleted).
			Msg("failed to update deleted upstream flag")
		return err
	}

	return nil
}

// execAffectingOne executes query and maps zero affected rows to ErrNotFound.
func execAffectingOne(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlaylist(row rowScanner) (models.Playlist, error) {
	var p models.Playlist
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Kind,
		&p.SyncState,
		&p.RemoteID,
		&p.DeletedUpstream,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Playlist{}, ErrNotFound
	}
	if err != nil {
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return p, nil
}
