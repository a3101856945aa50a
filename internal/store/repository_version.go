package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/models"
)

// versionRepository is the SQLite-backed implementation of
// [VersionRepository]. Records are tombstoned, never erased, except by
// [versionRepository.PurgeTombstones] for unreferenced tombstones past the
// retention cutoff.
//
// Every write for a playlist runs in one transaction under that playlist's
// lock, so a failure leaves no record half added and half removed.
type versionRepository struct {
	*DB
	logger *logger.Logger
}

// NewVersionRepository constructs a [VersionRepository] backed by db.
func NewVersionRepository(db *DB, logger *logger.Logger) VersionRepository {
	return &versionRepository{
		DB:     db,
		logger: logger,
	}
}

// AddVersions inserts new records and reactivates tombstones. Re-adding an
// active record refreshes its name, revision and thumbnail and keeps its
// manually-added flag.
func (r *versionRepository) AddVersions(ctx context.Context, playlistID string, versions ...models.Version) error {
	log := logger.FromContext(ctx)

	if len(versions) == 0 {
		return nil
	}

	now := time.Now().UTC()
	err := r.inPlaylistTx(ctx, playlistID, func(tx *sql.Tx) error {
		for idx, v := range versions {
			createdAt := v.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}

			_, err := tx.ExecContext(ctx, upsertVersion,
				playlistID,
				v.VersionID,
				v.Name,
				v.Revision,
				v.ThumbnailURL,
				v.ManuallyAdded,
				createdAt.UTC(),
				now,
			)
			if err != nil {
				log.Err(err).
					Str("func", "versionRepository.AddVersions").
					Str("playlist_id", playlistID).
					Str("version_id", v.VersionID).
					Int("iteration", idx+1).
					Msg("failed to upsert version")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Debug().
		Str("func", "versionRepository.AddVersions").
		Str("playlist_id", playlistID).
		Int("count", len(versions)).
		Msg("versions added")
	return nil
}

// SoftRemoveVersions tombstones the active records among ids and returns how
// many were removed. Drafts and attachments are left untouched.
func (r *versionRepository) SoftRemoveVersions(ctx context.Context, playlistID string, ids []string, opts models.RemoveOptions) (int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := buildSoftRemoveQuery(playlistID, ids, opts, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "versionRepository.SoftRemoveVersions").
			Str("playlist_id", playlistID).
			Msg("failed to build soft remove query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.inPlaylistTx(ctx, playlistID, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		affected, execErr = res.RowsAffected()
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "versionRepository.SoftRemoveVersions").
			Str("playlist_id", playlistID).
			Int("ids_count", len(ids)).
			Msg("failed to soft remove versions")
		return 0, err
	}

	log.Debug().
		Str("func", "versionRepository.SoftRemoveVersions").
		Str("playlist_id", playlistID).
		Int64("removed", affected).
		Bool("only_manually_added", opts.OnlyManuallyAdded).
		Msg("versions soft removed")
	return affected, nil
}

// GetActiveVersions returns non-removed records ordered by name then revision.
func (r *versionRepository) GetActiveVersions(ctx context.Context, playlistID string) ([]models.Version, error) {
	versions, err := queryVersions(ctx, r.DB, getActiveVersions, playlistID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "versionRepository.GetActiveVersions").
			Str("playlist_id", playlistID).
			Msg("failed to get active versions")
		return nil, err
	}
	return versions, nil
}

// GetRemovedVersions returns the tombstones of playlistID, newest first.
func (r *versionRepository) GetRemovedVersions(ctx context.Context, playlistID string) ([]models.Version, error) {
	versions, err := queryVersions(ctx, r.DB, getRemovedVersions, playlistID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "versionRepository.GetRemovedVersions").
			Str("playlist_id", playlistID).
			Msg("failed to get removed versions")
		return nil, err
	}
	return versions, nil
}

// GetVersionStates returns the diff descriptors of the active records.
func (r *versionRepository) GetVersionStates(ctx context.Context, playlistID string) ([]models.VersionState, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getVersionStates, playlistID)
	if err != nil {
		log.Err(err).
			Str("func", "versionRepository.GetVersionStates").
			Str("playlist_id", playlistID).
			Msg("failed to execute query for version states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.VersionState, 0)
	for rows.Next() {
		var s models.VersionState
		if scanErr := rows.Scan(&s.VersionID, &s.ManuallyAdded); scanErr != nil {
			log.Err(scanErr).
				Str("func", "versionRepository.GetVersionStates").
				Str("playlist_id", playlistID).
				Msg("failed to scan version state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		states = append(states, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return states, nil
}

// PurgeTombstones hard-deletes tombstones removed before olderThan that no
// non-empty draft and no attachment references. Empty drafts of purged
// records go with them.
func (r *versionRepository) PurgeTombstones(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	cutoff := olderThan.UTC()
	var purged int64
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, purgeEmptyDraftsOfTombstones, cutoff); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		res, err := tx.ExecContext(ctx, purgeTombstones, cutoff)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		purged, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "versionRepository.PurgeTombstones").
			Time("older_than", cutoff).
			Msg("failed to purge tombstones")
		return 0, err
	}

	log.Info().
		Str("func", "versionRepository.PurgeTombstones").
		Time("older_than", cutoff).
		Int64("purged", purged).
		Msg("tombstones purged")
	return purged, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryVersions(ctx context.Context, q queryer, query string, args ...any) ([]models.Version, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	versions := make([]models.Version, 0)
	for rows.Next() {
		var v models.Version
		scanErr := rows.Scan(
			&v.PlaylistID,
			&v.VersionID,
			&v.Name,
			&v.Revision,
			&v.ThumbnailURL,
			&v.ManuallyAdded,
			&v.Removed,
			&v.RemovedAt,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		versions = append(versions, v)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return versions, nil
}
