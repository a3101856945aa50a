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

// draftRepository is the SQLite-backed implementation of [DraftRepository].
// A draft's attachment list is read from "attachments": the rows of the same
// (playlist, version) that are not yet linked to a published note.
type draftRepository struct {
	*DB
	logger *logger.Logger
}

// NewDraftRepository constructs a [DraftRepository] backed by db.
func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{
		DB:     db,
		logger: logger,
	}
}

// GetDraft returns the draft of (playlistID, versionID). A missing row
// yields an empty draft, not an error.
func (r *draftRepository) GetDraft(ctx context.Context, playlistID, versionID string) (models.Draft, error) {
	log := logger.FromContext(ctx)

	var draft models.Draft
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		d, err := scanDraft(tx.QueryRowContext(ctx, getDraft, playlistID, versionID))
		if errors.Is(err, ErrNotFound) {
			d = models.Draft{PlaylistID: playlistID, VersionID: versionID}
		} else if err != nil {
			return err
		}

		d.Attachments, err = queryAttachments(ctx, tx, listPendingAttachments, playlistID, versionID)
		if err != nil {
			return err
		}

		draft = d
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.GetDraft").
			Str("playlist_id", playlistID).
			Str("version_id", versionID).
			Msg("failed to get draft")
		return models.Draft{}, err
	}

	return draft, nil
}

// ListDrafts returns every stored draft of playlistID with its attachments.
func (r *draftRepository) ListDrafts(ctx context.Context, playlistID string) ([]models.Draft, error) {
	log := logger.FromContext(ctx)

	drafts := make([]models.Draft, 0)
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, listDrafts, playlistID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		for rows.Next() {
			d, scanErr := scanDraft(rows)
			if scanErr != nil {
				rows.Close()
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			drafts = append(drafts, d)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			rows.Close()
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		rows.Close()

		for i := range drafts {
			drafts[i].Attachments, err = queryAttachments(ctx, tx, listPendingAttachments, playlistID, drafts[i].VersionID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.ListDrafts").
			Str("playlist_id", playlistID).
			Msg("failed to list drafts")
		return nil, err
	}

	return drafts, nil
}

// UpsertDraft stores content, label and publish state of d, rewrites the
// position of d.Attachments to their slice order and deletes the dropped
// attachment rows.
func (r *draftRepository) UpsertDraft(ctx context.Context, d models.Draft, dropped ...string) error {
	log := logger.FromContext(ctx)

	updatedAt := d.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	err := r.inPlaylistTx(ctx, d.PlaylistID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, upsertDraft,
			d.PlaylistID,
			d.VersionID,
			d.Content,
			d.LabelID,
			d.Published,
			d.PublishedNoteID,
			updatedAt.UTC(),
		)
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: version %s of playlist %s", ErrNotFound, d.VersionID, d.PlaylistID)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for pos, a := range d.Attachments {
			if _, err := tx.ExecContext(ctx, setAttachmentPosition, pos, a.ID, d.PlaylistID, d.VersionID); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return deletePendingAttachments(ctx, tx, d.PlaylistID, d.VersionID, dropped)
	})
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.UpsertDraft").
			Str("playlist_id", d.PlaylistID).
			Str("version_id", d.VersionID).
			Msg("failed to upsert draft")
		return err
	}

	log.Debug().
		Str("func", "draftRepository.UpsertDraft").
		Str("playlist_id", d.PlaylistID).
		Str("version_id", d.VersionID).
		Str("status", string(d.Status())).
		Msg("draft saved")
	return nil
}

// MarkPublished flags the draft published and links its pending attachments
// to noteID in one transaction.
func (r *draftRepository) MarkPublished(ctx context.Context, playlistID, versionID, noteID string) error {
	log := logger.FromContext(ctx)

	err := r.inPlaylistTx(ctx, playlistID, func(tx *sql.Tx) error {
		if err := execAffectingOne(ctx, tx, markDraftPublished, noteID, time.Now().UTC(), playlistID, versionID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, linkAttachmentsToNote, noteID, playlistID, versionID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.MarkPublished").
			Str("playlist_id", playlistID).
			Str("version_id", versionID).
			Msg("failed to mark draft published")
		return err
	}

	log.Info().
		Str("func", "draftRepository.MarkPublished").
		Str("playlist_id", playlistID).
		Str("version_id", versionID).
		Str("note_id", noteID).
		Msg("draft published")
	return nil
}

// ClearDraft resets content, label and publish state and deletes the
// dropped attachment rows. The row and the version record stay; attachment
// files are removed by the caller.
func (r *draftRepository) ClearDraft(ctx context.Context, playlistID, versionID string, dropped ...string) error {
	log := logger.FromContext(ctx)

	err := r.inPlaylistTx(ctx, playlistID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, clearDraft, time.Now().UTC(), playlistID, versionID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return deletePendingAttachments(ctx, tx, playlistID, versionID, dropped)
	})
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.ClearDraft").
			Str("playlist_id", playlistID).
			Str("version_id", versionID).
			Msg("failed to clear draft")
		return err
	}

	return nil
}

func deletePendingAttachments(ctx context.Context, tx *sql.Tx, playlistID, versionID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildDeletePendingAttachmentsQuery(playlistID, versionID, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func scanDraft(row rowScanner) (models.Draft, error) {
	var d models.Draft
	err := row.Scan(
		&d.PlaylistID,
		&d.VersionID,
		&d.Content,
		&d.LabelID,
		&d.Published,
		&d.PublishedNoteID,
		&d.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Draft{}, ErrNotFound
	}
	if err != nil {
		return models.Draft{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return d, nil
}
