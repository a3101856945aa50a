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

// attachmentRepository is the SQLite-backed implementation of
// [AttachmentRepository]. It stores metadata only; content lives in
// [AttachmentFileStorage].
type attachmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewAttachmentRepository constructs an [AttachmentRepository] backed by db.
func NewAttachmentRepository(db *DB, logger *logger.Logger) AttachmentRepository {
	return &attachmentRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveAttachment appends a to the end of its draft's attachment list and
// returns the stored record.
func (r *attachmentRepository) SaveAttachment(ctx context.Context, a models.Attachment) (models.Attachment, error) {
	log := logger.FromContext(ctx)

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	err := r.inPlaylistTx(ctx, a.PlaylistID, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, nextAttachmentPosition, a.PlaylistID, a.VersionID).Scan(&a.Position); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		_, err := tx.ExecContext(ctx, saveAttachment,
			a.ID,
			a.VersionID,
			a.PlaylistID,
			a.NoteID,
			a.Name,
			a.MIMEType,
			a.Size,
			a.Checksum,
			a.Position,
			a.StoragePath,
			a.CreatedAt.UTC(),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: attachment %s", ErrDuplicateID, a.ID)
			}
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: version %s of playlist %s", ErrNotFound, a.VersionID, a.PlaylistID)
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.SaveAttachment").
			Str("playlist_id", a.PlaylistID).
			Str("version_id", a.VersionID).
			Str("attachment_id", a.ID).
			Msg("failed to save attachment")
		return models.Attachment{}, err
	}

	return a, nil
}

// GetAttachment returns the attachment with id or [ErrNotFound].
func (r *attachmentRepository) GetAttachment(ctx context.Context, id string) (models.Attachment, error) {
	a, err := scanAttachment(r.DB.QueryRowContext(ctx, getAttachment, id))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "attachmentRepository.GetAttachment").
				Str("attachment_id", id).
				Msg("failed to get attachment")
		}
		return models.Attachment{}, err
	}
	return a, nil
}

// GetAttachments returns the attachments among ids that exist.
func (r *attachmentRepository) GetAttachments(ctx context.Context, ids ...string) ([]models.Attachment, error) {
	if len(ids) == 0 {
		return []models.Attachment{}, nil
	}

	query, args, err := buildSelectAttachmentsQuery(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	attachments, err := queryAttachments(ctx, r.DB, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "attachmentRepository.GetAttachments").
			Int("ids_count", len(ids)).
			Msg("failed to get attachments")
		return nil, err
	}
	return attachments, nil
}

// ListAttachments returns the unpublished attachments of a draft in order.
func (r *attachmentRepository) ListAttachments(ctx context.Context, playlistID, versionID string) ([]models.Attachment, error) {
	attachments, err := queryAttachments(ctx, r.DB, listPendingAttachments, playlistID, versionID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "attachmentRepository.ListAttachments").
			Str("playlist_id", playlistID).
			Str("version_id", versionID).
			Msg("failed to list attachments")
		return nil, err
	}
	return attachments, nil
}

// DeleteAttachments removes the metadata rows of ids and returns how many
// were deleted.
func (r *attachmentRepository) DeleteAttachments(ctx context.Context, ids ...string) (int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := buildDeleteAttachmentsQuery(ids)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		deleted, execErr = res.RowsAffected()
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.DeleteAttachments").
			Int("ids_count", len(ids)).
			Msg("failed to delete attachments")
		return 0, err
	}

	log.Debug().
		Str("func", "attachmentRepository.DeleteAttachments").
		Int64("deleted", deleted).
		Msg("attachments deleted")
	return deleted, nil
}

func scanAttachment(row rowScanner) (models.Attachment, error) {
	var a models.Attachment
	err := row.Scan(
		&a.ID,
		&a.VersionID,
		&a.PlaylistID,
		&a.NoteID,
		&a.Name,
		&a.MIMEType,
		&a.Size,
		&a.Checksum,
		&a.Position,
		&a.StoragePath,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Attachment{}, ErrNotFound
	}
	if err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return a, nil
}

func queryAttachments(ctx context.Context, q queryer, query string, args ...any) ([]models.Attachment, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	attachments := make([]models.Attachment, 0)
	for rows.Next() {
		a, scanErr := scanAttachment(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		attachments = append(attachments, a)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return attachments, nil
}
