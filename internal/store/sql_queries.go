package store

import (
	"time"

	"github.com/MKhiriev/go-review-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createPlaylist = `
		INSERT INTO playlists (
			id,
			name,
			kind,
			sync_state,
			remote_id,
			deleted_upstream,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	getPlaylist = `
		SELECT
			id,
			name,
			kind,
			sync_state,
			remote_id,
			deleted_upstream,
			created_at,
			updated_at
		FROM playlists
		WHERE id = ?;`

	listPlaylists = `
		SELECT
			id,
			name,
			kind,
			sync_state,
			remote_id,
			deleted_upstream,
			created_at,
			updated_at
		FROM playlists
		ORDER BY kind = 'quick-notes' DESC, name, id;`

	updateSyncState = `
		UPDATE playlists
		SET sync_state = ?, updated_at = ?
		WHERE id = ?;`

	setDeletedUpstream = `
		UPDATE playlists
		SET deleted_upstream = ?, updated_at = ?
		WHERE id = ?;`

	// upsertVersion reactivates tombstones and refreshes remote attributes.
	// An active record keeps its manually_added flag, a reactivated one takes
	// the flag of the incoming row.
	upsertVersion = `
		INSERT INTO versions (
			playlist_id,
			version_id,
			name,
			revision,
			thumbnail_url,
			manually_added,
			removed,
			removed_at,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, 0, NULL, ?, ?)
		ON CONFLICT (playlist_id, version_id) DO UPDATE SET
			name           = excluded.name,
			revision       = excluded.revision,
			thumbnail_url  = excluded.thumbnail_url,
			manually_added = CASE WHEN versions.removed = 1
			                      THEN excluded.manually_added
			                      ELSE versions.manually_added END,
			removed        = 0,
			removed_at     = NULL,
			updated_at     = excluded.updated_at;`

	selectVersionColumns = `
		SELECT
			playlist_id,
			version_id,
			name,
			revision,
			thumbnail_url,
			manually_added,
			removed,
			removed_at,
			created_at,
			updated_at
		FROM versions`

	getActiveVersions = selectVersionColumns + `
		WHERE playlist_id = ? AND removed = 0
		ORDER BY name, revision, version_id;`

	getRemovedVersions = selectVersionColumns + `
		WHERE playlist_id = ? AND removed = 1
		ORDER BY removed_at DESC, name, revision, version_id;`

	getVersionStates = `
		SELECT version_id, manually_added
		FROM versions
		WHERE playlist_id = ? AND removed = 0
		ORDER BY version_id;`

	// tombstoneUnreferenced matches tombstones older than the cutoff that no
	// attachment points at and whose draft, if any, holds nothing: no
	// content, no label and no publish record.
	tombstoneUnreferenced = `
		v.removed = 1
		AND v.removed_at < ?
		AND NOT EXISTS (
			SELECT 1 FROM drafts d
			WHERE d.playlist_id = v.playlist_id AND d.version_id = v.version_id
			  AND (TRIM(d.content) <> '' OR d.label_id IS NOT NULL OR d.published = 1))
		AND NOT EXISTS (
			SELECT 1 FROM attachments a
			WHERE a.playlist_id = v.playlist_id AND a.version_id = v.version_id)`

	purgeEmptyDraftsOfTombstones = `
		DELETE FROM drafts
		WHERE EXISTS (
			SELECT 1 FROM versions v
			WHERE v.playlist_id = drafts.playlist_id AND v.version_id = drafts.version_id
			  AND ` + tombstoneUnreferenced + `);`

	purgeTombstones = `
		DELETE FROM versions
		WHERE EXISTS (
			SELECT 1 FROM versions v
			WHERE v.playlist_id = versions.playlist_id AND v.version_id = versions.version_id
			  AND ` + tombstoneUnreferenced + `);`

	getDraft = `
		SELECT
			playlist_id,
			version_id,
			content,
			label_id,
			published,
			published_note_id,
			updated_at
		FROM drafts
		WHERE playlist_id = ? AND version_id = ?;`

	listDrafts = `
		SELECT
			playlist_id,
			version_id,
			content,
			label_id,
			published,
			published_note_id,
			updated_at
		FROM drafts
		WHERE playlist_id = ?
		ORDER BY version_id;`

	upsertDraft = `
		INSERT INTO drafts (
			playlist_id,
			version_id,
			content,
			label_id,
			published,
			published_note_id,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (playlist_id, version_id) DO UPDATE SET
			content           = excluded.content,
			label_id          = excluded.label_id,
			published         = excluded.published,
			published_note_id = excluded.published_note_id,
			updated_at        = excluded.updated_at;`

	markDraftPublished = `
		UPDATE drafts
		SET published = 1, published_note_id = ?, updated_at = ?
		WHERE playlist_id = ? AND version_id = ?;`

	linkAttachmentsToNote = `
		UPDATE attachments
		SET note_id = ?
		WHERE playlist_id = ? AND version_id = ? AND note_id IS NULL;`

	clearDraft = `
		UPDATE drafts
		SET content = '', label_id = NULL, published = 0, published_note_id = NULL, updated_at = ?
		WHERE playlist_id = ? AND version_id = ?;`

	saveAttachment = `
		INSERT INTO attachments (
			id,
			version_id,
			playlist_id,
			note_id,
			name,
			mime_type,
			size,
			checksum,
			position,
			storage_path,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectAttachmentColumns = `
		SELECT
			id,
			version_id,
			playlist_id,
			note_id,
			name,
			mime_type,
			size,
			checksum,
			position,
			storage_path,
			created_at
		FROM attachments`

	getAttachment = selectAttachmentColumns + `
		WHERE id = ?;`

	// pending attachments belong to the current draft, published ones are
	// linked to a note
	listPendingAttachments = selectAttachmentColumns + `
		WHERE playlist_id = ? AND version_id = ? AND note_id IS NULL
		ORDER BY position, created_at, id;`

	nextAttachmentPosition = `
		SELECT COALESCE(MAX(position) + 1, 0)
		FROM attachments
		WHERE playlist_id = ? AND version_id = ? AND note_id IS NULL;`

	setAttachmentPosition = `
		UPDATE attachments
		SET position = ?
		WHERE id = ? AND playlist_id = ? AND version_id = ?;`
)

// buildSoftRemoveQuery builds the tombstoning UPDATE for ids of playlistID.
// Only active records are touched so repeated calls report zero affected rows.
func buildSoftRemoveQuery(playlistID string, ids []string, opts models.RemoveOptions, now time.Time) (string, []any, error) {
	q := sq.Update("versions").
		Set("removed", true).
		Set("removed_at", now).
		Set("updated_at", now).
		Where(sq.Eq{"playlist_id": playlistID}).
		Where(sq.Eq{"version_id": ids}).
		Where(sq.Eq{"removed": false})

	if opts.OnlyManuallyAdded {
		q = q.Where(sq.Eq{"manually_added": true})
	}

	return q.PlaceholderFormat(sq.Question).ToSql()
}

// buildDeleteAttachmentsQuery builds a DELETE for the given attachment ids.
func buildDeleteAttachmentsQuery(ids []string) (string, []any, error) {
	return sq.Delete("attachments").
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildDeletePendingAttachmentsQuery builds a DELETE for ids of one draft.
// Attachments already linked to a published note are never matched.
func buildDeletePendingAttachmentsQuery(playlistID, versionID string, ids []string) (string, []any, error) {
	return sq.Delete("attachments").
		Where(sq.Eq{"id": ids, "playlist_id": playlistID, "version_id": versionID}).
		Where(sq.Eq{"note_id": nil}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildSelectAttachmentsQuery builds a SELECT for the given attachment ids.
func buildSelectAttachmentsQuery(ids []string) (string, []any, error) {
	return sq.Select(
		"id", "version_id", "playlist_id", "note_id", "name", "mime_type",
		"size", "checksum", "position", "storage_path", "created_at",
	).
		From("attachments").
		Where(sq.Eq{"id": ids}).
		OrderBy("position", "id").
		PlaceholderFormat(sq.Question).
		ToSql()
}
