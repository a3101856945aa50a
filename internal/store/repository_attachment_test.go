package store

import (
	"errors"
	"regexp"
	"testing"

	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentRepository_SaveAndGet(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	seedPlaylist(t, s, "pl", version("pl", "v1", "a", 1))

	saved, err := s.Attachments.SaveAttachment(ctx, attachment("a", "pl", "v1"))
	require.NoError(t, err)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.Attachments.GetAttachment(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a.png", got.Name)
	assert.Equal(t, "image/png", got.MIMEType)
	assert.EqualValues(t, 4, got.Size)
	assert.Equal(t, "sum-a", got.Checksum)
	assert.Nil(t, got.NoteID)
}

func TestAttachmentRepository_DuplicateID(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	seedPlaylist(t, s, "pl", version("pl", "v1", "a", 1))

	_, err := s.Attachments.SaveAttachment(ctx, attachment("a", "pl", "v1"))
	require.NoError(t, err)
	_, err = s.Attachments.SaveAttachment(ctx, attachment("a", "pl", "v1"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestAttachmentRepository_SaveRejectsUnknownVersion(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	seedPlaylist(t, s, "pl", version("pl", "v1", "a", 1))

	_, err := s.Attachments.SaveAttachment(ctx, attachment("a", "pl", "no-such-version"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Attachments.GetAttachment(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttachmentRepository_GetMissing(t *testing.T) {
	s := newSQLiteStorages(t)

	_, err := s.Attachments.GetAttachment(testContext(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttachmentRepository_ListGetDelete(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	seedPlaylist(t, s, "pl", version("pl", "v1", "a", 1), version("pl", "v2", "b", 1))

	for _, a := range []models.Attachment{
		attachment("a", "pl", "v1"),
		attachment("b", "pl", "v1"),
		attachment("c", "pl", "v2"),
	} {
		_, err := s.Attachments.SaveAttachment(ctx, a)
		require.NoError(t, err)
	}

	listed, err := s.Attachments.ListAttachments(ctx, "pl", "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, models.Draft{Attachments: listed}.AttachmentIDs())

	got, err := s.Attachments.GetAttachments(ctx, "c", "a", "missing")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	n, err := s.Attachments.DeleteAttachments(ctx, "a", "c", "missing")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	listed, err = s.Attachments.ListAttachments(ctx, "pl", "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, models.Draft{Attachments: listed}.AttachmentIDs())
}

func TestAttachmentRepository_EmptyIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttachmentRepository(db, db.logger)

	got, err := repo.GetAttachments(testContext())
	require.NoError(t, err)
	assert.Empty(t, got)

	n, err := repo.DeleteAttachments(testContext())
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentRepository_ListQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttachmentRepository(db, db.logger)

	mock.ExpectQuery(regexp.QuoteMeta("FROM attachments")).WillReturnError(errors.New("boom"))

	_, err := repo.ListAttachments(testContext(), "pl", "v1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}
