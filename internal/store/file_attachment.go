package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/models"
)

// attachmentFileStorage is the default implementation of
// [AttachmentFileStorage]. It keeps attachment bytes outside the database
// under <root>/<playlist id>/<version id>/<attachment id> so that SQLite
// only holds lightweight metadata.
type attachmentFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewAttachmentFileStorage constructs an [AttachmentFileStorage] rooted at
// dir. The directory is created on first write.
func NewAttachmentFileStorage(dir string, logger *logger.Logger) AttachmentFileStorage {
	return &attachmentFileStorage{
		root:   dir,
		logger: logger,
	}
}

// Save writes data for a and returns the path it was stored under. The file
// is written to a temporary name first and renamed, so a crash never leaves
// a truncated attachment behind.
func (s *attachmentFileStorage) Save(ctx context.Context, a models.Attachment, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, safeSegment(a.PlaylistID), safeSegment(a.VersionID))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Err(err).
			Str("func", "attachmentFileStorage.Save").
			Str("dir", dir).
			Msg("failed to create attachment directory")
		return "", fmt.Errorf("error creating attachment directory: %w", err)
	}

	path := filepath.Join(dir, safeSegment(a.ID))
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("error creating attachment file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("error writing attachment file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("error closing attachment file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("error moving attachment file: %w", err)
	}

	log.Debug().
		Str("func", "attachmentFileStorage.Save").
		Str("attachment_id", a.ID).
		Int("size", len(data)).
		Msg("attachment content stored")

	return path, nil
}

// Open returns a reader over the stored content. A missing file yields
// [ErrNotFound].
func (s *attachmentFileStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := s.checkPath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error opening attachment file: %w", err)
	}
	return f, nil
}

// Remove deletes the stored content. Removing a missing file is not an
// error.
func (s *attachmentFileStorage) Remove(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := s.checkPath(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "attachmentFileStorage.Remove").
			Str("path", path).
			Msg("failed to remove attachment file")
		return fmt.Errorf("error removing attachment file: %w", err)
	}
	return nil
}

// checkPath rejects paths outside the storage root.
func (s *attachmentFileStorage) checkPath(path string) error {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("attachment path %q is outside of %q", path, s.root)
	}
	return nil
}

// safeSegment makes an id usable as a single path element.
func safeSegment(id string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	s := r.Replace(id)
	if s == "" || s == "." {
		return "_"
	}
	return s
}
