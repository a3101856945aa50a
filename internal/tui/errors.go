// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/service"
	"github.com/MKhiriev/go-review-keeper/internal/store"
)

// humanizeError turns service errors into a line fit for the status bar.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrTransientFetch), errors.Is(err, adapter.ErrUnavailable):
		return "Tracking service is unavailable, try again later"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Tracking service rejected the credentials"
	case errors.Is(err, service.ErrNoPendingChanges):
		return "Nothing to apply"
	case errors.Is(err, service.ErrPlaylistNotPollable):
		return "This playlist is not synced with the tracking service"
	case errors.Is(err, service.ErrEmptyDraft):
		return "Draft is empty"
	case errors.Is(err, service.ErrAlreadyPublished):
		return "Draft is already published"
	case errors.Is(err, store.ErrDuplicateID):
		return "Playlist is already imported"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"
	case errors.Is(err, service.ErrPersistence):
		return "Could not save to the local cache"
	}
	return err.Error()
}
