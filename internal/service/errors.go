package service

import "errors"

var (
	// ErrTransientFetch wraps remote failures surfaced by a direct refresh.
	// Poll ticks never return it; they log and retry.
	ErrTransientFetch = errors.New("transient fetch error")

	// ErrPersistence wraps local storage failures during apply or refresh.
	// The caller may retry.
	ErrPersistence = errors.New("persistence error")

	ErrNoPendingChanges    = errors.New("no pending changes")
	ErrPlaylistNotPollable = errors.New("playlist cannot be polled")

	ErrEmptyDraft        = errors.New("draft is empty")
	ErrAlreadyPublished  = errors.New("draft is already published")
	ErrInvalidAttachment = errors.New("invalid attachment")
	ErrPreviewNotFound   = errors.New("preview handle not found")
	ErrInvalidPlaylist   = errors.New("invalid playlist")
)
