// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-level errors produced before the service layer is reached.
var (
	// ErrEmptyPlaylistID is returned when the {playlistID} path segment is
	// blank.
	ErrEmptyPlaylistID = errors.New("empty playlist id")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrChecksumMismatch is returned when the X-Content-Checksum header does
	// not match the uploaded bytes.
	ErrChecksumMismatch = errors.New("content checksum mismatch")

	// ErrStreamingUnsupported is returned when the response writer cannot be
	// flushed, so server-sent events cannot be delivered.
	ErrStreamingUnsupported = errors.New("streaming unsupported")
)
