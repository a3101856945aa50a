package adapter

import "errors"

var (
	// ErrPlaylistNotFound is returned when the tracking service no longer
	// knows the requested playlist (HTTP 404).
	ErrPlaylistNotFound = errors.New("playlist not found in tracking service")

	// ErrUnavailable covers transport failures, throttling and 5xx answers.
	// Callers treat it as transient.
	ErrUnavailable = errors.New("tracking service unavailable")

	ErrUnauthorized = errors.New("client unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("conflict")

	ErrInvalidResponse = errors.New("invalid tracking service response")
)
