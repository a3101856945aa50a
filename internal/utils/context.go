// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, content
// checksums, HTTP response writing, HTTP client initialization, and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PlaylistIDCtxKey is the key used to store the playlist identifier of the
// current request in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.PlaylistIDCtxKey, "pl-1")
var PlaylistIDCtxKey = contextKey("playlistID")

// GetPlaylistIDFromContext retrieves the playlist identifier from the context.
//
// Returns the playlist ID and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetPlaylistIDFromContext(ctx context.Context) (string, bool) {
	playlistID, ok := ctx.Value(PlaylistIDCtxKey).(string)
	return playlistID, ok && playlistID != ""
}
