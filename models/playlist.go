// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// QuickNotesPlaylistID is the fixed identifier of the Quick Notes playlist.
// There is exactly one Quick Notes playlist per local database.
const QuickNotesPlaylistID = "quick-notes"

// PlaylistKind defines what a playlist is used for.
type PlaylistKind string

const (
	// KindList is a plain curated list of versions.
	KindList PlaylistKind = "list"

	// KindReviewSession is a playlist mirrored from a review session in the
	// production-tracking service.
	KindReviewSession PlaylistKind = "review-session"

	// KindQuickNotes is the singleton scratch playlist. It is local only and
	// never polled.
	KindQuickNotes PlaylistKind = "quick-notes"
)

// SyncState describes the relationship of a local playlist to its remote
// counterpart.
type SyncState string

const (
	SyncStateLocalOnly   SyncState = "local-only"
	SyncStatePendingSync SyncState = "pending-sync"
	SyncStateSyncing     SyncState = "syncing"
	SyncStateSynced      SyncState = "synced"
	SyncStateSyncFailed  SyncState = "sync-failed"
)

// Playlist is a named collection of asset versions under review.
type Playlist struct {
	// ID is a locally generated UUID for local-only playlists or the remote
	// identifier for synced ones.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Kind is the playlist kind (list, review-session, quick-notes).
	Kind PlaylistKind `json:"kind"`

	// SyncState is the current synchronization state.
	SyncState SyncState `json:"sync_state"`

	// RemoteID is the identifier of the playlist in the tracking service.
	// Nil for local-only playlists.
	RemoteID *string `json:"remote_id,omitempty"`

	// DeletedUpstream is set once the tracking service reports that the
	// remote playlist no longer exists.
	DeletedUpstream bool `json:"deleted_upstream"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsQuickNotes reports whether p is the Quick Notes singleton.
func (p Playlist) IsQuickNotes() bool {
	return p.Kind == KindQuickNotes || p.ID == QuickNotesPlaylistID
}

// Pollable reports whether the playlist may be polled against the tracking
// service. Quick Notes, local-only playlists and playlists without a remote
// id are never polled.
func (p Playlist) Pollable() bool {
	if p.IsQuickNotes() || p.SyncState == SyncStateLocalOnly {
		return false
	}
	return p.RemoteID != nil && *p.RemoteID != ""
}

// PlaylistDetails is a playlist together with its active version records.
type PlaylistDetails struct {
	Playlist Playlist  `json:"playlist"`
	Versions []Version `json:"versions"`

	// FromSnapshot is true when Versions come from the last known snapshot
	// of a playlist deleted upstream instead of active records.
	FromSnapshot bool `json:"from_snapshot,omitempty"`
}

// TableName returns the name of the database table associated with
// Playlist.
func (p *Playlist) TableName() string {
	return "playlists"
}
