// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Version is the local record of one asset version's membership in one
// playlist. Identity is the pair (PlaylistID, VersionID): the same remote
// version may appear independently in several playlists.
type Version struct {
	PlaylistID string `json:"playlist_id"`
	VersionID  string `json:"version_id"`

	Name         string `json:"name"`
	Revision     int    `json:"revision"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// ManuallyAdded marks versions added by the user rather than inherited
	// from the remote playlist. Such versions are exempt from diff-driven
	// removal.
	ManuallyAdded bool `json:"manually_added"`

	// Removed is the tombstone flag. Records are never erased while drafts
	// or attachments reference them.
	Removed   bool       `json:"removed"`
	RemovedAt *time.Time `json:"removed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with Version.
func (v *Version) TableName() string {
	return "versions"
}

// VersionState is a lightweight descriptor of an active version record used
// as diff input.
type VersionState struct {
	VersionID     string `json:"version_id"`
	ManuallyAdded bool   `json:"manually_added"`
}

// RemoteVersion is a version as reported by the tracking service.
type RemoteVersion struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Revision     int    `json:"revision"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// ToVersion converts a remote version into a local record for playlistID.
func (r RemoteVersion) ToVersion(playlistID string) Version {
	return Version{
		PlaylistID:   playlistID,
		VersionID:    r.ID,
		Name:         r.Name,
		Revision:     r.Revision,
		ThumbnailURL: r.ThumbnailURL,
	}
}

// RemoveOptions narrows a soft-remove operation.
type RemoveOptions struct {
	// OnlyManuallyAdded restricts removal to manually-added records.
	OnlyManuallyAdded bool
}
