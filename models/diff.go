// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Diff is the delta between the locally known version set and a freshly
// fetched remote version list.
type Diff struct {
	Added          []string        `json:"added"`
	Removed        []string        `json:"removed"`
	RemoteSnapshot []RemoteVersion `json:"remote_snapshot"`
}

// Empty reports whether the diff carries no change.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// PendingChange is an unconfirmed diff held in memory for the active
// playlist. It is the payload of change notifications.
type PendingChange struct {
	PlaylistID     string          `json:"playlist_id"`
	AddedCount     int             `json:"added_count"`
	RemovedCount   int             `json:"removed_count"`
	AddedIDs       []string        `json:"added_ids"`
	RemovedIDs     []string        `json:"removed_ids"`
	RemoteSnapshot []RemoteVersion `json:"remote_snapshot"`
	DetectedAt     time.Time       `json:"detected_at"`
}

// NewPendingChange builds a PendingChange from a non-empty diff.
func NewPendingChange(playlistID string, d Diff, at time.Time) PendingChange {
	return PendingChange{
		PlaylistID:     playlistID,
		AddedCount:     len(d.Added),
		RemovedCount:   len(d.Removed),
		AddedIDs:       d.Added,
		RemovedIDs:     d.Removed,
		RemoteSnapshot: d.RemoteSnapshot,
		DetectedAt:     at,
	}
}

// RefreshResult reports what a reconciliation wrote.
type RefreshResult struct {
	PlaylistID      string   `json:"playlist_id"`
	Added           []string `json:"added"`
	Removed         []string `json:"removed"`
	DeletedUpstream bool     `json:"deleted_upstream"`
}

// ChangeListener receives a pending change every time a poll tick detects a
// non-empty diff for the active playlist. It runs on a goroutine of its own
// and may stop or restart polling. A listener that falls behind only sees
// the latest change.
type ChangeListener func(change PendingChange)
