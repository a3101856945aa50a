// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DraftStatus is derived from draft content. It is never persisted.
type DraftStatus string

const (
	DraftStatusEmpty     DraftStatus = "empty"
	DraftStatusDraft     DraftStatus = "draft"
	DraftStatusPublished DraftStatus = "published"
)

// Draft is unpublished note content, label and attachments for one version
// within one playlist.
type Draft struct {
	PlaylistID string `json:"playlist_id"`
	VersionID  string `json:"version_id"`

	Content string  `json:"content"`
	LabelID *string `json:"label_id,omitempty"`

	// Attachments are ordered by Position.
	Attachments []Attachment `json:"attachments,omitempty"`

	// Published is set only by an explicit publish confirmation and reset on
	// the next edit.
	Published       bool    `json:"published"`
	PublishedNoteID *string `json:"published_note_id,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Status derives the draft status from the publish flag and content.
func (d Draft) Status() DraftStatus {
	if d.Published {
		return DraftStatusPublished
	}
	if strings.TrimSpace(d.Content) != "" || len(d.Attachments) > 0 {
		return DraftStatusDraft
	}
	return DraftStatusEmpty
}

// AttachmentIDs returns the ids of the draft attachments in order.
func (d Draft) AttachmentIDs() []string {
	ids := make([]string, 0, len(d.Attachments))
	for _, a := range d.Attachments {
		ids = append(ids, a.ID)
	}
	return ids
}

// TableName returns the name of the database table associated with Draft.
func (d *Draft) TableName() string {
	return "drafts"
}
