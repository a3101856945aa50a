// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Attachment is a file attached to a draft note.
type Attachment struct {
	ID string `json:"id"`

	PlaylistID string `json:"playlist_id"`
	VersionID  string `json:"version_id"`

	// NoteID is set once the owning draft has been published.
	NoteID *string `json:"note_id,omitempty"`

	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size"`

	// Checksum is the hex BLAKE2b-256 digest of the content.
	Checksum string `json:"checksum"`

	// Position orders attachments within a draft.
	Position int `json:"position"`

	// StoragePath is where the content is kept on disk.
	StoragePath string `json:"-"`

	// PreviewHandle is a revocable, locally resolvable handle. It is not
	// persisted and must be released when the attachment goes away.
	PreviewHandle string `json:"preview_handle,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with
// Attachment.
func (a *Attachment) TableName() string {
	return "attachments"
}

// AttachmentUpload is the input for adding an attachment to a draft.
type AttachmentUpload struct {
	Name     string
	MIMEType string
	Data     []byte
}
