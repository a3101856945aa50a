package models

// NoteRequest is the one-way publish payload sent to the tracking service.
type NoteRequest struct {
	PlaylistRemoteID string   `json:"playlist_id,omitempty"`
	VersionID        string   `json:"version_id"`
	Content          string   `json:"content"`
	LabelID          *string  `json:"label_id,omitempty"`
	Attachments      []string `json:"attachments,omitempty"`
}

// NoteResponse is returned by the tracking service after a note was created.
type NoteResponse struct {
	NoteID string `json:"note_id"`
}
