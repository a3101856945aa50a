package tui

import (
	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/models"
)

type playlistsLoadedMsg struct {
	playlists []models.Playlist
	err       error
}

type playlistOpenedMsg struct {
	details models.PlaylistDetails
	drafts  []models.Draft
	err     error
}

type playlistCreatedMsg struct {
	details models.PlaylistDetails
	err     error
}

type removedLoadedMsg struct {
	versions []models.Version
	err      error
}

type refreshDoneMsg struct {
	result models.RefreshResult
	err    error
}

type draftSavedMsg struct {
	draft models.Draft
	err   error
}

type draftPublishedMsg struct {
	draft models.Draft
	err   error
}

type draftClearedMsg struct {
	versionID string
	err       error
}

type addedClearedMsg struct {
	removed int64
	err     error
}

type pollingStartedMsg struct {
	err error
}

// eventMsg carries a broker notification into the update loop.
type eventMsg events.Event

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
