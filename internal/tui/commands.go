package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

func (m appModel) cmdListen() tea.Cmd {
	sub := m.events
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-sub
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

func (m appModel) cmdLoadPlaylists() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Playlists

	return func() tea.Msg {
		playlists, err := svc.ListPlaylists(ctx)
		return playlistsLoadedMsg{playlists: playlists, err: err}
	}
}

func (m appModel) cmdOpenPlaylist(playlistID string) tea.Cmd {
	ctx := m.ctx
	playlists := m.services.Playlists
	drafts := m.services.Drafts

	return func() tea.Msg {
		details, err := playlists.GetPlaylist(ctx, playlistID)
		if err != nil {
			return playlistOpenedMsg{err: err}
		}
		list, err := drafts.ListDrafts(ctx, playlistID)
		return playlistOpenedMsg{details: details, drafts: list, err: err}
	}
}

func (m appModel) cmdOpenQuickNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Playlists

	return func() tea.Msg {
		details, err := svc.OpenQuickNotes(ctx)
		return playlistCreatedMsg{details: details, err: err}
	}
}

func (m appModel) cmdCreate(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Playlists

	return func() tea.Msg {
		pl, err := svc.CreatePlaylist(ctx, name, models.KindList)
		return playlistCreatedMsg{details: models.PlaylistDetails{Playlist: pl}, err: err}
	}
}

func (m appModel) cmdImport(remoteID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Playlists

	return func() tea.Msg {
		details, err := svc.ImportRemotePlaylist(ctx, remoteID, "Session "+remoteID, models.KindReviewSession)
		return playlistCreatedMsg{details: details, err: err}
	}
}

func (m appModel) cmdStartPolling(playlistID string) tea.Cmd {
	ctx := m.ctx
	poller := m.services.Poller

	return func() tea.Msg {
		// change notifications arrive through the broker subscription
		return pollingStartedMsg{err: poller.Start(ctx, playlistID, nil)}
	}
}

func (m appModel) cmdStopPolling() tea.Cmd {
	poller := m.services.Poller

	return func() tea.Msg {
		poller.Stop()
		return nil
	}
}

func (m appModel) cmdApply() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Reconciler

	return func() tea.Msg {
		result, err := svc.ApplyPendingChanges(ctx)
		return refreshDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdRefresh(playlistID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Reconciler

	return func() tea.Msg {
		result, err := svc.DirectRefresh(ctx, playlistID)
		return refreshDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdLoadRemoved(playlistID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Playlists

	return func() tea.Msg {
		versions, err := svc.GetRemovedVersions(ctx, playlistID)
		return removedLoadedMsg{versions: versions, err: err}
	}
}

func (m appModel) cmdClearAdded(playlistID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Reconciler

	return func() tea.Msg {
		removed, err := svc.ClearAddedVersions(ctx, playlistID)
		return addedClearedMsg{removed: removed, err: err}
	}
}

// cmdSaveEditor saves the editor content keeping the current label and
// attachments of the draft.
func (m appModel) cmdSaveEditor() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Drafts
	playlistID := m.details.Playlist.ID
	versionID := m.editorVersion
	content := m.editor.Value()
	current := m.drafts[versionID]

	return func() tea.Msg {
		draft, err := svc.SaveDraft(ctx, playlistID, versionID, content, current.LabelID, current.AttachmentIDs())
		return draftSavedMsg{draft: draft, err: err}
	}
}

func (m appModel) cmdPublish(playlistID, versionID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Drafts

	return func() tea.Msg {
		draft, err := svc.Publish(ctx, playlistID, versionID)
		return draftPublishedMsg{draft: draft, err: err}
	}
}

func (m appModel) cmdClearDraft(playlistID, versionID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Drafts

	return func() tea.Msg {
		return draftClearedMsg{versionID: versionID, err: svc.ClearDraft(ctx, playlistID, versionID)}
	}
}

var (
	errNothingToCopy = errors.New("draft is empty, nothing to copy")

	writeClipboard = clipboard.WriteAll
)

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
