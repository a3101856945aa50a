package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/service"
	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenPlaylists screen = iota
	screenVersions
	screenRemoved
	screenDraft
	screenInput
	screenInfo
)

type inputMode int

const (
	inputCreate inputMode = iota
	inputImport
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	events    <-chan events.Event

	screen screen

	playlists []models.Playlist
	plIdx     int
	loading   bool

	details models.PlaylistDetails
	drafts  map[string]models.Draft
	vIdx    int
	pending *models.PendingChange
	removed []models.Version

	editor        textarea.Model
	editorVersion string

	input     textinput.Model
	inputMode inputMode

	status       string
	showError    bool
	errorOverlay errorOverlayModel
	quit         bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, sub <-chan events.Event) appModel {
	return appModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		events:    sub,
		screen:    screenPlaylists,
		loading:   true,
		drafts:    map[string]models.Draft{},
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPlaylists(), m.cmdListen())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Sequence(m.cmdStopPolling(), tea.Quit)
		}
	case playlistsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.playlists = msg.playlists
		m.plIdx = clampIndex(m.plIdx, len(m.playlists))
		return m, nil
	case playlistCreatedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			m.screen = screenPlaylists
			return m, nil
		}
		return m.openDetails(msg.details)
	case playlistOpenedMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.details = msg.details
		m.drafts = make(map[string]models.Draft, len(msg.drafts))
		for _, d := range msg.drafts {
			m.drafts[d.VersionID] = d
		}
		m.vIdx = clampIndex(m.vIdx, len(m.details.Versions))
		return m, nil
	case pollingStartedMsg:
		if msg.err != nil {
			m.status = humanizeError(msg.err)
		}
		return m, nil
	case removedLoadedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.removed = msg.versions
		m.screen = screenRemoved
		return m, nil
	case refreshDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, m.cmdOpenPlaylist(m.details.Playlist.ID)
		}
		m.pending = nil
		m.status = refreshStatus(msg.result)
		return m, tea.Batch(m.cmdOpenPlaylist(m.details.Playlist.ID), cmdClearStatus())
	case draftSavedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.drafts[msg.draft.VersionID] = msg.draft
		m.status = "Draft saved"
		return m, cmdClearStatus()
	case draftPublishedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.drafts[msg.draft.VersionID] = msg.draft
		m.status = "Note published"
		return m, cmdClearStatus()
	case draftClearedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		delete(m.drafts, msg.versionID)
		m.status = "Draft cleared"
		return m, cmdClearStatus()
	case addedClearedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("Removed %d manually added versions", msg.removed)
		return m, tea.Batch(m.cmdOpenPlaylist(m.details.Playlist.ID), cmdClearStatus())
	case eventMsg:
		return m.handleEvent(events.Event(msg))
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		if m.screen == screenDraft {
			m.editor.SetWidth(max(20, msg.Width-8))
		}
		return m, nil
	}

	switch m.screen {
	case screenPlaylists:
		return m.updatePlaylists(msg)
	case screenVersions:
		return m.updateVersions(msg)
	case screenRemoved:
		return m.updateRemoved(msg)
	case screenDraft:
		return m.updateDraft(msg)
	case screenInput:
		return m.updateInput(msg)
	case screenInfo:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
			m.screen = screenPlaylists
		}
	}
	return m, nil
}

func (m appModel) handleEvent(ev events.Event) (tea.Model, tea.Cmd) {
	next := m.cmdListen()
	if m.screen == screenPlaylists {
		if ev.Type == events.TypeSyncState || ev.Type == events.TypeDeletedUpstream {
			return m, tea.Batch(next, m.cmdLoadPlaylists())
		}
		return m, next
	}
	if ev.PlaylistID != m.details.Playlist.ID {
		return m, next
	}

	switch ev.Type {
	case events.TypePendingChanges:
		if change, ok := ev.Data.(models.PendingChange); ok {
			m.pending = &change
		}
	case events.TypePendingCleared:
		m.pending = nil
	case events.TypeDeletedUpstream:
		m.status = "Playlist was deleted in the tracking service, press r to refresh"
		return m, tea.Batch(next, m.cmdOpenPlaylist(ev.PlaylistID))
	case events.TypeVersionsUpdated, events.TypeSyncState:
		// the editor keeps its own copy, reloading does not disturb it
		return m, tea.Batch(next, m.cmdOpenPlaylist(ev.PlaylistID))
	case events.TypeDraftSaved, events.TypeDraftPublished:
		if d, ok := ev.Data.(models.Draft); ok && d.VersionID != "" {
			m.drafts[d.VersionID] = d
		}
	}
	return m, next
}

func (m appModel) updatePlaylists(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.plIdx = clampIndex(m.plIdx-1, len(m.playlists))
	case key.Matches(keyMsg, keys.down):
		m.plIdx = clampIndex(m.plIdx+1, len(m.playlists))
	case key.Matches(keyMsg, keys.enter):
		if len(m.playlists) == 0 {
			return m, nil
		}
		pl := m.playlists[m.plIdx]
		return m.openDetails(models.PlaylistDetails{Playlist: pl})
	case key.Matches(keyMsg, keys.quickNotes):
		return m, m.cmdOpenQuickNotes()
	case key.Matches(keyMsg, keys.newItem):
		m.startInput(inputCreate)
	case key.Matches(keyMsg, keys.importItem):
		m.startInput(inputImport)
	case key.Matches(keyMsg, keys.info):
		m.screen = screenInfo
	}
	return m, nil
}

// openDetails switches to the version list of details.Playlist, reloads it
// from the cache and starts polling when the playlist is synced.
func (m appModel) openDetails(details models.PlaylistDetails) (tea.Model, tea.Cmd) {
	m.screen = screenVersions
	m.details = details
	m.drafts = map[string]models.Draft{}
	m.pending = nil
	m.vIdx = 0
	m.loading = true

	cmds := []tea.Cmd{m.cmdOpenPlaylist(details.Playlist.ID)}
	if details.Playlist.Pollable() {
		cmds = append(cmds, m.cmdStartPolling(details.Playlist.ID))
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updateVersions(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	playlistID := m.details.Playlist.ID
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenPlaylists
		m.pending = nil
		return m, tea.Batch(m.cmdStopPolling(), m.cmdLoadPlaylists())
	case key.Matches(keyMsg, keys.up):
		m.vIdx = clampIndex(m.vIdx-1, len(m.details.Versions))
	case key.Matches(keyMsg, keys.down):
		m.vIdx = clampIndex(m.vIdx+1, len(m.details.Versions))
	case key.Matches(keyMsg, keys.enter):
		v, ok := m.currentVersion()
		if !ok || m.details.FromSnapshot {
			return m, nil
		}
		m.startEditor(v.VersionID)
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.apply):
		if m.pending == nil {
			m.status = humanizeError(service.ErrNoPendingChanges)
			return m, cmdClearStatus()
		}
		return m, m.cmdApply()
	case key.Matches(keyMsg, keys.refresh):
		if m.details.Playlist.IsQuickNotes() || m.details.Playlist.RemoteID == nil {
			return m, nil
		}
		m.status = "Refreshing..."
		return m, m.cmdRefresh(playlistID)
	case key.Matches(keyMsg, keys.removed):
		return m, m.cmdLoadRemoved(playlistID)
	case key.Matches(keyMsg, keys.publish):
		v, ok := m.currentVersion()
		if !ok {
			return m, nil
		}
		return m, m.cmdPublish(playlistID, v.VersionID)
	case key.Matches(keyMsg, keys.copy):
		v, ok := m.currentVersion()
		if !ok {
			return m, nil
		}
		return m, cmdCopy(m.drafts[v.VersionID].Content)
	case key.Matches(keyMsg, keys.clear):
		v, ok := m.currentVersion()
		if !ok {
			return m, nil
		}
		return m, m.cmdClearDraft(playlistID, v.VersionID)
	case key.Matches(keyMsg, keys.clearAdded):
		return m, m.cmdClearAdded(playlistID)
	}
	return m, nil
}

func (m appModel) updateRemoved(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.removed)) {
		m.screen = screenVersions
		m.removed = nil
	}
	return m, nil
}

func (m *appModel) startEditor(versionID string) {
	ta := textarea.New()
	ta.Placeholder = "Write a note for this version"
	ta.SetWidth(64)
	ta.SetHeight(8)
	ta.SetValue(m.drafts[versionID].Content)
	ta.Focus()

	m.editor = ta
	m.editorVersion = versionID
	m.screen = screenDraft
}

func (m appModel) updateDraft(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.save):
			return m, m.cmdSaveEditor()
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenVersions
			m.editor.Blur()
			if m.editor.Value() == m.drafts[m.editorVersion].Content {
				return m, nil
			}
			return m, m.cmdSaveEditor()
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *appModel) startInput(mode inputMode) {
	in := textinput.New()
	in.CharLimit = 128
	in.Width = 40
	if mode == inputImport {
		in.Placeholder = "remote review session id"
	} else {
		in.Placeholder = "playlist name"
	}
	in.Focus()

	m.input = in
	m.inputMode = mode
	m.screen = screenInput
}

func (m appModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenPlaylists
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, nil
			}
			if m.inputMode == inputImport {
				return m, m.cmdImport(value)
			}
			return m, m.cmdCreate(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) currentVersion() (models.Version, bool) {
	if len(m.details.Versions) == 0 || m.vIdx < 0 || m.vIdx >= len(m.details.Versions) {
		return models.Version{}, false
	}
	return m.details.Versions[m.vIdx], true
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func refreshStatus(result models.RefreshResult) string {
	if result.DeletedUpstream {
		return "Playlist was deleted in the tracking service"
	}
	if len(result.Added) == 0 && len(result.Removed) == 0 {
		return "Up to date"
	}
	return fmt.Sprintf("Applied: +%d / -%d", len(result.Added), len(result.Removed))
}
