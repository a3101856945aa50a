package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	var page string
	switch m.screen {
	case screenVersions:
		page = m.viewVersions()
	case screenRemoved:
		page = m.viewRemoved()
	case screenDraft:
		page = m.viewDraft()
	case screenInput:
		page = m.viewInput()
	case screenInfo:
		page = renderBuildInfoWindow(m.buildInfo)
	default:
		page = m.viewPlaylists()
	}

	if m.showError {
		page = lipgloss.JoinVertical(lipgloss.Left, page, "", m.errorOverlay.View())
	}
	return appStyle.Render(page)
}

func (m appModel) viewPlaylists() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading playlists...\n")
	case len(m.playlists) == 0:
		b.WriteString("No playlists yet\n")
	default:
		b.WriteString("  Name                         │ Kind            │ State\n")
		b.WriteString("  ─────────────────────────────┼─────────────────┼──────────────\n")
		for i, pl := range m.playlists {
			cursor := " "
			if i == m.plIdx {
				cursor = ">"
			}
			fmt.Fprintf(&b, "%s %-28s │ %-15s │ %s\n", cursor, fitText(pl.Name, 28), pl.Kind, playlistState(pl))
		}
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(
		"PLAYLISTS",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ i: import │ o: quick notes │ ?: about │ q: quit",
	)
}

func (m appModel) viewVersions() string {
	pl := m.details.Playlist
	var b strings.Builder

	if m.pending != nil {
		b.WriteString(bannerStyle.Render(fmt.Sprintf(
			"Playlist changed upstream: +%d / -%d. Press a to apply.",
			m.pending.AddedCount, m.pending.RemovedCount,
		)))
		b.WriteString("\n\n")
	}
	if m.details.FromSnapshot {
		b.WriteString(errorStyle.Render("Deleted in the tracking service. Showing the last known versions."))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.details.Versions) == 0:
		b.WriteString("Loading versions...\n")
	case len(m.details.Versions) == 0:
		b.WriteString("No versions\n")
	default:
		for i, v := range m.details.Versions {
			cursor := " "
			if i == m.vIdx {
				cursor = ">"
			}
			manual := " "
			if v.ManuallyAdded {
				manual = "+"
			}
			fmt.Fprintf(&b, "%s %s %s %-32s v%03d\n",
				cursor, draftMarker(m.drafts[v.VersionID]), manual, fitText(v.Name, 32), v.Revision)
		}
	}

	if v, ok := m.currentVersion(); ok {
		if d, ok := m.drafts[v.VersionID]; ok && d.Content != "" {
			b.WriteString("\n" + helpStyle.Render(fitText(firstLine(d.Content), 60)) + "\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	title := fmt.Sprintf("%s  [%s]", strings.ToUpper(pl.Name), playlistState(pl))
	return renderPage(title, strings.TrimRight(b.String(), "\n"), versionsHotKeys(pl))
}

func versionsHotKeys(pl models.Playlist) string {
	hotKeys := []string{"enter: note", "p: publish", "c: copy", "d: clear"}
	if pl.Pollable() {
		hotKeys = append(hotKeys, "a: apply", "r: refresh")
	}
	hotKeys = append(hotKeys, "x: removed", "m: drop added", "esc: back")
	return strings.Join(hotKeys, " │ ")
}

func (m appModel) viewRemoved() string {
	var b strings.Builder
	if len(m.removed) == 0 {
		b.WriteString("No removed versions\n")
	}
	for _, v := range m.removed {
		removedAt := "-"
		if v.RemovedAt != nil {
			removedAt = v.RemovedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "%s  %s\n", mutedStyle.Render(fmt.Sprintf("%-32s v%03d", fitText(v.Name, 32), v.Revision)), removedAt)
	}
	return renderPage("REMOVED VERSIONS", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m appModel) viewDraft() string {
	var name string
	for _, v := range m.details.Versions {
		if v.VersionID == m.editorVersion {
			name = v.Name
			break
		}
	}

	out := m.editor.View()
	if d, ok := m.drafts[m.editorVersion]; ok && len(d.Attachments) > 0 {
		out += fmt.Sprintf("\n\nAttachments: %d", len(d.Attachments))
	}
	if m.status != "" {
		out += "\n\n" + m.status
	}
	return renderPage("NOTE: "+name, out, "ctrl+s: save │ esc: save and back")
}

func (m appModel) viewInput() string {
	title := "NEW PLAYLIST"
	if m.inputMode == inputImport {
		title = "IMPORT REVIEW SESSION"
	}
	return renderPage(title, m.input.View(), "enter: confirm │ esc: cancel")
}

func playlistState(pl models.Playlist) string {
	if pl.DeletedUpstream {
		return "deleted upstream"
	}
	return string(pl.SyncState)
}

func draftMarker(d models.Draft) string {
	switch d.Status() {
	case models.DraftStatusPublished:
		return "[✓]"
	case models.DraftStatusDraft:
		return "[*]"
	default:
		return "[ ]"
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
