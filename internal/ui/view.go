package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/docworks/docnav/internal/nav"
	"github.com/docworks/docnav/internal/workspace"
)

const (
	collapsedSidebarWidth = 6
	defaultSidebarWidth   = 30
	headerSeparator       = "→"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	sidebar := m.sidebarView()
	content := m.contentView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", content)
	b.WriteString(body)

	if status := m.statusView(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.footerView())
	}
	return b.String()
}

func (m *Model) headerView() string {
	title := m.locationTitle()
	header := "docnav"
	if title != "" {
		header = fmt.Sprintf("docnav %s %s", headerSeparator, title)
	}
	if m.width > 0 {
		header = truncate.StringWithTail(header, uint(m.width), "…")
	}
	return styles.Header.Render(header)
}

func (m *Model) locationTitle() string {
	href := m.location.Current()
	if id, ok := strings.CutPrefix(href, "doc/"); ok {
		if doc, found := m.store.Find(id); found {
			return doc.Title
		}
		return "document"
	}
	switch href {
	case locationSearch:
		return "search"
	case locationUploads:
		return "uploads"
	case locationSettings:
		return "settings"
	default:
		return ""
	}
}

func (m *Model) sidebarWidth() int {
	if m.collapsed {
		return collapsedSidebarWidth
	}
	if m.width > 0 && m.width/3 < defaultSidebarWidth {
		w := m.width / 3
		if w < collapsedSidebarWidth {
			return collapsedSidebarWidth
		}
		return w
	}
	return defaultSidebarWidth
}

// maxVisibleRows returns how many sidebar rows fit the current height.
// Zero means no clipping.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	chrome := 3 // header, status, filter bar
	if m.showFooter {
		chrome++
	}
	n := m.height - chrome
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) sidebarView() string {
	width := m.sidebarWidth()
	var lines []string
	if m.filter.Active() || m.filtering {
		lines = m.filterLines(width)
	} else {
		view := m.tree.View(nav.RenderOptions{
			Orientation: nav.Vertical,
			Collapsed:   m.collapsed,
			Width:       width,
			Cursor:      m.cursor,
		})
		if view == "" {
			lines = []string{styles.Info.Render("(no documents)")}
		} else {
			lines = strings.Split(view, "\n")
		}
	}
	lines = m.clipToViewport(lines)
	if m.filtering || m.filter.Active() {
		lines = append([]string{m.filterBar(width)}, lines...)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) filterLines(width int) []string {
	matches := m.filter.Matches()
	if !m.filter.Active() {
		return []string{styles.FilterPlaceholder.Render("type to search documents")}
	}
	if len(matches) == 0 {
		return []string{styles.Info.Render(fmt.Sprintf("No matches for %q", m.filter.Query()))}
	}
	lines := make([]string, 0, len(matches))
	for i, doc := range matches {
		line := fmt.Sprintf("%s  %s", doc.Title, styles.Shortcut.Render(doc.Agency))
		if i == m.cursor {
			line = styles.SelectedItem.Render(doc.Title) + "  " + styles.Shortcut.Render(doc.Agency)
		}
		if width > 0 {
			line = truncate.StringWithTail(line, uint(width), "…")
		}
		lines = append(lines, line)
	}
	return lines
}

func (m *Model) filterBar(width int) string {
	prompt := styles.FilterPrompt.Render("/")
	text := styles.Filter.Render(m.filter.Query())
	bar := prompt + text
	if m.filtering {
		bar += m.filterCursor.View()
	}
	if width > 0 {
		bar = truncate.StringWithTail(bar, uint(width), "…")
	}
	return bar
}

func (m *Model) clipToViewport(lines []string) []string {
	maxRows := m.maxVisibleRows()
	if maxRows <= 0 || len(lines) <= maxRows {
		return lines
	}
	offset := 0
	if m.cursor >= maxRows {
		offset = m.cursor - maxRows + 1
	}
	if offset+maxRows > len(lines) {
		offset = len(lines) - maxRows
	}
	return lines[offset : offset+maxRows]
}

func (m *Model) contentView() string {
	if m.menu != nil && m.menu.IsOpen() {
		return m.menu.View(m.contentWidth())
	}
	href := m.location.Current()
	if id, ok := strings.CutPrefix(href, "doc/"); ok {
		if doc, found := m.store.Find(id); found {
			return m.documentView(doc)
		}
		return styles.Error.Render("document not found")
	}
	switch href {
	case locationSearch:
		return styles.ContentBody.Render("Press / and type to search job descriptions.")
	case locationUploads:
		return m.uploadsView()
	case locationSettings:
		return m.settingsView()
	default:
		return m.homeView()
	}
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - m.sidebarWidth() - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) homeView() string {
	lines := []string{
		styles.ContentTitle.Render("Document workspace"),
		"",
		styles.ContentBody.Render(fmt.Sprintf("%d documents loaded.", m.store.Len())),
		styles.ContentBody.Render("Navigate with ↑/↓, expand with →, open the action menu with a."),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) documentView(doc workspace.Document) string {
	lines := []string{
		styles.ContentTitle.Render(doc.Title),
		"",
		styles.ContentBody.Render("Agency:   " + doc.Agency),
		styles.ContentBody.Render("Category: " + orDash(doc.Category)),
		styles.ContentBody.Render("Status:   " + string(doc.Status)),
		styles.ContentBody.Render("Updated:  " + doc.UpdatedAt.Format(time.DateOnly)),
	}
	if len(doc.Tags) > 0 {
		lines = append(lines, styles.ContentBody.Render("Tags:     "+strings.Join(doc.Tags, ", ")))
	}
	lines = append(lines, "", styles.Shortcut.Render("a: actions  esc: back"))
	return strings.Join(lines, "\n")
}

func (m *Model) uploadsView() string {
	lines := []string{styles.ContentTitle.Render("Uploads"), ""}
	pending := 0
	for _, doc := range m.store.Documents() {
		if doc.Status == workspace.StatusProcessing {
			pending++
			lines = append(lines, styles.ContentBody.Render("· "+doc.Title+"  ")+styles.Badge.Render("processing"))
		}
	}
	if pending == 0 {
		lines = append(lines, styles.ContentBody.Render("Nothing is processing right now."))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) settingsView() string {
	lines := []string{
		styles.ContentTitle.Render("Settings"),
		"",
		styles.ContentBody.Render("Navigation state: " + orDash(m.statePath)),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) statusView() string {
	if m.errMsg != "" {
		return styles.Error.Render(m.errMsg)
	}
	if m.infoMsg != "" && time.Now().Before(m.infoExpire) {
		return styles.Info.Render(m.infoMsg)
	}
	return ""
}

func (m *Model) footerView() string {
	hints := "↑/↓ move · enter open · ←/→ fold · a actions · / search · [ rail · q quit"
	if m.width > 0 {
		hints = truncate.StringWithTail(hints, uint(m.width), "…")
	}
	return styles.Footer.Render(hints)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
