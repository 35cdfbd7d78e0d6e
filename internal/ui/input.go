package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docworks/docnav/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.menu != nil && m.menu.IsOpen() {
		return m.handleMenuKey(keyMsg)
	}
	if m.filtering {
		return m.handleFilterKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "esc":
		if m.filter.Active() {
			m.clearFilter()
			return nil
		}
		return m.quit()
	case "enter":
		m.activateCurrent()
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "home":
		m.cursor = 0
	case "end":
		if n := m.visibleRowCount(); n > 0 {
			m.cursor = n - 1
		}
	case "left", "h":
		m.collapseCurrent()
	case "right", "l":
		m.expandCurrent()
	case "a":
		if doc, ok := m.currentDocument(); ok {
			m.openDocumentMenu(doc)
		}
	case "/":
		m.filtering = true
	case "[":
		m.collapsed = !m.collapsed
	}
	return nil
}

func (m *Model) handleMenuKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.menu.Close()
		m.menu = nil
		return nil
	case "up", "k":
		m.menu.MoveUp()
	case "down", "j":
		m.menu.MoveDown()
	case "enter":
		cmd := m.menu.Select()
		if m.menu != nil && !m.menu.IsOpen() {
			m.menu = nil
		}
		return cmd
	}
	return nil
}

func (m *Model) handleFilterKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.filtering = false
		m.clearFilter()
		return nil
	case "enter":
		// Keep the matches, hand the keys back to list navigation.
		m.filtering = false
		return nil
	case "ctrl+u":
		m.clearFilter()
		events.Nav.Cursor("filter", 0)
		return nil
	}
	switch keyMsg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.removeFilterRune()
	case tea.KeySpace:
		m.appendToFilter(" ")
	case tea.KeyRunes:
		if keyMsg.Alt || len(keyMsg.Runes) == 0 {
			return nil
		}
		for _, r := range keyMsg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.appendToFilter(string(keyMsg.Runes))
	case tea.KeyUp:
		m.moveCursor(-1)
	case tea.KeyDown:
		m.moveCursor(1)
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.saveState()
	events.App.Exit("key")
	return tea.Quit
}

func (m *Model) moveCursor(delta int) {
	n := m.visibleRowCount()
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	if !m.filter.Active() {
		if rows := m.tree.Rows(); m.cursor < len(rows) {
			events.Nav.Cursor(rows[m.cursor].Item.ID, m.cursor)
		}
	}
}

// activateCurrent routes enter to either the filter match list or the tree.
func (m *Model) activateCurrent() {
	if m.filter.Active() {
		matches := m.filter.Matches()
		if m.cursor >= 0 && m.cursor < len(matches) {
			doc := matches[m.cursor]
			m.setLocation("doc/" + doc.ID)
		}
		return
	}
	m.tree.ActivateRow(m.cursor)
	m.clampCursor()
}

func (m *Model) collapseCurrent() {
	if m.filter.Active() {
		return
	}
	rows := m.tree.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return
	}
	row := rows[m.cursor]
	if row.Item.IsGroup() && m.tree.IsExpanded(row.Item.ID) {
		m.tree.Toggle(row.Item.ID)
		m.clampCursor()
		return
	}
	// On a leaf or collapsed group, jump to the parent row.
	for i := m.cursor - 1; i >= 0; i-- {
		if rows[i].Level < row.Level {
			m.cursor = i
			return
		}
	}
}

func (m *Model) expandCurrent() {
	if m.filter.Active() {
		return
	}
	rows := m.tree.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return
	}
	item := rows[m.cursor].Item
	if item.IsGroup() && !m.tree.IsExpanded(item.ID) {
		m.tree.Toggle(item.ID)
	}
}
