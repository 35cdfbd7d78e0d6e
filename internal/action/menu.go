package action

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/docworks/docnav/internal/logging/events"
	"github.com/docworks/docnav/internal/theme"
)

var styles = theme.Default()

// Menu owns the transient popover state for one contextual action menu:
// open/closed plus a cursor over the flattened actions. The group data is
// caller-supplied on construction and never mutated.
type Menu struct {
	id         string
	title      string
	groups     []Group
	dispatcher *Dispatcher
	open       bool
	cursor     int
}

// NewMenu builds a closed menu over the given groups.
func NewMenu(id, title string, groups []Group, dispatcher *Dispatcher) *Menu {
	return &Menu{id: id, title: title, groups: groups, dispatcher: dispatcher}
}

// ID returns the menu identifier.
func (m *Menu) ID() string { return m.id }

// IsOpen reports whether the popover is showing.
func (m *Menu) IsOpen() bool { return m.open }

// Open shows the popover with the cursor on the first action.
func (m *Menu) Open() {
	m.open = true
	m.cursor = 0
	events.Menu.Open(m.id)
}

// Close hides the popover. Cursor state does not leak across openings.
func (m *Menu) Close() {
	if !m.open {
		return
	}
	m.open = false
	events.Menu.Close(m.id)
}

// MoveUp moves the cursor one action up, wrapping at the top.
func (m *Menu) MoveUp() {
	if n := len(Flatten(m.groups)); n > 0 {
		m.cursor = (m.cursor - 1 + n) % n
	}
}

// MoveDown moves the cursor one action down, wrapping at the bottom.
func (m *Menu) MoveDown() {
	if n := len(Flatten(m.groups)); n > 0 {
		m.cursor = (m.cursor + 1) % n
	}
}

// Current returns the descriptor under the cursor.
func (m *Menu) Current() (Descriptor, bool) {
	actions := Flatten(m.groups)
	if m.cursor < 0 || m.cursor >= len(actions) {
		return Descriptor{}, false
	}
	return actions[m.cursor], true
}

// Select dispatches the action under the cursor and closes the popover.
// Disabled actions keep the popover open and dispatch nothing.
func (m *Menu) Select() tea.Cmd {
	desc, ok := m.Current()
	if !ok {
		return nil
	}
	if desc.Disabled {
		return nil
	}
	cmd := m.dispatcher.Dispatch(desc)
	m.Close()
	return cmd
}

// View renders the popover: group headings, actions, and a separator
// between consecutive groups only.
func (m *Menu) View(width int) string {
	if !m.open {
		return ""
	}
	lines := make([]string, 0, 8)
	if m.title != "" {
		lines = append(lines, styles.MenuHeading.Render(m.title))
	}
	idx := 0
	for gi, group := range m.groups {
		if gi > 0 {
			lines = append(lines, m.separator(width))
		}
		if group.Label != "" {
			lines = append(lines, styles.MenuHeading.Render(group.Label))
		}
		for _, desc := range group.Actions {
			lines = append(lines, m.renderAction(desc, idx == m.cursor, width))
			idx++
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Menu) renderAction(desc Descriptor, selected bool, width int) string {
	var b strings.Builder
	if selected {
		b.WriteString("> ")
	} else {
		b.WriteString("  ")
	}
	if desc.Icon != "" {
		b.WriteString(desc.Icon)
		b.WriteString(" ")
	}
	label := desc.Label
	switch {
	case desc.Disabled:
		label = styles.DisabledItem.Render(label)
	case desc.Destructive:
		label = styles.Destructive.Render(label)
	case selected:
		label = styles.SelectedItem.Render(label)
	default:
		label = styles.Item.Render(label)
	}
	b.WriteString(label)
	if desc.ShortcutHint != "" {
		b.WriteString("  ")
		b.WriteString(styles.Shortcut.Render(desc.ShortcutHint))
	}
	line := b.String()
	if width > 0 {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	return line
}

func (m *Menu) separator(width int) string {
	n := width
	if n <= 0 {
		n = 16
	}
	return styles.MenuSeparator.Render(strings.Repeat("─", n))
}
