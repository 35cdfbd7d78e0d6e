package nav

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/docworks/docnav/internal/theme"
)

// Orientation selects the layout direction for a rendered tree.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// RenderOptions carries per-render layout settings. They are plain values
// supplied by the caller on every render, like the forest itself.
type RenderOptions struct {
	Orientation Orientation
	// Collapsed narrows the vertical layout to an icon rail: labels, badges
	// and expand indicators disappear while icons and activation targets
	// keep working.
	Collapsed bool
	// Width truncates rendered lines to the given cell count. Zero disables
	// truncation.
	Width int
	// Cursor is the visible row index rendered as selected, -1 for none.
	Cursor int
}

var styles = theme.Default()

const indentWidth = 2

// View renders the currently visible rows. Zero items yields an empty
// string rather than failing, so surrounding chrome still renders.
func (t *Tree) View(opts RenderOptions) string {
	rows := t.Rows()
	if len(rows) == 0 {
		return ""
	}
	if opts.Orientation == Horizontal {
		return t.viewHorizontal(rows, opts)
	}
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		lines = append(lines, t.renderRow(row, i == opts.Cursor, opts))
	}
	return strings.Join(lines, "\n")
}

func (t *Tree) renderRow(row Row, selected bool, opts RenderOptions) string {
	it := row.Item

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", row.Level*indentWidth))

	if !opts.Collapsed {
		caret := " "
		if it.IsGroup() {
			if t.IsExpanded(it.ID) {
				caret = "▾"
			} else {
				caret = "▸"
			}
		}
		b.WriteString(styles.GroupCaret.Render(caret))
		b.WriteString(" ")
	}

	if it.Icon != "" {
		b.WriteString(it.Icon.Render(2))
		b.WriteString(" ")
	}

	if !opts.Collapsed {
		label := it.DisplayLabel(false)
		switch {
		case it.IsDisabled:
			b.WriteString(styles.DisabledItem.Render(label))
		case selected:
			b.WriteString(styles.SelectedItem.Render(label))
		case t.IsActiveItem(it):
			b.WriteString(styles.ActiveItem.Render(label))
		default:
			b.WriteString(styles.Item.Render(label))
		}
		if it.Badge != nil {
			b.WriteString(" ")
			b.WriteString(renderBadge(*it.Badge))
		}
	} else if selected {
		b.WriteString(styles.SelectedItem.Render(" "))
	}

	line := b.String()
	if opts.Width > 0 {
		line = truncate.StringWithTail(line, uint(opts.Width), "…")
	}
	return line
}

// viewHorizontal lays the visible rows out left to right on a single line,
// preferring short labels when present.
func (t *Tree) viewHorizontal(rows []Row, opts RenderOptions) string {
	segments := make([]string, 0, len(rows))
	for i, row := range rows {
		it := row.Item
		label := it.DisplayLabel(true)
		if it.Icon != "" {
			label = it.Icon.Render(2) + " " + label
		}
		switch {
		case it.IsDisabled:
			label = styles.DisabledItem.Render(label)
		case i == opts.Cursor:
			label = styles.SelectedItem.Render(label)
		case t.IsActiveItem(it):
			label = styles.ActiveItem.Render(label)
		default:
			label = styles.Item.Render(label)
		}
		if it.Badge != nil {
			label += " " + renderBadge(*it.Badge)
		}
		segments = append(segments, label)
	}
	line := strings.Join(segments, styles.ItemIndicator.Render(" │ "))
	if opts.Width > 0 {
		line = truncate.StringWithTail(line, uint(opts.Width), "…")
	}
	return line
}

func renderBadge(b Badge) string {
	if b.Emphasis == BadgeStrong {
		return styles.BadgeStrong.Render(b.Label)
	}
	return styles.Badge.Render(b.Label)
}
