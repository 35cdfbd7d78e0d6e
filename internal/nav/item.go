package nav

import "github.com/muesli/reflow/truncate"

// BadgeEmphasis selects the visual weight of a badge annotation.
type BadgeEmphasis int

const (
	BadgeNeutral BadgeEmphasis = iota
	BadgeStrong
)

// Badge annotates an item with a short counter or status label.
type Badge struct {
	Label    string
	Emphasis BadgeEmphasis
}

// Icon is a renderable glyph for a navigation item.
type Icon string

// Render returns the glyph fitted to the given cell width. A zero width
// returns the glyph unchanged.
func (i Icon) Render(width int) string {
	s := string(i)
	if width <= 0 || s == "" {
		return s
	}
	return truncate.String(s, uint(width))
}

// Item is one node in a navigation forest. Items are caller-owned plain
// data, passed in whole on each render and never mutated by the tree.
//
// An item with one or more children is a group node: activating it toggles
// its expansion state and never fires a click, even when OnClick is set.
// An item with no children is a leaf and reports activation to the caller.
type Item struct {
	ID         string
	Label      string
	ShortLabel string
	Icon       Icon
	Badge      *Badge
	Href       string
	OnClick    func(Item)
	IsActive   bool
	IsDisabled bool
	Children   []Item
}

// IsGroup reports whether the item carries children. An empty (non-nil)
// Children slice still counts as a leaf.
func (it Item) IsGroup() bool {
	return len(it.Children) > 0
}

// DisplayLabel returns the label appropriate for compact layouts.
func (it Item) DisplayLabel(preferShort bool) string {
	if preferShort && it.ShortLabel != "" {
		return it.ShortLabel
	}
	return it.Label
}
