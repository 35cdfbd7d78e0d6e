package nav

import (
	"sort"

	"github.com/docworks/docnav/internal/logging/events"
)

// Row is one visible line of the rendered forest: an item plus its depth.
// Roots sit at level 0.
type Row struct {
	Item  Item
	Level int
}

// Tree renders a forest of navigation items and tracks which group nodes are
// expanded. The forest itself stays caller-owned and immutable; the only
// state a Tree holds is the expansion set and the active-item id.
//
// Expansion membership is independent per id: collapsing a parent does not
// clear descendant membership, so re-expanding the parent restores the prior
// descendant state.
type Tree struct {
	items       []Item
	expanded    map[string]struct{}
	activeID    string
	onItemClick func(Item)
}

// New constructs a tree over the given forest with an empty expansion set.
func New(items []Item) *Tree {
	return &Tree{
		items:    items,
		expanded: make(map[string]struct{}),
	}
}

// SetItems replaces the forest. Expansion state is kept; ids that no longer
// resolve simply stop matching any row.
func (t *Tree) SetItems(items []Item) {
	t.items = items
}

// SetActiveID marks which item id renders as active. The per-item IsActive
// override stays additive: either signal makes a row active.
func (t *Tree) SetActiveID(id string) {
	t.activeID = id
}

// ActiveID returns the caller-supplied active item id.
func (t *Tree) ActiveID() string {
	return t.activeID
}

// OnItemClick registers the callback invoked when a leaf is activated.
func (t *Tree) OnItemClick(fn func(Item)) {
	t.onItemClick = fn
}

// IsExpanded reports expansion-set membership for the given id.
func (t *Tree) IsExpanded(id string) bool {
	_, ok := t.expanded[id]
	return ok
}

// Toggle flips expansion-set membership for the given id.
func (t *Tree) Toggle(id string) {
	if _, ok := t.expanded[id]; ok {
		delete(t.expanded, id)
		events.Nav.Collapse(id)
		return
	}
	t.expanded[id] = struct{}{}
	events.Nav.Expand(id)
}

// IsActiveItem reports whether the item renders as active.
func (t *Tree) IsActiveItem(it Item) bool {
	return (t.activeID != "" && it.ID == t.activeID) || it.IsActive
}

// Activate applies the activation rules to the given item:
// disabled items do nothing, group nodes toggle their expansion state, and
// leaves report through the click callback. A group node never fires its
// OnClick, even when one is set.
func (t *Tree) Activate(it Item) {
	if it.IsDisabled {
		events.Nav.DisabledClick(it.ID)
		return
	}
	if it.IsGroup() {
		t.Toggle(it.ID)
		return
	}
	events.Nav.ItemClick(it.ID, it.Label)
	if it.OnClick != nil {
		it.OnClick(it)
	}
	if t.onItemClick != nil {
		t.onItemClick(it)
	}
}

// ActivateRow activates the item at the given index of the visible rows.
func (t *Tree) ActivateRow(idx int) {
	rows := t.Rows()
	if idx < 0 || idx >= len(rows) {
		return
	}
	t.Activate(rows[idx].Item)
}

// Rows flattens the forest into the currently visible rows. Children appear
// only under group nodes that are expanded; collapsed subtrees contribute
// nothing.
func (t *Tree) Rows() []Row {
	rows := make([]Row, 0, len(t.items))
	var walk func(items []Item, level int)
	walk = func(items []Item, level int) {
		for _, it := range items {
			rows = append(rows, Row{Item: it, Level: level})
			if it.IsGroup() && t.IsExpanded(it.ID) {
				walk(it.Children, level+1)
			}
		}
	}
	walk(t.items, 0)
	return rows
}

// Len returns the number of currently visible rows.
func (t *Tree) Len() int {
	return len(t.Rows())
}

// RowIndex returns the visible row index for the given id, or -1.
func (t *Tree) RowIndex(id string) int {
	for i, row := range t.Rows() {
		if row.Item.ID == id {
			return i
		}
	}
	return -1
}

// ExpandedIDs returns the expansion set in sorted order.
func (t *Tree) ExpandedIDs() []string {
	ids := make([]string, 0, len(t.expanded))
	for id := range t.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RestoreExpanded replaces the expansion set with the given ids.
func (t *Tree) RestoreExpanded(ids []string) {
	t.expanded = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		t.expanded[id] = struct{}{}
	}
}
