package action

// Canonical descriptor factories. Each returns a fully formed descriptor
// for the given callback; they hold no state and perform no dispatch,
// existing only so call sites stop rebuilding the same literals.

func View(run func()) Descriptor {
	return Descriptor{ID: "view", Label: "View", Icon: "◉", ShortcutHint: "enter", Run: run}
}

func Edit(run func()) Descriptor {
	return Descriptor{ID: "edit", Label: "Edit", Icon: "✎", ShortcutHint: "e", Run: run}
}

func Download(run func()) Descriptor {
	return Descriptor{ID: "download", Label: "Download", Icon: "↓", ShortcutHint: "d", Run: run}
}

func Share(run func()) Descriptor {
	return Descriptor{ID: "share", Label: "Share", Icon: "↗", Run: run}
}

func Copy(run func()) Descriptor {
	return Descriptor{ID: "copy", Label: "Copy", Icon: "⧉", ShortcutHint: "y", Run: run}
}

func Compare(run func()) Descriptor {
	return Descriptor{ID: "compare", Label: "Compare", Icon: "⇄", Run: run}
}

// Favorite flips its label to reflect the current favorite state.
func Favorite(run func(), favorited bool) Descriptor {
	label := "Add to favorites"
	if favorited {
		label = "Remove from favorites"
	}
	return Descriptor{ID: "favorite", Label: label, Icon: "★", Run: run}
}

func Archive(run func()) Descriptor {
	return Descriptor{ID: "archive", Label: "Archive", Icon: "▣", Run: run}
}

func Delete(run func()) Descriptor {
	return Descriptor{ID: "del", Label: "Delete", Icon: "✕", Destructive: true, Run: run}
}

func Settings(href string) Descriptor {
	return Descriptor{ID: "settings", Label: "Settings", Icon: "⚙", Href: href}
}

func OpenExternal(label, href string) Descriptor {
	return Descriptor{ID: "open-external", Label: label, Icon: "➚", Href: href, External: true}
}

// DocumentCallbacks carries the per-document handlers a caller wires into
// the canonical document menu.
type DocumentCallbacks struct {
	View      func()
	Edit      func()
	Download  func()
	Share     func()
	Compare   func()
	Favorite  func()
	Archive   func()
	Delete    func()
	Favorited bool
}

// DocumentActions assembles the canonical menu for a stored document.
func DocumentActions(cb DocumentCallbacks) []Group {
	return []Group{
		{
			Actions: []Descriptor{
				View(cb.View),
				Edit(cb.Edit),
				Compare(cb.Compare),
			},
		},
		{
			Label: "Organize",
			Actions: []Descriptor{
				Favorite(cb.Favorite, cb.Favorited),
				Download(cb.Download),
				Share(cb.Share),
			},
		},
		{
			Actions: []Descriptor{
				Archive(cb.Archive),
				Delete(cb.Delete),
			},
		},
	}
}

// SearchResultCallbacks carries the handlers for a search-result menu.
type SearchResultCallbacks struct {
	View      func()
	Copy      func()
	Compare   func()
	SourceURL string
}

// SearchResultActions assembles the canonical menu for one search result.
func SearchResultActions(cb SearchResultCallbacks) []Group {
	groups := []Group{
		{
			Actions: []Descriptor{
				View(cb.View),
				Copy(cb.Copy),
				Compare(cb.Compare),
			},
		},
	}
	if cb.SourceURL != "" {
		groups = append(groups, Group{
			Actions: []Descriptor{OpenExternal("Open source", cb.SourceURL)},
		})
	}
	return groups
}

// UploadCallbacks carries the handlers for an uploaded-file menu.
type UploadCallbacks struct {
	View    func()
	Retry   func()
	Delete  func()
	Pending bool
}

// UploadedFileActions assembles the canonical menu for an uploaded file.
// While the upload is still processing, view is disabled and a retry entry
// appears in its place.
func UploadedFileActions(cb UploadCallbacks) []Group {
	view := View(cb.View)
	view.Disabled = cb.Pending
	first := Group{Actions: []Descriptor{view}}
	if cb.Pending {
		first.Actions = append(first.Actions, Descriptor{ID: "retry", Label: "Retry processing", Icon: "↻", Run: cb.Retry})
	}
	return []Group{
		first,
		{Actions: []Descriptor{Delete(cb.Delete)}},
	}
}
