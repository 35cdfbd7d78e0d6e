package ui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docworks/docnav/internal/action"
	"github.com/docworks/docnav/internal/nav"
	"github.com/docworks/docnav/internal/theme"
	"github.com/docworks/docnav/internal/workspace"
)

var styles = theme.Default()

const (
	locationHome     = "home"
	locationSearch   = "search"
	locationUploads  = "uploads"
	locationSettings = "settings"

	infoDisplayDuration = 4 * time.Second
)

type msgHandler func(tea.Msg) tea.Cmd

// Model is the Bubble Tea model for the document navigator: a sidebar
// navigation tree over the workspace, a content pane per location, and a
// contextual action menu for the focused document.
type Model struct {
	tree       *nav.Tree
	menu       *action.Menu
	dispatcher *action.Dispatcher
	location   *action.Location

	store   workspace.Store
	watcher *workspace.Watcher

	cursor     int
	collapsed  bool
	filtering  bool
	filter     *filterState
	statePath  string
	width      int
	height     int
	fixedW     bool
	fixedH     bool
	showFooter bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	filterCursor cursor.Model

	handlers map[reflect.Type]msgHandler
}

// Options configures a Model.
type Options struct {
	Documents  []workspace.Document
	Watcher    *workspace.Watcher
	Opener     action.Opener
	StatePath  string
	Width      int
	Height     int
	ShowFooter bool
	Collapsed  bool
}

// NewModel initialises the UI over the given workspace inventory.
func NewModel(opts Options) *Model {
	store := workspace.NewStore()
	store.SetDocuments(opts.Documents)

	location := action.NewLocation(locationHome)
	opener := opts.Opener
	if opener == nil {
		opener = action.ExecOpener{}
	}

	m := &Model{
		store:      store,
		watcher:    opts.Watcher,
		location:   location,
		dispatcher: action.NewDispatcher(location, opener),
		statePath:  opts.StatePath,
		collapsed:  opts.Collapsed,
		showFooter: opts.ShowFooter,
		filter:     newFilterState(),
	}
	m.tree = nav.New(m.buildForest())
	m.tree.OnItemClick(m.handleItemClick)
	m.tree.LoadState(m.statePath)
	m.syncActiveItem()

	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedW = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedH = true
	}

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForWorkspaceEvent(m.watcher))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(workspaceEventMsg{}): m.handleWorkspaceEventMsg,
		reflect.TypeOf(workspaceDoneMsg{}):  m.handleWorkspaceDoneMsg,
		reflect.TypeOf(action.Result{}):     m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// buildForest assembles the sidebar: workspace documents grouped by agency,
// then the fixed application sections.
func (m *Model) buildForest() []nav.Item {
	docs := m.store.Documents()
	forest := []nav.Item{
		{
			ID:       "documents",
			Label:    "Documents",
			Icon:     "▤",
			Badge:    &nav.Badge{Label: fmt.Sprintf("%d", len(docs))},
			Children: workspace.Forest(docs),
		},
		{ID: "search", Label: "Search", ShortLabel: "Find", Icon: "⌕", Href: locationSearch},
		{ID: "uploads", Label: "Uploads", Icon: "⇪", Href: locationUploads},
		{ID: "settings", Label: "Settings", Icon: "⚙", Href: locationSettings},
	}
	return forest
}

// handleItemClick receives leaf activations from the tree and performs the
// internal navigation they stand for.
func (m *Model) handleItemClick(item nav.Item) {
	if item.Href == "" {
		return
	}
	m.setLocation(item.Href)
}

// setLocation performs a full location change: the href replaces the old one
// and any transient per-location state is discarded before the new location
// renders.
func (m *Model) setLocation(href string) {
	_ = m.location.Navigate(href)
	m.filter.Reset()
	m.errMsg = ""
	m.forceClearInfo()
	if m.menu != nil {
		m.menu.Close()
		m.menu = nil
	}
	m.syncActiveItem()
}

// syncActiveItem keeps the tree's active id in step with the location.
func (m *Model) syncActiveItem() {
	href := m.location.Current()
	if id, ok := strings.CutPrefix(href, "doc/"); ok {
		m.tree.SetActiveID(id)
		return
	}
	switch href {
	case locationSearch, locationUploads, locationSettings:
		m.tree.SetActiveID(href)
	default:
		m.tree.SetActiveID("")
	}
}

func (m *Model) currentDocument() (workspace.Document, bool) {
	if id, ok := strings.CutPrefix(m.location.Current(), "doc/"); ok {
		return m.store.Find(id)
	}
	rows := m.tree.Rows()
	if m.cursor >= 0 && m.cursor < len(rows) {
		return m.store.Find(rows[m.cursor].Item.ID)
	}
	return workspace.Document{}, false
}

// openDocumentMenu builds and opens the contextual menu for doc.
func (m *Model) openDocumentMenu(doc workspace.Document) {
	groups := action.DocumentActions(action.DocumentCallbacks{
		View:     func() { m.setLocation("doc/" + doc.ID) },
		Edit:     func() { m.setInfo(fmt.Sprintf("Editing %s", doc.Title)) },
		Download: func() { m.setInfo(fmt.Sprintf("Download queued for %s", doc.Title)) },
		Share:    func() { m.setInfo(fmt.Sprintf("Share link copied for %s", doc.Title)) },
		Compare:  func() { m.setInfo(fmt.Sprintf("Select a second document to compare with %s", doc.Title)) },
		Favorite: func() { m.setInfo(fmt.Sprintf("Favorite toggled for %s", doc.Title)) },
		Archive:  func() { m.setInfo(fmt.Sprintf("Archived %s", doc.Title)) },
		Delete:   func() { m.setInfo(fmt.Sprintf("Deleted %s", doc.Title)) },
	})
	if doc.SourceURL != "" {
		groups = append(groups, action.Group{
			Label:   "Source",
			Actions: []action.Descriptor{action.OpenExternal("Open posting", doc.SourceURL)},
		})
	}
	m.menu = action.NewMenu("document:"+doc.ID, doc.Title, groups, m.dispatcher)
	m.menu.Open()
}

func (m *Model) setInfo(info string) {
	m.infoMsg = info
	if info == "" {
		m.infoExpire = time.Time{}
		return
	}
	m.infoExpire = time.Now().Add(infoDisplayDuration)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) clampCursor() {
	n := m.visibleRowCount()
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m *Model) visibleRowCount() int {
	if m.filter.Active() {
		return len(m.filter.Matches())
	}
	return m.tree.Len()
}

// saveState persists the expansion set; called on quit.
func (m *Model) saveState() {
	m.tree.SaveState(m.statePath)
}

// Tree exposes the navigation tree, primarily for tests.
func (m *Model) Tree() *nav.Tree { return m.tree }

// Location exposes the current internal href, primarily for tests.
func (m *Model) Location() string { return m.location.Current() }
