package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docworks/docnav/internal/action"
	"github.com/docworks/docnav/internal/logging/events"
	"github.com/docworks/docnav/internal/workspace"
)

// workspaceEventMsg wraps a watcher event for the update loop.
type workspaceEventMsg struct {
	event workspace.Event
}

// workspaceDoneMsg signals that the watcher channel closed.
type workspaceDoneMsg struct{}

func waitForWorkspaceEvent(w *workspace.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-w.Events()
		if !ok {
			return workspaceDoneMsg{}
		}
		return workspaceEventMsg{event: event}
	}
}

func (m *Model) handleWorkspaceEventMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(workspaceEventMsg)
	if !ok {
		return nil
	}
	if update.event.Err != nil {
		m.errMsg = update.event.Err.Error()
	} else {
		m.errMsg = ""
	}
	m.store.SetDocuments(update.event.Documents)
	m.tree.SetItems(m.buildForest())
	if m.filter.Active() {
		m.filter.apply(m.store.Documents())
	}
	m.clampCursor()
	if m.watcher != nil {
		return waitForWorkspaceEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleWorkspaceDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(action.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Menu.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Kind == action.KindNavigate {
		// The dispatcher already moved the location; rebuild what hangs
		// off it.
		m.setLocation(m.location.Current())
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedW {
		m.width = size.Width
	}
	if !m.fixedH {
		m.height = size.Height
	}
	events.App.Resize(size.Width, size.Height)
	return nil
}
