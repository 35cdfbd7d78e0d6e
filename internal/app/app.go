package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docworks/docnav/internal/logging"
	"github.com/docworks/docnav/internal/ui"
	"github.com/docworks/docnav/internal/workspace"
)

// Config describes user-provided application options.
type Config struct {
	WorkspaceDir string
	StateFile    string
	Width        int
	Height       int
	ShowFooter   bool
	Collapsed    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	docs, scanErrs := workspace.Scan(cfg.WorkspaceDir)
	for _, err := range scanErrs {
		logging.Error(err)
	}

	watcher, err := workspace.NewWatcher(cfg.WorkspaceDir, 500*time.Millisecond)
	if err != nil {
		return fmt.Errorf("watch workspace: %w", err)
	}
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Documents:  docs,
		Watcher:    watcher,
		StatePath:  cfg.StateFile,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Collapsed:  cfg.Collapsed,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
