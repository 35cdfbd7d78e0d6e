package nav

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/docworks/docnav/internal/logging"
)

// StateVersion is the current schema version for persisted tree state.
const StateVersion = 1

// State is the persisted form of a tree's expansion set. Only explicit
// expansion membership is stored; everything else derives from the forest
// supplied at runtime.
type State struct {
	Version  int      `json:"version"`
	Expanded []string `json:"expanded"`
}

// SaveState writes the expansion set to path. Persistence is best effort:
// failures are logged and the UI carries on.
func (t *Tree) SaveState(path string) {
	if path == "" {
		return
	}
	state := State{Version: StateVersion, Expanded: t.ExpandedIDs()}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		logging.Error(err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logging.Error(err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logging.Error(err)
	}
}

// LoadState restores the expansion set from path. A missing, corrupt, or
// version-mismatched file leaves the tree at its defaults.
func (t *Tree) LoadState(path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		logging.Error(err)
		return
	}
	if state.Version != StateVersion {
		return
	}
	t.RestoreExpanded(state.Expanded)
}
