package events

import "github.com/docworks/docnav/internal/logging"

type WorkspaceTracer struct{}

var Workspace = WorkspaceTracer{}

func (WorkspaceTracer) Scan(root string, documents int) {
	logging.Trace("workspace.scan", map[string]interface{}{"root": root, "documents": documents})
}

func (WorkspaceTracer) Change(path, op string) {
	logging.Trace("workspace.change", map[string]interface{}{"path": path, "op": op})
}

func (WorkspaceTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("workspace.error", map[string]interface{}{"error": err.Error()})
}
