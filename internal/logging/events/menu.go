package events

import "github.com/docworks/docnav/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Open(menuID string) {
	logging.Trace("menu.open", map[string]interface{}{"menu": menuID})
}

func (MenuTracer) Close(menuID string) {
	logging.Trace("menu.close", map[string]interface{}{"menu": menuID})
}

func (MenuTracer) Dispatch(actionID, kind string) {
	logging.Trace("menu.dispatch", map[string]interface{}{"action": actionID, "kind": kind})
}

// Inert records selection of a descriptor that resolves to no dispatch path.
// Caller contract violation, traced for development builds only.
func (MenuTracer) Inert(actionID string) {
	logging.Trace("menu.inert", map[string]interface{}{"action": actionID})
}

func (MenuTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.error", map[string]interface{}{"error": err.Error()})
}
