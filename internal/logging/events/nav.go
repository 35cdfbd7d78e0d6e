package events

import "github.com/docworks/docnav/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Expand(id string) {
	logging.Trace("nav.expand", map[string]interface{}{"id": id})
}

func (NavTracer) Collapse(id string) {
	logging.Trace("nav.collapse", map[string]interface{}{"id": id})
}

func (NavTracer) ItemClick(id, label string) {
	logging.Trace("nav.item-click", map[string]interface{}{"id": id, "label": label})
}

func (NavTracer) DisabledClick(id string) {
	logging.Trace("nav.disabled-click", map[string]interface{}{"id": id})
}

func (NavTracer) Cursor(id string, row int) {
	logging.Trace("nav.cursor", map[string]interface{}{"id": id, "row": row})
}
