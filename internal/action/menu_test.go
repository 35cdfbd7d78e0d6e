package action

import (
	"strings"
	"testing"
)

func testGroups(calls map[string]int) []Group {
	count := func(id string) func() {
		return func() { calls[id]++ }
	}
	return []Group{
		{Label: "File", Actions: []Descriptor{
			{ID: "view", Label: "View", Run: count("view")},
			{ID: "edit", Label: "Edit", Run: count("edit")},
		}},
		{Actions: []Descriptor{
			{ID: "del", Label: "Delete", Destructive: true, Run: count("del")},
		}},
	}
}

func separatorCount(view string) (count int, firstSeparatorLine int) {
	firstSeparatorLine = -1
	for i, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "─") {
			count++
			if firstSeparatorLine == -1 {
				firstSeparatorLine = i
			}
		}
	}
	return count, firstSeparatorLine
}

func TestMenuRendersSingleSeparatorBetweenGroups(t *testing.T) {
	calls := map[string]int{}
	m := NewMenu("doc", "", testGroups(calls), NewDispatcher(nil, nil))
	m.Open()

	view := m.View(0)
	lines := strings.Split(view, "\n")

	count, at := separatorCount(view)
	if count != 1 {
		t.Fatalf("expected exactly one separator, got %d in %q", count, view)
	}
	if at == 0 {
		t.Fatalf("expected no separator before the first group")
	}
	if strings.Contains(lines[len(lines)-1], "─") {
		t.Fatalf("expected no separator after the last group")
	}
	if !strings.HasPrefix(stripStyles(lines[0]), "File") {
		t.Fatalf("expected first group heading first, got %q", lines[0])
	}
}

func TestMenuHeadingPrecedesGroupActions(t *testing.T) {
	calls := map[string]int{}
	m := NewMenu("doc", "", testGroups(calls), NewDispatcher(nil, nil))
	m.Open()

	view := stripStyles(m.View(0))
	if strings.Index(view, "File") > strings.Index(view, "View") {
		t.Fatalf("expected heading before its actions: %q", view)
	}
}

func TestMenuClosedRendersNothing(t *testing.T) {
	m := NewMenu("doc", "", testGroups(map[string]int{}), NewDispatcher(nil, nil))
	if view := m.View(0); view != "" {
		t.Fatalf("expected empty view when closed, got %q", view)
	}
}

func TestMenuSelectDispatchesOnceAndCloses(t *testing.T) {
	calls := map[string]int{}
	m := NewMenu("doc", "", testGroups(calls), NewDispatcher(nil, nil))
	m.Open()

	if cmd := m.Select(); cmd != nil {
		t.Fatalf("expected callback selection to return no command")
	}
	if calls["view"] != 1 {
		t.Fatalf("expected view called once, got %d", calls["view"])
	}
	if m.IsOpen() {
		t.Fatalf("expected menu closed after selection")
	}
}

func TestMenuDestructiveSelectionDispatchesExactlyOnce(t *testing.T) {
	calls := map[string]int{}
	m := NewMenu("doc", "", testGroups(calls), NewDispatcher(nil, nil))
	m.Open()
	m.MoveDown()
	m.MoveDown()

	desc, ok := m.Current()
	if !ok || desc.ID != "del" {
		t.Fatalf("expected cursor on delete, got %+v", desc)
	}
	m.Select()
	if calls["del"] != 1 {
		t.Fatalf("expected delete called exactly once, got %d", calls["del"])
	}
}

func TestMenuDisabledSelectionKeepsPopoverOpen(t *testing.T) {
	calls := 0
	groups := []Group{{Actions: []Descriptor{
		{ID: "view", Label: "View", Disabled: true, Run: func() { calls++ }},
	}}}
	m := NewMenu("doc", "", groups, NewDispatcher(nil, nil))
	m.Open()

	if cmd := m.Select(); cmd != nil {
		t.Fatalf("expected no dispatch for disabled action")
	}
	if calls != 0 {
		t.Fatalf("expected no callback, got %d", calls)
	}
	if !m.IsOpen() {
		t.Fatalf("expected popover to stay open")
	}
}

func TestMenuCursorWrapsAndResetsOnOpen(t *testing.T) {
	calls := map[string]int{}
	m := NewMenu("doc", "", testGroups(calls), NewDispatcher(nil, nil))
	m.Open()

	m.MoveUp()
	if desc, _ := m.Current(); desc.ID != "del" {
		t.Fatalf("expected wrap to last action, got %s", desc.ID)
	}
	m.MoveDown()
	if desc, _ := m.Current(); desc.ID != "view" {
		t.Fatalf("expected wrap to first action, got %s", desc.ID)
	}

	m.MoveDown()
	m.Close()
	m.Open()
	if desc, _ := m.Current(); desc.ID != "view" {
		t.Fatalf("expected cursor reset on reopen, got %s", desc.ID)
	}
}

// stripStyles removes ANSI escapes for content assertions.
func stripStyles(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == 0x1b:
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
