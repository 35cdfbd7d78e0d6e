package action

import "sync"

// Location is the minimal Navigator: it records the current href the way a
// browser location would, replacing it wholesale on every navigation. The
// consumer rebuilds whatever view state it derives from the location, which
// gives internal navigation its full-reload semantics.
type Location struct {
	mu   sync.Mutex
	href string
}

// NewLocation creates a location at the given starting href.
func NewLocation(href string) *Location {
	return &Location{href: href}
}

// Navigate replaces the current href.
func (l *Location) Navigate(href string) error {
	l.mu.Lock()
	l.href = href
	l.mu.Unlock()
	return nil
}

// Current returns the current href.
func (l *Location) Current() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.href
}
