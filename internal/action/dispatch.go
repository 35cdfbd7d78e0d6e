package action

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docworks/docnav/internal/logging/events"
)

// Navigator performs an in-place location change for internal hrefs. The
// default implementation replaces the current route wholesale; transient
// view state does not survive the transition.
type Navigator interface {
	Navigate(href string) error
}

// Opener launches an external href in a new browsing context with no
// back-reference to this process.
type Opener interface {
	OpenExternal(href string) error
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(href string) error

func (f NavigatorFunc) Navigate(href string) error { return f(href) }

// OpenerFunc adapts a plain function to the Opener interface.
type OpenerFunc func(href string) error

func (f OpenerFunc) OpenExternal(href string) error { return f(href) }

// Result communicates the outcome of a navigation dispatch.
type Result struct {
	ActionID string
	Kind     Kind
	Err      error
}

// Dispatcher routes selected descriptors to their single dispatch path.
type Dispatcher struct {
	navigator Navigator
	opener    Opener
}

// NewDispatcher wires the dispatcher to its navigation collaborators.
func NewDispatcher(navigator Navigator, opener Opener) *Dispatcher {
	return &Dispatcher{navigator: navigator, opener: opener}
}

// Dispatch executes the descriptor's resolved path. Disabled descriptors
// dispatch nothing regardless of their other fields. Callbacks run
// synchronously before this function returns; navigation paths are wrapped
// in a command and are fire-and-forget from the menu's perspective.
func (d *Dispatcher) Dispatch(desc Descriptor) tea.Cmd {
	if desc.Disabled {
		return nil
	}
	kind := desc.Kind()
	switch kind {
	case KindExternal:
		events.Menu.Dispatch(desc.ID, kind.String())
		href := desc.Href
		return func() tea.Msg {
			var err error
			if d.opener != nil {
				err = d.opener.OpenExternal(href)
			}
			events.Menu.Error(err)
			return Result{ActionID: desc.ID, Kind: kind, Err: err}
		}
	case KindNavigate:
		events.Menu.Dispatch(desc.ID, kind.String())
		href := desc.Href
		return func() tea.Msg {
			var err error
			if d.navigator != nil {
				err = d.navigator.Navigate(href)
			}
			events.Menu.Error(err)
			return Result{ActionID: desc.ID, Kind: kind, Err: err}
		}
	case KindCallback:
		events.Menu.Dispatch(desc.ID, kind.String())
		desc.Run()
		return nil
	default:
		events.Menu.Inert(desc.ID)
		return nil
	}
}
