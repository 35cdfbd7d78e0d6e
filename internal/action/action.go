// Package action implements the contextual action menu: declarative,
// caller-supplied groups of labeled actions, each resolving to exactly one
// dispatch path when selected.
package action

// Kind identifies the dispatch path a descriptor resolves to.
type Kind int

const (
	// KindNone marks a descriptor with neither target set. Selecting it is
	// inert; such a descriptor is a caller contract violation, not a fault.
	KindNone Kind = iota
	KindCallback
	KindNavigate
	KindExternal
)

func (k Kind) String() string {
	switch k {
	case KindCallback:
		return "callback"
	case KindNavigate:
		return "navigate"
	case KindExternal:
		return "external"
	default:
		return "none"
	}
}

// Descriptor is one selectable menu entry. Exactly one target should be
// populated: Run for an in-page callback, or Href for navigation with
// External choosing between an in-place location change and a new browsing
// context.
type Descriptor struct {
	ID           string
	Label        string
	Icon         string
	ShortcutHint string
	Disabled     bool
	// Destructive is a styling hint only; it never changes how or how often
	// the action dispatches.
	Destructive bool
	Run         func()
	Href        string
	External    bool
}

// Kind resolves which dispatch path the descriptor takes. Href wins over
// Run when both are set, matching the documented priority order.
func (d Descriptor) Kind() Kind {
	switch {
	case d.Href != "" && d.External:
		return KindExternal
	case d.Href != "":
		return KindNavigate
	case d.Run != nil:
		return KindCallback
	default:
		return KindNone
	}
}

// Group is an ordered run of descriptors under an optional heading. A menu
// is an ordered slice of groups; separators render between consecutive
// groups and nowhere else.
type Group struct {
	Label   string
	Actions []Descriptor
}

// Flatten returns the descriptors of all groups in display order.
func Flatten(groups []Group) []Descriptor {
	var out []Descriptor
	for _, g := range groups {
		out = append(out, g.Actions...)
	}
	return out
}
