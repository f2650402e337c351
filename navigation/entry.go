package navigation

// View is an opaque render payload stored on the back-stack. The
// navigation core never inspects a view's content; it only stores the
// handle and hands it back to the renderer.
type View interface {
	Render() string
}

// Kind distinguishes a primary pushed screen from a modal's root content.
type Kind int

const (
	// KindScreen is a regular pushed view.
	KindScreen Kind = iota
	// KindSheet is the root content of a modal presentation.
	KindSheet
)

// Direction reports how the current entry changed during the latest
// mutation. Hosts use it to pick the transition animation.
type Direction int

const (
	// DirectionNone means the stack did not logically move, for example
	// when a modal was opened or closed.
	DirectionNone Direction = iota
	// DirectionPush means a new entry became current.
	DirectionPush
	// DirectionPop means a previous entry became current again.
	DirectionPop
)

// String returns the direction name for logging.
func (d Direction) String() string {
	switch d {
	case DirectionPush:
		return "push"
	case DirectionPop:
		return "pop"
	default:
		return "none"
	}
}

// Entry is one back-stack slot: an opaque view plus navigation metadata.
// Entries are immutable once pushed.
//
// IDs are unique at creation time within a stack when generated, but
// caller-supplied duplicates are permitted; PopToView resolves them to
// the top-most match.
type Entry struct {
	// ID identifies the entry for targeted pops.
	ID string
	// Content is the opaque view payload.
	Content View
	// Kind records whether the entry is a screen or a modal root.
	Kind Kind
	// Retained marks the entry as a valid landing point for
	// pop-to-previous navigation. Non-retained entries are shown
	// normally but skipped, and not kept, once passed.
	Retained bool
}
