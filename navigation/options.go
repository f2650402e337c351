package navigation

// NavType selects how Navigate places a view.
type NavType int

const (
	// NavPush pushes the view onto the back-stack.
	NavPush NavType = iota
	// NavSheet presents the view as a standard modal sheet.
	NavSheet
	// NavFullSheet presents the view as a full-height modal sheet.
	NavFullSheet
	// NavCustomSheet presents the view as a modal sheet with caller
	// supplied geometry.
	NavCustomSheet
)

// SheetGeometry is the sizing for a custom sheet presentation.
type SheetGeometry struct {
	Height      int
	MinHeight   int
	Dismissable bool
}

// Option configures a single navigation call.
type Option func(*callOptions)

type callOptions struct {
	id        string
	retained  bool
	navBar    *bool
	onDismiss func()
	geometry  SheetGeometry
}

func applyOptions(opts []Option) callOptions {
	o := callOptions{
		retained: true,
		geometry: SheetGeometry{Dismissable: true},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithID sets an explicit entry id instead of a generated one.
// Supplying an id that collides with an existing entry is permitted and
// only affects later PopToView resolution.
func WithID(id string) Option {
	return func(o *callOptions) { o.id = id }
}

// WithRetained controls whether the entry counts as a landing point for
// pop-to-previous navigation. Defaults to true.
func WithRetained(retained bool) Option {
	return func(o *callOptions) { o.retained = retained }
}

// WithNavBar overrides the controller's default nav-bar decoration for
// this call only. When the option is absent the controller default is
// inherited; an explicit false always suppresses the bar.
func WithNavBar(show bool) Option {
	return func(o *callOptions) { o.navBar = &show }
}

// WithOnDismiss registers fn to run after the presented modal is
// dismissed. A panic inside fn propagates to the host's error boundary.
func WithOnDismiss(fn func()) Option {
	return func(o *callOptions) { o.onDismiss = fn }
}

// WithGeometry sets custom sheet sizing for NavCustomSheet.
func WithGeometry(g SheetGeometry) Option {
	return func(o *callOptions) { o.geometry = g }
}

// Destination selects what a Dismiss call targets.
type Destination struct {
	kind destinationKind
	id   string
}

type destinationKind int

const (
	destPrevious destinationKind = iota
	destRoot
	destView
	destModal
)

// ToPrevious pops to the nearest retained entry below the current one.
func ToPrevious() Destination { return Destination{kind: destPrevious} }

// ToRoot pops everything above the bottom-most entry.
func ToRoot() Destination { return Destination{kind: destRoot} }

// ToView pops to the top-most entry with the given id. An unmatched id
// leaves the stack unchanged.
func ToView(id string) Destination { return Destination{kind: destView, id: id} }

// ToModal closes the active modal presentation as a unit.
func ToModal() Destination { return Destination{kind: destModal} }

// String returns the destination name for logging.
func (d Destination) String() string {
	switch d.kind {
	case destRoot:
		return "root"
	case destView:
		return "view:" + d.id
	case destModal:
		return "modal"
	default:
		return "previous"
	}
}
