package navigation

import (
	"time"

	"github.com/google/uuid"

	"github.com/navstack/navstack/internal/logging"
)

// Presentation identifies which modal mode, if any, a controller is
// currently presenting. Exactly one mode is active at a time.
type Presentation int

const (
	// PresentNone means no modal is active.
	PresentNone Presentation = iota
	// PresentSheet is a standard sheet presentation.
	PresentSheet
	// PresentFullSheet is a full-height sheet presentation.
	PresentFullSheet
	// PresentCustomSheet is a sheet with caller supplied geometry.
	PresentCustomSheet
)

// String returns the presentation name for logging.
func (p Presentation) String() string {
	switch p {
	case PresentSheet:
		return "sheet"
	case PresentFullSheet:
		return "fullSheet"
	case PresentCustomSheet:
		return "customSheet"
	default:
		return "none"
	}
}

// Change describes one observable mutation of a controller. Hosts bind
// to the change feed for rendering and pick the transition animation
// from Direction.
type Change struct {
	Current   *Entry
	Previous  *Entry
	Direction Direction
}

// Controller owns one BackStack, decides which view is current, and
// coordinates modal presentation layered on top of that stack.
//
// A controller created to host a modal's content keeps a non-owning
// back-reference to its presenter, used purely to route dismiss-the-
// modal requests. The presenter owns the presentation state and the
// content controller, and is the only place that clears them.
//
// Controllers are confined to the UI's execution context; they are not
// safe for concurrent use.
type Controller struct {
	stack  *BackStack
	parent *Controller

	current   *Entry
	previous  *Entry
	direction Direction

	presentation Presentation
	modal        *Controller
	modalView    View
	geometry     SheetGeometry
	onDismiss    func()

	defaultNavBar bool
	decorate      Decorator
	animator      Animator
	scheduler     Scheduler
	logger        logging.Logger

	listeners []func(Change)
	destroyed bool
}

// ControllerOption configures a controller at construction time.
type ControllerOption func(*Controller)

// WithDefaultNavBar sets the controller-wide nav-bar default, overridden
// per call via WithNavBar.
func WithDefaultNavBar(show bool) ControllerOption {
	return func(c *Controller) { c.defaultNavBar = show }
}

// WithDecorator sets the decoration hook applied on every push and
// present.
func WithDecorator(d Decorator) ControllerOption {
	return func(c *Controller) { c.decorate = d }
}

// WithAnimator sets the scoped-animation executor.
func WithAnimator(a Animator) ControllerOption {
	return func(c *Controller) { c.animator = a }
}

// WithScheduler sets the deferred-call scheduler.
func WithScheduler(s Scheduler) ControllerOption {
	return func(c *Controller) { c.scheduler = s }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a root controller with an empty back-stack.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		stack:         NewBackStack(),
		defaultNavBar: true,
		decorate:      NopDecorator(),
		animator:      NopAnimator(),
		scheduler:     TimerScheduler(),
		logger:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the entry on top of the stack, or nil when empty.
func (c *Controller) Current() *Entry { return c.current }

// Previous returns the entry that was current before the latest
// mutation, or nil.
func (c *Controller) Previous() *Entry { return c.previous }

// LastDirection reports how the latest mutation moved the stack.
func (c *Controller) LastDirection() Direction { return c.direction }

// Presenting returns the active modal mode, PresentNone when idle.
func (c *Controller) Presenting() Presentation { return c.presentation }

// ModalView returns the content handle of the active modal, or nil.
func (c *Controller) ModalView() View { return c.modalView }

// Modal returns the controller owning the active modal's navigation, or
// nil when idle.
func (c *Controller) Modal() *Controller { return c.modal }

// Geometry returns the sizing of the active custom sheet.
func (c *Controller) Geometry() SheetGeometry { return c.geometry }

// Parent returns the presenting controller for modal content
// controllers, nil for the root.
func (c *Controller) Parent() *Controller { return c.parent }

// Depth returns the number of entries on the controller's stack.
func (c *Controller) Depth() int { return c.stack.Len() }

// Subscribe registers fn to run synchronously after every observable
// change. Subscriptions cannot be removed; they die with the
// controller.
func (c *Controller) Subscribe(fn func(Change)) {
	c.listeners = append(c.listeners, fn)
}

// Push wraps view with the nav-bar decoration decision and appends it
// to the back-stack as the new current entry.
func (c *Controller) Push(view View, opts ...Option) {
	if c.destroyed {
		return
	}
	c.push(view, applyOptions(opts))
}

// Navigate dispatches on navType: pushes for NavPush, otherwise
// delegates to the matching sheet presentation.
func (c *Controller) Navigate(view View, navType NavType, opts ...Option) {
	if c.destroyed {
		return
	}
	o := applyOptions(opts)
	switch navType {
	case NavSheet:
		c.present(PresentSheet, view, o)
	case NavFullSheet:
		c.present(PresentFullSheet, view, o)
	case NavCustomSheet:
		c.present(PresentCustomSheet, view, o)
	default:
		c.push(view, o)
	}
}

// PresentSheet presents view as a modal layered above this controller
// and returns the controller owning the modal's own navigation.
func (c *Controller) PresentSheet(view View, opts ...Option) *Controller {
	if c.destroyed {
		return nil
	}
	return c.present(PresentSheet, view, applyOptions(opts))
}

// PresentFullSheet presents view as a full-height modal.
func (c *Controller) PresentFullSheet(view View, opts ...Option) *Controller {
	if c.destroyed {
		return nil
	}
	return c.present(PresentFullSheet, view, applyOptions(opts))
}

// PresentCustomSheet presents view as a modal with the geometry given
// via WithGeometry.
func (c *Controller) PresentCustomSheet(view View, opts ...Option) *Controller {
	if c.destroyed {
		return nil
	}
	return c.present(PresentCustomSheet, view, applyOptions(opts))
}

// Dismiss navigates backwards to the given destination, or closes the
// enclosing modal when nothing navigable is left. It never fails: an
// unmatched ToView id and a dismiss on an empty root stack are no-ops.
func (c *Controller) Dismiss(dest Destination) {
	if c.destroyed {
		return
	}

	if dest.kind == destModal {
		c.direction = DirectionNone
		c.presentationOwner().clearPresentation()
		return
	}

	// A dismiss while the modal root is current closes the modal
	// rather than popping.
	if top, ok := c.stack.Peek(); ok && top.Kind == KindSheet {
		c.direction = DirectionNone
		c.closeModal()
		return
	}

	// Nothing navigable left in the sheet region: same treatment,
	// regardless of the requested destination.
	if c.stack.IsSheetEmpty() {
		c.direction = DirectionNone
		c.closeModal()
		return
	}

	c.direction = DirectionPop
	c.animator.Animate(DirectionPop, func() {
		switch dest.kind {
		case destRoot:
			c.stack.PopToRoot()
		case destView:
			if !c.stack.PopToView(dest.id) {
				c.logger.Debug("dismiss target not found", "id", dest.id)
			}
		default:
			c.stack.PopToPrevious()
		}
	})
	c.logger.Debug("dismissed", "destination", dest.String(), "depth", c.stack.Len())
	c.publishStack()
}

// PushAfter schedules Push to run once after delay. A non-positive
// delay runs immediately. The call becomes a no-op if the controller is
// destroyed before it fires.
func (c *Controller) PushAfter(delay time.Duration, view View, opts ...Option) {
	c.deferCall(delay, func() { c.Push(view, opts...) })
}

// NavigateAfter schedules Navigate to run once after delay.
func (c *Controller) NavigateAfter(delay time.Duration, view View, navType NavType, opts ...Option) {
	c.deferCall(delay, func() { c.Navigate(view, navType, opts...) })
}

// DismissAfter schedules Dismiss to run once after delay.
func (c *Controller) DismissAfter(delay time.Duration, dest Destination) {
	c.deferCall(delay, func() { c.Dismiss(dest) })
}

// Destroy marks the controller dead. Any deferred call that fires
// afterwards is dropped. The root controller normally lives for the
// process lifetime; modal content controllers are destroyed when their
// modal is dismissed.
func (c *Controller) Destroy() {
	c.destroy()
}

func (c *Controller) push(view View, o callOptions) {
	id := o.id
	if id == "" {
		id = uuid.NewString()
	}
	entry := Entry{
		ID:       id,
		Content:  c.decorate(view, c.resolveNavBar(o)),
		Kind:     KindScreen,
		Retained: o.retained,
	}
	c.direction = DirectionPush
	c.animator.Animate(DirectionPush, func() {
		c.stack.Push(entry)
	})
	c.logger.Debug("pushed", "id", entry.ID, "retained", entry.Retained, "depth", c.stack.Len())
	c.publishStack()
}

func (c *Controller) present(mode Presentation, view View, o callOptions) *Controller {
	// Only one presentation mode is active at a time; presenting over
	// an active modal replaces it.
	if c.presentation != PresentNone {
		c.clearPresentation()
	}

	id := o.id
	if id == "" {
		id = uuid.NewString()
	}
	content := c.decorate(view, c.resolveNavBar(o))

	modal := &Controller{
		stack:         NewBackStack(),
		parent:        c,
		defaultNavBar: c.defaultNavBar,
		decorate:      c.decorate,
		animator:      c.animator,
		scheduler:     c.scheduler,
		logger:        c.logger,
	}
	modal.stack.MarkSheet()
	modal.stack.Push(Entry{
		ID:       id,
		Content:  content,
		Kind:     KindSheet,
		Retained: o.retained,
	})
	modal.direction = DirectionNone
	modal.publishStack()

	c.presentation = mode
	c.modal = modal
	c.modalView = content
	if mode == PresentCustomSheet {
		c.geometry = o.geometry
	} else {
		c.geometry = SheetGeometry{Dismissable: true}
	}
	c.onDismiss = o.onDismiss
	c.direction = DirectionNone
	c.logger.Debug("presented", "mode", mode.String(), "id", id)
	c.publishPresentation()
	return modal
}

// closeModal routes a modal close to the presenting controller. On a
// root controller with nothing presented it is a no-op.
func (c *Controller) closeModal() {
	if c.parent != nil {
		c.parent.clearPresentation()
		return
	}
	c.clearPresentation()
}

// presentationOwner resolves which controller owns the presentation a
// ToModal dismiss targets: this controller when it is itself
// presenting, otherwise its presenter.
func (c *Controller) presentationOwner() *Controller {
	if c.presentation != PresentNone || c.parent == nil {
		return c
	}
	return c.parent
}

// clearPresentation tears down the active modal: the sheet region of
// the content controller's stack is discarded as a unit, the content
// controller is destroyed, and the presentation state returns to idle.
func (c *Controller) clearPresentation() {
	if c.presentation == PresentNone {
		return
	}
	onDismiss := c.onDismiss
	if c.modal != nil {
		c.modal.stack.PopSheet()
		c.modal.destroy()
		c.modal = nil
	}
	c.presentation = PresentNone
	c.modalView = nil
	c.geometry = SheetGeometry{}
	c.onDismiss = nil
	c.direction = DirectionNone
	c.logger.Debug("modal dismissed")
	c.publishPresentation()
	if onDismiss != nil {
		// Caller-supplied; panics propagate to the host's own error
		// boundary.
		onDismiss()
	}
}

func (c *Controller) destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	if c.modal != nil {
		c.modal.destroy()
		c.modal = nil
	}
	c.presentation = PresentNone
	c.modalView = nil
	c.onDismiss = nil
	c.listeners = nil
}

func (c *Controller) deferCall(delay time.Duration, fn func()) {
	if c.destroyed {
		return
	}
	if delay <= 0 {
		fn()
		return
	}
	c.scheduler.After(delay, func() {
		// Liveness check at fire time: never act on a dead controller.
		if c.destroyed {
			return
		}
		fn()
	})
}

// resolveNavBar applies the tri-state override: an explicit per-call
// value wins, otherwise the controller default is inherited.
func (c *Controller) resolveNavBar(o callOptions) bool {
	if o.navBar != nil {
		return *o.navBar
	}
	return c.defaultNavBar
}

// publishStack recomputes current and previous after a stack mutation
// and notifies subscribers.
func (c *Controller) publishStack() {
	c.previous = c.current
	if top, ok := c.stack.Peek(); ok {
		entry := top
		c.current = &entry
	} else {
		c.current = nil
	}
	c.notify()
}

// publishPresentation notifies subscribers of a presentation change
// without touching current or previous; the stack did not move.
func (c *Controller) publishPresentation() {
	c.notify()
}

func (c *Controller) notify() {
	change := Change{Current: c.current, Previous: c.previous, Direction: c.direction}
	for _, fn := range c.listeners {
		fn(change)
	}
}
