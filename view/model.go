package view

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/navstack/navstack/navigation"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Spring tuning for the slide transition.
	springFrequency = 7.0
	springDamping   = 0.9

	// Offsets below this are treated as settled.
	settleEpsilon = 0.005
)

// KeyMap defines the navigation key bindings.
type KeyMap struct {
	Back    key.Binding
	Root    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Root: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "root"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "close sheet"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Model hosts a navigation controller inside a bubbletea program. It is
// the render binding for the controller's current-entry signal and the
// scoped-animation executor for its stack mutations.
type Model struct {
	ctrl   *navigation.Controller
	styles Styles
	keys   KeyMap

	width  int
	height int

	// Transition state, driven by a harmonica spring.
	spring    harmonica.Spring
	offset    float64
	velocity  float64
	animating bool
	animate   bool
	fps       int

	lastChange navigation.Change
}

// ModelOption configures the host model.
type ModelOption func(*Model)

// WithStyles overrides the default styles.
func WithStyles(s Styles) ModelOption {
	return func(m *Model) { m.styles = s }
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(m *Model) { m.keys = k }
}

// WithAnimation toggles the transition animation and its frame rate.
func WithAnimation(enabled bool, fps int) ModelOption {
	return func(m *Model) {
		m.animate = enabled
		if fps > 0 {
			m.fps = fps
		}
	}
}

// NewModel creates a host model and the root controller it owns. The
// controller is wired with the model's animator and the nav-bar
// decorator; further controller options are appended after those.
func NewModel(ctrlOpts []navigation.ControllerOption, opts ...ModelOption) *Model {
	m := &Model{
		styles:  DefaultStyles(),
		keys:    DefaultKeyMap(),
		width:   defaultWidth,
		height:  defaultHeight,
		animate: true,
		fps:     60,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.spring = harmonica.NewSpring(harmonica.FPS(m.fps), springFrequency, springDamping)

	base := []navigation.ControllerOption{
		navigation.WithAnimator(m.animator()),
		navigation.WithDecorator(NavBarDecorator(m.styles)),
	}
	m.ctrl = navigation.NewController(append(base, ctrlOpts...)...)
	m.ctrl.Subscribe(func(ch navigation.Change) {
		m.lastChange = ch
	})
	return m
}

// Controller returns the root navigation controller.
func (m *Model) Controller() *navigation.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case NavigateMsg:
		m.ctrl.Navigate(msg.View, msg.Type, msg.Opts...)
		return m, m.afterChange()

	case PresentSheetMsg:
		mode := msg.Mode
		if mode == navigation.NavPush {
			mode = navigation.NavSheet
		}
		m.active().Navigate(msg.View, mode, msg.Opts...)
		return m, m.afterChange()

	case NavigateBackMsg:
		m.active().Dismiss(navigation.ToPrevious())
		return m, m.afterChange()

	case DismissMsg:
		m.active().Dismiss(msg.Destination)
		return m, m.afterChange()

	case deferredMsg:
		msg.fn()
		return m, m.afterChange()

	case transitionTickMsg:
		return m.stepTransition()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	base := ""
	if cur := m.ctrl.Current(); cur != nil {
		base = m.styles.Screen.Render(cur.Content.Render())
	}
	base = m.applySlide(base)

	switch m.ctrl.Presenting() {
	case navigation.PresentNone:
		return base
	case navigation.PresentFullSheet:
		content := m.modalContent()
		return m.styles.FullSheet.
			Width(m.width).
			Height(m.height).
			Render(content)
	case navigation.PresentCustomSheet:
		geometry := m.ctrl.Geometry()
		height := geometry.Height
		if height < geometry.MinHeight {
			height = geometry.MinHeight
		}
		frame := m.styles.SheetFrame.
			Width(m.width - 4).
			Height(height).
			Render(m.modalContent())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Bottom, frame)
	default:
		frame := m.styles.SheetFrame.
			Width(m.width / 2).
			Render(m.modalContent())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
	}
}

// modalContent renders the current entry of the inner-most active
// modal, so navigation inside a sheet is visible.
func (m *Model) modalContent() string {
	active := m.active()
	if cur := active.Current(); cur != nil {
		return cur.Content.Render()
	}
	if mv := m.ctrl.ModalView(); mv != nil {
		return mv.Render()
	}
	return ""
}

// active returns the controller key input is routed to: the inner-most
// presented modal, or the root.
func (m *Model) active() *navigation.Controller {
	c := m.ctrl
	for c.Modal() != nil {
		c = c.Modal()
	}
	return c
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.active().Dismiss(navigation.ToPrevious())
		return m, m.afterChange()
	case key.Matches(msg, m.keys.Root):
		m.active().Dismiss(navigation.ToRoot())
		return m, m.afterChange()
	case key.Matches(msg, m.keys.Dismiss):
		active := m.active()
		owner := active.Parent()
		if owner == nil && active.Presenting() != navigation.PresentNone {
			owner = active
		}
		// The dismiss key respects the sheet's Dismissable flag;
		// programmatic Dismiss calls do not.
		if owner != nil && owner.Geometry().Dismissable {
			active.Dismiss(navigation.ToModal())
			return m, m.afterChange()
		}
	}
	return m, nil
}

// animator is the scoped-animation executor handed to the controller.
// The mutation runs exactly once, synchronously; the visual transition
// starts afterwards.
func (m *Model) animator() navigation.Animator {
	return navigation.AnimatorFunc(func(direction navigation.Direction, mutate func()) {
		mutate()
		m.beginTransition(direction)
	})
}

// beginTransition seeds the spring: pushes slide in from the right,
// pops slide back from the left.
func (m *Model) beginTransition(direction navigation.Direction) {
	if !m.animate {
		return
	}
	switch direction {
	case navigation.DirectionPush:
		m.offset = 1
	case navigation.DirectionPop:
		m.offset = -1
	default:
		return
	}
	m.velocity = 0
	m.animating = true
}

// afterChange emits the controller's latest change and, when a
// transition is in flight, the first animation tick.
func (m *Model) afterChange() tea.Cmd {
	cmds := []tea.Cmd{func() tea.Msg {
		return StackChangedMsg{Change: m.lastChange}
	}}
	if m.animating {
		cmds = append(cmds, m.tick())
	}
	return tea.Batch(cmds...)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return transitionTickMsg(t)
	})
}

func (m *Model) stepTransition() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}
	m.offset, m.velocity = m.spring.Update(m.offset, m.velocity, 0)
	if math.Abs(m.offset) < settleEpsilon {
		m.offset = 0
		m.velocity = 0
		m.animating = false
		return m, nil
	}
	return m, m.tick()
}

// applySlide indents the base view proportionally to the transition
// offset, producing a cheap horizontal slide.
func (m *Model) applySlide(base string) string {
	if !m.animating || m.offset == 0 {
		return base
	}
	indent := int(math.Abs(m.offset) * float64(m.width) / 4)
	if indent <= 0 {
		return base
	}
	if m.offset > 0 {
		return lipgloss.NewStyle().MarginLeft(indent).Render(base)
	}
	return lipgloss.NewStyle().MarginRight(indent).Render(base)
}
