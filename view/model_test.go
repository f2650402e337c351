package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navstack/navstack/navigation"
)

type testScreen struct {
	title string
	body  string
}

func (s testScreen) Render() string { return s.body }
func (s testScreen) Title() string  { return s.title }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	// Animation off keeps Update deterministic in tests.
	return NewModel(nil, WithAnimation(false, 0))
}

func TestNavigateMsgPushes(t *testing.T) {
	m := newTestModel(t)

	m.Update(NavigateMsg{
		View: testScreen{title: "Home", body: "home body"},
		Type: navigation.NavPush,
		Opts: []navigation.Option{navigation.WithID("home")},
	})

	require.NotNil(t, m.Controller().Current())
	assert.Equal(t, "home", m.Controller().Current().ID)
}

func TestNavigateBackMsgPops(t *testing.T) {
	m := newTestModel(t)
	m.Controller().Push(testScreen{body: "a"}, navigation.WithID("a"))
	m.Controller().Push(testScreen{body: "b"}, navigation.WithID("b"))

	m.Update(NavigateBackMsg{})

	assert.Equal(t, "a", m.Controller().Current().ID)
}

func TestDismissMsgTargetsDestination(t *testing.T) {
	m := newTestModel(t)
	m.Controller().Push(testScreen{body: "a"}, navigation.WithID("a"))
	m.Controller().Push(testScreen{body: "b"}, navigation.WithID("b"))
	m.Controller().Push(testScreen{body: "c"}, navigation.WithID("c"))

	m.Update(DismissMsg{Destination: navigation.ToView("a")})

	assert.Equal(t, "a", m.Controller().Current().ID)
	assert.Equal(t, 1, m.Controller().Depth())
}

func TestBackKeyPops(t *testing.T) {
	m := newTestModel(t)
	m.Controller().Push(testScreen{body: "a"}, navigation.WithID("a"))
	m.Controller().Push(testScreen{body: "b"}, navigation.WithID("b"))

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, "a", m.Controller().Current().ID)
}

func TestPresentSheetMsgOpensModal(t *testing.T) {
	m := newTestModel(t)
	m.Controller().Push(testScreen{body: "home"}, navigation.WithID("home"))

	m.Update(PresentSheetMsg{View: testScreen{body: "sheet"}})

	assert.Equal(t, navigation.PresentSheet, m.Controller().Presenting())
	require.NotNil(t, m.Controller().Modal())
}

func TestDismissKeyRespectsDismissable(t *testing.T) {
	m := newTestModel(t)
	m.Controller().Push(testScreen{body: "home"}, navigation.WithID("home"))
	m.Controller().PresentCustomSheet(testScreen{body: "pinned"},
		navigation.WithGeometry(navigation.SheetGeometry{Height: 5, Dismissable: false}))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Equal(t, navigation.PresentCustomSheet, m.Controller().Presenting(),
		"non-dismissable sheet survives the dismiss key")

	m.Controller().Dismiss(navigation.ToModal())
	assert.Equal(t, navigation.PresentNone, m.Controller().Presenting(),
		"programmatic dismiss still closes it")
}

func TestDismissKeyClosesStandardSheet(t *testing.T) {
	m := newTestModel(t)
	m.Controller().Push(testScreen{body: "home"}, navigation.WithID("home"))
	m.Controller().PresentSheet(testScreen{body: "sheet"})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Equal(t, navigation.PresentNone, m.Controller().Presenting())
}

func TestKeyInputRoutesToActiveModal(t *testing.T) {
	m := newTestModel(t)
	m.Controller().Push(testScreen{body: "home"}, navigation.WithID("home"))
	modal := m.Controller().PresentSheet(testScreen{body: "sheet"}, navigation.WithID("sheet"))
	modal.Push(testScreen{body: "inner"}, navigation.WithID("inner"))

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, "sheet", modal.Current().ID, "back inside the modal pops the modal's stack")
	assert.Equal(t, "home", m.Controller().Current().ID)
}

func TestViewRendersCurrentEntry(t *testing.T) {
	m := newTestModel(t)
	m.Update(NavigateMsg{
		View: testScreen{title: "Home", body: "home body"},
		Type: navigation.NavPush,
	})

	out := m.View()

	assert.Contains(t, out, "home body")
	assert.Contains(t, out, "Home", "nav bar carries the view title")
}

func TestViewSuppressedNavBar(t *testing.T) {
	m := newTestModel(t)
	m.Update(NavigateMsg{
		View: testScreen{title: "Bare", body: "bare body"},
		Type: navigation.NavPush,
		Opts: []navigation.Option{navigation.WithNavBar(false)},
	})

	out := m.View()

	assert.Contains(t, out, "bare body")
	assert.NotContains(t, out, "Bare")
}

func TestViewOverlaysSheetContent(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.Controller().Push(testScreen{body: "home"}, navigation.WithID("home"))
	m.Controller().PresentSheet(testScreen{body: "sheet body"}, navigation.WithNavBar(false))

	out := m.View()

	assert.Contains(t, out, "sheet body")
}

func TestViewShowsModalNavigation(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	modal := m.Controller().PresentSheet(testScreen{body: "root sheet"}, navigation.WithNavBar(false))
	modal.Push(testScreen{body: "pushed inside"}, navigation.WithNavBar(false))

	out := m.View()

	assert.Contains(t, out, "pushed inside")
}

func TestDeferredMsgRunsThunk(t *testing.T) {
	m := newTestModel(t)
	ran := false

	m.Update(deferredMsg{fn: func() { ran = true }})

	assert.True(t, ran)
}

func TestWindowSizeMsg(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestNavBarDecorator(t *testing.T) {
	decorator := NavBarDecorator(DefaultStyles())

	plain := decorator(testScreen{title: "Hidden", body: "plain"}, false)
	assert.Equal(t, "plain", plain.Render())

	decorated := decorator(testScreen{title: "Shown", body: "decorated"}, true)
	out := decorated.Render()
	assert.Contains(t, out, "Shown")
	assert.Contains(t, out, "decorated")
}
