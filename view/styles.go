package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/navstack/navstack/navigation"
)

// Styles holds the lipgloss styles for nav-bar decoration and sheet
// framing.
type Styles struct {
	NavBar      lipgloss.Style
	NavBarTitle lipgloss.Style
	Screen      lipgloss.Style
	SheetFrame  lipgloss.Style
	FullSheet   lipgloss.Style
}

// DefaultStyles returns the default look: a subtle bar, rounded sheet
// borders.
func DefaultStyles() Styles {
	return Styles{
		NavBar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		NavBarTitle: lipgloss.NewStyle().Bold(true),
		Screen:      lipgloss.NewStyle(),
		SheetFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		FullSheet: lipgloss.NewStyle().Padding(0, 1),
	}
}

// Titled is optionally implemented by views that want a title in their
// nav bar.
type Titled interface {
	Title() string
}

// NavBarDecorator returns the decoration hook the controller applies on
// every push and present. With navBar false the view passes through
// untouched.
func NavBarDecorator(styles Styles) navigation.Decorator {
	return func(v navigation.View, navBar bool) navigation.View {
		if !navBar {
			return v
		}
		return decoratedView{inner: v, styles: styles}
	}
}

// decoratedView wraps an opaque view with a rendered nav bar. It keeps
// the Titled interface of the wrapped view reachable for tests.
type decoratedView struct {
	inner  navigation.View
	styles Styles
}

func (d decoratedView) Render() string {
	title := ""
	if t, ok := d.inner.(Titled); ok {
		title = t.Title()
	}
	bar := d.styles.NavBar.Render(d.styles.NavBarTitle.Render(title))
	return lipgloss.JoinVertical(lipgloss.Left, bar, d.inner.Render())
}

// Title exposes the wrapped view's title.
func (d decoratedView) Title() string {
	if t, ok := d.inner.(Titled); ok {
		return t.Title()
	}
	return ""
}
