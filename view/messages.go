// Package view binds a navigation controller to a bubbletea program:
// it translates navigation messages into controller calls, renders the
// current entry, overlays active sheet presentations, and animates
// transitions.
package view

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navstack/navstack/navigation"
)

// NavigateMsg requests a forward navigation.
type NavigateMsg struct {
	View navigation.View
	Type navigation.NavType
	Opts []navigation.Option
}

// NavigateBackMsg requests navigation to the previous entry.
type NavigateBackMsg struct{}

// PresentSheetMsg requests a modal sheet presentation on the active
// controller. Mode defaults to a standard sheet.
type PresentSheetMsg struct {
	View navigation.View
	Mode navigation.NavType
	Opts []navigation.Option
}

// DismissMsg requests backward navigation to an explicit destination.
type DismissMsg struct {
	Destination navigation.Destination
}

// StackChangedMsg is emitted after the controller published a change,
// so surrounding components can react to the new current entry.
type StackChangedMsg struct {
	Change navigation.Change
}

// ErrorMsg reports a host-side error, for example a failed onDismiss
// callback recovered at the program boundary.
type ErrorMsg struct {
	Err error
}

// deferredMsg carries a deferred navigation thunk onto the update loop.
type deferredMsg struct {
	fn func()
}

// transitionTickMsg drives the transition spring.
type transitionTickMsg time.Time

// ProgramScheduler returns a navigation.Scheduler that marshals
// deferred calls back onto the bubbletea update loop via send,
// typically (*tea.Program).Send. The controller still performs its own
// liveness check when the call fires.
func ProgramScheduler(send func(tea.Msg)) navigation.Scheduler {
	return navigation.SchedulerFunc(func(delay time.Duration, fn func()) {
		time.AfterFunc(delay, func() {
			send(deferredMsg{fn: fn})
		})
	})
}
