// Package navigation implements the back-stack state machine behind a
// declarative UI: which view is current, the history of views below it,
// and modal sheets layered on top, each with its own nested back-stack.
//
// The package is renderer-agnostic. Views are opaque handles with a
// single Render capability; animation and deferred execution are
// injected collaborators; hosts bind to the controller's change feed.
//
// # Basic usage
//
//	ctrl := navigation.NewController(
//	    navigation.WithDecorator(myNavBar),
//	)
//	ctrl.Subscribe(func(ch navigation.Change) {
//	    render(ch.Current, ch.Direction)
//	})
//
//	ctrl.Push(home, navigation.WithID("home"))
//	ctrl.Push(detail)
//	ctrl.Dismiss(navigation.ToPrevious())
//
// # Sheets
//
// Presenting a sheet creates a second controller that owns the modal's
// own navigation. Pushes inside the modal never touch the presenter's
// stack, and dismissing the modal discards them as a unit:
//
//	modal := ctrl.PresentSheet(settings)
//	modal.Push(details)
//	modal.Dismiss(navigation.ToModal()) // presenter idle again, details discarded
//
// # Retained entries
//
// An entry pushed with WithRetained(false) is rendered normally but is
// skipped by ToPrevious navigation and dropped once passed. Splash
// screens and one-shot confirmations are the typical use.
package navigation
