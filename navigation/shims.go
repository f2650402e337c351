package navigation

import "time"

// Animator wraps a stack mutation so the host UI can animate the
// visual transition. Implementations must invoke mutate exactly once,
// synchronously; the wrapping has no effect on the ordering or
// atomicity of the underlying stack operation.
type Animator interface {
	Animate(direction Direction, mutate func())
}

// AnimatorFunc adapts a function to the Animator interface.
type AnimatorFunc func(direction Direction, mutate func())

// Animate calls f.
func (f AnimatorFunc) Animate(direction Direction, mutate func()) {
	f(direction, mutate)
}

// NopAnimator returns an animator that runs mutations with no
// animation. It is the default for controllers created without a host
// binding.
func NopAnimator() Animator {
	return AnimatorFunc(func(_ Direction, mutate func()) {
		mutate()
	})
}

// Scheduler runs a function once after a delay. Hosts that confine the
// controller to an event loop must supply a scheduler that marshals the
// call back onto that loop; the controller performs its own liveness
// check when the call fires.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(delay time.Duration, fn func())

// After calls f.
func (f SchedulerFunc) After(delay time.Duration, fn func()) {
	f(delay, fn)
}

// TimerScheduler returns the default time.AfterFunc based scheduler.
// The callback fires on a timer goroutine, so it is only suitable for
// hosts without an event loop of their own.
func TimerScheduler() Scheduler {
	return SchedulerFunc(func(delay time.Duration, fn func()) {
		time.AfterFunc(delay, fn)
	})
}

// Decorator optionally wraps a view with default chrome such as a nav
// bar. The boolean is the resolved per-call decision. The core applies
// the decorator on every push and present; it never inspects the
// result.
type Decorator func(v View, navBar bool) View

// NopDecorator returns the view unchanged.
func NopDecorator() Decorator {
	return func(v View, _ bool) View { return v }
}
