package evaluator

import "github.com/cwbudde/go-wisp/internal/runtime"

// signal is the non-local-exit channel used by return/break/continue.
// It is distinct from *errors.WispError: a signal is expected control
// flow, caught by the statement that introduced the construct it
// exits (a loop for break/continue, a call frame for return), and
// never surfaces to a user as an error. Treating it as its own type
// keeps execute's error return reserved for genuine failures.
type signal interface {
	error
	isSignal()
}

// returnSignal unwinds to the nearest function call with a value.
type returnSignal struct {
	Value runtime.Value
}

func (r *returnSignal) Error() string { return "return outside of a function call" }
func (r *returnSignal) isSignal()     {}

// breakSignal unwinds to the nearest enclosing loop and stops it.
type breakSignal struct{}

func (breakSignal) Error() string { return "break outside of a loop" }
func (breakSignal) isSignal()     {}

// continueSignal unwinds to the nearest enclosing loop and starts its
// next iteration.
type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside of a loop" }
func (continueSignal) isSignal()     {}

// asSignal reports whether err is one of the non-local-exit signals,
// returning it narrowed to that interface for a type switch at the
// catching site.
func asSignal(err error) (signal, bool) {
	s, ok := err.(signal)
	return s, ok
}
