package runtime

import "fmt"

// NativeFunc is the Go implementation behind a NativeFunction value.
type NativeFunc func(interp Interpreter, args []Value) (Value, error)

// NativeFunction adapts a Go function to the Callable contract: an
// arity and a call(evaluator, args) -> value|error. Natives are bound
// into an evaluator's globals by builtins.Registry.Install, which the
// drivers call right after creating the evaluator, and are otherwise
// indistinguishable from user functions.
type NativeFunction struct {
	FuncName string
	ArityN   int // -1 means variadic
	Fn       NativeFunc
}

func (n *NativeFunction) TypeName() string { return "native function" }
func (n *NativeFunction) Display() string  { return fmt.Sprintf("<native fn %s>", n.FuncName) }
func (n *NativeFunction) Arity() int       { return n.ArityN }
func (n *NativeFunction) Name() string     { return n.FuncName }

func (n *NativeFunction) Call(interp Interpreter, args []Value) (Value, error) {
	return n.Fn(interp, args)
}

// NewNamespace builds a native "object" grouping related functions
// under a single global name (e.g. `math.sqrt(x)`), modeled as an
// Instance whose fields are all NativeFunction values — this reuses
// PropertyGet/Call rather than inventing a separate native-module
// concept.
func NewNamespace(name string, fns map[string]Value) *Instance {
	return &Instance{
		Class:  &Class{ClassName: name},
		Fields: fns,
	}
}
