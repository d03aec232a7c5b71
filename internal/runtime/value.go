// Package runtime implements the value model and environment chain:
// the tagged universe of runtime values, their equality/truthiness/
// display rules, and the nested-scope Environment that underpins
// closures and method binding.
//
// Grounded on the teacher's internal/interp value model (one Go type
// per runtime tag, all implementing a common Value interface with
// Type()/String()) and its internal/interp/runtime.Environment
// (store + outer chain), generalized here with distance-indexed
// GetAt/AssignAt for closure capture.
package runtime

import (
	"fmt"
	"math"
	"strconv"
)

// Value is implemented by every Wisp runtime value.
type Value interface {
	// TypeName returns a short name used in error messages ("number",
	// "string", "nil", ...).
	TypeName() string
	// Display renders the value the way `print` and string
	// concatenation render it.
	Display() string
}

// Nil is the singular absent value.
type Nil struct{}

func (Nil) TypeName() string { return "nil" }
func (Nil) Display() string  { return "nil" }

// NilValue is the shared Nil instance; values never need identity
// comparison beyond their tag, so one instance suffices.
var NilValue Value = Nil{}

// Bool is a boolean value.
type Bool bool

func (Bool) TypeName() string { return "bool" }
func (b Bool) Display() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is an IEEE-754 double, Wisp's only numeric type.
type Number float64

func (Number) TypeName() string { return "number" }

// Display renders integral numbers without a trailing ".0".
func (n Number) Display() string {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is an immutable text value.
type String string

func (String) TypeName() string  { return "string" }
func (s String) Display() string { return string(s) }

// Truthy reports whether v counts as true in a condition: Nil and
// Bool(false) are falsy, everything else — including Number(0) and
// String("") — is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(x)
	default:
		return true
	}
}

// Equal compares two values: reflexive per-tag, cross-tag comparisons
// are always false, callables/classes compare by identity, numbers use
// bitwise float equality (so NaN != NaN).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && float64(x) == float64(y)
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *Instance:
		y, ok := b.(*Instance)
		return ok && x == y
	case *Class:
		y, ok := b.(*Class)
		return ok && x == y
	case Callable:
		y, ok := b.(Callable)
		return ok && fmt.Sprintf("%p", x) == fmt.Sprintf("%p", y)
	default:
		return false
	}
}
