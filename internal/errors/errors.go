// Package errors implements the error taxonomy used across the
// scanner, parser, resolver, and evaluator, grounded on the teacher's
// internal/errors package: a single error struct carrying a category,
// a position, and a message, plus constructors per category.
package errors

import (
	"fmt"

	"github.com/cwbudde/go-wisp/pkg/token"
)

// Category classifies a WispError.
type Category string

const (
	CategoryType      Category = "Type"
	CategoryRuntime   Category = "Runtime"
	CategoryUndefined Category = "Undefined"
	CategoryArgument  Category = "Argument"
	CategoryResolver  Category = "Resolver"
	CategoryInternal  Category = "Internal"
	CategoryIO        Category = "IO"
)

// WispError is a runtime or static error with rich position context.
type WispError struct {
	Category Category
	Kind     string // structural sub-kind for resolver errors, e.g. "ReadInInitializer"
	Message  string
	Pos      token.Position
	Err      error // wrapped cause, if any
}

func (e *WispError) Error() string {
	if e.Pos.Valid() {
		return fmt.Sprintf("[line %d] %s error: %s", e.Pos.Line, e.Category, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

func (e *WispError) Unwrap() error { return e.Err }

func newErr(cat Category, pos token.Position, format string, args ...any) *WispError {
	return &WispError{Category: cat, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// NewTypeError reports an operand kind mismatch.
func NewTypeError(pos token.Position, format string, args ...any) *WispError {
	return newErr(CategoryType, pos, format, args...)
}

// NewRuntimeError reports a generic runtime failure (division by zero,
// stack overflow, and similar).
func NewRuntimeError(pos token.Position, format string, args ...any) *WispError {
	return newErr(CategoryRuntime, pos, format, args...)
}

// NewUndefinedError reports a name resolution failure at runtime
// (UndefinedVariable / UndefinedProperty).
func NewUndefinedError(pos token.Position, format string, args ...any) *WispError {
	return newErr(CategoryUndefined, pos, format, args...)
}

// NewArgumentError reports an arity mismatch or bad native argument.
func NewArgumentError(pos token.Position, format string, args ...any) *WispError {
	return newErr(CategoryArgument, pos, format, args...)
}

// NewResolverError reports one of the resolver's structural errors.
func NewResolverError(pos token.Position, format string, args ...any) *WispError {
	return newErr(CategoryResolver, pos, format, args...)
}

// NewResolverKindError reports a structural error tagged with a kind
// (e.g. "ReadInInitializer"), so callers — tests in particular — can
// assert on the specific rejection rather than on message text.
func NewResolverKindError(pos token.Position, kind string, format string, args ...any) *WispError {
	e := newErr(CategoryResolver, pos, format, args...)
	e.Kind = kind
	return e
}

// NewInternalError reports an interpreter-internal inconsistency that
// should never happen if the resolver and evaluator agree (e.g. a
// distance recorded by the resolver that the environment chain cannot
// satisfy).
func NewInternalError(pos token.Position, format string, args ...any) *WispError {
	return newErr(CategoryInternal, pos, format, args...)
}

// NewIOError reports a file or stream failure from a native.
func NewIOError(pos token.Position, format string, args ...any) *WispError {
	return newErr(CategoryIO, pos, format, args...)
}

// IsCategory reports whether err is a *WispError of the given category.
func IsCategory(err error, cat Category) bool {
	we, ok := err.(*WispError)
	return ok && we.Category == cat
}
