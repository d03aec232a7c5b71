// Package resolver implements the static scope-resolution pass: a
// side-effect-free walk over the AST that produces a side table
// mapping each resolvable expression node to a lexical distance, plus
// an ordered list of structural errors.
//
// Grounded on the teacher's multi-pass semantic.Pass architecture
// (internal/semantic/pass.go: a Pass walks the tree and appends to a
// shared error list in a shared context) for the overall shape of "one
// side-effect-free static pass, separate from execution" — but Wisp's
// resolver performs none of the teacher's type checking, since Wisp is
// dynamically typed; it only performs scope and control-flow
// structural checks.
package resolver

import (
	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/pkg/ast"
	"github.com/cwbudde/go-wisp/pkg/token"
)

// varState is the two-bit state of a name within one scope, per
// the resolver's scope protocol.
type varState int

const (
	declared varState = iota
	defined
)

type functionContext int

const (
	ctxNone functionContext = iota
	ctxFunction
	ctxMethod
	ctxInitializer
)

type classContext int

const (
	classNone classContext = iota
	classInClass
	classInSubclass
)

// Table is the resolver's output: a read-only map from expression-node
// identity (here, Go pointer identity of the ast.Expr value) to lexical
// distance. Absence means the reference targets globals.
type Table map[ast.Expr]int

// Resolver performs the static scope-resolution walk.
type Resolver struct {
	scopes          []map[string]varState
	table           Table
	currentFunction functionContext
	currentClass    classContext
	loopDepth       int
	errs            []error
}

// New creates a Resolver ready to resolve a program.
func New() *Resolver {
	return &Resolver{table: make(Table)}
}

// Resolve walks stmts and returns the completed side table plus any
// structural errors found. The resolver never mutates runtime state
// and is pure: the same tree always yields the same table and the same
// ordered error list.
func Resolve(stmts []ast.Stmt) (Table, []error) {
	r := New()
	r.resolveStmts(stmts)
	return r.table, r.errs
}

func (r *Resolver) error(pos token.Position, kind, format string, args ...any) {
	r.errs = append(r.errs, errors.NewResolverKindError(pos, kind, format, args...))
}

// --- scope protocol --------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]varState))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) inGlobalScope() bool { return len(r.scopes) == 0 }

func (r *Resolver) declare(name token.Token) {
	if r.inGlobalScope() {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Literal]; ok {
		r.error(name.Pos, "DuplicateLocal", errors.ErrMsgDuplicateLocal, name.Literal)
		return
	}
	scope[name.Literal] = declared
}

func (r *Resolver) define(name string) {
	if r.inGlobalScope() {
		return
	}
	r.scopes[len(r.scopes)-1][name] = defined
}

// defineToken is define() for names synthesized by the resolver itself
// (`this`, `super`) rather than parsed from source; like define, it
// takes the bare name.
func (r *Resolver) defineToken(name string) {
	r.define(name)
}

func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.table[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any local scope: targets globals, no table entry.
}
