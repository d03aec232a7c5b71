package runtime

// Environment is a node in a singly-linked chain of lexical scopes.
// Grounded on the teacher's internal/interp/runtime.Environment (store
// + outer pointer), with distance-indexed GetAt/AssignAt added for
// closures: capturing the scope at definition fixes which binding a
// name refers to, independent of later shadowing in enclosing scopes.
//
// Unlike the teacher, Wisp is case-sensitive, so the store is a plain
// map rather than the teacher's case-folding ident.Map.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a root environment with no enclosing scope —
// used once, for the global scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a scope nested inside outer — used for
// blocks, function calls, and class/method scopes.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), outer: outer}
}

// Outer returns the enclosing environment, or nil at the global root.
func (e *Environment) Outer() *Environment { return e.outer }

// IsGlobal reports whether this environment is the root scope.
func (e *Environment) IsGlobal() bool { return e.outer == nil }

// Define binds name to val in this scope. It reports false if name is
// already bound in this scope AND this scope is not the global root;
// global redeclaration is permitted. The resolver rejects non-global
// duplicate declarations statically (DuplicateLocal), so in practice a
// false return here indicates the resolver and evaluator have gone out
// of sync.
func (e *Environment) Define(name string, val Value) bool {
	if !e.IsGlobal() {
		if _, exists := e.store[name]; exists {
			return false
		}
	}
	e.store[name] = val
	return true
}

// Get walks the enclosing chain looking for name. Reading a name
// whose slot holds no value never happens in this
// implementation — Define always supplies a value (Nil if no
// initializer) — so "uninitialized" is not a distinct state here.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Assign walks the chain and assigns in the nearest scope that already
// defines name. It never creates a new binding.
func (e *Environment) Assign(name string, val Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false
}

// ancestor follows exactly distance outer links, 0 meaning this scope.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.outer
	}
	return env
}

// GetAt reads name at exactly distance enclosing links — the
// resolver-guided fast path that skips the chain walk Get performs.
// A missing name at the computed depth is an internal inconsistency:
// the resolver guaranteed the binding exists there.
func (e *Environment) GetAt(distance int, name string) (Value, bool) {
	env := e.ancestor(distance)
	if env == nil {
		return nil, false
	}
	v, ok := env.store[name]
	return v, ok
}

// AssignAt assigns name at exactly distance enclosing links, symmetric
// with GetAt.
func (e *Environment) AssignAt(distance int, name string, val Value) bool {
	env := e.ancestor(distance)
	if env == nil {
		return false
	}
	if _, ok := env.store[name]; !ok {
		return false
	}
	env.store[name] = val
	return true
}
