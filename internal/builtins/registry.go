// Package builtins registers Wisp's native callables: the functions
// and namespaces available in every program's global scope without a
// user declaration.
//
// Grounded on the teacher's internal/interp/builtins.Registry
// (case-insensitive name -> FunctionInfo, category-indexed), adapted
// to Callable values bound straight into a runtime.Environment rather
// than looked up through a separate evaluator-side dispatch table, and
// kept case-sensitive to match Wisp's identifier rules.
package builtins

import (
	"sort"

	"github.com/cwbudde/go-wisp/internal/runtime"
)

// Category groups related natives for introspection and documentation,
// the way the teacher's registry groups builtins by Category.
type Category string

const (
	CategorySystem  Category = "system"
	CategoryMath    Category = "math"
	CategoryStrings Category = "strings"
	CategoryIO      Category = "io"
	CategoryJSON    Category = "json"
)

// FunctionInfo records one registered native alongside its metadata.
type FunctionInfo struct {
	Name        string
	Value       runtime.Value
	Category    Category
	Description string
}

// Registry collects every native binding Wisp exposes at global scope.
type Registry struct {
	entries    map[string]*FunctionInfo
	categories map[Category][]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:    make(map[string]*FunctionInfo),
		categories: make(map[Category][]string),
	}
}

// Register records name -> value under category, for later binding
// into a global environment via Install.
func (r *Registry) Register(name string, value runtime.Value, category Category, description string) {
	if _, exists := r.entries[name]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.entries[name] = &FunctionInfo{Name: name, Value: value, Category: category, Description: description}
}

// Get looks up a registered native by name.
func (r *Registry) Get(name string) (*FunctionInfo, bool) {
	info, ok := r.entries[name]
	return info, ok
}

// GetByCategory returns every native in a category, sorted by name.
func (r *Registry) GetByCategory(category Category) []*FunctionInfo {
	names := append([]string(nil), r.categories[category]...)
	sort.Strings(names)
	result := make([]*FunctionInfo, 0, len(names))
	for _, name := range names {
		result = append(result, r.entries[name])
	}
	return result
}

// Install binds every registered native into env, the global scope a
// freshly-constructed evaluator starts with.
func (r *Registry) Install(env *runtime.Environment) {
	for name, info := range r.entries {
		env.Define(name, info.Value)
	}
}

// NewDefaultRegistry builds the Registry Wisp installs by default:
// clock, random, io, math, strings, json, and system, covering the
// concrete natives wired in.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	registerSystem(r)
	registerMath(r)
	registerStrings(r)
	registerIO(r)
	registerJSON(r)
	return r
}

func fn(name string, arity int, f runtime.NativeFunc) *runtime.NativeFunction {
	return &runtime.NativeFunction{FuncName: name, ArityN: arity, Fn: f}
}
