package runtime

import "fmt"

// Class is a class descriptor: a name, an optional superclass, and
// method tables for instance and static methods.
type Class struct {
	ClassName     string
	Superclass    *Class
	Methods       map[string]*Function
	StaticMethods map[string]*Function
}

func (c *Class) TypeName() string { return "class" }
func (c *Class) Display() string  { return c.ClassName }

// FindMethod looks in this class's own method table, then recurses
// into the superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// FindStaticMethod looks up a static method on this class only —
// statics are not inherited lookup-through-instance the way instance
// methods are, since they are accessed via the class value itself.
func (c *Class) FindStaticMethod(name string) (*Function, bool) {
	fn, ok := c.StaticMethods[name]
	return fn, ok
}

// Arity is the constructor arity: the arity of `init` if the class (or
// an ancestor) defines one, else 0.
func (c *Class) Arity() int {
	if fn, ok := c.FindMethod("init"); ok {
		return fn.Arity()
	}
	return 0
}

func (c *Class) Name() string { return c.ClassName }

// Call constructs a fresh instance and, if an initializer exists, runs
// it with args bound to its parameters.
func (c *Class) Call(interp Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.FindMethod("init"); ok {
		bound := init.Bind(instance)
		if _, err := bound.Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a mutable record of field values tied to a class. Field
// writes are visible through every alias of the instance because
// Instance is always handled by pointer.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (i *Instance) TypeName() string { return "instance" }
func (i *Instance) Display() string  { return fmt.Sprintf("<%s instance>", i.Class.ClassName) }

// Get resolves a property read: fields win over methods; a method hit
// returns a bound method; nothing found reports ok=false
// (UndefinedProperty at the call site).
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if fn, ok := i.Class.FindMethod(name); ok {
		return fn.Bind(i), true
	}
	return nil, false
}

// Set inserts or overwrites a field.
func (i *Instance) Set(name string, val Value) {
	i.Fields[name] = val
}
