package interp

import "fern/types"

// Environment manages variable bindings with lexical scoping. Closures
// hold a reference to the environment active at their definition, so a
// binding mutated through one reference is visible through all others.
type Environment struct {
	vars   map[string]types.Value
	parent *Environment
}

// NewEnvironment creates a new environment with no parent (global scope)
func NewEnvironment() *Environment {
	return &Environment{
		vars:   make(map[string]types.Value),
		parent: nil,
	}
}

// NewNestedEnvironment creates a new environment with a parent scope
func NewNestedEnvironment(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]types.Value),
		parent: parent,
	}
}

// Define binds a name in this scope. It always succeeds and shadows any
// same-named binding in an enclosing scope.
func (e *Environment) Define(name string, value types.Value) {
	e.vars[name] = value
}

// Get looks up a variable by name, searching this scope then parents.
// Returns (value, true) if found, (nil, false) if the chain is exhausted.
func (e *Environment) Get(name string) (types.Value, bool) {
	if val, ok := e.vars[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Assign overwrites an existing binding in this scope or the nearest
// ancestor that has one. It never creates a new binding; false means no
// scope in the chain defines the name.
func (e *Environment) Assign(name string, value types.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = value
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return false
}

// ancestor walks exactly distance parent hops up the chain
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.parent == nil {
			return nil
		}
		env = env.parent
	}
	return env
}

// GetAt reads a name from the scope exactly distance hops up, looking
// only at that scope's local map. A miss there means the resolver and
// interpreter disagree: an internal defect, not a user error.
func (e *Environment) GetAt(distance int, name string) (types.Value, bool) {
	env := e.ancestor(distance)
	if env == nil {
		return nil, false
	}
	val, ok := env.vars[name]
	return val, ok
}

// AssignAt writes a name in the scope exactly distance hops up,
// touching only that scope's local map
func (e *Environment) AssignAt(distance int, name string, value types.Value) bool {
	env := e.ancestor(distance)
	if env == nil {
		return false
	}
	if _, ok := env.vars[name]; !ok {
		return false
	}
	env.vars[name] = value
	return true
}
