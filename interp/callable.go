package interp

import (
	"fern/parser"
	"fern/types"
)

// Callable is implemented by every value that can appear as a call
// target: user functions, natives, and classes
type Callable interface {
	types.Value
	Arity() int
	Call(i *Interpreter, args []types.Value) types.Result
}

// FunctionValue is a user-declared funct paired with the environment
// active at its definition. Each call creates a fresh child environment
// parented to that capture, not to the caller's environment; this is
// what makes closures work.
type FunctionValue struct {
	Decl    *parser.FunctionStmt
	Closure *Environment
}

// Type returns the type code for functions
func (f *FunctionValue) Type() types.TypeCode {
	return types.TYPE_FUNCTION
}

// String returns a diagnostic rendering
func (f *FunctionValue) String() string {
	return "<funct " + f.Decl.Name.Raw + ">"
}

// Equal returns false: functions are never equal to anything
func (f *FunctionValue) Equal(other types.Value) bool {
	return false
}

// Truthy returns true: all functions are truthy
func (f *FunctionValue) Truthy() bool {
	return true
}

// Arity returns the declared parameter count
func (f *FunctionValue) Arity() int {
	return len(f.Decl.Params)
}

// Call binds arguments positionally in a fresh environment parented to
// the capture and executes the body. A Return unwinding out of the body
// is caught here and becomes the call's value; falling off the end
// yields nil.
func (f *FunctionValue) Call(i *Interpreter, args []types.Value) types.Result {
	env := NewNestedEnvironment(f.Closure)
	for n, param := range f.Decl.Params {
		env.Define(param.Raw, args[n])
	}

	result := i.executeBlock(f.Decl.Body, env)
	switch result.Flow {
	case types.FlowReturn:
		return types.Ok(result.Val)
	case types.FlowError, types.FlowBreak:
		// Break escaping a function body is a resolver defect; let the
		// driver surface it as an internal invariant violation
		return result
	}
	return types.Ok(types.NewNil())
}

// ClassValue is a class descriptor. Methods parse and are kept here,
// but no method table is wired into call dispatch: property access on
// instances reads fields only.
type ClassValue struct {
	Name    string
	Methods map[string]*FunctionValue
}

// Type returns the type code for classes
func (c *ClassValue) Type() types.TypeCode {
	return types.TYPE_CLASS
}

// String returns a diagnostic rendering
func (c *ClassValue) String() string {
	return "<class " + c.Name + ">"
}

// Equal returns false: classes are never equal to anything
func (c *ClassValue) Equal(other types.Value) bool {
	return false
}

// Truthy returns true: all classes are truthy
func (c *ClassValue) Truthy() bool {
	return true
}

// Arity returns 0; calling a class ignores its arguments
func (c *ClassValue) Arity() int {
	return 0
}

// Call constructs a fresh instance with an empty field map. There is no
// user constructor hook; arguments are ignored.
func (c *ClassValue) Call(i *Interpreter, args []types.Value) types.Result {
	return types.Ok(NewInstance(c))
}

// InstanceValue is a mutable instance of a class: a field map plus a
// back-reference to its class. Instances are shared by reference, so a
// field set through one alias is visible through all.
type InstanceValue struct {
	Class  *ClassValue
	Fields map[string]types.Value
}

// NewInstance creates an instance of a class with no fields
func NewInstance(class *ClassValue) *InstanceValue {
	return &InstanceValue{
		Class:  class,
		Fields: make(map[string]types.Value),
	}
}

// Type returns the type code for instances
func (inst *InstanceValue) Type() types.TypeCode {
	return types.TYPE_INSTANCE
}

// String returns a diagnostic rendering
func (inst *InstanceValue) String() string {
	return "<" + inst.Class.Name + " instance>"
}

// Equal compares instances by class and field map
func (inst *InstanceValue) Equal(other types.Value) bool {
	o, ok := other.(*InstanceValue)
	if !ok || inst.Class != o.Class {
		return false
	}
	if len(inst.Fields) != len(o.Fields) {
		return false
	}
	for name, val := range inst.Fields {
		oval, ok := o.Fields[name]
		if !ok || !val.Equal(oval) {
			return false
		}
	}
	return true
}

// Truthy returns true: all instances are truthy
func (inst *InstanceValue) Truthy() bool {
	return true
}
