package interp

import (
	"time"

	"fern/types"
)

// NativeFunction is a callable implemented by the host
type NativeFunction struct {
	Name   string
	Params int
	Fn     func(args []types.Value) types.Result
}

// Type returns the type code for functions
func (n *NativeFunction) Type() types.TypeCode {
	return types.TYPE_FUNCTION
}

// String returns a diagnostic rendering
func (n *NativeFunction) String() string {
	return "<native funct " + n.Name + ">"
}

// Equal returns false: functions are never equal to anything
func (n *NativeFunction) Equal(other types.Value) bool {
	return false
}

// Truthy returns true
func (n *NativeFunction) Truthy() bool {
	return true
}

// Arity returns the required argument count
func (n *NativeFunction) Arity() int {
	return n.Params
}

// Call invokes the host function
func (n *NativeFunction) Call(i *Interpreter, args []types.Value) types.Result {
	return n.Fn(args)
}

// clockNative returns the wall-clock time in milliseconds as a number.
// It is the one native pre-bound in the global scope.
func clockNative() *NativeFunction {
	return &NativeFunction{
		Name:   "clock",
		Params: 0,
		Fn: func(args []types.Value) types.Result {
			return types.Ok(types.NewNumber(float32(time.Now().UnixMilli())))
		},
	}
}
