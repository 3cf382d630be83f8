package forthic

import "strings"

// Variable - Named mutable value container
//
// Represents a variable that can store and retrieve values within a module scope.
// Variables are accessed by name and can be set to any value type.
type Variable struct {
	name  string
	value interface{}
}

// reservedVariablePrefix marks names the interpreter refuses to bind: a
// double-underscore prefix is set aside for the interpreter's own internal
// bookkeeping, the way a single leading underscore marks an unexported
// identifier in Go.
const reservedVariablePrefix = "__"

// IsValidVariableName reports whether name is usable in VARIABLES or an
// implicit declaration. The sole rule: names starting with "__" are
// reserved and refused.
func IsValidVariableName(name string) bool {
	return !strings.HasPrefix(name, reservedVariablePrefix)
}

// NewVariable creates a new Variable
func NewVariable(name string, value interface{}) *Variable {
	return &Variable{
		name:  name,
		value: value,
	}
}

// GetName returns the variable's name
func (v *Variable) GetName() string {
	return v.name
}

// SetValue sets the variable's value
func (v *Variable) SetValue(val interface{}) {
	v.value = val
}

// GetValue returns the variable's value
func (v *Variable) GetValue() interface{} {
	return v.value
}

// Dup creates a duplicate of the variable
func (v *Variable) Dup() *Variable {
	return NewVariable(v.name, v.value)
}
