// SPDX-License-Identifier: MIT

package core

import (
	"sort"
	"strings"
)

// binding is one variable=value pair of an Assignment.
type binding struct {
	variable *Variable
	value    Value
}

// Assignment is a partial mapping from Variables to Values.
//
// It is the addressing key of CPT rows and the evidence passed to lookups.
// Bindings are keyed by variable name, so insertion order never affects
// equality or containment. The zero value is an empty, ready-to-use Assignment.
//
// Callers that enumerate combinations mutate one working Assignment in place:
// Put before recursing, Remove on return. Copy yields an independent snapshot.
type Assignment struct {
	bindings map[string]binding
}

// NewAssignment returns an empty Assignment.
func NewAssignment() *Assignment {
	return &Assignment{bindings: make(map[string]binding)}
}

// Put binds variable to value, replacing any previous binding for the same name.
func (a *Assignment) Put(variable *Variable, value Value) {
	if a.bindings == nil {
		a.bindings = make(map[string]binding)
	}
	a.bindings[variable.Name()] = binding{variable: variable, value: value}
}

// Remove deletes the binding for variable, if any.
func (a *Assignment) Remove(variable *Variable) {
	delete(a.bindings, variable.Name())
}

// Get returns the value bound to variable and whether a binding exists.
func (a *Assignment) Get(variable *Variable) (Value, bool) {
	if a == nil {
		return "", false
	}
	b, ok := a.bindings[variable.Name()]

	return b.value, ok
}

// Len returns the number of bindings.
func (a *Assignment) Len() int {
	if a == nil {
		return 0
	}

	return len(a.bindings)
}

// Copy returns an independent snapshot; later Put/Remove on either side
// does not affect the other. Variables and Values are shared (both immutable).
func (a *Assignment) Copy() *Assignment {
	c := &Assignment{bindings: make(map[string]binding, a.Len())}
	if a == nil {
		return c
	}
	for name, b := range a.bindings {
		c.bindings[name] = b
	}

	return c
}

// ContainsAll reports whether every binding of other is present in a with an
// equal value, i.e. whether other is a subset of a. An empty other is a subset
// of anything.
// Complexity: O(|other|).
func (a *Assignment) ContainsAll(other *Assignment) bool {
	if other.Len() > a.Len() {
		return false
	}
	if other == nil {
		return true
	}
	for name, ob := range other.bindings {
		b, ok := a.bindings[name]
		if !ok || b.value != ob.value {
			return false
		}
	}

	return true
}

// Equal reports whether a and other hold exactly the same bindings.
func (a *Assignment) Equal(other *Assignment) bool {
	return a.Len() == other.Len() && a.ContainsAll(other)
}

// Variables returns the bound variables sorted by name.
func (a *Assignment) Variables() []*Variable {
	out := make([]*Variable, 0, a.Len())
	for _, name := range a.names() {
		out = append(out, a.bindings[name].variable)
	}

	return out
}

// String renders the assignment as "{A=a1, B=b2}" with names sorted.
func (a *Assignment) String() string {
	names := a.names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + string(a.bindings[name].value)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// names returns the bound variable names in ascending order.
func (a *Assignment) names() []string {
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a.bindings))
	for name := range a.bindings {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
