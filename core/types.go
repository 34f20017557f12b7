// SPDX-License-Identifier: MIT

// Package core defines the sentinel errors and the immutable leaves of the
// model: Value, Domain and Variable.

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core model operations.
var (
	// ErrEmptyName indicates a zero-length variable name or value label.
	ErrEmptyName = errors.New("core: name is empty")

	// ErrEmptyDomain indicates a domain declared without any value.
	ErrEmptyDomain = errors.New("core: domain is empty")

	// ErrDuplicateValue indicates a label listed twice in one domain.
	ErrDuplicateValue = errors.New("core: duplicate value in domain")

	// ErrNilVariable indicates a nil *Variable argument.
	ErrNilVariable = errors.New("core: variable is nil")

	// ErrDuplicateVariableName indicates a variable name already registered in the Network.
	ErrDuplicateVariableName = errors.New("core: duplicate variable name")

	// ErrDuplicateParent indicates a parent listed twice for one variable.
	ErrDuplicateParent = errors.New("core: duplicate parent")

	// ErrUndeclaredVariable indicates a reference to a variable that has not been registered.
	ErrUndeclaredVariable = errors.New("core: undeclared variable")

	// ErrCyclicDependency indicates that Connect would introduce a cycle.
	ErrCyclicDependency = errors.New("core: cyclic dependency")

	// ErrCPTMismatch indicates a nil CPT or a CPT owned by another variable.
	ErrCPTMismatch = errors.New("core: cpt does not belong to variable")

	// ErrNoCPT indicates a query on a variable that was never connected.
	ErrNoCPT = errors.New("core: variable has no cpt")

	// ErrNoMatchingRow indicates that no CPT row key is a subset of the query assignment.
	ErrNoMatchingRow = errors.New("core: no matching cpt row")

	// ErrNotFound indicates a value that was never set in a distribution.
	ErrNotFound = errors.New("core: value not found")

	// ErrValueNotInDomain indicates a value or label outside a variable's domain.
	ErrValueNotInDomain = errors.New("core: value not in domain")

	// ErrInvalidProbability indicates a probability outside [0,1] or NaN.
	ErrInvalidProbability = errors.New("core: probability out of range")
)

// Value is one domain label. Values compare by label.
type Value string

// String returns the label.
func (v Value) String() string { return string(v) }

// Domain is the ordered, finite set of Values a Variable may take.
// The order is significant: it defines a value's position in counting order.
// A Domain is immutable after NewDomain returns.
type Domain struct {
	values []Value       // declaration order
	index  map[Value]int // value → position
}

// NewDomain builds a Domain from ordered labels.
// Returns ErrEmptyDomain for no labels, ErrEmptyName for an empty label and
// ErrDuplicateValue for a repeated label.
// Complexity: O(n).
func NewDomain(labels ...string) (*Domain, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyDomain
	}
	d := &Domain{
		values: make([]Value, 0, len(labels)),
		index:  make(map[Value]int, len(labels)),
	}
	for _, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("%w: empty value label", ErrEmptyName)
		}
		v := Value(label)
		if _, dup := d.index[v]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValue, label)
		}
		d.index[v] = len(d.values)
		d.values = append(d.values, v)
	}

	return d, nil
}

// Len returns the number of values.
func (d *Domain) Len() int { return len(d.values) }

// At returns the i-th value in declaration order. It panics if i is out of range,
// like slice indexing.
func (d *Domain) At(i int) Value { return d.values[i] }

// Values returns a copy of the values in declaration order.
func (d *Domain) Values() []Value {
	return append([]Value(nil), d.values...)
}

// Index returns the position of v and whether v belongs to the domain.
func (d *Domain) Index(v Value) (int, bool) {
	i, ok := d.index[v]

	return i, ok
}

// Contains reports whether v belongs to the domain.
func (d *Domain) Contains(v Value) bool {
	_, ok := d.index[v]

	return ok
}

// Lookup resolves a textual label to its Value, or fails with ErrValueNotInDomain.
func (d *Domain) Lookup(label string) (Value, error) {
	v := Value(label)
	if !d.Contains(v) {
		return "", fmt.Errorf("%w: %q", ErrValueNotInDomain, label)
	}

	return v, nil
}

// String renders the domain as "{a, b, c}".
func (d *Domain) String() string {
	parts := make([]string, len(d.values))
	for i, v := range d.values {
		parts[i] = string(v)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Variable is a named random variable bound to a Domain.
// Variables are immutable; within a Network they are identified by name.
type Variable struct {
	name   string
	domain *Domain
}

// NewVariable creates a Variable with the given name and ordered domain labels.
// Returns ErrEmptyName for an empty name, plus any NewDomain error.
func NewVariable(name string, labels ...string) (*Variable, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: variable name", ErrEmptyName)
	}
	d, err := NewDomain(labels...)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}

	return &Variable{name: name, domain: d}, nil
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Domain returns the variable's domain.
func (v *Variable) Domain() *Domain { return v.domain }

// String returns the variable name.
func (v *Variable) String() string { return v.name }
