// SPDX-License-Identifier: MIT

// Package core: conditional probability tables.
//
// A CPT holds one row per combination of parent values. Each row is keyed by
// an Assignment over the parents and stores a Distribution over the CPT's own
// variable. A variable with no parents has a single row keyed by the empty
// Assignment (its prior).

package core

import (
	"fmt"
	"strings"
)

// Row is one (parent Assignment → Distribution) entry of a CPT.
// Assignment is shared with the table and must be treated as read-only.
type Row struct {
	Assignment   *Assignment
	Distribution *Distribution
}

// CPT is the conditional probability table of one Variable given its parents.
//
// Rows are kept in insertion order and located by a linear scan testing
// subset-containment (see row). Rows are never removed.
type CPT struct {
	variable *Variable
	rows     []Row
}

// NewCPT returns an empty CPT for variable.
func NewCPT(variable *Variable) *CPT {
	return &CPT{variable: variable}
}

// Variable returns the variable whose distribution this table models.
func (c *CPT) Variable() *Variable { return c.variable }

// Len returns the number of rows.
func (c *CPT) Len() int { return len(c.rows) }

// Rows returns a snapshot of the rows in insertion order.
func (c *CPT) Rows() []Row {
	return append([]Row(nil), c.rows...)
}

// Set records P(variable=value | assignment) = p.
//
// The row whose key is a subset of assignment receives the probability. When
// no row matches, a new row keyed by a copy of exactly assignment is created,
// but only once value and p pass validation. The caller is responsible for
// passing only parent bindings.
// Returns the Distribution.Put errors (ErrValueNotInDomain, ErrInvalidProbability).
// Complexity: O(rows).
func (c *CPT) Set(value Value, assignment *Assignment, p float64) error {
	if dist := c.row(assignment); dist != nil {
		return dist.Put(value, p)
	}
	dist := NewDistribution(c.variable)
	if err := dist.Put(value, p); err != nil {
		return err
	}
	c.rows = append(c.rows, Row{Assignment: assignment.Copy(), Distribution: dist})

	return nil
}

// Get returns P(variable=value | assignment).
//
// assignment may carry bindings for variables other than the parents; only the
// row key has to be contained in it. Returns ErrNoMatchingRow when no row
// matches (including queries narrower than the stored parent set) and
// ErrNotFound when the matching row lacks value.
// Complexity: O(rows).
func (c *CPT) Get(value Value, assignment *Assignment) (float64, error) {
	dist, err := c.Row(assignment)
	if err != nil {
		return 0, err
	}

	return dist.Get(value)
}

// Row returns the Distribution whose key is a subset of assignment, or
// ErrNoMatchingRow.
func (c *CPT) Row(assignment *Assignment) (*Distribution, error) {
	dist := c.row(assignment)
	if dist == nil {
		return nil, fmt.Errorf("%w: P(%s | %s)", ErrNoMatchingRow, c.variable.Name(), assignment)
	}

	return dist, nil
}

// Copy returns a CPT for the same variable with independent Distributions.
// Row keys are shared, which is safe because stored keys are never mutated.
func (c *CPT) Copy() *CPT {
	out := &CPT{variable: c.variable, rows: make([]Row, len(c.rows))}
	for i, r := range c.rows {
		out.rows[i] = Row{Assignment: r.Assignment, Distribution: r.Distribution.Copy()}
	}

	return out
}

// String renders one row per line: "{A=a1} -> [x: 0.1, y: 0.9]".
func (c *CPT) String() string {
	var sb strings.Builder
	for i, r := range c.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.Assignment.String())
		sb.WriteString(" -> ")
		sb.WriteString(r.Distribution.String())
	}

	return sb.String()
}

// row finds the first row whose key is a subset of assignment.
//
// This is a linear O(rows) scan. Rows are bounded by the cartesian product of
// the parent domains, which is small for the target models. A drop-in
// replacement is a map keyed by the canonical projection of the query onto the
// parent set, behind the same Set/Get contract.
func (c *CPT) row(assignment *Assignment) *Distribution {
	for _, r := range c.rows {
		if assignment.ContainsAll(r.Assignment) {
			return r.Distribution
		}
	}

	return nil
}
