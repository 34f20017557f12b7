// SPDX-License-Identifier: MIT

package ingest

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

// tableSize returns |target| · Π|parent|.
func tableSize(target *core.Variable, parents []*core.Variable) int {
	size := target.Domain().Len()
	for _, p := range parents {
		size *= p.Domain().Len()
	}

	return size
}

// dimensions returns the dimension list for order, outer to inner.
func dimensions(target *core.Variable, parents []*core.Variable, order Order) ([]*core.Variable, error) {
	dims := make([]*core.Variable, 0, len(parents)+1)
	switch order {
	case VariableFirst:
		dims = append(dims, target)
		dims = append(dims, parents...)
	case VariableLast:
		dims = append(dims, parents...)
		dims = append(dims, target)
	default:
		return nil, fmt.Errorf("%w: order %d", ErrUnknownBody, order)
	}

	return dims, nil
}

// buildTable fills a CPT from a flat sequence in counting order.
// The length is checked up front, so the walk never runs out of numbers.
func buildTable(target *core.Variable, parents []*core.Variable, order Order, values []float64) (*core.CPT, error) {
	dims, err := dimensions(target, parents, order)
	if err != nil {
		return nil, err
	}
	if want := tableSize(target, parents); len(values) != want {
		return nil, fmt.Errorf("%w: got %d values, want %d (%s)", ErrMalformedTableLength, len(values), want, order)
	}

	w := &walker{
		cpt:    core.NewCPT(target),
		target: target,
		dims:   dims,
		values: values,
	}
	if err = w.visit(0, core.NewAssignment(), ""); err != nil {
		return nil, err
	}

	return w.cpt, nil
}

// walker carries the state of one counting-order traversal.
type walker struct {
	cpt    *core.CPT
	target *core.Variable
	dims   []*core.Variable // outer → inner
	values []float64
	pos    int // next unread value
}

// visit iterates dims[depth] over its full domain, taking one recursion step
// per value. Parent values are bound in the working assignment for the
// duration of the recursive call only; the target's value travels as an
// argument because it is never part of a row key. At a leaf the next number
// becomes P(target=tv | assignment).
func (w *walker) visit(depth int, a *core.Assignment, tv core.Value) error {
	if depth == len(w.dims) {
		p := w.values[w.pos]
		w.pos++
		if err := w.cpt.Set(tv, a, p); err != nil {
			return fmt.Errorf("value #%d: %w", w.pos, err)
		}

		return nil
	}

	dim := w.dims[depth]
	dom := dim.Domain()
	for i := 0; i < dom.Len(); i++ {
		v := dom.At(i)
		if dim == w.target {
			if err := w.visit(depth+1, a, v); err != nil {
				return err
			}
			continue
		}
		a.Put(dim, v)
		err := w.visit(depth+1, a, tv)
		a.Remove(dim)
		if err != nil {
			return err
		}
	}

	return nil
}

// buildRows fills a CPT from explicit rows. Rows may leave parent
// combinations uncovered; later lookups for those fail with core.ErrNoMatchingRow.
func buildRows(target *core.Variable, parents []*core.Variable, rows []Row) (*core.CPT, error) {
	cpt := core.NewCPT(target)
	dom := target.Domain()
	for i, row := range rows {
		if len(row.Parents) != len(parents) {
			return nil, fmt.Errorf("%w: row %d has %d parent values, want %d", ErrMalformedRow, i, len(row.Parents), len(parents))
		}
		if len(row.Probabilities) != dom.Len() {
			return nil, fmt.Errorf("%w: row %d has %d probabilities, want %d", ErrMalformedTableLength, i, len(row.Probabilities), dom.Len())
		}

		a := core.NewAssignment()
		for j, label := range row.Parents {
			v, err := parents[j].Domain().Lookup(label)
			if err != nil {
				return nil, fmt.Errorf("row %d, parent %s: %w", i, parents[j].Name(), err)
			}
			a.Put(parents[j], v)
		}
		for j, p := range row.Probabilities {
			if err := cpt.Set(dom.At(j), a, p); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
	}

	return cpt, nil
}
