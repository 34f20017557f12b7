// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only query facade over a built Network.
// Policy:
//   - No mutation here; every method is a pure query.
//   - Every exported function documents its errors and complexity.

package core

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvbayes/dag"
)

// Variables returns the registered variables in declaration order.
//
// Returns:
//   - []*Variable: a fresh slice; mutating it does not affect the Network.
//
// Complexity:
//   - Time O(V), Space O(V).
func (n *Network) Variables() []*Variable {
	return append([]*Variable(nil), n.order...)
}

// Len returns the number of registered variables. O(1).
func (n *Network) Len() int { return len(n.order) }

// Parents returns v's parents in the order they were declared to Connect.
//
// Behavior highlights:
//   - A registered but unconnected variable has no parents (nil, nil).
//
// Errors:
//   - ErrNilVariable, ErrUndeclaredVariable.
//
// Complexity:
//   - Time O(P), Space O(P).
func (n *Network) Parents(v *Variable) ([]*Variable, error) {
	if err := n.registered(v); err != nil {
		return nil, err
	}
	nd, ok := n.nodes[v.Name()]
	if !ok {
		return nil, nil
	}

	return append([]*Variable(nil), nd.parents...), nil
}

// Children returns every variable that lists v as a parent, sorted by name.
//
// Errors:
//   - ErrNilVariable, ErrUndeclaredVariable.
//
// Complexity:
//   - Time O(d log d) for d children.
func (n *Network) Children(v *Variable) ([]*Variable, error) {
	if err := n.registered(v); err != nil {
		return nil, err
	}
	ids, err := n.graph.Successors(v.Name())
	if err != nil {
		return nil, fmt.Errorf("core: Children(%q): %w", v.Name(), err)
	}

	return n.lookupAll(ids), nil
}

// CPT returns the table connected to v.
//
// Errors:
//   - ErrNilVariable, ErrUndeclaredVariable.
//   - ErrNoCPT if v was registered but never connected.
//
// Complexity:
//   - Time O(1).
func (n *Network) CPT(v *Variable) (*CPT, error) {
	if err := n.registered(v); err != nil {
		return nil, err
	}
	nd, ok := n.nodes[v.Name()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoCPT, v.Name())
	}

	return nd.cpt, nil
}

// Probability returns P(v=value | evidence) read directly from v's CPT.
//
// evidence must bind at least every parent of v; bindings for other variables
// are ignored. This is a table lookup, not inference.
//
// Errors:
//   - ErrNilVariable, ErrUndeclaredVariable, ErrNoCPT.
//   - ErrNoMatchingRow, ErrNotFound from CPT.Get.
//
// Complexity:
//   - Time O(rows).
func (n *Network) Probability(v *Variable, value Value, evidence *Assignment) (float64, error) {
	cpt, err := n.CPT(v)
	if err != nil {
		return 0, err
	}

	return cpt.Get(value, evidence)
}

// TopologicalOrder returns all variables ordered parents-before-children.
//
// Implementation:
//   - Stage 1: Delegate to dag.TopologicalSort over the parent graph.
//   - Stage 2: Map vertex IDs back to registered variables.
//
// Determinism:
//   - For a fixed network the order is stable (ties broken by name).
//
// Errors:
//   - ctx.Err() if ctx is canceled during the sort.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (n *Network) TopologicalOrder(ctx context.Context) ([]*Variable, error) {
	ids, err := dag.TopologicalSort(n.graph, dag.WithCancelContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("core: TopologicalOrder: %w", err)
	}

	return n.lookupAll(ids), nil
}

// Roots returns the variables without parents, in declaration order.
func (n *Network) Roots() []*Variable {
	var out []*Variable
	for _, v := range n.order {
		if nd, ok := n.nodes[v.Name()]; !ok || len(nd.parents) == 0 {
			out = append(out, v)
		}
	}

	return out
}

// lookupAll maps vertex IDs to variables; IDs always name registered variables.
func (n *Network) lookupAll(ids []string) []*Variable {
	out := make([]*Variable, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.vars[id])
	}

	return out
}
