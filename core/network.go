// SPDX-License-Identifier: MIT

// Package core: the Network registry.
//
// Network owns every Variable and CPT. Variables are registered one at a time;
// Connect later records a variable's ordered parent list and CPT and mirrors the
// parent→child edges into a dag.Graph, which rejects any edge closing a cycle.

package core

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/dag"
)

// node is the per-variable connection state.
type node struct {
	parents []*Variable // declaration order, as used by the CPT tables
	cpt     *CPT
}

// Network is the whole model: variables, their parents and their CPTs.
//
// A Network is built by a single writer (no internal locking) and is safe for
// concurrent reads once construction has finished.
type Network struct {
	name   string
	logger *zap.Logger

	vars  map[string]*Variable // name → variable
	order []*Variable          // declaration order
	nodes map[string]*node     // name → parents + cpt (connected variables only)
	graph *dag.Graph           // parent → child edges
}

// NetworkOption configures a Network before first use.
type NetworkOption func(n *Network)

// WithName sets the network name reported by Name.
func WithName(name string) NetworkOption {
	return func(n *Network) { n.name = name }
}

// WithLogger installs a logger for debug events. A nil logger is ignored.
func WithLogger(l *zap.Logger) NetworkOption {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}

// NewNetwork creates an empty Network.
// By default the network is unnamed and logs nothing.
// Complexity: O(1)
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		logger: zap.NewNop(),
		vars:   make(map[string]*Variable),
		nodes:  make(map[string]*node),
		graph:  dag.NewGraph(),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Name returns the network name (possibly empty).
func (n *Network) Name() string { return n.name }

// SetName replaces the network name. Readers use it when the name is only
// known after the Network was created.
func (n *Network) SetName(name string) { n.name = name }

// AddVariable registers v.
// Returns ErrNilVariable for nil and ErrDuplicateVariableName if the name is taken.
// Complexity: O(1) amortized.
func (n *Network) AddVariable(v *Variable) error {
	if v == nil {
		return ErrNilVariable
	}
	if _, exists := n.vars[v.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVariableName, v.Name())
	}
	if err := n.graph.AddVertex(v.Name()); err != nil {
		return fmt.Errorf("core: AddVariable(%q): %w", v.Name(), err)
	}
	n.vars[v.Name()] = v
	n.order = append(n.order, v)

	n.logger.Debug("variable added",
		zap.String("variable", v.Name()),
		zap.Int("domain", v.Domain().Len()))

	return nil
}

// VariableByName returns the registered variable with that name.
// The boolean is false when no such variable exists; ingestion code turns
// that into ErrUndeclaredVariable.
// Complexity: O(1).
func (n *Network) VariableByName(name string) (*Variable, bool) {
	v, ok := n.vars[name]

	return v, ok
}

// Connect records parents (in order) as v's parent list and cpt as its table.
//
// Validation happens before any state changes:
//   - v and every parent must be registered in this Network (ErrUndeclaredVariable),
//   - a parent may not be listed twice (ErrDuplicateParent),
//   - cpt must be non-nil and built for v (ErrCPTMismatch),
//   - no parent may be v itself or a descendant of v (ErrCyclicDependency).
//
// Connecting an already connected variable replaces its parents and CPT.
// Complexity: O(P·(V+E)) for the reachability checks.
func (n *Network) Connect(v *Variable, parents []*Variable, cpt *CPT) error {
	// 1) Registration checks
	if err := n.registered(v); err != nil {
		return err
	}
	if cpt == nil || cpt.Variable() != v {
		return fmt.Errorf("%w: %q", ErrCPTMismatch, v.Name())
	}
	seen := make(map[string]struct{}, len(parents))
	for _, p := range parents {
		if err := n.registered(p); err != nil {
			return fmt.Errorf("parent of %q: %w", v.Name(), err)
		}
		if _, dup := seen[p.Name()]; dup {
			return fmt.Errorf("%w: %q listed twice for %q", ErrDuplicateParent, p.Name(), v.Name())
		}
		seen[p.Name()] = struct{}{}
	}

	// 2) Acyclicity: p→v closes a cycle iff p is v or p is reachable from v.
	//    Paths leaving v never use v's incoming edges, so the check is valid
	//    before the old parents are detached.
	for _, p := range parents {
		cyclic, err := n.graph.Reachable(v.Name(), p.Name())
		if err != nil {
			return fmt.Errorf("core: Connect(%q): %w", v.Name(), err)
		}
		if cyclic {
			return fmt.Errorf("%w: %q -> %q", ErrCyclicDependency, p.Name(), v.Name())
		}
	}

	// 3) Detach previous parents, attach the new ones
	if old, ok := n.nodes[v.Name()]; ok {
		for _, p := range old.parents {
			if err := n.graph.RemoveEdge(p.Name(), v.Name()); err != nil {
				return fmt.Errorf("core: Connect(%q): %w", v.Name(), err)
			}
		}
	}
	for _, p := range parents {
		if err := n.graph.AddEdge(p.Name(), v.Name()); err != nil {
			return fmt.Errorf("core: Connect(%q): %w", v.Name(), err)
		}
	}
	n.nodes[v.Name()] = &node{parents: append([]*Variable(nil), parents...), cpt: cpt}

	n.logger.Debug("variable connected",
		zap.String("variable", v.Name()),
		zap.Strings("parents", names(parents)),
		zap.Int("rows", cpt.Len()))

	return nil
}

// registered checks that v is the variable registered under its name.
func (n *Network) registered(v *Variable) error {
	if v == nil {
		return ErrNilVariable
	}
	if n.vars[v.Name()] != v {
		return fmt.Errorf("%w: %q", ErrUndeclaredVariable, v.Name())
	}

	return nil
}

// names maps variables to their names, preserving order.
func names(vs []*Variable) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name()
	}

	return out
}

// String renders the network name, then one line per variable with its
// domain and parents.
func (n *Network) String() string {
	var sb strings.Builder
	sb.WriteString("network")
	if n.name != "" {
		sb.WriteString(" " + n.name)
	}
	for _, v := range n.order {
		sb.WriteString("\n  " + v.Name() + " " + v.Domain().String())
		if nd, ok := n.nodes[v.Name()]; ok && len(nd.parents) > 0 {
			sb.WriteString(" | " + strings.Join(names(nd.parents), ", "))
		}
	}

	return sb.String()
}
