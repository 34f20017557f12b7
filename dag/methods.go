// SPDX-License-Identifier: MIT

// Package dag: Graph method implementations.
//
// Adjacency is stored twice (succ and pred) as nested sets, giving constant-time
// edge insertion, deletion and existence checks in both directions.

package dag

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty. Re-adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; exists {
		return nil // idempotent
	}
	g.vertices[id] = struct{}{}
	g.succ[id] = make(map[string]struct{})
	g.pred[id] = make(map[string]struct{})

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts the directed edge from→to.
//
// Both endpoints must already exist. Adding an existing edge is a no-op.
// The edge is rejected with ErrCycleDetected when 'from' is already reachable
// from 'to', and nothing is modified in that case.
//
// Returns ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed, ErrCycleDetected.
// Complexity: O(V+E) for the reachability guard.
func (g *Graph) AddEdge(from, to string) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if err := g.mustHave(from, to); err != nil {
		return err
	}
	// 2) Duplicate edge is a no-op
	if _, ok := g.succ[from][to]; ok {
		return nil
	}
	// 3) Acyclicity: a path to→…→from plus from→to would be a cycle
	if g.reach(to, from) {
		return fmt.Errorf("%w: %q -> %q", ErrCycleDetected, from, to)
	}
	// 4) Insert in both directions
	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}
	g.edges++

	return nil
}

// RemoveEdge deletes the directed edge from→to.
// Returns ErrEdgeNotFound if the edge is absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	if _, ok := g.succ[from][to]; !ok {
		return fmt.Errorf("%w: %q -> %q", ErrEdgeNotFound, from, to)
	}
	delete(g.succ[from], to)
	delete(g.pred[to], from)
	g.edges--

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.succ[from][to]

	return ok
}

// Successors returns the sorted IDs of all v with an edge id→v.
// Complexity: O(d log d).
func (g *Graph) Successors(id string) ([]string, error) {
	if err := g.mustHave(id); err != nil {
		return nil, err
	}

	return sortedKeys(g.succ[id]), nil
}

// Predecessors returns the sorted IDs of all u with an edge u→id.
// Complexity: O(d log d).
func (g *Graph) Predecessors(id string) ([]string, error) {
	if err := g.mustHave(id); err != nil {
		return nil, err
	}

	return sortedKeys(g.pred[id]), nil
}

// Reachable reports whether 'to' can be reached from 'from' by following
// edges forward. A vertex reaches itself.
// Complexity: O(V+E).
func (g *Graph) Reachable(from, to string) (bool, error) {
	if err := g.mustHave(from, to); err != nil {
		return false, err
	}

	return g.reach(from, to), nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	return sortedKeys(g.vertices)
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Clone returns an independent deep copy of the graph.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	for id := range g.vertices {
		_ = c.AddVertex(id) // id is non-empty by construction
	}
	for from, tos := range g.succ {
		for to := range tos {
			c.succ[from][to] = struct{}{}
			c.pred[to][from] = struct{}{}
		}
	}
	c.edges = g.edges

	return c
}

// Internal helper methods:
////////////////////

// mustHave returns ErrVertexNotFound (wrapped with the ID) for the first missing id.
func (g *Graph) mustHave(ids ...string) error {
	for _, id := range ids {
		if id == "" {
			return ErrEmptyVertexID
		}
		if _, ok := g.vertices[id]; !ok {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	return nil
}

// reach is an iterative DFS from 'from' looking for 'to'. Both must exist.
func (g *Graph) reach(from, to string) bool {
	if from == to {
		return true
	}
	seen := map[string]struct{}{from: {}}
	stack := []string{from}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := range g.succ[u] {
			if v == to {
				return true
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			stack = append(stack, v)
		}
	}

	return false
}

// sortedKeys returns the keys of a string set in ascending order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
