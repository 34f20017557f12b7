// SPDX-License-Identifier: MIT

package dag

import "errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants are fully explored.
)

// Sentinel errors for dag operations.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to a package function.
	ErrGraphNil = errors.New("dag: graph is nil")

	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("dag: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("dag: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("dag: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("dag: self-loop not allowed")

	// ErrCycleDetected indicates that an edge would close a cycle, or that
	// TopologicalSort met a back-edge.
	ErrCycleDetected = errors.New("dag: cycle detected")
)

// Graph is a directed acyclic graph over string vertex IDs.
//
// succ[u] holds every v with an edge u→v; pred[v] mirrors it so that both
// directions are answered in O(1) per neighbor.
type Graph struct {
	vertices map[string]struct{}            // vertex ID set
	succ     map[string]map[string]struct{} // u → {v : u→v}
	pred     map[string]map[string]struct{} // v → {u : u→v}
	edges    int                            // number of stored edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		succ:     make(map[string]map[string]struct{}),
		pred:     make(map[string]map[string]struct{}),
	}
}
