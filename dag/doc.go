// SPDX-License-Identifier: MIT

// Package dag provides a small directed acyclic graph keyed by string vertex IDs.
//
// It is the structural backbone of a Bayesian network: vertices are variable
// names and an edge u→v means "u is a parent of v". The graph refuses any edge
// that would close a cycle, so every Graph is a DAG by construction.
//
// What:
//
//   - Graph: vertex registry plus forward (successor) and reverse (predecessor)
//     adjacency sets; self-loops and parallel edges are never stored.
//   - Reachable: iterative depth-first reachability query.
//   - TopologicalSort: three-color DFS producing parents-before-children order.
//
// Determinism:
//
//   - Vertices(), Successors() and Predecessors() return sorted IDs.
//   - TopologicalSort visits roots and successors in sorted order, so a fixed
//     graph always yields the same ordering.
//
// Concurrency:
//
//   - Graph has no internal locking. Build it from one goroutine; concurrent
//     reads are safe once mutation has stopped.
//
// Complexity:
//
//   - AddVertex, HasVertex, HasEdge, RemoveEdge: O(1)
//   - AddEdge:         O(V+E) (reachability check guarding acyclicity)
//   - Reachable:       O(V+E)
//   - TopologicalSort: O(V+E)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrEmptyVertexID   zero-length vertex ID
//   - ErrVertexNotFound  vertex is not registered
//   - ErrEdgeNotFound    edge is not registered
//   - ErrLoopNotAllowed  edge from a vertex to itself
//   - ErrCycleDetected   edge would close a cycle, or a cycle was found while sorting
package dag
