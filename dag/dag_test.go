// SPDX-License-Identifier: MIT

package dag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/dag"
)

// newGraph builds a graph with the given vertices and edges (pairs from→to).
func newGraph(t *testing.T, vertices []string, edges ...[2]string) *dag.Graph {
	t.Helper()
	g := dag.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestGraph_AddVertex covers empty IDs and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := dag.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), dag.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddEdgeValidation checks endpoint, loop and duplicate handling.
func TestGraph_AddEdgeValidation(t *testing.T) {
	g := newGraph(t, []string{"A", "B"})

	assert.ErrorIs(t, g.AddEdge("", "B"), dag.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "A"), dag.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge("A", "Z"), dag.ErrVertexNotFound)

	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B")) // duplicate is a no-op
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

// TestGraph_AddEdgeRejectsCycle ensures the graph never stores a cycle.
func TestGraph_AddEdgeRejectsCycle(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})

	err := g.AddEdge("C", "A")
	assert.ErrorIs(t, err, dag.ErrCycleDetected)
	assert.False(t, g.HasEdge("C", "A"))
	assert.Equal(t, 2, g.EdgeCount())

	// A back-edge of length two is rejected as well.
	assert.ErrorIs(t, g.AddEdge("B", "A"), dag.ErrCycleDetected)
}

// TestGraph_RemoveEdge verifies removal and the missing-edge sentinel.
func TestGraph_RemoveEdge(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, [2]string{"A", "B"})

	require.NoError(t, g.RemoveEdge("A", "B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge("A", "B"), dag.ErrEdgeNotFound)

	// After removal the reverse edge is legal.
	require.NoError(t, g.AddEdge("B", "A"))
}

// TestGraph_Neighbors checks sorted successor and predecessor lists.
func TestGraph_Neighbors(t *testing.T) {
	g := newGraph(t, []string{"C", "R", "S", "W"},
		[2]string{"C", "S"}, [2]string{"C", "R"},
		[2]string{"S", "W"}, [2]string{"R", "W"},
	)

	succ, err := g.Successors("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "S"}, succ)

	pred, err := g.Predecessors("W")
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "S"}, pred)

	_, err = g.Successors("missing")
	assert.ErrorIs(t, err, dag.ErrVertexNotFound)
	_, err = g.Predecessors("")
	assert.ErrorIs(t, err, dag.ErrEmptyVertexID)
}

// TestGraph_Reachable covers transitive, reflexive and negative reachability.
func TestGraph_Reachable(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C", "D"}, [2]string{"A", "B"}, [2]string{"B", "C"})

	cases := []struct {
		from, to string
		want     bool
	}{
		{"A", "C", true},
		{"A", "A", true},
		{"C", "A", false},
		{"A", "D", false},
	}
	for _, tc := range cases {
		got, err := g.Reachable(tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}

	_, err := g.Reachable("A", "Z")
	assert.ErrorIs(t, err, dag.ErrVertexNotFound)
}

// TestGraph_Clone verifies the copy is independent of the original.
func TestGraph_Clone(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, [2]string{"A", "B"})
	c := g.Clone()

	require.NoError(t, c.AddEdge("B", "C"))
	assert.False(t, g.HasEdge("B", "C"))
	assert.True(t, c.HasEdge("A", "B"))
	assert.Equal(t, g.Vertices(), c.Vertices())
}
