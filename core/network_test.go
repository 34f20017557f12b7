// SPDX-License-Identifier: MIT

package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvbayes/core"
)

// sprinkler registers Cloudy, Sprinkler, Rain and WetGrass (all boolean).
func sprinkler(t *testing.T, opts ...core.NetworkOption) (*core.Network, map[string]*core.Variable) {
	t.Helper()
	n := core.NewNetwork(opts...)
	vars := make(map[string]*core.Variable)
	for _, name := range []string{"Cloudy", "Sprinkler", "Rain", "WetGrass"} {
		v := boolVariable(t, name)
		require.NoError(t, n.AddVariable(v))
		vars[name] = v
	}

	return n, vars
}

// connect attaches an empty CPT for v with the given parents.
func connect(n *core.Network, v *core.Variable, parents ...*core.Variable) error {
	return n.Connect(v, parents, core.NewCPT(v))
}

// TestNetwork_AddVariable covers registration, lookup and duplicate names.
func TestNetwork_AddVariable(t *testing.T) {
	n, vars := sprinkler(t, core.WithName("sprinkler"))

	assert.Equal(t, "sprinkler", n.Name())
	assert.Equal(t, 4, n.Len())

	got, ok := n.VariableByName("Rain")
	assert.True(t, ok)
	assert.Same(t, vars["Rain"], got)
	_, ok = n.VariableByName("Snow")
	assert.False(t, ok)

	err := n.AddVariable(boolVariable(t, "Rain"))
	assert.ErrorIs(t, err, core.ErrDuplicateVariableName)
	assert.ErrorIs(t, n.AddVariable(nil), core.ErrNilVariable)

	names := make([]string, 0, n.Len())
	for _, v := range n.Variables() {
		names = append(names, v.Name())
	}
	assert.Equal(t, []string{"Cloudy", "Sprinkler", "Rain", "WetGrass"}, names)
}

// TestNetwork_Connect covers parents, children and CPT retrieval.
func TestNetwork_Connect(t *testing.T) {
	n, v := sprinkler(t)

	require.NoError(t, connect(n, v["Cloudy"]))
	require.NoError(t, connect(n, v["Sprinkler"], v["Cloudy"]))
	require.NoError(t, connect(n, v["Rain"], v["Cloudy"]))
	require.NoError(t, connect(n, v["WetGrass"], v["Sprinkler"], v["Rain"]))

	parents, err := n.Parents(v["WetGrass"])
	require.NoError(t, err)
	assert.Equal(t, []*core.Variable{v["Sprinkler"], v["Rain"]}, parents)

	children, err := n.Children(v["Cloudy"])
	require.NoError(t, err)
	assert.Equal(t, []*core.Variable{v["Rain"], v["Sprinkler"]}, children)

	cpt, err := n.CPT(v["Rain"])
	require.NoError(t, err)
	assert.Same(t, v["Rain"], cpt.Variable())

	assert.Equal(t, []*core.Variable{v["Cloudy"]}, n.Roots())
	assert.Contains(t, n.String(), "WetGrass {true, false} | Sprinkler, Rain")
}

// TestNetwork_ConnectErrors covers every Connect validation sentinel.
func TestNetwork_ConnectErrors(t *testing.T) {
	n, v := sprinkler(t)
	stranger := boolVariable(t, "Stranger")
	impostor := boolVariable(t, "Rain") // same name, different identity

	assert.ErrorIs(t, connect(n, stranger), core.ErrUndeclaredVariable)
	assert.ErrorIs(t, connect(n, impostor), core.ErrUndeclaredVariable)
	assert.ErrorIs(t, connect(n, v["Rain"], stranger), core.ErrUndeclaredVariable)
	assert.ErrorIs(t, connect(n, nil), core.ErrNilVariable)
	assert.ErrorIs(t, n.Connect(v["Rain"], nil, nil), core.ErrCPTMismatch)
	assert.ErrorIs(t, n.Connect(v["Rain"], nil, core.NewCPT(v["Cloudy"])), core.ErrCPTMismatch)
	assert.ErrorIs(t, connect(n, v["Rain"], v["Cloudy"], v["Cloudy"]), core.ErrDuplicateParent)
	assert.ErrorIs(t, connect(n, v["Rain"], v["Rain"]), core.ErrCyclicDependency)

	_, err := n.CPT(v["Rain"])
	assert.ErrorIs(t, err, core.ErrNoCPT)
}

// TestNetwork_ConnectRejectsCycle checks transitive cycle detection leaves state untouched.
func TestNetwork_ConnectRejectsCycle(t *testing.T) {
	n, v := sprinkler(t)
	require.NoError(t, connect(n, v["Sprinkler"], v["Cloudy"]))
	require.NoError(t, connect(n, v["WetGrass"], v["Sprinkler"]))

	err := connect(n, v["Cloudy"], v["WetGrass"])
	assert.ErrorIs(t, err, core.ErrCyclicDependency)

	parents, err := n.Parents(v["Cloudy"])
	require.NoError(t, err)
	assert.Empty(t, parents)
	_, err = n.CPT(v["Cloudy"])
	assert.ErrorIs(t, err, core.ErrNoCPT)
}

// TestNetwork_Reconnect verifies that Connect replaces previous parents.
func TestNetwork_Reconnect(t *testing.T) {
	n, v := sprinkler(t)
	require.NoError(t, connect(n, v["Rain"], v["Cloudy"]))
	require.NoError(t, connect(n, v["Rain"], v["Sprinkler"]))

	parents, err := n.Parents(v["Rain"])
	require.NoError(t, err)
	assert.Equal(t, []*core.Variable{v["Sprinkler"]}, parents)

	children, err := n.Children(v["Cloudy"])
	require.NoError(t, err)
	assert.Empty(t, children)

	// The old edge is gone, so Rain may now be a parent of Cloudy.
	require.NoError(t, connect(n, v["Cloudy"], v["Rain"]))
}

// TestNetwork_TopologicalOrder checks parents-before-children ordering.
func TestNetwork_TopologicalOrder(t *testing.T) {
	n, v := sprinkler(t)
	require.NoError(t, connect(n, v["WetGrass"], v["Sprinkler"], v["Rain"]))
	require.NoError(t, connect(n, v["Sprinkler"], v["Cloudy"]))
	require.NoError(t, connect(n, v["Rain"], v["Cloudy"]))

	order, err := n.TopologicalOrder(context.Background())
	require.NoError(t, err)
	pos := make(map[string]int, len(order))
	for i, x := range order {
		pos[x.Name()] = i
	}
	assert.Len(t, order, 4)
	assert.Less(t, pos["Cloudy"], pos["Sprinkler"])
	assert.Less(t, pos["Cloudy"], pos["Rain"])
	assert.Less(t, pos["Sprinkler"], pos["WetGrass"])
	assert.Less(t, pos["Rain"], pos["WetGrass"])
}

// TestNetwork_Probability reads through a connected CPT with extra evidence.
func TestNetwork_Probability(t *testing.T) {
	n, v := sprinkler(t)
	cpt := core.NewCPT(v["Rain"])
	mustSet(t, cpt, True, assign(v["Cloudy"], True), 0.8)
	mustSet(t, cpt, False, assign(v["Cloudy"], True), 0.2)
	require.NoError(t, n.Connect(v["Rain"], []*core.Variable{v["Cloudy"]}, cpt))

	p, err := n.Probability(v["Rain"], True, assign(v["Cloudy"], True, v["WetGrass"], False))
	require.NoError(t, err)
	assert.Equal(t, 0.8, p)

	_, err = n.Probability(v["Rain"], True, assign(v["Cloudy"], False))
	assert.ErrorIs(t, err, core.ErrNoMatchingRow)
	_, err = n.Probability(v["Cloudy"], True, nil)
	assert.ErrorIs(t, err, core.ErrNoCPT)
}

// TestNetwork_Logging verifies debug events reach the configured logger.
func TestNetwork_Logging(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	n, v := sprinkler(t, core.WithLogger(zap.New(obs)))
	require.NoError(t, connect(n, v["Rain"], v["Cloudy"]))

	assert.Equal(t, 4, logs.FilterMessage("variable added").Len())
	connected := logs.FilterMessage("variable connected").All()
	require.Len(t, connected, 1)
	assert.Equal(t, "Rain", connected[0].ContextMap()["variable"])
}
