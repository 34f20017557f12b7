// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/core"
)

// buildCPT fills P(X | A, B) with a distinct probability per cell.
func buildCPT(t *testing.T) (*core.CPT, *core.Variable, *core.Variable, *core.Variable) {
	t.Helper()
	a := mustVariable(t, "A", "a1", "a2", "a3")
	b := mustVariable(t, "B", "b1", "b2")
	x := mustVariable(t, "X", "x1", "x2", "x3")

	cpt := core.NewCPT(x)
	p := 0.1
	for _, av := range a.Domain().Values() {
		for _, bv := range b.Domain().Values() {
			asg := assign(a, av, b, bv)
			for _, xv := range x.Domain().Values() {
				mustSet(t, cpt, xv, asg, p)
				p += 0.01
			}
		}
	}

	return cpt, a, b, x
}

// TestCPT_SetGet checks row creation and exact lookup.
func TestCPT_SetGet(t *testing.T) {
	cpt, a, b, x := buildCPT(t)

	assert.Same(t, x, cpt.Variable())
	assert.Equal(t, 6, cpt.Len())
	assert.InDelta(t, 0.10, mustGet(t, cpt, "x1", assign(a, core.Value("a1"), b, core.Value("b1"))), 1e-12)
	assert.InDelta(t, 0.14, mustGet(t, cpt, "x2", assign(a, core.Value("a1"), b, core.Value("b2"))), 1e-12)
	assert.InDelta(t, 0.27, mustGet(t, cpt, "x3", assign(a, core.Value("a3"), b, core.Value("b2"))), 1e-12)
}

// TestCPT_SubsetLookup verifies that unrelated evidence does not change the answer.
func TestCPT_SubsetLookup(t *testing.T) {
	cpt, a, b, _ := buildCPT(t)
	z := boolVariable(t, "Z")

	exact := assign(a, core.Value("a2"), b, core.Value("b2"))
	wide := assign(a, core.Value("a2"), b, core.Value("b2"), z, True)

	for _, xv := range []core.Value{"x1", "x2", "x3"} {
		assert.Equal(t, mustGet(t, cpt, xv, exact), mustGet(t, cpt, xv, wide))
	}
}

// TestCPT_Errors covers narrow queries and unset values.
func TestCPT_Errors(t *testing.T) {
	cpt, a, b, x := buildCPT(t)

	// Narrower than the stored parent set: no row key is contained.
	_, err := cpt.Get("x1", assign(a, core.Value("a1")))
	assert.ErrorIs(t, err, core.ErrNoMatchingRow)
	_, err = cpt.Row(core.NewAssignment())
	assert.ErrorIs(t, err, core.ErrNoMatchingRow)

	// A matching row that lacks the value.
	partial := core.NewCPT(x)
	mustSet(t, partial, "x1", assign(a, core.Value("a1"), b, core.Value("b1")), 0.5)
	_, err = partial.Get("x2", assign(a, core.Value("a1"), b, core.Value("b1")))
	assert.ErrorIs(t, err, core.ErrNotFound)

	// Values outside the domain are rejected by the row.
	assert.ErrorIs(t, cpt.Set("nope", assign(a, core.Value("a1"), b, core.Value("b1")), 0.1), core.ErrValueNotInDomain)
}

// TestCPT_RejectedSetAddsNoRow checks that a failed Set on a new key leaves the
// table unchanged, so lookups still report a missing row.
func TestCPT_RejectedSetAddsNoRow(t *testing.T) {
	_, a, _, x := buildCPT(t)
	cpt := core.NewCPT(x)
	key := assign(a, core.Value("a1"))

	assert.ErrorIs(t, cpt.Set("nope", key, 0.1), core.ErrValueNotInDomain)
	assert.ErrorIs(t, cpt.Set("x1", key, 1.5), core.ErrInvalidProbability)
	assert.Equal(t, 0, cpt.Len())

	_, err := cpt.Get("x1", key)
	assert.ErrorIs(t, err, core.ErrNoMatchingRow)

	mustSet(t, cpt, "x1", key, 0.4)
	assert.Equal(t, 1, cpt.Len())
}

// TestCPT_Prior covers a parentless table keyed by the empty assignment.
func TestCPT_Prior(t *testing.T) {
	c := boolVariable(t, "C")
	s := boolVariable(t, "S")
	cpt := core.NewCPT(c)
	mustSet(t, cpt, True, core.NewAssignment(), 0.5)
	mustSet(t, cpt, False, nil, 0.5)

	assert.Equal(t, 1, cpt.Len())
	assert.Equal(t, 0.5, mustGet(t, cpt, True, assign(s, True)))
	assert.Equal(t, 0.5, mustGet(t, cpt, False, nil))
}

// TestCPT_StoredKeyIsCopy ensures later mutation of the caller's assignment
// does not move a stored row.
func TestCPT_StoredKeyIsCopy(t *testing.T) {
	a := boolVariable(t, "A")
	x := boolVariable(t, "X")
	cpt := core.NewCPT(x)

	work := assign(a, True)
	mustSet(t, cpt, True, work, 0.25)
	work.Put(a, False)
	mustSet(t, cpt, True, work, 0.75)

	assert.Equal(t, 2, cpt.Len())
	assert.Equal(t, 0.25, mustGet(t, cpt, True, assign(a, True)))
	assert.Equal(t, 0.75, mustGet(t, cpt, True, assign(a, False)))
}

// TestCPT_Copy verifies the copy answers identically and is independent.
func TestCPT_Copy(t *testing.T) {
	cpt, a, b, _ := buildCPT(t)
	cp := cpt.Copy()

	for _, r := range cpt.Rows() {
		for _, xv := range []core.Value{"x1", "x2", "x3"} {
			assert.Equal(t, mustGet(t, cpt, xv, r.Assignment), mustGet(t, cp, xv, r.Assignment))
		}
	}

	query := assign(a, core.Value("a1"), b, core.Value("b1"))
	before := mustGet(t, cpt, "x1", query)
	row, err := cp.Row(query)
	require.NoError(t, err)
	require.NoError(t, row.Put("x1", 0.99))

	assert.Equal(t, before, mustGet(t, cpt, "x1", query))
	assert.Equal(t, 0.99, mustGet(t, cp, "x1", query))

	// Keys are shared, distributions are not.
	assert.Same(t, cpt.Rows()[0].Assignment, cp.Rows()[0].Assignment)
	assert.NotSame(t, cpt.Rows()[0].Distribution, cp.Rows()[0].Distribution)
}

// TestCPT_String renders rows in insertion order.
func TestCPT_String(t *testing.T) {
	a := boolVariable(t, "A")
	x := boolVariable(t, "X")
	cpt := core.NewCPT(x)
	mustSet(t, cpt, True, assign(a, True), 0.1)
	mustSet(t, cpt, False, assign(a, True), 0.9)
	mustSet(t, cpt, True, assign(a, False), 0.6)

	assert.Equal(t, "{A=true} -> [true: 0.1, false: 0.9]\n{A=false} -> [true: 0.6]", cpt.String())
}
