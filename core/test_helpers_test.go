// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for lvbayes/core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/core"
)

// Common labels used across core tests.
const (
	True  = core.Value("true")
	False = core.Value("false")
)

// mustVariable creates a variable or fails the test.
func mustVariable(t *testing.T, name string, labels ...string) *core.Variable {
	t.Helper()
	v, err := core.NewVariable(name, labels...)
	require.NoError(t, err, "NewVariable(%s)", name)

	return v
}

// boolVariable creates a variable with domain {true, false}.
func boolVariable(t *testing.T, name string) *core.Variable {
	t.Helper()

	return mustVariable(t, name, "true", "false")
}

// assign builds an Assignment from alternating variable/value pairs.
func assign(pairs ...interface{}) *core.Assignment {
	a := core.NewAssignment()
	for i := 0; i+1 < len(pairs); i += 2 {
		a.Put(pairs[i].(*core.Variable), pairs[i+1].(core.Value))
	}

	return a
}

// mustSet calls cpt.Set or fails the test.
func mustSet(t *testing.T, cpt *core.CPT, v core.Value, a *core.Assignment, p float64) {
	t.Helper()
	require.NoError(t, cpt.Set(v, a, p), "Set(%s | %s)", v, a)
}

// mustGet calls cpt.Get or fails the test.
func mustGet(t *testing.T, cpt *core.CPT, v core.Value, a *core.Assignment) float64 {
	t.Helper()
	p, err := cpt.Get(v, a)
	require.NoError(t, err, "Get(%s | %s)", v, a)

	return p
}
