// SPDX-License-Identifier: MIT

// Package core provides the in-memory data model of a discrete Bayesian network:
// values, domains, variables, partial assignments, distributions, conditional
// probability tables (CPTs) and the Network registry that ties them together.
//
// The model G = (V, E, Θ) is built in one pass:
//
//   - Variables are declared first (NewVariable + Network.AddVariable).
//   - Probability declarations then attach an ordered parent list and a CPT to
//     a variable (Network.Connect). Every parent→child edge lands in a dag.Graph,
//     so the parent structure is acyclic by construction.
//
// Why this shape?
//
//   - Identity by name — a Variable is unique within its Network by name, and
//     Assignments key their bindings by that name.
//   - Subset lookup — a CPT row matches any query Assignment that contains the
//     row's key, so evidence may carry values for unrelated variables.
//   - Sparse rows — CPT rows are created on first Set and never removed; the
//     table is complete once every combination of parent values has a row.
//
// Core types:
//
//	Value        – one domain label (equality by label)
//	Domain       – ordered, non-empty, duplicate-free list of Values
//	Variable     – name bound to a Domain; immutable
//	Assignment   – partial Variable→Value map; Copy is independent
//	Distribution – Value→probability for one Variable; one CPT row
//	CPT          – (Assignment → Distribution) rows for one Variable
//	Network      – Variable registry, parent lists, CPTs, parent DAG
//
// Core methods:
//
//	// Registry
//	AddVariable(v *Variable) error                       // O(1)
//	VariableByName(name string) (*Variable, bool)        // O(1)
//	Connect(v *Variable, parents []*Variable, cpt *CPT)  // O(P·(V+E))
//
//	// CPT
//	Set(value Value, a *Assignment, p float64) error     // O(rows)
//	Get(value Value, a *Assignment) (float64, error)     // O(rows)
//	Copy() *CPT                                          // O(rows·|domain|)
//
//	// Queries
//	Parents, Children, CPT, Probability, TopologicalOrder, Variables
//
// Configuration Options (NetworkOption):
//
//	– WithName(name string)        network name reported by Name()
//	– WithLogger(l *zap.Logger)    debug events for AddVariable/Connect
//
// Concurrency:
//
//	The model is built by a single writer and carries no internal locks.
//	Once construction is finished, concurrent read-only queries are safe.
//
// Errors:
//
//	ErrEmptyName             – zero-length variable name or value label
//	ErrEmptyDomain           – domain without values
//	ErrDuplicateValue        – label listed twice in one domain
//	ErrNilVariable           – nil *Variable argument
//	ErrDuplicateVariableName – name already registered
//	ErrDuplicateParent       – parent listed twice in one Connect
//	ErrUndeclaredVariable    – variable not (yet) registered
//	ErrCyclicDependency      – Connect would create a cycle
//	ErrCPTMismatch           – CPT is nil or belongs to another variable
//	ErrNoCPT                 – variable has not been connected
//	ErrNoMatchingRow         – no CPT row key is a subset of the query
//	ErrNotFound              – value never set in an otherwise matching row
//	ErrValueNotInDomain      – value/label outside the variable's domain
//	ErrInvalidProbability    – probability outside [0,1] or NaN
package core
