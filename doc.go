// SPDX-License-Identifier: MIT

// Package lvbayes is an in-memory model of discrete Bayesian networks and
// the machinery that loads them from the two common interchange formats.
//
// What is inside?
//
//	dag/            — acyclic parent graph: vertices, edges, reachability, topological sort
//	core/           — Value, Domain, Variable, Assignment, Distribution, CPT and Network
//	ingest/         — turns flat tables and explicit rows into CPTs and wires them in
//	bif/            — BIF text reader
//	xmlbif/         — XMLBIF reader
//	internal/       — CLI configuration and file-format dispatch
//	cmd/bnload/     — command-line front end: describe, order, query
//	examples/       — a network assembled by hand
//
// The model:
//
//	[Cloudy]
//	  /    \
//	[Sprinkler] [Rain]
//	  \    /
//	[WetGrass]
//
// Each variable owns a finite ordered domain and, once its probability
// block is ingested, a conditional probability table keyed by partial
// assignments to its parents. Lookups accept assignments carrying extra
// variables, so one evidence set serves every table in the network.
//
// The network is acyclic by construction: Network.Connect refuses any
// parent set that would close a cycle and leaves the network unchanged.
//
// The model stores tables; it does not perform inference.
//
//	go install github.com/katalvlaran/lvbayes/cmd/bnload@latest
package lvbayes
