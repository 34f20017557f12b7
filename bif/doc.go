// SPDX-License-Identifier: MIT

// Package bif reads the BIF text interchange format into a core.Network.
//
// Supported grammar (keywords are case-insensitive, names may be bare words
// or double-quoted strings, "//" and "/* */" comments are skipped):
//
//	network NAME { property ...; }
//	variable NAME {
//	    type discrete [ N ] { v1, v2, ... };
//	    property ...;
//	}
//	probability ( X | P1, P2, ... ) {
//	    ( p1, p2, ... ) x1, x2, ...;   // explicit row
//	    table t1, t2, ...;             // flat table, X outermost
//	    default d1, d2, ...;           // rejected: ingest.ErrUnsupportedFeature
//	    property ...;
//	}
//
// Blocks are processed in file order. Every variable must be declared before
// a probability block references it; a forward reference aborts the load with
// core.ErrUndeclaredVariable. Flat tables use ingest.VariableFirst.
package bif
