// SPDX-License-Identifier: MIT

// Package ingest turns probability declarations into CPTs and connects them
// into a core.Network.
//
// A declaration names a main variable, an ordered parent list and a Body. The
// Body is a tagged variant with one case per table shape found in the
// interchange formats:
//
//   - KindTable + VariableFirst — a flat number sequence whose outermost
//     (slowest) dimension is the main variable, followed by the parents in
//     declaration order, last parent fastest. Used by the BIF text "table".
//   - KindTable + VariableLast — parents outermost (first parent slowest) and the
//     main variable innermost. Used by the XMLBIF <TABLE> element.
//   - KindRows — explicit rows: positional parent labels plus one probability
//     per main-variable value in domain order.
//   - KindDefault — a default vector for unspecified parent combinations.
//     Its merge semantics are undefined, so it is rejected with ErrUnsupportedFeature.
//
// Counting order:
//
// Both flat conventions are the same walk over a dimension list, outer to inner:
//
//	VariableFirst: [X, P1, P2, …, Pk]
//	VariableLast:  [P1, P2, …, Pk, X]
//
// Example: P(X | A, B) with |X|=2, |A|=2, |B|=3.
//
//	VariableFirst: x1|a1b1 x1|a1b2 x1|a1b3 x1|a2b1 … x2|a2b3
//	VariableLast:  x1|a1b1 x2|a1b1 x1|a1b2 x2|a1b2 … x2|a2b3
//
// Processing steps (per declaration):
//
//  1. Resolve the main variable and every parent against the Network
//     (core.ErrUndeclaredVariable on a miss) before touching any table.
//  2. Build a fresh CPT from the Body.
//  3. Connect the CPT only if step 2 succeeded; a failed declaration leaves
//     the Network unchanged.
//
// Errors:
//
//	ErrMalformedTableLength – flat/row probability count does not match the dimensions
//	ErrMalformedRow         – explicit row lists the wrong number of parent labels
//	ErrUnsupportedFeature   – default table form
//	ErrDuplicateParent      – the same parent named twice
//	ErrUnknownBody          – Body with an unrecognized Kind
//	ErrBadNumber            – token that is not a number
package ingest
