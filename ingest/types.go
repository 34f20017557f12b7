// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"

	"github.com/katalvlaran/lvbayes/core"
)

// Sentinel errors for ingestion.
var (
	// ErrMalformedTableLength indicates that a probability sequence does not
	// match the expected cartesian-product size.
	ErrMalformedTableLength = errors.New("ingest: malformed table length")

	// ErrMalformedRow indicates an explicit row whose parent labels do not
	// match the declared parent list.
	ErrMalformedRow = errors.New("ingest: malformed row")

	// ErrUnsupportedFeature indicates the default-table form.
	ErrUnsupportedFeature = errors.New("ingest: unsupported feature")

	// ErrDuplicateParent indicates a parent named twice in one declaration.
	// Same value as core.ErrDuplicateParent.
	ErrDuplicateParent = core.ErrDuplicateParent

	// ErrUnknownBody indicates a Body whose Kind is not recognized.
	ErrUnknownBody = errors.New("ingest: unknown body kind")

	// ErrBadNumber indicates a numeric token that cannot be parsed.
	ErrBadNumber = errors.New("ingest: bad number")
)

// Order selects where the main variable's own dimension sits in a flat table.
type Order int

const (
	// VariableFirst places the main variable outermost (slowest), then the
	// parents in declaration order. BIF text "table" form.
	VariableFirst Order = iota
	// VariableLast places the parents outermost in declaration order and the
	// main variable innermost (fastest). XMLBIF <TABLE> form.
	VariableLast
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case VariableFirst:
		return "variable-first"
	case VariableLast:
		return "variable-last"
	default:
		return "unknown"
	}
}

// BodyKind tags the shape of a declaration body.
type BodyKind int

const (
	// KindTable is a flat number sequence in a given Order.
	KindTable BodyKind = iota + 1
	// KindRows is a list of explicit rows.
	KindRows
	// KindDefault is a default probability vector (unsupported).
	KindDefault
)

// String returns the kind name.
func (k BodyKind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindRows:
		return "rows"
	case KindDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Row is one explicit entry: parent labels positionally matched to the
// declared parents, then one probability per main-variable value in domain order.
type Row struct {
	Parents       []string
	Probabilities []float64
}

// Body is the tagged table shape of a probability declaration.
// Only the fields belonging to Kind are meaningful.
type Body struct {
	Kind BodyKind

	// KindTable
	Order  Order
	Values []float64

	// KindRows
	Rows []Row

	// KindDefault
	Defaults []float64
}

// TableBody returns a flat table body in the given order.
func TableBody(order Order, values []float64) Body {
	return Body{Kind: KindTable, Order: order, Values: values}
}

// RowsBody returns an explicit-rows body.
func RowsBody(rows ...Row) Body {
	return Body{Kind: KindRows, Rows: rows}
}

// DefaultBody returns a default-vector body. Ingesting it always fails.
func DefaultBody(values []float64) Body {
	return Body{Kind: KindDefault, Defaults: values}
}

// Declaration is one probability declaration: P(Variable | Parents) = Body.
type Declaration struct {
	Variable string
	Parents  []string
	Body     Body
}
