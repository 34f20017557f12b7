// SPDX-License-Identifier: MIT

package xmlbif

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/ingest"
)

// ErrMalformedDocument indicates XML that does not decode or that lacks a
// required element.
var ErrMalformedDocument = errors.New("xmlbif: malformed document")

// document mirrors the subset of XMLBIF that carries the model.
type document struct {
	XMLName xml.Name `xml:"BIF"`
	Network struct {
		Name          string       `xml:"NAME"`
		Variables     []variable   `xml:"VARIABLE"`
		Definitions   []definition `xml:"DEFINITION"`
		Probabilities []definition `xml:"PROBABILITY"`
	} `xml:"NETWORK"`
}

type variable struct {
	Type     string   `xml:"TYPE,attr"`
	Name     string   `xml:"NAME"`
	Outcomes []string `xml:"OUTCOME"`
	Values   []string `xml:"VALUE"` // pre-0.3 spelling of OUTCOME
}

type definition struct {
	For    string   `xml:"FOR"`
	Given  []string `xml:"GIVEN"`
	Tables []string `xml:"TABLE"`
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger installs a logger, shared with the Network and the Ingestor.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(rd *Reader) {
		if l != nil {
			rd.logger = l
		}
	}
}

// Reader decodes XMLBIF documents into a fresh core.Network per call.
type Reader struct {
	logger *zap.Logger
}

// NewReader returns a Reader with the given options.
func NewReader(opts ...Option) *Reader {
	rd := &Reader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(rd)
	}

	return rd
}

// Read is shorthand for NewReader().Read(ctx, r).
func Read(ctx context.Context, r io.Reader) (*core.Network, error) {
	return NewReader().Read(ctx, r)
}

// Read decodes one document from r.
//
// Stages:
//  1. Decode the XML tree.
//  2. Register every VARIABLE in document order.
//  3. Ingest every DEFINITION (then PROBABILITY) in document order.
//
// The first error aborts the load and no partial network is returned.
// ctx is checked between elements.
func (rd *Reader) Read(ctx context.Context, r io.Reader) (*core.Network, error) {
	var doc document
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	net := core.NewNetwork(
		core.WithName(strings.TrimSpace(doc.Network.Name)),
		core.WithLogger(rd.logger),
	)

	// 2. Variables pass.
	for i, ve := range doc.Network.Variables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := ve.build()
		if err != nil {
			return nil, fmt.Errorf("xmlbif: VARIABLE #%d: %w", i, err)
		}
		if err = net.AddVariable(v); err != nil {
			return nil, fmt.Errorf("xmlbif: VARIABLE #%d: %w", i, err)
		}
	}
	rd.logger.Debug("xmlbif variables pass", zap.Int("variables", net.Len()))

	// 3. Definitions pass.
	in := ingest.NewIngestor(net, ingest.WithLogger(rd.logger))
	defs := append(doc.Network.Definitions, doc.Network.Probabilities...)
	for i, de := range defs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		decl, err := de.declaration()
		if err != nil {
			return nil, fmt.Errorf("xmlbif: DEFINITION #%d: %w", i, err)
		}
		if err = in.Ingest(decl); err != nil {
			return nil, fmt.Errorf("xmlbif: DEFINITION #%d: %w", i, err)
		}
	}
	rd.logger.Debug("xmlbif network loaded",
		zap.String("network", net.Name()),
		zap.Int("variables", net.Len()),
		zap.Int("definitions", len(defs)))

	return net, nil
}

// build turns a VARIABLE element into a core.Variable.
func (ve variable) build() (*core.Variable, error) {
	name := strings.TrimSpace(ve.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: missing NAME", ErrMalformedDocument)
	}
	labels := ve.Outcomes
	if len(labels) == 0 {
		labels = ve.Values
	}
	trimmed := make([]string, len(labels))
	for i, l := range labels {
		trimmed[i] = strings.TrimSpace(l)
	}

	return core.NewVariable(name, trimmed...)
}

// declaration turns a DEFINITION element into an ingest.Declaration.
func (de definition) declaration() (ingest.Declaration, error) {
	name := strings.TrimSpace(de.For)
	if name == "" {
		return ingest.Declaration{}, fmt.Errorf("%w: missing FOR", ErrMalformedDocument)
	}
	if len(de.Tables) == 0 {
		return ingest.Declaration{}, fmt.Errorf("%w: missing TABLE for %q", ErrMalformedDocument, name)
	}
	values, err := ingest.ParseNumbers(strings.Join(de.Tables, " "))
	if err != nil {
		return ingest.Declaration{}, fmt.Errorf("TABLE for %q: %w", name, err)
	}
	parents := make([]string, len(de.Given))
	for i, g := range de.Given {
		parents[i] = strings.TrimSpace(g)
	}

	return ingest.Declaration{
		Variable: name,
		Parents:  parents,
		Body:     ingest.TableBody(ingest.VariableLast, values),
	}, nil
}
