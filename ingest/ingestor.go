// SPDX-License-Identifier: MIT

package ingest

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/core"
)

// Option configures an Ingestor.
type Option func(*Ingestor)

// WithLogger installs a logger for per-declaration debug events.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(in *Ingestor) {
		if l != nil {
			in.logger = l
		}
	}
}

// Ingestor builds CPTs from declarations and connects them into one Network.
// It holds no state besides the target Network, so one Ingestor serves a
// whole load.
type Ingestor struct {
	net    *core.Network
	logger *zap.Logger
}

// NewIngestor returns an Ingestor writing into net.
func NewIngestor(net *core.Network, opts ...Option) *Ingestor {
	in := &Ingestor{net: net, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Network returns the target network.
func (in *Ingestor) Network() *core.Network { return in.net }

// Ingest is a one-shot helper: NewIngestor(net).Ingest(...).
func Ingest(net *core.Network, variable string, parents []string, body Body) error {
	return NewIngestor(net).Ingest(Declaration{Variable: variable, Parents: parents, Body: body})
}

// Ingest builds the CPT described by decl and connects it into the Network.
//
// Names are resolved before any table work; the Network is modified only
// when the whole declaration succeeds.
func (in *Ingestor) Ingest(decl Declaration) error {
	target, parents, err := in.resolve(decl)
	if err != nil {
		return fmt.Errorf("P(%s): %w", decl.Variable, err)
	}

	cpt, err := Build(target, parents, decl.Body)
	if err != nil {
		return fmt.Errorf("P(%s): %w", decl.Variable, err)
	}

	if err = in.net.Connect(target, parents, cpt); err != nil {
		return fmt.Errorf("P(%s): %w", decl.Variable, err)
	}
	in.logger.Debug("declaration ingested",
		zap.String("variable", decl.Variable),
		zap.Strings("parents", decl.Parents),
		zap.Stringer("body", decl.Body.Kind),
		zap.Int("rows", cpt.Len()))

	return nil
}

// resolve looks up the main variable and each parent, failing fast on the
// first undeclared name.
func (in *Ingestor) resolve(decl Declaration) (*core.Variable, []*core.Variable, error) {
	target, ok := in.net.VariableByName(decl.Variable)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", core.ErrUndeclaredVariable, decl.Variable)
	}
	parents := make([]*core.Variable, 0, len(decl.Parents))
	seen := make(map[string]struct{}, len(decl.Parents))
	for _, name := range decl.Parents {
		p, ok := in.net.VariableByName(name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", core.ErrUndeclaredVariable, name)
		}
		if p == target {
			return nil, nil, fmt.Errorf("%w: %q conditioned on itself", core.ErrCyclicDependency, name)
		}
		if _, dup := seen[name]; dup {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateParent, name)
		}
		seen[name] = struct{}{}
		parents = append(parents, p)
	}

	return target, parents, nil
}

// Build creates a CPT for target given parents from body without touching any
// Network. Callers that already resolved the variables can use it directly.
func Build(target *core.Variable, parents []*core.Variable, body Body) (*core.CPT, error) {
	for _, p := range parents {
		if p == target {
			return nil, fmt.Errorf("%w: %q conditioned on itself", core.ErrCyclicDependency, p.Name())
		}
	}
	switch body.Kind {
	case KindTable:
		return buildTable(target, parents, body.Order, body.Values)
	case KindRows:
		return buildRows(target, parents, body.Rows)
	case KindDefault:
		return nil, fmt.Errorf("%w: default table entries", ErrUnsupportedFeature)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBody, body.Kind)
	}
}
