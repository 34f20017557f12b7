// SPDX-License-Identifier: MIT

package bif

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/ingest"
)

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

// Reader parses BIF text into a fresh core.Network per call.
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

// Read parses all of r. The first error aborts the load and no partial
// network is returned. ctx is checked between blocks.
func (rd *Reader) Read(ctx context.Context, r io.Reader) (*core.Network, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bif: read: %w", err)
	}

	net := core.NewNetwork(core.WithLogger(rd.logger))
	p := &parser{
		lx:  newLexer(string(src)),
		net: net,
		in:  ingest.NewIngestor(net, ingest.WithLogger(rd.logger)),
	}
	if err = p.parseFile(ctx); err != nil {
		return nil, err
	}

	rd.logger.Debug("bif network loaded",
		zap.String("network", net.Name()),
		zap.Int("variables", p.variables),
		zap.Int("probabilities", p.probabilities))

	return net, nil
}
