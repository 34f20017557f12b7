// SPDX-License-Identifier: MIT

// Package loader picks a reader for a network file and loads it.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbayes/bif"
	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/internal/config"
	"github.com/katalvlaran/lvbayes/xmlbif"
)

// ErrUnknownFormat indicates a format name or file extension with no reader.
var ErrUnknownFormat = errors.New("loader: unknown format")

// Option configures a Loader.
type Option func(*Loader)

// WithLogger installs the logger passed down to the readers.
func WithLogger(l *zap.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithFormat forces a format instead of detecting it from the extension.
func WithFormat(format string) Option {
	return func(ld *Loader) { ld.format = format }
}

// WithWorkers bounds how many files LoadAll reads at once. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(ld *Loader) {
		if n > 0 {
			ld.workers = n
		}
	}
}

// Loader opens network files and dispatches them to bif or xmlbif.
type Loader struct {
	logger  *zap.Logger
	format  string
	workers int
}

// New returns a Loader with auto-detection and four workers.
func New(opts ...Option) *Loader {
	ld := &Loader{logger: zap.NewNop(), format: config.FormatAuto, workers: 4}
	for _, opt := range opts {
		opt(ld)
	}

	return ld
}

// Detect resolves format for path. An explicit bif or xmlbif wins; auto
// looks at the extension: .bif is BIF text, .xml and .xmlbif are XMLBIF.
func Detect(path, format string) (string, error) {
	switch format {
	case config.FormatBIF, config.FormatXMLBIF:
		return format, nil
	case config.FormatAuto, "":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bif":
		return config.FormatBIF, nil
	case ".xml", ".xmlbif":
		return config.FormatXMLBIF, nil
	default:
		return "", fmt.Errorf("%w: cannot infer from %q, set the format explicitly", ErrUnknownFormat, path)
	}
}

// Read parses r in the given (already resolved) format.
func (ld *Loader) Read(ctx context.Context, r io.Reader, format string) (*core.Network, error) {
	switch format {
	case config.FormatBIF:
		return bif.NewReader(bif.WithLogger(ld.logger)).Read(ctx, r)
	case config.FormatXMLBIF:
		return xmlbif.NewReader(xmlbif.WithLogger(ld.logger)).Read(ctx, r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Load opens path and parses it.
func (ld *Loader) Load(ctx context.Context, path string) (*core.Network, error) {
	format, err := Detect(path, ld.format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	net, err := ld.Read(ctx, f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ld.logger.Info("network loaded",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("variables", net.Len()))

	return net, nil
}

// LoadAll loads every path concurrently, at most workers at a time, and
// returns the networks in the order of paths. The first failure cancels the
// remaining loads and is returned.
func (ld *Loader) LoadAll(ctx context.Context, paths []string) ([]*core.Network, error) {
	out := make([]*core.Network, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ld.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			net, err := ld.Load(gctx, path)
			if err != nil {
				return err
			}
			out[i] = net

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
