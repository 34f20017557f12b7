// SPDX-License-Identifier: MIT

package bif

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/ingest"
)

// parser is a recursive-descent parser with one token of lookahead. It feeds
// declarations straight into the network as they are recognized.
type parser struct {
	lx  *lexer
	tok token // current lookahead
	net *core.Network
	in  *ingest.Ingestor

	variables, probabilities int
}

// advance loads the next token into p.tok.
func (p *parser) advance() error {
	t, err := p.lx.next()
	if err != nil {
		return err
	}
	p.tok = t

	return nil
}

// errorf builds an ErrSyntax error at the current token.
func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, p.tok.line, fmt.Sprintf(format, args...))
}

// isKeyword reports whether the lookahead is the bare word kw.
func (p *parser) isKeyword(kw string) bool {
	return p.tok.kind == tokWord && strings.EqualFold(p.tok.text, kw)
}

// isPunct reports whether the lookahead is the punctuation s.
func (p *parser) isPunct(s string) bool {
	return p.tok.kind == tokPunct && p.tok.text == s
}

// expect consumes the punctuation s or fails.
func (p *parser) expect(s string) error {
	if !p.isPunct(s) {
		return p.errorf("expected '%s', found %s", s, p.tok)
	}

	return p.advance()
}

// expectKeyword consumes the bare word kw or fails.
func (p *parser) expectKeyword(kw string) error {
	if !p.isKeyword(kw) {
		return p.errorf("expected %q, found %s", kw, p.tok)
	}

	return p.advance()
}

// name consumes a bare word or quoted string.
func (p *parser) name() (string, error) {
	if p.tok.kind != tokWord && p.tok.kind != tokString {
		return "", p.errorf("expected a name, found %s", p.tok)
	}
	s := p.tok.text

	return s, p.advance()
}

// list consumes names separated by optional commas until the closing
// punctuation (which is left in place).
func (p *parser) list(closing string) ([]string, error) {
	var out []string
	for !p.isPunct(closing) {
		if p.isPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		s, err := p.name()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// numbers consumes numeric tokens up to and including the terminating ';'.
func (p *parser) numbers() ([]float64, error) {
	words, err := p.list(";")
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(words))
	for i, w := range words {
		if out[i], err = ingest.ParseNumber(w); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, p.tok.line, err)
		}
	}

	return out, p.expect(";")
}

// skipProperty consumes "property ... ;".
func (p *parser) skipProperty() error {
	for !p.isPunct(";") {
		if p.tok.kind == tokEOF {
			return p.errorf("unterminated property")
		}
		if err := p.advance(); err != nil {
			return err
		}
	}

	return p.advance()
}

// optionalSemicolon consumes a trailing ';' after a block, if present.
func (p *parser) optionalSemicolon() error {
	if p.isPunct(";") {
		return p.advance()
	}

	return nil
}

// parseFile is the top-level loop over blocks.
func (p *parser) parseFile(ctx context.Context) error {
	if err := p.advance(); err != nil {
		return err
	}
	for p.tok.kind != tokEOF {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch {
		case p.isKeyword("network"):
			err = p.parseNetwork()
		case p.isKeyword("variable"):
			err = p.parseVariable()
		case p.isKeyword("probability"):
			err = p.parseProbability()
		default:
			err = p.errorf("unexpected %s at top level", p.tok)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// parseNetwork handles: network NAME { property...; }
func (p *parser) parseNetwork() error {
	if err := p.advance(); err != nil {
		return err
	}
	name, err := p.name()
	if err != nil {
		return err
	}
	p.net.SetName(name)
	if err = p.expect("{"); err != nil {
		return err
	}
	for !p.isPunct("}") {
		if !p.isKeyword("property") {
			return p.errorf("unexpected %s in network block", p.tok)
		}
		if err = p.skipProperty(); err != nil {
			return err
		}
	}
	if err = p.advance(); err != nil {
		return err
	}

	return p.optionalSemicolon()
}

// parseVariable handles a variable block and registers the variable.
func (p *parser) parseVariable() error {
	if err := p.advance(); err != nil {
		return err
	}
	line := p.tok.line
	name, err := p.name()
	if err != nil {
		return err
	}
	if err = p.expect("{"); err != nil {
		return err
	}

	var labels []string
	for !p.isPunct("}") {
		switch {
		case p.isKeyword("property"):
			err = p.skipProperty()
		case p.isKeyword("type"):
			labels, err = p.parseType()
		default:
			err = p.errorf("unexpected %s in variable %q", p.tok, name)
		}
		if err != nil {
			return err
		}
	}
	if err = p.advance(); err != nil {
		return err
	}
	if err = p.optionalSemicolon(); err != nil {
		return err
	}

	v, err := core.NewVariable(name, labels...)
	if err != nil {
		return fmt.Errorf("bif: line %d: %w", line, err)
	}
	if err = p.net.AddVariable(v); err != nil {
		return fmt.Errorf("bif: line %d: %w", line, err)
	}
	p.variables++

	return nil
}

// parseType handles: type discrete [ N ] { v1, v2, ... };
func (p *parser) parseType() ([]string, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("discrete"); err != nil {
		return nil, err
	}
	if err := p.expect("["); err != nil {
		return nil, err
	}
	if p.tok.kind != tokWord {
		return nil, p.errorf("expected domain size, found %s", p.tok)
	}
	size, err := strconv.Atoi(p.tok.text)
	if err != nil {
		return nil, p.errorf("bad domain size %s", p.tok)
	}
	if err = p.advance(); err != nil {
		return nil, err
	}
	if err = p.expect("]"); err != nil {
		return nil, err
	}
	if err = p.expect("{"); err != nil {
		return nil, err
	}
	labels, err := p.list("}")
	if err != nil {
		return nil, err
	}
	if len(labels) != size {
		return nil, p.errorf("domain declares %d values but lists %d", size, len(labels))
	}
	if err = p.expect("}"); err != nil {
		return nil, err
	}

	return labels, p.expect(";")
}

// parseProbability handles a probability block and ingests it.
func (p *parser) parseProbability() error {
	if err := p.advance(); err != nil {
		return err
	}
	line := p.tok.line
	if err := p.expect("("); err != nil {
		return err
	}
	variable, err := p.name()
	if err != nil {
		return err
	}
	var parents []string
	if p.isPunct("|") {
		if err = p.advance(); err != nil {
			return err
		}
		if parents, err = p.list(")"); err != nil {
			return err
		}
	}
	if err = p.expect(")"); err != nil {
		return err
	}
	if err = p.expect("{"); err != nil {
		return err
	}

	var (
		rows     []ingest.Row
		table    []float64
		defaults []float64
		hasTable bool
		hasDflt  bool
	)
	for !p.isPunct("}") {
		switch {
		case p.isKeyword("property"):
			err = p.skipProperty()
		case p.isKeyword("table"):
			if err = p.advance(); err == nil {
				table, err = p.numbers()
				hasTable = true
			}
		case p.isKeyword("default"):
			if err = p.advance(); err == nil {
				defaults, err = p.numbers()
				hasDflt = true
			}
		case p.isPunct("("):
			var row ingest.Row
			if err = p.advance(); err != nil {
				return err
			}
			if row.Parents, err = p.list(")"); err != nil {
				return err
			}
			if err = p.advance(); err != nil { // ')'
				return err
			}
			row.Probabilities, err = p.numbers()
			rows = append(rows, row)
		default:
			err = p.errorf("unexpected %s in probability block for %q", p.tok, variable)
		}
		if err != nil {
			return err
		}
	}
	if err = p.advance(); err != nil {
		return err
	}
	if err = p.optionalSemicolon(); err != nil {
		return err
	}

	var body ingest.Body
	switch {
	case hasDflt:
		body = ingest.DefaultBody(defaults)
	case hasTable && len(rows) > 0:
		return fmt.Errorf("%w: line %d: probability block for %q mixes table and rows", ErrSyntax, line, variable)
	case hasTable:
		body = ingest.TableBody(ingest.VariableFirst, table)
	case len(rows) > 0:
		body = ingest.RowsBody(rows...)
	default:
		return fmt.Errorf("%w: line %d: probability block for %q has no entries", ErrSyntax, line, variable)
	}

	if err = p.in.Ingest(ingest.Declaration{Variable: variable, Parents: parents, Body: body}); err != nil {
		return fmt.Errorf("bif: line %d: %w", line, err)
	}
	p.probabilities++

	return nil
}
