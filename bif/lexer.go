// SPDX-License-Identifier: MIT

package bif

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrSyntax indicates malformed BIF input. Errors carry the line number.
var ErrSyntax = errors.New("bif: syntax error")

type tokenKind int

const (
	tokEOF    tokenKind = iota
	tokWord             // bare word: names, labels, keywords, numbers
	tokString           // double-quoted string, quotes stripped
	tokPunct            // one of { } ( ) [ ] , ; | =
)

type token struct {
	kind tokenKind
	text string
	line int
}

// String renders the token for error messages.
func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokString:
		return fmt.Sprintf("%q", t.text)
	default:
		return "'" + t.text + "'"
	}
}

// lexer splits BIF source into tokens.
type lexer struct {
	src  []rune
	pos  int
	line int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src), line: 1}
}

// isWordRune reports whether r may appear in a bare word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("_-+.", r)
}

// next returns the next token, skipping whitespace and comments.
func (lx *lexer) next() (token, error) {
	if err := lx.skip(); err != nil {
		return token{}, err
	}
	if lx.pos >= len(lx.src) {
		return token{kind: tokEOF, line: lx.line}, nil
	}

	r := lx.src[lx.pos]
	switch {
	case strings.ContainsRune("{}()[],;|=", r):
		lx.pos++
		return token{kind: tokPunct, text: string(r), line: lx.line}, nil
	case r == '"':
		return lx.quoted()
	case isWordRune(r):
		start := lx.pos
		for lx.pos < len(lx.src) && isWordRune(lx.src[lx.pos]) {
			lx.pos++
		}
		return token{kind: tokWord, text: string(lx.src[start:lx.pos]), line: lx.line}, nil
	default:
		return token{}, fmt.Errorf("%w: line %d: unexpected character %q", ErrSyntax, lx.line, r)
	}
}

// skip advances past whitespace, line comments and block comments.
func (lx *lexer) skip() error {
	for lx.pos < len(lx.src) {
		r := lx.src[lx.pos]
		switch {
		case r == '\n':
			lx.line++
			lx.pos++
		case unicode.IsSpace(r):
			lx.pos++
		case lx.peekPair('/', '/'):
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.pos++
			}
		case lx.peekPair('/', '*'):
			start := lx.line
			lx.pos += 2
			for !lx.peekPair('*', '/') {
				if lx.pos >= len(lx.src) {
					return fmt.Errorf("%w: line %d: unterminated comment", ErrSyntax, start)
				}
				if lx.src[lx.pos] == '\n' {
					lx.line++
				}
				lx.pos++
			}
			lx.pos += 2
		default:
			return nil
		}
	}

	return nil
}

// quoted scans a double-quoted string; the opening quote is at lx.pos.
func (lx *lexer) quoted() (token, error) {
	start := lx.line
	lx.pos++ // opening quote
	var sb strings.Builder
	for lx.pos < len(lx.src) {
		r := lx.src[lx.pos]
		lx.pos++
		switch r {
		case '"':
			return token{kind: tokString, text: sb.String(), line: start}, nil
		case '\\':
			if lx.pos < len(lx.src) {
				sb.WriteRune(lx.src[lx.pos])
				lx.pos++
			}
		case '\n':
			lx.line++
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}

	return token{}, fmt.Errorf("%w: line %d: unterminated string", ErrSyntax, start)
}

func (lx *lexer) peekPair(a, b rune) bool {
	return lx.pos+1 < len(lx.src) && lx.src[lx.pos] == a && lx.src[lx.pos+1] == b
}
