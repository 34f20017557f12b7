// SPDX-License-Identifier: MIT

package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseNumber converts one numeric token into a probability value.
//
// Integral tokens ("0", "1") are accepted and promoted to float64 even though
// the strict interchange grammars only allow decimal literals there.
func ParseNumber(token string) (float64, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, token)
	}

	return f, nil
}

// ParseNumbers splits s on whitespace and commas and parses every token with
// ParseNumber. An empty or blank s yields an empty slice.
func ParseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	out := make([]float64, 0, len(fields))
	for i, tok := range fields {
		f, err := ParseNumber(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		out = append(out, f)
	}

	return out, nil
}
