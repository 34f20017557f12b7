// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Distribution maps the Values of a single Variable to probabilities.
// It is one row of a CPT and is filled incrementally during ingestion.
//
// No normalization is performed or enforced: the probabilities of a row are
// stored exactly as supplied by the source data.
type Distribution struct {
	variable *Variable
	probs    map[Value]float64
}

// NewDistribution returns an empty Distribution over variable's domain.
func NewDistribution(variable *Variable) *Distribution {
	return &Distribution{
		variable: variable,
		probs:    make(map[Value]float64, variable.Domain().Len()),
	}
}

// Variable returns the variable this distribution is over.
func (d *Distribution) Variable() *Variable { return d.variable }

// Put sets the probability of value.
// Returns ErrValueNotInDomain if value is outside the variable's domain and
// ErrInvalidProbability if p is NaN or outside [0,1].
func (d *Distribution) Put(value Value, p float64) error {
	if !d.variable.Domain().Contains(value) {
		return fmt.Errorf("%w: %s=%q", ErrValueNotInDomain, d.variable.Name(), value)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: P(%s=%s)=%v", ErrInvalidProbability, d.variable.Name(), value, p)
	}
	d.probs[value] = p

	return nil
}

// Get returns the probability of value, or ErrNotFound if it was never set.
func (d *Distribution) Get(value Value) (float64, error) {
	p, ok := d.probs[value]
	if !ok {
		return 0, fmt.Errorf("%w: %s=%q", ErrNotFound, d.variable.Name(), value)
	}

	return p, nil
}

// Len returns how many values have a probability.
func (d *Distribution) Len() int { return len(d.probs) }

// Complete reports whether every value of the domain has a probability.
func (d *Distribution) Complete() bool {
	return len(d.probs) == d.variable.Domain().Len()
}

// Probabilities returns the probabilities in domain order.
// Returns ErrNotFound (naming the first missing value) if the row is incomplete.
func (d *Distribution) Probabilities() ([]float64, error) {
	dom := d.variable.Domain()
	out := make([]float64, dom.Len())
	for i := range out {
		p, err := d.Get(dom.At(i))
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// Sum returns the total probability mass currently stored.
// It is informational only; nothing requires it to equal 1.
func (d *Distribution) Sum() float64 {
	ps := make([]float64, 0, len(d.probs))
	for _, v := range d.variable.Domain().values {
		if p, ok := d.probs[v]; ok {
			ps = append(ps, p)
		}
	}

	return floats.Sum(ps)
}

// Copy returns an independent Distribution over the same variable.
func (d *Distribution) Copy() *Distribution {
	c := &Distribution{variable: d.variable, probs: make(map[Value]float64, len(d.probs))}
	for v, p := range d.probs {
		c.probs[v] = p
	}

	return c
}

// String renders the set probabilities in domain order, e.g. "[true: 0.1, false: 0.9]".
func (d *Distribution) String() string {
	parts := make([]string, 0, len(d.probs))
	for _, v := range d.variable.Domain().values {
		if p, ok := d.probs[v]; ok {
			parts = append(parts, string(v)+": "+strconv.FormatFloat(p, 'g', -1, 64))
		}
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
