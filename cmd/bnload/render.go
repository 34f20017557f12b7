// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvbayes/core"
)

// sumTolerance is how far a row total may drift from 1 before it is flagged.
const sumTolerance = 1e-9

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// describe writes the network header and one CPT table per variable, in
// declaration order. Rows whose total is not 1 get a trailing "!".
func describe(w io.Writer, n *core.Network, precision int) error {
	name := n.Name()
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "%s (%d variables)\n", titleStyle.Render("network "+name), n.Len())

	for _, v := range n.Variables() {
		parents, err := n.Parents(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s %s\n", titleStyle.Render(conditional(v, parents)), v.Domain())

		cpt, err := n.CPT(v)
		if err != nil {
			// Declared but never given a probability block.
			fmt.Fprintln(w, "  no table")
			continue
		}
		fmt.Fprintln(w, renderCPT(cpt, parents, precision))
	}

	return nil
}

// conditional renders "P(X | A, B)" or "P(X)".
func conditional(v *core.Variable, parents []*core.Variable) string {
	if len(parents) == 0 {
		return "P(" + v.Name() + ")"
	}
	names := make([]string, len(parents))
	for i, p := range parents {
		names[i] = p.Name()
	}

	return "P(" + v.Name() + " | " + strings.Join(names, ", ") + ")"
}

// renderCPT lays out a CPT with one column per parent, one per value and a sum.
func renderCPT(cpt *core.CPT, parents []*core.Variable, precision int) string {
	values := cpt.Variable().Domain().Values()

	headers := make([]string, 0, len(parents)+len(values)+1)
	for _, p := range parents {
		headers = append(headers, p.Name())
	}
	for _, val := range values {
		headers = append(headers, string(val))
	}
	headers = append(headers, "sum")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range cpt.Rows() {
		cells := make([]string, 0, len(headers))
		for _, p := range parents {
			label, ok := r.Assignment.Get(p)
			if !ok {
				label = "*"
			}
			cells = append(cells, string(label))
		}
		for _, val := range values {
			prob, err := r.Distribution.Get(val)
			if err != nil {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, formatFloat(prob, precision))
		}
		sum := r.Distribution.Sum()
		mark := ""
		if !scalar.EqualWithinAbs(sum, 1, sumTolerance) {
			mark = " !"
		}
		cells = append(cells, formatFloat(sum, precision)+mark)
		t.Row(cells...)
	}

	return t.Render()
}

// formatDistribution renders "[a: 0.1, b: 0.9]" with fixed precision.
func formatDistribution(d *core.Distribution, precision int) string {
	values := d.Variable().Domain().Values()
	parts := make([]string, 0, len(values))
	for _, val := range values {
		if p, err := d.Get(val); err == nil {
			parts = append(parts, string(val)+": "+formatFloat(p, precision))
		}
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func formatFloat(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}
