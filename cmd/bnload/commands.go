// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/core"
)

// describeCmd prints every variable and its CPT for one or more files.
func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE...",
		Short: "Print variables, parents and CPTs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nets, err := a.loader().LoadAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, n := range nets {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err = describe(out, n, a.cfg.Output.Precision); err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
			}

			return nil
		},
	}
}

// orderCmd prints the variables parents-before-children.
func (a *app) orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order FILE",
		Short: "Print the variables in topological order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.loader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			order, err := n.TopologicalOrder(cmd.Context())
			if err != nil {
				return err
			}
			for _, v := range order {
				fmt.Fprintln(cmd.OutOrStdout(), v.Name())
			}

			return nil
		},
	}
}

// queryCmd prints one conditional distribution.
func (a *app) queryCmd() *cobra.Command {
	var (
		target string
		given  []string
	)
	cmd := &cobra.Command{
		Use:   "query FILE -v VAR [-g PARENT=value]...",
		Short: "Print P(VAR | evidence) from the variable's CPT",
		Long: `query looks up the CPT row of VAR matching the evidence. Evidence must
bind every parent of VAR; bindings for other variables are ignored.
This is a table lookup, not inference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.loader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			v, ok := n.VariableByName(target)
			if !ok {
				return fmt.Errorf("%w: %q", core.ErrUndeclaredVariable, target)
			}
			evidence, err := parseEvidence(n, given)
			if err != nil {
				return err
			}
			cpt, err := n.CPT(v)
			if err != nil {
				return err
			}
			dist, err := cpt.Row(evidence)
			if err != nil {
				return err
			}
			a.logger.Debug("query answered",
				zap.String("variable", target),
				zap.Stringer("evidence", evidence))

			fmt.Fprintf(cmd.OutOrStdout(), "P(%s | %s) = %s\n", target, evidence, formatDistribution(dist, a.cfg.Output.Precision))

			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "var", "v", "", "variable to query (required)")
	cmd.Flags().StringArrayVarP(&given, "given", "g", nil, "evidence as NAME=value, repeatable")
	_ = cmd.MarkFlagRequired("var")

	return cmd
}

// parseEvidence turns NAME=value pairs into an assignment over n's variables.
func parseEvidence(n *core.Network, pairs []string) (*core.Assignment, error) {
	a := core.NewAssignment()
	for _, pair := range pairs {
		name, label, ok := strings.Cut(pair, "=")
		if !ok || name == "" || label == "" {
			return nil, fmt.Errorf("evidence %q: want NAME=value", pair)
		}
		v, found := n.VariableByName(name)
		if !found {
			return nil, fmt.Errorf("evidence %q: %w: %q", pair, core.ErrUndeclaredVariable, name)
		}
		val, err := v.Domain().Lookup(label)
		if err != nil {
			return nil, fmt.Errorf("evidence %q: %w", pair, err)
		}
		a.Put(v, val)
	}

	return a, nil
}
