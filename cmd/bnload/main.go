// SPDX-License-Identifier: MIT

// Command bnload loads Bayesian networks from BIF or XMLBIF files and prints
// their structure and conditional probability tables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/internal/config"
	"github.com/katalvlaran/lvbayes/internal/loader"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	format     string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds a fresh command tree writing to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "bnload",
		Short: "Load and inspect discrete Bayesian networks",
		Long: `bnload reads networks in BIF text or XMLBIF form, builds the
in-memory model and prints it. The format is inferred from the file
extension (.bif, .xml, .xmlbif) unless --format says otherwise.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.configPath, "config", "bnload.yaml", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.format, "format", "", "input format: auto, bif or xmlbif (overrides config)")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(a.describeCmd(), a.orderCmd(), a.queryCmd())

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Input.Format = a.format
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.ZapLevel()

	zc := zap.NewProductionConfig()
	if cfg.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("format", cfg.Input.Format),
		zap.Int("workers", cfg.Input.Workers))

	return nil
}

// loader returns a Loader configured from the active configuration.
func (a *app) loader() *loader.Loader {
	return loader.New(
		loader.WithLogger(a.logger),
		loader.WithFormat(a.cfg.Input.Format),
		loader.WithWorkers(a.cfg.Input.Workers),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
