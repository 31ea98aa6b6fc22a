// SPDX-License-Identifier: MIT

// Package cli implements the numlab command line: each subcommand builds a
// request, runs it through the engine and prints the result as JSON.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/engine"
	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/internal/logger"
	"github.com/katalvlaran/numlab/internal/metrics"
)

// Version is set at build time
var Version = "0.1.0"

// app holds the global flags and what PersistentPreRunE builds from them.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	metrics    bool

	log  *zap.Logger
	prom *metrics.Prometheus
	eng  *engine.Engine
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "numlab - root finding and linear systems from the command line",
		Long: `numlab runs classic numerical methods on text formulas and small dense systems.

Commands:
  root       - Find a root of f(x) with bisection, regula-falsi, newton or secant
  linear     - Solve A·x = b with gauss-jacobi, gauss-seidel or gauss-jordan
  run        - Run a request file (YAML or JSON)
  functions  - List the names a formula may use

Example:
  numlab root --method newton --expr "x^2 - 2" --x0 1
  numlab linear --method seidel --file system.yaml
  numlab run request.yaml`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (defaults to ./numlab.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (overrides log.level)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: json or console (overrides log.format)")
	rootCmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "Print solver metrics in Prometheus text format to stderr")

	// Add subcommands
	rootCmd.AddCommand(newRootFindCmd(a))
	rootCmd.AddCommand(newLinearCmd(a))
	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newFunctionsCmd())

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and wires logger, metrics and engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.metrics {
		cfg.Metrics.Enabled = true
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	if a.log, err = logger.NewWithWriter(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, cmd.ErrOrStderr()); err != nil {
		return err
	}

	var rec engine.Recorder = metrics.Noop{}
	if cfg.Metrics.Enabled {
		a.prom = metrics.NewPrometheus(cfg.Metrics.Namespace)
		rec = a.prom
	}
	a.eng = engine.New(a.log, rec, engine.WithDefaults(cfg.Criteria()))

	return nil
}

// finish dumps metrics when asked to and flushes the logger, on failed runs
// too. runErr takes precedence over a dump error.
func (a *app) finish(cmd *cobra.Command, runErr error) error {
	var err error
	if a.metrics && a.prom != nil {
		err = a.prom.WriteText(cmd.ErrOrStderr())
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
	if runErr != nil {
		return runErr
	}

	return err
}
