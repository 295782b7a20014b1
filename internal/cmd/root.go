// Package cmd wires the driftscope CLI: compare, analyze, baseline, and
// version. Commands load snapshots and configuration, run the engine, and
// render reports; all drift semantics live in the engine packages.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/driftscope/internal/log"
)

var (
	flagConfig   string
	flagFormat   string
	flagLogLevel string

	logger = log.Default()
)

var rootCmd = &cobra.Command{
	Use:   "driftscope",
	Short: "Design system drift detection",
	Long: `driftscope detects drift between a design system's specification and its
implementation. It compares normalized snapshots of UI components and design
tokens, checks a single snapshot for internal consistency, and suppresses
drift that was explicitly accepted into a baseline.

Snapshots are produced by external scanners in a normalized JSON or YAML
schema; driftscope never parses framework sources itself.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := log.DefaultConfig()
		cfg.Level = log.ParseLevel(flagLogLevel)
		logger = log.New(cfg)
	},
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// flagError reports an invalid flag value with the allowed choices
type flagError struct {
	flag    string
	value   string
	allowed string
}

func (e *flagError) Error() string {
	return fmt.Sprintf("invalid --%s value %q (allowed: %s)", e.flag, e.value, e.allowed)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", ".driftscope.yaml", "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "text", "Output format (text, json, yaml, markdown)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
