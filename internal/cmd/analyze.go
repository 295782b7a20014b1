package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/driftscope/internal/config"
	"github.com/felixgeelhaar/driftscope/internal/exitcode"
)

var (
	analyzeSnapshots []string
	analyzeFailOn    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Check a single snapshot for internal consistency",
	Long: `Analyze one snapshot without a design counterpart and report internal
consistency drift: deprecated components, naming that breaks the prevailing
convention, probable duplicate components, prop types that disagree with the
dominant type, accessibility gaps, hardcoded values that should be tokens,
and unused entities.

Hardcoded color and spacing values are ranked against the snapshot's own
design tokens; close matches are reported as token suggestions.

Examples:
  driftscope analyze --snapshot 'snapshots/*.json'
  driftscope analyze --snapshot impl.json --fail-on critical -f json`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	failOn, err := parseFailOn(analyzeFailOn)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	snap, warnings, err := loadSnapshot(cmd.Context(), analyzeSnapshots)
	if err != nil {
		return err
	}

	p := newPipeline(cfg)
	signals, filterWarnings := p.finish(p.analyze(snap, snap.Tokens))
	warnings = append(warnings, filterWarnings...)

	r, err := p.buildReport(signals, warnings)
	if err != nil {
		return err
	}
	if err := renderReport(r); err != nil {
		return err
	}

	logger.Info("analyze finished",
		"components", len(snap.Components),
		"tokens", len(snap.Tokens),
		"drifts", r.Summary.Total,
		"baselined", r.Baselined)

	if r.HasDriftAtOrAbove(failOn) {
		exitcode.Exit(exitcode.DriftDetected)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringSliceVar(&analyzeSnapshots, "snapshot", nil, "Snapshot files or globs")
	analyzeCmd.Flags().StringVar(&analyzeFailOn, "fail-on", "warning", "Lowest severity that fails the run (info, warning, critical)")
	_ = analyzeCmd.MarkFlagRequired("snapshot")
}
