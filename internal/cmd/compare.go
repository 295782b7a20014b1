package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/driftscope/internal/config"
	"github.com/felixgeelhaar/driftscope/internal/entity"
	"github.com/felixgeelhaar/driftscope/internal/exitcode"
)

var (
	compareImpl   []string
	compareDesign []string
	compareFailOn string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare implementation and design snapshots",
	Long: `Compare two snapshots of the same design system and report drift.

The implementation snapshot describes what is built (framework components,
story entries); the design snapshot describes the intent (design tool nodes,
token files). Matched pairs are diffed prop by prop, unmatched entities are
reported as orphans, and token values are checked for divergence.

Exit codes:
  0 - No drift at or above the failure threshold
  4 - Drift detected

Examples:
  driftscope compare --impl 'snapshots/impl/*.json' --design 'snapshots/design/*.json'
  driftscope compare --impl impl.json --design design.yaml --fail-on critical -f markdown`,
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	failOn, err := parseFailOn(compareFailOn)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	impl, warnings, err := loadSnapshot(ctx, compareImpl)
	if err != nil {
		return err
	}
	design, designWarnings, err := loadSnapshot(ctx, compareDesign)
	if err != nil {
		return err
	}
	warnings = append(warnings, designWarnings...)

	p := newPipeline(cfg)
	signals, filterWarnings := p.finish(p.compare(impl, design))
	warnings = append(warnings, filterWarnings...)

	r, err := p.buildReport(signals, warnings)
	if err != nil {
		return err
	}
	if err := renderReport(r); err != nil {
		return err
	}

	logger.Info("compare finished",
		"drifts", r.Summary.Total,
		"baselined", r.Baselined)

	if r.HasDriftAtOrAbove(failOn) {
		exitcode.Exit(exitcode.DriftDetected)
	}
	return nil
}

func parseFailOn(s string) (entity.Severity, error) {
	severity := entity.Severity(s)
	if !severity.Valid() {
		return "", &flagError{flag: "fail-on", value: s, allowed: "info, warning, critical"}
	}
	return severity, nil
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringSliceVar(&compareImpl, "impl", nil, "Implementation snapshot files or globs")
	compareCmd.Flags().StringSliceVar(&compareDesign, "design", nil, "Design snapshot files or globs")
	compareCmd.Flags().StringVar(&compareFailOn, "fail-on", "warning", "Lowest severity that fails the run (info, warning, critical)")
	_ = compareCmd.MarkFlagRequired("impl")
	_ = compareCmd.MarkFlagRequired("design")
}
