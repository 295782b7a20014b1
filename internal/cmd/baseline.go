package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/driftscope/internal/baseline"
	"github.com/felixgeelhaar/driftscope/internal/config"
	"github.com/felixgeelhaar/driftscope/internal/entity"
)

var (
	baselineImpl    []string
	baselineDesign  []string
	baselineAnalyze bool
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Manage accepted drift",
	Long: `Record currently detected drift as accepted, so later runs only report
what changed since. Signatures are stable across line shifts: moving a
component within a file does not resurface its accepted drift.

Use 'driftscope baseline accept' to record the current drift.
Use 'driftscope baseline show' to inspect the stored baseline.
Use 'driftscope baseline clear' to delete it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var baselineAcceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Record current drift as accepted",
	Long: `Run drift detection and store the signature of every detected drift as
the new baseline, replacing any previous one.

With --design, cross-snapshot comparison drift is recorded. With --analyze,
single-snapshot consistency drift is recorded. Both can be combined.

Examples:
  driftscope baseline accept --impl impl.json --design design.json
  driftscope baseline accept --impl 'snapshots/*.json' --analyze`,
	RunE: runBaselineAccept,
}

var baselineShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored baseline",
	RunE:  runBaselineShow,
}

var baselineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored baseline",
	RunE:  runBaselineClear,
}

func runBaselineAccept(cmd *cobra.Command, args []string) error {
	if len(baselineDesign) == 0 && !baselineAnalyze {
		return &flagError{flag: "design", value: "", allowed: "provide --design snapshots, --analyze, or both"}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	impl, _, err := loadSnapshot(ctx, baselineImpl)
	if err != nil {
		return err
	}

	p := newPipeline(cfg)
	var signals []entity.DriftSignal

	if len(baselineDesign) > 0 {
		design, _, err := loadSnapshot(ctx, baselineDesign)
		if err != nil {
			return err
		}
		signals = append(signals, p.compare(impl, design)...)
	}
	if baselineAnalyze {
		signals = append(signals, p.analyze(impl, impl.Tokens)...)
	}

	signals, _ = p.finish(signals)

	path := p.baselinePath()
	if err := baseline.Save(path, signals, time.Now()); err != nil {
		return err
	}

	fmt.Printf("Accepted %d drift(s) into %s\n", len(signals), path)
	return nil
}

func runBaselineShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	path := newPipeline(cfg).baselinePath()
	set, err := baseline.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("Baseline %s holds %d accepted drift signature(s)\n", path, len(set))
	return nil
}

func runBaselineClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	path := newPipeline(cfg).baselinePath()
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No baseline at %s\n", path)
			return nil
		}
		return fmt.Errorf("remove baseline: %w", err)
	}

	fmt.Printf("Removed baseline %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(baselineCmd)
	baselineCmd.AddCommand(baselineAcceptCmd)
	baselineCmd.AddCommand(baselineShowCmd)
	baselineCmd.AddCommand(baselineClearCmd)

	baselineAcceptCmd.Flags().StringSliceVar(&baselineImpl, "impl", nil, "Implementation snapshot files or globs")
	baselineAcceptCmd.Flags().StringSliceVar(&baselineDesign, "design", nil, "Design snapshot files or globs")
	baselineAcceptCmd.Flags().BoolVar(&baselineAnalyze, "analyze", false, "Also record single-snapshot consistency drift")
	_ = baselineAcceptCmd.MarkFlagRequired("impl")
}
