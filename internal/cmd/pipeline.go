package cmd

import (
	"context"
	"time"

	"github.com/felixgeelhaar/driftscope/internal/baseline"
	"github.com/felixgeelhaar/driftscope/internal/config"
	"github.com/felixgeelhaar/driftscope/internal/entity"
	"github.com/felixgeelhaar/driftscope/internal/match"
	"github.com/felixgeelhaar/driftscope/internal/report"
	"github.com/felixgeelhaar/driftscope/internal/signal"
	"github.com/felixgeelhaar/driftscope/internal/snapshot"
)

// pipeline runs the drift engine over loaded snapshots and produces the raw
// signal list plus run warnings. Baseline filtering happens separately so
// 'baseline accept' can record unfiltered signals.
type pipeline struct {
	cfg config.Config
	gen *signal.Generator
}

func newPipeline(cfg config.Config) *pipeline {
	return &pipeline{cfg: cfg, gen: signal.NewGenerator()}
}

func loadSnapshot(ctx context.Context, patterns []string) (*snapshot.Snapshot, []string, error) {
	snap, err := snapshot.NewLoader(0).Load(ctx, patterns...)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	for _, e := range snap.Errors {
		warnings = append(warnings, "snapshot: "+e.Error())
	}
	return snap, warnings, nil
}

// compare generates cross-snapshot drift between implementation and design
func (p *pipeline) compare(impl, design *snapshot.Snapshot) []entity.DriftSignal {
	components := match.CompareComponents(impl.Components, design.Components, p.cfg.Matching)
	tokens := match.CompareTokens(impl.Tokens, design.Tokens)
	return p.gen.FromComparison(components, tokens)
}

// analyze generates single-snapshot consistency drift. Token suggestions are
// ranked against the design tokens when a design snapshot is present,
// otherwise against the snapshot's own tokens.
func (p *pipeline) analyze(snap *snapshot.Snapshot, tokens []*entity.DesignToken) []entity.DriftSignal {
	opts := p.cfg.Analysis
	opts.AvailableTokens = make([]entity.DesignToken, len(tokens))
	for i, t := range tokens {
		opts.AvailableTokens[i] = *t
	}

	signals := p.gen.FromAnalysis(snap.Components, opts)
	signals = append(signals, p.gen.FromProject(snap.Frameworks)...)
	signals = append(signals, p.gen.FromUsage(snap.Components, snap.Tokens, snap.Usage)...)
	return signals
}

// finish applies severity overrides and ignore rules
func (p *pipeline) finish(signals []entity.DriftSignal) ([]entity.DriftSignal, []string) {
	signals = signal.ApplySeverityOverrides(signals, p.cfg.SeverityOverrides)
	return signal.FilterIgnored(signals, p.cfg.Ignore)
}

// buildReport filters signals through the baseline and assembles the report
func (p *pipeline) buildReport(signals []entity.DriftSignal, warnings []string) (*report.Report, error) {
	set, err := baseline.LoadOrEmpty(p.baselinePath())
	if err != nil {
		return nil, err
	}

	filtered, err := baseline.Filter(signals, set)
	if err != nil {
		return nil, err
	}

	return report.Build(filtered.NewDrifts, filtered.BaselinedCount, warnings, time.Now()), nil
}

func (p *pipeline) baselinePath() string {
	if p.cfg.BaselinePath != "" {
		return p.cfg.BaselinePath
	}
	return config.DefaultConfig().BaselinePath
}

func renderReport(r *report.Report) error {
	formatter, err := report.NewFormatter(flagFormat, nil)
	if err != nil {
		return err
	}
	return formatter.Format(r)
}
