// Package report aggregates drift signals into the structures the CLI
// renders: a severity-ordered drift list with counts, serializable as JSON
// or YAML and printable as styled text or a markdown comment.
package report

import (
	"sort"
	"time"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// Summary counts drift by severity and type
type Summary struct {
	Total      int                      `json:"total" yaml:"total"`
	BySeverity map[entity.Severity]int  `json:"bySeverity" yaml:"bySeverity"`
	ByType     map[entity.DriftType]int `json:"byType" yaml:"byType"`
}

// Report is the full result of one drift run
type Report struct {
	GeneratedAt time.Time            `json:"generatedAt" yaml:"generatedAt"`
	Summary     Summary              `json:"summary" yaml:"summary"`
	Drifts      []entity.DriftSignal `json:"drifts" yaml:"drifts"`

	// Baselined counts drifts suppressed by the baseline
	Baselined int `json:"baselined" yaml:"baselined"`

	// Warnings lists non-fatal problems from the run, e.g. unreadable
	// snapshot files or broken ignore rules
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Build assembles a report. Drifts are ordered by descending severity, then
// type, then entity name, so output is stable across runs.
func Build(signals []entity.DriftSignal, baselined int, warnings []string, generatedAt time.Time) *Report {
	drifts := make([]entity.DriftSignal, len(signals))
	copy(drifts, signals)

	sort.SliceStable(drifts, func(i, j int) bool {
		if drifts[i].Severity.Rank() != drifts[j].Severity.Rank() {
			return drifts[i].Severity.Rank() > drifts[j].Severity.Rank()
		}
		if drifts[i].Type != drifts[j].Type {
			return drifts[i].Type < drifts[j].Type
		}
		return drifts[i].Source.EntityName < drifts[j].Source.EntityName
	})

	summary := Summary{
		Total:      len(drifts),
		BySeverity: make(map[entity.Severity]int),
		ByType:     make(map[entity.DriftType]int),
	}
	for _, d := range drifts {
		summary.BySeverity[d.Severity]++
		summary.ByType[d.Type]++
	}

	return &Report{
		GeneratedAt: generatedAt,
		Summary:     summary,
		Drifts:      drifts,
		Baselined:   baselined,
		Warnings:    warnings,
	}
}

// HasDriftAtOrAbove reports whether any drift reaches the given severity.
// Used to decide the process exit code.
func (r *Report) HasDriftAtOrAbove(severity entity.Severity) bool {
	for _, d := range r.Drifts {
		if d.Severity.Rank() >= severity.Rank() {
			return true
		}
	}
	return false
}
