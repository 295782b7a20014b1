// Package signal turns matcher results and analyzer findings into typed,
// severity-ranked drift signals. The generator always emits each type's
// intrinsic severity; operator overrides and ignore rules are applied
// afterwards by the caller, never inside generation.
package signal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/felixgeelhaar/driftscope/internal/analyze"
	"github.com/felixgeelhaar/driftscope/internal/config"
	"github.com/felixgeelhaar/driftscope/internal/entity"
	"github.com/felixgeelhaar/driftscope/internal/match"
	"github.com/felixgeelhaar/driftscope/internal/suggest"
)

// Generator synthesizes drift signals. One generator handles one analysis
// at a time; concurrent analyses need independent instances.
type Generator struct {
	now func() time.Time
}

// NewGenerator returns a generator stamping signals with the wall clock.
// Signal ids never depend on the clock, only DetectedAt does.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorAt returns a generator with a fixed clock, for reproducible
// output in tests and diffable reports
func NewGeneratorAt(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// FromComparison generates cross-snapshot drift signals. By convention the
// source snapshot is the implementation and the target snapshot is the
// design intent: a source orphan is implemented-but-undesigned (warning), a
// target orphan is designed-but-unbuilt (info).
func (g *Generator) FromComparison(components match.Result, tokens match.TokenResult) []entity.DriftSignal {
	var signals []entity.DriftSignal

	for _, m := range components.Matches {
		if sig, ok := g.semanticMismatch(m); ok {
			signals = append(signals, sig)
		}
	}

	for _, c := range components.OrphanedSource {
		signals = append(signals, g.orphanedComponent(c, "design", entity.SeverityWarning))
	}
	for _, c := range components.OrphanedTarget {
		signals = append(signals, g.orphanedComponent(c, "implementation", entity.SeverityInfo))
	}

	for _, m := range tokens.Matches {
		if !m.ValuesEqual {
			signals = append(signals, g.valueDivergence(m))
		}
	}
	for _, t := range tokens.OrphanedSource {
		signals = append(signals, g.orphanedToken(t, "design"))
	}
	for _, t := range tokens.OrphanedTarget {
		signals = append(signals, g.orphanedToken(t, "implementation"))
	}

	return signals
}

func (g *Generator) semanticMismatch(m entity.ComponentMatch) (entity.DriftSignal, bool) {
	worst := entity.SeverityInfo
	significant := false
	suggestions := make([]string, 0, len(m.Differences))
	for _, d := range m.Differences {
		worst = entity.MaxSeverity(worst, d.Severity)
		if d.Severity.Rank() >= entity.SeverityWarning.Rank() {
			significant = true
		}
		suggestions = append(suggestions, describeDifference(d))
	}
	if !significant {
		return entity.DriftSignal{}, false
	}

	target := tokenizeComponent(m.Target)
	return entity.DriftSignal{
		ID:       entity.DriftID(entity.DriftSemanticMismatch, m.Source.ID, m.Target.ID),
		Type:     entity.DriftSemanticMismatch,
		Severity: worst,
		Source:   tokenizeComponent(m.Source),
		Target:   &target,
		Message: fmt.Sprintf("component %q diverges from %q in %d prop(s)",
			m.Source.Name, m.Target.Name, len(m.Differences)),
		Details:    entity.DriftDetails{Suggestions: suggestions},
		DetectedAt: g.now(),
	}, true
}

func describeDifference(d entity.Difference) string {
	switch {
	case d.TargetValue == "":
		return fmt.Sprintf("%s exists only in the implementation (%s)", d.Field, d.SourceValue)
	case d.SourceValue == "":
		return fmt.Sprintf("%s exists only in the design (%s)", d.Field, d.TargetValue)
	default:
		return fmt.Sprintf("%s is %s in the implementation but %s in the design",
			d.Field, d.SourceValue, d.TargetValue)
	}
}

func (g *Generator) orphanedComponent(c *entity.Component, missingFrom string, severity entity.Severity) entity.DriftSignal {
	return entity.DriftSignal{
		ID:       entity.DriftID(entity.DriftOrphanedComponent, c.ID, missingFrom),
		Type:     entity.DriftOrphanedComponent,
		Severity: severity,
		Source:   tokenizeComponent(c),
		Message:  fmt.Sprintf("component %q has no counterpart in the %s", c.Name, missingFrom),
		Details: entity.DriftDetails{
			Suggestions: []string{
				fmt.Sprintf("Add %q to the %s or remove it", c.Name, missingFrom),
			},
		},
		DetectedAt: g.now(),
	}
}

func (g *Generator) orphanedToken(t *entity.DesignToken, missingFrom string) entity.DriftSignal {
	return entity.DriftSignal{
		ID:         entity.DriftID(entity.DriftOrphanedToken, t.ID, missingFrom),
		Type:       entity.DriftOrphanedToken,
		Severity:   entity.SeverityInfo,
		Source:     tokenizeToken(t),
		Message:    fmt.Sprintf("token %q has no counterpart in the %s", t.Name, missingFrom),
		DetectedAt: g.now(),
	}
}

func (g *Generator) valueDivergence(m entity.TokenMatch) entity.DriftSignal {
	target := tokenizeToken(m.Target)
	return entity.DriftSignal{
		ID:       entity.DriftID(entity.DriftValueDivergence, m.Source.ID, m.Target.ID),
		Type:     entity.DriftValueDivergence,
		Severity: entity.SeverityWarning,
		Source:   tokenizeToken(m.Source),
		Target:   &target,
		Message: fmt.Sprintf("token %q is %s in the implementation but %s in the design",
			m.Source.Name, m.Source.DisplayValue(), m.Target.DisplayValue()),
		Details: entity.DriftDetails{
			Expected: m.Target.DisplayValue(),
			Actual:   m.Source.DisplayValue(),
		},
		DetectedAt: g.now(),
	}
}

// FromAnalysis generates single-snapshot consistency signals. It first
// builds the batch-wide pattern maps, then applies the per-component checks
// selected by opts, then duplicate grouping across the batch.
func (g *Generator) FromAnalysis(components []*entity.Component, opts config.AnalysisOptions) []entity.DriftSignal {
	var signals []entity.DriftSignal

	convention := analyze.ParseConvention(opts.NamingConventions.Components)
	if convention == analyze.ConventionUnknown {
		convention = analyze.MajorityConvention(components)
	}
	dominance := analyze.PropTypeDominance(components)

	for _, c := range components {
		if opts.CheckDeprecated {
			signals = append(signals, g.deprecated(c, opts.DeprecatedPatterns)...)
		}
		if opts.CheckNaming {
			signals = append(signals, g.namingChecks(c, convention)...)
		}
		signals = append(signals, g.propTypeChecks(c, dominance)...)
		if opts.CheckDocumentation {
			signals = append(signals, g.documentationCheck(c)...)
		}
		if opts.CheckAccessibility {
			signals = append(signals, g.accessibilityChecks(c)...)
		}
		signals = append(signals, g.hardcodedValues(c, opts.AvailableTokens)...)
	}

	for _, group := range analyze.DuplicateGroups(components) {
		signals = append(signals, g.duplicateGroup(group))
	}

	return signals
}

func (g *Generator) deprecated(c *entity.Component, patterns []string) []entity.DriftSignal {
	reason := ""
	if c.Metadata.Deprecated {
		reason = "component is marked deprecated"
	} else {
		lower := strings.ToLower(c.Name)
		for _, p := range patterns {
			if p != "" && strings.Contains(lower, strings.ToLower(p)) {
				reason = fmt.Sprintf("component name matches deprecated pattern %q", p)
				break
			}
		}
	}
	if reason == "" {
		return nil
	}

	return []entity.DriftSignal{{
		ID:       entity.DriftID(entity.DriftDeprecatedPattern, c.ID),
		Type:     entity.DriftDeprecatedPattern,
		Severity: entity.SeverityWarning,
		Source:   tokenizeComponent(c),
		Message:  fmt.Sprintf("%s: %s", c.Name, reason),
		Details: entity.DriftDetails{
			Suggestions: []string{"Migrate consumers to the replacement component and delete this one"},
		},
		DetectedAt: g.now(),
	}}
}

func (g *Generator) namingChecks(c *entity.Component, convention analyze.Convention) []entity.DriftSignal {
	var signals []entity.DriftSignal

	if convention != analyze.ConventionUnknown && !analyze.Follows(c.Name, convention) {
		signals = append(signals, entity.DriftSignal{
			ID:       entity.DriftID(entity.DriftNamingInconsistency, c.ID, "convention"),
			Type:     entity.DriftNamingInconsistency,
			Severity: entity.SeverityInfo,
			Source:   tokenizeComponent(c),
			Message: fmt.Sprintf("component %q does not follow the prevailing %s convention",
				c.Name, convention),
			Details: entity.DriftDetails{
				Expected: string(convention),
				Actual:   string(analyze.DetectConvention(c.Name)),
			},
			DetectedAt: g.now(),
		})
	}

	// Prop names follow camelCase; one issue per offending prop
	for _, p := range c.Props {
		if analyze.Follows(p.Name, analyze.ConventionCamel) {
			continue
		}
		signals = append(signals, entity.DriftSignal{
			ID:       entity.DriftID(entity.DriftNamingInconsistency, c.ID, "prop", strings.ToLower(p.Name)),
			Type:     entity.DriftNamingInconsistency,
			Severity: entity.SeverityInfo,
			Source:   tokenizeComponent(c),
			Message:  fmt.Sprintf("prop %q of component %q is not camelCase", p.Name, c.Name),
			Details: entity.DriftDetails{
				Expected: string(analyze.ConventionCamel),
				Actual:   string(analyze.DetectConvention(p.Name)),
			},
			DetectedAt: g.now(),
		})
	}

	return signals
}

func (g *Generator) propTypeChecks(c *entity.Component, dominance map[string]string) []entity.DriftSignal {
	var signals []entity.DriftSignal
	for _, p := range c.Props {
		dominant, ok := dominance[strings.ToLower(p.Name)]
		if !ok || p.Type == dominant {
			continue
		}
		signals = append(signals, entity.DriftSignal{
			ID:       entity.DriftID(entity.DriftSemanticMismatch, c.ID, "prop-type", strings.ToLower(p.Name)),
			Type:     entity.DriftSemanticMismatch,
			Severity: entity.SeverityWarning,
			Source:   tokenizeComponent(c),
			Message: fmt.Sprintf("prop %q of component %q is declared %s but %s elsewhere",
				p.Name, c.Name, p.Type, dominant),
			Details: entity.DriftDetails{
				Expected: dominant,
				Actual:   p.Type,
			},
			DetectedAt: g.now(),
		})
	}
	return signals
}

func (g *Generator) documentationCheck(c *entity.Component) []entity.DriftSignal {
	if strings.TrimSpace(c.Metadata.Documentation) != "" {
		return nil
	}
	return []entity.DriftSignal{{
		ID:       entity.DriftID(entity.DriftSemanticMismatch, c.ID, "documentation"),
		Type:     entity.DriftSemanticMismatch,
		Severity: entity.SeverityInfo,
		Source:   tokenizeComponent(c),
		Message:  fmt.Sprintf("component %q has no documentation", c.Name),
		Details: entity.DriftDetails{
			Suggestions: []string{"Document the component's purpose and props"},
		},
		DetectedAt: g.now(),
	}}
}

func (g *Generator) accessibilityChecks(c *entity.Component) []entity.DriftSignal {
	var signals []entity.DriftSignal

	for _, issue := range analyze.Accessibility(c) {
		signals = append(signals, entity.DriftSignal{
			ID:         entity.DriftID(entity.DriftAccessibilityConflict, c.ID, issue.Rule),
			Type:       entity.DriftAccessibilityConflict,
			Severity:   entity.SeverityCritical,
			Source:     tokenizeComponent(c),
			Message:    fmt.Sprintf("%s: %s", c.Name, issue.Message),
			DetectedAt: g.now(),
		})
	}

	for _, issue := range analyze.ContrastIssues(c) {
		signals = append(signals, entity.DriftSignal{
			ID: entity.DriftID(entity.DriftAccessibilityConflict, c.ID, "contrast",
				issue.Foreground, issue.Background),
			Type:     entity.DriftAccessibilityConflict,
			Severity: entity.SeverityCritical,
			Source:   tokenizeComponent(c),
			Message: fmt.Sprintf("%s: contrast ratio %.2f of %s on %s is below 4.5",
				c.Name, issue.Ratio, issue.Foreground, issue.Background),
			Details: entity.DriftDetails{
				Actual: fmt.Sprintf("%.2f", issue.Ratio),
			},
			DetectedAt: g.now(),
		})
	}

	return signals
}

// hardcodedValueOrder fixes the emission order of per-type hardcoded-value
// signals within one component
var hardcodedValueOrder = []entity.ValueType{entity.ValueColor, entity.ValueSpacing, entity.ValueFontSize}

func (g *Generator) hardcodedValues(c *entity.Component, tokens []entity.DesignToken) []entity.DriftSignal {
	if len(c.Metadata.HardcodedValues) == 0 {
		return nil
	}

	byType := make(map[entity.ValueType][]entity.HardcodedValue)
	for _, hv := range c.Metadata.HardcodedValues {
		byType[hv.Type] = append(byType[hv.Type], hv)
	}

	var signals []entity.DriftSignal
	for _, valueType := range hardcodedValueOrder {
		values := byType[valueType]
		if len(values) == 0 {
			continue
		}

		severity := entity.SeverityInfo
		if valueType == entity.ValueColor {
			severity = entity.SeverityWarning
		}

		literals := make([]string, 0, len(values))
		var tokenSuggestions []string
		for _, hv := range values {
			literals = append(literals, hv.Value)
			if s, ok := topSuggestion(hv, tokens); ok {
				tokenSuggestions = append(tokenSuggestions, s.Format(hv.Value))
			}
		}

		signals = append(signals, entity.DriftSignal{
			ID:       entity.DriftID(entity.DriftHardcodedValue, c.ID, string(valueType)),
			Type:     entity.DriftHardcodedValue,
			Severity: severity,
			Source:   tokenizeComponent(c),
			Message: fmt.Sprintf("component %q hardcodes %s value(s): %s",
				c.Name, valueType, strings.Join(literals, ", ")),
			Details: entity.DriftDetails{
				Suggestions:      []string{"Replace hardcoded values with design token references"},
				TokenSuggestions: tokenSuggestions,
			},
			DetectedAt: g.now(),
		})
	}
	return signals
}

func topSuggestion(hv entity.HardcodedValue, tokens []entity.DesignToken) (suggest.Suggestion, bool) {
	if len(tokens) == 0 {
		return suggest.Suggestion{}, false
	}

	var ranked []suggest.Suggestion
	switch hv.Type {
	case entity.ValueColor:
		ranked = suggest.ColorTokens(hv.Value, tokens, 1)
	case entity.ValueSpacing:
		ranked = suggest.SpacingTokens(hv.Value, tokens, 1)
	}
	if len(ranked) == 0 {
		return suggest.Suggestion{}, false
	}
	return ranked[0], true
}

func (g *Generator) duplicateGroup(group []*entity.Component) entity.DriftSignal {
	names := make([]string, len(group))
	files := make([]string, 0, len(group))
	for i, c := range group {
		names[i] = c.Name
		if f := c.Source.File(); f != "" {
			files = append(files, f)
		}
	}

	base := match.CanonicalName(analyze.StripVariantSuffix(group[0].Name))
	return entity.DriftSignal{
		ID:       entity.DriftID(entity.DriftNamingInconsistency, "duplicate", base),
		Type:     entity.DriftNamingInconsistency,
		Severity: entity.SeverityWarning,
		Source:   tokenizeComponent(group[0]),
		Message: fmt.Sprintf("components %s look like variants of the same component",
			strings.Join(names, ", ")),
		Details: entity.DriftDetails{
			Suggestions:       []string{"Consolidate the variants into a single component"},
			AffectedFiles:     files,
			RelatedComponents: names,
		},
		DetectedAt: g.now(),
	}
}

// FromProject generates project-level signals from snapshot metadata
func (g *Generator) FromProject(frameworks []string) []entity.DriftSignal {
	if len(frameworks) <= 1 {
		return nil
	}

	sorted := append([]string(nil), frameworks...)
	sort.Strings(sorted)
	return []entity.DriftSignal{{
		ID:       entity.DriftID(entity.DriftFrameworkSprawl, sorted...),
		Type:     entity.DriftFrameworkSprawl,
		Severity: entity.SeverityWarning,
		Source: entity.DriftSource{
			EntityType: "project",
			EntityName: "project",
		},
		Message: fmt.Sprintf("project declares %d UI frameworks: %s",
			len(sorted), strings.Join(sorted, ", ")),
		Details: entity.DriftDetails{
			Suggestions: []string{"Consolidate on a single UI framework to reduce drift surface"},
		},
		DetectedAt: g.now(),
	}}
}

// FromUsage generates unused-entity signals for entities with zero recorded
// usages
func (g *Generator) FromUsage(components []*entity.Component, tokens []*entity.DesignToken, usage entity.Usage) []entity.DriftSignal {
	var signals []entity.DriftSignal

	if usage.ComponentRefs != nil {
		for _, c := range components {
			if usage.ComponentRefs[c.Name] > 0 {
				continue
			}
			signals = append(signals, entity.DriftSignal{
				ID:         entity.DriftID(entity.DriftUnusedComponent, c.ID),
				Type:       entity.DriftUnusedComponent,
				Severity:   entity.SeverityWarning,
				Source:     tokenizeComponent(c),
				Message:    fmt.Sprintf("component %q has no recorded usages", c.Name),
				DetectedAt: g.now(),
			})
		}
	}

	if usage.TokenRefs != nil {
		for _, t := range tokens {
			if usage.TokenRefs[t.Name] > 0 {
				continue
			}
			signals = append(signals, entity.DriftSignal{
				ID:         entity.DriftID(entity.DriftUnusedToken, t.ID),
				Type:       entity.DriftUnusedToken,
				Severity:   entity.SeverityInfo,
				Source:     tokenizeToken(t),
				Message:    fmt.Sprintf("token %q has no recorded usages", t.Name),
				DetectedAt: g.now(),
			})
		}
	}

	return signals
}

func tokenizeComponent(c *entity.Component) entity.DriftSource {
	return entity.DriftSource{
		EntityType: "component",
		EntityID:   c.ID,
		EntityName: c.Name,
		File:       c.Source.File(),
		Location:   c.Source.Location(),
	}
}

func tokenizeToken(t *entity.DesignToken) entity.DriftSource {
	return entity.DriftSource{
		EntityType: "token",
		EntityID:   t.ID,
		EntityName: t.Name,
		File:       t.Source.FilePath,
		Location:   t.Source.Location(),
	}
}
