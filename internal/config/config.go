package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/driftscope/internal/entity"
	"github.com/felixgeelhaar/driftscope/internal/errors"
)

// SimilarityWeights controls the contribution of each feature to the fuzzy
// matching score. Weights must sum to 1.
type SimilarityWeights struct {
	Name         float64 `yaml:"name" json:"name"`
	Props        float64 `yaml:"props" json:"props"`
	Variants     float64 `yaml:"variants" json:"variants"`
	Dependencies float64 `yaml:"dependencies" json:"dependencies"`
}

// Sum returns the total weight
func (w SimilarityWeights) Sum() float64 {
	return w.Name + w.Props + w.Variants + w.Dependencies
}

// MatchingConfig controls cross-snapshot component matching
type MatchingConfig struct {
	// MinMatchConfidence is the minimum fuzzy score to accept a match
	MinMatchConfidence float64 `yaml:"minMatchConfidence" json:"minMatchConfidence"`
	// SimilarMatchThreshold separates similar from partial matches
	SimilarMatchThreshold float64 `yaml:"similarMatchThreshold" json:"similarMatchThreshold"`
	// SimilarityWeights weighs name/props/variants/dependencies similarity
	SimilarityWeights SimilarityWeights `yaml:"similarityWeights" json:"similarityWeights"`
}

// NamingConventions optionally pins the expected naming convention instead of
// letting the analyzer infer the prevailing one from the batch
type NamingConventions struct {
	Components string `yaml:"components,omitempty" json:"components,omitempty"`
	Tokens     string `yaml:"tokens,omitempty" json:"tokens,omitempty"`
}

// AnalysisOptions toggles the single-snapshot consistency checks
type AnalysisOptions struct {
	CheckDeprecated    bool `yaml:"checkDeprecated" json:"checkDeprecated"`
	CheckNaming        bool `yaml:"checkNaming" json:"checkNaming"`
	CheckDocumentation bool `yaml:"checkDocumentation" json:"checkDocumentation"`
	CheckAccessibility bool `yaml:"checkAccessibility" json:"checkAccessibility"`

	DeprecatedPatterns []string          `yaml:"deprecatedPatterns,omitempty" json:"deprecatedPatterns,omitempty"`
	NamingConventions  NamingConventions `yaml:"namingConventions,omitempty" json:"namingConventions,omitempty"`

	// AvailableTokens enables token-suggestion enrichment of hardcoded-value
	// drifts. Supplied at call time, not from the config file.
	AvailableTokens []entity.DesignToken `yaml:"-" json:"-"`
}

// IgnoreRule suppresses drifts of a type, optionally narrowed to entity names
// matching a regular expression
type IgnoreRule struct {
	Type    entity.DriftType `yaml:"type" json:"type"`
	Pattern string           `yaml:"pattern,omitempty" json:"pattern,omitempty"`
}

// Config is the full tool configuration, loaded from .driftscope.yaml
type Config struct {
	Matching MatchingConfig  `yaml:"matching" json:"matching"`
	Analysis AnalysisOptions `yaml:"analysis" json:"analysis"`

	// SeverityOverrides remaps drift types to operator-chosen severities.
	// Applied after generation; the generator always emits intrinsic severity.
	SeverityOverrides map[entity.DriftType]entity.Severity `yaml:"severityOverrides,omitempty" json:"severityOverrides,omitempty"`

	Ignore []IgnoreRule `yaml:"ignore,omitempty" json:"ignore,omitempty"`

	// BaselinePath is where accepted drift signatures are stored
	BaselinePath string `yaml:"baselinePath,omitempty" json:"baselinePath,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	return Config{
		Matching: MatchingConfig{
			MinMatchConfidence:    0.6,
			SimilarMatchThreshold: 0.8,
			SimilarityWeights: SimilarityWeights{
				Name:         0.4,
				Props:        0.3,
				Variants:     0.2,
				Dependencies: 0.1,
			},
		},
		Analysis: AnalysisOptions{
			CheckDeprecated:    true,
			CheckNaming:        true,
			CheckDocumentation: false,
			CheckAccessibility: true,
		},
		BaselinePath: ".driftscope-baseline.json",
	}
}

// Load reads and validates a configuration file. A missing file is not an
// error: defaults are returned so the tool works with zero configuration.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read config: %s", path), err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.NewFileUnmarshalError(path, "YAML", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// weightTolerance absorbs float literals like 0.1+0.2+0.3+0.4 in YAML
const weightTolerance = 1e-6

// Validate checks thresholds, weights, and severity overrides
func (c Config) Validate() error {
	if c.Matching.MinMatchConfidence < 0 || c.Matching.MinMatchConfidence > 1 {
		return errors.NewConfigThresholdError("matching.minMatchConfidence", c.Matching.MinMatchConfidence)
	}
	if c.Matching.SimilarMatchThreshold < 0 || c.Matching.SimilarMatchThreshold > 1 {
		return errors.NewConfigThresholdError("matching.similarMatchThreshold", c.Matching.SimilarMatchThreshold)
	}

	if sum := c.Matching.SimilarityWeights.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return errors.NewConfigWeightsError(sum)
	}

	for driftType, severity := range c.SeverityOverrides {
		if !severity.Valid() {
			return errors.New(errors.ErrCodeConfigSeverity,
				fmt.Sprintf("invalid severity %q for drift type %q", severity, driftType)).
				WithSuggestion("Use one of: info, warning, critical")
		}
	}

	return nil
}
