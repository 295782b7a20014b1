package entity

// MatchType classifies how a cross-snapshot pair was bound
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchSimilar MatchType = "similar"
	MatchPartial MatchType = "partial"
)

// Difference is one field-level divergence between a matched pair
type Difference struct {
	Field       string   `json:"field" yaml:"field"`
	SourceValue string   `json:"sourceValue" yaml:"sourceValue"`
	TargetValue string   `json:"targetValue" yaml:"targetValue"`
	Severity    Severity `json:"severity" yaml:"severity"`
}

// ComponentMatch binds one source component to one target component.
// Matching is injective: a component appears in at most one match.
type ComponentMatch struct {
	Source      *Component   `json:"source" yaml:"source"`
	Target      *Component   `json:"target" yaml:"target"`
	Confidence  float64      `json:"confidence" yaml:"confidence"`
	MatchType   MatchType    `json:"matchType" yaml:"matchType"`
	Differences []Difference `json:"differences,omitempty" yaml:"differences,omitempty"`
}

// TokenMatch binds one source token to one target token by canonical name
type TokenMatch struct {
	Source      *DesignToken `json:"source" yaml:"source"`
	Target      *DesignToken `json:"target" yaml:"target"`
	ValuesEqual bool         `json:"valuesEqual" yaml:"valuesEqual"`
}
