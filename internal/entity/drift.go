package entity

import "time"

// DriftType identifies one category in the closed drift taxonomy
type DriftType string

const (
	DriftSemanticMismatch      DriftType = "semantic-mismatch"
	DriftOrphanedComponent     DriftType = "orphaned-component"
	DriftOrphanedToken         DriftType = "orphaned-token"
	DriftValueDivergence       DriftType = "value-divergence"
	DriftDeprecatedPattern     DriftType = "deprecated-pattern"
	DriftNamingInconsistency   DriftType = "naming-inconsistency"
	DriftAccessibilityConflict DriftType = "accessibility-conflict"
	DriftHardcodedValue        DriftType = "hardcoded-value"
	DriftFrameworkSprawl       DriftType = "framework-sprawl"
	DriftUnusedComponent       DriftType = "unused-component"
	DriftUnusedToken           DriftType = "unused-token"
)

// DriftTypes lists the full taxonomy in a fixed order
var DriftTypes = []DriftType{
	DriftSemanticMismatch,
	DriftOrphanedComponent,
	DriftOrphanedToken,
	DriftValueDivergence,
	DriftDeprecatedPattern,
	DriftNamingInconsistency,
	DriftAccessibilityConflict,
	DriftHardcodedValue,
	DriftFrameworkSprawl,
	DriftUnusedComponent,
	DriftUnusedToken,
}

// DriftSource references the entity a drift signal is about
type DriftSource struct {
	EntityType string `json:"entityType" yaml:"entityType"`
	EntityID   string `json:"entityId" yaml:"entityId"`
	EntityName string `json:"entityName" yaml:"entityName"`
	// File is the path-only locator, stable across line shifts
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// Location is the full display locator, possibly including a line number
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// DriftDetails carries structured context for a drift signal
type DriftDetails struct {
	Expected          string   `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual            string   `json:"actual,omitempty" yaml:"actual,omitempty"`
	Suggestions       []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	AffectedFiles     []string `json:"affectedFiles,omitempty" yaml:"affectedFiles,omitempty"`
	TokenSuggestions  []string `json:"tokenSuggestions,omitempty" yaml:"tokenSuggestions,omitempty"`
	RelatedComponents []string `json:"relatedComponents,omitempty" yaml:"relatedComponents,omitempty"`
}

// DriftSignal is one detected deviation between implementation and design
// system intent. Signals are created by the engine and never mutated by it
// afterwards; severity overrides are applied by the caller.
type DriftSignal struct {
	ID         string       `json:"id" yaml:"id"`
	Type       DriftType    `json:"type" yaml:"type"`
	Severity   Severity     `json:"severity" yaml:"severity"`
	Source     DriftSource  `json:"source" yaml:"source"`
	Target     *DriftSource `json:"target,omitempty" yaml:"target,omitempty"`
	Message    string       `json:"message" yaml:"message"`
	Details    DriftDetails `json:"details" yaml:"details"`
	DetectedAt time.Time    `json:"detectedAt" yaml:"detectedAt"`
}
