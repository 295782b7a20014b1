package entity

import "time"

// Prop describes a single declared property of a component
type Prop struct {
	Name         string `json:"name" yaml:"name"`
	Type         string `json:"type" yaml:"type"`
	Required     bool   `json:"required" yaml:"required"`
	DefaultValue string `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated   bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// Variant is a named preset of prop values
type Variant struct {
	Name  string            `json:"name" yaml:"name"`
	Props map[string]string `json:"props,omitempty" yaml:"props,omitempty"`
}

// ValueType classifies a hardcoded design value found in component source
type ValueType string

const (
	ValueColor    ValueType = "color"
	ValueSpacing  ValueType = "spacing"
	ValueFontSize ValueType = "fontSize"
)

// HardcodedValue is a literal design value that should likely be a token reference
type HardcodedValue struct {
	Type     ValueType `json:"type" yaml:"type"`
	Value    string    `json:"value" yaml:"value"`
	Property string    `json:"property,omitempty" yaml:"property,omitempty"`
	Location string    `json:"location,omitempty" yaml:"location,omitempty"`
}

// ComponentMetadata carries scanner-provided annotations
type ComponentMetadata struct {
	Tags            []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Documentation   string           `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Deprecated      bool             `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	HardcodedValues []HardcodedValue `json:"hardcodedValues,omitempty" yaml:"hardcodedValues,omitempty"`
}

// Component is the normalized, source-agnostic description of a UI building
// block. Instances are immutable snapshots: the engine reads them and never
// mutates them.
type Component struct {
	ID           string            `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	Source       ComponentSource   `json:"source" yaml:"source"`
	Props        []Prop            `json:"props,omitempty" yaml:"props,omitempty"`
	Variants     []Variant         `json:"variants,omitempty" yaml:"variants,omitempty"`
	Dependencies []string          `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Metadata     ComponentMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	ScannedAt    time.Time         `json:"scannedAt,omitempty" yaml:"scannedAt,omitempty"`
}

// Prop returns the declared prop with the given name, or nil
func (c *Component) Prop(name string) *Prop {
	for i := range c.Props {
		if c.Props[i].Name == name {
			return &c.Props[i]
		}
	}
	return nil
}
