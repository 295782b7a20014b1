package entity

import "strconv"

// TokenCategory classifies a design token's value
type TokenCategory string

const (
	CategoryColor      TokenCategory = "color"
	CategorySpacing    TokenCategory = "spacing"
	CategoryTypography TokenCategory = "typography"
	CategoryOther      TokenCategory = "other"
)

// TokenValue holds a token's value. Category selects which fields are
// meaningful; comparisons must switch on Category exhaustively.
type TokenValue struct {
	Category TokenCategory `json:"category" yaml:"category"`

	// color: normalized lowercase hex, e.g. "#3b82f6"
	Hex string `json:"hex,omitempty" yaml:"hex,omitempty"`

	// spacing
	Value float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`

	// typography
	FontFamily string `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontSize   string `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`

	// other: uninterpreted raw value
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// TokenMetadata carries optional scanner-provided annotations
type TokenMetadata struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DesignToken is a named canonical design value
type DesignToken struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Category TokenCategory `json:"category" yaml:"category"`
	Value    TokenValue    `json:"value" yaml:"value"`
	Source   TokenSource   `json:"source" yaml:"source"`
	Metadata TokenMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// DisplayValue renders the token's value for messages and suggestions
func (t DesignToken) DisplayValue() string {
	switch t.Value.Category {
	case CategoryColor:
		return t.Value.Hex
	case CategorySpacing:
		return formatSpacing(t.Value.Value, t.Value.Unit)
	case CategoryTypography:
		return t.Value.FontFamily + " " + t.Value.FontSize + " " + t.Value.FontWeight
	case CategoryOther:
		return t.Value.Raw
	default:
		return t.Value.Raw
	}
}

func formatSpacing(value float64, unit string) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if unit == "" {
		return s
	}
	return s + unit
}
