package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

func TestAccessibilityImageWithoutAlt(t *testing.T) {
	c := withProps("Avatar", entity.Prop{Name: "src", Type: "string"})

	issues := Accessibility(c)

	require.Len(t, issues, 1)
	assert.Equal(t, "image-alt-text", issues[0].Rule)
}

func TestAccessibilityImageWithAlt(t *testing.T) {
	c := withProps("Avatar",
		entity.Prop{Name: "src", Type: "string"},
		entity.Prop{Name: "alt", Type: "string"},
	)

	assert.Empty(t, Accessibility(c))
}

func TestAccessibilityInteractiveWithoutLabel(t *testing.T) {
	c := withProps("IconButton", entity.Prop{Name: "onClick", Type: "function"})

	issues := Accessibility(c)

	require.Len(t, issues, 1)
	assert.Equal(t, "interactive-label", issues[0].Rule)
}

func TestAccessibilityInteractiveWithAriaLabel(t *testing.T) {
	c := withProps("IconButton",
		entity.Prop{Name: "onClick", Type: "function"},
		entity.Prop{Name: "ariaLabel", Type: "string"},
	)

	assert.Empty(t, Accessibility(c))
}

func TestContrastIssuesLowContrastPair(t *testing.T) {
	c := named("Banner")[0]
	c.Metadata.HardcodedValues = []entity.HardcodedValue{
		{Type: entity.ValueColor, Value: "#777777", Property: "color"},
		{Type: entity.ValueColor, Value: "#888888", Property: "backgroundColor"},
	}

	issues := ContrastIssues(c)

	require.Len(t, issues, 1)
	assert.Less(t, issues[0].Ratio, 4.5)
	assert.Equal(t, "#777777", issues[0].Foreground)
	assert.Equal(t, "#888888", issues[0].Background)
}

func TestContrastIssuesHighContrastPair(t *testing.T) {
	c := named("Banner")[0]
	c.Metadata.HardcodedValues = []entity.HardcodedValue{
		{Type: entity.ValueColor, Value: "#000000", Property: "color"},
		{Type: entity.ValueColor, Value: "#ffffff", Property: "background"},
	}

	assert.Empty(t, ContrastIssues(c))
}

func TestContrastIssuesIgnoresNonColors(t *testing.T) {
	c := named("Banner")[0]
	c.Metadata.HardcodedValues = []entity.HardcodedValue{
		{Type: entity.ValueSpacing, Value: "12px", Property: "padding"},
	}

	assert.Empty(t, ContrastIssues(c))
}
