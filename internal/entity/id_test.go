package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentIDDeterministic(t *testing.T) {
	src := ComponentSource{
		Kind:      SourceFrameworkComponent,
		Framework: "react",
		FilePath:  "src/components/Button.tsx",
		Line:      12,
	}

	first := ComponentID(src, "Button")
	second := ComponentID(src, "Button")
	assert.Equal(t, first, second, "identical inputs must yield identical ids")
}

func TestComponentIDIgnoresLine(t *testing.T) {
	at12 := ComponentSource{Kind: SourceFrameworkComponent, Framework: "react", FilePath: "Button.tsx", Line: 12}
	at99 := ComponentSource{Kind: SourceFrameworkComponent, Framework: "react", FilePath: "Button.tsx", Line: 99}

	assert.Equal(t, ComponentID(at12, "Button"), ComponentID(at99, "Button"),
		"a line shift must not change a component's identity")
}

func TestComponentIDDistinguishesOrigin(t *testing.T) {
	fromCode := ComponentSource{Kind: SourceFrameworkComponent, Framework: "react", FilePath: "Button.tsx"}
	fromDesign := ComponentSource{Kind: SourceDesignToolNode, Tool: "figma", Document: "design.fig", NodeID: "1:2"}

	assert.NotEqual(t, ComponentID(fromCode, "Button"), ComponentID(fromDesign, "Button"))
}

func TestTokenIDDeterministic(t *testing.T) {
	src := TokenSource{Kind: SourceTokenFile, FilePath: "tokens.css"}

	assert.Equal(t, TokenID(src, "primary"), TokenID(src, "primary"))
	assert.NotEqual(t, TokenID(src, "primary"), TokenID(src, "secondary"))
}

func TestDriftIDKeyOrder(t *testing.T) {
	a := DriftID(DriftHardcodedValue, "Button", "#fff")
	b := DriftID(DriftHardcodedValue, "#fff", "Button")
	assert.NotEqual(t, a, b, "key order is part of the identity")

	assert.Equal(t, DriftID(DriftOrphanedToken, "spacing-md"), DriftID(DriftOrphanedToken, "spacing-md"))
}
