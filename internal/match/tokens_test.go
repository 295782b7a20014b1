package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

func colorToken(name, hex string) *entity.DesignToken {
	src := entity.TokenSource{Kind: entity.SourceTokenFile, FilePath: "tokens.css"}
	return &entity.DesignToken{
		ID:       entity.TokenID(src, name),
		Name:     name,
		Category: entity.CategoryColor,
		Value:    entity.TokenValue{Category: entity.CategoryColor, Hex: hex},
		Source:   src,
	}
}

func spacingToken(name string, value float64, unit string) *entity.DesignToken {
	src := entity.TokenSource{Kind: entity.SourceTokenFile, FilePath: "tokens.css"}
	return &entity.DesignToken{
		ID:       entity.TokenID(src, name),
		Name:     name,
		Category: entity.CategorySpacing,
		Value:    entity.TokenValue{Category: entity.CategorySpacing, Value: value, Unit: unit},
		Source:   src,
	}
}

func TestCompareTokensExactNameOnly(t *testing.T) {
	source := []*entity.DesignToken{colorToken("primary", "#3b82f6")}
	target := []*entity.DesignToken{colorToken("primary-color", "#3b82f6")}

	result := CompareTokens(source, target)

	// "primary" and "primary-color" differ canonically; tokens never fuzzy-match
	assert.Empty(t, result.Matches)
	assert.Len(t, result.OrphanedSource, 1)
	assert.Len(t, result.OrphanedTarget, 1)
}

func TestCompareTokensValueDivergence(t *testing.T) {
	source := []*entity.DesignToken{colorToken("primary", "#3b82f6")}
	target := []*entity.DesignToken{colorToken("Primary", "#2563eb")}

	result := CompareTokens(source, target)

	require.Len(t, result.Matches, 1)
	assert.False(t, result.Matches[0].ValuesEqual)
}

func TestCompareTokensHexNormalization(t *testing.T) {
	source := []*entity.DesignToken{colorToken("white", "#FFF")}
	target := []*entity.DesignToken{colorToken("white", "#ffffff")}

	result := CompareTokens(source, target)

	require.Len(t, result.Matches, 1)
	assert.True(t, result.Matches[0].ValuesEqual)
}

func TestCompareTokensSpacingUnitNormalization(t *testing.T) {
	source := []*entity.DesignToken{spacingToken("md", 16, "px")}
	target := []*entity.DesignToken{spacingToken("md", 1, "rem")}

	result := CompareTokens(source, target)

	require.Len(t, result.Matches, 1)
	assert.True(t, result.Matches[0].ValuesEqual, "16px equals 1rem")
}

func TestCompareTokensCategoryMismatchNeverEqual(t *testing.T) {
	src := entity.TokenSource{Kind: entity.SourceTokenFile, FilePath: "tokens.css"}
	spacing := spacingToken("md", 16, "px")
	other := &entity.DesignToken{
		ID:       entity.TokenID(src, "md"),
		Name:     "md",
		Category: entity.CategoryOther,
		Value:    entity.TokenValue{Category: entity.CategoryOther, Raw: "16px"},
		Source:   src,
	}

	result := CompareTokens([]*entity.DesignToken{spacing}, []*entity.DesignToken{other})

	require.Len(t, result.Matches, 1)
	assert.False(t, result.Matches[0].ValuesEqual)
}
