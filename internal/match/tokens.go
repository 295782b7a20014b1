package match

import (
	"math"
	"strings"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// TokenResult is the outcome of comparing two token snapshots
type TokenResult struct {
	Matches        []entity.TokenMatch   `json:"matches" yaml:"matches"`
	OrphanedSource []*entity.DesignToken `json:"orphanedSource" yaml:"orphanedSource"`
	OrphanedTarget []*entity.DesignToken `json:"orphanedTarget" yaml:"orphanedTarget"`
}

// CompareTokens matches tokens by canonical name only; tokens are never
// fuzzy-matched. Matched pairs are checked for value equality under the
// category's equality rule; everything unmatched becomes an orphan.
func CompareTokens(source, target []*entity.DesignToken) TokenResult {
	byCanonical := make(map[string]int, len(target))
	for i, t := range target {
		key := CanonicalName(t.Name)
		if _, ok := byCanonical[key]; !ok {
			byCanonical[key] = i
		}
	}

	claimed := make(map[int]bool, len(target))
	result := TokenResult{
		Matches:        make([]entity.TokenMatch, 0, len(source)),
		OrphanedSource: make([]*entity.DesignToken, 0),
		OrphanedTarget: make([]*entity.DesignToken, 0),
	}

	for _, s := range source {
		idx, ok := byCanonical[CanonicalName(s.Name)]
		if !ok || claimed[idx] {
			result.OrphanedSource = append(result.OrphanedSource, s)
			continue
		}
		claimed[idx] = true
		t := target[idx]
		result.Matches = append(result.Matches, entity.TokenMatch{
			Source:      s,
			Target:      t,
			ValuesEqual: valuesEqual(s.Value, t.Value),
		})
	}

	for i, t := range target {
		if !claimed[i] {
			result.OrphanedTarget = append(result.OrphanedTarget, t)
		}
	}
	return result
}

// spacingEpsilon absorbs unit-conversion rounding when comparing magnitudes
const spacingEpsilon = 1e-6

// valuesEqual applies the per-category equality rule. Values in different
// categories are never equal.
func valuesEqual(a, b entity.TokenValue) bool {
	if a.Category != b.Category {
		return false
	}

	switch a.Category {
	case entity.CategoryColor:
		return entity.NormalizeHex(a.Hex) == entity.NormalizeHex(b.Hex)
	case entity.CategorySpacing:
		aPx, aOK := entity.SpacingToPx(a.Value, a.Unit)
		bPx, bOK := entity.SpacingToPx(b.Value, b.Unit)
		if aOK && bOK {
			return math.Abs(aPx-bPx) < spacingEpsilon
		}
		// Units without a pixel equivalent compare literally
		return a.Value == b.Value && strings.EqualFold(a.Unit, b.Unit)
	case entity.CategoryTypography:
		return strings.EqualFold(a.FontFamily, b.FontFamily) &&
			strings.EqualFold(a.FontSize, b.FontSize) &&
			strings.EqualFold(a.FontWeight, b.FontWeight)
	case entity.CategoryOther:
		return a.Raw == b.Raw
	default:
		return a.Raw == b.Raw
	}
}
