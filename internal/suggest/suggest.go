// Package suggest ranks design tokens as replacement candidates for
// hardcoded values. Suggestions are best-effort: an unparseable value or an
// empty token list yields an empty result, never an error.
package suggest

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

const (
	// DefaultMax is the number of suggestions returned when the caller
	// passes max <= 0
	DefaultMax = 3

	// maxColorDistance is the CIE-Lab distance beyond which a color token
	// is not a plausible replacement
	maxColorDistance = 0.25

	// maxSpacingDistancePx is the pixel distance beyond which a spacing
	// token is not a plausible replacement
	maxSpacingDistancePx = 16.0
)

// Suggestion is one ranked token candidate for a hardcoded value
type Suggestion struct {
	TokenName  string  `json:"tokenName" yaml:"tokenName"`
	TokenValue string  `json:"tokenValue" yaml:"tokenValue"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Format renders a suggestion for drift messages, e.g.
// "#3b82f6 → primary (100% match)"
func (s Suggestion) Format(value string) string {
	return fmt.Sprintf("%s → %s (%d%% match)", value, s.TokenName, int(math.Round(s.Confidence*100)))
}

// ColorTokens ranks color tokens by perceptual distance to the hardcoded
// value. Exact matches have confidence 1; candidates beyond the distance
// cutoff are dropped.
func ColorTokens(value string, tokens []entity.DesignToken, max int) []Suggestion {
	target, err := colorful.Hex(entity.NormalizeHex(value))
	if err != nil {
		return nil
	}

	var suggestions []Suggestion
	for _, token := range tokens {
		if token.Category != entity.CategoryColor {
			continue
		}
		candidate, err := colorful.Hex(entity.NormalizeHex(token.Value.Hex))
		if err != nil {
			continue
		}

		distance := target.DistanceLab(candidate)
		if distance > maxColorDistance {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			TokenName:  token.Name,
			TokenValue: entity.NormalizeHex(token.Value.Hex),
			Confidence: confidence(distance, maxColorDistance),
		})
	}

	return top(suggestions, max)
}

// SpacingTokens ranks spacing tokens by absolute pixel distance to the
// hardcoded value
func SpacingTokens(value string, tokens []entity.DesignToken, max int) []Suggestion {
	magnitude, unit, ok := entity.ParseSpacing(value)
	if !ok {
		return nil
	}
	targetPx, ok := entity.SpacingToPx(magnitude, unit)
	if !ok {
		return nil
	}

	var suggestions []Suggestion
	for _, token := range tokens {
		if token.Category != entity.CategorySpacing {
			continue
		}
		candidatePx, ok := entity.SpacingToPx(token.Value.Value, token.Value.Unit)
		if !ok {
			continue
		}

		distance := math.Abs(targetPx - candidatePx)
		if distance > maxSpacingDistancePx {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			TokenName:  token.Name,
			TokenValue: token.DisplayValue(),
			Confidence: confidence(distance, maxSpacingDistancePx),
		})
	}

	return top(suggestions, max)
}

// confidence maps a distance in [0, cutoff] onto [0, 1], monotonically
// decreasing, with an exact match at 1
func confidence(distance, cutoff float64) float64 {
	c := 1 - distance/cutoff
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// top sorts by descending confidence (token name breaks ties for stable
// output) and truncates to max entries
func top(suggestions []Suggestion, max int) []Suggestion {
	if max <= 0 {
		max = DefaultMax
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		return suggestions[i].TokenName < suggestions[j].TokenName
	})

	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}
