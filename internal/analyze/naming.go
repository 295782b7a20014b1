// Package analyze provides the pure, cross-component pattern analyzers the
// drift generator consumes: naming-convention histograms, prop-type
// dominance maps, duplicate grouping, and accessibility checks. Every
// function is a pure function of its inputs; identical input always yields
// identical output regardless of call order.
package analyze

import (
	"strings"
	"unicode"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// Convention is a recognized identifier naming style
type Convention string

const (
	ConventionPascal  Convention = "PascalCase"
	ConventionCamel   Convention = "camelCase"
	ConventionKebab   Convention = "kebab-case"
	ConventionSnake   Convention = "snake_case"
	ConventionLower   Convention = "lowercase"
	ConventionUnknown Convention = "unknown"
)

// conventionPriority breaks histogram ties deterministically
var conventionPriority = []Convention{
	ConventionPascal,
	ConventionCamel,
	ConventionKebab,
	ConventionSnake,
	ConventionLower,
}

// DetectConvention classifies the naming style of a single identifier
func DetectConvention(name string) Convention {
	if name == "" {
		return ConventionUnknown
	}

	hasUpper := strings.ContainsFunc(name, unicode.IsUpper)
	hasDash := strings.ContainsRune(name, '-')
	hasUnderscore := strings.ContainsRune(name, '_')

	switch {
	case hasDash && !hasUpper && !hasUnderscore:
		return ConventionKebab
	case hasUnderscore && !hasUpper && !hasDash:
		return ConventionSnake
	case hasDash || hasUnderscore:
		return ConventionUnknown
	case unicode.IsUpper(firstRune(name)):
		return ConventionPascal
	case hasUpper:
		return ConventionCamel
	default:
		return ConventionLower
	}
}

// ParseConvention maps a configuration string onto a Convention
func ParseConvention(s string) Convention {
	switch s {
	case "PascalCase", "pascal":
		return ConventionPascal
	case "camelCase", "camel":
		return ConventionCamel
	case "kebab-case", "kebab":
		return ConventionKebab
	case "snake_case", "snake":
		return ConventionSnake
	case "lowercase", "lower":
		return ConventionLower
	default:
		return ConventionUnknown
	}
}

// MajorityConvention builds a histogram over component names and returns the
// prevailing convention. Ambiguous and unknown names do not vote. Returns
// ConventionUnknown when nothing votes.
func MajorityConvention(components []*entity.Component) Convention {
	histogram := make(map[Convention]int)
	for _, c := range components {
		conv := DetectConvention(c.Name)
		if conv != ConventionUnknown {
			histogram[conv]++
		}
	}

	best := ConventionUnknown
	bestCount := 0
	// Fixed priority order keeps ties deterministic
	for _, conv := range conventionPriority {
		if histogram[conv] > bestCount {
			best = conv
			bestCount = histogram[conv]
		}
	}
	return best
}

// Follows reports whether a name conforms to the given convention. A plain
// lowercase single word is ambiguous and accepted by every convention
// except PascalCase.
func Follows(name string, convention Convention) bool {
	detected := DetectConvention(name)
	if detected == convention || detected == ConventionUnknown {
		return true
	}
	if detected == ConventionLower && convention != ConventionPascal {
		return true
	}
	return false
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
