package analyze

import (
	"strings"
	"unicode"

	"github.com/felixgeelhaar/driftscope/internal/entity"
	"github.com/felixgeelhaar/driftscope/internal/match"
)

// semanticSuffixes are trailing words that mark a variant or superseded copy
// of a component rather than a distinct component
var semanticSuffixes = []string{
	"old", "new", "copy", "legacy", "deprecated", "final", "temp", "wip",
}

// StripVariantSuffix removes recognized variant and version suffixes from a
// component name: trailing digits ("Card2"), version markers ("CardV2"),
// separator-delimited or CamelCase semantic suffixes ("Card_old",
// "CardLegacy"). Words that merely end in a suffix string ("Threshold") are
// left alone.
func StripVariantSuffix(name string) string {
	base := name
	for {
		stripped := stripOnce(base)
		if stripped == base || stripped == "" {
			break
		}
		base = stripped
	}
	if base == "" {
		return name
	}
	return base
}

func stripOnce(name string) string {
	base := strings.TrimRight(name, "-_ .")

	// Trailing digits, optionally preceded by a version marker
	trimmed := strings.TrimRightFunc(base, unicode.IsDigit)
	if trimmed != base && trimmed != "" {
		if last := trimmed[len(trimmed)-1]; last == 'v' || last == 'V' {
			trimmed = trimmed[:len(trimmed)-1]
		}
		return trimmed
	}

	lower := strings.ToLower(base)
	for _, suffix := range semanticSuffixes {
		if !strings.HasSuffix(lower, suffix) {
			continue
		}
		pos := len(base) - len(suffix)
		if pos < 1 {
			continue
		}
		// The suffix must start at a word boundary: a separator before it
		// or an uppercase letter at its start
		prev := rune(base[pos-1])
		first := rune(base[pos])
		if prev == '-' || prev == '_' || prev == ' ' || prev == '.' || unicode.IsUpper(first) {
			return base[:pos]
		}
	}

	return base
}

// DuplicateGroups clusters components whose names collapse to the same base
// once variant/version suffixes are stripped. Only groups of two or more
// are returned, in first-seen order, each group in input order.
func DuplicateGroups(components []*entity.Component) [][]*entity.Component {
	groups := make(map[string][]*entity.Component)
	var order []string

	for _, c := range components {
		key := match.CanonicalName(StripVariantSuffix(c.Name))
		if key == "" {
			continue
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], c)
	}

	var result [][]*entity.Component
	for _, key := range order {
		if len(groups[key]) >= 2 {
			result = append(result, groups[key])
		}
	}
	return result
}
