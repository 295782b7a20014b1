package analyze

import (
	"strings"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// PropTypeDominance builds the dominant declared type per prop name across
// the batch. A prop name participates once it appears in at least two
// components; a type dominates only when it is declared strictly more often
// than every other type for that name. Keys are case-folded prop names.
func PropTypeDominance(components []*entity.Component) map[string]string {
	type typeCounts struct {
		components int
		byType     map[string]int
	}

	counts := make(map[string]*typeCounts)
	for _, c := range components {
		seen := make(map[string]struct{}, len(c.Props))
		for _, p := range c.Props {
			key := strings.ToLower(p.Name)
			tc, ok := counts[key]
			if !ok {
				tc = &typeCounts{byType: make(map[string]int)}
				counts[key] = tc
			}
			if _, dup := seen[key]; !dup {
				tc.components++
				seen[key] = struct{}{}
			}
			tc.byType[p.Type]++
		}
	}

	dominance := make(map[string]string)
	for name, tc := range counts {
		if tc.components < 2 {
			continue
		}

		dominant := ""
		best := 0
		tied := false
		for propType, count := range tc.byType {
			switch {
			case count > best:
				dominant = propType
				best = count
				tied = false
			case count == best:
				tied = true
			}
		}
		if !tied && dominant != "" {
			dominance[name] = dominant
		}
	}
	return dominance
}
