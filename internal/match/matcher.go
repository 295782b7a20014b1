package match

import (
	"github.com/felixgeelhaar/driftscope/internal/config"
	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// Result is the outcome of comparing two component snapshots. Matching is
// injective: every component appears in at most one match; the rest are
// orphans on their own side, in input order.
type Result struct {
	Matches        []entity.ComponentMatch `json:"matches" yaml:"matches"`
	OrphanedSource []*entity.Component     `json:"orphanedSource" yaml:"orphanedSource"`
	OrphanedTarget []*entity.Component     `json:"orphanedTarget" yaml:"orphanedTarget"`
}

// CompareComponents matches two component snapshots in two phases: exact
// canonical-name matching first, then greedy weighted fuzzy matching over
// the remainder in source input order. The greedy assignment is
// deliberately order-dependent and not globally optimal; tests pin this
// behavior so it cannot shift silently.
func CompareComponents(source, target []*entity.Component, cfg config.MatchingConfig) Result {
	mc := newMatchContext()

	claimed := make(map[int]bool, len(target))
	matchedSource := make(map[int]bool, len(source))
	matches := make([]entity.ComponentMatch, 0, len(source))

	// Phase 1: exact canonical-name matches. First target with a given
	// canonical key wins; duplicates stay available for fuzzy matching.
	byCanonical := make(map[string]int, len(target))
	for i, t := range target {
		key := mc.canonicalName(t)
		if _, ok := byCanonical[key]; !ok {
			byCanonical[key] = i
		}
	}

	for i, s := range source {
		idx, ok := byCanonical[mc.canonicalName(s)]
		if !ok || claimed[idx] {
			continue
		}
		claimed[idx] = true
		matchedSource[i] = true
		matches = append(matches, entity.ComponentMatch{
			Source:      s,
			Target:      target[idx],
			Confidence:  1,
			MatchType:   entity.MatchExact,
			Differences: FindDifferences(s, target[idx]),
		})
	}

	// Phase 2: greedy fuzzy matching over the remainder
	for i, s := range source {
		if matchedSource[i] {
			continue
		}

		bestIdx := -1
		bestScore := 0.0
		for j, t := range target {
			if claimed[j] {
				continue
			}
			// Strict improvement only: score ties keep the earliest target
			if score := fuzzyScore(mc, s, t, cfg.SimilarityWeights); score > bestScore {
				bestIdx = j
				bestScore = score
			}
		}

		if bestIdx < 0 || bestScore < cfg.MinMatchConfidence {
			continue
		}

		matchType := entity.MatchPartial
		if bestScore >= cfg.SimilarMatchThreshold {
			matchType = entity.MatchSimilar
		}

		claimed[bestIdx] = true
		matchedSource[i] = true
		matches = append(matches, entity.ComponentMatch{
			Source:      s,
			Target:      target[bestIdx],
			Confidence:  bestScore,
			MatchType:   matchType,
			Differences: FindDifferences(s, target[bestIdx]),
		})
	}

	result := Result{
		Matches:        matches,
		OrphanedSource: make([]*entity.Component, 0),
		OrphanedTarget: make([]*entity.Component, 0),
	}
	for i, s := range source {
		if !matchedSource[i] {
			result.OrphanedSource = append(result.OrphanedSource, s)
		}
	}
	for j, t := range target {
		if !claimed[j] {
			result.OrphanedTarget = append(result.OrphanedTarget, t)
		}
	}
	return result
}

// fuzzyScore computes the weighted similarity between two components
func fuzzyScore(mc *matchContext, s, t *entity.Component, w config.SimilarityWeights) float64 {
	return w.Name*stringSimilarity(mc.canonicalName(s), mc.canonicalName(t)) +
		w.Props*jaccard(mc.propSet(s), mc.propSet(t)) +
		w.Variants*jaccard(mc.variantSet(s), mc.variantSet(t)) +
		w.Dependencies*jaccard(mc.depSet(s), mc.depSet(t))
}
