package match

import (
	"strings"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// FindDifferences compares the prop sets of a matched pair by case-folded
// name. A required prop missing from the target is a warning, an optional
// one is informational, a declared-type disagreement is a warning, and a
// prop only the target declares is informational. The output order follows
// the source prop list, then target-only props in target order.
func FindDifferences(source, target *entity.Component) []entity.Difference {
	targetProps := make(map[string]*entity.Prop, len(target.Props))
	for i := range target.Props {
		targetProps[strings.ToLower(target.Props[i].Name)] = &target.Props[i]
	}
	sourceNames := make(map[string]struct{}, len(source.Props))

	var diffs []entity.Difference
	for i := range source.Props {
		sp := &source.Props[i]
		key := strings.ToLower(sp.Name)
		sourceNames[key] = struct{}{}

		tp, ok := targetProps[key]
		if !ok {
			severity := entity.SeverityInfo
			if sp.Required {
				severity = entity.SeverityWarning
			}
			diffs = append(diffs, entity.Difference{
				Field:       "props." + sp.Name,
				SourceValue: sp.Type,
				TargetValue: "",
				Severity:    severity,
			})
			continue
		}

		if sp.Type != tp.Type {
			diffs = append(diffs, entity.Difference{
				Field:       "props." + sp.Name + ".type",
				SourceValue: sp.Type,
				TargetValue: tp.Type,
				Severity:    entity.SeverityWarning,
			})
		}
	}

	for i := range target.Props {
		tp := &target.Props[i]
		if _, ok := sourceNames[strings.ToLower(tp.Name)]; ok {
			continue
		}
		diffs = append(diffs, entity.Difference{
			Field:       "props." + tp.Name,
			SourceValue: "",
			TargetValue: tp.Type,
			Severity:    entity.SeverityInfo,
		})
	}

	return diffs
}
