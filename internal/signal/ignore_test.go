package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/driftscope/internal/config"
	"github.com/felixgeelhaar/driftscope/internal/entity"
)

func namedSignal(driftType entity.DriftType, name string) entity.DriftSignal {
	return entity.DriftSignal{
		ID:       entity.DriftID(driftType, name),
		Type:     driftType,
		Severity: entity.SeverityWarning,
		Source:   entity.DriftSource{EntityType: "component", EntityName: name},
	}
}

func TestFilterIgnoredByType(t *testing.T) {
	signals := []entity.DriftSignal{
		namedSignal(entity.DriftHardcodedValue, "Button"),
		namedSignal(entity.DriftOrphanedComponent, "Card"),
	}
	rules := []config.IgnoreRule{{Type: entity.DriftHardcodedValue}}

	kept, warnings := FilterIgnored(signals, rules)

	assert.Empty(t, warnings)
	require.Len(t, kept, 1)
	assert.Equal(t, entity.DriftOrphanedComponent, kept[0].Type)
}

func TestFilterIgnoredByPattern(t *testing.T) {
	signals := []entity.DriftSignal{
		namedSignal(entity.DriftHardcodedValue, "LegacyButton"),
		namedSignal(entity.DriftHardcodedValue, "Card"),
	}
	rules := []config.IgnoreRule{{Type: entity.DriftHardcodedValue, Pattern: "^Legacy"}}

	kept, warnings := FilterIgnored(signals, rules)

	assert.Empty(t, warnings)
	require.Len(t, kept, 1)
	assert.Equal(t, "Card", kept[0].Source.EntityName)
}

func TestFilterIgnoredInvalidPatternIsSkippedNotMatchAll(t *testing.T) {
	signals := []entity.DriftSignal{
		namedSignal(entity.DriftHardcodedValue, "Button"),
	}
	rules := []config.IgnoreRule{{Type: entity.DriftHardcodedValue, Pattern: "["}}

	kept, warnings := FilterIgnored(signals, rules)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "invalid pattern")
	assert.Len(t, kept, 1, "a broken rule must not suppress anything")
}

func TestFilterIgnoredNoRules(t *testing.T) {
	signals := []entity.DriftSignal{namedSignal(entity.DriftHardcodedValue, "Button")}

	kept, warnings := FilterIgnored(signals, nil)

	assert.Empty(t, warnings)
	assert.Equal(t, signals, kept)
}

func TestApplySeverityOverrides(t *testing.T) {
	signals := []entity.DriftSignal{
		namedSignal(entity.DriftHardcodedValue, "Button"),
		namedSignal(entity.DriftOrphanedComponent, "Card"),
	}
	overrides := map[entity.DriftType]entity.Severity{
		entity.DriftHardcodedValue: entity.SeverityCritical,
	}

	out := ApplySeverityOverrides(signals, overrides)

	assert.Equal(t, entity.SeverityCritical, out[0].Severity)
	assert.Equal(t, entity.SeverityWarning, out[1].Severity)
	assert.Equal(t, entity.SeverityWarning, signals[0].Severity, "input is not mutated")
}
