package baseline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

func hardcodedSignal(file, location string) entity.DriftSignal {
	src := entity.ComponentSource{Kind: entity.SourceFrameworkComponent, Framework: "react", FilePath: file}
	return entity.DriftSignal{
		ID:       entity.DriftID(entity.DriftHardcodedValue, entity.ComponentID(src, "PriceTag"), "color"),
		Type:     entity.DriftHardcodedValue,
		Severity: entity.SeverityWarning,
		Source: entity.DriftSource{
			EntityType: "component",
			EntityID:   entity.ComponentID(src, "PriceTag"),
			EntityName: "PriceTag",
			File:       file,
			Location:   location,
		},
		Message: `component "PriceTag" hardcodes color value(s): #3b82f6`,
		Details: entity.DriftDetails{Actual: "#3b82f6"},
	}
}

func TestSignatureIsDeterministic(t *testing.T) {
	sig := hardcodedSignal("src/PriceTag.tsx", "src/PriceTag.tsx:42")

	first, err := Signature(sig)
	require.NoError(t, err)
	second, err := Signature(sig)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "blake3 hex digest")
}

func TestSignatureSurvivesLineShift(t *testing.T) {
	atLine42 := hardcodedSignal("src/PriceTag.tsx", "src/PriceTag.tsx:42")
	atLine97 := hardcodedSignal("src/PriceTag.tsx", "src/PriceTag.tsx:97")
	atLine97.DetectedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first, err := Signature(atLine42)
	require.NoError(t, err)
	second, err := Signature(atLine97)
	require.NoError(t, err)

	assert.Equal(t, first, second, "line numbers and timestamps are not identity")
}

func TestSignatureDistinguishesValues(t *testing.T) {
	blue := hardcodedSignal("src/PriceTag.tsx", "")
	red := hardcodedSignal("src/PriceTag.tsx", "")
	red.Details.Actual = "#ef4444"
	red.Message = `component "PriceTag" hardcodes color value(s): #ef4444`

	first, err := Signature(blue)
	require.NoError(t, err)
	second, err := Signature(red)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSignatureDistinguishesFiles(t *testing.T) {
	a := hardcodedSignal("src/PriceTag.tsx", "")
	b := hardcodedSignal("src/checkout/PriceTag.tsx", "")

	first, err := Signature(a)
	require.NoError(t, err)
	second, err := Signature(b)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
