package signal

import (
	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// ApplySeverityOverrides rewrites signal severities per drift type. Invalid
// override values are rejected by config validation before this runs, so an
// unknown severity here is simply skipped.
func ApplySeverityOverrides(signals []entity.DriftSignal, overrides map[entity.DriftType]entity.Severity) []entity.DriftSignal {
	if len(overrides) == 0 {
		return signals
	}

	out := make([]entity.DriftSignal, len(signals))
	copy(out, signals)
	for i := range out {
		if severity, ok := overrides[out[i].Type]; ok && severity.Valid() {
			out[i].Severity = severity
		}
	}
	return out
}
