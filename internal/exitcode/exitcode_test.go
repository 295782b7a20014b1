package exitcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/driftscope/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"plain error", fmt.Errorf("boom"), GeneralError},
		{"config weights", errors.NewConfigWeightsError(1.2), ConfigError},
		{"config threshold", errors.NewConfigThresholdError("matching.minMatchConfidence", 2), ConfigError},
		{"snapshot missing", errors.NewSnapshotNotFoundError("impl.json"), SnapshotError},
		{"snapshot empty", errors.New(errors.ErrCodeSnapshotEmpty, "nothing"), SnapshotError},
		{"baseline missing", errors.NewBaselineNotFoundError(".driftscope-baseline.json"), GeneralError},
		{"wrapped", fmt.Errorf("run: %w", errors.NewSnapshotNotFoundError("x")), SnapshotError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineExitCode(tt.err))
		})
	}
}

func TestGetExitCodeDescription(t *testing.T) {
	assert.Equal(t, "Design drift detected", GetExitCodeDescription(DriftDetected))
	assert.Equal(t, "Unknown error", GetExitCodeDescription(42))
}
