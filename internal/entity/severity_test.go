package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRank(t *testing.T) {
	assert.True(t, SeverityInfo.Rank() < SeverityWarning.Rank())
	assert.True(t, SeverityWarning.Rank() < SeverityCritical.Rank())
	assert.Equal(t, 0, Severity("bogus").Rank())
}

func TestMaxSeverity(t *testing.T) {
	assert.Equal(t, SeverityCritical, MaxSeverity(SeverityWarning, SeverityCritical))
	assert.Equal(t, SeverityWarning, MaxSeverity(SeverityWarning, SeverityInfo))
	assert.Equal(t, SeverityInfo, MaxSeverity(SeverityInfo, SeverityInfo))
}

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityInfo, SeverityWarning, SeverityCritical} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Severity("fatal").Valid())
}
