package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#3B82F6", "#3b82f6"},
		{"#fff", "#ffffff"},
		{" #ABC ", "#aabbcc"},
		{"rebeccapurple", "rebeccapurple"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHex(tt.in), tt.in)
	}
}

func TestSpacingToPx(t *testing.T) {
	px, ok := SpacingToPx(1.5, "rem")
	assert.True(t, ok)
	assert.Equal(t, 24.0, px)

	px, ok = SpacingToPx(8, "")
	assert.True(t, ok)
	assert.Equal(t, 8.0, px)

	_, ok = SpacingToPx(50, "%")
	assert.False(t, ok)
}

func TestParseSpacing(t *testing.T) {
	value, unit, ok := ParseSpacing("12px")
	assert.True(t, ok)
	assert.Equal(t, 12.0, value)
	assert.Equal(t, "px", unit)

	value, unit, ok = ParseSpacing("0.5rem")
	assert.True(t, ok)
	assert.Equal(t, 0.5, value)
	assert.Equal(t, "rem", unit)

	_, _, ok = ParseSpacing("auto")
	assert.False(t, ok)
}
