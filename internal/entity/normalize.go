package entity

import (
	"strconv"
	"strings"
)

// NormalizeHex canonicalizes a hex color to lowercase #rrggbb form.
// Shorthand #rgb is expanded. Returns the input unchanged when it is not a
// recognizable hex color; malformed values are compared literally rather
// than rejected.
func NormalizeHex(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if !strings.HasPrefix(v, "#") {
		return v
	}

	hex := v[1:]
	if len(hex) == 3 {
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < 3; i++ {
			b.WriteByte(hex[i])
			b.WriteByte(hex[i])
		}
		return b.String()
	}
	return v
}

// SpacingToPx converts a spacing magnitude in the given unit to pixels.
// Unitless values are treated as pixels. Returns false for units that have
// no fixed pixel equivalent (%, vw, vh, ...).
func SpacingToPx(value float64, unit string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "px":
		return value, true
	case "rem", "em":
		return value * 16, true
	case "pt":
		return value * 96.0 / 72.0, true
	default:
		return 0, false
	}
}

// ParseSpacing splits a raw spacing literal like "12px" or "0.5rem" into a
// magnitude and unit
func ParseSpacing(raw string) (float64, string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, "", false
	}

	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}

	num := s[:end]
	unit := strings.TrimSpace(s[end:])
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, "", false
	}
	return value, unit, true
}
