package analyze

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// AccessibilityIssue is one failed accessibility check on a component
type AccessibilityIssue struct {
	Rule    string
	Message string
}

// minContrastRatio is the WCAG AA threshold for normal text
const minContrastRatio = 4.5

// Accessibility runs the pure accessibility checks on one component:
// image-bearing components need an alternative-text prop, interactive
// components need an accessible label.
func Accessibility(c *entity.Component) []AccessibilityIssue {
	var issues []AccessibilityIssue

	props := make(map[string]struct{}, len(c.Props))
	for _, p := range c.Props {
		props[strings.ToLower(p.Name)] = struct{}{}
	}
	has := func(names ...string) bool {
		for _, n := range names {
			if _, ok := props[n]; ok {
				return true
			}
		}
		return false
	}

	if has("src", "image", "imageurl") && !has("alt", "alttext", "aria-label", "arialabel") {
		issues = append(issues, AccessibilityIssue{
			Rule:    "image-alt-text",
			Message: "component renders an image but declares no alt or aria-label prop",
		})
	}

	if has("onclick", "onpress", "ontap") && !has("aria-label", "arialabel", "label", "title", "children") {
		issues = append(issues, AccessibilityIssue{
			Rule:    "interactive-label",
			Message: "interactive component declares no accessible label prop",
		})
	}

	return issues
}

// ContrastIssue is a foreground/background pair below the minimum ratio
type ContrastIssue struct {
	Foreground string
	Background string
	Ratio      float64
}

// ContrastIssues pairs hardcoded foreground and background colors within a
// component and flags combinations below the WCAG AA ratio
func ContrastIssues(c *entity.Component) []ContrastIssue {
	var foregrounds, backgrounds []string
	for _, hv := range c.Metadata.HardcodedValues {
		if hv.Type != entity.ValueColor {
			continue
		}
		property := strings.ToLower(hv.Property)
		switch {
		case strings.Contains(property, "background"):
			backgrounds = append(backgrounds, hv.Value)
		case strings.Contains(property, "color") || strings.Contains(property, "text") || strings.Contains(property, "foreground"):
			foregrounds = append(foregrounds, hv.Value)
		}
	}

	var issues []ContrastIssue
	for _, fg := range foregrounds {
		for _, bg := range backgrounds {
			ratio, ok := contrastRatio(fg, bg)
			if ok && ratio < minContrastRatio {
				issues = append(issues, ContrastIssue{Foreground: fg, Background: bg, Ratio: ratio})
			}
		}
	}
	return issues
}

// contrastRatio computes the WCAG relative-luminance contrast ratio
func contrastRatio(fg, bg string) (float64, bool) {
	f, err := colorful.Hex(entity.NormalizeHex(fg))
	if err != nil {
		return 0, false
	}
	b, err := colorful.Hex(entity.NormalizeHex(bg))
	if err != nil {
		return 0, false
	}

	lf := relativeLuminance(f)
	lb := relativeLuminance(b)
	if lb > lf {
		lf, lb = lb, lf
	}
	return (lf + 0.05) / (lb + 0.05), true
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := linearize(c.R), linearize(c.G), linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}
