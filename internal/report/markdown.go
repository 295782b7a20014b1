package report

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

func severityEmoji(s entity.Severity) string {
	switch s {
	case entity.SeverityCritical:
		return "🔴"
	case entity.SeverityWarning:
		return "🟡"
	default:
		return "🔵"
	}
}

// RenderMarkdown renders a report as a markdown fragment suitable for a
// pull request comment
func RenderMarkdown(r *Report) string {
	var b strings.Builder

	b.WriteString("## Design Drift Report\n\n")

	if r.Summary.Total == 0 {
		b.WriteString("✅ No drift detected.\n")
		if r.Baselined > 0 {
			fmt.Fprintf(&b, "\n_%d accepted drift(s) suppressed by baseline._\n", r.Baselined)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "Found **%d** drift(s): %d critical, %d warning, %d info\n\n",
		r.Summary.Total,
		r.Summary.BySeverity[entity.SeverityCritical],
		r.Summary.BySeverity[entity.SeverityWarning],
		r.Summary.BySeverity[entity.SeverityInfo])

	b.WriteString("| | Type | Drift | Location |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, d := range r.Drifts {
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n",
			severityEmoji(d.Severity), d.Type, escapePipes(d.Message), escapePipes(d.Source.Location))
	}

	var suggestions []string
	for _, d := range r.Drifts {
		suggestions = append(suggestions, d.Details.TokenSuggestions...)
	}
	if len(suggestions) > 0 {
		b.WriteString("\n<details><summary>Token suggestions</summary>\n\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n</details>\n")
	}

	if r.Baselined > 0 {
		fmt.Fprintf(&b, "\n_%d accepted drift(s) suppressed by baseline._\n", r.Baselined)
	}

	return b.String()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
