package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/driftscope/internal/entity"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	criticalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func severityStyle(s entity.Severity) lipgloss.Style {
	switch s {
	case entity.SeverityCritical:
		return criticalStyle
	case entity.SeverityWarning:
		return warningStyle
	default:
		return infoStyle
	}
}

func severityBadge(s entity.Severity) string {
	return severityStyle(s).Render(strings.ToUpper(string(s)))
}

// RenderConsole renders a report for terminal display
func RenderConsole(r *Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Design Drift Report") + "\n\n")

	if r.Summary.Total == 0 {
		b.WriteString(okStyle.Render("No drift detected.") + "\n")
		if r.Baselined > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("%d accepted drift(s) suppressed by baseline", r.Baselined)) + "\n")
		}
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d drift(s): %s critical, %s warning, %s info\n\n",
		r.Summary.Total,
		criticalStyle.Render(fmt.Sprintf("%d", r.Summary.BySeverity[entity.SeverityCritical])),
		warningStyle.Render(fmt.Sprintf("%d", r.Summary.BySeverity[entity.SeverityWarning])),
		infoStyle.Render(fmt.Sprintf("%d", r.Summary.BySeverity[entity.SeverityInfo])))

	for _, d := range r.Drifts {
		fmt.Fprintf(&b, "%s  %s  %s\n", severityBadge(d.Severity), dimStyle.Render(string(d.Type)), d.Message)
		if loc := d.Source.Location; loc != "" {
			b.WriteString("         " + dimStyle.Render(loc) + "\n")
		}
		for _, s := range d.Details.TokenSuggestions {
			b.WriteString("         " + okStyle.Render(s) + "\n")
		}
		for _, s := range d.Details.Suggestions {
			b.WriteString("         " + dimStyle.Render("hint: "+s) + "\n")
		}
	}

	if r.Baselined > 0 {
		b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("%d accepted drift(s) suppressed by baseline", r.Baselined)) + "\n")
	}
	for _, w := range r.Warnings {
		b.WriteString(warningStyle.Render("warning: "+w) + "\n")
	}

	return b.String()
}
