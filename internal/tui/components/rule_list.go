package components

import (
	"strings"

	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/tui/tuistyles"
)

// RuleItem is one line of a RuleList: an alert message or a consequence
// title with its description.
type RuleItem struct {
	Severity domain.Severity
	Title    string
	Detail   string
}

// RuleList renders severity-tagged items one per line.
type RuleList struct {
	Title string
	Items []RuleItem
	Empty string
}

// Render returns the list, or the Empty text when there are no items.
func (l RuleList) Render() string {
	var sb strings.Builder
	sb.WriteString(tuistyles.SectionStyle.Render(l.Title))
	sb.WriteString("\n")

	if len(l.Items) == 0 {
		if l.Empty != "" {
			sb.WriteString(tuistyles.SubtitleStyle.Render("  " + l.Empty))
			sb.WriteString("\n")
		}
		return sb.String()
	}

	for _, item := range l.Items {
		style := tuistyles.SeverityStyle(item.Severity)
		sb.WriteString(style.Render(tuistyles.SeverityIcon(item.Severity) + " " + item.Title))
		sb.WriteString("\n")
		if item.Detail != "" {
			sb.WriteString(tuistyles.SubtitleStyle.Render("    " + item.Detail))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
