package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/eisim/internal/tui/tuistyles"
)

// CardWidth is the outer width of a metric card, border included.
const CardWidth = 28

// Tone colours the figure of a card.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneWarning
)

// MetricCard shows one amount of the simulation result
type MetricCard struct {
	Label string
	Value string
	Note  string
	Tone  Tone
}

// NewMetricCard creates a neutral card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{Label: label, Value: value}
}

// WithNote adds a muted line under the value
func (c *MetricCard) WithNote(note string) *MetricCard {
	c.Note = note
	return c
}

// WithTone sets the colour of the value
func (c *MetricCard) WithTone(t Tone) *MetricCard {
	c.Tone = t
	return c
}

func (c *MetricCard) valueStyle() lipgloss.Style {
	switch c.Tone {
	case TonePositive:
		return tuistyles.MetricPositiveStyle
	case ToneWarning:
		return tuistyles.MetricValueStyle.Foreground(tuistyles.ColorWarning)
	default:
		return tuistyles.MetricValueStyle
	}
}

// Render returns the bordered card
func (c *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(c.Label) + "\n" + c.valueStyle().Render(c.Value)
	if c.Note != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(c.Note)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(CardWidth - 2).
		Render(content)
}

// CardRows lays cards out left to right, starting a new row whenever the
// next card would overflow width. A width below one card still gets one
// card per row.
func CardRows(width int, cards ...*MetricCard) string {
	perRow := width / CardWidth
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, c.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
