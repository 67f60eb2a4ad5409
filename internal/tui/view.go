package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/eisim/internal/tui/components"
)

// View renders the current state of the simulator
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderForm(),
		m.renderResult(),
		m.renderAlerts(),
		m.renderConsequences(),
	)
	return m.renderApp(content)
}

// renderApp wraps content with title bar and help line
func (m Model) renderApp(content string) string {
	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		"",
		m.help.View(m.keys),
	))
}

// renderTitleBar renders the title and the ceilings of the current activity
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render(m.label("ui.title"))

	th := m.report.Thresholds
	subtitle := SubtitleStyle.Render(fmt.Sprintf("%s: %s  •  %s: %s / %s",
		m.label("threshold.micro_ceiling"), th.MicroCeiling,
		m.label("threshold.vat_franchise"), th.VatFranchise.Base, th.VatFranchise.Upper))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderForm renders one row per field, the focused one highlighted
func (m Model) renderForm() string {
	rows := make([]string, 0, int(fieldCount))
	for f := FieldActivity; f < fieldCount; f++ {
		rows = append(rows, m.renderField(f))
	}
	return BorderStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderField(f Field) string {
	focused := f == m.focus

	marker := "  "
	if focused {
		marker = "▸ "
	}
	label := FieldLabelStyle.Render(marker + m.label(f.LabelKey()))

	var value string
	switch f {
	case FieldTurnover:
		value = m.turnoverInput.View()
	case FieldExpenses:
		value = m.expensesInput.View()
	default:
		value = m.selectorValue(f)
		if focused {
			value = FocusedFieldStyle.Render("‹ " + value + " ›")
		} else {
			value = FieldValueStyle.Render(value)
		}
	}

	if m.invalid[f] {
		value += "  " + ErrorStyle.Render(m.label("ui.invalid_amount"))
	}
	return label + value
}

func (m Model) selectorValue(f Field) string {
	switch f {
	case FieldActivity:
		return m.label("activity." + string(m.config.ActivityType))
	case FieldTaxRegime:
		return m.label("tax_regime." + string(m.config.TaxRegime))
	case FieldSocialRegime:
		return m.label("social_regime." + string(m.config.SocialRegime))
	case FieldVatRegime:
		return m.label("vat_regime." + string(m.config.VatRegime))
	}
	return ""
}

// renderResult renders the figures, or a prompt while turnover is zero
func (m Model) renderResult() string {
	if m.report.Empty {
		return SubtitleStyle.Render(m.label("result.empty"))
	}

	result := m.report.Result
	money := m.reporter.Formatter.FormatCurrency

	profit := components.NewMetricCard(m.label("result.taxable_profit"), money(result.TaxableProfit))
	switch {
	case result.Details.FlatRateDeduction != nil:
		profit.WithNote(m.label("result.flat_rate_deduction") + " " + money(*result.Details.FlatRateDeduction))
	case result.Details.DeductedExpenses != nil:
		profit.WithNote(m.label("result.deducted_expenses") + " " + money(*result.Details.DeductedExpenses))
	}

	contributions := components.NewMetricCard(m.label("result.social_contributions"), money(result.SocialContributions)).
		WithNote(fmt.Sprintf("%s · %s",
			m.reporter.Formatter.FormatRate(result.ContributionRate),
			m.label("contribution_base."+string(result.ContributionBase))))

	net := components.NewMetricCard(m.label("result.net_income"), money(result.NetIncomeBeforeTax))
	if result.NetIncomeBeforeTax.IsPositive() {
		net.WithTone(components.TonePositive)
	} else {
		net.WithTone(components.ToneWarning)
	}

	return components.CardRows(m.width, profit, contributions, net)
}

func (m Model) renderAlerts() string {
	items := make([]components.RuleItem, 0, len(m.report.Alerts))
	for _, a := range m.report.Alerts {
		items = append(items, components.RuleItem{Severity: a.Severity, Title: a.Message})
	}
	return components.RuleList{
		Title: m.label("report.alerts"),
		Items: items,
		Empty: m.label("report.no_alerts"),
	}.Render()
}

func (m Model) renderConsequences() string {
	items := make([]components.RuleItem, 0, len(m.report.Consequences))
	for _, c := range m.report.Consequences {
		items = append(items, components.RuleItem{Severity: c.Severity, Title: c.Title, Detail: c.Description})
	}
	return components.RuleList{
		Title: m.label("report.consequences"),
		Items: items,
	}.Render()
}

// renderError renders an error message
func (m Model) renderError() string {
	return ErrorStyle.Render(fmt.Sprintf("%s\n\n%s", m.err.Error(), m.label("ui.help.quit")+": esc"))
}
