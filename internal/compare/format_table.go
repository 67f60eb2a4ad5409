package compare

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/thresholds"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct {
	Translator i18n.Translator
	Formatter  *thresholds.Formatter
}

func (tf *TableFormatter) label(key string) string {
	if tf.Translator == nil {
		tf.Translator = i18n.New(i18n.DefaultLanguage)
	}
	return tf.Translator.Translate(key, nil)
}

func (tf *TableFormatter) money(d decimal.Decimal) string {
	if tf.Formatter == nil {
		return thresholds.FormatCurrency(d)
	}
	return tf.Formatter.FormatCurrency(d)
}

// Format generates a formatted table comparing regime combinations
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString(strings.ToUpper(tf.label("compare.title")) + "\n")
	sb.WriteString(strings.Repeat("=", 92) + "\n")
	sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("ui.activity"), tf.label("activity."+string(compSet.ActivityType))))
	sb.WriteString(fmt.Sprintf("%s: %s   %s: %s\n",
		tf.label("result.turnover"), tf.money(compSet.Turnover),
		tf.label("result.expenses"), tf.money(compSet.Expenses)))
	sb.WriteString("\n")

	nameWidth := 40
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-4s %-*s %*s %*s %*s\n",
		"#",
		nameWidth, "",
		numWidth, tf.truncate(tf.label("result.taxable_profit"), numWidth),
		numWidth, tf.truncate(tf.label("result.social_contributions"), numWidth),
		numWidth, tf.truncate(tf.label("result.net_income"), numWidth)))
	sb.WriteString(strings.Repeat("-", 92) + "\n")

	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 92) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 92) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("  %s: %s%s (%s%%)\n",
				alt.Description,
				tf.deltaSymbol(alt.IncomeDiffFromBase),
				tf.money(alt.IncomeDiffFromBase),
				alt.IncomePctFromBase.StringFixed(1)))
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
	}

	return sb.String()
}

// formatRow formats a single combination row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Description
	if isBase {
		name = "> " + name
	}
	if !result.Consistent {
		name += " (!)"
	}

	return fmt.Sprintf("%-4d %s %*s %*s %*s\n",
		result.Rank,
		padRight(tf.truncate(name, nameWidth), nameWidth),
		numWidth, tf.money(result.TaxableProfit),
		numWidth, tf.money(result.SocialContributions),
		numWidth, tf.money(result.NetIncome))
}

// deltaSymbol returns "+" for gains; losses already carry their sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// FormatCompact creates a compact single-line summary of the deltas
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.IncomeDiffFromBase.IsZero() {
			change = tf.deltaSymbol(alt.IncomeDiffFromBase) + tf.money(alt.IncomeDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
