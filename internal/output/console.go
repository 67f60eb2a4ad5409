package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/eisim/internal/domain"
)

// ConsoleFormatter renders a plain-text report for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(batch *Batch) ([]byte, error) {
	var buf bytes.Buffer

	if batch.Name != "" {
		fmt.Fprintln(&buf, strings.Repeat("=", 72))
		fmt.Fprintln(&buf, strings.ToUpper(batch.Name))
		fmt.Fprintln(&buf, strings.Repeat("=", 72))
		fmt.Fprintln(&buf)
	}

	for i, report := range batch.Reports {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		writeConsoleReport(&buf, batch, report)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%s:\n", strings.ToUpper(batch.Label("assumptions.title")))
	for _, key := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", batch.Label(key))
	}

	return buf.Bytes(), nil
}

func writeConsoleReport(w io.Writer, b *Batch, r *Report) {
	in := r.Input

	fmt.Fprintln(w, r.Name)
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "%s:\n", strings.ToUpper(b.Label("report.configuration")))
	line(w, b.Label("ui.activity"), b.Label("activity."+string(in.ActivityType)))
	line(w, b.Label("ui.tax_regime"), b.Label("tax_regime."+string(in.TaxRegime)))
	line(w, b.Label("ui.social_regime"), b.Label("social_regime."+string(in.SocialRegime)))
	line(w, b.Label("ui.vat_regime"), b.Label("vat_regime."+string(in.VatRegime)))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s:\n", strings.ToUpper(b.Label("result.title")))
	if r.Empty {
		fmt.Fprintf(w, "  %s\n", b.Label("result.empty"))
	} else {
		res := r.Result
		line(w, b.Label("result.turnover"), b.Money(in.Turnover))
		if res.Details.DeductedExpenses != nil {
			line(w, b.Label("result.deducted_expenses"), b.Money(*res.Details.DeductedExpenses))
		}
		if res.Details.FlatRateDeduction != nil {
			line(w, b.Label("result.flat_rate_deduction"), b.Money(*res.Details.FlatRateDeduction))
		}
		line(w, b.Label("result.taxable_profit"), b.Money(res.TaxableProfit))
		line(w, b.Label("result.social_contributions"), fmt.Sprintf("%s (%s, %s)",
			b.Money(res.SocialContributions), b.Rate(res.ContributionRate), b.Label("contribution_base."+string(res.ContributionBase))))
		line(w, b.Label("result.net_income"), b.Money(res.NetIncomeBeforeTax))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s:\n", strings.ToUpper(b.Label("report.alerts")))
	if len(r.Alerts) == 0 {
		fmt.Fprintf(w, "  %s\n", b.Label("report.no_alerts"))
	}
	for _, a := range r.Alerts {
		fmt.Fprintf(w, "  %s %s\n", severityTag(b, a.Severity), a.Message)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s:\n", strings.ToUpper(b.Label("report.consequences")))
	for _, c := range r.Consequences {
		fmt.Fprintf(w, "  %s %s\n", severityTag(b, c.Severity), c.Title)
		fmt.Fprintf(w, "      %s\n", c.Description)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s:\n", strings.ToUpper(b.Label("report.thresholds")))
	line(w, b.Label("threshold.micro_ceiling"), r.Thresholds.MicroCeiling)
	line(w, b.Label("threshold.vat_franchise_base"), r.Thresholds.VatFranchise.Base)
	line(w, b.Label("threshold.vat_majored"), r.Thresholds.VatFranchise.Upper)
	line(w, b.Label("threshold.vat_actual"), r.Thresholds.VatActualSimplified)
}

func line(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-32s %s\n", label+":", value)
}

func severityTag(b *Batch, s domain.Severity) string {
	return "[" + b.Label("severity."+string(s)) + "]"
}
