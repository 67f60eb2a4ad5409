package output

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// CSVFormatter writes one row per simulation.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(batch *Batch) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Name", "ActivityType", "TaxRegime", "SocialRegime", "VatRegime",
		"Turnover", "Expenses", "TaxableProfit", "SocialContributions",
		"ContributionBase", "ContributionRate", "NetIncomeBeforeTax", "Alerts",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range batch.Reports {
		alerts := make([]string, 0, len(r.Alerts))
		for _, a := range r.Alerts {
			alerts = append(alerts, a.ID)
		}
		row := []string{
			r.Name,
			string(r.Input.ActivityType),
			string(r.Input.TaxRegime),
			string(r.Input.SocialRegime),
			string(r.Input.VatRegime),
			r.Input.Turnover.StringFixed(2),
			r.Input.Expenses.StringFixed(2),
			r.Result.TaxableProfit.StringFixed(2),
			r.Result.SocialContributions.StringFixed(2),
			string(r.Result.ContributionBase),
			r.Result.ContributionRate.String(),
			r.Result.NetIncomeBeforeTax.StringFixed(2),
			strings.Join(alerts, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
