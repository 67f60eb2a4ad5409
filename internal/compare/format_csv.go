package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

type csvColumn struct {
	header string
	value  func(r *ComparisonResult, kind string) string
}

var csvColumns = []csvColumn{
	{"Scenario", func(r *ComparisonResult, _ string) string { return r.ScenarioName }},
	{"Type", func(_ *ComparisonResult, kind string) string { return kind }},
	{"Rank", func(r *ComparisonResult, _ string) string { return strconv.Itoa(r.Rank) }},
	{"Tax Regime", func(r *ComparisonResult, _ string) string { return string(r.Configuration.TaxRegime) }},
	{"Social Regime", func(r *ComparisonResult, _ string) string { return string(r.Configuration.SocialRegime) }},
	{"Consistent", func(r *ComparisonResult, _ string) string { return strconv.FormatBool(r.Consistent) }},
	{"Taxable Profit", func(r *ComparisonResult, _ string) string { return r.TaxableProfit.StringFixed(2) }},
	{"Social Contributions", func(r *ComparisonResult, _ string) string { return r.SocialContributions.StringFixed(2) }},
	{"Contribution Rate", func(r *ComparisonResult, _ string) string { return r.ContributionRate.String() }},
	{"Net Income", func(r *ComparisonResult, _ string) string { return r.NetIncome.StringFixed(2) }},
	{"Income Diff from Base", func(r *ComparisonResult, _ string) string { return r.IncomeDiffFromBase.StringFixed(2) }},
	{"Income % Change", func(r *ComparisonResult, _ string) string { return r.IncomePctFromBase.StringFixed(2) }},
	{"Contribution Diff from Base", func(r *ComparisonResult, _ string) string { return r.ContributionDiffFromBase.StringFixed(2) }},
	{"Alerts", func(r *ComparisonResult, _ string) string { return strings.Join(r.AlertIDs, ";") }},
}

// CSVFormatter writes the base scenario then each alternative, one row each.
type CSVFormatter struct{}

func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	records := make([][]string, 0, len(compSet.AlternativeResults)+2)

	header := make([]string, len(csvColumns))
	for i, col := range csvColumns {
		header[i] = col.header
	}
	records = append(records, header, row(compSet.BaseResult, "base"))
	for i := range compSet.AlternativeResults {
		records = append(records, row(&compSet.AlternativeResults[i], "alternative"))
	}

	var sb strings.Builder
	if err := csv.NewWriter(&sb).WriteAll(records); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func row(r *ComparisonResult, kind string) []string {
	out := make([]string, len(csvColumns))
	for i, col := range csvColumns {
		out[i] = col.value(r, kind)
	}
	return out
}
