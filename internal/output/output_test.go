package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func servicesInput(turnover, expenses int64) domain.SimulationInput {
	return domain.SimulationInput{
		Configuration: domain.DefaultConfiguration(),
		Turnover:      decimal.NewFromInt(turnover),
		Expenses:      decimal.NewFromInt(expenses),
	}
}

func buildTestBatch(lang string) *Batch {
	r := NewReporter(domain.DefaultThresholds(), lang)
	return r.NewBatch("Test", r.Build("Micro services", servicesInput(50000, 10000)))
}

func TestReporter_Build(t *testing.T) {
	r := NewReporter(domain.DefaultThresholds(), "fr")

	report := r.Build("Micro services", servicesInput(50000, 10000))

	assert.False(t, report.Empty)
	assert.True(t, report.Result.NetIncomeBeforeTax.Equal(decimal.NewFromInt(39400)))
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "vat_franchise_majore_exceeded", report.Alerts[0].ID)
	assert.Equal(t, "41 250 €", report.Alerts[0].Ceiling)
	assert.Contains(t, report.Alerts[0].Message, "41 250 €")
	assert.Equal(t, "77 700 €", report.Thresholds.MicroCeiling)

	require.NotEmpty(t, report.Consequences)
	assert.Equal(t, "flat_rate_deduction", report.Consequences[0].ID)
	assert.Equal(t, "Abattement forfaitaire", report.Consequences[0].Title)
}

func TestReporter_AlertsSortedBySeverity(t *testing.T) {
	r := NewReporter(domain.DefaultThresholds(), "en")
	cfg := domain.NewConfiguration(domain.ActivityServices, domain.TaxRegimeFlatRate, domain.SocialRegimeFlatRate, domain.VatFranchise)

	alerts := r.Alerts(cfg, decimal.NewFromInt(77000))

	require.Len(t, alerts, 2)
	assert.Equal(t, domain.SeverityError, alerts[0].Severity)
	assert.Equal(t, "micro_ceiling_approaching", alerts[1].ID)
	assert.Contains(t, alerts[1].Message, "€77,700")
}

func TestReporter_EmptyAtZeroTurnover(t *testing.T) {
	r := NewReporter(domain.DefaultThresholds(), "fr")

	report := r.Build("vide", servicesInput(0, 0))

	assert.True(t, report.Empty)
	assert.Empty(t, report.Alerts)
}

func TestReporter_BuildFile(t *testing.T) {
	file := &config.SimulationFile{
		Name: "Fichier",
		Simulations: []config.SimulationSpec{
			{Name: "a", SimulationInput: servicesInput(10000, 0)},
			{Name: "b", SimulationInput: servicesInput(20000, 0)},
		},
	}

	batch := NewReporter(domain.DefaultThresholds(), "fr").BuildFile(file)

	assert.Equal(t, "Fichier", batch.Name)
	require.Len(t, batch.Reports, 2)
	assert.Equal(t, "b", batch.Reports[1].Name)
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "yaml", "csv", "html"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("non-existent"))
	assert.Equal(t, []string{"console", "csv", "html", "json", "yaml"}, FormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestBatch("fr"))
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Micro services")
	assert.Contains(t, text, "Revenu net avant impôt")
	assert.Contains(t, text, "39 400 €")
	assert.Contains(t, text, "[Incohérence]")
	assert.Contains(t, text, "HYPOTHÈSES")
}

func TestConsoleFormatter_EmptyResult(t *testing.T) {
	r := NewReporter(domain.DefaultThresholds(), "en")
	batch := r.NewBatch("", r.Build("zero", servicesInput(0, 0)))

	out, err := ConsoleFormatter{}.Format(batch)
	require.NoError(t, err)

	assert.Contains(t, string(out), "Enter a turnover to run the simulation.")
	assert.NotContains(t, string(out), "Net income before tax")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestBatch("fr"))
	require.NoError(t, err)

	var decoded struct {
		Name     string `json:"name"`
		Language string `json:"language"`
		Reports  []struct {
			Input struct {
				ActivityType string `json:"activity_type"`
			} `json:"input"`
			Result struct {
				NetIncomeBeforeTax decimal.Decimal `json:"net_income_before_tax"`
			} `json:"result"`
			Alerts []AlertView `json:"alerts"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "fr", decoded.Language)
	require.Len(t, decoded.Reports, 1)
	assert.Equal(t, "BIC_SERVICE", decoded.Reports[0].Input.ActivityType)
	assert.True(t, decoded.Reports[0].Result.NetIncomeBeforeTax.Equal(decimal.NewFromInt(39400)))
	assert.Equal(t, domain.SeverityError, decoded.Reports[0].Alerts[0].Severity)
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestBatch("en"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "en", decoded["language"])
	assert.Contains(t, string(out), "activity_type: BIC_SERVICE")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestBatch("fr"))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Name", records[0][0])
	assert.Equal(t, "Micro services", records[1][0])
	assert.Equal(t, "39400.00", records[1][11])
	assert.Equal(t, "vat_franchise_majore_exceeded", records[1][12])
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestBatch("fr"))
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `<html lang="fr">`)
	assert.Contains(t, html, "Prestations de services (BIC)")
	assert.Contains(t, html, "39 400 €")
	assert.Contains(t, html, `class="badge error"`)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, buildTestBatch("fr"), "pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestFormatterFunc(t *testing.T) {
	var received *Batch
	f := FormatterFunc{ID: "test-formatter", F: func(b *Batch) ([]byte, error) {
		received = b
		return []byte("test output"), nil
	}}
	batch := buildTestBatch("fr")

	out, err := f.Format(batch)

	assert.NoError(t, err)
	assert.Equal(t, "test-formatter", f.Name())
	assert.Same(t, batch, received)
	assert.Equal(t, []byte("test output"), out)
}

func TestWriteFormatted(t *testing.T) {
	t.Chdir(t.TempDir())
	f := FormatterFunc{ID: "txt", F: func(*Batch) ([]byte, error) { return []byte("content"), nil }}

	filename, err := WriteFormatted(f, buildTestBatch("fr"), "txt")
	require.NoError(t, err)

	assert.Contains(t, filename, "eisim_report_")
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))

	failing := FormatterFunc{ID: "err", F: func(*Batch) ([]byte, error) { return nil, fmt.Errorf("formatter error") }}
	filename, err = WriteFormatted(failing, buildTestBatch("fr"), "txt")
	assert.Error(t, err)
	assert.Empty(t, filename)
}
