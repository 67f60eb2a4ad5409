package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs rootCmd with args after putting every flag back to its
// default, since the command tree is shared between tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "eisim", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"simulate", "compare", "thresholds", "regimes", "validate", "serve", "breakeven", "version"}

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, names[name], "command %s should be registered", name)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "simulate")
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := execute(t, "invalid-command")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "eisim dev")
}

func TestSimulate_Flags(t *testing.T) {
	out, err := execute(t, "simulate", "--activity", "BIC_SERVICE", "--turnover", "50000", "--expenses", "10000")
	require.NoError(t, err)

	assert.Contains(t, out, "39 400 €")
	assert.Contains(t, out, "41 250 €")
}

func TestSimulate_English(t *testing.T) {
	out, err := execute(t, "simulate", "-a", "services", "--turnover", "50000", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "€39,400")
}

func TestSimulate_JSON(t *testing.T) {
	out, err := execute(t, "simulate", "-a", "BNC", "-t", "DECLARATION_CONTROLEE",
		"--turnover", "90000", "--expenses", "25000", "--format", "json")
	require.NoError(t, err)

	var batch struct {
		Reports []struct {
			Input struct {
				SocialRegime string `json:"social_regime"`
			} `json:"input"`
			Result struct {
				TaxableProfit string `json:"taxable_profit"`
			} `json:"result"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &batch))
	require.Len(t, batch.Reports, 1)
	assert.Equal(t, "TNS_CLASSIQUE", batch.Reports[0].Input.SocialRegime)
	assert.Equal(t, "65000", batch.Reports[0].Result.TaxableProfit)
}

func TestSimulate_File(t *testing.T) {
	path := writeFile(t, "simulations.yaml", `
name: Comparatif
simulations:
  - name: boutique
    activity_type: BIC_VENTE
    turnover: 120000
  - name: conseil
    activity_type: BIC_SERVICE
    tax_regime: REEL_SIMPLIFIE
    turnover: 60000
    expenses: 20000
`)

	out, err := execute(t, "simulate", "--file", path, "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "boutique,"))
	assert.True(t, strings.HasPrefix(lines[2], "conseil,"))
}

func TestSimulate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown format", []string{"simulate", "--turnover", "1", "--format", "pdf"}, "unsupported format"},
		{"unknown activity", []string{"simulate", "-a", "farming"}, "unknown activity type"},
		{"unavailable regime", []string{"simulate", "-a", "BNC", "-t", "REEL_SIMPLIFIE"}, "not available"},
		{"bad amount", []string{"simulate", "--turnover", "lots"}, "invalid turnover"},
		{"negative amount", []string{"simulate", "--expenses=-5"}, "expenses cannot be negative"},
		{"huge amount", []string{"simulate", "--turnover", "1e50000000"}, "turnover is out of range"},
		{"missing file", []string{"simulate", "--file", "missing.yaml"}, "failed to read file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "-a", "BIC_SERVICE", "--turnover", "50000", "--expenses", "40000", "--coherent-only")
	require.NoError(t, err)

	assert.Contains(t, out, "COMPARAISON DES RÉGIMES")
	assert.Contains(t, out, "45 500 €")
	assert.Contains(t, out, "6 100 €")
}

func TestCompare_Formats(t *testing.T) {
	out, err := execute(t, "compare", "--turnover", "50000", "--expenses", "10000", "--format", "csv")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 7)

	out, err = execute(t, "compare", "--turnover", "50000", "--expenses", "40000", "--format", "json")
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "MICRO + TNS_CLASSIQUE", doc["bestScenarioName"])

	out, err = execute(t, "compare", "--turnover", "50000", "--format", "compact")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Base: MICRO + MICRO_SOCIAL"))

	_, err = execute(t, "compare", "--format", "xml")
	assert.Error(t, err)
}

func TestThresholds(t *testing.T) {
	out, err := execute(t, "thresholds", "--activity", "BIC_VENTE")
	require.NoError(t, err)
	assert.Contains(t, out, "Vente de marchandises")
	assert.Contains(t, out, "188 700 €")
	assert.Contains(t, out, "93 500 €")
	assert.NotContains(t, out, "Profession libérale")

	out, err = execute(t, "thresholds", "--format", "json")
	require.NoError(t, err)
	var doc map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc, 3)
	assert.Equal(t, "77 700 €", doc["BNC"]["micro_ceiling"])
}

func TestThresholds_RegulatoryOverride(t *testing.T) {
	path := writeFile(t, "regulatory.yaml", "micro_ceilings:\n  bic_vente: 203100\n")

	out, err := execute(t, "thresholds", "-a", "BIC_VENTE", "--regulatory-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "203 100 €")

	bad := writeFile(t, "bad.yaml", "standard_social_rate: 3\n")
	_, err = execute(t, "thresholds", "--regulatory-config", bad)
	assert.Error(t, err)
}

func TestRegimes(t *testing.T) {
	out, err := execute(t, "regimes", "--activity", "BNC")
	require.NoError(t, err)
	assert.Contains(t, out, "[DECLARATION_CONTROLEE]")
	assert.NotContains(t, out, "[REEL_SIMPLIFIE]")
}

func TestValidate(t *testing.T) {
	valid := writeFile(t, "ok.yaml", "simulations:\n  - activity_type: BNC\n    turnover: 30000\n")
	out, err := execute(t, "validate", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (1 simulations)")

	invalid := writeFile(t, "ko.yaml", "simulations:\n  - activity_type: BNC\n    tax_regime: REEL_NORMAL\n")
	_, err = execute(t, "validate", invalid)
	assert.Error(t, err)

	_, err = execute(t, "validate")
	assert.Error(t, err)
}

func TestBreakeven(t *testing.T) {
	out, err := execute(t, "breakeven", "-a", "BIC_SERVICE", "--turnover", "50000", "--alt-social", "TNS_CLASSIQUE")
	require.NoError(t, err)
	assert.Contains(t, out, "POINT MORT")
	assert.Contains(t, out, "26 444 €")

	out, err = execute(t, "breakeven", "--solve", "net", "--target-net", "39400", "--format", "json")
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, true, doc["success"])
}

func TestBreakeven_Errors(t *testing.T) {
	_, err := execute(t, "breakeven", "--turnover", "50000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--alt-tax or --alt-social is required")

	_, err = execute(t, "breakeven", "--turnover", "50000", "--alt-tax", "REEL_SIMPLIFIE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no break-even point in range")

	_, err = execute(t, "breakeven", "-a", "BNC", "--turnover", "50000", "--alt-tax", "REEL_NORMAL")
	assert.Error(t, err)

	_, err = execute(t, "breakeven", "--solve", "age")
	assert.Error(t, err)
}
