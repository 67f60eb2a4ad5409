package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rgehrsitz/eisim/internal/calculation"
	"github.com/rgehrsitz/eisim/internal/compare"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/thresholds"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare every regime combination available to an activity",
	Long: `Compare the net income of every tax regime available to the activity
combined with each social regime, against the configuration given by the
flags. Micro-social paired with an actual tax regime is shown but flagged.

Examples:
  # Which regimes suit a services activity with heavy expenses?
  eisim compare --activity BIC_SERVICE --turnover 50000 --expenses 40000

  # Only the usual tax/social pairings, as CSV
  eisim compare -a BIC_VENTE --turnover 120000 --expenses 70000 --coherent-only --format csv`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	input, err := inputFromFlags(cmd)
	if err != nil {
		return err
	}
	coherentOnly, _ := cmd.Flags().GetBool("coherent-only")
	outputFormat, _ := cmd.Flags().GetString("format")

	lang := app.settings.Language
	tr := i18n.New(lang)
	money := thresholds.NewFormatter(app.thresholds, language.Make(lang))

	engine := calculation.NewCalculationEngineWithThresholds(app.thresholds)
	engine.SetLogger(app.logger.Sugar())

	comparisonSet, err := compare.NewCompareEngine(engine).Compare(cmd.Context(), compare.CompareOptions{
		Base:         input.Configuration,
		Turnover:     input.Turnover,
		Expenses:     input.Expenses,
		CoherentOnly: coherentOnly,
		Translator:   tr,
		Money:        money.FormatCurrency,
	})
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(outputFormat) {
	case "csv":
		formatter := &compare.CSVFormatter{}
		text, err := formatter.Format(comparisonSet)
		if err != nil {
			return fmt.Errorf("failed to format CSV: %w", err)
		}
		fmt.Fprint(out, text)

	case "json":
		formatter := &compare.JSONFormatter{Pretty: true}
		text, err := formatter.Format(comparisonSet)
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprintln(out, text)

	case "compact":
		formatter := &compare.TableFormatter{Translator: tr, Formatter: money}
		fmt.Fprintln(out, formatter.FormatCompact(comparisonSet))

	case "table", "console", "":
		formatter := &compare.TableFormatter{Translator: tr, Formatter: money}
		fmt.Fprint(out, formatter.Format(comparisonSet))

	default:
		return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", outputFormat)
	}
	return nil
}

func init() {
	addConfigurationFlags(compareCmd)
	compareCmd.Flags().Bool("coherent-only", false, "Skip micro-social paired with an actual tax regime")
	compareCmd.Flags().StringP("format", "o", "table", "Output format (table, compact, csv, json)")

	rootCmd.AddCommand(compareCmd)
}
