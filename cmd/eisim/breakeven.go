package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/rgehrsitz/eisim/internal/breakeven"
	"github.com/rgehrsitz/eisim/internal/calculation"
	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/thresholds"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Find the amount at which another regime becomes worthwhile",
	Long: `Search by bisection for one of:

  expenses    expenses at which the alternative regimes earn as much as the
              configuration given by the flags (turnover fixed)
  turnover    turnover at which they earn as much (expenses fixed)
  net         turnover the configuration needs to reach --target-net

Examples:
  # From which expenses level does TNS beat micro-social?
  eisim breakeven -a BIC_SERVICE --turnover 50000 --alt-social TNS_CLASSIQUE

  # Turnover needed for 30 000 € net under the micro regimes
  eisim breakeven --solve net --target-net 30000`,
	Args: cobra.NoArgs,
	RunE: runBreakeven,
}

func runBreakeven(cmd *cobra.Command, args []string) error {
	input, err := inputFromFlags(cmd)
	if err != nil {
		return err
	}

	solve, _ := cmd.Flags().GetString("solve")
	target, err := breakeven.ParseTarget(solve)
	if err != nil {
		return err
	}

	req := breakeven.Request{
		Target:   target,
		Base:     input.Configuration,
		Turnover: input.Turnover,
		Expenses: input.Expenses,
	}

	if target == breakeven.TargetNetIncome {
		net, err := amountFlag(cmd, "target-net")
		if err != nil {
			return err
		}
		req.Constraints.TargetNet = &net
	} else {
		alt, err := alternativeFromFlags(cmd, input.Configuration, target)
		if err != nil {
			return err
		}
		req.Alternative = &alt
	}

	if v, _ := cmd.Flags().GetString("min"); v != "" {
		lo, err := amountFlag(cmd, "min")
		if err != nil {
			return err
		}
		req.Constraints.MinAmount = &lo
	}
	if v, _ := cmd.Flags().GetString("max"); v != "" {
		hi, err := amountFlag(cmd, "max")
		if err != nil {
			return err
		}
		req.Constraints.MaxAmount = &hi
	}

	engine := calculation.NewCalculationEngineWithThresholds(app.thresholds)
	engine.SetLogger(app.logger.Sugar())

	result, err := breakeven.NewDefaultSolver(engine).Solve(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("break-even search failed: %w", err)
	}
	app.logger.Debug("break-even solved",
		zap.String("target", string(target)),
		zap.Int("iterations", result.Iterations),
		zap.String("amount", result.Amount.String()),
	)

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "json":
		text, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprintln(out, text)
	case "table", "console", "":
		lang := app.settings.Language
		formatter := &breakeven.TableFormatter{
			Translator: i18n.New(lang),
			Formatter:  thresholds.NewFormatter(app.thresholds, language.Make(lang)),
		}
		fmt.Fprint(out, formatter.Format(result))
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
	}
	return nil
}

// alternativeFromFlags starts from base and applies --alt-tax and
// --alt-social. A new tax regime brings its usual social regime unless
// --alt-social says otherwise.
func alternativeFromFlags(cmd *cobra.Command, base domain.Configuration, target breakeven.Target) (domain.Configuration, error) {
	alt := base
	taxFlag, _ := cmd.Flags().GetString("alt-tax")
	socialFlag, _ := cmd.Flags().GetString("alt-social")
	if taxFlag == "" && socialFlag == "" {
		return alt, fmt.Errorf("--alt-tax or --alt-social is required to solve for %s", target)
	}

	if taxFlag != "" {
		tax, err := domain.ParseTaxRegime(taxFlag)
		if err != nil {
			return alt, err
		}
		alt.TaxRegime = tax
		alt.SocialRegime = domain.DefaultSocialRegimeFor(tax)
	}
	if socialFlag != "" {
		social, err := domain.ParseSocialRegime(socialFlag)
		if err != nil {
			return alt, err
		}
		alt.SocialRegime = social
	}
	if err := config.ValidateConfiguration(alt); err != nil {
		return alt, fmt.Errorf("alternative: %w", err)
	}
	return alt, nil
}

func init() {
	addConfigurationFlags(breakevenCmd)
	breakevenCmd.Flags().String("solve", "expenses", "Amount to solve for (expenses, turnover, net)")
	breakevenCmd.Flags().String("alt-tax", "", "Tax regime of the alternative")
	breakevenCmd.Flags().String("alt-social", "", "Social regime of the alternative")
	breakevenCmd.Flags().String("target-net", "0", "Net income to reach when solving for net")
	breakevenCmd.Flags().String("min", "", "Lower bound of the search")
	breakevenCmd.Flags().String("max", "", "Upper bound of the search")
	breakevenCmd.Flags().StringP("format", "o", "table", "Output format (table, json)")

	rootCmd.AddCommand(breakevenCmd)
}
