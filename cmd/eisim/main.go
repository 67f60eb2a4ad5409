package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/logging"
	"github.com/rgehrsitz/eisim/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// appContext is what every command needs once settings are resolved.
type appContext struct {
	settings   *config.Settings
	logger     *zap.Logger
	thresholds domain.Thresholds
}

var app appContext

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "eisim %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "eisim",
	Short: "French sole-proprietorship regime simulator",
	Long: `Simulate the taxable profit, social contributions and net income of an
entreprise individuelle under each tax, social and VAT regime, with the
consequences of the chosen regimes and alerts on turnover ceilings.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// setup resolves settings, flags overriding file and environment, then
// builds the logger and loads the regulatory table.
func setup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		settings.LogLevel = level
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		settings.Language = i18n.MatchLanguage(lang)
	}
	if regulatory, _ := cmd.Flags().GetString("regulatory-config"); regulatory != "" {
		settings.RegulatoryFile = regulatory
	}

	logger, err := logging.New(logging.Options{Level: settings.LogLevel, Format: settings.LogFormat})
	if err != nil {
		return err
	}

	th, err := config.NewInputParser().LoadRegulatory(settings.RegulatoryFile)
	if err != nil {
		return fmt.Errorf("failed to load regulatory config: %w", err)
	}

	logger.Debug("settings resolved",
		zap.String("language", settings.Language),
		zap.String("regulatory_file", settings.RegulatoryFile),
		zap.Int("data_year", th.Metadata.DataYear),
	)

	app = appContext{settings: settings, logger: logger, thresholds: th}
	return nil
}

// newReporter builds a reporter over the loaded table in the chosen
// language, logging through zap.
func newReporter() *output.Reporter {
	r := output.NewReporter(app.thresholds, app.settings.Language)
	r.Engine.SetLogger(app.logger.Sugar())
	r.Engine.Debug = strings.EqualFold(app.settings.LogLevel, "debug")
	return r
}

// addConfigurationFlags registers the flags describing one simulation.
func addConfigurationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("activity", "a", string(domain.ActivityServices), "Activity type (BIC_VENTE, BIC_SERVICE, BNC)")
	cmd.Flags().StringP("tax", "t", "", "Tax regime (MICRO, REEL_SIMPLIFIE, REEL_NORMAL, DECLARATION_CONTROLEE; default MICRO)")
	cmd.Flags().StringP("social", "s", "", "Social regime (MICRO_SOCIAL, TNS_CLASSIQUE; default follows the tax regime)")
	cmd.Flags().String("vat", "", "VAT regime (FRANCHISE, REEL_SIMPLIFIE_TVA, REEL_NORMAL_TVA; default FRANCHISE)")
	cmd.Flags().String("turnover", "0", "Annual turnover in euros")
	cmd.Flags().String("expenses", "0", "Annual expenses in euros")
}

// inputFromFlags builds and validates a simulation from the configuration
// flags. Regimes left out take the same defaults as in a simulation file.
func inputFromFlags(cmd *cobra.Command) (domain.SimulationInput, error) {
	var input domain.SimulationInput

	activity, _ := cmd.Flags().GetString("activity")
	a, err := domain.ParseActivityType(activity)
	if err != nil {
		return input, err
	}
	input.ActivityType = a

	if v, _ := cmd.Flags().GetString("tax"); v != "" {
		if input.TaxRegime, err = domain.ParseTaxRegime(v); err != nil {
			return input, err
		}
	}
	if v, _ := cmd.Flags().GetString("social"); v != "" {
		if input.SocialRegime, err = domain.ParseSocialRegime(v); err != nil {
			return input, err
		}
	}
	if v, _ := cmd.Flags().GetString("vat"); v != "" {
		if input.VatRegime, err = domain.ParseVatRegime(v); err != nil {
			return input, err
		}
	}
	input.Configuration = config.WithDefaultRegimes(input.Configuration)

	if input.Turnover, err = amountFlag(cmd, "turnover"); err != nil {
		return input, err
	}
	if input.Expenses, err = amountFlag(cmd, "expenses"); err != nil {
		return input, err
	}

	if err := config.NewInputParser().ValidateInput(input); err != nil {
		return input, err
	}
	return input, nil
}

func amountFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, " ", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if err := config.CheckAmount(name, amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Settings file (default: ./eisim.yaml if it exists)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("lang", "", "Output language (fr, en)")
	rootCmd.PersistentFlags().String("regulatory-config", "", "Regulatory table overriding the built-in thresholds")

	rootCmd.AddCommand(versionCmd())
}

func main() {
	err := rootCmd.Execute()
	if app.logger != nil {
		_ = app.logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
