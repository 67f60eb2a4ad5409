package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/output"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate one configuration, or every simulation of a file",
	Long: `Simulate taxable profit, social contributions and net income before tax,
then list the consequences of the regimes and the turnover ceiling alerts.

Examples:
  # Services activity under the micro regimes
  eisim simulate --activity BIC_SERVICE --turnover 50000

  # Liberal profession under controlled declaration, in English
  eisim simulate -a BNC -t DECLARATION_CONTROLEE --turnover 90000 --expenses 25000 --lang en

  # Every simulation of a file, saved as HTML
  eisim simulate --file simulations.yaml --format html --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format: %s (valid: %s)", format, strings.Join(output.FormatterNames(), ", "))
	}

	reporter := newReporter()

	var batch *output.Batch
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		simFile, err := config.NewInputParser().LoadFromFile(file)
		if err != nil {
			return err
		}
		batch = reporter.BuildFile(simFile)
	} else {
		input, err := inputFromFlags(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		batch = reporter.NewBatch("", reporter.Build(name, input))
	}

	app.logger.Debug("simulations computed", zap.Int("count", len(batch.Reports)))

	if save, _ := cmd.Flags().GetBool("save"); save {
		filename, err := output.WriteFormatted(formatter, batch, reportExtension(format))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	return output.Write(cmd.OutOrStdout(), batch, format)
}

func reportExtension(format string) string {
	if format == "console" {
		return "txt"
	}
	return format
}

func init() {
	addConfigurationFlags(simulateCmd)
	simulateCmd.Flags().StringP("file", "f", "", "Simulation file (YAML or JSON); replaces the configuration flags")
	simulateCmd.Flags().StringP("name", "n", "", "Name shown in the report")
	simulateCmd.Flags().StringP("format", "o", "console", "Output format (console, json, yaml, csv, html)")
	simulateCmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")

	rootCmd.AddCommand(simulateCmd)
}
