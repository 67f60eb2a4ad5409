package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/thresholds"
)

// summaryOrder lists the threshold summary keys in display order.
var summaryOrder = []string{
	"micro_ceiling",
	"vat_franchise_base",
	"vat_franchise_majored",
	"vat_actual_simplified",
	"flat_rate_deduction",
	"minimum_deduction",
	"micro_social_rate",
	"standard_social_rate",
}

var summaryLabels = map[string]string{
	"micro_ceiling":         "threshold.micro_ceiling",
	"vat_franchise_base":    "threshold.vat_franchise_base",
	"vat_franchise_majored": "threshold.vat_majored",
	"vat_actual_simplified": "threshold.vat_actual",
	"flat_rate_deduction":   "threshold.flat_rate_deduction",
	"minimum_deduction":     "threshold.minimum_deduction",
	"micro_social_rate":     "threshold.micro_social_rate",
	"standard_social_rate":  "threshold.standard_social_rate",
}

// activitiesFlag returns the activity named by --activity, or all of them.
func activitiesFlag(cmd *cobra.Command) ([]domain.BusinessActivityType, error) {
	raw, _ := cmd.Flags().GetString("activity")
	if raw == "" {
		return domain.AllActivityTypes, nil
	}
	a, err := domain.ParseActivityType(raw)
	if err != nil {
		return nil, err
	}
	return []domain.BusinessActivityType{a}, nil
}

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Show the ceilings and rates that apply to each activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := activitiesFlag(cmd)
		if err != nil {
			return err
		}
		lang := app.settings.Language
		tr := i18n.New(lang)
		formatter := thresholds.NewFormatter(app.thresholds, language.Make(lang))
		out := cmd.OutOrStdout()

		if format, _ := cmd.Flags().GetString("format"); format == "json" {
			doc := make(map[domain.BusinessActivityType]map[string]string, len(activities))
			for _, a := range activities {
				doc[a] = formatter.Summary(a)
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to format JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s %d\n", tr.Translate("report.thresholds", nil), app.thresholds.Metadata.DataYear)
		for _, a := range activities {
			fmt.Fprintf(out, "\n%s\n", tr.Translate("activity."+string(a), nil))
			summary := formatter.Summary(a)
			for _, key := range summaryOrder {
				fmt.Fprintf(out, "  %-34s %s\n", tr.Translate(summaryLabels[key], nil), summary[key])
			}
		}
		return nil
	},
}

var regimesCmd = &cobra.Command{
	Use:   "regimes",
	Short: "List the tax regimes available to each activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := activitiesFlag(cmd)
		if err != nil {
			return err
		}
		tr := i18n.New(app.settings.Language)
		out := cmd.OutOrStdout()

		for i, a := range activities {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s [%s]\n", tr.Translate("activity."+string(a), nil), a)
			for _, r := range domain.AvailableTaxRegimesFor(a) {
				social := domain.DefaultSocialRegimeFor(r)
				fmt.Fprintf(out, "  - %s [%s] → %s\n",
					tr.Translate("tax_regime."+string(r), nil), r,
					tr.Translate("social_regime."+string(social), nil))
			}
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a simulation file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		file, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Simulation file %s is valid (%d simulations)\n", inputFile, len(file.Simulations))
		return nil
	},
}

func init() {
	thresholdsCmd.Flags().StringP("activity", "a", "", "Only this activity (BIC_VENTE, BIC_SERVICE, BNC)")
	thresholdsCmd.Flags().StringP("format", "o", "text", "Output format (text, json)")
	regimesCmd.Flags().StringP("activity", "a", "", "Only this activity (BIC_VENTE, BIC_SERVICE, BNC)")

	rootCmd.AddCommand(thresholdsCmd)
	rootCmd.AddCommand(regimesCmd)
	rootCmd.AddCommand(validateCmd)
}
