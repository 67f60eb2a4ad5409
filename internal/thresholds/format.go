// Package thresholds renders the ceilings of the regulatory table as
// display strings, in whole euros.
package thresholds

import (
	"strings"

	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// VatFranchiseDisplay is the base ceiling and the majoré ceiling.
type VatFranchiseDisplay struct {
	Base  string `json:"base" yaml:"base"`
	Upper string `json:"upper" yaml:"upper"`
}

// Formatter formats amounts from a threshold table for one locale.
type Formatter struct {
	Thresholds domain.Thresholds
	Locale     language.Tag
}

// NewFormatter returns a formatter over th for locale.
func NewFormatter(th domain.Thresholds, locale language.Tag) *Formatter {
	return &Formatter{Thresholds: th, Locale: locale}
}

var defaultFormatter = NewFormatter(domain.DefaultThresholds(), language.French)

// FormatCurrency formats amount the French way: "188 700 €".
func FormatCurrency(amount decimal.Decimal) string {
	return defaultFormatter.FormatCurrency(amount)
}

// FlatRateThresholdDisplay returns the micro-fiscal ceiling for activity.
func FlatRateThresholdDisplay(activity domain.BusinessActivityType) string {
	return defaultFormatter.FlatRateThresholdDisplay(activity)
}

// VatFranchiseThresholdDisplay returns the franchise ceilings for activity.
func VatFranchiseThresholdDisplay(activity domain.BusinessActivityType) VatFranchiseDisplay {
	return defaultFormatter.VatFranchiseThresholdDisplay(activity)
}

// VatActualRegimeThresholdDisplay returns the simplified-VAT ceiling for activity.
func VatActualRegimeThresholdDisplay(activity domain.BusinessActivityType) string {
	return defaultFormatter.VatActualRegimeThresholdDisplay(activity)
}

// FormatCurrency rounds to the euro and groups thousands per locale.
// Grouping characters are plain spaces in French output.
func (f *Formatter) FormatCurrency(amount decimal.Decimal) string {
	p := message.NewPrinter(f.Locale)
	whole := amount.Round(0).IntPart()

	base, _ := f.Locale.Base()
	if base.String() == "fr" {
		return normalizeSpaces(p.Sprintf("%d", whole)) + " €"
	}
	if whole < 0 {
		return "-€" + p.Sprintf("%d", -whole)
	}
	return "€" + p.Sprintf("%d", whole)
}

// FlatRateThresholdDisplay returns the micro-fiscal ceiling for activity.
func (f *Formatter) FlatRateThresholdDisplay(activity domain.BusinessActivityType) string {
	return f.FormatCurrency(f.Thresholds.MicroCeiling(activity))
}

// VatFranchiseThresholdDisplay returns the franchise base and majoré ceilings.
func (f *Formatter) VatFranchiseThresholdDisplay(activity domain.BusinessActivityType) VatFranchiseDisplay {
	base, majored := f.Thresholds.VatFranchiseCeilings(activity)
	return VatFranchiseDisplay{
		Base:  f.FormatCurrency(base),
		Upper: f.FormatCurrency(majored),
	}
}

// VatActualRegimeThresholdDisplay returns the simplified-VAT ceiling.
func (f *Formatter) VatActualRegimeThresholdDisplay(activity domain.BusinessActivityType) string {
	return f.FormatCurrency(f.Thresholds.VatActualSimplifiedCeiling(activity))
}

// FormatRate renders a rate such as 0.212 as "21.2 %" (fr) or "21.2%" (en).
func (f *Formatter) FormatRate(rate decimal.Decimal) string {
	pct := rate.Mul(decimal.NewFromInt(100))
	base, _ := f.Locale.Base()
	if base.String() == "fr" {
		return strings.Replace(pct.String(), ".", ",", 1) + " %"
	}
	return pct.String() + "%"
}

// Summary lists every threshold that matters for activity, keyed by a
// stable name. Used by the CLI and the API.
func (f *Formatter) Summary(activity domain.BusinessActivityType) map[string]string {
	vat := f.VatFranchiseThresholdDisplay(activity)
	return map[string]string{
		"micro_ceiling":         f.FlatRateThresholdDisplay(activity),
		"vat_franchise_base":    vat.Base,
		"vat_franchise_majored": vat.Upper,
		"vat_actual_simplified": f.VatActualRegimeThresholdDisplay(activity),
		"flat_rate_deduction":   f.FormatRate(f.Thresholds.FlatRateDeduction(activity)),
		"minimum_deduction":     f.FormatCurrency(f.Thresholds.MinimumDeduction),
		"micro_social_rate":     f.FormatRate(f.Thresholds.MicroSocialRate(activity)),
		"standard_social_rate":  f.FormatRate(f.Thresholds.StandardSocialRate),
	}
}

func normalizeSpaces(s string) string {
	return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
}
