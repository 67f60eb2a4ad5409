package domain

import (
	"github.com/shopspring/decimal"
)

// Thresholds holds the rates and turnover ceilings of a single tax year.
// It is loaded once (defaults or regulatory.yaml) and only read afterwards.
type Thresholds struct {
	Metadata               RegulatoryMetadata   `yaml:"metadata" json:"metadata"`
	MicroCeilings          ActivityAmounts      `yaml:"micro_ceilings" json:"micro_ceilings"`
	VatFranchise           VatFranchiseCeilings `yaml:"vat_franchise" json:"vat_franchise"`
	VatActualSimplified    VatGroupAmounts      `yaml:"vat_actual_simplified_ceilings" json:"vat_actual_simplified_ceilings"`
	FlatRateDeductions     ActivityAmounts      `yaml:"flat_rate_deductions" json:"flat_rate_deductions"`
	MinimumDeduction       decimal.Decimal      `yaml:"minimum_deduction" json:"minimum_deduction"`
	MicroSocialRates       MicroSocialRates     `yaml:"micro_social_rates" json:"micro_social_rates"`
	StandardSocialRate     decimal.Decimal      `yaml:"standard_social_rate" json:"standard_social_rate"`
	ApproachingThresholdAt decimal.Decimal      `yaml:"approaching_threshold_at" json:"approaching_threshold_at"`
}

// RegulatoryMetadata describes where a threshold table comes from.
type RegulatoryMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// ActivityAmounts is one value per activity type.
type ActivityAmounts struct {
	GoodsSale         decimal.Decimal `yaml:"bic_vente" json:"bic_vente"`
	Services          decimal.Decimal `yaml:"bic_service" json:"bic_service"`
	LiberalProfession decimal.Decimal `yaml:"bnc" json:"bnc"`
}

// For returns the value for activity.
func (a ActivityAmounts) For(activity BusinessActivityType) decimal.Decimal {
	switch activity {
	case ActivityGoodsSale:
		return a.GoodsSale
	case ActivityServices:
		return a.Services
	default:
		return a.LiberalProfession
	}
}

// VatGroupAmounts is one value per VAT group.
type VatGroupAmounts struct {
	Goods    decimal.Decimal `yaml:"goods" json:"goods"`
	Services decimal.Decimal `yaml:"services" json:"services"`
}

// For returns the value for the VAT group of activity.
func (v VatGroupAmounts) For(activity BusinessActivityType) decimal.Decimal {
	if activity.VatGroup() == VatGroupGoods {
		return v.Goods
	}
	return v.Services
}

// VatFranchiseCeilings holds the base ceiling and the higher "majoré"
// ceiling above which the franchise is lost immediately.
type VatFranchiseCeilings struct {
	Base    VatGroupAmounts `yaml:"base" json:"base"`
	Majored VatGroupAmounts `yaml:"majored" json:"majored"`
}

// MicroSocialRates are the micro-social contribution rates on turnover.
// Liberal professions have two schemes; the engine uses the general one.
type MicroSocialRates struct {
	GoodsSale                decimal.Decimal `yaml:"bic_vente" json:"bic_vente"`
	Services                 decimal.Decimal `yaml:"bic_service" json:"bic_service"`
	LiberalProfessionGeneral decimal.Decimal `yaml:"bnc_ssi" json:"bnc_ssi"`
	LiberalProfessionCipav   decimal.Decimal `yaml:"bnc_cipav" json:"bnc_cipav"`
}

// For returns the rate applied to activity (general scheme for BNC).
func (m MicroSocialRates) For(activity BusinessActivityType) decimal.Decimal {
	switch activity {
	case ActivityGoodsSale:
		return m.GoodsSale
	case ActivityServices:
		return m.Services
	default:
		return m.LiberalProfessionGeneral
	}
}

// DefaultThresholds returns the 2025 table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Metadata: RegulatoryMetadata{
			DataYear:    2025,
			LastUpdated: "2025-01-01",
			Description: "Micro-entreprise, VAT franchise and micro-social figures for 2025",
		},
		MicroCeilings: ActivityAmounts{
			GoodsSale:         decimal.NewFromInt(188700),
			Services:          decimal.NewFromInt(77700),
			LiberalProfession: decimal.NewFromInt(77700),
		},
		VatFranchise: VatFranchiseCeilings{
			Base: VatGroupAmounts{
				Goods:    decimal.NewFromInt(85000),
				Services: decimal.NewFromInt(37500),
			},
			Majored: VatGroupAmounts{
				Goods:    decimal.NewFromInt(93500),
				Services: decimal.NewFromInt(41250),
			},
		},
		VatActualSimplified: VatGroupAmounts{
			Goods:    decimal.NewFromInt(840000),
			Services: decimal.NewFromInt(254000),
		},
		FlatRateDeductions: ActivityAmounts{
			GoodsSale:         decimal.RequireFromString("0.71"),
			Services:          decimal.RequireFromString("0.50"),
			LiberalProfession: decimal.RequireFromString("0.34"),
		},
		MinimumDeduction: decimal.NewFromInt(305),
		MicroSocialRates: MicroSocialRates{
			GoodsSale:                decimal.RequireFromString("0.123"),
			Services:                 decimal.RequireFromString("0.212"),
			LiberalProfessionGeneral: decimal.RequireFromString("0.246"),
			LiberalProfessionCipav:   decimal.RequireFromString("0.232"),
		},
		StandardSocialRate:     decimal.RequireFromString("0.45"),
		ApproachingThresholdAt: decimal.RequireFromString("0.9"),
	}
}

// MicroCeiling returns the micro-fiscal turnover ceiling for activity.
func (t Thresholds) MicroCeiling(activity BusinessActivityType) decimal.Decimal {
	return t.MicroCeilings.For(activity)
}

// VatFranchiseCeilings returns the base and majoré franchise ceilings.
func (t Thresholds) VatFranchiseCeilings(activity BusinessActivityType) (base, majored decimal.Decimal) {
	return t.VatFranchise.Base.For(activity), t.VatFranchise.Majored.For(activity)
}

// VatActualSimplifiedCeiling returns the turnover above which the
// simplified VAT regime must be left for the normal one.
func (t Thresholds) VatActualSimplifiedCeiling(activity BusinessActivityType) decimal.Decimal {
	return t.VatActualSimplified.For(activity)
}

// FlatRateDeduction returns the flat-rate deduction percentage for activity.
func (t Thresholds) FlatRateDeduction(activity BusinessActivityType) decimal.Decimal {
	return t.FlatRateDeductions.For(activity)
}

// MicroSocialRate returns the micro-social rate for activity.
func (t Thresholds) MicroSocialRate(activity BusinessActivityType) decimal.Decimal {
	return t.MicroSocialRates.For(activity)
}

// ApproachingFrom returns the turnover from which a ceiling counts as near.
func (t Thresholds) ApproachingFrom(ceiling decimal.Decimal) decimal.Decimal {
	return ceiling.Mul(t.ApproachingThresholdAt)
}
