package domain

import "github.com/shopspring/decimal"

// Configuration is the set of regime choices a simulation runs against.
//
// TaxRegime must be available for ActivityType. Build values with
// NewConfiguration and change the activity with WithActivityType so the
// pair stays consistent; the calculation engine does not re-check it.
type Configuration struct {
	ActivityType BusinessActivityType     `yaml:"activity_type" json:"activity_type"`
	TaxRegime    TaxRegime                `yaml:"tax_regime" json:"tax_regime"`
	SocialRegime SocialContributionRegime `yaml:"social_regime" json:"social_regime"`
	VatRegime    VatRegime                `yaml:"vat_regime" json:"vat_regime"`
}

// NewConfiguration builds a configuration, falling back to the flat-rate
// tax regime when taxRegime is not available for activity.
func NewConfiguration(activity BusinessActivityType, taxRegime TaxRegime, social SocialContributionRegime, vat VatRegime) Configuration {
	return Configuration{
		ActivityType: activity,
		TaxRegime:    taxRegime,
		SocialRegime: social,
		VatRegime:    vat,
	}.Normalize()
}

// DefaultConfiguration is the usual starting point: a services
// micro-entrepreneur under VAT franchise.
func DefaultConfiguration() Configuration {
	return NewConfiguration(ActivityServices, TaxRegimeFlatRate, SocialRegimeFlatRate, VatFranchise)
}

// WithActivityType returns a copy with the new activity. The tax regime is
// kept when still available, otherwise reset to TaxRegimeFlatRate.
func (c Configuration) WithActivityType(activity BusinessActivityType) Configuration {
	c.ActivityType = activity
	return c.Normalize()
}

// WithTaxRegime returns a copy with the given tax regime. An unavailable
// regime is ignored and the current one kept.
func (c Configuration) WithTaxRegime(regime TaxRegime) Configuration {
	if IsTaxRegimeAvailable(c.ActivityType, regime) {
		c.TaxRegime = regime
	}
	return c
}

// WithSocialRegime returns a copy with the given social regime.
func (c Configuration) WithSocialRegime(regime SocialContributionRegime) Configuration {
	c.SocialRegime = regime
	return c
}

// WithVatRegime returns a copy with the given VAT regime.
func (c Configuration) WithVatRegime(regime VatRegime) Configuration {
	c.VatRegime = regime
	return c
}

// Normalize resets an unavailable tax regime to TaxRegimeFlatRate.
func (c Configuration) Normalize() Configuration {
	if !IsTaxRegimeAvailable(c.ActivityType, c.TaxRegime) {
		c.TaxRegime = TaxRegimeFlatRate
	}
	return c
}

// IsConsistent reports whether the tax regime is available for the activity.
func (c Configuration) IsConsistent() bool {
	return IsTaxRegimeAvailable(c.ActivityType, c.TaxRegime)
}

// SimulationInput is a configuration plus the two amounts being simulated.
// Both amounts are expected to be non-negative; that is checked by callers.
type SimulationInput struct {
	Configuration `yaml:",inline"`
	Turnover      decimal.Decimal `yaml:"turnover" json:"turnover"`
	Expenses      decimal.Decimal `yaml:"expenses" json:"expenses"`
}

// ContributionBase names the amount social contributions are assessed on.
type ContributionBase string

const (
	ContributionBaseTurnover ContributionBase = "turnover"
	ContributionBaseProfit   ContributionBase = "profit"
)

// SimulationResult is derived from a SimulationInput and never stored.
type SimulationResult struct {
	TaxableProfit       decimal.Decimal  `yaml:"taxable_profit" json:"taxable_profit"`
	SocialContributions decimal.Decimal  `yaml:"social_contributions" json:"social_contributions"`
	ContributionBase    ContributionBase `yaml:"contribution_base" json:"contribution_base"`
	ContributionRate    decimal.Decimal  `yaml:"contribution_rate" json:"contribution_rate"`
	NetIncomeBeforeTax  decimal.Decimal  `yaml:"net_income_before_tax" json:"net_income_before_tax"`
	Details             ResultDetails    `yaml:"details" json:"details"`
}

// ResultDetails carries the figure that explains the taxable profit: the
// un-floored flat-rate deduction, or the expenses deducted under an actual
// regime. Exactly one is set.
type ResultDetails struct {
	FlatRateDeduction *decimal.Decimal `yaml:"flat_rate_deduction,omitempty" json:"flat_rate_deduction,omitempty"`
	DeductedExpenses  *decimal.Decimal `yaml:"deducted_expenses,omitempty" json:"deducted_expenses,omitempty"`
}

// IsZero reports whether every amount in the result is zero. Callers use it
// to suppress display of an empty simulation.
func (r SimulationResult) IsZero() bool {
	return r.TaxableProfit.IsZero() && r.SocialContributions.IsZero() && r.NetIncomeBeforeTax.IsZero()
}
