package calculation

import (
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
)

// CALCULATION ASSUMPTIONS:
//
// 1. One tax year of thresholds (domain.DefaultThresholds unless overridden).
// 2. Micro-fiscal profit = turnover - max(turnover x flat rate, minimum deduction).
// 3. Liberal professions under micro-social always pay the general (SSI) rate.
// 4. Standard self-employed contributions are approximated by one flat rate on
//    cash profit (turnover - expenses), whatever the tax regime.
// 5. Income tax is not computed; net income is before income tax.

// CalculationEngine turns a SimulationInput into a SimulationResult.
// It holds only read-only data and is safe for concurrent use.
type CalculationEngine struct {
	Thresholds domain.Thresholds
	Logger     Logger
	Debug      bool
}

// NewCalculationEngine creates an engine over the default threshold table.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithThresholds(domain.DefaultThresholds())
}

// NewCalculationEngineWithThresholds creates an engine over a custom table.
func NewCalculationEngineWithThresholds(thresholds domain.Thresholds) *CalculationEngine {
	return &CalculationEngine{
		Thresholds: thresholds,
		Logger:     NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil installs a NopLogger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Calculate computes taxable profit, social contributions and net income
// before income tax. It never fails; negative inputs are not validated and
// propagate through the arithmetic before the final clamps.
func (ce *CalculationEngine) Calculate(input domain.SimulationInput) domain.SimulationResult {
	var result domain.SimulationResult

	// Taxable profit
	if input.TaxRegime == domain.TaxRegimeFlatRate {
		deduction := input.Turnover.Mul(ce.Thresholds.FlatRateDeduction(input.ActivityType))
		effective := decimal.Max(deduction, ce.Thresholds.MinimumDeduction)
		result.TaxableProfit = clampZero(input.Turnover.Sub(effective))
		result.Details.FlatRateDeduction = &deduction
		if ce.Debug {
			ce.logger().Debugf("flat-rate deduction %s (effective %s), taxable profit %s",
				deduction.StringFixed(2), effective.StringFixed(2), result.TaxableProfit.StringFixed(2))
		}
	} else {
		expenses := input.Expenses
		result.TaxableProfit = clampZero(input.Turnover.Sub(expenses))
		result.Details.DeductedExpenses = &expenses
		if ce.Debug {
			ce.logger().Debugf("actual regime %s: deducted expenses %s, taxable profit %s",
				input.TaxRegime, expenses.StringFixed(2), result.TaxableProfit.StringFixed(2))
		}
	}

	// Social contributions. The standard regime bases on cash profit even when
	// the tax regime is the flat-rate one.
	if input.SocialRegime == domain.SocialRegimeFlatRate {
		result.ContributionBase = domain.ContributionBaseTurnover
		result.ContributionRate = ce.Thresholds.MicroSocialRate(input.ActivityType)
		result.SocialContributions = input.Turnover.Mul(result.ContributionRate)
	} else {
		result.ContributionBase = domain.ContributionBaseProfit
		result.ContributionRate = ce.Thresholds.StandardSocialRate
		socialProfit := clampZero(input.Turnover.Sub(input.Expenses))
		result.SocialContributions = socialProfit.Mul(result.ContributionRate)
	}
	if ce.Debug {
		ce.logger().Debugf("social contributions %s (%s x %s)",
			result.SocialContributions.StringFixed(2), result.ContributionBase, result.ContributionRate.String())
	}

	net := input.Turnover
	if input.TaxRegime.IsActual() {
		net = net.Sub(input.Expenses)
	}
	result.NetIncomeBeforeTax = clampZero(net.Sub(result.SocialContributions))

	return result
}

// CalculateAll runs Calculate over each input, preserving order.
func (ce *CalculationEngine) CalculateAll(inputs []domain.SimulationInput) []domain.SimulationResult {
	results := make([]domain.SimulationResult, len(inputs))
	for i, in := range inputs {
		results[i] = ce.Calculate(in)
	}
	return results
}

// EffectiveFlatRateDeduction returns the deduction actually subtracted from
// turnover under the micro regime, with the minimum deduction applied.
func (ce *CalculationEngine) EffectiveFlatRateDeduction(activity domain.BusinessActivityType, turnover decimal.Decimal) decimal.Decimal {
	deduction := turnover.Mul(ce.Thresholds.FlatRateDeduction(activity))
	return decimal.Max(deduction, ce.Thresholds.MinimumDeduction)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
