package compare

import (
	"context"
	"fmt"
	"sort"

	"github.com/rgehrsitz/eisim/internal/calculation"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/rules"
	"github.com/rgehrsitz/eisim/internal/thresholds"
	"github.com/shopspring/decimal"
)

// CompareEngine orchestrates regime comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	Evaluator         *rules.Evaluator
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine over the engine's table.
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		Evaluator:         rules.NewEvaluator(calcEngine.Thresholds),
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Base     domain.Configuration // the configuration to compare against
	Turnover decimal.Decimal
	Expenses decimal.Decimal
	// CoherentOnly skips micro-social paired with an actual tax regime.
	CoherentOnly bool
	Translator   i18n.Translator
	// Money formats amounts in recommendations; defaults to French.
	Money func(decimal.Decimal) string
}

// Candidates lists every tax regime available for activity combined with
// every social regime, in catalog order. VAT is taken from vat.
func Candidates(activity domain.BusinessActivityType, vat domain.VatRegime, coherentOnly bool) []domain.Configuration {
	var configs []domain.Configuration
	for _, tax := range domain.AvailableTaxRegimesFor(activity) {
		for _, social := range domain.AllSocialRegimes {
			if coherentOnly && social == domain.SocialRegimeFlatRate && tax.IsActual() {
				continue
			}
			configs = append(configs, domain.NewConfiguration(activity, tax, social, vat))
		}
	}
	return configs
}

// Compare evaluates every candidate combination for the base activity and
// ranks them by net income.
func (ce *CompareEngine) Compare(ctx context.Context, options CompareOptions) (*ComparisonSet, error) {
	if options.Turnover.IsNegative() || options.Expenses.IsNegative() {
		return nil, fmt.Errorf("turnover and expenses cannot be negative")
	}
	base := options.Base
	if !base.IsConsistent() {
		return nil, fmt.Errorf("tax regime %s is not available for activity %s", base.TaxRegime, base.ActivityType)
	}
	tr := options.Translator
	if tr == nil {
		tr = i18n.New(i18n.DefaultLanguage)
	}
	money := options.Money
	if money == nil {
		money = thresholds.FormatCurrency
	}

	baseResult := ce.evaluate(base, options, tr)

	alternatives := []ComparisonResult{}
	for _, cfg := range Candidates(base.ActivityType, base.VatRegime, options.CoherentOnly) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("comparison cancelled: %w", err)
		}
		if cfg.TaxRegime == base.TaxRegime && cfg.SocialRegime == base.SocialRegime {
			continue
		}
		alt := ce.evaluate(cfg, options, tr)
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].NetIncome.GreaterThan(alternatives[j].NetIncome)
	})
	assignRanks(&baseResult, alternatives)

	compSet := &ComparisonSet{
		ActivityType:       base.ActivityType,
		Turnover:           options.Turnover,
		Expenses:           options.Expenses,
		BaseScenarioName:   baseResult.ScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet, tr, money)

	return compSet, nil
}

func (ce *CompareEngine) evaluate(cfg domain.Configuration, options CompareOptions, tr i18n.Translator) ComparisonResult {
	input := domain.SimulationInput{Configuration: cfg, Turnover: options.Turnover, Expenses: options.Expenses}
	result := ce.CalcEngine.Calculate(input)
	alerts := ce.Evaluator.AlertsFor(cfg, options.Turnover)

	metrics := ce.MetricsCalculator.CalculateMetrics(cfg, result, alerts)
	metrics.Description = tr.Translate("tax_regime."+string(cfg.TaxRegime), nil) + " / " +
		tr.Translate("social_regime."+string(cfg.SocialRegime), nil)
	return metrics
}

// assignRanks numbers every result by descending net income, 1 being the
// best. Equal incomes share a rank.
func assignRanks(base *ComparisonResult, alternatives []ComparisonResult) {
	incomes := []decimal.Decimal{base.NetIncome}
	for _, alt := range alternatives {
		incomes = append(incomes, alt.NetIncome)
	}
	rank := func(net decimal.Decimal) int {
		r := 1
		for _, other := range incomes {
			if other.GreaterThan(net) {
				r++
			}
		}
		return r
	}
	base.Rank = rank(base.NetIncome)
	for i := range alternatives {
		alternatives[i].Rank = rank(alternatives[i].NetIncome)
	}
}
