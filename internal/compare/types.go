package compare

import (
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one regime combination evaluated for the same
// activity and amounts.
type ComparisonResult struct {
	ScenarioName  string               `json:"scenarioName"`
	Description   string               `json:"description"`
	Configuration domain.Configuration `json:"configuration"`
	// Consistent is false when micro-social is paired with an actual tax
	// regime. Such rows are shown but never recommended.
	Consistent bool `json:"consistent"`
	Rank       int  `json:"rank"`

	// Key Metrics
	TaxableProfit       decimal.Decimal `json:"taxableProfit"`
	SocialContributions decimal.Decimal `json:"socialContributions"`
	ContributionRate    decimal.Decimal `json:"contributionRate"`
	NetIncome           decimal.Decimal `json:"netIncome"`
	AlertIDs            []string        `json:"alertIds"`

	// Comparison to Base
	IncomeDiffFromBase       decimal.Decimal `json:"incomeDiffFromBase"`
	IncomePctFromBase        decimal.Decimal `json:"incomePctFromBase"`
	ContributionDiffFromBase decimal.Decimal `json:"contributionDiffFromBase"`
}

// ComparisonSet is the base configuration and every alternative, ranked by
// net income.
type ComparisonSet struct {
	ActivityType       domain.BusinessActivityType `json:"activityType"`
	Turnover           decimal.Decimal             `json:"turnover"`
	Expenses           decimal.Decimal             `json:"expenses"`
	BaseScenarioName   string                      `json:"baseScenarioName"`
	BaseResult         *ComparisonResult           `json:"baseResult"`
	AlternativeResults []ComparisonResult          `json:"alternativeResults"`
	Recommendations    []string                    `json:"recommendations"`
}

// Best returns the consistent result with the highest net income, the base
// included. Ties keep the base.
func (cs *ComparisonSet) Best() *ComparisonResult {
	best := cs.BaseResult
	if best != nil && !best.Consistent {
		best = nil
	}
	for i := range cs.AlternativeResults {
		alt := &cs.AlternativeResults[i]
		if !alt.Consistent {
			continue
		}
		if best == nil || alt.NetIncome.GreaterThan(best.NetIncome) {
			best = alt
		}
	}
	return best
}

// MetricsCalculator extracts key metrics from simulation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// ScenarioName names a combination by its regime codes.
func ScenarioName(cfg domain.Configuration) string {
	return string(cfg.TaxRegime) + " + " + string(cfg.SocialRegime)
}

// CalculateMetrics builds the comparison row of one simulation.
func (mc *MetricsCalculator) CalculateMetrics(cfg domain.Configuration, result domain.SimulationResult, alerts []domain.ThresholdAlert) ComparisonResult {
	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	return ComparisonResult{
		ScenarioName:        ScenarioName(cfg),
		Configuration:       cfg,
		Consistent:          !(cfg.SocialRegime == domain.SocialRegimeFlatRate && cfg.TaxRegime.IsActual()),
		TaxableProfit:       result.TaxableProfit,
		SocialContributions: result.SocialContributions,
		ContributionRate:    result.ContributionRate,
		NetIncome:           result.NetIncomeBeforeTax,
		AlertIDs:            ids,
	}
}

// CalculateComparison computes deltas between a scenario and the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.IncomeDiffFromBase = scenario.NetIncome.Sub(base.NetIncome)

	if !base.NetIncome.IsZero() {
		scenario.IncomePctFromBase = scenario.IncomeDiffFromBase.
			Div(base.NetIncome).
			Mul(decimal.NewFromInt(100))
	}

	scenario.ContributionDiffFromBase = scenario.SocialContributions.Sub(base.SocialContributions)

	return scenario
}

// GenerateRecommendations describes the most favourable combination.
// money formats amounts for the messages.
func GenerateRecommendations(compSet *ComparisonSet, tr i18n.Translator, money func(decimal.Decimal) string) []string {
	recommendations := []string{}
	if compSet.BaseResult == nil {
		return recommendations
	}

	if !compSet.BaseResult.Consistent {
		recommendations = append(recommendations, tr.Translate("compare.inconsistent", nil))
	}

	best := compSet.Best()
	if best == nil {
		return recommendations
	}

	if best == compSet.BaseResult {
		recommendations = append(recommendations, tr.Translate("compare.already_optimal", nil))
	} else if best.IncomeDiffFromBase.IsPositive() {
		recommendations = append(recommendations, tr.Translate("compare.switch_gain", map[string]string{
			"regime": best.Description,
			"delta":  money(best.IncomeDiffFromBase),
		}))
	}

	recommendations = append(recommendations, tr.Translate("compare.best", map[string]string{
		"regime": best.Description,
		"net":    money(best.NetIncome),
	}))

	return recommendations
}
