// Package rules holds the consequence and threshold-alert catalogs and the
// filter that evaluates them against a configuration.
package rules

import (
	"sort"

	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
)

// Evaluator filters the catalogs. The catalogs are built once and never
// mutated, so an Evaluator can be shared between goroutines.
type Evaluator struct {
	thresholds   domain.Thresholds
	consequences []domain.ConsequenceRule
	alerts       []domain.ThresholdAlert
}

// NewEvaluator builds an evaluator whose alerts use th.
func NewEvaluator(th domain.Thresholds) *Evaluator {
	return &Evaluator{
		thresholds:   th,
		consequences: Consequences,
		alerts:       NewAlertCatalog(th),
	}
}

var defaultEvaluator = NewEvaluator(domain.DefaultThresholds())

// ConsequencesFor evaluates the default catalog.
func ConsequencesFor(cfg domain.Configuration) []domain.ConsequenceRule {
	return defaultEvaluator.ConsequencesFor(cfg)
}

// AlertsFor evaluates the default alert catalog.
func AlertsFor(cfg domain.Configuration, turnover decimal.Decimal) []domain.ThresholdAlert {
	return defaultEvaluator.AlertsFor(cfg, turnover)
}

// ConsequencesFor returns, in catalog order, every rule that applies to cfg.
func (e *Evaluator) ConsequencesFor(cfg domain.Configuration) []domain.ConsequenceRule {
	matched := []domain.ConsequenceRule{}
	for _, rule := range e.consequences {
		if rule.Applies(cfg) {
			matched = append(matched, rule)
		}
	}
	return matched
}

// AlertsFor returns, in catalog order, every alert that applies to cfg at
// the given turnover. Use SortAlertsBySeverity before display.
func (e *Evaluator) AlertsFor(cfg domain.Configuration, turnover decimal.Decimal) []domain.ThresholdAlert {
	matched := []domain.ThresholdAlert{}
	for _, a := range e.alerts {
		if a.Applies(cfg, turnover) {
			matched = append(matched, a)
		}
	}
	return matched
}

// AlertCatalog returns the alert catalog the evaluator uses.
func (e *Evaluator) AlertCatalog() []domain.ThresholdAlert {
	return e.alerts
}

// AlertCeiling returns the ceiling an alert refers to for activity.
func (e *Evaluator) AlertCeiling(id string, activity domain.BusinessActivityType) (decimal.Decimal, bool) {
	return AlertCeiling(e.thresholds, id, activity)
}

// Thresholds returns the table the alerts were built from.
func (e *Evaluator) Thresholds() domain.Thresholds {
	return e.thresholds
}

// SortAlertsBySeverity returns a copy sorted error > warning > info,
// keeping catalog order between equal severities.
func SortAlertsBySeverity(alerts []domain.ThresholdAlert) []domain.ThresholdAlert {
	sorted := append([]domain.ThresholdAlert(nil), alerts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() > sorted[j].Severity.Rank()
	})
	return sorted
}

// SortConsequencesBySeverity returns a copy sorted by descending severity.
func SortConsequencesBySeverity(rules []domain.ConsequenceRule) []domain.ConsequenceRule {
	sorted := append([]domain.ConsequenceRule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() > sorted[j].Severity.Rank()
	})
	return sorted
}

// SeverityGroup is a run of consequences sharing a severity.
type SeverityGroup struct {
	Severity domain.Severity
	Rules    []domain.ConsequenceRule
}

// GroupConsequencesBySeverity groups rules by severity, most severe first.
// Empty groups are omitted.
func GroupConsequencesBySeverity(rules []domain.ConsequenceRule) []SeverityGroup {
	order := []domain.Severity{domain.SeverityError, domain.SeverityWarning, domain.SeveritySuccess, domain.SeverityInfo}
	var groups []SeverityGroup
	for _, severity := range order {
		var group []domain.ConsequenceRule
		for _, r := range rules {
			if r.Severity == severity {
				group = append(group, r)
			}
		}
		if len(group) > 0 {
			groups = append(groups, SeverityGroup{Severity: severity, Rules: group})
		}
	}
	return groups
}
