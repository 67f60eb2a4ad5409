package rules

import (
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
)

// Alert identifiers. Message keys are "alerts.<id>".
const (
	AlertMicroCeilingApproaching    = "micro_ceiling_approaching"
	AlertMicroCeilingExceeded       = "micro_ceiling_exceeded"
	AlertVatFranchiseApproaching    = "vat_franchise_approaching"
	AlertVatFranchiseExceeded       = "vat_franchise_exceeded"
	AlertVatFranchiseMajoreExceeded = "vat_franchise_majore_exceeded"
	AlertVatSimplifiedExceeded      = "vat_simplified_exceeded"
	AlertMicroRegimeReachable       = "micro_regime_reachable"
	AlertVatFranchiseReachable      = "vat_franchise_reachable"
)

func alert(id string, severity domain.Severity, predicate func(domain.Configuration, decimal.Decimal) bool) domain.ThresholdAlert {
	return domain.ThresholdAlert{
		ID:         id,
		Predicate:  predicate,
		Severity:   severity,
		MessageKey: "alerts." + id,
	}
}

// NewAlertCatalog builds the alert catalog over a threshold table. The
// franchise "exceeded" and "majoré exceeded" alerts cover disjoint turnover
// ranges and never fire together.
func NewAlertCatalog(th domain.Thresholds) []domain.ThresholdAlert {
	return []domain.ThresholdAlert{
		alert(AlertMicroCeilingApproaching, domain.SeverityInfo, func(c domain.Configuration, t decimal.Decimal) bool {
			ceiling := th.MicroCeiling(c.ActivityType)
			return c.TaxRegime == domain.TaxRegimeFlatRate &&
				t.GreaterThanOrEqual(th.ApproachingFrom(ceiling)) && t.LessThanOrEqual(ceiling)
		}),
		alert(AlertMicroCeilingExceeded, domain.SeverityError, func(c domain.Configuration, t decimal.Decimal) bool {
			return c.TaxRegime == domain.TaxRegimeFlatRate && t.GreaterThan(th.MicroCeiling(c.ActivityType))
		}),
		alert(AlertVatFranchiseApproaching, domain.SeverityInfo, func(c domain.Configuration, t decimal.Decimal) bool {
			base, _ := th.VatFranchiseCeilings(c.ActivityType)
			return c.VatRegime == domain.VatFranchise &&
				t.GreaterThanOrEqual(th.ApproachingFrom(base)) && t.LessThanOrEqual(base)
		}),
		alert(AlertVatFranchiseExceeded, domain.SeverityWarning, func(c domain.Configuration, t decimal.Decimal) bool {
			base, majored := th.VatFranchiseCeilings(c.ActivityType)
			return c.VatRegime == domain.VatFranchise && t.GreaterThan(base) && t.LessThanOrEqual(majored)
		}),
		alert(AlertVatFranchiseMajoreExceeded, domain.SeverityError, func(c domain.Configuration, t decimal.Decimal) bool {
			_, majored := th.VatFranchiseCeilings(c.ActivityType)
			return c.VatRegime == domain.VatFranchise && t.GreaterThan(majored)
		}),
		alert(AlertVatSimplifiedExceeded, domain.SeverityWarning, func(c domain.Configuration, t decimal.Decimal) bool {
			return c.VatRegime == domain.VatActualSimplified && t.GreaterThan(th.VatActualSimplifiedCeiling(c.ActivityType))
		}),
		alert(AlertMicroRegimeReachable, domain.SeverityInfo, func(c domain.Configuration, t decimal.Decimal) bool {
			return c.TaxRegime.IsActual() && t.IsPositive() && t.LessThanOrEqual(th.MicroCeiling(c.ActivityType))
		}),
		alert(AlertVatFranchiseReachable, domain.SeverityInfo, func(c domain.Configuration, t decimal.Decimal) bool {
			base, _ := th.VatFranchiseCeilings(c.ActivityType)
			return c.VatRegime != domain.VatFranchise && t.IsPositive() && t.LessThanOrEqual(base)
		}),
	}
}

// AlertCeiling returns the ceiling an alert refers to, for message parameters.
func AlertCeiling(th domain.Thresholds, id string, activity domain.BusinessActivityType) (decimal.Decimal, bool) {
	base, majored := th.VatFranchiseCeilings(activity)
	switch id {
	case AlertMicroCeilingApproaching, AlertMicroCeilingExceeded, AlertMicroRegimeReachable:
		return th.MicroCeiling(activity), true
	case AlertVatFranchiseApproaching, AlertVatFranchiseExceeded, AlertVatFranchiseReachable:
		return base, true
	case AlertVatFranchiseMajoreExceeded:
		return majored, true
	case AlertVatSimplifiedExceeded:
		return th.VatActualSimplifiedCeiling(activity), true
	default:
		return decimal.Zero, false
	}
}
