package rules

import "github.com/rgehrsitz/eisim/internal/domain"

func consequence(id string, severity domain.Severity, predicate func(domain.Configuration) bool) domain.ConsequenceRule {
	return domain.ConsequenceRule{
		ID:             id,
		Predicate:      predicate,
		Severity:       severity,
		TitleKey:       "consequences." + id + ".title",
		DescriptionKey: "consequences." + id + ".description",
	}
}

func taxRegimeIs(regimes ...domain.TaxRegime) func(domain.Configuration) bool {
	return func(c domain.Configuration) bool {
		for _, r := range regimes {
			if c.TaxRegime == r {
				return true
			}
		}
		return false
	}
}

func socialRegimeIs(regime domain.SocialContributionRegime) func(domain.Configuration) bool {
	return func(c domain.Configuration) bool { return c.SocialRegime == regime }
}

func vatRegimeIs(regimes ...domain.VatRegime) func(domain.Configuration) bool {
	return func(c domain.Configuration) bool {
		for _, r := range regimes {
			if c.VatRegime == r {
				return true
			}
		}
		return false
	}
}

// Consequences is the consequence catalog, in display order.
var Consequences = []domain.ConsequenceRule{
	// Tax regime
	consequence("flat_rate_deduction", domain.SeverityInfo, taxRegimeIs(domain.TaxRegimeFlatRate)),
	consequence("simplified_bookkeeping", domain.SeveritySuccess, taxRegimeIs(domain.TaxRegimeFlatRate)),
	consequence("expenses_not_deductible", domain.SeverityWarning, taxRegimeIs(domain.TaxRegimeFlatRate)),
	consequence("actual_expenses_deductible", domain.SeveritySuccess, func(c domain.Configuration) bool {
		return c.TaxRegime.IsActual()
	}),
	consequence("simplified_actual_accounting", domain.SeverityInfo, taxRegimeIs(domain.TaxRegimeActualSimplified)),
	consequence("full_accounting_required", domain.SeverityWarning, taxRegimeIs(domain.TaxRegimeActualNormal)),
	consequence("controlled_declaration_bookkeeping", domain.SeverityInfo, taxRegimeIs(domain.TaxRegimeControlledDeclaration)),

	// Social regime
	consequence("micro_social_on_turnover", domain.SeverityInfo, socialRegimeIs(domain.SocialRegimeFlatRate)),
	consequence("micro_social_requires_micro", domain.SeverityError, func(c domain.Configuration) bool {
		return c.SocialRegime == domain.SocialRegimeFlatRate && c.TaxRegime.IsActual()
	}),
	consequence("standard_social_on_profit", domain.SeverityInfo, socialRegimeIs(domain.SocialRegimeStandard)),
	consequence("standard_social_minimum_contributions", domain.SeverityWarning, socialRegimeIs(domain.SocialRegimeStandard)),

	// VAT
	consequence("vat_franchise_no_recovery", domain.SeverityWarning, vatRegimeIs(domain.VatFranchise)),
	consequence("vat_franchise_invoice_mention", domain.SeverityInfo, vatRegimeIs(domain.VatFranchise)),
	consequence("vat_must_be_charged", domain.SeverityInfo, vatRegimeIs(domain.VatActualSimplified, domain.VatActualNormal)),
	consequence("vat_recoverable", domain.SeveritySuccess, vatRegimeIs(domain.VatActualSimplified, domain.VatActualNormal)),
	consequence("vat_simplified_annual_return", domain.SeverityInfo, vatRegimeIs(domain.VatActualSimplified)),
	consequence("vat_normal_monthly_returns", domain.SeverityWarning, vatRegimeIs(domain.VatActualNormal)),
}
