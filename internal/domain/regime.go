package domain

import (
	"fmt"
	"strings"
)

// BusinessActivityType is the declared activity of the sole proprietor.
// It selects the flat-rate deduction, the turnover ceilings and the
// micro-social contribution rate.
type BusinessActivityType string

const (
	ActivityGoodsSale         BusinessActivityType = "BIC_VENTE"
	ActivityServices          BusinessActivityType = "BIC_SERVICE"
	ActivityLiberalProfession BusinessActivityType = "BNC"
)

// AllActivityTypes lists the activity types in display order.
var AllActivityTypes = []BusinessActivityType{
	ActivityGoodsSale,
	ActivityServices,
	ActivityLiberalProfession,
}

// TaxRegime is the income-tax regime used to derive taxable profit.
type TaxRegime string

const (
	TaxRegimeFlatRate              TaxRegime = "MICRO"
	TaxRegimeActualSimplified      TaxRegime = "REEL_SIMPLIFIE"
	TaxRegimeActualNormal          TaxRegime = "REEL_NORMAL"
	TaxRegimeControlledDeclaration TaxRegime = "DECLARATION_CONTROLEE"
)

// AllTaxRegimes lists the tax regimes in catalog order.
var AllTaxRegimes = []TaxRegime{
	TaxRegimeFlatRate,
	TaxRegimeActualSimplified,
	TaxRegimeActualNormal,
	TaxRegimeControlledDeclaration,
}

// SocialContributionRegime selects how social contributions are assessed.
type SocialContributionRegime string

const (
	// SocialRegimeFlatRate assesses contributions on turnover.
	SocialRegimeFlatRate SocialContributionRegime = "MICRO_SOCIAL"
	// SocialRegimeStandard assesses contributions on profit after expenses.
	SocialRegimeStandard SocialContributionRegime = "TNS_CLASSIQUE"
)

// AllSocialRegimes lists the social regimes in display order.
var AllSocialRegimes = []SocialContributionRegime{
	SocialRegimeFlatRate,
	SocialRegimeStandard,
}

// VatRegime is informational only: it drives consequences and alerts but
// never the numeric result.
type VatRegime string

const (
	VatFranchise        VatRegime = "FRANCHISE"
	VatActualSimplified VatRegime = "REEL_SIMPLIFIE_TVA"
	VatActualNormal     VatRegime = "REEL_NORMAL_TVA"
)

// AllVatRegimes lists the VAT regimes in display order.
var AllVatRegimes = []VatRegime{
	VatFranchise,
	VatActualSimplified,
	VatActualNormal,
}

// VatGroup partitions activity types for VAT thresholds.
type VatGroup string

const (
	VatGroupGoods    VatGroup = "goods"
	VatGroupServices VatGroup = "services"
)

// VatGroup returns the VAT threshold group of the activity.
func (a BusinessActivityType) VatGroup() VatGroup {
	if a == ActivityGoodsSale {
		return VatGroupGoods
	}
	return VatGroupServices
}

// IsActual reports whether the regime derives profit from real expenses.
func (r TaxRegime) IsActual() bool {
	return r != TaxRegimeFlatRate
}

var taxRegimeAvailability = map[TaxRegime][]BusinessActivityType{
	TaxRegimeFlatRate:              {ActivityGoodsSale, ActivityServices, ActivityLiberalProfession},
	TaxRegimeActualSimplified:      {ActivityGoodsSale, ActivityServices},
	TaxRegimeActualNormal:          {ActivityGoodsSale, ActivityServices},
	TaxRegimeControlledDeclaration: {ActivityLiberalProfession},
}

// AvailableTaxRegimesFor returns, in catalog order, the tax regimes valid
// for the activity. TaxRegimeFlatRate is always part of the result.
func AvailableTaxRegimesFor(activity BusinessActivityType) []TaxRegime {
	var regimes []TaxRegime
	for _, regime := range AllTaxRegimes {
		if IsTaxRegimeAvailable(activity, regime) {
			regimes = append(regimes, regime)
		}
	}
	return regimes
}

// IsTaxRegimeAvailable reports whether regime may be chosen for activity.
func IsTaxRegimeAvailable(activity BusinessActivityType, regime TaxRegime) bool {
	for _, a := range taxRegimeAvailability[regime] {
		if a == activity {
			return true
		}
	}
	return false
}

// DefaultSocialRegimeFor returns the social regime that normally goes with
// a tax regime. It is a helper for callers and is never applied implicitly.
func DefaultSocialRegimeFor(regime TaxRegime) SocialContributionRegime {
	if regime == TaxRegimeFlatRate {
		return SocialRegimeFlatRate
	}
	return SocialRegimeStandard
}

var activityAliases = map[string]BusinessActivityType{
	"BIC_VENTE":          ActivityGoodsSale,
	"GOODS_SALE":         ActivityGoodsSale,
	"BIC_SERVICE":        ActivityServices,
	"SERVICES":           ActivityServices,
	"BNC":                ActivityLiberalProfession,
	"LIBERAL_PROFESSION": ActivityLiberalProfession,
}

var taxRegimeAliases = map[string]TaxRegime{
	"MICRO":                  TaxRegimeFlatRate,
	"FLAT_RATE":              TaxRegimeFlatRate,
	"REEL_SIMPLIFIE":         TaxRegimeActualSimplified,
	"ACTUAL_SIMPLIFIED":      TaxRegimeActualSimplified,
	"REEL_NORMAL":            TaxRegimeActualNormal,
	"ACTUAL_NORMAL":          TaxRegimeActualNormal,
	"DECLARATION_CONTROLEE":  TaxRegimeControlledDeclaration,
	"CONTROLLED_DECLARATION": TaxRegimeControlledDeclaration,
}

var socialRegimeAliases = map[string]SocialContributionRegime{
	"MICRO_SOCIAL":           SocialRegimeFlatRate,
	"FLAT_RATE_SOCIAL":       SocialRegimeFlatRate,
	"TNS_CLASSIQUE":          SocialRegimeStandard,
	"STANDARD_SELF_EMPLOYED": SocialRegimeStandard,
}

var vatRegimeAliases = map[string]VatRegime{
	"FRANCHISE":             VatFranchise,
	"REEL_SIMPLIFIE_TVA":    VatActualSimplified,
	"ACTUAL_SIMPLIFIED_VAT": VatActualSimplified,
	"REEL_NORMAL_TVA":       VatActualNormal,
	"ACTUAL_NORMAL_VAT":     VatActualNormal,
}

func normalizeCode(s string) string {
	s = strings.TrimSpace(strings.ToUpper(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// ParseActivityType accepts the French code or the English name, in any case.
func ParseActivityType(s string) (BusinessActivityType, error) {
	if a, ok := activityAliases[normalizeCode(s)]; ok {
		return a, nil
	}
	return "", fmt.Errorf("unknown activity type %q", s)
}

// ParseTaxRegime accepts the French code or the English name, in any case.
func ParseTaxRegime(s string) (TaxRegime, error) {
	if r, ok := taxRegimeAliases[normalizeCode(s)]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown tax regime %q", s)
}

// ParseSocialRegime accepts the French code or the English name, in any case.
func ParseSocialRegime(s string) (SocialContributionRegime, error) {
	if r, ok := socialRegimeAliases[normalizeCode(s)]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown social regime %q", s)
}

// ParseVatRegime accepts the French code or the English name, in any case.
func ParseVatRegime(s string) (VatRegime, error) {
	if r, ok := vatRegimeAliases[normalizeCode(s)]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown VAT regime %q", s)
}

// UnmarshalText lets YAML and JSON documents use either naming scheme.
func (a *BusinessActivityType) UnmarshalText(text []byte) error {
	v, err := ParseActivityType(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// UnmarshalText accepts any spelling ParseTaxRegime accepts.
func (r *TaxRegime) UnmarshalText(text []byte) error {
	v, err := ParseTaxRegime(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// UnmarshalText accepts any spelling ParseSocialRegime accepts.
func (r *SocialContributionRegime) UnmarshalText(text []byte) error {
	v, err := ParseSocialRegime(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// UnmarshalText accepts any spelling ParseVatRegime accepts.
func (r *VatRegime) UnmarshalText(text []byte) error {
	v, err := ParseVatRegime(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
