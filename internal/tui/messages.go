package tui

import (
	"github.com/rgehrsitz/eisim/internal/domain"
)

// Field identifies one input of the simulator form
type Field int

const (
	FieldActivity Field = iota
	FieldTaxRegime
	FieldSocialRegime
	FieldVatRegime
	FieldTurnover
	FieldExpenses

	fieldCount
)

// IsSelector reports whether the field cycles through a fixed set of values
// rather than taking typed input.
func (f Field) IsSelector() bool {
	return f < FieldTurnover
}

// LabelKey returns the translation key of the field label.
func (f Field) LabelKey() string {
	switch f {
	case FieldActivity:
		return "ui.activity"
	case FieldTaxRegime:
		return "ui.tax_regime"
	case FieldSocialRegime:
		return "ui.social_regime"
	case FieldVatRegime:
		return "ui.vat_regime"
	case FieldTurnover:
		return "ui.turnover"
	case FieldExpenses:
		return "ui.expenses"
	default:
		return ""
	}
}

func (f Field) String() string {
	switch f {
	case FieldActivity:
		return "Activity"
	case FieldTaxRegime:
		return "TaxRegime"
	case FieldSocialRegime:
		return "SocialRegime"
	case FieldVatRegime:
		return "VatRegime"
	case FieldTurnover:
		return "Turnover"
	case FieldExpenses:
		return "Expenses"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// QuitMsg signals the application should exit
type QuitMsg struct{}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ThresholdsLoadedMsg carries a regulatory table read from disk
type ThresholdsLoadedMsg struct {
	Thresholds domain.Thresholds
}
