package domain

import "github.com/shopspring/decimal"

// Severity grades a consequence or an alert.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rank orders severities for display: error > warning > success > info.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeveritySuccess:
		return 1
	default:
		return 0
	}
}

// ConsequenceRule is a configuration-triggered annotation. Title and
// description are translation keys, never display text.
type ConsequenceRule struct {
	ID             string                   `yaml:"id" json:"id"`
	Predicate      func(Configuration) bool `yaml:"-" json:"-"`
	Severity       Severity                 `yaml:"severity" json:"severity"`
	TitleKey       string                   `yaml:"title_key" json:"title_key"`
	DescriptionKey string                   `yaml:"description_key" json:"description_key"`
}

// Applies evaluates the rule against cfg. A rule without predicate never applies.
func (r ConsequenceRule) Applies(cfg Configuration) bool {
	return r.Predicate != nil && r.Predicate(cfg)
}

// ThresholdAlert is a turnover-triggered warning about a regulatory ceiling.
type ThresholdAlert struct {
	ID         string                                    `yaml:"id" json:"id"`
	Predicate  func(Configuration, decimal.Decimal) bool `yaml:"-" json:"-"`
	Severity   Severity                                  `yaml:"severity" json:"severity"`
	MessageKey string                                    `yaml:"message_key" json:"message_key"`
}

// Applies evaluates the alert against cfg and turnover.
func (a ThresholdAlert) Applies(cfg Configuration, turnover decimal.Decimal) bool {
	return a.Predicate != nil && a.Predicate(cfg, turnover)
}
