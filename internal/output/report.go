package output

import (
	"github.com/rgehrsitz/eisim/internal/calculation"
	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/rules"
	"github.com/rgehrsitz/eisim/internal/thresholds"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// ConsequenceView is a consequence with its text resolved.
type ConsequenceView struct {
	ID          string          `json:"id" yaml:"id"`
	Severity    domain.Severity `json:"severity" yaml:"severity"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
}

// AlertView is a threshold alert with its message resolved.
type AlertView struct {
	ID       string          `json:"id" yaml:"id"`
	Severity domain.Severity `json:"severity" yaml:"severity"`
	Message  string          `json:"message" yaml:"message"`
	Ceiling  string          `json:"ceiling,omitempty" yaml:"ceiling,omitempty"`
}

// ThresholdView holds the display strings of the ceilings for one activity.
type ThresholdView struct {
	MicroCeiling        string                         `json:"micro_ceiling" yaml:"micro_ceiling"`
	VatFranchise        thresholds.VatFranchiseDisplay `json:"vat_franchise" yaml:"vat_franchise"`
	VatActualSimplified string                         `json:"vat_actual_simplified" yaml:"vat_actual_simplified"`
}

// Report is everything shown for one simulation. Empty is set when the
// turnover is zero and the result should not be displayed.
type Report struct {
	Name         string                  `json:"name" yaml:"name"`
	Input        domain.SimulationInput  `json:"input" yaml:"input"`
	Result       domain.SimulationResult `json:"result" yaml:"result"`
	Empty        bool                    `json:"empty" yaml:"empty"`
	Consequences []ConsequenceView       `json:"consequences" yaml:"consequences"`
	Alerts       []AlertView             `json:"alerts" yaml:"alerts"`
	Thresholds   ThresholdView           `json:"thresholds" yaml:"thresholds"`
}

// Batch is the set of reports rendered together by a Formatter.
type Batch struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Language string    `json:"language" yaml:"language"`
	Reports  []*Report `json:"reports" yaml:"reports"`

	translator i18n.Translator
	money      *thresholds.Formatter
}

// Label translates key in the batch language.
func (b *Batch) Label(key string) string {
	if b.translator == nil {
		b.translator = i18n.New(b.Language)
	}
	return b.translator.Translate(key, nil)
}

// Money formats an amount in the batch locale.
func (b *Batch) Money(amount decimal.Decimal) string {
	return b.formatter().FormatCurrency(amount)
}

// Rate formats a rate in the batch locale.
func (b *Batch) Rate(rate decimal.Decimal) string {
	return b.formatter().FormatRate(rate)
}

func (b *Batch) formatter() *thresholds.Formatter {
	if b.money == nil {
		b.money = thresholds.NewFormatter(domain.DefaultThresholds(), language.Make(b.Language))
	}
	return b.money
}

// Reporter assembles reports from the engine, the rule evaluator and the
// threshold formatter.
type Reporter struct {
	Engine     *calculation.CalculationEngine
	Evaluator  *rules.Evaluator
	Formatter  *thresholds.Formatter
	Translator i18n.Translator
	Language   string
}

// NewReporter builds a reporter over th producing text in lang.
func NewReporter(th domain.Thresholds, lang string) *Reporter {
	lang = i18n.MatchLanguage(lang)
	return &Reporter{
		Engine:     calculation.NewCalculationEngineWithThresholds(th),
		Evaluator:  rules.NewEvaluator(th),
		Formatter:  thresholds.NewFormatter(th, language.Make(lang)),
		Translator: i18n.New(lang),
		Language:   lang,
	}
}

// Build runs one simulation and resolves its rules.
func (r *Reporter) Build(name string, input domain.SimulationInput) *Report {
	cfg := input.Configuration
	report := &Report{
		Name:         name,
		Input:        input,
		Result:       r.Engine.Calculate(input),
		Empty:        input.Turnover.IsZero(),
		Consequences: r.Consequences(cfg),
		Alerts:       r.Alerts(cfg, input.Turnover),
		Thresholds:   r.Thresholds(cfg.ActivityType),
	}
	return report
}

// Consequences resolves the consequences of cfg, in catalog order.
func (r *Reporter) Consequences(cfg domain.Configuration) []ConsequenceView {
	matched := r.Evaluator.ConsequencesFor(cfg)
	views := make([]ConsequenceView, 0, len(matched))
	for _, c := range matched {
		views = append(views, ConsequenceView{
			ID:          c.ID,
			Severity:    c.Severity,
			Title:       r.Translator.Translate(c.TitleKey, nil),
			Description: r.Translator.Translate(c.DescriptionKey, nil),
		})
	}
	return views
}

// Alerts resolves the alerts of cfg at turnover, most severe first.
func (r *Reporter) Alerts(cfg domain.Configuration, turnover decimal.Decimal) []AlertView {
	matched := rules.SortAlertsBySeverity(r.Evaluator.AlertsFor(cfg, turnover))
	views := make([]AlertView, 0, len(matched))
	for _, a := range matched {
		view := AlertView{ID: a.ID, Severity: a.Severity}
		params := map[string]string{}
		if ceiling, ok := r.Evaluator.AlertCeiling(a.ID, cfg.ActivityType); ok {
			view.Ceiling = r.Formatter.FormatCurrency(ceiling)
			params["ceiling"] = view.Ceiling
		}
		view.Message = r.Translator.Translate(a.MessageKey, params)
		views = append(views, view)
	}
	return views
}

// Thresholds returns the ceiling displays for activity.
func (r *Reporter) Thresholds(activity domain.BusinessActivityType) ThresholdView {
	return ThresholdView{
		MicroCeiling:        r.Formatter.FlatRateThresholdDisplay(activity),
		VatFranchise:        r.Formatter.VatFranchiseThresholdDisplay(activity),
		VatActualSimplified: r.Formatter.VatActualRegimeThresholdDisplay(activity),
	}
}

// NewBatch wraps reports for rendering.
func (r *Reporter) NewBatch(name string, reports ...*Report) *Batch {
	return &Batch{
		Name:       name,
		Language:   r.Language,
		Reports:    reports,
		translator: r.Translator,
		money:      r.Formatter,
	}
}

// BuildFile builds one report per simulation of a parsed input file.
func (r *Reporter) BuildFile(file *config.SimulationFile) *Batch {
	reports := make([]*Report, 0, len(file.Simulations))
	for _, spec := range file.Simulations {
		reports = append(reports, r.Build(spec.Name, spec.SimulationInput))
	}
	return r.NewBatch(file.Name, reports...)
}
