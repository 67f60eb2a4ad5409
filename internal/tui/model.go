package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/eisim/internal/calculation"
	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/output"
)

// Options configures a new simulator model
type Options struct {
	Language       string
	RegulatoryFile string
	Logger         calculation.Logger
}

// Model represents the entire simulator state
type Model struct {
	// Form
	focus         Field
	config        domain.Configuration
	turnover      decimal.Decimal
	expenses      decimal.Decimal
	turnoverInput textinput.Model
	expensesInput textinput.Model
	invalid       [fieldCount]bool

	// Terminal dimensions
	width  int
	height int

	// Derived state, rebuilt on every change
	thresholds domain.Thresholds
	reporter   *output.Reporter
	report     *output.Report

	language       string
	regulatoryFile string
	logger         calculation.Logger

	keys keyMap
	help help.Model

	// Error state
	err error
}

// NewModel creates a simulator on the default configuration with an
// empty turnover.
func NewModel(opts Options) Model {
	m := Model{
		focus:          FieldActivity,
		config:         domain.DefaultConfiguration(),
		turnoverInput:  newAmountInput(),
		expensesInput:  newAmountInput(),
		thresholds:     domain.DefaultThresholds(),
		language:       i18n.MatchLanguage(opts.Language),
		regulatoryFile: opts.RegulatoryFile,
		logger:         opts.Logger,
		help:           help.New(),
		width:          80,
		height:         24,
	}
	m.rebuildReporter()
	m.recalculate()
	return m
}

func newAmountInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 14
	ti.Width = 16
	return ti
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.regulatoryFile == "" {
		return nil
	}
	return loadThresholdsCmd(m.regulatoryFile)
}

// loadThresholdsCmd returns a command that reads a regulatory override
func loadThresholdsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		th, err := config.NewInputParser().LoadRegulatory(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ThresholdsLoadedMsg{Thresholds: th}
	}
}

// rebuildReporter applies the current thresholds and language.
func (m *Model) rebuildReporter() {
	m.reporter = output.NewReporter(m.thresholds, m.language)
	if m.logger != nil {
		m.reporter.Engine.SetLogger(m.logger)
	}
	m.keys = newKeyMap(m.reporter.Translator)
}

// recalculate runs the engine and the rule evaluator on the form state.
func (m *Model) recalculate() {
	input := domain.SimulationInput{
		Configuration: m.config,
		Turnover:      m.turnover,
		Expenses:      m.expenses,
	}
	m.report = m.reporter.Build("", input)
}

// Configuration returns the configuration being edited
func (m Model) Configuration() domain.Configuration {
	return m.config
}

// Report returns the report for the current form state
func (m Model) Report() *output.Report {
	return m.report
}

// Focus returns the focused field
func (m Model) Focus() Field {
	return m.focus
}

// Language returns the display language
func (m Model) Language() string {
	return m.language
}

func (m Model) label(key string) string {
	return m.reporter.Translator.Translate(key, nil)
}
