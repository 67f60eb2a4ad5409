package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ThresholdsLoadedMsg:
		m.thresholds = msg.Thresholds
		m.rebuildReporter()
		m.recalculate()
		return m, nil
	}

	// Cursor blink and similar messages belong to the focused input
	return m.updateFocusedInput(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		// Any key dismisses the error
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Language):
		m.toggleLanguage()
		return m, nil
	}

	if m.focus.IsSelector() {
		switch {
		case key.Matches(msg, m.keys.Right):
			m.cycle(1)
		case key.Matches(msg, m.keys.Left):
			m.cycle(-1)
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// moveFocus moves to the next or previous field, wrapping around
func (m Model) moveFocus(dir int) (tea.Model, tea.Cmd) {
	m.focus = Field((int(m.focus) + dir + int(fieldCount)) % int(fieldCount))

	m.turnoverInput.Blur()
	m.expensesInput.Blur()

	var cmd tea.Cmd
	switch m.focus {
	case FieldTurnover:
		cmd = m.turnoverInput.Focus()
	case FieldExpenses:
		cmd = m.expensesInput.Focus()
	}
	return m, cmd
}

// cycle steps the focused selector through its values. Changing the
// activity goes through WithActivityType so an unavailable tax regime is
// reset at once.
func (m *Model) cycle(dir int) {
	switch m.focus {
	case FieldActivity:
		m.config = m.config.WithActivityType(step(domain.AllActivityTypes, m.config.ActivityType, dir))
	case FieldTaxRegime:
		available := domain.AvailableTaxRegimesFor(m.config.ActivityType)
		m.config = m.config.WithTaxRegime(step(available, m.config.TaxRegime, dir))
	case FieldSocialRegime:
		m.config = m.config.WithSocialRegime(step(domain.AllSocialRegimes, m.config.SocialRegime, dir))
	case FieldVatRegime:
		m.config = m.config.WithVatRegime(step(domain.AllVatRegimes, m.config.VatRegime, dir))
	default:
		return
	}
	m.recalculate()
}

func step[T comparable](values []T, current T, dir int) T {
	if len(values) == 0 {
		return current
	}
	idx := -1
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return values[0]
	}
	n := len(values)
	return values[(idx+dir+n)%n]
}

// updateFocusedInput forwards msg to the focused amount input and
// re-parses its value. An unparsable entry keeps the last valid amount.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldTurnover:
		m.turnoverInput, cmd = m.turnoverInput.Update(msg)
		if amount, ok := parseAmount(m.turnoverInput.Value()); ok {
			m.turnover = amount
			m.invalid[FieldTurnover] = false
		} else {
			m.invalid[FieldTurnover] = true
		}
	case FieldExpenses:
		m.expensesInput, cmd = m.expensesInput.Update(msg)
		if amount, ok := parseAmount(m.expensesInput.Value()); ok {
			m.expenses = amount
			m.invalid[FieldExpenses] = false
		} else {
			m.invalid[FieldExpenses] = true
		}
	default:
		return m, nil
	}
	m.recalculate()
	return m, cmd
}

// parseAmount reads an amount typed the French way: spaces group digits
// and a lone comma is the decimal separator. Empty input is zero and
// amounts config.CheckAmount refuses are rejected.
func parseAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "€", "", "_", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero, true
	}
	if strings.Count(cleaned, ",") == 1 && !strings.Contains(cleaned, ".") {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil || config.CheckAmount("amount", amount) != nil {
		return decimal.Zero, false
	}
	return amount, true
}

func (m *Model) toggleLanguage() {
	if m.language == i18n.French {
		m.language = i18n.English
	} else {
		m.language = i18n.French
	}
	m.rebuildReporter()
	m.recalculate()
}
