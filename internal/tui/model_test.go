package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := NewModel(Options{})

	assert.Equal(t, FieldActivity, m.Focus())
	assert.Equal(t, domain.DefaultConfiguration(), m.Configuration())
	assert.Equal(t, i18n.French, m.Language())
	assert.Nil(t, m.Init())
}

func TestView_EmptyTurnoverSuppressesResult(t *testing.T) {
	m := NewModel(Options{})

	require.True(t, m.Report().Empty)
	view := m.View()
	assert.Contains(t, view, i18n.T(i18n.French, "result.empty"))
	assert.NotContains(t, view, i18n.T(i18n.French, "result.net_income"))
	assert.Contains(t, view, "Prestations de services (BIC)")
	assert.Contains(t, view, "77 700 €")
}

func TestUpdate_TypingTurnoverRecalculates(t *testing.T) {
	m := send(t, NewModel(Options{}), keyDown, keyDown, keyDown, keyDown)
	require.Equal(t, FieldTurnover, m.Focus())

	m = send(t, m, typeText("50000"))

	report := m.Report()
	assert.False(t, report.Empty)
	assert.True(t, report.Result.NetIncomeBeforeTax.Equal(decimal.NewFromInt(39400)))
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "vat_franchise_majore_exceeded", report.Alerts[0].ID)

	view := m.View()
	assert.Contains(t, view, "39 400 €")
	assert.Contains(t, view, "10 600 €")
	assert.Contains(t, view, "41 250 €")
}

func TestUpdate_ExpensesUnderActualRegime(t *testing.T) {
	m := NewModel(Options{})
	m = send(t, m, keyDown, keyRight) // tax regime: REEL_SIMPLIFIE
	m = send(t, m, keyDown, keyRight) // social regime: TNS_CLASSIQUE
	m = send(t, m, keyDown, keyDown, typeText("60000"))
	m = send(t, m, keyDown, typeText("20000"))

	require.Equal(t, FieldExpenses, m.Focus())
	result := m.Report().Result
	assert.True(t, result.TaxableProfit.Equal(decimal.NewFromInt(40000)))
	require.NotNil(t, result.Details.DeductedExpenses)
	assert.Equal(t, domain.ContributionBaseProfit, result.ContributionBase)
}

func TestUpdate_ActivityChangeResetsTaxRegime(t *testing.T) {
	m := send(t, NewModel(Options{}), keyDown, keyRight)
	require.Equal(t, domain.TaxRegimeActualSimplified, m.Configuration().TaxRegime)

	m = send(t, m, keyUp, keyRight)

	cfg := m.Configuration()
	assert.Equal(t, domain.ActivityLiberalProfession, cfg.ActivityType)
	assert.Equal(t, domain.TaxRegimeFlatRate, cfg.TaxRegime)
	assert.True(t, cfg.IsConsistent())

	// Only regimes available for the activity are offered
	m = send(t, m, keyDown, keyRight)
	assert.Equal(t, domain.TaxRegimeControlledDeclaration, m.Configuration().TaxRegime)
	m = send(t, m, keyRight)
	assert.Equal(t, domain.TaxRegimeFlatRate, m.Configuration().TaxRegime)
}

func TestUpdate_CycleWrapsAround(t *testing.T) {
	m := send(t, NewModel(Options{}), keyLeft)
	assert.Equal(t, domain.ActivityGoodsSale, m.Configuration().ActivityType)

	m = send(t, m, keyLeft)
	assert.Equal(t, domain.ActivityLiberalProfession, m.Configuration().ActivityType)
}

func TestUpdate_FocusWrapsAround(t *testing.T) {
	m := send(t, NewModel(Options{}), keyUp)
	assert.Equal(t, FieldExpenses, m.Focus())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldActivity, m.Focus())
}

func TestUpdate_InvalidAmountKeepsLastValue(t *testing.T) {
	m := send(t, NewModel(Options{}), keyDown, keyDown, keyDown, keyDown, typeText("12"))
	require.True(t, m.Report().Input.Turnover.Equal(decimal.NewFromInt(12)))

	m = send(t, m, typeText("x"))

	assert.True(t, m.Report().Input.Turnover.Equal(decimal.NewFromInt(12)))
	assert.Contains(t, m.View(), i18n.T(i18n.French, "ui.invalid_amount"))
}

func TestUpdate_ToggleLanguage(t *testing.T) {
	m := send(t, NewModel(Options{}), tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Equal(t, i18n.English, m.Language())
	assert.Contains(t, m.View(), "Sole-proprietorship simulator")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, i18n.French, m.Language())
}

func TestUpdate_Quit(t *testing.T) {
	m := NewModel(Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestUpdate_ErrorIsDismissed(t *testing.T) {
	m := send(t, NewModel(Options{}), ErrorMsg{Err: errors.New("regulatory file unreadable")})
	assert.Contains(t, m.View(), "regulatory file unreadable")

	m = send(t, m, keyRight)
	assert.NotContains(t, m.View(), "regulatory file unreadable")
	assert.Equal(t, domain.ActivityServices, m.Configuration().ActivityType, "dismissing key is swallowed")
}

func TestInit_LoadsRegulatoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regulatory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("micro_ceilings:\n  bic_service: 83600\n"), 0o644))

	m := NewModel(Options{RegulatoryFile: path})
	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(ThresholdsLoadedMsg)
	require.True(t, ok)
	assert.True(t, loaded.Thresholds.MicroCeilings.Services.Equal(decimal.NewFromInt(83600)))

	m = send(t, m, msg)
	assert.Contains(t, m.View(), "83 600 €")
}

func TestInit_MissingRegulatoryFile(t *testing.T) {
	m := NewModel(Options{RegulatoryFile: filepath.Join(t.TempDir(), "missing.yaml")})
	_, ok := m.Init()().(ErrorMsg)
	assert.True(t, ok)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "0", true},
		{"50000", "50000", true},
		{"50 000", "50000", true},
		{"77 700 €", "77700", true},
		{"1234,5", "1234.5", true},
		{"1,234.50", "1234.5", true},
		{"-5", "0", false},
		{"abc", "0", false},
		{"1e999999999", "0", false},
		{"2 000 000 000 000", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseAmount(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestField(t *testing.T) {
	assert.True(t, FieldVatRegime.IsSelector())
	assert.False(t, FieldTurnover.IsSelector())
	assert.Equal(t, "ui.expenses", FieldExpenses.LabelKey())
	assert.Equal(t, "Turnover", FieldTurnover.String())
}
