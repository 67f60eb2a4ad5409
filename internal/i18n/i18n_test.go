package i18n

import (
	"testing"

	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/rules"
	"github.com/stretchr/testify/assert"
)

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		tag      string
		expected string
	}{
		{"fr", French},
		{"fr-FR", French},
		{"en", English},
		{"EN-gb", English},
		{"es", French},
		{"", French},
		{"not a tag", French},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchLanguage(tt.tag))
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, English, DetectLanguage("en-US,en;q=0.9"))
	assert.Equal(t, French, DetectLanguage("fr-FR,fr;q=0.8,en;q=0.5"))
	assert.Equal(t, French, DetectLanguage(""))
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Micro-entreprise", T("fr", "tax_regime.MICRO"))
	assert.Equal(t, "Micro-enterprise", T("en", "tax_regime.MICRO"))
	assert.Equal(t, "Micro-entreprise", T("es", "tax_regime.MICRO"))
	assert.Equal(t, "__nope__", T("en", "__nope__"))
}

func TestTranslate_Params(t *testing.T) {
	msg := New("fr").Translate("alerts.vat_franchise_exceeded", map[string]string{"ceiling": "85 000 €"})

	assert.Contains(t, msg, "85 000 €")
	assert.NotContains(t, msg, "{ceiling}")
}

func TestBundlesCoverEveryRule(t *testing.T) {
	for _, lang := range []string{French, English} {
		c := New(lang)
		for _, r := range rules.Consequences {
			assert.True(t, c.Has(r.TitleKey), "%s: %s", lang, r.TitleKey)
			assert.True(t, c.Has(r.DescriptionKey), "%s: %s", lang, r.DescriptionKey)
		}
		for _, a := range rules.NewAlertCatalog(domain.DefaultThresholds()) {
			assert.True(t, c.Has(a.MessageKey), "%s: %s", lang, a.MessageKey)
		}
	}
}

func TestBundlesHaveSameKeys(t *testing.T) {
	for _, key := range Keys() {
		assert.True(t, New(English).Has(key), key)
	}
	assert.Len(t, en, len(fr))
}

func TestCatalogSatisfiesTranslator(t *testing.T) {
	var tr Translator = New("en")
	assert.Equal(t, "Turnover", tr.Translate("result.turnover", nil))
}
