package compare

import (
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/thresholds"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func buildTestSet() *ComparisonSet {
	return &ComparisonSet{
		ActivityType:     domain.ActivityServices,
		Turnover:         decimal.NewFromInt(50000),
		Expenses:         decimal.NewFromInt(40000),
		BaseScenarioName: "MICRO + MICRO_SOCIAL",
		BaseResult: &ComparisonResult{
			ScenarioName:        "MICRO + MICRO_SOCIAL",
			Description:         "Micro-entreprise / Micro-social",
			Consistent:          true,
			Rank:                2,
			TaxableProfit:       decimal.NewFromInt(25000),
			SocialContributions: decimal.NewFromInt(10600),
			NetIncome:           decimal.NewFromInt(39400),
			AlertIDs:            []string{"vat_franchise_majore_exceeded"},
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:        "MICRO + TNS_CLASSIQUE",
				Description:         "Micro-entreprise / TNS classique",
				Consistent:          true,
				Rank:                1,
				TaxableProfit:       decimal.NewFromInt(25000),
				SocialContributions: decimal.NewFromInt(4500),
				NetIncome:           decimal.NewFromInt(45500),
				IncomeDiffFromBase:  decimal.NewFromInt(6100),
				IncomePctFromBase:   decimal.RequireFromString("15.48"),
			},
			{
				ScenarioName:       "REEL_SIMPLIFIE + MICRO_SOCIAL",
				Description:        "Réel simplifié / Micro-social",
				Consistent:         false,
				Rank:               3,
				NetIncome:          decimal.NewFromInt(-600),
				IncomeDiffFromBase: decimal.NewFromInt(-40000),
			},
		},
		Recommendations: []string{"Passer en Micro-entreprise / TNS classique augmenterait le revenu net de 6 100 €."},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.Format(buildTestSet())

	assert.Contains(t, result, "COMPARAISON DES RÉGIMES")
	assert.Contains(t, result, "Prestations de services (BIC)")
	assert.Contains(t, result, "> Micro-entreprise / Micro-social")
	assert.Contains(t, result, "Réel simplifié / Micro-social (!)")
	assert.Contains(t, result, "45 500 €")
	assert.Contains(t, result, "+6 100 €")
	assert.Contains(t, result, "• Passer en")
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	set := buildTestSet()
	set.AlternativeResults = nil
	set.Recommendations = nil

	result := (&TableFormatter{}).Format(set)

	assert.Contains(t, result, "39 400 €")
	assert.NotContains(t, result, "•")
}

func TestTableFormatter_English(t *testing.T) {
	formatter := &TableFormatter{
		Translator: i18n.New("en"),
		Formatter:  thresholds.NewFormatter(domain.DefaultThresholds(), language.English),
	}

	result := formatter.Format(buildTestSet())

	assert.Contains(t, result, "REGIME COMPARISON")
	assert.Contains(t, result, "€45,500")
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	result := (&TableFormatter{}).FormatCompact(buildTestSet())

	assert.True(t, strings.HasPrefix(result, "Base: MICRO + MICRO_SOCIAL | "))
	assert.Contains(t, result, "MICRO + TNS_CLASSIQUE: +6 100 €")
	assert.Contains(t, result, "REEL_SIMPLIFIE + MICRO_SOCIAL: -40 000 €")
}

func TestTableFormatter_truncate(t *testing.T) {
	tf := &TableFormatter{}
	assert.Equal(t, "short", tf.truncate("short", 10))
	assert.Equal(t, "Réel si...", tf.truncate("Réel simplifié", 10))
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(buildTestSet())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, []string{"MICRO + MICRO_SOCIAL", "base", "2"}, records[1][:3])
	assert.Equal(t, "alternative", records[2][1])
	assert.Equal(t, "false", records[3][5])
	assert.Equal(t, "39400.00", records[1][9])
	assert.Equal(t, "vat_franchise_majore_exceeded", records[1][13])
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		out, err := (&JSONFormatter{Pretty: pretty}).Format(buildTestSet())
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))

		assert.Equal(t, "MICRO + MICRO_SOCIAL", decoded["baseScenarioName"])
		assert.Equal(t, "MICRO + TNS_CLASSIQUE", decoded["bestScenarioName"])
		assert.Equal(t, "BIC_SERVICE", decoded["activityType"])
		assert.Len(t, decoded["alternativeResults"], 2)
		assert.Equal(t, pretty, strings.Contains(out, "\n"))
	}
}

func TestComparisonSet_Best_NoConsistentResult(t *testing.T) {
	set := &ComparisonSet{BaseResult: &ComparisonResult{Consistent: false}}
	assert.Nil(t, set.Best())

	recs := GenerateRecommendations(set, i18n.New("fr"), thresholds.FormatCurrency)
	assert.Equal(t, []string{i18n.T("fr", "compare.inconsistent")}, recs)
}
