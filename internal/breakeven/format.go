package breakeven

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/thresholds"
	"github.com/shopspring/decimal"
)

// TableFormatter formats a break-even result for the console
type TableFormatter struct {
	Translator i18n.Translator
	Formatter  *thresholds.Formatter
}

func (tf *TableFormatter) label(key string, params map[string]string) string {
	if tf.Translator == nil {
		tf.Translator = i18n.New(i18n.DefaultLanguage)
	}
	return tf.Translator.Translate(key, params)
}

func (tf *TableFormatter) money(d decimal.Decimal) string {
	if tf.Formatter == nil {
		return thresholds.FormatCurrency(d)
	}
	return tf.Formatter.FormatCurrency(d)
}

func (tf *TableFormatter) describe(cfg domain.Configuration) string {
	return tf.label("tax_regime."+string(cfg.TaxRegime), nil) + " / " +
		tf.label("social_regime."+string(cfg.SocialRegime), nil)
}

// Format generates the console report for result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder
	req := result.Request

	sb.WriteString(strings.ToUpper(tf.label("breakeven.title", nil)) + "\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("ui.activity", nil), tf.label("activity."+string(req.Base.ActivityType), nil)))
	sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("breakeven.base", nil), tf.describe(req.Base)))
	if req.Alternative != nil {
		sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("breakeven.alternative", nil), tf.describe(*req.Alternative)))
	}
	if req.Target == TargetExpenses {
		sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("result.turnover", nil), tf.money(req.Turnover)))
	} else {
		sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("result.expenses", nil), tf.money(req.Expenses)))
	}
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	amount := tf.money(result.Amount)
	switch req.Target {
	case TargetNetIncome:
		target := tf.money(*req.Constraints.TargetNet)
		sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("breakeven.target.net_income", map[string]string{"net": target}), amount))
		sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("result.net_income", nil), tf.money(result.BaseResult.NetIncomeBeforeTax)))
	default:
		sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("breakeven.target."+string(req.Target), nil), amount))
		sb.WriteString(fmt.Sprintf("%s: %s\n", tf.label("result.net_income", nil), tf.money(result.BaseResult.NetIncomeBeforeTax)))

		key := "breakeven.better_below"
		if result.AlternativeBetterAbove {
			key = "breakeven.better_above"
		}
		sb.WriteString("\n• " + tf.label(key, map[string]string{
			"regime": tf.describe(*req.Alternative),
			"amount": amount,
		}) + "\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
