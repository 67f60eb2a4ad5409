package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

// The functions are rebound per batch; these only satisfy Parse.
var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"t":    func(string) string { return "" },
	"curr": func(decimal.Decimal) string { return "" },
	"pct":  func(decimal.Decimal) string { return "" },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(batch *Batch) ([]byte, error) {
	tmpl, err := htmlTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{
		"t":    batch.Label,
		"curr": batch.Money,
		"pct":  batch.Rate,
	})

	var buf bytes.Buffer
	data := struct {
		*Batch
		Assumptions []string
	}{batch, DefaultAssumptions}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
