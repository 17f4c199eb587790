package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/segurosmx/cotizador/internal/domain"
)

// HTMLFormatter produces a standalone HTML quote sheet.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/quote.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("quote").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"rate": FormatRate,
	"suma": FormatSumaAsegurada,
	"date": func(t time.Time) string { return t.Format(dateLayout) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(q *domain.Cotizacion) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Cotizacion
		Analysis    QuoteAnalysis
		Assumptions []string
	}{q, AnalyzeQuote(q), GenerateAssumptions(q)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
