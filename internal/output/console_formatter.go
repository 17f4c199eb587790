package output

import (
	"bytes"
	"fmt"

	"github.com/segurosmx/cotizador/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(q *domain.Cotizacion) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RESUMEN DE COTIZACION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "%s %s: Total=%s Coberturas=%d\n", q.ID, q.NombrePaquete, FormatCurrency(q.Desglose.Total), len(q.Detalles))
	for _, d := range q.Detalles {
		fmt.Fprintf(&buf, "  %s: Suma=%s Prima=%s\n", d.NombreCobertura, FormatSumaAsegurada(d), FormatCurrency(d.Prima))
	}
	if p := q.PlanPagos; p != nil {
		fmt.Fprintf(&buf, "Pagos: 1 x %s + %d x %s\n", FormatCurrency(p.PrimerPago), p.NumeroPagosSubsecuentes, FormatCurrency(p.PagoSubsecuente))
	}
	a := AnalyzeQuote(q)
	if a.CoberturaMayor != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Mayor prima: %s (%s del costo base)\n", a.CoberturaMayor, FormatPercentage(a.Shares[0].Porcentaje))
	}
	return buf.Bytes(), nil
}
