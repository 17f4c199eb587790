package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/segurosmx/cotizador/internal/domain"
)

// ConsoleVerboseFormatter renders the full quote: coverages, breakdown and
// payment plan.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(q *domain.Cotizacion) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, "COTIZACION DE SEGURO DE AUTO")
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintf(&buf, "Folio:          %s\n", q.ID)
	fmt.Fprintf(&buf, "Fecha:          %s\n", q.FechaCotizacion.Format("2006-01-02 15:04"))
	fmt.Fprintf(&buf, "Paquete:        %s (%d)\n", q.NombrePaquete, q.PaqueteID)
	if q.CodigoPostal != "" {
		fmt.Fprintf(&buf, "Codigo postal:  %s\n", q.CodigoPostal)
	}
	if q.TipoPago != "" {
		fmt.Fprintf(&buf, "Forma de pago:  %s\n", q.TipoPago)
	}
	fmt.Fprintln(&buf)

	writeCoverages(&buf, q.Detalles)
	writeBreakdown(&buf, q.Desglose)
	if q.PlanPagos != nil {
		writeSchedule(&buf, q.PlanPagos)
	}

	fmt.Fprintln(&buf, "NOTAS:")
	for _, a := range GenerateAssumptions(q) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func writeCoverages(w io.Writer, detalles []domain.DetalleCotizacion) {
	fmt.Fprintln(w, "COBERTURAS")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "%-28s %18s %10s %14s\n", "Cobertura", "Suma asegurada", "Deducible", "Prima")
	for _, d := range detalles {
		fmt.Fprintf(w, "%-28s %18s %10s %14s\n",
			truncate(d.NombreCobertura, 28),
			FormatSumaAsegurada(d),
			FormatPercentage(d.Deducible),
			FormatCurrency(d.Prima),
		)
	}
	fmt.Fprintln(w)
}

func writeBreakdown(w io.Writer, d domain.Desglose) {
	fmt.Fprintln(w, "DESGLOSE")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	line := func(label string, v string) { fmt.Fprintf(w, "  %-40s %18s\n", label, v) }
	line("Costo base", FormatCurrency(d.CostoBase))
	line("Ajuste por siniestralidad", FormatCurrency(d.AjusteSiniestralidad))
	line("Subtotal", FormatCurrency(d.SubtotalSiniestralidad))
	line(fmt.Sprintf("Bonificacion (%s)", FormatPercentage(d.PorcentajeDescuento)), "-"+FormatCurrency(d.Bonificacion))
	line("Costo neto", FormatCurrency(d.CostoNeto))
	line("Ajuste por forma de pago", FormatCurrency(d.AjusteTipoPago))
	line("Subtotal forma de pago", FormatCurrency(d.SubtotalTipoPago))
	line("Derecho de poliza", FormatCurrency(d.DerechoPoliza))
	line("Monto antes de IVA", FormatCurrency(d.MontoAntesIVA))
	line("IVA", FormatCurrency(d.IVA))
	fmt.Fprintln(w, "  "+strings.Repeat("-", 59))
	line("TOTAL", FormatCurrency(d.Total))
	fmt.Fprintln(w)
}

func writeSchedule(w io.Writer, p *domain.PlanPagos) {
	fmt.Fprintf(w, "PLAN DE PAGOS (%d pagos)\n", p.Divisor)
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "  %-40s %18s\n", "Primer pago", FormatCurrency(p.PrimerPago))
	fmt.Fprintf(w, "  %-40s %18s\n", fmt.Sprintf("Pagos subsecuentes (%d)", p.NumeroPagosSubsecuentes), FormatCurrency(p.PagoSubsecuente))
	fmt.Fprintf(w, "  %-40s %18s\n", "Monto total", FormatCurrency(p.MontoTotalAjustado))
	if len(p.Pagos) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %3s  %-12s %18s\n", "#", "Vencimiento", "Monto")
		for _, pago := range p.Pagos {
			fmt.Fprintf(w, "  %3d  %-12s %18s\n", pago.Numero, pago.FechaVencimiento.Format(dateLayout), FormatCurrency(pago.Monto))
		}
	}
	fmt.Fprintln(w)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
