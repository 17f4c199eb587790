package output

import (
	"fmt"

	"github.com/segurosmx/cotizador/internal/calculation"
	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the pricing conventions rendered in detailed outputs.
var DefaultAssumptions = []string{
	fmt.Sprintf("IVA: %s%% sobre el monto antes de impuestos", calculation.TasaIVA.Mul(decimalHundred).StringFixed(0)),
	fmt.Sprintf("Bonificación máxima: %s%% del subtotal ajustado por siniestralidad", calculation.MaxPorcentajeDescuento.StringFixed(0)),
	"El ajuste por forma de pago se calcula sobre el costo neto más el derecho de póliza",
	"El primer pago incluye el derecho de póliza completo",
}

// GenerateAssumptions creates the notes list from the values actually used in a quote
func GenerateAssumptions(q *domain.Cotizacion) []string {
	notes := append([]string(nil), DefaultAssumptions...)
	d := q.Desglose
	if q.CodigoPostal != "" && !d.CostoBase.IsZero() {
		pct := d.AjusteSiniestralidad.Div(d.CostoBase).Mul(decimalHundred)
		notes = append(notes, fmt.Sprintf("Ajuste por siniestralidad del CP %s: %s", q.CodigoPostal, FormatPercentage(pct)))
	}
	if q.PlanPagos != nil {
		notes = append(notes, fmt.Sprintf("Forma de pago %s en %d exhibiciones", q.TipoPago, q.PlanPagos.Divisor))
	} else if q.TipoPago != "" {
		notes = append(notes, fmt.Sprintf("Forma de pago %s en una sola exhibición", q.TipoPago))
	}
	return notes
}

var decimalHundred = decimal.NewFromInt(100)
