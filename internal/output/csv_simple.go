package output

import (
	"bytes"
	"encoding/csv"

	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVSummarizer writes the cost breakdown as concept/amount rows, followed by
// the installments when the quote has a payment plan. Only amounts go in the
// Monto column; the discount percent is left to the other formats.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "breakdown-csv" }

func (c CSVSummarizer) Format(q *domain.Cotizacion) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Concepto", "Monto"}); err != nil {
		return nil, err
	}
	d := q.Desglose
	rows := []struct {
		concepto string
		monto    decimal.Decimal
	}{
		{"CostoBase", d.CostoBase},
		{"AjusteSiniestralidad", d.AjusteSiniestralidad},
		{"SubtotalSiniestralidad", d.SubtotalSiniestralidad},
		{"Bonificacion", d.Bonificacion},
		{"CostoNeto", d.CostoNeto},
		{"DerechoPoliza", d.DerechoPoliza},
		{"AjusteTipoPago", d.AjusteTipoPago},
		{"SubtotalTipoPago", d.SubtotalTipoPago},
		{"MontoAntesIVA", d.MontoAntesIVA},
		{"IVA", d.IVA},
		{"Total", d.Total},
	}
	for _, r := range rows {
		if err := w.Write([]string{r.concepto, r.monto.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	if p := q.PlanPagos; p != nil {
		for _, pago := range p.Pagos {
			row := []string{"Pago" + intToString(pago.Numero) + "@" + pago.FechaVencimiento.Format(dateLayout), pago.Monto.StringFixed(2)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		if err := w.Write([]string{"MontoTotalAjustado", p.MontoTotalAjustado.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
