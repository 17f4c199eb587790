package output

import (
	"bytes"
	"encoding/csv"

	"github.com/segurosmx/cotizador/internal/domain"
)

// CSVDetailedExporter writes one row per priced coverage, in package order.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "csv" }

func (c CSVDetailedExporter) Format(q *domain.Cotizacion) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Folio", "CoberturaID", "Cobertura", "SumaAsegurada", "Deducible", "PorcentajeAplicado", "Prima", "Amparada"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, d := range q.Detalles {
		row := []string{
			q.ID,
			intToString(d.CoberturaID),
			d.NombreCobertura,
			d.SumaAsegurada.StringFixed(2),
			d.Deducible.StringFixed(2),
			d.PorcentajeAplicado.StringFixed(6),
			d.Prima.StringFixed(2),
			boolToString(d.Amparada),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
