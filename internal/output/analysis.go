package output

import (
	"sort"

	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/shopspring/decimal"
)

// CoverageShare is one coverage's slice of the base cost.
type CoverageShare struct {
	Nombre     string
	Prima      decimal.Decimal
	Porcentaje decimal.Decimal
}

// QuoteAnalysis summarizes where the premium of a quote comes from.
type QuoteAnalysis struct {
	Shares          []CoverageShare // largest first
	CoberturaMayor  string
	Amparadas       int
	TotalAjustes    decimal.Decimal
	CargaImpositiva decimal.Decimal // IVA as a percent of the total
}

// AnalyzeQuote ranks the coverages by premium and aggregates the adjustments.
// Extracted from the console formatters for testability.
func AnalyzeQuote(q *domain.Cotizacion) QuoteAnalysis {
	var a QuoteAnalysis
	base := q.Desglose.CostoBase
	for _, d := range q.Detalles {
		if d.Amparada {
			a.Amparadas++
		}
		pct := decimal.Zero
		if !base.IsZero() {
			pct = d.Prima.Div(base).Mul(decimalHundred)
		}
		a.Shares = append(a.Shares, CoverageShare{Nombre: d.NombreCobertura, Prima: d.Prima, Porcentaje: pct})
	}
	sort.SliceStable(a.Shares, func(i, j int) bool { return a.Shares[i].Prima.GreaterThan(a.Shares[j].Prima) })
	if len(a.Shares) > 0 {
		a.CoberturaMayor = a.Shares[0].Nombre
	}

	d := q.Desglose
	a.TotalAjustes = d.AjusteSiniestralidad.Sub(d.Bonificacion).Add(d.AjusteTipoPago)
	if !d.Total.IsZero() {
		a.CargaImpositiva = d.IVA.Div(d.Total).Mul(decimalHundred)
	}
	return a
}
