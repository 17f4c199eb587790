package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/segurosmx/cotizador/internal/domain"
	money "github.com/segurosmx/cotizador/pkg/decimal"
)

// TasaIVA is the fixed VAT rate applied to every quote.
var TasaIVA = decimal.NewFromFloat(0.16)

// MaxPorcentajeDescuento is the upper bound of the bonus discount percent.
var MaxPorcentajeDescuento = decimal.NewFromInt(35)

// ClampDescuento bounds a discount percentage to [0, MaxPorcentajeDescuento].
func ClampDescuento(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(MaxPorcentajeDescuento) {
		return MaxPorcentajeDescuento
	}
	return p
}

// ComputeBreakdown runs the sequential adjustment pipeline over the base
// cost of a quote:
//
//  1. postal-code loss-ratio adjustment on the base cost
//  2. bonus discount on the adjusted subtotal
//  3. payment-type adjustment on (policy fee + net cost)
//  4. policy fee, then 16% IVA
//
// A nil ajusteCP or tipoPago is a zero adjustment. The discount is expected
// to be within [0, 35] and is clamped if it is not.
func ComputeBreakdown(costoBase decimal.Decimal, ajusteCP *domain.AjusteCP, tipoPago *domain.TipoPago, porcentajeDescuento, derechoPoliza decimal.Decimal) domain.Desglose {
	return computeBreakdown(NopLogger{}, costoBase, ajusteCP, tipoPago, porcentajeDescuento, derechoPoliza)
}

func computeBreakdown(log Logger, costoBase decimal.Decimal, ajusteCP *domain.AjusteCP, tipoPago *domain.TipoPago, porcentajeDescuento, derechoPoliza decimal.Decimal) domain.Desglose {
	descuento := ClampDescuento(porcentajeDescuento)
	base := money.NewMoneyFromDecimal(costoBase)
	derecho := money.NewMoneyFromDecimal(derechoPoliza)

	siniestralidad := money.Zero()
	if ajusteCP != nil {
		siniestralidad = base.Percent(decimalOrZero(log, "AjustePrima", ajusteCP.AjustePrima))
	}
	subtotalSiniestralidad := base.Add(siniestralidad)

	bonificacion := subtotalSiniestralidad.Percent(descuento)
	costoNeto := subtotalSiniestralidad.Sub(bonificacion)

	ajusteTipoPago := money.Zero()
	if tipoPago != nil {
		ajusteTipoPago = derecho.Add(costoNeto).Percent(decimalOrZero(log, "PorcentajeAjuste", tipoPago.PorcentajeAjuste))
	}
	subtotalTipoPago := costoNeto.Add(ajusteTipoPago)

	antesIVA := subtotalTipoPago.Add(derecho)
	total := antesIVA.WithTax(TasaIVA)

	return domain.Desglose{
		CostoBase:              costoBase,
		AjusteSiniestralidad:   siniestralidad.Decimal,
		SubtotalSiniestralidad: subtotalSiniestralidad.Decimal,
		PorcentajeDescuento:    descuento,
		Bonificacion:           bonificacion.Decimal,
		CostoNeto:              costoNeto.Decimal,
		DerechoPoliza:          derechoPoliza,
		AjusteTipoPago:         ajusteTipoPago.Decimal,
		SubtotalTipoPago:       subtotalTipoPago.Decimal,
		MontoAntesIVA:          antesIVA.Decimal,
		IVA:                    total.Sub(antesIVA).Decimal,
		Total:                  total.Decimal,
	}
}
