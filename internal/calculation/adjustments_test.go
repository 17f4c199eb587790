package calculation

import (
	"testing"

	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "%s: expected %s, got %s", field, expected, actual)
}

func TestComputeBreakdown_Example(t *testing.T) {
	tipoPago := &domain.TipoPago{TipoPagoID: 3, Descripcion: "Semestral", PorcentajeAjuste: "3", Divisor: 6}

	d := ComputeBreakdown(dec("8000"), nil, tipoPago, dec("10"), dec("500"))

	assertDecimal(t, "8000", d.CostoBase, "CostoBase")
	assertDecimal(t, "0", d.AjusteSiniestralidad, "AjusteSiniestralidad")
	assertDecimal(t, "8000", d.SubtotalSiniestralidad, "SubtotalSiniestralidad")
	assertDecimal(t, "800", d.Bonificacion, "Bonificacion")
	assertDecimal(t, "7200", d.CostoNeto, "CostoNeto")
	assertDecimal(t, "231", d.AjusteTipoPago, "AjusteTipoPago")
	assertDecimal(t, "7431", d.SubtotalTipoPago, "SubtotalTipoPago")
	assertDecimal(t, "7931", d.MontoAntesIVA, "MontoAntesIVA")
	assertDecimal(t, "1268.96", d.IVA, "IVA")
	assertDecimal(t, "9199.96", d.Total, "Total")
}

func TestComputeBreakdown_PostalCodeAdjustment(t *testing.T) {
	ajuste := &domain.AjusteCP{CodigoPostal: "44100", AjustePrima: "12.5"}

	d := ComputeBreakdown(dec("10000"), ajuste, nil, decimal.Zero, decimal.Zero)
	assertDecimal(t, "1250", d.AjusteSiniestralidad, "AjusteSiniestralidad")
	assertDecimal(t, "11250", d.SubtotalSiniestralidad, "SubtotalSiniestralidad")
	assertDecimal(t, "11250", d.CostoNeto, "CostoNeto")
	assertDecimal(t, "0", d.AjusteTipoPago, "AjusteTipoPago")
	assertDecimal(t, "1800", d.IVA, "IVA")
	assertDecimal(t, "13050", d.Total, "Total")

	// A negative loss-ratio adjustment is a rebate.
	ajuste.AjustePrima = "-10"
	d = ComputeBreakdown(dec("10000"), ajuste, nil, decimal.Zero, decimal.Zero)
	assertDecimal(t, "-1000", d.AjusteSiniestralidad, "AjusteSiniestralidad")
	assertDecimal(t, "9000", d.SubtotalSiniestralidad, "SubtotalSiniestralidad")
}

func TestComputeBreakdown_NilCollaborators(t *testing.T) {
	d := ComputeBreakdown(dec("1000"), nil, nil, decimal.Zero, dec("250"))

	assertDecimal(t, "1000", d.CostoNeto, "CostoNeto")
	assertDecimal(t, "1000", d.SubtotalTipoPago, "SubtotalTipoPago")
	assertDecimal(t, "1250", d.MontoAntesIVA, "MontoAntesIVA")
	assertDecimal(t, "200", d.IVA, "IVA")
	assertDecimal(t, "1450", d.Total, "Total")
}

func TestComputeBreakdown_Identities(t *testing.T) {
	cases := []struct {
		name      string
		costoBase string
		ajusteCP  *domain.AjusteCP
		tipoPago  *domain.TipoPago
		descuento string
		derecho   string
	}{
		{"plain", "5000", nil, nil, "0", "0"},
		{"all adjustments", "12345.67", &domain.AjusteCP{AjustePrima: "7.5"}, &domain.TipoPago{PorcentajeAjuste: "4", Divisor: 12}, "15", "650"},
		{"max discount", "9999.99", &domain.AjusteCP{AjustePrima: "-3"}, &domain.TipoPago{PorcentajeAjuste: "0", Divisor: 2}, "35", "400"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := ComputeBreakdown(dec(tc.costoBase), tc.ajusteCP, tc.tipoPago, dec(tc.descuento), dec(tc.derecho))

			assert.True(t, d.SubtotalSiniestralidad.Equal(d.CostoBase.Add(d.AjusteSiniestralidad)))
			assert.True(t, d.CostoNeto.Equal(d.SubtotalSiniestralidad.Sub(d.Bonificacion)))
			assert.True(t, d.SubtotalTipoPago.Equal(d.CostoNeto.Add(d.AjusteTipoPago)))
			assert.True(t, d.MontoAntesIVA.Equal(d.SubtotalTipoPago.Add(d.DerechoPoliza)))
			assert.True(t, d.IVA.Equal(d.MontoAntesIVA.Mul(TasaIVA)))
			assert.True(t, d.Total.Equal(d.MontoAntesIVA.Add(d.IVA)))
		})
	}
}

func TestComputeBreakdown_ClampsDiscount(t *testing.T) {
	d := ComputeBreakdown(dec("1000"), nil, nil, dec("50"), decimal.Zero)
	assertDecimal(t, "35", d.PorcentajeDescuento, "PorcentajeDescuento")
	assertDecimal(t, "350", d.Bonificacion, "Bonificacion")

	d = ComputeBreakdown(dec("1000"), nil, nil, dec("-5"), decimal.Zero)
	assertDecimal(t, "0", d.PorcentajeDescuento, "PorcentajeDescuento")
	assertDecimal(t, "0", d.Bonificacion, "Bonificacion")
}

func TestClampDescuento(t *testing.T) {
	assertDecimal(t, "0", ClampDescuento(dec("-0.01")), "below")
	assertDecimal(t, "0", ClampDescuento(dec("0")), "zero")
	assertDecimal(t, "17.5", ClampDescuento(dec("17.5")), "inside")
	assertDecimal(t, "35", ClampDescuento(dec("35")), "max")
	assertDecimal(t, "35", ClampDescuento(dec("35.01")), "above")
}
