package output_test

import (
	"time"

	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/shopspring/decimal"
)

func mustDec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleQuote() *domain.Cotizacion {
	return &domain.Cotizacion{
		ID:              "cot-0002",
		FechaCotizacion: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		PaqueteID:       1,
		NombrePaquete:   "Basica",
		Detalles: []domain.DetalleCotizacion{
			{CoberturaID: 1, NombreCobertura: "Responsabilidad Civil", SumaAsegurada: mustDec("500000"), Prima: mustDec("2500")},
		},
		Desglose: domain.Desglose{
			CostoBase:              mustDec("2500"),
			SubtotalSiniestralidad: mustDec("2500"),
			CostoNeto:              mustDec("2500"),
			SubtotalTipoPago:       mustDec("2500"),
			MontoAntesIVA:          mustDec("2500"),
			IVA:                    mustDec("400"),
			Total:                  mustDec("2900"),
		},
	}
}
