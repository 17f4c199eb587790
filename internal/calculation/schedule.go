package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/segurosmx/cotizador/pkg/dateutil"
	money "github.com/segurosmx/cotizador/pkg/decimal"
)

// CalculatePaymentSchedule splits a quote into a first payment and equal
// subsequent payments. It returns nil for a missing payment type or a
// single-payment plan (divisor 1 or less).
//
// The first payment carries the whole policy fee and is taxed on its own:
//
//	primerPago         = (total/divisor + derecho) * (1 + ajuste%) * 1.16
//	montoTotalAjustado = (total + derecho) * (1 + ajuste%) * 1.16
//	pagoSubsecuente    = (montoTotalAjustado - primerPago) / (divisor - 1)
//
// so primerPago + (divisor-1)*pagoSubsecuente reconciles to
// montoTotalAjustado.
func CalculatePaymentSchedule(total decimal.Decimal, tipoPago *domain.TipoPago, derechoPoliza decimal.Decimal) *domain.PlanPagos {
	return calculatePaymentSchedule(NopLogger{}, total, tipoPago, derechoPoliza)
}

func calculatePaymentSchedule(log Logger, total decimal.Decimal, tipoPago *domain.TipoPago, derechoPoliza decimal.Decimal) *domain.PlanPagos {
	if tipoPago == nil || tipoPago.Divisor <= 1 {
		return nil
	}

	divisor := decimal.NewFromInt(int64(tipoPago.Divisor))
	ajuste := decimalOrZero(log, "PorcentajeAjuste", tipoPago.PorcentajeAjuste)
	derecho := money.NewMoneyFromDecimal(derechoPoliza)

	primerPagoBase := money.NewMoneyFromDecimal(total).Div(divisor).Add(derecho)
	primerPago := primerPagoBase.AddPercent(ajuste).WithTax(TasaIVA)

	montoTotalAjustado := money.NewMoneyFromDecimal(total).Add(derecho).AddPercent(ajuste).WithTax(TasaIVA)
	subsecuentes := tipoPago.Divisor - 1
	pagoSubsecuente := montoTotalAjustado.Sub(primerPago).Div(decimal.NewFromInt(int64(subsecuentes)))

	return &domain.PlanPagos{
		Divisor:                 tipoPago.Divisor,
		PrimerPago:              primerPago.Decimal,
		PagoSubsecuente:         pagoSubsecuente.Decimal,
		NumeroPagosSubsecuentes: subsecuentes,
		MontoTotalAjustado:      montoTotalAjustado.Decimal,
	}
}

// BuildInstallments lays the plan out on a calendar: the first payment is
// due on start and the rest every 12/divisor months, clamped to month end.
func BuildInstallments(plan *domain.PlanPagos, start time.Time) []domain.Pago {
	if plan == nil {
		return nil
	}
	interval := dateutil.InstallmentIntervalMonths(plan.Divisor)

	pagos := make([]domain.Pago, 0, plan.NumeroPagosSubsecuentes+1)
	pagos = append(pagos, domain.Pago{Numero: 1, FechaVencimiento: start, Monto: plan.PrimerPago})
	for i := 1; i <= plan.NumeroPagosSubsecuentes; i++ {
		pagos = append(pagos, domain.Pago{
			Numero:           i + 1,
			FechaVencimiento: dateutil.AddMonthsClamped(start, i*interval),
			Monto:            plan.PagoSubsecuente,
		})
	}
	return pagos
}
