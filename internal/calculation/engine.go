package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrNilRequest   = errors.New("quote request is nil")
	ErrEmptyPackage = errors.New("coverage package has no coverages")
)

// QuoteEngine prices coverage packages. It holds no quote state; a single
// engine may serve concurrent calls.
type QuoteEngine struct {
	Logger Logger
}

// NewQuoteEngine creates a new quote engine with a no-op logger
func NewQuoteEngine() *QuoteEngine {
	return &QuoteEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the quote engine. If nil is provided, a no-op logger is used.
func (qe *QuoteEngine) SetLogger(l Logger) {
	if l == nil {
		qe.Logger = NopLogger{}
		return
	}
	qe.Logger = l
}

func (qe *QuoteEngine) log() Logger {
	if qe.Logger == nil {
		return NopLogger{}
	}
	return qe.Logger
}

// Calculate prices every coverage of the requested package, runs the
// adjustment pipeline over their summed premiums and, for multi-payment
// plans, derives the installment schedule.
func (qe *QuoteEngine) Calculate(ctx context.Context, req *domain.SolicitudCotizacion) (*domain.Cotizacion, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.Paquete.Coberturas) == 0 {
		return nil, fmt.Errorf("paquete %d: %w", req.Paquete.PaqueteID, ErrEmptyPackage)
	}
	log := qe.log()

	detalles := make([]domain.DetalleCotizacion, 0, len(req.Paquete.Coberturas))
	costoBase := decimal.Zero
	for _, cov := range req.Paquete.Coberturas {
		detalle := qe.PriceCoverage(cov, req)
		detalles = append(detalles, detalle)
		costoBase = costoBase.Add(detalle.Prima)
	}

	desglose := computeBreakdown(log, costoBase, req.AjusteCP, req.TipoPago, req.PorcentajeDescuento, req.DerechoPoliza)

	// The schedule is fed the net cost so that its adjusted total matches
	// the breakdown total.
	plan := calculatePaymentSchedule(log, desglose.CostoNeto, req.TipoPago, req.DerechoPoliza)
	now := nowFunc()
	if plan != nil {
		start := req.FechaInicio
		if start.IsZero() {
			start = now
		}
		plan.Pagos = BuildInstallments(plan, start)
	}

	quote := &domain.Cotizacion{
		ID:              idFunc(),
		FechaCotizacion: now,
		PaqueteID:       req.Paquete.PaqueteID,
		NombrePaquete:   req.Paquete.NombrePaquete,
		Detalles:        detalles,
		Desglose:        desglose,
		PlanPagos:       plan,
	}
	if req.TipoPago != nil {
		quote.TipoPago = req.TipoPago.Descripcion
	}
	if req.AjusteCP != nil {
		quote.CodigoPostal = req.AjusteCP.CodigoPostal
	}

	log.Infof("cotizacion %s: paquete=%d coberturas=%d total=%s", quote.ID, quote.PaqueteID, len(detalles), desglose.Total.StringFixed(2))
	return quote, nil
}

// PriceCoverage applies the business rules to one coverage, resolves the
// chosen sum insured and deductible and prices it.
func (qe *QuoteEngine) PriceCoverage(cov domain.Cobertura, req *domain.SolicitudCotizacion) domain.DetalleCotizacion {
	log := qe.log()
	valores := applyBusinessRules(log, cov, req.Reglas, req.Valores)
	sel := req.Selecciones[cov.CoberturaID]

	detalle := domain.DetalleCotizacion{
		CoberturaID:     cov.CoberturaID,
		NombreCobertura: cov.NombreCobertura,
		Amparada:        cov.SinValor,
	}

	suma := qe.resolveSumaAsegurada(cov, valores, sel, req.ValorVehiculo)
	detalle.SumaAsegurada = suma
	detalle.ValorAsegurado = suma
	if cov.AplicaSumaAsegurada {
		detalle.ValorAsegurado = req.ValorVehiculo
	}

	detalle.Deducible = valores.DeducibleMin
	if sel.Deducible != "" {
		detalle.Deducible = decimalOrZero(log, "Deducible", sel.Deducible)
	}

	switch {
	case cov.SinValor || (!cov.CoberturaVariable && cov.Curva == nil && !valores.PrimaBase.IsZero()):
		detalle.Prima = valores.PrimaBase
	case cov.Curva != nil:
		cfg := CurveConfig{
			SumaMin:             valores.SumaAseguradaMin,
			SumaMax:             valores.SumaAseguradaMax,
			PrimaMinima:         cov.Curva.PrimaMinima,
			PrimaMaxima:         cov.Curva.PrimaMaxima,
			FactorDecrecimiento: cov.Curva.FactorDecrecimiento,
		}
		detalle.PorcentajeAplicado = PercentageRate(suma, cfg)
		detalle.Prima = CurvePremium(suma, cfg, detalle.Deducible)
	default:
		rate := percentFactor(decimalOrZero(log, "PorcentajePrima", cov.PorcentajePrima))
		detalle.PorcentajeAplicado = rate
		detalle.Prima = applyDeducible(suma.Mul(rate), detalle.Deducible)
	}

	if detalle.Prima.IsNegative() {
		log.Warnf("cobertura %d: negative premium %s floored at 0", cov.CoberturaID, detalle.Prima)
		detalle.Prima = decimal.Zero
	}
	return detalle
}

// resolveSumaAsegurada picks the sum insured: none for no-value coverages,
// then an explicit selection (snapped to the selection step), then the
// vehicle value for coverages that insure it, then the rule-adjusted minimum.
func (qe *QuoteEngine) resolveSumaAsegurada(cov domain.Cobertura, valores domain.ValoresCobertura, sel domain.SeleccionCobertura, valorVehiculo decimal.Decimal) decimal.Decimal {
	log := qe.log()
	switch {
	case cov.SinValor:
		return decimal.Zero
	case sel.SumaAsegurada != "":
		suma := decimalOrZero(log, "SumaAsegurada", sel.SumaAsegurada)
		return SnapToStep(suma, decimalOrZero(log, "RangoSeleccion", cov.RangoSeleccion))
	case cov.AplicaSumaAsegurada:
		return valorVehiculo
	default:
		return valores.SumaAseguradaMin
	}
}

// SnapToStep rounds value to the nearest multiple of step. A non-positive
// step leaves value unchanged.
func SnapToStep(value, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		return value
	}
	return value.Div(step).Round(0).Mul(step)
}
