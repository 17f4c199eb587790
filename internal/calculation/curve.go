package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultFactorDecrecimiento is the curve decay used when none is configured.
var DefaultFactorDecrecimiento = decimal.NewFromInt(3)

// CurveConfig bounds the premium-rate curve of a coverage. Rates are
// fractions of the sum insured.
type CurveConfig struct {
	SumaMin             decimal.Decimal
	SumaMax             decimal.Decimal
	PrimaMinima         decimal.Decimal
	PrimaMaxima         decimal.Decimal
	FactorDecrecimiento decimal.Decimal
}

// PercentageRate returns the premium rate for a sum insured:
//
//	x    = (suma - SumaMin) / (SumaMax - SumaMin)
//	rate = PrimaMinima + (PrimaMaxima - PrimaMinima) * e^(-factor * x)
//
// clamped to [PrimaMinima, PrimaMaxima] and rounded to 6 decimals. The sum
// insured is not checked against [SumaMin, SumaMax]; values outside the range
// extrapolate the curve. A degenerate range (SumaMax == SumaMin) uses x = 0,
// which yields PrimaMaxima.
func PercentageRate(sumaAsegurada decimal.Decimal, cfg CurveConfig) decimal.Decimal {
	x := decimal.Zero
	if span := cfg.SumaMax.Sub(cfg.SumaMin); !span.IsZero() {
		x = sumaAsegurada.Sub(cfg.SumaMin).Div(span)
	}

	factor := cfg.FactorDecrecimiento
	if factor.IsZero() {
		factor = DefaultFactorDecrecimiento
	}

	decay := decimal.NewFromFloat(math.Exp(-factor.InexactFloat64() * x.InexactFloat64()))
	if x.IsZero() {
		decay = one
	}
	rate := cfg.PrimaMinima.Add(cfg.PrimaMaxima.Sub(cfg.PrimaMinima).Mul(decay))

	if rate.LessThan(cfg.PrimaMinima) {
		rate = cfg.PrimaMinima
	}
	if rate.GreaterThan(cfg.PrimaMaxima) {
		rate = cfg.PrimaMaxima
	}
	return rate.Round(6)
}

// CurvePremium prices a sum insured on the curve. A positive deductible
// (percent) discounts the premium by the same percentage.
func CurvePremium(sumaAsegurada decimal.Decimal, cfg CurveConfig, deducible decimal.Decimal) decimal.Decimal {
	return applyDeducible(sumaAsegurada.Mul(PercentageRate(sumaAsegurada, cfg)), deducible)
}

func applyDeducible(premium, deducible decimal.Decimal) decimal.Decimal {
	if deducible.IsPositive() {
		return premium.Mul(one.Sub(percentFactor(deducible)))
	}
	return premium
}
