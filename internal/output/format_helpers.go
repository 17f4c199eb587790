package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/segurosmx/cotizador/internal/domain"
	money "github.com/segurosmx/cotizador/pkg/decimal"
)

// FormatCurrency formats a decimal as pesos with thousands separators and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a percentage (16 = 16%) with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.0125 = 1.25%) with 4 decimals.
func FormatRate(rate decimal.Decimal) string { return rate.Mul(decimalHundred).StringFixed(4) + "%" }

// FormatSumaAsegurada renders a detail line's sum insured; covered-without-
// value lines read AMPARADA.
func FormatSumaAsegurada(d domain.DetalleCotizacion) string {
	if d.Amparada {
		return "AMPARADA"
	}
	return FormatCurrency(d.SumaAsegurada)
}

const dateLayout = "2006-01-02"

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
