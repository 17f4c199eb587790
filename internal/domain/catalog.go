package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cobertura is a coverage as served by the catalog backend. Monetary and
// percentage fields arrive as decimal strings and are parsed at quote time.
type Cobertura struct {
	CoberturaID     int    `yaml:"id" json:"CoberturaID"`
	NombreCobertura string `yaml:"nombre" json:"NombreCobertura"`
	Descripcion     string `yaml:"descripcion,omitempty" json:"Descripcion,omitempty"`

	PrimaBase        string `yaml:"prima_base,omitempty" json:"PrimaBase,omitempty"`
	SumaAseguradaMin string `yaml:"suma_asegurada_min" json:"SumaAseguradaMin"`
	SumaAseguradaMax string `yaml:"suma_asegurada_max" json:"SumaAseguradaMax"`
	DeducibleMin     string `yaml:"deducible_min" json:"DeducibleMin"` // percent
	DeducibleMax     string `yaml:"deducible_max" json:"DeducibleMax"` // percent
	PorcentajePrima  string `yaml:"porcentaje_prima,omitempty" json:"PorcentajePrima,omitempty"`
	RangoSeleccion   string `yaml:"rango_seleccion,omitempty" json:"RangoSeleccion,omitempty"`

	EsCoberturaEspecial bool `yaml:"es_especial,omitempty" json:"EsCoberturaEspecial"`
	CoberturaVariable   bool `yaml:"es_variable,omitempty" json:"CoberturaVariable"`
	SinValor            bool `yaml:"sin_valor,omitempty" json:"SinValor"`
	AplicaSumaAsegurada bool `yaml:"aplica_suma_asegurada,omitempty" json:"AplicaSumaAsegurada"`

	// Curva is set for coverages priced on the decreasing rate curve.
	Curva *CurvaPrima `yaml:"curva,omitempty" json:"Curva,omitempty"`
}

// CurvaPrima holds the rate bounds of a curve-priced coverage. Rates are
// fractions of the sum insured (0.025 = 2.5%).
type CurvaPrima struct {
	PrimaMinima         decimal.Decimal `yaml:"prima_minima" json:"PrimaMinima"`
	PrimaMaxima         decimal.Decimal `yaml:"prima_maxima" json:"PrimaMaxima"`
	FactorDecrecimiento decimal.Decimal `yaml:"factor_decrecimiento,omitempty" json:"FactorDecrecimiento"`
}

// Paquete is a named, ordered set of coverages offered together.
type Paquete struct {
	PaqueteID     int         `yaml:"id" json:"PaqueteCoberturaID"`
	NombrePaquete string      `yaml:"nombre" json:"NombrePaquete"`
	Descripcion   string      `yaml:"descripcion,omitempty" json:"Descripcion,omitempty"`
	Coberturas    []Cobertura `yaml:"coberturas" json:"Coberturas"`
}

// AjusteCP is the loss-ratio adjustment registered for a postal code.
type AjusteCP struct {
	CodigoPostal         string    `yaml:"codigo_postal" json:"CP"`
	IndiceSiniestralidad string    `yaml:"indice_siniestralidad,omitempty" json:"IndiceSiniestralidad"`
	AjustePrima          string    `yaml:"ajuste_prima" json:"AjustePrima"` // percent
	CantidadSiniestros   int       `yaml:"cantidad_siniestros,omitempty" json:"CantidadSiniestros"`
	UltimaActualizacion  time.Time `yaml:"ultima_actualizacion,omitempty" json:"UltimaActualizacion"`
}

// TipoPago is a payment plan. Divisor is the number of installments.
type TipoPago struct {
	TipoPagoID       int    `yaml:"id" json:"ID"`
	Descripcion      string `yaml:"descripcion" json:"Descripcion"`
	PorcentajeAjuste string `yaml:"porcentaje_ajuste" json:"PorcentajeAjuste"` // percent
	Divisor          int    `yaml:"divisor" json:"Divisor"`
}

// MaxDivisor is the most installments a yearly policy is split into.
const MaxDivisor = 12
