package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeleccionCobertura is the user's explicit choice for one coverage. Empty
// strings mean "use the coverage default".
type SeleccionCobertura struct {
	SumaAsegurada string `yaml:"suma_asegurada,omitempty" json:"suma_asegurada,omitempty"`
	Deducible     string `yaml:"deducible,omitempty" json:"deducible,omitempty"`
}

// SolicitudCotizacion is a fully resolved quote request: every collaborator
// record the engine needs is already inlined.
type SolicitudCotizacion struct {
	Paquete       Paquete                    `yaml:"paquete" json:"paquete"`
	Reglas        []ReglaNegocio             `yaml:"reglas,omitempty" json:"reglas,omitempty"`
	Valores       FormValues                 `yaml:"valores,omitempty" json:"valores,omitempty"`
	Selecciones   map[int]SeleccionCobertura `yaml:"selecciones,omitempty" json:"selecciones,omitempty"`
	ValorVehiculo decimal.Decimal            `yaml:"valor_vehiculo" json:"valor_vehiculo"`

	AjusteCP *AjusteCP `yaml:"ajuste_cp,omitempty" json:"ajuste_cp,omitempty"`
	TipoPago *TipoPago `yaml:"tipo_pago,omitempty" json:"tipo_pago,omitempty"`

	// PorcentajeDescuento is the bonus discount, expected within [0, 35].
	PorcentajeDescuento decimal.Decimal `yaml:"porcentaje_descuento" json:"porcentaje_descuento"`
	DerechoPoliza       decimal.Decimal `yaml:"derecho_poliza" json:"derecho_poliza"`
	FechaInicio         time.Time       `yaml:"fecha_inicio,omitempty" json:"fecha_inicio,omitempty"`
}

// ValoresCobertura are a coverage's numeric bounds after business rules.
type ValoresCobertura struct {
	SumaAseguradaMin decimal.Decimal `json:"suma_asegurada_min"`
	SumaAseguradaMax decimal.Decimal `json:"suma_asegurada_max"`
	PrimaBase        decimal.Decimal `json:"prima_base"`
	DeducibleMin     decimal.Decimal `json:"deducible_min"`
	DeducibleMax     decimal.Decimal `json:"deducible_max"`
}

// DetalleCotizacion is the priced line of one coverage in a quote.
type DetalleCotizacion struct {
	CoberturaID        int             `json:"cobertura_id"`
	NombreCobertura    string          `json:"nombre_cobertura"`
	SumaAsegurada      decimal.Decimal `json:"suma_asegurada"`
	Deducible          decimal.Decimal `json:"deducible"`
	Prima              decimal.Decimal `json:"prima"`
	PorcentajeAplicado decimal.Decimal `json:"porcentaje_aplicado"`
	ValorAsegurado     decimal.Decimal `json:"valor_asegurado"`
	Amparada           bool            `json:"amparada"`
}

// Desglose is the itemized cost breakdown. Every step is a displayed line.
type Desglose struct {
	CostoBase              decimal.Decimal `json:"costo_base"`
	AjusteSiniestralidad   decimal.Decimal `json:"ajuste_siniestralidad"`
	SubtotalSiniestralidad decimal.Decimal `json:"subtotal_siniestralidad"`
	PorcentajeDescuento    decimal.Decimal `json:"porcentaje_descuento"`
	Bonificacion           decimal.Decimal `json:"bonificacion"`
	CostoNeto              decimal.Decimal `json:"costo_neto"`
	DerechoPoliza          decimal.Decimal `json:"derecho_poliza"`
	AjusteTipoPago         decimal.Decimal `json:"ajuste_tipo_pago"`
	SubtotalTipoPago       decimal.Decimal `json:"subtotal_tipo_pago"`
	MontoAntesIVA          decimal.Decimal `json:"monto_antes_iva"`
	IVA                    decimal.Decimal `json:"iva"`
	Total                  decimal.Decimal `json:"total"`
}

// PlanPagos is the installment plan for a multi-payment TipoPago.
type PlanPagos struct {
	Divisor                 int             `json:"divisor"`
	PrimerPago              decimal.Decimal `json:"primer_pago"`
	PagoSubsecuente         decimal.Decimal `json:"pago_subsecuente"`
	NumeroPagosSubsecuentes int             `json:"numero_pagos_subsecuentes"`
	MontoTotalAjustado      decimal.Decimal `json:"monto_total_ajustado"`
	Pagos                   []Pago          `json:"pagos,omitempty"`
}

// Pago is a single dated installment.
type Pago struct {
	Numero           int             `json:"numero"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento"`
	Monto            decimal.Decimal `json:"monto"`
}

// Cotizacion is the result of pricing a SolicitudCotizacion.
type Cotizacion struct {
	ID              string              `json:"id"`
	FechaCotizacion time.Time           `json:"fecha_cotizacion"`
	PaqueteID       int                 `json:"paquete_id"`
	NombrePaquete   string              `json:"nombre_paquete"`
	Detalles        []DetalleCotizacion `json:"detalles"`
	Desglose        Desglose            `json:"desglose"`
	PlanPagos       *PlanPagos          `json:"plan_pagos,omitempty"`
	TipoPago        string              `json:"tipo_pago,omitempty"`
	CodigoPostal    string              `json:"codigo_postal,omitempty"`
}
