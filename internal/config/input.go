package config

import (
	"fmt"
	"os"
	"time"

	"github.com/segurosmx/cotizador/internal/calculation"
	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of quote request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a quote request from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.SolicitudCotizacion, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a quote request document.
func (ip *InputParser) Parse(data []byte) (*domain.SolicitudCotizacion, error) {
	var req domain.SolicitudCotizacion
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("quote request validation failed: %w", err)
	}

	return &req, nil
}

// ValidateRequest validates a quote request before it reaches the engine.
// The engine itself tolerates bad catalog strings; this catches the
// structural mistakes a hand-written file is prone to.
func (ip *InputParser) ValidateRequest(req *domain.SolicitudCotizacion) error {
	if req == nil {
		return fmt.Errorf("no quote request provided")
	}
	if len(req.Paquete.Coberturas) == 0 {
		return fmt.Errorf("paquete %d has no coberturas", req.Paquete.PaqueteID)
	}

	seen := make(map[int]bool, len(req.Paquete.Coberturas))
	for i := range req.Paquete.Coberturas {
		cov := &req.Paquete.Coberturas[i]
		if cov.CoberturaID <= 0 {
			return fmt.Errorf("cobertura %d: id must be positive", i)
		}
		if seen[cov.CoberturaID] {
			return fmt.Errorf("cobertura %d: duplicate id", cov.CoberturaID)
		}
		seen[cov.CoberturaID] = true
		if err := ip.validateCobertura(cov); err != nil {
			return fmt.Errorf("cobertura %d validation failed: %w", cov.CoberturaID, err)
		}
	}

	for id := range req.Selecciones {
		if !seen[id] {
			return fmt.Errorf("seleccion for unknown cobertura %d", id)
		}
	}

	for i := range req.Reglas {
		if err := ip.validateRegla(&req.Reglas[i]); err != nil {
			return fmt.Errorf("regla %d validation failed: %w", req.Reglas[i].ReglaID, err)
		}
	}

	if req.ValorVehiculo.IsNegative() {
		return fmt.Errorf("valor_vehiculo cannot be negative")
	}
	if req.DerechoPoliza.IsNegative() {
		return fmt.Errorf("derecho_poliza cannot be negative")
	}
	if req.PorcentajeDescuento.IsNegative() || req.PorcentajeDescuento.GreaterThan(calculation.MaxPorcentajeDescuento) {
		return fmt.Errorf("porcentaje_descuento must be between 0 and %s", calculation.MaxPorcentajeDescuento)
	}

	if req.TipoPago != nil {
		if req.TipoPago.Divisor < 1 || req.TipoPago.Divisor > domain.MaxDivisor {
			return fmt.Errorf("tipo_pago.divisor must be between 1 and %d", domain.MaxDivisor)
		}
		if _, ok := calculation.ParseDecimal(req.TipoPago.PorcentajeAjuste); !ok {
			return fmt.Errorf("tipo_pago.porcentaje_ajuste %q is not a number", req.TipoPago.PorcentajeAjuste)
		}
	}
	if req.AjusteCP != nil {
		if _, ok := calculation.ParseDecimal(req.AjusteCP.AjustePrima); !ok {
			return fmt.Errorf("ajuste_cp.ajuste_prima %q is not a number", req.AjusteCP.AjustePrima)
		}
	}

	return nil
}

func (ip *InputParser) validateCobertura(cov *domain.Cobertura) error {
	fields := []struct{ name, value string }{
		{"prima_base", cov.PrimaBase},
		{"suma_asegurada_min", cov.SumaAseguradaMin},
		{"suma_asegurada_max", cov.SumaAseguradaMax},
		{"deducible_min", cov.DeducibleMin},
		{"deducible_max", cov.DeducibleMax},
		{"porcentaje_prima", cov.PorcentajePrima},
		{"rango_seleccion", cov.RangoSeleccion},
	}
	for _, f := range fields {
		if _, ok := calculation.ParseDecimal(f.value); !ok {
			return fmt.Errorf("%s %q is not a number", f.name, f.value)
		}
	}

	if c := cov.Curva; c != nil {
		if c.PrimaMinima.IsNegative() || c.PrimaMaxima.IsNegative() {
			return fmt.Errorf("curva rates cannot be negative")
		}
		if c.PrimaMinima.GreaterThan(c.PrimaMaxima) {
			return fmt.Errorf("curva.prima_minima must not exceed curva.prima_maxima")
		}
		if c.FactorDecrecimiento.IsNegative() {
			return fmt.Errorf("curva.factor_decrecimiento cannot be negative")
		}
	}
	return nil
}

func (ip *InputParser) validateRegla(r *domain.ReglaNegocio) error {
	if !r.TipoRegla.Valid() {
		return fmt.Errorf("unknown tipo_regla %q", r.TipoRegla)
	}
	if !r.EsGlobal && r.Cobertura == nil {
		return fmt.Errorf("non-global rule must name a cobertura")
	}
	for i, c := range r.Condiciones {
		if c.Campo == "" {
			return fmt.Errorf("condicion %d: campo is required", i)
		}
		if !c.Operador.Valid() {
			return fmt.Errorf("condicion %d: unknown operador %q", i, c.Operador)
		}
	}
	return nil
}

// SaveRequest writes a quote request as YAML
func (ip *InputParser) SaveRequest(req *domain.SolicitudCotizacion, filename string) error {
	data, err := yaml.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode quote request: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleRequest creates an example quote request
func (ip *InputParser) CreateExampleRequest() *domain.SolicitudCotizacion {
	inicio, _ := time.Parse("2006-01-02", "2026-01-15")

	return &domain.SolicitudCotizacion{
		Paquete: domain.Paquete{
			PaqueteID:     1,
			NombrePaquete: "Amplia",
			Descripcion:   "Cobertura amplia para autos particulares",
			Coberturas: []domain.Cobertura{
				{
					CoberturaID:         1,
					NombreCobertura:     "Daños Materiales",
					SumaAseguradaMin:    "50000",
					SumaAseguradaMax:    "1500000",
					DeducibleMin:        "5",
					DeducibleMax:        "10",
					PorcentajePrima:     "2.8",
					AplicaSumaAsegurada: true,
				},
				{
					CoberturaID:         2,
					NombreCobertura:     "Robo Total",
					SumaAseguradaMin:    "50000",
					SumaAseguradaMax:    "1500000",
					DeducibleMin:        "10",
					DeducibleMax:        "20",
					PorcentajePrima:     "1.2",
					AplicaSumaAsegurada: true,
				},
				{
					CoberturaID:       3,
					NombreCobertura:   "Responsabilidad Civil",
					SumaAseguradaMin:  "500000",
					SumaAseguradaMax:  "3000000",
					DeducibleMin:      "0",
					DeducibleMax:      "0",
					RangoSeleccion:    "250000",
					CoberturaVariable: true,
					Curva: &domain.CurvaPrima{
						PrimaMinima:         decimal.NewFromFloat(0.004),
						PrimaMaxima:         decimal.NewFromFloat(0.009),
						FactorDecrecimiento: decimal.NewFromInt(3),
					},
				},
				{
					CoberturaID:      4,
					NombreCobertura:  "Gastos Médicos Ocupantes",
					SumaAseguradaMin: "200000",
					SumaAseguradaMax: "200000",
					PrimaBase:        "850",
				},
				{
					CoberturaID:     5,
					NombreCobertura: "Asistencia Legal",
					PrimaBase:       "450",
					SinValor:        true,
				},
			},
		},
		Reglas: []domain.ReglaNegocio{
			{
				ReglaID:        1,
				NombreRegla:    "Gastos médicos modelos recientes",
				TipoAplicacion: domain.TipoAplicacionMonto,
				TipoRegla:      domain.TipoReglaPrima,
				Activa:         true,
				Cobertura:      &domain.Cobertura{CoberturaID: 4},
				Condiciones: []domain.Condicion{
					{Campo: "Modelo", Operador: domain.OperadorMayorIgual, ValorComparacion: "2020", Valor: "700"},
				},
			},
			{
				ReglaID:        2,
				NombreRegla:    "Deducible Jalisco",
				TipoAplicacion: domain.TipoAplicacionPorcentaje,
				TipoRegla:      domain.TipoReglaDeducible,
				EsGlobal:       false,
				Activa:         true,
				Cobertura:      &domain.Cobertura{CoberturaID: 2},
				Condiciones: []domain.Condicion{
					{Campo: "Estado", Operador: domain.OperadorIgual, ValorComparacion: "Jalisco", Valor: "15"},
				},
			},
		},
		Valores: domain.FormValues{
			"Marca":  "NISSAN",
			"Modelo": 2022,
			"Estado": "Jalisco",
			"CP":     "44100",
		},
		Selecciones: map[int]domain.SeleccionCobertura{
			3: {SumaAsegurada: "1000000"},
		},
		ValorVehiculo: decimal.NewFromInt(320000),
		AjusteCP: &domain.AjusteCP{
			CodigoPostal:         "44100",
			IndiceSiniestralidad: "0.62",
			AjustePrima:          "7.5",
			CantidadSiniestros:   38,
		},
		TipoPago: &domain.TipoPago{
			TipoPagoID:       3,
			Descripcion:      "Trimestral",
			PorcentajeAjuste: "4",
			Divisor:          4,
		},
		PorcentajeDescuento: decimal.NewFromInt(10),
		DerechoPoliza:       decimal.NewFromInt(550),
		FechaInicio:         inicio,
	}
}
