package server

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/segurosmx/cotizador/internal/quoting"
)

const dateLayout = "2006-01-02"

// QuoteRequest is the body of POST /v1/quotes.
type QuoteRequest struct {
	PaqueteID           int                               `json:"paquete_id" binding:"required,gt=0"`
	CodigoPostal        string                            `json:"codigo_postal" binding:"omitempty,numeric,len=5"`
	TipoPagoID          int                               `json:"tipo_pago_id" binding:"gte=0"`
	Valores             domain.FormValues                 `json:"valores"`
	Selecciones         map[int]domain.SeleccionCobertura `json:"selecciones"`
	ValorVehiculo       decimal.Decimal                   `json:"valor_vehiculo"`
	PorcentajeDescuento decimal.Decimal                   `json:"porcentaje_descuento"`
	DerechoPoliza       decimal.Decimal                   `json:"derecho_poliza"`
	FechaInicio         string                            `json:"fecha_inicio" binding:"omitempty,datetime=2006-01-02"`
}

// ToCommand converts the request into a quote command.
func (r QuoteRequest) ToCommand() (quoting.QuoteCommand, error) {
	inicio, err := parseFecha(r.FechaInicio)
	if err != nil {
		return quoting.QuoteCommand{}, err
	}
	return quoting.QuoteCommand{
		PaqueteID:           r.PaqueteID,
		CodigoPostal:        r.CodigoPostal,
		TipoPagoID:          r.TipoPagoID,
		Valores:             r.Valores,
		Selecciones:         r.Selecciones,
		ValorVehiculo:       r.ValorVehiculo,
		PorcentajeDescuento: r.PorcentajeDescuento,
		DerechoPoliza:       r.DerechoPoliza,
		FechaInicio:         inicio,
	}, nil
}

// ScheduleRequest is the body of POST /v1/payment-schedule.
type ScheduleRequest struct {
	Total            decimal.Decimal `json:"total"`
	Divisor          int             `json:"divisor" binding:"required,gte=1,lte=12"`
	Descripcion      string          `json:"descripcion"`
	PorcentajeAjuste decimal.Decimal `json:"porcentaje_ajuste"`
	DerechoPoliza    decimal.Decimal `json:"derecho_poliza"`
	FechaInicio      string          `json:"fecha_inicio" binding:"omitempty,datetime=2006-01-02"`
}

// ToCommand converts the request into a schedule command.
func (r ScheduleRequest) ToCommand() (quoting.ScheduleCommand, error) {
	inicio, err := parseFecha(r.FechaInicio)
	if err != nil {
		return quoting.ScheduleCommand{}, err
	}
	return quoting.ScheduleCommand{
		Total: r.Total,
		TipoPago: domain.TipoPago{
			Descripcion:      r.Descripcion,
			PorcentajeAjuste: r.PorcentajeAjuste.String(),
			Divisor:          r.Divisor,
		},
		DerechoPoliza: r.DerechoPoliza,
		FechaInicio:   inicio,
	}, nil
}

// ScheduleResponse wraps the plan; PlanPagos is null for single payments.
type ScheduleResponse struct {
	Divisor   int               `json:"divisor"`
	PlanPagos *domain.PlanPagos `json:"plan_pagos"`
}

func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha_inicio: %w", err)
	}
	return t, nil
}
