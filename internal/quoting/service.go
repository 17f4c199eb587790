package quoting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/segurosmx/cotizador/internal/calculation"
	"github.com/segurosmx/cotizador/internal/config"
	"github.com/segurosmx/cotizador/internal/domain"
)

var (
	ErrInvalidQuote        = errors.New("invalid quote request")
	ErrPackageNotFound     = errors.New("coverage package not found")
	ErrPaymentTypeNotFound = errors.New("payment type not found")
	ErrCatalogUnavailable  = errors.New("catalog backend unavailable")
	ErrInvalidCatalog      = errors.New("invalid catalog record")
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mock_quoting

// CatalogSource serves the catalog records a quote references by id.
type CatalogSource interface {
	GetPaquete(ctx context.Context, id int) (*domain.Paquete, error)
	GetReglas(ctx context.Context, paqueteID int) ([]domain.ReglaNegocio, error)
	GetTipoPago(ctx context.Context, id int) (*domain.TipoPago, error)
}

// AjusteCPSource looks up postal-code loss-ratio adjustments. A nil result
// with no error means the postal code has no adjustment.
type AjusteCPSource interface {
	GetAjusteCP(ctx context.Context, cp string) (*domain.AjusteCP, error)
}

// IQuoteService exposes the quoting operations served over HTTP.
type IQuoteService interface {
	Quote(ctx context.Context, cmd QuoteCommand) (*domain.Cotizacion, error)
	Calculate(ctx context.Context, req *domain.SolicitudCotizacion) (*domain.Cotizacion, error)
	Schedule(cmd ScheduleCommand) (*domain.PlanPagos, error)
}

// QuoteCommand references the catalog records of a quote by id.
type QuoteCommand struct {
	PaqueteID           int                               `json:"paquete_id"`
	CodigoPostal        string                            `json:"codigo_postal"`
	TipoPagoID          int                               `json:"tipo_pago_id"`
	Valores             domain.FormValues                 `json:"valores"`
	Selecciones         map[int]domain.SeleccionCobertura `json:"selecciones"`
	ValorVehiculo       decimal.Decimal                   `json:"valor_vehiculo"`
	PorcentajeDescuento decimal.Decimal                   `json:"porcentaje_descuento"`
	DerechoPoliza       decimal.Decimal                   `json:"derecho_poliza"`
	FechaInicio         time.Time                         `json:"fecha_inicio"`
}

// ScheduleCommand asks for the installment plan of an already computed total.
type ScheduleCommand struct {
	Total         decimal.Decimal `json:"total"`
	TipoPago      domain.TipoPago `json:"tipo_pago"`
	DerechoPoliza decimal.Decimal `json:"derecho_poliza"`
	FechaInicio   time.Time       `json:"fecha_inicio"`
}

// Service resolves quote commands against the catalog and prices them.
type Service struct {
	catalog   CatalogSource
	ajustes   AjusteCPSource
	engine    *calculation.QuoteEngine
	validator *config.InputParser
	logger    calculation.Logger
}

var _ IQuoteService = (*Service)(nil)

// NewService wires a quote service. ajustes may be nil, in which case no
// postal-code adjustment is ever applied.
func NewService(catalog CatalogSource, ajustes AjusteCPSource, engine *calculation.QuoteEngine, logger calculation.Logger) *Service {
	if engine == nil {
		engine = calculation.NewQuoteEngine()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Service{
		catalog:   catalog,
		ajustes:   ajustes,
		engine:    engine,
		validator: config.NewInputParser(),
		logger:    logger,
	}
}

// Quote fetches the package, its rules, the payment type and the postal-code
// adjustment concurrently and runs the engine over the resolved request.
func (s *Service) Quote(ctx context.Context, cmd QuoteCommand) (*domain.Cotizacion, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}
	req, err := s.Resolve(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return s.engine.Calculate(ctx, req)
}

// Resolve turns a command into a fully inlined quote request. A failed
// postal-code lookup is logged and quoted without adjustment, and a package
// without rules is quoted with none; every other lookup failure is returned.
func (s *Service) Resolve(ctx context.Context, cmd QuoteCommand) (*domain.SolicitudCotizacion, error) {
	var (
		paquete  *domain.Paquete
		reglas   []domain.ReglaNegocio
		tipoPago *domain.TipoPago
		ajuste   *domain.AjusteCP
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.catalog.GetPaquete(gctx, cmd.PaqueteID)
		if err != nil {
			return catalogError(err, ErrPackageNotFound, "paquete %d", cmd.PaqueteID)
		}
		paquete = p
		return nil
	})
	g.Go(func() error {
		r, err := s.catalog.GetReglas(gctx, cmd.PaqueteID)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("paquete %d has no reglas", cmd.PaqueteID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reglas de paquete %d: %w: %w", cmd.PaqueteID, ErrCatalogUnavailable, err)
		}
		reglas = r
		return nil
	})
	if cmd.TipoPagoID != 0 {
		g.Go(func() error {
			tp, err := s.catalog.GetTipoPago(gctx, cmd.TipoPagoID)
			if err != nil {
				return catalogError(err, ErrPaymentTypeNotFound, "tipo pago %d", cmd.TipoPagoID)
			}
			tipoPago = tp
			return nil
		})
	}
	if cmd.CodigoPostal != "" && s.ajustes != nil {
		g.Go(func() error {
			a, err := s.ajustes.GetAjusteCP(gctx, cmd.CodigoPostal)
			if err != nil {
				s.logger.Warnf("ajuste cp %s unavailable, quoting without it: %v", cmd.CodigoPostal, err)
				return nil
			}
			ajuste = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if paquete == nil {
		return nil, fmt.Errorf("paquete %d: %w", cmd.PaqueteID, ErrPackageNotFound)
	}
	if cmd.TipoPagoID != 0 && tipoPago == nil {
		return nil, fmt.Errorf("tipo pago %d: %w", cmd.TipoPagoID, ErrPaymentTypeNotFound)
	}
	if tipoPago != nil && tipoPago.Divisor > domain.MaxDivisor {
		return nil, fmt.Errorf("tipo pago %d: divisor %d exceeds %d: %w", cmd.TipoPagoID, tipoPago.Divisor, domain.MaxDivisor, ErrInvalidCatalog)
	}

	return &domain.SolicitudCotizacion{
		Paquete:             *paquete,
		Reglas:              reglas,
		Valores:             cmd.Valores,
		Selecciones:         cmd.Selecciones,
		ValorVehiculo:       cmd.ValorVehiculo,
		AjusteCP:            ajuste,
		TipoPago:            tipoPago,
		PorcentajeDescuento: cmd.PorcentajeDescuento,
		DerechoPoliza:       cmd.DerechoPoliza,
		FechaInicio:         cmd.FechaInicio,
	}, nil
}

// Calculate prices a request whose catalog records are already inlined.
func (s *Service) Calculate(ctx context.Context, req *domain.SolicitudCotizacion) (*domain.Cotizacion, error) {
	if err := s.validator.ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuote, err)
	}
	return s.engine.Calculate(ctx, req)
}

// Schedule computes the installment plan of a total. Single-payment plans
// yield nil.
func (s *Service) Schedule(cmd ScheduleCommand) (*domain.PlanPagos, error) {
	if cmd.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total cannot be negative", ErrInvalidQuote)
	}
	if cmd.DerechoPoliza.IsNegative() {
		return nil, fmt.Errorf("%w: derecho_poliza cannot be negative", ErrInvalidQuote)
	}
	if cmd.TipoPago.Divisor > domain.MaxDivisor {
		return nil, fmt.Errorf("%w: divisor cannot exceed %d", ErrInvalidQuote, domain.MaxDivisor)
	}
	if _, ok := calculation.ParseDecimal(cmd.TipoPago.PorcentajeAjuste); !ok {
		return nil, fmt.Errorf("%w: porcentaje_ajuste %q is not a number", ErrInvalidQuote, cmd.TipoPago.PorcentajeAjuste)
	}
	plan := calculation.CalculatePaymentSchedule(cmd.Total, &cmd.TipoPago, cmd.DerechoPoliza)
	if plan != nil && !cmd.FechaInicio.IsZero() {
		plan.Pagos = calculation.BuildInstallments(plan, cmd.FechaInicio)
	}
	return plan, nil
}

func validateCommand(cmd QuoteCommand) error {
	switch {
	case cmd.PaqueteID <= 0:
		return fmt.Errorf("%w: paquete_id must be positive", ErrInvalidQuote)
	case cmd.TipoPagoID < 0:
		return fmt.Errorf("%w: tipo_pago_id cannot be negative", ErrInvalidQuote)
	case cmd.ValorVehiculo.IsNegative():
		return fmt.Errorf("%w: valor_vehiculo cannot be negative", ErrInvalidQuote)
	case cmd.DerechoPoliza.IsNegative():
		return fmt.Errorf("%w: derecho_poliza cannot be negative", ErrInvalidQuote)
	case cmd.PorcentajeDescuento.IsNegative() || cmd.PorcentajeDescuento.GreaterThan(calculation.MaxPorcentajeDescuento):
		return fmt.Errorf("%w: porcentaje_descuento must be between 0 and %s", ErrInvalidQuote, calculation.MaxPorcentajeDescuento)
	}
	return nil
}

func catalogError(err, notFound error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", what, notFound)
	}
	return fmt.Errorf("%s: %w: %w", what, ErrCatalogUnavailable, err)
}
