package quoting_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/segurosmx/cotizador/internal/config"
	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/segurosmx/cotizador/internal/quoting"
	mock_quoting "github.com/segurosmx/cotizador/internal/quoting/mocks"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func paqueteBasico() *domain.Paquete {
	return &domain.Paquete{
		PaqueteID:     10,
		NombrePaquete: "Basico",
		Coberturas: []domain.Cobertura{
			{CoberturaID: 1, NombreCobertura: "Gastos Medicos", PrimaBase: "1000", SumaAseguradaMin: "200000", SumaAseguradaMax: "200000", DeducibleMin: "0", DeducibleMax: "0"},
		},
	}
}

func reglaJalisco() []domain.ReglaNegocio {
	return []domain.ReglaNegocio{{
		ReglaID:   1,
		TipoRegla: domain.TipoReglaPrima,
		EsGlobal:  true,
		Activa:    true,
		Condiciones: []domain.Condicion{
			{Campo: "Estado", Operador: domain.OperadorIgual, ValorComparacion: "Jalisco", Valor: "1200"},
		},
	}}
}

func semestral() *domain.TipoPago {
	return &domain.TipoPago{TipoPagoID: 2, Descripcion: "Semestral", PorcentajeAjuste: "5", Divisor: 2}
}

func command() quoting.QuoteCommand {
	return quoting.QuoteCommand{
		PaqueteID:           10,
		CodigoPostal:        "44100",
		TipoPagoID:          2,
		Valores:             domain.FormValues{"Estado": "Jalisco"},
		PorcentajeDescuento: dec("10"),
		DerechoPoliza:       dec("500"),
		FechaInicio:         time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

type sources struct {
	catalog *mock_quoting.MockCatalogSource
	ajustes *mock_quoting.MockAjusteCPSource
	svc     *quoting.Service
}

func newSources(t *testing.T) sources {
	ctrl := gomock.NewController(t)
	catalog := mock_quoting.NewMockCatalogSource(ctrl)
	ajustes := mock_quoting.NewMockAjusteCPSource(ctrl)
	return sources{catalog: catalog, ajustes: ajustes, svc: quoting.NewService(catalog, ajustes, nil, nil)}
}

func TestService_Quote(t *testing.T) {
	t.Run("resolves every collaborator", func(t *testing.T) {
		s := newSources(t)
		s.catalog.EXPECT().GetPaquete(gomock.Any(), 10).Return(paqueteBasico(), nil)
		s.catalog.EXPECT().GetReglas(gomock.Any(), 10).Return(reglaJalisco(), nil)
		s.catalog.EXPECT().GetTipoPago(gomock.Any(), 2).Return(semestral(), nil)
		s.ajustes.EXPECT().GetAjusteCP(gomock.Any(), "44100").Return(&domain.AjusteCP{CodigoPostal: "44100", AjustePrima: "10"}, nil)

		q, err := s.svc.Quote(context.Background(), command())
		require.NoError(t, err)

		require.Len(t, q.Detalles, 1)
		assert.True(t, dec("1200").Equal(q.Detalles[0].Prima), "rule should overwrite the base premium")
		assert.True(t, dec("120").Equal(q.Desglose.AjusteSiniestralidad))
		assert.True(t, dec("1188").Equal(q.Desglose.CostoNeto))
		assert.True(t, dec("84.4").Equal(q.Desglose.AjusteTipoPago))
		assert.True(t, dec("2055.984").Equal(q.Desglose.Total), "total %s", q.Desglose.Total)
		assert.Equal(t, "44100", q.CodigoPostal)
		assert.Equal(t, "Semestral", q.TipoPago)

		require.NotNil(t, q.PlanPagos)
		assert.True(t, dec("1332.492").Equal(q.PlanPagos.PrimerPago))
		assert.True(t, dec("723.492").Equal(q.PlanPagos.PagoSubsecuente))
		assert.True(t, q.PlanPagos.MontoTotalAjustado.Equal(q.Desglose.Total))
		require.Len(t, q.PlanPagos.Pagos, 2)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), q.PlanPagos.Pagos[1].FechaVencimiento)
	})

	t.Run("postal code failure quotes without adjustment", func(t *testing.T) {
		s := newSources(t)
		s.catalog.EXPECT().GetPaquete(gomock.Any(), 10).Return(paqueteBasico(), nil)
		s.catalog.EXPECT().GetReglas(gomock.Any(), 10).Return(reglaJalisco(), nil)
		s.catalog.EXPECT().GetTipoPago(gomock.Any(), 2).Return(semestral(), nil)
		s.ajustes.EXPECT().GetAjusteCP(gomock.Any(), "44100").Return(nil, errors.New("redis and backend down"))

		q, err := s.svc.Quote(context.Background(), command())
		require.NoError(t, err)
		assert.True(t, q.Desglose.AjusteSiniestralidad.IsZero())
		assert.True(t, dec("1924.44").Equal(q.Desglose.Total), "total %s", q.Desglose.Total)
		assert.Empty(t, q.CodigoPostal)
	})

	t.Run("single payment without postal code", func(t *testing.T) {
		s := newSources(t)
		s.catalog.EXPECT().GetPaquete(gomock.Any(), 10).Return(paqueteBasico(), nil)
		s.catalog.EXPECT().GetReglas(gomock.Any(), 10).Return(nil, nil)

		cmd := command()
		cmd.CodigoPostal = ""
		cmd.TipoPagoID = 0
		cmd.PorcentajeDescuento = decimal.Zero
		cmd.DerechoPoliza = decimal.Zero

		q, err := s.svc.Quote(context.Background(), cmd)
		require.NoError(t, err)
		assert.Nil(t, q.PlanPagos)
		assert.True(t, dec("1160").Equal(q.Desglose.Total), "total %s", q.Desglose.Total)
	})

	t.Run("package not found", func(t *testing.T) {
		s := newSources(t)
		s.catalog.EXPECT().GetPaquete(gomock.Any(), 10).Return(nil, fmt.Errorf("get paquete 10: %w", domain.ErrNotFound))
		s.catalog.EXPECT().GetReglas(gomock.Any(), 10).Return(nil, nil).AnyTimes()
		s.catalog.EXPECT().GetTipoPago(gomock.Any(), 2).Return(semestral(), nil).AnyTimes()
		s.ajustes.EXPECT().GetAjusteCP(gomock.Any(), "44100").Return(nil, nil).AnyTimes()

		_, err := s.svc.Quote(context.Background(), command())
		require.Error(t, err)
		assert.True(t, errors.Is(err, quoting.ErrPackageNotFound), "got %v", err)
	})

	t.Run("payment type not found", func(t *testing.T) {
		s := newSources(t)
		s.catalog.EXPECT().GetPaquete(gomock.Any(), 10).Return(paqueteBasico(), nil).AnyTimes()
		s.catalog.EXPECT().GetReglas(gomock.Any(), 10).Return(nil, nil).AnyTimes()
		s.catalog.EXPECT().GetTipoPago(gomock.Any(), 2).Return(nil, domain.ErrNotFound)
		s.ajustes.EXPECT().GetAjusteCP(gomock.Any(), "44100").Return(nil, nil).AnyTimes()

		_, err := s.svc.Quote(context.Background(), command())
		assert.True(t, errors.Is(err, quoting.ErrPaymentTypeNotFound), "got %v", err)
	})

	t.Run("rules backend failure", func(t *testing.T) {
		upstream := errors.New("status 503")
		s := newSources(t)
		s.catalog.EXPECT().GetPaquete(gomock.Any(), 10).Return(paqueteBasico(), nil).AnyTimes()
		s.catalog.EXPECT().GetReglas(gomock.Any(), 10).Return(nil, upstream)
		s.catalog.EXPECT().GetTipoPago(gomock.Any(), 2).Return(semestral(), nil).AnyTimes()
		s.ajustes.EXPECT().GetAjusteCP(gomock.Any(), "44100").Return(nil, nil).AnyTimes()

		_, err := s.svc.Quote(context.Background(), command())
		assert.True(t, errors.Is(err, quoting.ErrCatalogUnavailable), "got %v", err)
		assert.True(t, errors.Is(err, upstream))
	})

	t.Run("payment type split beyond monthly", func(t *testing.T) {
		s := newSources(t)
		quincenal := &domain.TipoPago{TipoPagoID: 2, Descripcion: "Quincenal", PorcentajeAjuste: "8", Divisor: 24}
		s.catalog.EXPECT().GetPaquete(gomock.Any(), 10).Return(paqueteBasico(), nil).AnyTimes()
		s.catalog.EXPECT().GetReglas(gomock.Any(), 10).Return(nil, nil).AnyTimes()
		s.catalog.EXPECT().GetTipoPago(gomock.Any(), 2).Return(quincenal, nil)
		s.ajustes.EXPECT().GetAjusteCP(gomock.Any(), "44100").Return(nil, nil).AnyTimes()

		_, err := s.svc.Quote(context.Background(), command())
		assert.True(t, errors.Is(err, quoting.ErrInvalidCatalog), "got %v", err)
	})

	t.Run("package without rules", func(t *testing.T) {
		s := newSources(t)
		s.catalog.EXPECT().GetPaquete(gomock.Any(), 10).Return(paqueteBasico(), nil)
		s.catalog.EXPECT().GetReglas(gomock.Any(), 10).Return(nil, fmt.Errorf("GET /reglas-negocio: %w", domain.ErrNotFound))
		s.catalog.EXPECT().GetTipoPago(gomock.Any(), 2).Return(semestral(), nil)
		s.ajustes.EXPECT().GetAjusteCP(gomock.Any(), "44100").Return(nil, nil)

		q, err := s.svc.Quote(context.Background(), command())
		require.NoError(t, err)
		require.Len(t, q.Detalles, 1)
		assert.True(t, dec("1000").Equal(q.Detalles[0].Prima), "base premium should stand without rules")
	})

	t.Run("invalid commands never reach the catalog", func(t *testing.T) {
		cases := map[string]func(*quoting.QuoteCommand){
			"no package":        func(c *quoting.QuoteCommand) { c.PaqueteID = 0 },
			"negative tipo":     func(c *quoting.QuoteCommand) { c.TipoPagoID = -1 },
			"negative vehicle":  func(c *quoting.QuoteCommand) { c.ValorVehiculo = dec("-1") },
			"negative fee":      func(c *quoting.QuoteCommand) { c.DerechoPoliza = dec("-10") },
			"discount too high": func(c *quoting.QuoteCommand) { c.PorcentajeDescuento = dec("35.01") },
			"negative discount": func(c *quoting.QuoteCommand) { c.PorcentajeDescuento = dec("-1") },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				s := newSources(t)
				cmd := command()
				mutate(&cmd)
				_, err := s.svc.Quote(context.Background(), cmd)
				assert.True(t, errors.Is(err, quoting.ErrInvalidQuote), "got %v", err)
			})
		}
	})
}

func TestService_QuoteWithoutAjusteSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mock_quoting.NewMockCatalogSource(ctrl)
	catalog.EXPECT().GetPaquete(gomock.Any(), 10).Return(paqueteBasico(), nil)
	catalog.EXPECT().GetReglas(gomock.Any(), 10).Return(nil, nil)
	catalog.EXPECT().GetTipoPago(gomock.Any(), 2).Return(semestral(), nil)

	svc := quoting.NewService(catalog, nil, nil, nil)
	q, err := svc.Quote(context.Background(), command())
	require.NoError(t, err)
	assert.True(t, q.Desglose.AjusteSiniestralidad.IsZero())
}

func TestService_Calculate(t *testing.T) {
	svc := quoting.NewService(nil, nil, nil, nil)

	q, err := svc.Calculate(context.Background(), config.NewInputParser().CreateExampleRequest())
	require.NoError(t, err)
	assert.Len(t, q.Detalles, 5)
	assert.True(t, q.Desglose.Total.IsPositive())

	bad := config.NewInputParser().CreateExampleRequest()
	bad.PorcentajeDescuento = dec("40")
	_, err = svc.Calculate(context.Background(), bad)
	assert.True(t, errors.Is(err, quoting.ErrInvalidQuote), "got %v", err)

	_, err = svc.Calculate(context.Background(), nil)
	assert.True(t, errors.Is(err, quoting.ErrInvalidQuote), "got %v", err)
}

func TestService_Schedule(t *testing.T) {
	svc := quoting.NewService(nil, nil, nil, nil)

	plan, err := svc.Schedule(quoting.ScheduleCommand{
		Total:         dec("10000"),
		TipoPago:      domain.TipoPago{Descripcion: "Semestral", PorcentajeAjuste: "5", Divisor: 2},
		DerechoPoliza: dec("500"),
		FechaInicio:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.True(t, dec("6699").Equal(plan.PrimerPago), "primer pago %s", plan.PrimerPago)
	assert.True(t, dec("6090").Equal(plan.PagoSubsecuente), "pago subsecuente %s", plan.PagoSubsecuente)
	assert.True(t, dec("12789").Equal(plan.MontoTotalAjustado))
	require.Len(t, plan.Pagos, 2)
	assert.Equal(t, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), plan.Pagos[1].FechaVencimiento)

	single, err := svc.Schedule(quoting.ScheduleCommand{Total: dec("10000"), TipoPago: domain.TipoPago{Divisor: 1}})
	require.NoError(t, err)
	assert.Nil(t, single)

	noDates, err := svc.Schedule(quoting.ScheduleCommand{Total: dec("1200"), TipoPago: domain.TipoPago{Divisor: 12}})
	require.NoError(t, err)
	require.NotNil(t, noDates)
	assert.Empty(t, noDates.Pagos)

	for name, cmd := range map[string]quoting.ScheduleCommand{
		"negative total": {Total: dec("-1"), TipoPago: domain.TipoPago{Divisor: 2}},
		"negative fee":   {Total: dec("1"), DerechoPoliza: dec("-1"), TipoPago: domain.TipoPago{Divisor: 2}},
		"bad adjustment": {Total: dec("1"), TipoPago: domain.TipoPago{Divisor: 2, PorcentajeAjuste: "cinco"}},
		"over twelve":    {Total: dec("1"), TipoPago: domain.TipoPago{Divisor: 24}},
	} {
		_, err := svc.Schedule(cmd)
		assert.True(t, errors.Is(err, quoting.ErrInvalidQuote), "%s: got %v", name, err)
	}
}
