package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/segurosmx/cotizador/internal/calculation"
	"github.com/segurosmx/cotizador/internal/domain"
	money "github.com/segurosmx/cotizador/pkg/decimal"
)

func newScheduleCmd() *cobra.Command {
	var (
		total   string
		divisor int
		ajuste  string
		derecho string
		inicio  string
	)
	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Split a net total into installments",
		Example: `  cotizador schedule --total 10000 --divisor 2 --ajuste 5 --derecho 500 --inicio 2026-01-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			totalM, err := money.NewMoneyFromString(total)
			if err != nil {
				return fmt.Errorf("invalid --total: %w", err)
			}
			derechoM, err := money.NewMoneyFromString(derecho)
			if err != nil {
				return fmt.Errorf("invalid --derecho: %w", err)
			}
			if _, ok := calculation.ParseDecimal(ajuste); !ok {
				return fmt.Errorf("invalid --ajuste %q", ajuste)
			}

			out := cmd.OutOrStdout()
			tipoPago := &domain.TipoPago{PorcentajeAjuste: ajuste, Divisor: divisor}
			plan := calculation.CalculatePaymentSchedule(totalM.Decimal, tipoPago, derechoM.Decimal)
			if plan == nil {
				fmt.Fprintln(out, "Pago de contado: sin plan de pagos")
				return nil
			}
			if inicio != "" {
				start, err := time.Parse("2006-01-02", inicio)
				if err != nil {
					return fmt.Errorf("invalid --inicio: %w", err)
				}
				plan.Pagos = calculation.BuildInstallments(plan, start)
			}

			fmt.Fprintf(out, "Primer pago:          %s\n", money.NewMoneyFromDecimal(plan.PrimerPago).Format())
			fmt.Fprintf(out, "Pagos subsecuentes:   %d x %s\n", plan.NumeroPagosSubsecuentes, money.NewMoneyFromDecimal(plan.PagoSubsecuente).Format())
			fmt.Fprintf(out, "Monto total ajustado: %s\n", money.NewMoneyFromDecimal(plan.MontoTotalAjustado).Format())
			for _, p := range plan.Pagos {
				fmt.Fprintf(out, "  %2d  %s  %s\n", p.Numero, p.FechaVencimiento.Format("2006-01-02"), money.NewMoneyFromDecimal(p.Monto).Format())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&total, "total", "", "net cost to split")
	cmd.Flags().IntVar(&divisor, "divisor", 1, "number of installments")
	cmd.Flags().StringVar(&ajuste, "ajuste", "0", "payment-type surcharge percent")
	cmd.Flags().StringVar(&derecho, "derecho", "0", "policy fee")
	cmd.Flags().StringVar(&inicio, "inicio", "", "first due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}
