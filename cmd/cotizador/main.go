package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "cotizador",
		Short: "Auto insurance premium quoting engine",
		Long: `cotizador prices auto insurance coverage packages: it applies business
rules to each coverage, prices it on a flat rate or a decreasing premium
curve, runs the postal-code, discount, payment-type and IVA adjustments and
splits the total into installments.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCalculateCmd(&verbose),
		newScheduleCmd(),
		newExampleCmd(),
		newFormatsCmd(),
		newServeCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
