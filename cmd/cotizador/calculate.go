package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/segurosmx/cotizador/internal/calculation"
	"github.com/segurosmx/cotizador/internal/config"
	"github.com/segurosmx/cotizador/internal/output"
)

func newCalculateCmd(verbose *bool) *cobra.Command {
	var (
		input  string
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Price a quote request file",
		Example: `  cotizador calculate -i cotizacion.yaml
  cotizador calculate -i cotizacion.yaml -f html -o reportes/
  cotizador calculate -i cotizacion.yaml -f all -o reportes/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newCLILogger(*verbose)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			req, err := config.NewInputParser().LoadFromFile(input)
			if err != nil {
				return err
			}

			engine := calculation.NewQuoteEngine()
			engine.SetLogger(logger.Sugar())
			quote, err := engine.Calculate(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("quote calculation failed: %w", err)
			}

			if outDir != "" {
				written, err := output.GenerateReport(quote, format, outDir)
				if err != nil {
					return err
				}
				for _, name := range written {
					fmt.Fprintf(cmd.OutOrStdout(), "Reporte generado: %s\n", name)
				}
				return nil
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("%w: %q. Try one of: %s", output.ErrUnsupportedFormat, format, strings.Join(output.AvailableFormatterNames(), ", "))
			}
			data, err := f.Format(quote)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "quote request YAML file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format ("+strings.Join(output.AvailableFormatterNames(), ", ")+", all)")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "write timestamped report files to this directory instead of stdout")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and aliases",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formatos:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %-14s (.%s)\n", name, output.FileExtension(name))
			}
			fmt.Fprintln(out, "Alias:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %-16s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}

func newExampleCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example quote request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveRequest(parser.CreateExampleRequest(), outFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Solicitud de ejemplo guardada en %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "cotizacion_ejemplo.yaml", "destination file")
	return cmd
}
