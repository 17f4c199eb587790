package output

import (
	"fmt"
	"strings"

	"github.com/segurosmx/cotizador/internal/domain"
)

// GenerateReport writes the quote in the requested format to a timestamped
// file in dir and returns the written paths. "all" writes the verbose
// console report, the coverage CSV and the JSON document.
func GenerateReport(q *domain.Cotizacion, format, dir string) ([]string, error) {
	if f := GetFormatterByName(format); f != nil {
		name, err := WriteFormatted(f, q, dir, FileExtension(f.Name()))
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	}
	switch NormalizeFormatName(format) {
	case "all":
		var written []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}, JSONFormatter{}} {
			name, err := WriteFormatted(f, q, dir, FileExtension(f.Name()))
			if err != nil {
				return written, err
			}
			written = append(written, name)
		}
		return written, nil
	default:
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
}
