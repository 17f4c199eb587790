package output

import (
	"encoding/json"

	"github.com/segurosmx/cotizador/internal/domain"
)

// JSONFormatter serializes the quote as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(q *domain.Cotizacion) ([]byte, error) {
	return json.MarshalIndent(q, "", "  ")
}
