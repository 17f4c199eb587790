package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReglaNegocioAppliesTo(t *testing.T) {
	tests := []struct {
		name  string
		regla ReglaNegocio
		id    int
		want  bool
	}{
		{"global active", ReglaNegocio{EsGlobal: true, Activa: true}, 9, true},
		{"global inactive", ReglaNegocio{EsGlobal: true}, 9, false},
		{"scoped match", ReglaNegocio{Activa: true, Cobertura: &Cobertura{CoberturaID: 4}}, 4, true},
		{"scoped other coverage", ReglaNegocio{Activa: true, Cobertura: &Cobertura{CoberturaID: 4}}, 5, false},
		{"scoped without coverage", ReglaNegocio{Activa: true}, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.regla.AppliesTo(tt.id))
		})
	}
}

func TestEnumsValid(t *testing.T) {
	for _, op := range []Operador{OperadorIgual, OperadorMayor, OperadorMenor, OperadorMayorIgual, OperadorMenorIgual} {
		assert.True(t, op.Valid(), "operador %q", op)
	}
	assert.False(t, Operador("!=").Valid())
	assert.False(t, Operador("").Valid())

	for _, tr := range []TipoRegla{TipoReglaSumaAsegurada, TipoReglaPrima, TipoReglaDeducible} {
		assert.True(t, tr.Valid(), "tipo %q", tr)
	}
	assert.False(t, TipoRegla("Descuento").Valid())
}
