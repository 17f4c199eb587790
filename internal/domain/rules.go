package domain

// TipoRegla selects which coverage value a business rule overwrites.
type TipoRegla string

const (
	TipoReglaSumaAsegurada TipoRegla = "SumaAsegurada"
	TipoReglaPrima         TipoRegla = "Prima"
	TipoReglaDeducible     TipoRegla = "Deducible"
)

// Valid reports whether t is one of the known rule types.
func (t TipoRegla) Valid() bool {
	switch t {
	case TipoReglaSumaAsegurada, TipoReglaPrima, TipoReglaDeducible:
		return true
	}
	return false
}

// TipoAplicacion describes how an adjustment is meant to be read by admins.
// It is informational: adjustments always overwrite the target value.
type TipoAplicacion string

const (
	TipoAplicacionPorcentaje TipoAplicacion = "porcentaje"
	TipoAplicacionMonto      TipoAplicacion = "monto"
)

// Operador is a condition comparison operator.
type Operador string

const (
	OperadorIgual      Operador = "="
	OperadorMayor      Operador = ">"
	OperadorMenor      Operador = "<"
	OperadorMayorIgual Operador = ">="
	OperadorMenorIgual Operador = "<="
)

// Valid reports whether o is one of the five supported operators.
func (o Operador) Valid() bool {
	switch o {
	case OperadorIgual, OperadorMayor, OperadorMenor, OperadorMayorIgual, OperadorMenorIgual:
		return true
	}
	return false
}

// Condicion gates a business rule on a single form field.
type Condicion struct {
	Campo            string   `yaml:"campo" json:"Campo"`
	Operador         Operador `yaml:"operador" json:"Operador"`
	ValorComparacion string   `yaml:"valor_comparacion" json:"ValorComparacion"`
	// Valor is the adjustment value. Only the first condition's Valor is used.
	Valor string `yaml:"valor,omitempty" json:"Valor,omitempty"`
}

// ReglaNegocio is an admin-defined adjustment to a coverage's base values.
type ReglaNegocio struct {
	ReglaID        int            `yaml:"id" json:"ReglaID"`
	NombreRegla    string         `yaml:"nombre" json:"NombreRegla"`
	Descripcion    string         `yaml:"descripcion,omitempty" json:"Descripcion,omitempty"`
	TipoAplicacion TipoAplicacion `yaml:"tipo_aplicacion,omitempty" json:"TipoAplicacion"`
	TipoRegla      TipoRegla      `yaml:"tipo_regla" json:"TipoRegla"`
	EsGlobal       bool           `yaml:"es_global" json:"EsGlobal"`
	Activa         bool           `yaml:"activa" json:"Activa"`
	Cobertura      *Cobertura     `yaml:"cobertura,omitempty" json:"cobertura,omitempty"`
	Condiciones    []Condicion    `yaml:"condiciones" json:"condiciones"`
	MonedaID       int            `yaml:"moneda_id,omitempty" json:"MonedaID,omitempty"`
}

// AppliesTo reports whether the rule is active and scoped to coverageID.
func (r *ReglaNegocio) AppliesTo(coverageID int) bool {
	if !r.Activa {
		return false
	}
	if r.EsGlobal {
		return true
	}
	return r.Cobertura != nil && r.Cobertura.CoberturaID == coverageID
}

// FormValues is the quote-in-progress evaluation context, keyed by field
// name (Estado, Marca, CP, SumaAsegurada, ...).
type FormValues map[string]any
