package calculation

import (
	"strings"

	"github.com/segurosmx/cotizador/internal/domain"
	"github.com/shopspring/decimal"
)

// ruleAdjusters writes a matched rule's adjustment into the coverage values.
var ruleAdjusters = map[domain.TipoRegla]func(v *domain.ValoresCobertura, adj decimal.Decimal){
	domain.TipoReglaSumaAsegurada: func(v *domain.ValoresCobertura, adj decimal.Decimal) {
		v.SumaAseguradaMin = adj
		v.SumaAseguradaMax = adj
	},
	domain.TipoReglaPrima: func(v *domain.ValoresCobertura, adj decimal.Decimal) {
		v.PrimaBase = adj
	},
	domain.TipoReglaDeducible: func(v *domain.ValoresCobertura, adj decimal.Decimal) {
		v.DeducibleMin = adj
		v.DeducibleMax = adj
	},
}

// BaseValues parses a coverage's own bounds. Unparsable strings become zero.
func BaseValues(cov domain.Cobertura) domain.ValoresCobertura {
	return baseValues(NopLogger{}, cov)
}

func baseValues(log Logger, cov domain.Cobertura) domain.ValoresCobertura {
	return domain.ValoresCobertura{
		SumaAseguradaMin: decimalOrZero(log, "SumaAseguradaMin", cov.SumaAseguradaMin),
		SumaAseguradaMax: decimalOrZero(log, "SumaAseguradaMax", cov.SumaAseguradaMax),
		PrimaBase:        decimalOrZero(log, "PrimaBase", cov.PrimaBase),
		DeducibleMin:     decimalOrZero(log, "DeducibleMin", cov.DeducibleMin),
		DeducibleMax:     decimalOrZero(log, "DeducibleMax", cov.DeducibleMax),
	}
}

// ApplicableRules returns the rules that are active and either global or
// linked to the coverage, preserving input order.
func ApplicableRules(cov domain.Cobertura, rules []domain.ReglaNegocio) []domain.ReglaNegocio {
	var out []domain.ReglaNegocio
	for i := range rules {
		if rules[i].AppliesTo(cov.CoberturaID) {
			out = append(out, rules[i])
		}
	}
	return out
}

// ApplyBusinessRules seeds the coverage values from the coverage itself and
// overwrites them with every applicable rule whose conditions all hold.
// Rules apply in list order, so a later match of the same type wins.
// Neither the coverage nor the rules are modified.
func ApplyBusinessRules(cov domain.Cobertura, rules []domain.ReglaNegocio, values domain.FormValues) domain.ValoresCobertura {
	return applyBusinessRules(NopLogger{}, cov, rules, values)
}

func applyBusinessRules(log Logger, cov domain.Cobertura, rules []domain.ReglaNegocio, values domain.FormValues) domain.ValoresCobertura {
	out := baseValues(log, cov)

	for _, rule := range ApplicableRules(cov, rules) {
		if !EvaluateAll(rule.Condiciones, values) {
			continue
		}
		adjust, ok := ruleAdjusters[rule.TipoRegla]
		if !ok {
			log.Warnf("regla %d: unknown rule type %q", rule.ReglaID, rule.TipoRegla)
			continue
		}
		// A rule carries a single adjustment: the first condition's Valor.
		if len(rule.Condiciones) == 0 {
			log.Warnf("regla %d: matched without conditions, no adjustment value", rule.ReglaID)
			continue
		}
		raw := rule.Condiciones[0].Valor
		adj, ok := ParseDecimal(raw)
		if !ok || strings.TrimSpace(raw) == "" {
			log.Warnf("regla %d: adjustment %q is not a number, rule skipped", rule.ReglaID, raw)
			continue
		}
		adjust(&out, adj)
		log.Debugf("regla %d (%s) applied to cobertura %d: %s", rule.ReglaID, rule.TipoRegla, cov.CoberturaID, adj)
	}
	return out
}
