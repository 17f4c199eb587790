package calculation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/segurosmx/cotizador/internal/domain"
)

// EvaluateCondition reports whether a single rule condition holds for the
// current form values. It never fails: absent fields, non-numeric operands
// of ordering operators and unknown operators all evaluate to false.
func EvaluateCondition(c domain.Condicion, values domain.FormValues) bool {
	actual, ok := values[c.Campo]
	if !ok || actual == nil {
		return false
	}

	switch c.Operador {
	case domain.OperadorIgual:
		s, ok := formString(actual)
		return ok && s == c.ValorComparacion
	case domain.OperadorMayor, domain.OperadorMenor, domain.OperadorMayorIgual, domain.OperadorMenorIgual:
		a, ok := formNumber(actual)
		if !ok {
			return false
		}
		b, ok := formNumber(c.ValorComparacion)
		if !ok {
			return false
		}
		return compareNumbers(c.Operador, a, b)
	default:
		return false
	}
}

// EvaluateAll reports whether every condition holds. An empty list holds.
func EvaluateAll(conditions []domain.Condicion, values domain.FormValues) bool {
	for _, c := range conditions {
		if !EvaluateCondition(c, values) {
			return false
		}
	}
	return true
}

func compareNumbers(op domain.Operador, a, b float64) bool {
	switch op {
	case domain.OperadorMayor:
		return a > b
	case domain.OperadorMenor:
		return a < b
	case domain.OperadorMayorIgual:
		return a >= b
	case domain.OperadorMenorIgual:
		return a <= b
	}
	return false
}

// formString renders a form value the way it is compared for equality.
func formString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case json.Number:
		return t.String(), true
	case fmt.Stringer:
		return t.String(), true
	}
	return fmt.Sprint(v), true
}

// formNumber coerces a form value to a number. NaN and infinities are
// rejected so that they never satisfy an ordering comparison.
// Blank strings and bools are deliberately not coerced to 0 or 1, so a
// cleared field never satisfies "<= 0".
func formNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = n
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case int32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case interface{ InexactFloat64() float64 }:
		f = t.InexactFloat64()
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
