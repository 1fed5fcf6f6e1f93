// Package money concentra el parseo y formato de montos con dos decimales.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Places número de decimales usados en todos los montos de la máquina.
const Places = 2

// ErrMalformed el texto no es un número decimal válido.
var ErrMalformed = errors.New("money: monto mal formado")

// MaxIntegerDigits dígitos enteros admitidos en un monto tecleado.
const MaxIntegerDigits = 12

// Parse convierte texto libre ("1", " 2.5 ", "0.75") en un monto redondeado a dos decimales.
func Parse(s string) (decimal.Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	return Round(d), nil
}

// ParseFloor es Parse truncando al centavo inferior: el efectivo entregado nunca cuenta de más.
func ParseFloor(s string) (decimal.Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	return Floor(d), nil
}

// parse sin redondear. La notación con exponente se rechaza antes de tocar decimal:
// "1e10000000" expandiría millones de dígitos al redondear o formatear.
func parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: vacío", ErrMalformed)
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: exponente no admitido", ErrMalformed)
	}
	intPart, _, _ := strings.Cut(strings.TrimLeft(s, "+-"), ".")
	if len(strings.TrimLeft(intPart, "0")) > MaxIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: más de %d dígitos enteros", ErrMalformed, MaxIntegerDigits)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return d, nil
}

// Round redondea al centavo (half away from zero).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Floor trunca al centavo hacia menos infinito.
func Floor(d decimal.Decimal) decimal.Decimal {
	return d.RoundFloor(Places)
}

// Format devuelve el monto con signo de dólar y dos decimales. Ej: 1.5 → "$1.50".
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(Places)
}

// MustParse es Parse para literales conocidos (catálogo por defecto, tests).
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
