// Package payment contiene las reglas de dominio para recargar saldo: validación del
// identificador y del límite de la tarjeta simulada, y cálculo del vuelto en efectivo.
package payment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vending-machine/internal/domain"
)

// CardPolicy reglas del pago con tarjeta. El límite no corresponde a ninguna red real.
type CardPolicy struct {
	Prefix    string          // ej. "IB"
	MinLength int             // longitud mínima del identificador completo, prefijo incluido
	Limit     decimal.Decimal // montos > Limit se rechazan
}

// DefaultCardPolicy política de fábrica: prefijo IB, 12 caracteres, límite $50.00.
func DefaultCardPolicy() CardPolicy {
	return CardPolicy{Prefix: "IB", MinLength: 12, Limit: decimal.NewFromInt(50)}
}

// ValidateIdentifier verifica prefijo (sin distinguir mayúsculas) y longitud mínima.
// identifier puede venir con espacios alrededor.
func (p CardPolicy) ValidateIdentifier(identifier string) error {
	id := strings.ToUpper(strings.TrimSpace(identifier))
	if !strings.HasPrefix(id, strings.ToUpper(p.Prefix)) {
		return fmt.Errorf("%w: debe iniciar con %s", domain.ErrInvalidIdentifier, p.Prefix)
	}
	if n := utf8.RuneCountInString(id); n < p.MinLength {
		return fmt.Errorf("%w: se requieren al menos %d caracteres, se recibieron %d", domain.ErrInvalidIdentifier, p.MinLength, n)
	}
	return nil
}

// CheckLimit rechaza montos estrictamente mayores al límite.
func (p CardPolicy) CheckLimit(amount decimal.Decimal) error {
	if amount.GreaterThan(p.Limit) {
		return fmt.Errorf("%w: %s > %s", domain.ErrLimitExceeded, amount.StringFixed(2), p.Limit.StringFixed(2))
	}
	return nil
}

// Authorize aplica ambas reglas: primero el identificador, luego el límite.
func (p CardPolicy) Authorize(identifier string, amount decimal.Decimal) error {
	if err := p.ValidateIdentifier(identifier); err != nil {
		return err
	}
	return p.CheckLimit(amount)
}
