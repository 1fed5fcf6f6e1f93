package payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vending-machine/internal/domain"
)

// Change calcula el vuelto de un pago en efectivo.
// Vuelto = Entregado - Monto; error si lo entregado no cubre el monto.
func Change(amount, tendered decimal.Decimal) (decimal.Decimal, error) {
	if tendered.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("%w: entregado %s, requerido %s", domain.ErrInsufficientCash, tendered.StringFixed(2), amount.StringFixed(2))
	}
	return tendered.Sub(amount), nil
}
