package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// CardAuthorizer autoriza un cargo a tarjeta. Un rechazo es un error que envuelve domain.ErrCardDeclined.
type CardAuthorizer interface {
	Authorize(ctx context.Context, identifier string, amount decimal.Decimal) error
}

// Wallet parte de la sesión que el flujo de recarga necesita.
type Wallet interface {
	Credit(amount decimal.Decimal, method string) error
	Balance() decimal.Decimal
}
