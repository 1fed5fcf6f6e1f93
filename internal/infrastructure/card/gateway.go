// Package card implementa una pasarela de tarjeta simulada: no hay red ni procesador real,
// solo las reglas de la política de tarjeta.
package card

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vending-machine/internal/application/payment"
	"github.com/jhoicas/vending-machine/internal/domain"
	domainpayment "github.com/jhoicas/vending-machine/internal/domain/payment"
	"github.com/jhoicas/vending-machine/pkg/logger"
)

var _ payment.CardAuthorizer = (*Gateway)(nil)

// Gateway autoriza cargos aplicando CardPolicy.
type Gateway struct {
	policy domainpayment.CardPolicy
	log    *logger.Logger
}

// NewGateway construye la pasarela simulada.
func NewGateway(policy domainpayment.CardPolicy, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{policy: policy, log: log}
}

// Authorize devuelve nil si el cargo se aprueba. Los rechazos envuelven ErrCardDeclined y la causa
// (ErrInvalidIdentifier o ErrLimitExceeded).
func (g *Gateway) Authorize(ctx context.Context, identifier string, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.policy.Authorize(identifier, amount); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCardDeclined, err)
	}
	g.log.Debug().Str("amount", amount.StringFixed(2)).Msg("cargo a tarjeta aprobado")
	return nil
}
