package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	domainpayment "github.com/jhoicas/vending-machine/internal/domain/payment"
	"github.com/jhoicas/vending-machine/pkg/logger"
	"github.com/jhoicas/vending-machine/pkg/money"
)

// FundingUseCase recarga saldo por efectivo o tarjeta. En ambos caminos se acredita el monto
// solicitado, nunca lo entregado.
type FundingUseCase struct {
	card CardAuthorizer
	log  *logger.Logger
}

// NewFundingUseCase construye el caso de uso.
func NewFundingUseCase(card CardAuthorizer, log *logger.Logger) *FundingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &FundingUseCase{card: card, log: log}
}

// PayByCard autoriza el cargo y, si procede, acredita amount en la billetera.
func (uc *FundingUseCase) PayByCard(ctx context.Context, w Wallet, amount decimal.Decimal, identifier string) error {
	amount, err := validAmount(amount)
	if err != nil {
		return err
	}
	if err := uc.card.Authorize(ctx, identifier, amount); err != nil {
		uc.log.Info().Err(err).Str("amount", amount.StringFixed(2)).Msg("pago con tarjeta rechazado")
		return err
	}
	if err := w.Credit(amount, entity.FundingMethodCard); err != nil {
		return fmt.Errorf("acreditar pago con tarjeta: %w", err)
	}
	return nil
}

// PayByCash acredita amount si tendered lo cubre y devuelve el vuelto (tendered - amount).
// Si no alcanza devuelve ErrInsufficientCash y el saldo queda igual. tendered se trunca al centavo.
func (uc *FundingUseCase) PayByCash(_ context.Context, w Wallet, amount, tendered decimal.Decimal) (decimal.Decimal, error) {
	amount, err := validAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	change, err := domainpayment.Change(amount, money.Floor(tendered))
	if err != nil {
		uc.log.Debug().Err(err).Msg("efectivo insuficiente")
		return decimal.Zero, err
	}
	if err := w.Credit(amount, entity.FundingMethodCash); err != nil {
		return decimal.Zero, fmt.Errorf("acreditar pago en efectivo: %w", err)
	}
	if change.IsPositive() {
		uc.log.Info().Str("change", change.StringFixed(2)).Msg("vuelto entregado")
	}
	return change, nil
}

func validAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = money.Round(amount)
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: el monto a recargar debe ser positivo", domain.ErrInvalidInput)
	}
	return amount, nil
}
