package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vending-machine/internal/application/vending"
	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/pkg/money"
)

// addFunds pide monto y método hasta acreditar saldo. Devuelve false si el cliente cancela o se
// agota la política de reintentos; el error solo se usa para fallos de entrada (EOF).
func (m *Machine) addFunds(ctx context.Context) (bool, error) {
	if err := m.session.BeginFunding(); err != nil {
		return false, err
	}
	defer func() {
		if m.session.State() == vending.StateAwaitingFunds {
			_ = m.session.CancelFunding()
		}
	}()

	m.io.Printf("\nYour current balance is %s\n", money.Format(m.session.Balance()))
	failures := 0
	for {
		amount, err := m.readAmount(&failures)
		if err != nil {
			return m.stopFunding(err)
		}

		method, err := m.chooseMethod()
		if err != nil {
			return m.stopFunding(err)
		}
		switch method {
		case keywordExit:
			return false, nil
		case keywordCard:
			ok, err := m.payByCard(ctx, amount)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		case keywordCash:
			if err := m.payByCash(ctx, amount); err != nil {
				return m.stopFunding(err)
			}
			return true, nil
		}
	}
}

// stopFunding convierte el agotamiento de reintentos en cancelación; otros errores se propagan.
func (m *Machine) stopFunding(err error) (bool, error) {
	if errors.Is(err, ErrTooManyAttempts) {
		m.io.Printf("Too many invalid attempts.\n")
		return false, nil
	}
	return false, err
}

// readAmount pide un monto positivo. failures se acumula entre llamadas dentro de una recarga.
func (m *Machine) readAmount(failures *int) (decimal.Decimal, error) {
	for {
		line, err := m.io.ReadLine("Enter amount to add: ")
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := money.Parse(line)
		switch {
		case err != nil:
			m.io.Printf("Invalid amount. Please enter a number.\n")
		case !amount.IsPositive():
			m.io.Printf("Amount must be positive.\n")
		default:
			return amount, nil
		}
		*failures++
		if m.retry.Exhausted(*failures) {
			return decimal.Zero, ErrTooManyAttempts
		}
	}
}

// chooseMethod devuelve cash, card o exit.
func (m *Machine) chooseMethod() (string, error) {
	failures := 0
	for {
		ans, err := m.io.ReadLine("\n💳 Choose payment method to add funds (cash/card) or type 'exit' to cancel: ")
		if err != nil {
			return "", err
		}
		switch k := keyword(ans); k {
		case keywordExit, keywordCash, keywordCard:
			return k, nil
		}
		m.io.Printf("Invalid choice. Please type 'cash' or 'card'.\n")
		failures++
		if m.retry.Exhausted(failures) {
			return "", ErrTooManyAttempts
		}
	}
}

// payByCard un rechazo no es error: devuelve false y el flujo vuelve a pedir monto.
func (m *Machine) payByCard(ctx context.Context, amount decimal.Decimal) (bool, error) {
	iban, err := m.io.ReadLine("Enter your IBAN number: ")
	if err != nil {
		return false, err
	}
	err = m.funding.PayByCard(ctx, m.session, amount, iban)
	switch {
	case err == nil:
		m.io.Printf("✅ Card accepted. %s added to balance.\n", money.Format(amount))
		return true, nil
	case errors.Is(err, domain.ErrInvalidIdentifier):
		m.io.Printf("❌ Invalid IBAN. Card declined.\n")
	case errors.Is(err, domain.ErrLimitExceeded):
		m.io.Printf("❌ Card declined due to a transactional limit. Please try a smaller amount or use cash.\n")
	case errors.Is(err, domain.ErrCardDeclined):
		m.io.Printf("❌ Card declined.\n")
	default:
		return false, fmt.Errorf("pago con tarjeta: %w", err)
	}
	return false, nil
}

// payByCash pide efectivo hasta que cubra el monto; acredita el monto, no lo entregado.
func (m *Machine) payByCash(ctx context.Context, amount decimal.Decimal) error {
	failures := 0
	for {
		line, err := m.io.ReadLine(fmt.Sprintf("Insert cash (%s or more): ", money.Format(amount)))
		if err != nil {
			return err
		}
		tendered, err := money.ParseFloor(line)
		if err != nil {
			m.io.Printf("Invalid input. Enter a valid numerical amount.\n")
		} else {
			change, err := m.funding.PayByCash(ctx, m.session, amount, tendered)
			switch {
			case err == nil:
				if change.IsPositive() {
					m.io.Printf("💰 Returning change: %s\n", money.Format(change))
				}
				m.io.Printf("✅ %s added to balance.\n", money.Format(amount))
				return nil
			case errors.Is(err, domain.ErrInsufficientCash):
				m.io.Printf("❌ Not enough cash. You inserted %s, but need %s. Try again.\n", money.Format(tendered), money.Format(amount))
			default:
				return fmt.Errorf("pago en efectivo: %w", err)
			}
		}
		failures++
		if m.retry.Exhausted(failures) {
			return ErrTooManyAttempts
		}
	}
}
