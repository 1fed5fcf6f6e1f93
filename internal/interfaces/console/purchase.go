package console

import (
	"context"
	"errors"

	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/pkg/money"
)

// selectItem pide un código e intenta la compra. Errores de negocio se informan al cliente y
// devuelven outcomeNotPurchased; solo los errores de entrada (EOF) se propagan.
func (m *Machine) selectItem(ctx context.Context) (outcome, error) {
	code, err := m.io.ReadLine("\nEnter the product code (or 'exit' to quit): ")
	if err != nil {
		return outcomeExit, err
	}
	if keyword(code) == keywordExit {
		return outcomeExit, nil
	}

	offer, err := m.session.Quote(code)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		m.io.Printf("❌ Invalid product code. Try again.\n")
		return outcomeNotPurchased, nil
	case errors.Is(err, domain.ErrOutOfStock):
		m.io.Printf("❌ Sorry, this product is out of stock.\n")
		return outcomeNotPurchased, nil
	case err != nil:
		return outcomeNotPurchased, err
	}

	price := offer.Product.Price
	if !offer.Affordable() {
		m.io.Printf("⚠️ Not enough balance (%s) for this item (%s).\n", money.Format(m.session.Balance()), money.Format(price))
		ans, err := m.io.ReadLine("Would you like to add funds? (yes/no): ")
		if err != nil {
			return outcomeNotPurchased, err
		}
		if !isYes(ans) {
			m.io.Printf("Transaction cancelled.\n")
			return outcomeNotPurchased, nil
		}
		added, err := m.addFunds(ctx)
		if err != nil {
			return outcomeNotPurchased, err
		}
		if !added {
			m.io.Printf("Cancelled adding funds.\n")
			return outcomeNotPurchased, nil
		}
		if m.session.Balance().LessThan(price) {
			m.io.Printf("Still not enough funds after adding. Current balance: %s\n", money.Format(m.session.Balance()))
			m.io.Printf("Transaction cancelled.\n")
			return outcomeNotPurchased, nil
		}
	}

	tx, err := m.session.Purchase(offer.Product.Code)
	if err != nil {
		m.io.Printf("❌ Purchase failed: %v\n", err)
		return outcomeNotPurchased, nil
	}
	m.io.Printf("\n🎁 Dispensing %s... Thank you!\n", tx.ItemName)
	return outcomePurchased, nil
}
