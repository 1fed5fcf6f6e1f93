package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos con los que se paga una compra.
const (
	PaymentMethodBalance = "balance" // debitado del saldo de la sesión
)

// Métodos de recarga de saldo.
const (
	FundingMethodCash = "cash"
	FundingMethodCard = "card"
)

// Transaction registro inmutable de una compra completada. Solo se crea tras un débito exitoso.
type Transaction struct {
	ID       string
	Time     time.Time
	Code     string
	ItemName string
	Paid     decimal.Decimal
	Method   string
}
