package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDTO línea del registro de transacciones para el recibo.
type TransactionDTO struct {
	ID       string          `json:"id"`
	Time     time.Time       `json:"time"`
	Code     string          `json:"code"`
	ItemName string          `json:"item_name"`
	Paid     decimal.Decimal `json:"paid"`
	Method   string          `json:"method"`
}

// SessionSummary resumen final de la sesión (recibo).
// Balance es el saldo remanente que se devuelve físicamente al cliente.
type SessionSummary struct {
	SessionID    string           `json:"session_id"`
	StartedAt    time.Time        `json:"started_at"`
	FinishedAt   time.Time        `json:"finished_at"`
	TotalSpent   decimal.Decimal  `json:"total_spent"`
	Balance      decimal.Decimal  `json:"balance"`
	Transactions []TransactionDTO `json:"transactions"`
}

// HasRefund indica si queda saldo por devolver.
func (s SessionSummary) HasRefund() bool {
	return s.Balance.IsPositive()
}
