package vending

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/vending-machine/internal/application/dto"
	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/internal/domain/catalog"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/jhoicas/vending-machine/internal/domain/repository"
	"github.com/jhoicas/vending-machine/pkg/clock"
	"github.com/jhoicas/vending-machine/pkg/logger"
	"github.com/jhoicas/vending-machine/pkg/money"
)

// Session estado mutable de una corrida: saldo, gasto acumulado y registro de transacciones.
// El catálogo se recibe como dependencia de solo lectura; el stock vive en su propio repositorio.
// No es seguro para uso concurrente (una sesión, un cliente).
type Session struct {
	id        string
	catalog   *catalog.Catalog
	stock     repository.StockRepository
	clock     clock.Clock
	log       *logger.Logger
	startedAt time.Time

	state        State
	balance      decimal.Decimal
	totalSpent   decimal.Decimal
	transactions []entity.Transaction
}

// Offer resultado de consultar un código: producto, stock disponible y lo que falta de saldo.
type Offer struct {
	Product   entity.Product
	Quantity  int
	Shortfall decimal.Decimal // max(0, precio - saldo)
}

// Affordable indica si el saldo actual alcanza.
func (o Offer) Affordable() bool { return o.Shortfall.IsZero() }

// NewSession construye una sesión en estado Browsing con saldo cero.
func NewSession(cat *catalog.Catalog, stock repository.StockRepository, clk clock.Clock, log *logger.Logger) *Session {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if log == nil {
		log = logger.Nop()
	}
	id := uuid.New().String()
	s := &Session{
		id:         id,
		catalog:    cat,
		stock:      stock,
		clock:      clk,
		log:        log.WithSession(id),
		startedAt:  clk.Now(),
		state:      StateBrowsing,
		balance:    decimal.Zero,
		totalSpent: decimal.Zero,
	}
	s.log.Info().Int("products", cat.Len()).Msg("sesión iniciada")
	return s
}

// ID identificador de la sesión.
func (s *Session) ID() string { return s.id }

// State estado actual.
func (s *Session) State() State { return s.state }

// Balance saldo disponible.
func (s *Session) Balance() decimal.Decimal { return s.balance }

// TotalSpent gasto acumulado; nunca decrece.
func (s *Session) TotalSpent() decimal.Decimal { return s.totalSpent }

// Catalog catálogo de solo lectura sobre el que opera la sesión.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Transactions copia del registro en orden cronológico.
func (s *Session) Transactions() []entity.Transaction {
	return append([]entity.Transaction(nil), s.transactions...)
}

// Quantity stock disponible de un código.
func (s *Session) Quantity(code string) (int, error) {
	st, err := s.stock.Get(code)
	if err != nil {
		return 0, err
	}
	return st.Quantity, nil
}

// Quote busca el producto y verifica stock, sin modificar nada.
// ErrNotFound si el código no existe; ErrOutOfStock si la cantidad es cero.
func (s *Session) Quote(code string) (Offer, error) {
	p, err := s.catalog.Lookup(code)
	if err != nil {
		return Offer{}, err
	}
	qty, err := s.Quantity(p.Code)
	if err != nil {
		return Offer{}, fmt.Errorf("stock de %s: %w", p.Code, err)
	}
	if qty <= 0 {
		return Offer{Product: p}, domain.ErrOutOfStock
	}
	shortfall := p.Price.Sub(s.balance)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}
	return Offer{Product: p, Quantity: qty, Shortfall: shortfall}, nil
}

// BeginFunding Browsing → AwaitingFunds.
func (s *Session) BeginFunding() error {
	if err := s.require(StateBrowsing); err != nil {
		return err
	}
	s.state = StateAwaitingFunds
	return nil
}

// Credit acredita amount (redondeado al centavo) y vuelve a Browsing. Solo válido en AwaitingFunds.
func (s *Session) Credit(amount decimal.Decimal, method string) error {
	if err := s.require(StateAwaitingFunds); err != nil {
		return err
	}
	amount = money.Round(amount)
	if !amount.IsPositive() {
		return fmt.Errorf("%w: el monto debe ser positivo", domain.ErrInvalidInput)
	}
	s.balance = s.balance.Add(amount)
	s.state = StateBrowsing
	s.log.Info().
		Str("method", method).
		Str("amount", amount.StringFixed(2)).
		Str("balance", s.balance.StringFixed(2)).
		Msg("saldo acreditado")
	return nil
}

// CancelFunding AwaitingFunds → Browsing sin cambios de saldo.
func (s *Session) CancelFunding() error {
	if err := s.require(StateAwaitingFunds); err != nil {
		return err
	}
	s.state = StateBrowsing
	s.log.Info().Msg("recarga cancelada")
	return nil
}

// Purchase valida stock y saldo, y si todo está bien descuenta una unidad, debita el precio
// y registra la transacción. Ante cualquier error no modifica saldo, stock ni registro.
func (s *Session) Purchase(code string) (entity.Transaction, error) {
	if err := s.require(StateBrowsing); err != nil {
		return entity.Transaction{}, err
	}
	offer, err := s.Quote(code)
	if err != nil {
		s.log.Info().Str("code", catalog.NormalizeCode(code)).Err(err).Msg("compra rechazada")
		return entity.Transaction{}, err
	}
	p := offer.Product
	if !offer.Affordable() {
		s.log.Info().
			Str("code", p.Code).
			Str("price", p.Price.StringFixed(2)).
			Str("balance", s.balance.StringFixed(2)).
			Msg("saldo insuficiente")
		return entity.Transaction{}, fmt.Errorf("%w: saldo %s, precio %s", domain.ErrInsufficientFunds, money.Format(s.balance), money.Format(p.Price))
	}

	s.state = StateDispensing
	defer func() { s.state = StateBrowsing }()

	if err := s.stock.Decrement(p.Code); err != nil {
		return entity.Transaction{}, err
	}
	s.balance = s.balance.Sub(p.Price)
	s.totalSpent = s.totalSpent.Add(p.Price)
	tx := entity.Transaction{
		ID:       uuid.New().String(),
		Time:     s.clock.Now(),
		Code:     p.Code,
		ItemName: p.Name,
		Paid:     p.Price,
		Method:   entity.PaymentMethodBalance,
	}
	s.transactions = append(s.transactions, tx)
	s.log.Info().
		Str("tx_id", tx.ID).
		Str("code", p.Code).
		Str("paid", p.Price.StringFixed(2)).
		Str("balance", s.balance.StringFixed(2)).
		Msg("producto dispensado")
	return tx, nil
}

// Finish cierra la sesión desde Browsing o AwaitingFunds y devuelve el recibo.
func (s *Session) Finish() (dto.SessionSummary, error) {
	switch s.state {
	case StateBrowsing, StateAwaitingFunds:
	case StateFinished:
		return dto.SessionSummary{}, domain.ErrSessionFinished
	default:
		return dto.SessionSummary{}, fmt.Errorf("%w: finish desde %s", domain.ErrInvalidState, s.state)
	}
	s.state = StateFinished
	summary := s.Summary()
	s.log.Info().
		Str("total_spent", s.totalSpent.StringFixed(2)).
		Str("refund", s.balance.StringFixed(2)).
		Int("transactions", len(s.transactions)).
		Msg("sesión finalizada")
	return summary, nil
}

// Summary fotografía actual de la sesión, sin cambiar el estado.
func (s *Session) Summary() dto.SessionSummary {
	txs := make([]dto.TransactionDTO, 0, len(s.transactions))
	for _, t := range s.transactions {
		txs = append(txs, dto.TransactionDTO{
			ID:       t.ID,
			Time:     t.Time,
			Code:     t.Code,
			ItemName: t.ItemName,
			Paid:     t.Paid,
			Method:   t.Method,
		})
	}
	return dto.SessionSummary{
		SessionID:    s.id,
		StartedAt:    s.startedAt,
		FinishedAt:   s.clock.Now(),
		TotalSpent:   s.totalSpent,
		Balance:      s.balance,
		Transactions: txs,
	}
}

func (s *Session) require(want State) error {
	if s.state == StateFinished {
		return domain.ErrSessionFinished
	}
	if s.state != want {
		return fmt.Errorf("%w: se esperaba %s, estado actual %s", domain.ErrInvalidState, want, s.state)
	}
	return nil
}
