package vending_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vending-machine/internal/application/vending"
	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/internal/domain/catalog"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/jhoicas/vending-machine/internal/infrastructure/memory"
	"github.com/jhoicas/vending-machine/pkg/clock"
)

var testStart = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

// newTestSession sesión sobre el catálogo por defecto; overrides permite ajustar cantidades.
func newTestSession(t *testing.T, overrides map[string]int) (*vending.Session, *memory.StockRepository, *clock.FakeClock) {
	t.Helper()
	seed := catalog.Default()
	for code, q := range overrides {
		seed.Stock[code] = q
	}
	cat, err := catalog.New(seed.Categories)
	require.NoError(t, err)
	stock, err := memory.ForCatalog(cat, seed.Stock)
	require.NoError(t, err)
	clk := clock.NewFake(testStart)
	return vending.NewSession(cat, stock, clk, nil), stock, clk
}

func credit(t *testing.T, s *vending.Session, amount string) {
	t.Helper()
	require.NoError(t, s.BeginFunding())
	require.NoError(t, s.Credit(decimal.RequireFromString(amount), entity.FundingMethodCash))
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewSession_EstadoInicial(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	assert.Equal(t, vending.StateBrowsing, s.State())
	assert.True(t, s.Balance().IsZero())
	assert.True(t, s.TotalSpent().IsZero())
	assert.Empty(t, s.Transactions())
	assert.NotEmpty(t, s.ID())
}

// TestPurchase_Lollipop: $1.00 en efectivo y compra de LOLL2.
func TestPurchase_Lollipop(t *testing.T) {
	s, stock, _ := newTestSession(t, nil)
	credit(t, s, "1.00")

	tx, err := s.Purchase("loll2")
	require.NoError(t, err)

	assert.True(t, s.Balance().Equal(d("0.50")), "saldo %s", s.Balance())
	assert.True(t, s.TotalSpent().Equal(d("0.50")))
	st, err := stock.Get("LOLL2")
	require.NoError(t, err)
	assert.Equal(t, 21, st.Quantity)

	require.Len(t, s.Transactions(), 1)
	assert.Equal(t, "lollipop", tx.ItemName)
	assert.Equal(t, "LOLL2", tx.Code)
	assert.Equal(t, entity.PaymentMethodBalance, tx.Method)
	assert.True(t, tx.Paid.Equal(d("0.50")))
	assert.Equal(t, testStart, tx.Time)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, vending.StateBrowsing, s.State())
}

// TestPurchase_Agotado: ORO4 con cantidad cero no cambia ni stock ni saldo.
func TestPurchase_Agotado(t *testing.T) {
	s, stock, _ := newTestSession(t, map[string]int{"ORO4": 0})
	credit(t, s, "5")

	_, err := s.Purchase("ORO4")
	assert.True(t, errors.Is(err, domain.ErrOutOfStock))

	assert.True(t, s.Balance().Equal(d("5")))
	assert.True(t, s.TotalSpent().IsZero())
	assert.Empty(t, s.Transactions())
	st, _ := stock.Get("ORO4")
	assert.Equal(t, 0, st.Quantity)
}

func TestPurchase_CodigoInvalido(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	_, err := s.Purchase("ZZZ")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, vending.StateBrowsing, s.State())
}

func TestPurchase_SaldoInsuficiente(t *testing.T) {
	s, stock, _ := newTestSession(t, nil)
	credit(t, s, "1")

	_, err := s.Purchase("DRINK1") // 3.11
	assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))
	assert.True(t, s.Balance().Equal(d("1")))
	st, _ := stock.Get("DRINK1")
	assert.Equal(t, 22, st.Quantity)
	assert.Empty(t, s.Transactions())
}

func TestPurchase_AgotaElStockSinTerminarLaSesion(t *testing.T) {
	s, _, _ := newTestSession(t, map[string]int{"C2": 1})
	credit(t, s, "10")

	_, err := s.Purchase("C2")
	require.NoError(t, err)
	_, err = s.Purchase("C2")
	assert.True(t, errors.Is(err, domain.ErrOutOfStock))
	assert.Equal(t, vending.StateBrowsing, s.State(), "agotar stock no finaliza la sesión")
}

// TestInvariantes_GastoYSaldo: total gastado = suma de lo pagado; saldo = créditos - gastos.
func TestInvariantes_GastoYSaldo(t *testing.T) {
	s, _, clk := newTestSession(t, nil)
	credit(t, s, "10")

	prev := s.TotalSpent()
	for _, code := range []string{"LAY3", "W4", "P3", "BRC8"} {
		before := s.Balance()
		offer, err := s.Quote(code)
		require.NoError(t, err)

		clk.Advance(time.Minute)
		_, err = s.Purchase(code)
		require.NoError(t, err)

		assert.True(t, s.Balance().Equal(before.Sub(offer.Product.Price)))
		assert.True(t, s.TotalSpent().GreaterThanOrEqual(prev))
		prev = s.TotalSpent()
	}

	sum := decimal.Zero
	txs := s.Transactions()
	for i, tx := range txs {
		sum = sum.Add(tx.Paid)
		if i > 0 {
			assert.True(t, tx.Time.After(txs[i-1].Time), "registro cronológico")
		}
	}
	assert.True(t, s.TotalSpent().Equal(sum))
	assert.True(t, s.Balance().Equal(d("10").Sub(sum)))
}

func TestQuote_Faltante(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	credit(t, s, "1")

	offer, err := s.Quote("BUBB5")
	require.NoError(t, err)
	assert.False(t, offer.Affordable())
	assert.True(t, offer.Shortfall.Equal(d("0.75")))
	assert.Equal(t, 30, offer.Quantity)

	offer, err = s.Quote("LOLL2")
	require.NoError(t, err)
	assert.True(t, offer.Affordable())
}

// ── Transiciones ──────────────────────────────────────────────────────────────

func TestFunding_Transiciones(t *testing.T) {
	s, _, _ := newTestSession(t, nil)

	assert.True(t, errors.Is(s.Credit(d("1"), "cash"), domain.ErrInvalidState), "no se acredita fuera de AwaitingFunds")

	require.NoError(t, s.BeginFunding())
	assert.Equal(t, vending.StateAwaitingFunds, s.State())
	assert.True(t, errors.Is(s.BeginFunding(), domain.ErrInvalidState))

	_, err := s.Purchase("LOLL2")
	assert.True(t, errors.Is(err, domain.ErrInvalidState), "no se compra mientras se recarga")

	assert.True(t, errors.Is(s.Credit(d("0"), "cash"), domain.ErrInvalidInput))
	assert.Equal(t, vending.StateAwaitingFunds, s.State())

	require.NoError(t, s.CancelFunding())
	assert.Equal(t, vending.StateBrowsing, s.State())
	assert.True(t, s.Balance().IsZero())
}

func TestFinish_DesdeAwaitingFunds(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	require.NoError(t, s.BeginFunding())

	summary, err := s.Finish()
	require.NoError(t, err)
	assert.Equal(t, vending.StateFinished, s.State())
	assert.Empty(t, summary.Transactions)
	assert.False(t, summary.HasRefund())
}

func TestFinish_ResumenYEstadoTerminal(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	credit(t, s, "2")
	_, err := s.Purchase("LOLL2")
	require.NoError(t, err)

	summary, err := s.Finish()
	require.NoError(t, err)
	assert.Equal(t, s.ID(), summary.SessionID)
	assert.True(t, summary.TotalSpent.Equal(d("0.50")))
	assert.True(t, summary.Balance.Equal(d("1.50")))
	assert.True(t, summary.HasRefund())
	require.Len(t, summary.Transactions, 1)
	assert.Equal(t, "lollipop", summary.Transactions[0].ItemName)

	_, err = s.Finish()
	assert.True(t, errors.Is(err, domain.ErrSessionFinished))
	_, err = s.Purchase("LOLL2")
	assert.True(t, errors.Is(err, domain.ErrSessionFinished))
	assert.True(t, errors.Is(s.BeginFunding(), domain.ErrSessionFinished))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "browsing", vending.StateBrowsing.String())
	assert.Equal(t, "awaiting_funds", vending.StateAwaitingFunds.String())
	assert.Equal(t, "dispensing", vending.StateDispensing.String())
	assert.Equal(t, "finished", vending.StateFinished.String())
}
