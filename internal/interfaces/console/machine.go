package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/vending-machine/internal/application/dto"
	"github.com/jhoicas/vending-machine/internal/application/payment"
	"github.com/jhoicas/vending-machine/internal/application/vending"
	"github.com/jhoicas/vending-machine/pkg/logger"
)

// outcome resultado de un ciclo de selección.
type outcome int

const (
	outcomeExit outcome = iota
	outcomePurchased
	outcomeNotPurchased
)

// Machine conduce una sesión completa sobre un IO.
type Machine struct {
	io      IO
	session *vending.Session
	funding *payment.FundingUseCase
	retry   RetryPolicy
	log     *logger.Logger
}

// NewMachine construye la interfaz de consola.
func NewMachine(rw IO, session *vending.Session, funding *payment.FundingUseCase, retry RetryPolicy, log *logger.Logger) *Machine {
	if log == nil {
		log = logger.Nop()
	}
	return &Machine{io: rw, session: session, funding: funding, retry: retry, log: log}
}

// Run repite catálogo + selección hasta que el cliente sale (o se cierra la entrada),
// luego cierra la sesión e imprime el recibo.
func (m *Machine) Run(ctx context.Context) (dto.SessionSummary, error) {
	m.io.Printf("=== 🤖 Starting Vending Machine ===\n")
	for ctx.Err() == nil {
		Display(m.io, m.session)

		res, err := m.selectItem(ctx)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				m.log.Error().Err(err).Msg("error de entrada, cerrando sesión")
			}
			break
		}
		if res == outcomeExit {
			break
		}
		if !m.askContinue(res) {
			break
		}
	}
	return m.finish()
}

// askContinue tras una compra pregunta si se compra otro; tras un ciclo sin compra, si seguir o salir.
func (m *Machine) askContinue(res outcome) bool {
	if res == outcomePurchased {
		ans, err := m.io.ReadLine("\nWould you like to buy another item? (yes/no): ")
		return err == nil && isYes(ans)
	}
	ans, err := m.io.ReadLine(fmt.Sprintf("\nDo you want to continue shopping or exit? (%s/%s): ", keywordContinue, keywordExit))
	return err == nil && keyword(ans) != keywordExit
}

func (m *Machine) finish() (dto.SessionSummary, error) {
	summary, err := m.session.Finish()
	if err != nil {
		return dto.SessionSummary{}, err
	}
	PrintSummary(m.io, summary)
	return summary, nil
}
