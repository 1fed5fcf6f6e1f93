package receipt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vending-machine/internal/application/dto"
	"github.com/jhoicas/vending-machine/internal/application/receipt"
	"github.com/jhoicas/vending-machine/internal/domain"
)

type stubGenerator struct {
	calls int
	out   []byte
	err   error
}

func (g *stubGenerator) GenerateReceiptPDF(_ context.Context, _ dto.SessionSummary) ([]byte, error) {
	g.calls++
	return g.out, g.err
}

func TestExport_DelegaEnGenerador(t *testing.T) {
	gen := &stubGenerator{out: []byte("%PDF-fake")}
	uc := receipt.NewUseCase(gen)

	doc, err := uc.Export(context.Background(), dto.SessionSummary{SessionID: "s1", FinishedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), doc)
	assert.Equal(t, 1, gen.calls)
}

func TestExport_ResumenIncompleto(t *testing.T) {
	gen := &stubGenerator{}
	uc := receipt.NewUseCase(gen)

	_, err := uc.Export(context.Background(), dto.SessionSummary{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, gen.calls)
}

func TestExport_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("boom")
	uc := receipt.NewUseCase(&stubGenerator{err: boom})

	_, err := uc.Export(context.Background(), dto.SessionSummary{SessionID: "s1", FinishedAt: time.Now()})
	assert.ErrorIs(t, err, boom)
}
