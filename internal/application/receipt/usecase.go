package receipt

import (
	"context"
	"fmt"

	"github.com/jhoicas/vending-machine/internal/application/dto"
	"github.com/jhoicas/vending-machine/internal/domain"
)

// UseCase exporta el recibo final.
type UseCase struct {
	gen PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(gen PDFGenerator) *UseCase {
	return &UseCase{gen: gen}
}

// Export devuelve los bytes del PDF. Requiere un resumen de sesión cerrado (con id y hora de cierre).
func (uc *UseCase) Export(ctx context.Context, summary dto.SessionSummary) ([]byte, error) {
	if summary.SessionID == "" || summary.FinishedAt.IsZero() {
		return nil, fmt.Errorf("%w: resumen de sesión incompleto", domain.ErrInvalidInput)
	}
	doc, err := uc.gen.GenerateReceiptPDF(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("recibo: %w", err)
	}
	return doc, nil
}
