package receipt

import (
	"context"

	"github.com/jhoicas/vending-machine/internal/application/dto"
)

// PDFGenerator genera la representación en PDF del recibo de una sesión.
type PDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, summary dto.SessionSummary) ([]byte, error)
}
