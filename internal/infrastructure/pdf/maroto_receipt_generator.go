// Package pdf implementa el recibo imprimible de la máquina expendedora.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: nombre de la máquina │ sesión + fecha │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Hora | Código | Producto | Pagado      │
//	│  ───────────────────────────────────────────  │
//	│  TOTALES: Total gastado / Saldo a devolver     │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/vending-machine/internal/application/dto"
	"github.com/jhoicas/vending-machine/internal/application/receipt"
	"github.com/jhoicas/vending-machine/pkg/money"
)

var _ receipt.PDFGenerator = (*MarotoReceiptGenerator)(nil)

const timeLayout = "2006-01-02 15:04:05"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa receipt.PDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	machineName string
}

// NewMarotoReceiptGenerator construye el generador; machineName va en el encabezado.
func NewMarotoReceiptGenerator(machineName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{machineName: machineName}
}

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, summary dto.SessionSummary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Receipt "+summary.SessionID, true).
		WithAuthor(g.machineName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.machineName, summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(summary.Transactions) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No transactions recorded.", props.Text{Size: 9, Top: 2, Color: colorGray}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(tableRows(summary.Transactions)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la máquina (izq) y sesión + fecha de cierre (der).
func headerRow(name string, s dto.SessionSummary) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1}),
			text.New("RECEIPT", props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Session "+shortID(s.SessionID), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1,
			}),
			text.New(s.FinishedAt.Format(timeLayout), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(7).Add(
		h("Time", 4, align.Left),
		h("Code", 2, align.Left),
		h("Product", 4, align.Left),
		h("Paid", 2, align.Right),
	)
}

// tableRows: una fila por transacción, en orden cronológico.
func tableRows(txs []dto.TransactionDTO) []core.Row {
	rows := make([]core.Row, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(t.Time.Format(timeLayout), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(t.Code, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(t.ItemName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(money.Format(t.Paid), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func totalsRow(s dto.SessionSummary) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right})
	}
	return row.New(12).Add(
		col.New(6),
		col.New(4).Add(label("Total spent:"), label("Refund:")),
		col.New(2).Add(value(money.Format(s.TotalSpent)), value(money.Format(s.Balance))),
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
