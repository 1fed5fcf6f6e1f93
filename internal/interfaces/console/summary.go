package console

import (
	"github.com/jhoicas/vending-machine/internal/application/dto"
	"github.com/jhoicas/vending-machine/pkg/money"
)

const logTimeLayout = "2006-01-02 15:04:05"

// PrintSummary imprime el recibo final: totales, devolución y registro cronológico.
func PrintSummary(out IO, s dto.SessionSummary) {
	out.Printf("\n🧾 Total spent: %s\n", money.Format(s.TotalSpent))
	out.Printf("💵 Remaining balance: %s\n", money.Format(s.Balance))
	if s.HasRefund() {
		out.Printf("💰 Please collect your remaining balance: %s\n", money.Format(s.Balance))
	}
	out.Printf("\nTransaction log:\n")
	if len(s.Transactions) == 0 {
		out.Printf("No transactions recorded.\n")
	} else {
		for _, t := range s.Transactions {
			out.Printf("%s: %s - Paid %s from %s\n", t.Time.Format(logTimeLayout), t.ItemName, money.Format(t.Paid), t.Method)
		}
	}
	out.Printf("\n🙏 Thank you for using the Vending Machine. Goodbye!\n")
}
