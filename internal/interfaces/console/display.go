package console

import (
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/vending-machine/internal/application/vending"
	"github.com/jhoicas/vending-machine/pkg/money"
)

const productHeader = "Product"

// Display muestra el saldo y el catálogo, con la columna de producto ajustada al nombre
// más largo de cada categoría.
func Display(out IO, s *vending.Session) {
	out.Printf("\n💰 Current Balance: %s\n", money.Format(s.Balance()))
	out.Printf("\n📋 Available Items:\n")
	for _, cat := range s.Catalog().Categories() {
		out.Printf("\n--- %s ---\n", cat.Name)
		width := 0
		for _, p := range cat.Products {
			if n := utf8.RuneCountInString(p.Name); n > width {
				width = n
			}
		}
		out.Printf("Code\t%s%s\tPrice\tQuantity\n", productHeader, pad(width, productHeader))
		for _, p := range cat.Products {
			qty, err := s.Quantity(p.Code)
			if err != nil {
				qty = 0
			}
			out.Printf("%s\t%s%s\t%s\t%d\n", p.Code, p.Name, pad(width, p.Name), money.Format(p.Price), qty)
		}
	}
}

// pad espacios para completar text hasta width runas; nunca negativo.
func pad(width int, text string) string {
	n := width - utf8.RuneCountInString(text)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
