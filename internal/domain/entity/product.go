package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la máquina.
// Code es único en todo el catálogo (no solo dentro de la categoría) y siempre en mayúsculas.
// La cantidad disponible no vive aquí: se maneja en Stock.
type Product struct {
	Code     string
	Name     string
	Category string
	Price    decimal.Decimal // precio de venta, >= 0
}
