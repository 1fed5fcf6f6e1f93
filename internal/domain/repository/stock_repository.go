package repository

import "github.com/jhoicas/vending-machine/internal/domain/entity"

// StockRepository define el puerto para consultar/descontar el stock por código de producto.
// No expone reposición: el stock solo decrece durante la vida del proceso.
type StockRepository interface {
	Get(code string) (*entity.Stock, error)
	// Decrement descuenta una unidad; ErrOutOfStock si la cantidad ya es cero.
	Decrement(code string) error
	List() []entity.Stock
}
