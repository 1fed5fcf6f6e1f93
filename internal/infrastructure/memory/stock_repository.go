// Package memory implementa los puertos de repositorio en memoria de proceso.
package memory

import (
	"fmt"
	"sort"

	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/internal/domain/catalog"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/jhoicas/vending-machine/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepository)(nil)

// StockRepository tabla mutable de cantidades, separada del catálogo de solo lectura.
// La sesión es de un solo hilo; no se protege con mutex.
type StockRepository struct {
	qty map[string]int
}

// NewStockRepository siembra la tabla. Cantidades negativas o códigos repetidos tras normalizar son error.
func NewStockRepository(seed map[string]int) (*StockRepository, error) {
	r := &StockRepository{qty: make(map[string]int, len(seed))}
	for code, q := range seed {
		c := catalog.NormalizeCode(code)
		if c == "" {
			return nil, fmt.Errorf("%w: stock sin código", domain.ErrInvalidInput)
		}
		if q < 0 {
			return nil, fmt.Errorf("%w: stock negativo para %s", domain.ErrInvalidInput, c)
		}
		if _, ok := r.qty[c]; ok {
			return nil, fmt.Errorf("%w: stock %s", domain.ErrDuplicate, c)
		}
		r.qty[c] = q
	}
	return r, nil
}

// ForCatalog siembra el stock para todos los códigos del catálogo; los que faltan en seed quedan en cero.
func ForCatalog(c *catalog.Catalog, seed map[string]int) (*StockRepository, error) {
	full := make(map[string]int, c.Len())
	for _, code := range c.Codes() {
		full[code] = 0
	}
	for code, q := range seed {
		n := catalog.NormalizeCode(code)
		if _, ok := full[n]; !ok {
			return nil, fmt.Errorf("%w: stock para código fuera del catálogo %s", domain.ErrNotFound, n)
		}
		full[n] = q
	}
	return NewStockRepository(full)
}

// Get devuelve una copia del stock del código.
func (r *StockRepository) Get(code string) (*entity.Stock, error) {
	c := catalog.NormalizeCode(code)
	q, ok := r.qty[c]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entity.Stock{Code: c, Quantity: q}, nil
}

// Decrement descuenta una unidad.
func (r *StockRepository) Decrement(code string) error {
	c := catalog.NormalizeCode(code)
	q, ok := r.qty[c]
	if !ok {
		return domain.ErrNotFound
	}
	if q <= 0 {
		return domain.ErrOutOfStock
	}
	r.qty[c] = q - 1
	return nil
}

// List stock ordenado por código.
func (r *StockRepository) List() []entity.Stock {
	out := make([]entity.Stock, 0, len(r.qty))
	for c, q := range r.qty {
		out = append(out, entity.Stock{Code: c, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
