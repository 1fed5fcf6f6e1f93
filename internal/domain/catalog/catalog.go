// Package catalog contiene el catálogo de solo lectura de la máquina:
// categorías ordenadas → productos ordenados, indexados por código único.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
)

// NormalizeCode lleva un código ingresado por el usuario a su forma canónica (sin espacios, mayúsculas).
func NormalizeCode(code string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(code))
}

// Catalog catálogo inmutable tras su construcción.
type Catalog struct {
	categories []entity.Category
	index      map[string]entity.Product
}

// Seed definición de catálogo más cantidades iniciales (por código) para sembrar el stock.
type Seed struct {
	Categories []entity.Category
	Stock      map[string]int
}

// New valida y construye el catálogo. Los códigos se normalizan a mayúsculas y deben ser únicos
// en todo el catálogo; los nombres de categoría también son únicos.
func New(categories []entity.Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]entity.Category, 0, len(categories)),
		index:      make(map[string]entity.Product),
	}
	seenCategory := make(map[string]bool, len(categories))
	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: categoría sin nombre", domain.ErrInvalidInput)
		}
		if seenCategory[name] {
			return nil, fmt.Errorf("%w: categoría %q", domain.ErrDuplicate, name)
		}
		seenCategory[name] = true

		products := make([]entity.Product, 0, len(cat.Products))
		for _, p := range cat.Products {
			code := NormalizeCode(p.Code)
			if code == "" {
				return nil, fmt.Errorf("%w: producto sin código en %q", domain.ErrInvalidInput, name)
			}
			if strings.TrimSpace(p.Name) == "" {
				return nil, fmt.Errorf("%w: producto %s sin nombre", domain.ErrInvalidInput, code)
			}
			if p.Price.IsNegative() {
				return nil, fmt.Errorf("%w: producto %s con precio negativo", domain.ErrInvalidInput, code)
			}
			if prev, ok := c.index[code]; ok {
				return nil, fmt.Errorf("%w: %s en %q y %q", domain.ErrDuplicate, code, prev.Category, name)
			}
			p.Code = code
			p.Category = name
			c.index[code] = p
			products = append(products, p)
		}
		c.categories = append(c.categories, entity.Category{Name: name, Products: products})
	}
	return c, nil
}

// Lookup busca un producto por código sin distinguir mayúsculas.
func (c *Catalog) Lookup(code string) (entity.Product, error) {
	p, ok := c.index[NormalizeCode(code)]
	if !ok {
		return entity.Product{}, domain.ErrNotFound
	}
	return p, nil
}

// Categories devuelve una copia de las categorías en orden de despliegue.
func (c *Catalog) Categories() []entity.Category {
	out := make([]entity.Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = entity.Category{
			Name:     cat.Name,
			Products: append([]entity.Product(nil), cat.Products...),
		}
	}
	return out
}

// Codes todos los códigos en orden de despliegue.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.index))
	for _, cat := range c.categories {
		for _, p := range cat.Products {
			codes = append(codes, p.Code)
		}
	}
	return codes
}

// Len número de productos.
func (c *Catalog) Len() int { return len(c.index) }
