// Package catalogfile carga un catálogo desde archivo (yaml, json o toml, según la extensión).
//
// Formato (yaml):
//
//	categories:
//	  - name: Snacks
//	    products:
//	      - {code: ORO4, name: oreo, price: 1.00, quantity: 10}
//
// Se usan listas y no mapas para conservar el orden de despliegue.
package catalogfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/internal/domain/catalog"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/jhoicas/vending-machine/pkg/money"
)

type fileProduct struct {
	Code     string `mapstructure:"code"`
	Name     string `mapstructure:"name"`
	Price    string `mapstructure:"price"`
	Quantity int    `mapstructure:"quantity"`
}

type fileCategory struct {
	Name     string        `mapstructure:"name"`
	Products []fileProduct `mapstructure:"products"`
}

// Load lee el archivo y devuelve la semilla del catálogo. No valida unicidad entre categorías
// más allá del stock: catalog.New hace la validación completa.
func Load(path string) (catalog.Seed, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return catalog.Seed{}, fmt.Errorf("catalogfile: leer %s: %w", path, err)
	}

	var cats []fileCategory
	if err := v.UnmarshalKey("categories", &cats); err != nil {
		return catalog.Seed{}, fmt.Errorf("catalogfile: decodificar %s: %w", path, err)
	}
	if len(cats) == 0 {
		return catalog.Seed{}, fmt.Errorf("%w: %s no define categorías", domain.ErrInvalidInput, path)
	}
	return toSeed(cats)
}

func toSeed(cats []fileCategory) (catalog.Seed, error) {
	seed := catalog.Seed{Stock: make(map[string]int)}
	for _, fc := range cats {
		c := entity.Category{Name: fc.Name}
		for _, fp := range fc.Products {
			code := catalog.NormalizeCode(fp.Code)
			price, err := parsePrice(fp.Price)
			if err != nil {
				return catalog.Seed{}, fmt.Errorf("%w: precio de %s: %v", domain.ErrInvalidInput, code, err)
			}
			if fp.Quantity < 0 {
				return catalog.Seed{}, fmt.Errorf("%w: cantidad negativa para %s", domain.ErrInvalidInput, code)
			}
			if _, dup := seed.Stock[code]; dup {
				return catalog.Seed{}, fmt.Errorf("%w: %s", domain.ErrDuplicate, code)
			}
			seed.Stock[code] = fp.Quantity
			c.Products = append(c.Products, entity.Product{Code: code, Name: fp.Name, Price: price})
		}
		seed.Categories = append(seed.Categories, c)
	}
	return seed, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, errors.New("vacío")
	}
	return money.Parse(s)
}
