package catalog

import (
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/jhoicas/vending-machine/pkg/money"
)

type seedItem struct {
	code, name, price string
	qty               int
}

var defaultInventory = []struct {
	category string
	items    []seedItem
}{
	{"Snacks", []seedItem{
		{"ORO4", "oreo", "1.00", 10},
		{"BUBB5", "bubble", "1.75", 30},
		{"LAY3", "lays", "2.11", 22},
		{"LOLL2", "lollipop", "0.50", 22},
		{"CHP6", "potato chips", "1.50", 15},
		{"NUT7", "mixed nuts", "2.75", 20},
		{"BRC8", "chocolate bar", "1.25", 18},
		{"CRKR9", "crackers", "1.80", 25},
	}},
	{"Drinks", []seedItem{
		{"DRINK1", "Dr.Pep", "3.11", 22},
		{"C2", "Coke", "2.58", 9},
		{"P3", "Pepsi", "1.41", 33},
		{"W4", "water", "1.00", 25},
		{"MS5", "mint sprite", "2.00", 25},
		{"OJ6", "orange juice", "2.25", 20},
		{"LT7", "lemon tea", "1.90", 18},
		{"COF8", "coffee", "2.50", 15},
		{"ENRG9", "energy drink", "3.50", 12},
	}},
}

// Default inventario de fábrica de la máquina. Cada llamada devuelve una copia nueva.
func Default() Seed {
	seed := Seed{Stock: make(map[string]int)}
	for _, cat := range defaultInventory {
		c := entity.Category{Name: cat.category}
		for _, it := range cat.items {
			c.Products = append(c.Products, entity.Product{
				Code:  it.code,
				Name:  it.name,
				Price: money.MustParse(it.price),
			})
			seed.Stock[it.code] = it.qty
		}
		seed.Categories = append(seed.Categories, c)
	}
	return seed
}
