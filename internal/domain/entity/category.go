package entity

// Category agrupa productos para la visualización. El orden de Products es el de despliegue.
type Category struct {
	Name     string
	Products []Product
}
