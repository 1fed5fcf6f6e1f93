package entity

// Stock cantidad disponible de un producto. Nunca negativa; solo decrece (no hay reposición).
type Stock struct {
	Code     string
	Quantity int
}
