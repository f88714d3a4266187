package entity

import "github.com/shopspring/decimal"

// Item representa un artículo del catálogo.
// Category es nil si el artículo no está categorizado.
type Item struct {
	ID        string
	Name      string
	CostPrice decimal.Decimal // costo unitario de reposición
	Category  *Category
}
