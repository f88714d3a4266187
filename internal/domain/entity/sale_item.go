package entity

import "github.com/shopspring/decimal"

// SaleItem representa una línea de venta: un artículo vendido dentro de una venta.
// Item es nil cuando el artículo fue eliminado o la línea se registró sin catálogo;
// la agregación resuelve ese caso con grupos centinela, nunca descarta la fila.
type SaleItem struct {
	ID         string
	SaleID     string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Item       *Item
}

// ItemName devuelve el nombre del artículo o "" si no hay join.
func (l SaleItem) ItemName() string {
	if l.Item == nil {
		return ""
	}
	return l.Item.Name
}

// CategoryName devuelve el nombre de la categoría del artículo o "" si falta
// el artículo o su categoría.
func (l SaleItem) CategoryName() string {
	if l.Item == nil || l.Item.Category == nil {
		return ""
	}
	return l.Item.Category.Name
}

// CostPrice devuelve el costo unitario del artículo, cero si no hay join.
func (l SaleItem) CostPrice() decimal.Decimal {
	if l.Item == nil {
		return decimal.Zero
	}
	return l.Item.CostPrice
}
