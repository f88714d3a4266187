package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta cerrada en el punto de venta.
// TotalAmount es el neto cobrado; el bruto se reconstruye sumando el descuento.
type Sale struct {
	ID             string
	CreatedAt      time.Time
	TotalAmount    decimal.Decimal // neto cobrado (ya con descuento aplicado)
	DiscountAmount decimal.Decimal
	GrossProfit    decimal.Decimal // neto - costo de bienes, calculado al cerrar la venta
	TaxAmount      decimal.Decimal
}

// GrossAmount devuelve el bruto de la venta: neto + descuento.
// A nivel de cabecera solo se persisten el neto y el descuento.
func (s Sale) GrossAmount() decimal.Decimal {
	return s.TotalAmount.Add(s.DiscountAmount)
}

// CostOfGoods devuelve el costo de bienes de la venta (neto - beneficio bruto).
func (s Sale) CostOfGoods() decimal.Decimal {
	return s.TotalAmount.Sub(s.GrossProfit)
}
