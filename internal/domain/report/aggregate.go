// Package report implementa el motor de agregación de ventas: convierte filas
// planas (líneas de venta y cabeceras) en resúmenes agrupados por artículo,
// categoría o día calendario, con métricas financieras derivadas y un motor
// puro de orden/filtro sobre los resúmenes ya agregados.
//
// El motor no persiste nada: cada ciclo recalcula los grupos completos desde
// el conjunto crudo y descarta el resultado anterior.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// Grupos centinela: una fila sin join nunca se descarta, se agrega bajo
// el centinela correspondiente a la relación ausente.
const (
	SinCategoria = "Sin Categoría" // línea cuyo artículo no tiene categoría (o no tiene artículo)
	Varios       = "Varios"        // línea sin artículo asociado
)

// ItemSummary acumulado de ventas de un artículo.
// Profit y MarginPct los completa DeriveItemMetrics; MarginPct conserva el
// valor sin redondear para ordenar y sumar sin arrastrar error de redondeo.
type ItemSummary struct {
	ItemName     string
	CategoryName string
	Quantity     int64
	GrossSales   decimal.Decimal
	Discounts    decimal.Decimal // siempre cero a esta granularidad (ver DESIGN.md)
	NetSales     decimal.Decimal
	Cost         decimal.Decimal
	Profit       decimal.Decimal
	MarginPct    decimal.Decimal
}

// CategorySummary acumulado de ventas de una categoría.
// ItemCount cuenta líneas de venta, no artículos distintos: así lo reporta la
// vista original y así se mantiene.
type CategorySummary struct {
	Name       string
	TotalSales decimal.Decimal
	ItemCount  int
}

// DailySummary acumulado de un día calendario, a granularidad de cabecera.
type DailySummary struct {
	Date       time.Time // día truncado, para orden cronológico
	Bucket     string    // etiqueta "02 ene" (clave de grupo)
	GrossSales decimal.Decimal
	Discounts  decimal.Decimal
	NetSales   decimal.Decimal
	Cost       decimal.Decimal
	Profit     decimal.Decimal
	MarginPct  decimal.Decimal
	Tax        decimal.Decimal
}

// AggregateByItem agrupa líneas de venta por nombre de artículo en una sola
// pasada. El orden del resultado es el de primera aparición de cada clave;
// ordenar es responsabilidad del motor de orden/filtro.
//
// Una línea con cantidad o importe cero igualmente crea y actualiza su grupo,
// para que los artículos sin ventas netas sigan siendo visibles.
func AggregateByItem(lines []entity.SaleItem) []ItemSummary {
	idx := make(map[string]int, len(lines))
	out := make([]ItemSummary, 0, len(lines))

	for _, l := range lines {
		name := l.ItemName()
		if name == "" {
			name = Varios
		}
		category := l.CategoryName()
		if category == "" {
			category = SinCategoria
		}

		i, ok := idx[name]
		if !ok {
			i = len(out)
			idx[name] = i
			out = append(out, ItemSummary{ItemName: name, CategoryName: category})
		}

		cost := l.CostPrice().Mul(decimal.NewFromInt(l.Quantity))
		acc := &out[i]
		acc.Quantity += l.Quantity
		acc.GrossSales = acc.GrossSales.Add(l.TotalPrice)
		// Los descuentos solo se persisten a nivel de cabecera de venta; a esta
		// granularidad netas == brutas y Discounts queda en cero.
		acc.NetSales = acc.NetSales.Add(l.TotalPrice)
		acc.Cost = acc.Cost.Add(cost)
	}
	return out
}

// AggregateByCategory agrupa líneas de venta por nombre de categoría.
// Las líneas sin categoría (o sin artículo) caen en "Sin Categoría".
func AggregateByCategory(lines []entity.SaleItem) []CategorySummary {
	idx := make(map[string]int, len(lines))
	out := make([]CategorySummary, 0, len(lines))

	for _, l := range lines {
		name := l.CategoryName()
		if name == "" {
			name = SinCategoria
		}
		i, ok := idx[name]
		if !ok {
			i = len(out)
			idx[name] = i
			out = append(out, CategorySummary{Name: name})
		}
		acc := &out[i]
		acc.TotalSales = acc.TotalSales.Add(l.TotalPrice)
		acc.ItemCount++
	}
	return out
}

// AggregateByDay agrupa cabeceras de venta por día calendario.
// La clave de grupo es la etiqueta del día ("02 ene"); Profit y MarginPct los
// completa DeriveDailyMetrics.
func AggregateByDay(sales []entity.Sale) []DailySummary {
	idx := make(map[string]int, len(sales))
	out := make([]DailySummary, 0, len(sales))

	for _, s := range sales {
		bucket := DayBucket(s.CreatedAt)
		i, ok := idx[bucket]
		if !ok {
			i = len(out)
			idx[bucket] = i
			y, m, d := s.CreatedAt.Date()
			out = append(out, DailySummary{
				Date:   time.Date(y, m, d, 0, 0, 0, 0, s.CreatedAt.Location()),
				Bucket: bucket,
			})
		}
		acc := &out[i]
		acc.GrossSales = acc.GrossSales.Add(s.GrossAmount())
		acc.Discounts = acc.Discounts.Add(s.DiscountAmount)
		acc.NetSales = acc.NetSales.Add(s.TotalAmount)
		acc.Cost = acc.Cost.Add(s.CostOfGoods())
		acc.Profit = acc.Profit.Add(s.GrossProfit)
		acc.Tax = acc.Tax.Add(s.TaxAmount)
	}
	return out
}

// Meses abreviados es-ES, como los produce toLocaleDateString con month:"short".
var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// DayBucket formatea la clave de grupo diaria: día a dos dígitos y mes
// abreviado en español, ej. "02 ene".
func DayBucket(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), spanishMonths[t.Month()-1])
}
