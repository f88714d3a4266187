package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// MarginPct calcula beneficio/netas*100 sin redondear.
// Con netas en cero el margen se define como cero: nunca NaN ni error.
func MarginPct(profit, net decimal.Decimal) decimal.Decimal {
	if net.IsZero() {
		return decimal.Zero
	}
	return profit.Div(net).Mul(hundred)
}

// FormatMarginPct produce la representación externa del margen: dos decimales
// y símbolo de porcentaje, ej. "60.00%".
func FormatMarginPct(m decimal.Decimal) string {
	return m.StringFixed(2) + "%"
}

// DeriveItemMetrics completa Profit y MarginPct de cada acumulador finalizado.
// Devuelve una copia; no muta la entrada.
func DeriveItemMetrics(items []ItemSummary) []ItemSummary {
	out := make([]ItemSummary, len(items))
	for i, it := range items {
		it.Profit = it.NetSales.Sub(it.Cost)
		it.MarginPct = MarginPct(it.Profit, it.NetSales)
		out[i] = it
	}
	return out
}

// DeriveDailyMetrics completa MarginPct de cada día (Profit ya viene sumado de
// las cabeceras). Devuelve una copia; no muta la entrada.
func DeriveDailyMetrics(days []DailySummary) []DailySummary {
	out := make([]DailySummary, len(days))
	for i, d := range days {
		d.MarginPct = MarginPct(d.Profit, d.NetSales)
		out[i] = d
	}
	return out
}

// TopItem devuelve el artículo con mayores ventas netas del conjunto agregado
// completo. Los empates los gana el grupo aparecido primero.
func TopItem(items []ItemSummary) (ItemSummary, bool) {
	if len(items) == 0 {
		return ItemSummary{}, false
	}
	top := items[0]
	for _, it := range items[1:] {
		if it.NetSales.GreaterThan(top.NetSales) {
			top = it
		}
	}
	return top, true
}

// TopCategory devuelve la categoría con mayor venta total; empates los gana
// la primera aparecida.
func TopCategory(cats []CategorySummary) (CategorySummary, bool) {
	if len(cats) == 0 {
		return CategorySummary{}, false
	}
	top := cats[0]
	for _, c := range cats[1:] {
		if c.TotalSales.GreaterThan(top.TotalSales) {
			top = c
		}
	}
	return top, true
}

// PeriodTotals totales del período completo, sumados sobre cabeceras de venta
// (no sobre líneas) para no duplicar ventas con varias líneas.
type PeriodTotals struct {
	GrossSales  decimal.Decimal // netas + descuentos, reconstruye el bruto pre-descuento
	Refunds     decimal.Decimal // no existen registros de reembolso: siempre cero
	Discounts   decimal.Decimal
	NetSales    decimal.Decimal
	GrossProfit decimal.Decimal
	Tax         decimal.Decimal
}

// Rollup suma los totales del período sobre las cabeceras de venta.
func Rollup(sales []entity.Sale) PeriodTotals {
	var t PeriodTotals
	for _, s := range sales {
		t.GrossSales = t.GrossSales.Add(s.GrossAmount())
		t.Discounts = t.Discounts.Add(s.DiscountAmount)
		t.NetSales = t.NetSales.Add(s.TotalAmount)
		t.GrossProfit = t.GrossProfit.Add(s.GrossProfit)
		t.Tax = t.Tax.Add(s.TaxAmount)
	}
	return t
}
