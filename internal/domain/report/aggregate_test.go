package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de construcción de fixtures
// ──────────────────────────────────────────────────────────────────────────────

// linea construye una línea de venta con joins completos.
func linea(item, categoria string, qty int64, unitPrice, totalPrice, costPrice float64) entity.SaleItem {
	var cat *entity.Category
	if categoria != "" {
		cat = &entity.Category{ID: "cat-" + categoria, Name: categoria}
	}
	return entity.SaleItem{
		Quantity:   qty,
		UnitPrice:  decimal.NewFromFloat(unitPrice),
		TotalPrice: decimal.NewFromFloat(totalPrice),
		Item: &entity.Item{
			ID:        "item-" + item,
			Name:      item,
			CostPrice: decimal.NewFromFloat(costPrice),
			Category:  cat,
		},
	}
}

// lineaSinArticulo construye una línea cuyo artículo fue borrado (join ausente).
func lineaSinArticulo(totalPrice float64) entity.SaleItem {
	return entity.SaleItem{
		Quantity:   1,
		TotalPrice: decimal.NewFromFloat(totalPrice),
	}
}

func fecha(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func venta(creada time.Time, total, descuento, beneficio, impuesto float64) entity.Sale {
	return entity.Sale{
		CreatedAt:      creada,
		TotalAmount:    decimal.NewFromFloat(total),
		DiscountAmount: decimal.NewFromFloat(descuento),
		GrossProfit:    decimal.NewFromFloat(beneficio),
		TaxAmount:      decimal.NewFromFloat(impuesto),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación por artículo
// ──────────────────────────────────────────────────────────────────────────────

// Dos líneas del mismo artículo deben acumularse en un único grupo con
// cantidad 3, netas 30, costo 12, beneficio 18 y margen "60.00%".
func TestAggregateByItem_AcumulaMismoArticulo(t *testing.T) {
	lines := []entity.SaleItem{
		linea("A", "X", 2, 10, 20, 4),
		linea("A", "X", 1, 10, 10, 4),
	}

	items := report.DeriveItemMetrics(report.AggregateByItem(lines))
	require.Len(t, items, 1, "dos líneas del mismo artículo producen un solo grupo")

	a := items[0]
	assert.Equal(t, "A", a.ItemName)
	assert.Equal(t, "X", a.CategoryName)
	assert.Equal(t, int64(3), a.Quantity)
	assert.True(t, a.NetSales.Equal(decimal.NewFromInt(30)), "netas = 30, obtuvo %s", a.NetSales)
	assert.True(t, a.Cost.Equal(decimal.NewFromInt(12)), "costo = 12, obtuvo %s", a.Cost)
	assert.True(t, a.Profit.Equal(decimal.NewFromInt(18)), "beneficio = 18, obtuvo %s", a.Profit)
	assert.Equal(t, "60.00%", report.FormatMarginPct(a.MarginPct))
}

// Una línea sin artículo asociado cae en el grupo centinela "Varios", con
// categoría "Sin Categoría"; nunca se descarta.
func TestAggregateByItem_SinArticuloCaeEnVarios(t *testing.T) {
	items := report.AggregateByItem([]entity.SaleItem{lineaSinArticulo(15)})

	require.Len(t, items, 1)
	assert.Equal(t, report.Varios, items[0].ItemName)
	assert.Equal(t, report.SinCategoria, items[0].CategoryName)
	assert.True(t, items[0].NetSales.Equal(decimal.NewFromInt(15)))
}

// Una línea con artículo pero sin categoría conserva el artículo y cae en
// "Sin Categoría" como categoría.
func TestAggregateByItem_ArticuloSinCategoria(t *testing.T) {
	items := report.AggregateByItem([]entity.SaleItem{linea("Bolsa", "", 1, 2, 2, 0.5)})

	require.Len(t, items, 1)
	assert.Equal(t, "Bolsa", items[0].ItemName)
	assert.Equal(t, report.SinCategoria, items[0].CategoryName)
}

// Una línea con cantidad e importe cero igualmente crea su grupo: los
// artículos sin ventas netas deben seguir siendo visibles.
func TestAggregateByItem_LineaEnCeroCreaGrupo(t *testing.T) {
	items := report.DeriveItemMetrics(report.AggregateByItem([]entity.SaleItem{
		linea("Muestra", "Promos", 0, 0, 0, 3),
	}))

	require.Len(t, items, 1)
	assert.Equal(t, int64(0), items[0].Quantity)
	assert.True(t, items[0].NetSales.IsZero())
	assert.True(t, items[0].MarginPct.IsZero(), "margen con netas cero debe ser cero, no NaN")
}

// El orden de salida es el de primera aparición de cada artículo.
func TestAggregateByItem_OrdenPrimeraAparicion(t *testing.T) {
	lines := []entity.SaleItem{
		linea("Pan", "Panadería", 1, 1, 1, 0.4),
		linea("Café", "Bebidas", 1, 3, 3, 1),
		linea("Pan", "Panadería", 2, 1, 2, 0.4),
		linea("Leche", "Lácteos", 1, 2, 2, 1.2),
	}

	items := report.AggregateByItem(lines)
	require.Len(t, items, 3)
	assert.Equal(t, "Pan", items[0].ItemName)
	assert.Equal(t, "Café", items[1].ItemName)
	assert.Equal(t, "Leche", items[2].ItemName)
}

// Conservación: la suma de netas por artículo y la suma de ventas por
// categoría deben igualar la suma de total_price de todas las líneas.
func TestAggregate_Conservacion(t *testing.T) {
	lines := []entity.SaleItem{
		linea("Pan", "Panadería", 3, 1, 3, 0.4),
		linea("Café", "Bebidas", 2, 3, 6, 1),
		linea("Pan", "Panadería", 1, 1, 1, 0.4),
		lineaSinArticulo(9.5),
		linea("Bolsa", "", 4, 0.25, 1, 0.05),
	}

	var total decimal.Decimal
	for _, l := range lines {
		total = total.Add(l.TotalPrice)
	}

	var porArticulo decimal.Decimal
	for _, it := range report.AggregateByItem(lines) {
		porArticulo = porArticulo.Add(it.NetSales)
	}
	var porCategoria decimal.Decimal
	for _, c := range report.AggregateByCategory(lines) {
		porCategoria = porCategoria.Add(c.TotalSales)
	}

	assert.True(t, porArticulo.Equal(total), "Σ netas por artículo (%s) == Σ total_price (%s)", porArticulo, total)
	assert.True(t, porCategoria.Equal(total), "Σ ventas por categoría (%s) == Σ total_price (%s)", porCategoria, total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación por categoría
// ──────────────────────────────────────────────────────────────────────────────

// Una línea sin categoría produce un grupo "Sin Categoría" con ventas igual al
// total de la línea y una línea contada.
func TestAggregateByCategory_SinCategoria(t *testing.T) {
	cats := report.AggregateByCategory([]entity.SaleItem{linea("Bolsa", "", 1, 7, 7, 1)})

	require.Len(t, cats, 1)
	assert.Equal(t, report.SinCategoria, cats[0].Name)
	assert.True(t, cats[0].TotalSales.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, 1, cats[0].ItemCount)
}

// ItemCount cuenta líneas de venta, no artículos distintos.
func TestAggregateByCategory_CuentaLineas(t *testing.T) {
	cats := report.AggregateByCategory([]entity.SaleItem{
		linea("Pan", "Panadería", 1, 1, 1, 0.4),
		linea("Croissant", "Panadería", 1, 2, 2, 0.8),
		linea("Pan", "Panadería", 2, 1, 2, 0.4),
	})

	require.Len(t, cats, 1)
	assert.Equal(t, 3, cats[0].ItemCount)
	assert.True(t, cats[0].TotalSales.Equal(decimal.NewFromInt(5)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación por día
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateByDay_AgrupaPorDiaCalendario(t *testing.T) {
	enero8 := time.Date(2026, time.January, 8, 10, 30, 0, 0, time.UTC)
	enero8Tarde := time.Date(2026, time.January, 8, 19, 0, 0, 0, time.UTC)
	enero9 := time.Date(2026, time.January, 9, 9, 0, 0, 0, time.UTC)

	days := report.DeriveDailyMetrics(report.AggregateByDay([]entity.Sale{
		venta(enero8, 100, 10, 45, 0),
		venta(enero8Tarde, 50, 0, 20, 5),
		venta(enero9, 30, 0, 12, 0),
	}))

	require.Len(t, days, 2)

	d8 := days[0]
	assert.Equal(t, "08 ene", d8.Bucket)
	assert.True(t, d8.GrossSales.Equal(decimal.NewFromInt(160)), "brutas = netas + descuentos")
	assert.True(t, d8.Discounts.Equal(decimal.NewFromInt(10)))
	assert.True(t, d8.NetSales.Equal(decimal.NewFromInt(150)))
	assert.True(t, d8.Profit.Equal(decimal.NewFromInt(65)))
	assert.True(t, d8.Cost.Equal(decimal.NewFromInt(85)), "costo = netas - beneficio")
	assert.True(t, d8.Tax.Equal(decimal.NewFromInt(5)))

	assert.Equal(t, "09 ene", days[1].Bucket)
}

func TestDayBucket_FormatoEspanol(t *testing.T) {
	assert.Equal(t, "02 ene", report.DayBucket(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "29 dic", report.DayBucket(time.Date(2025, time.December, 29, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "15 ago", report.DayBucket(time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)))
}
