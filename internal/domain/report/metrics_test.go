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

// Con netas en cero el margen se define como cero, nunca NaN ni pánico por
// división entre cero.
func TestMarginPct_NetasCero(t *testing.T) {
	m := report.MarginPct(decimal.NewFromInt(10), decimal.Zero)
	assert.True(t, m.IsZero())
	assert.Equal(t, "0.00%", report.FormatMarginPct(m))
}

func TestMarginPct_Calculo(t *testing.T) {
	m := report.MarginPct(decimal.NewFromInt(18), decimal.NewFromInt(30))
	assert.Equal(t, "60.00%", report.FormatMarginPct(m))
}

// FormatMarginPct redondea a dos decimales solo en la representación externa;
// el valor interno conserva la precisión completa.
func TestFormatMarginPct_DosDecimales(t *testing.T) {
	m := report.MarginPct(decimal.NewFromInt(1), decimal.NewFromInt(3))
	assert.Equal(t, "33.33%", report.FormatMarginPct(m))
	assert.False(t, m.Equal(decimal.RequireFromString("33.33")), "el valor interno no se redondea")
}

// El grupo top es el de mayores ventas; los empates los gana el aparecido primero.
func TestTopCategory_EmpateGanaPrimeraAparicion(t *testing.T) {
	cien := decimal.NewFromInt(100)
	cats := []report.CategorySummary{
		{Name: "Bebidas", TotalSales: cien},
		{Name: "Panadería", TotalSales: cien},
		{Name: "Lácteos", TotalSales: decimal.NewFromInt(40)},
	}

	top, ok := report.TopCategory(cats)
	require.True(t, ok)
	assert.Equal(t, "Bebidas", top.Name)
}

func TestTopItem_MayorVentaNeta(t *testing.T) {
	items := report.DeriveItemMetrics(report.AggregateByItem([]entity.SaleItem{
		linea("Pan", "Panadería", 1, 1, 1, 0.4),
		linea("Café", "Bebidas", 10, 3, 30, 1),
	}))

	top, ok := report.TopItem(items)
	require.True(t, ok)
	assert.Equal(t, "Café", top.ItemName)
}

func TestTopCategory_Vacio(t *testing.T) {
	_, ok := report.TopCategory(nil)
	assert.False(t, ok)
}

// El rollup suma sobre cabeceras (no líneas) y reconstruye el bruto
// pre-descuento: brutas = netas + descuentos. Reembolsos siempre cero.
func TestRollup_TotalesDelPeriodo(t *testing.T) {
	ahora := time.Date(2026, time.January, 8, 12, 0, 0, 0, time.UTC)
	sales := []entity.Sale{
		venta(ahora, 100, 5, 40, 19),
		venta(ahora.Add(24*time.Hour), 200, 0, 90, 38),
	}

	tot := report.Rollup(sales)
	assert.True(t, tot.GrossSales.Equal(decimal.NewFromInt(305)))
	assert.True(t, tot.Discounts.Equal(decimal.NewFromInt(5)))
	assert.True(t, tot.NetSales.Equal(decimal.NewFromInt(300)))
	assert.True(t, tot.GrossProfit.Equal(decimal.NewFromInt(130)))
	assert.True(t, tot.Tax.Equal(decimal.NewFromInt(57)))
	assert.True(t, tot.Refunds.IsZero())
	assert.True(t, tot.GrossSales.Equal(tot.NetSales.Add(tot.Discounts)), "brutas = netas + descuentos")
}

func TestRollup_SinVentas(t *testing.T) {
	tot := report.Rollup(nil)
	assert.True(t, tot.GrossSales.IsZero())
	assert.True(t, tot.NetSales.IsZero())
}
