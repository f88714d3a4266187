package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appreport "github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/cache"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs
// ──────────────────────────────────────────────────────────────────────────────

// stubSalesRepo fuente de registros en memoria para los casos de uso.
type stubSalesRepo struct {
	lines []entity.SaleItem
	sales []entity.Sale
	err   error
}

func (s *stubSalesRepo) ListSaleLines(_ context.Context) ([]entity.SaleItem, error) {
	return s.lines, s.err
}

func (s *stubSalesRepo) ListSales(_ context.Context) ([]entity.Sale, error) {
	return s.sales, s.err
}

// spyCache cuenta hits y sets para verificar el camino de caché.
type spyCache struct {
	stored *dto.SummaryDTO
	sets   int
}

func (c *spyCache) GetSummary(_ context.Context, _ string) (*dto.SummaryDTO, bool, error) {
	return c.stored, c.stored != nil, nil
}

func (c *spyCache) SetSummary(_ context.Context, _ string, v *dto.SummaryDTO, _ time.Duration) error {
	c.stored = v
	c.sets++
	return nil
}

func lineaCompleta(item, categoria string, qty int64, total, costo float64) entity.SaleItem {
	var cat *entity.Category
	if categoria != "" {
		cat = &entity.Category{ID: "cat-" + categoria, Name: categoria}
	}
	return entity.SaleItem{
		Quantity:   qty,
		TotalPrice: decimal.NewFromFloat(total),
		Item:       &entity.Item{ID: "item-" + item, Name: item, CostPrice: decimal.NewFromFloat(costo), Category: cat},
	}
}

func ventaDe(dia int, total, descuento, beneficio float64) entity.Sale {
	return entity.Sale{
		CreatedAt:      time.Date(2026, time.January, dia, 12, 0, 0, 0, time.UTC),
		TotalAmount:    decimal.NewFromFloat(total),
		DiscountAmount: decimal.NewFromFloat(descuento),
		GrossProfit:    decimal.NewFromFloat(beneficio),
	}
}

func newUseCase(repo *stubSalesRepo) *appreport.UseCase {
	return appreport.NewUseCase(repo, cache.Noop{}, time.Minute)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de artículos
// ──────────────────────────────────────────────────────────────────────────────

func TestGetItemReport_AgregaOrdenaYFormatea(t *testing.T) {
	repo := &stubSalesRepo{lines: []entity.SaleItem{
		lineaCompleta("A", "X", 2, 20, 4),
		lineaCompleta("A", "X", 1, 10, 4),
		lineaCompleta("B", "Y", 1, 5, 1),
	}}

	rep, err := newUseCase(repo).GetItemReport(context.Background(), dto.ItemReportRequest{
		SortBy: "netas", Direction: "desc",
	})
	require.NoError(t, err)
	require.Len(t, rep.Items, 2)

	a := rep.Items[0]
	assert.Equal(t, "A", a.ItemName)
	assert.Equal(t, int64(3), a.Quantity)
	assert.True(t, a.NetSales.Equal(decimal.NewFromInt(30)))
	assert.True(t, a.Cost.Equal(decimal.NewFromInt(12)))
	assert.True(t, a.GrossProfit.Equal(decimal.NewFromInt(18)))
	assert.Equal(t, "60.00%", a.MarginPct)
	assert.True(t, a.Discounts.IsZero(), "los descuentos no se aplican a granularidad de artículo")

	assert.Equal(t, "A", rep.TopItem)
	assert.Equal(t, 2, rep.Total)
}

// El top se calcula sobre el agregado completo aunque el filtro lo excluya.
func TestGetItemReport_TopIgnoraElFiltro(t *testing.T) {
	repo := &stubSalesRepo{lines: []entity.SaleItem{
		lineaCompleta("Café", "Bebidas", 10, 100, 30),
		lineaCompleta("Pan", "Panadería", 1, 1, 0.4),
	}}

	rep, err := newUseCase(repo).GetItemReport(context.Background(), dto.ItemReportRequest{Search: "pan"})
	require.NoError(t, err)
	require.Len(t, rep.Items, 1)
	assert.Equal(t, "Pan", rep.Items[0].ItemName)
	assert.Equal(t, "Café", rep.TopItem)
}

// Un fetch fallido aborta el ciclo entero: error terminal, nunca un reporte
// parcial ni "cero ventas".
func TestGetItemReport_FuenteCaida(t *testing.T) {
	repo := &stubSalesRepo{err: errors.New("conexión rechazada")}

	rep, err := newUseCase(repo).GetItemReport(context.Background(), dto.ItemReportRequest{})
	require.Error(t, err)
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCategoryReport_RankingDescendenteConColores(t *testing.T) {
	repo := &stubSalesRepo{lines: []entity.SaleItem{
		lineaCompleta("Pan", "Panadería", 1, 5, 0.4),
		lineaCompleta("Café", "Bebidas", 2, 50, 1),
		{Quantity: 1, TotalPrice: decimal.NewFromInt(7)}, // sin artículo → Sin Categoría
	}}

	rep, err := newUseCase(repo).GetCategoryReport(context.Background(), dto.CategoryReportRequest{})
	require.NoError(t, err)
	require.Len(t, rep.Categories, 3)

	assert.Equal(t, "Bebidas", rep.Categories[0].Name)
	assert.Equal(t, "Sin Categoría", rep.Categories[1].Name)
	assert.Equal(t, "Panadería", rep.Categories[2].Name)
	assert.Equal(t, "Bebidas", rep.TopCategory)

	// colores por posición del ranking, paleta fija
	assert.Equal(t, "#007AFF", rep.Categories[0].Color)
	assert.Equal(t, "#34C759", rep.Categories[1].Color)

	assert.Equal(t, 1, rep.Categories[1].ItemCount)
	assert.True(t, rep.Categories[1].TotalSales.Equal(decimal.NewFromInt(7)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista diaria y resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDailyReport_PorDefectoMasRecientePrimero(t *testing.T) {
	repo := &stubSalesRepo{sales: []entity.Sale{
		ventaDe(8, 100, 10, 45),
		ventaDe(9, 30, 0, 12),
		ventaDe(8, 50, 0, 20),
	}}

	rep, err := newUseCase(repo).GetDailyReport(context.Background(), dto.SortRequest{})
	require.NoError(t, err)
	require.Len(t, rep.Days, 2)

	assert.Equal(t, "09 ene", rep.Days[0].Date)
	d8 := rep.Days[1]
	assert.Equal(t, "08 ene", d8.Date)
	assert.True(t, d8.GrossSales.Equal(decimal.NewFromInt(160)))
	assert.True(t, d8.NetSales.Equal(decimal.NewFromInt(150)))
	assert.True(t, d8.Cost.Equal(decimal.NewFromInt(85)))
	assert.Equal(t, "43.33%", d8.MarginPct)
	assert.True(t, d8.Refunds.IsZero())
}

func TestGetSummary_RollupYSerieCronologica(t *testing.T) {
	repo := &stubSalesRepo{sales: []entity.Sale{
		ventaDe(9, 30, 0, 12),
		ventaDe(8, 100, 5, 45),
	}}

	sum, err := newUseCase(repo).GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.GrossSales.Equal(decimal.NewFromInt(135)))
	assert.True(t, sum.Discounts.Equal(decimal.NewFromInt(5)))
	assert.True(t, sum.NetSales.Equal(decimal.NewFromInt(130)))
	assert.True(t, sum.GrossProfit.Equal(decimal.NewFromInt(57)))
	assert.True(t, sum.Refunds.IsZero())

	// sin semántica de período de comparación: tendencias en cero
	assert.True(t, sum.TrendGrossSales.IsZero())
	assert.True(t, sum.TrendNetSales.IsZero())

	// la serie del gráfico va en orden cronológico aunque el fetch venga al revés
	require.Len(t, sum.Chart, 2)
	assert.Equal(t, "08 ene", sum.Chart[0].Name)
	assert.Equal(t, "09 ene", sum.Chart[1].Name)
	assert.True(t, sum.Chart[0].NetSales.Equal(decimal.NewFromInt(100)))
}

// Con caché disponible, el resumen se sirve del caché dentro del TTL y el
// primer cálculo lo puebla.
func TestGetSummary_UsaCache(t *testing.T) {
	repo := &stubSalesRepo{sales: []entity.Sale{ventaDe(8, 100, 0, 45)}}
	spy := &spyCache{}
	uc := appreport.NewUseCase(repo, spy, time.Minute)

	primero, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, spy.sets)

	// la fuente deja de responder: el hit de caché sigue sirviendo
	repo.err = errors.New("caída")
	segundo, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, primero, segundo)
	assert.Equal(t, 1, spy.sets, "un hit no vuelve a escribir el caché")
}

func TestGetSummary_FuenteCaidaSinCache(t *testing.T) {
	repo := &stubSalesRepo{err: errors.New("timeout")}

	_, err := newUseCase(repo).GetSummary(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
