// Package report contiene los casos de uso del motor de reportes de venta:
// resumen del período, vista diaria, ventas por artículo y por categoría.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/ports"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/report"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// summaryCacheKey clave única del resumen del período en el caché.
const summaryCacheKey = "reports:summary"

// Paleta de colores de presentación para el ranking de categorías,
// asignada por posición tras ordenar por ventas descendente.
var categoryColors = []string{
	"#007AFF", "#34C759", "#FF9500", "#FF2D55", "#AF52DE", "#5856D6", "#FFCC00",
}

// UseCase genera los reportes a partir de la fuente de registros crudos.
//
// Cada vista hace exactamente un fetch masivo por activación y recalcula el
// agregado completo de forma síncrona: no hay resultados parciales ni
// actualización incremental. Si el fetch falla, el ciclo se aborta entero y
// se devuelve ErrSourceUnavailable (nunca "cero ventas" silencioso).
type UseCase struct {
	salesRepo repository.SalesRepository
	cache     ports.ReportCache
	cacheTTL  time.Duration
}

// NewUseCase construye el caso de uso. cache puede ser el Noop si no hay
// Redis configurado; ttl solo aplica al resumen del período.
func NewUseCase(salesRepo repository.SalesRepository, cache ports.ReportCache, cacheTTL time.Duration) *UseCase {
	return &UseCase{salesRepo: salesRepo, cache: cache, cacheTTL: cacheTTL}
}

// GetItemReport construye la vista "Ventas por Artículo": agrega por nombre
// de artículo, deriva métricas, ordena y filtra según la petición.
func (uc *UseCase) GetItemReport(ctx context.Context, req dto.ItemReportRequest) (*dto.ItemReportDTO, error) {
	lines, err := uc.salesRepo.ListSaleLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, err)
	}

	items := report.DeriveItemMetrics(report.AggregateByItem(lines))
	rows := report.ApplyItems(items, sortConfig(req.SortBy, req.Direction), req.Search)

	out := &dto.ItemReportDTO{
		Items: make([]dto.ItemSummaryDTO, 0, len(rows)),
		Total: len(rows),
	}
	for _, it := range rows {
		out.Items = append(out.Items, itemToDTO(it))
	}
	// El top se elige sobre el agregado completo, no sobre el filtrado.
	if top, ok := report.TopItem(items); ok {
		out.TopItem = top.ItemName
	}
	return out, nil
}

// GetCategoryReport construye la vista "Ventas por Categoría": ranking por
// ventas descendente con color de presentación por posición.
func (uc *UseCase) GetCategoryReport(ctx context.Context, req dto.CategoryReportRequest) (*dto.CategoryReportDTO, error) {
	lines, err := uc.salesRepo.ListSaleLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, err)
	}

	cats := report.AggregateByCategory(lines)
	ranking := report.FilterCategories(
		report.SortCategories(cats, report.SortConfig{Key: report.KeyTotalSales, Direction: report.SortDesc}),
		req.Search,
	)

	out := &dto.CategoryReportDTO{Categories: make([]dto.CategorySummaryDTO, 0, len(ranking))}
	for i, c := range ranking {
		out.Categories = append(out.Categories, dto.CategorySummaryDTO{
			Name:       c.Name,
			TotalSales: c.TotalSales,
			ItemCount:  c.ItemCount,
			Color:      categoryColors[i%len(categoryColors)],
		})
	}
	if top, ok := report.TopCategory(cats); ok {
		out.TopCategory = top.Name
	}
	return out, nil
}

// GetDailyReport construye la vista diaria a granularidad de cabecera.
// Sin orden explícito, los días van del más reciente al más antiguo.
func (uc *UseCase) GetDailyReport(ctx context.Context, req dto.SortRequest) (*dto.DailyReportDTO, error) {
	sales, err := uc.salesRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, err)
	}

	days := report.DeriveDailyMetrics(report.AggregateByDay(sales))
	cfg := sortConfig(req.SortBy, req.Direction)
	if cfg.Key == "" {
		cfg = report.SortConfig{Key: report.KeyDate, Direction: report.SortDesc}
	}
	rows := report.SortDaily(days, cfg)

	out := &dto.DailyReportDTO{Days: make([]dto.DailySummaryDTO, 0, len(rows))}
	for _, d := range rows {
		out.Days = append(out.Days, dto.DailySummaryDTO{
			Date:        d.Bucket,
			GrossSales:  d.GrossSales,
			Discounts:   d.Discounts,
			NetSales:    d.NetSales,
			Cost:        d.Cost,
			GrossProfit: d.Profit,
			MarginPct:   report.FormatMarginPct(d.MarginPct),
			Tax:         d.Tax,
		})
	}
	return out, nil
}

// GetSummary construye el resumen del período: rollup sobre cabeceras más la
// serie diaria del gráfico en orden cronológico. El resultado puede venir del
// caché (lectura y escritura best-effort: un caché caído no rompe el reporte).
func (uc *UseCase) GetSummary(ctx context.Context) (*dto.SummaryDTO, error) {
	if cached, ok, err := uc.cache.GetSummary(ctx, summaryCacheKey); err == nil && ok {
		return cached, nil
	}

	sales, err := uc.salesRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, err)
	}

	tot := report.Rollup(sales)
	days := report.SortDaily(
		report.AggregateByDay(sales),
		report.SortConfig{Key: report.KeyDate, Direction: report.SortAsc},
	)

	chart := make([]dto.ChartPointDTO, 0, len(days))
	for _, d := range days {
		chart = append(chart, dto.ChartPointDTO{Name: d.Bucket, NetSales: d.NetSales})
	}

	out := &dto.SummaryDTO{
		GrossSales:  tot.GrossSales,
		Refunds:     tot.Refunds,
		Discounts:   tot.Discounts,
		NetSales:    tot.NetSales,
		GrossProfit: tot.GrossProfit,
		Tax:         tot.Tax,
		Chart:       chart,
	}
	_ = uc.cache.SetSummary(ctx, summaryCacheKey, out, uc.cacheTTL)
	return out, nil
}

func itemToDTO(it report.ItemSummary) dto.ItemSummaryDTO {
	return dto.ItemSummaryDTO{
		ItemName:     it.ItemName,
		CategoryName: it.CategoryName,
		Quantity:     it.Quantity,
		GrossSales:   it.GrossSales,
		Discounts:    it.Discounts,
		NetSales:     it.NetSales,
		Cost:         it.Cost,
		GrossProfit:  it.Profit,
		MarginPct:    report.FormatMarginPct(it.MarginPct),
	}
}

// sortConfig traduce los parámetros de la petición a la configuración del
// motor; dirección distinta de "desc" queda ascendente.
func sortConfig(sortBy, direction string) report.SortConfig {
	if sortBy == "" {
		return report.SortConfig{}
	}
	dir := report.SortAsc
	if direction == string(report.SortDesc) {
		dir = report.SortDesc
	}
	return report.SortConfig{Key: sortBy, Direction: dir}
}
