package dto

import "github.com/shopspring/decimal"

// Los nombres JSON en español coinciden con los que consume el frontal de
// reportes (brutas, netas, beneficio, margen...).

// ── Vista "Ventas por Artículo" ───────────────────────────────────────────────

// ItemReportRequest parámetros de GET /api/reports/items.
type ItemReportRequest struct {
	Search    string `query:"search"`    // subcadena sobre artículo o categoría
	SortBy    string `query:"sort_by"`   // item_name|category_name|quantity|brutas|descuentos|netas|costo|beneficio|margen
	Direction string `query:"direction"` // asc|desc
}

// ItemSummaryDTO fila agregada de un artículo.
type ItemSummaryDTO struct {
	ItemName     string          `json:"item_name"`
	CategoryName string          `json:"category_name"`
	Quantity     int64           `json:"quantity"`
	GrossSales   decimal.Decimal `json:"brutas"`
	Discounts    decimal.Decimal `json:"descuentos"` // cero a esta granularidad
	NetSales     decimal.Decimal `json:"netas"`
	Cost         decimal.Decimal `json:"costo"`
	GrossProfit  decimal.Decimal `json:"beneficio"`
	MarginPct    string          `json:"margen"` // "NN.NN%"
}

// ItemReportDTO respuesta de GET /api/reports/items.
type ItemReportDTO struct {
	Items   []ItemSummaryDTO `json:"items"`
	TopItem string           `json:"top_item,omitempty"` // mayor venta neta del agregado completo
	Total   int              `json:"total"`              // filas tras el filtro
}

// ── Vista "Ventas por Categoría" ──────────────────────────────────────────────

// CategoryReportRequest parámetros de GET /api/reports/categories.
type CategoryReportRequest struct {
	Search string `query:"search"`
}

// CategorySummaryDTO fila agregada de una categoría, con el color de
// presentación asignado por posición en el ranking.
type CategorySummaryDTO struct {
	Name       string          `json:"name"`
	TotalSales decimal.Decimal `json:"ventas"`
	ItemCount  int             `json:"articulos"` // líneas de venta contadas
	Color      string          `json:"color"`
}

// CategoryReportDTO respuesta de GET /api/reports/categories.
type CategoryReportDTO struct {
	Categories  []CategorySummaryDTO `json:"categories"` // ordenadas por ventas descendente
	TopCategory string               `json:"top_category,omitempty"`
}

// ── Vista diaria y resumen del período ────────────────────────────────────────

// DailySummaryDTO fila agregada de un día calendario.
type DailySummaryDTO struct {
	Date        string          `json:"fecha"` // "02 ene"
	GrossSales  decimal.Decimal `json:"brutas"`
	Refunds     decimal.Decimal `json:"reembolsos"` // siempre cero
	Discounts   decimal.Decimal `json:"descuentos"`
	NetSales    decimal.Decimal `json:"netas"`
	Cost        decimal.Decimal `json:"costo"`
	GrossProfit decimal.Decimal `json:"beneficio"`
	MarginPct   string          `json:"margen"` // "NN.NN%"
	Tax         decimal.Decimal `json:"impuestos"`
}

// DailyReportDTO respuesta de GET /api/reports/daily.
type DailyReportDTO struct {
	Days []DailySummaryDTO `json:"days"`
}

// ChartPointDTO punto de la serie diaria del gráfico del resumen.
type ChartPointDTO struct {
	Name     string          `json:"name"` // "02 ene"
	NetSales decimal.Decimal `json:"ventas"`
}

// SummaryDTO respuesta de GET /api/reports/summary: totales del período
// sumados sobre cabeceras de venta, más la serie diaria para el gráfico.
//
// Las tendencias período-sobre-período no están implementadas: no existe una
// semántica de período de comparación definida, así que se reportan en cero
// en lugar de inventar constantes.
type SummaryDTO struct {
	GrossSales  decimal.Decimal `json:"brutas"`
	Refunds     decimal.Decimal `json:"reembolsos"`
	Discounts   decimal.Decimal `json:"descuentos"`
	NetSales    decimal.Decimal `json:"netas"`
	GrossProfit decimal.Decimal `json:"beneficio"`
	Tax         decimal.Decimal `json:"impuestos"`

	TrendGrossSales  decimal.Decimal `json:"tendencia_brutas"`
	TrendRefunds     decimal.Decimal `json:"tendencia_reembolsos"`
	TrendDiscounts   decimal.Decimal `json:"tendencia_descuentos"`
	TrendNetSales    decimal.Decimal `json:"tendencia_netas"`
	TrendGrossProfit decimal.Decimal `json:"tendencia_beneficio"`

	Chart []ChartPointDTO `json:"chart"` // serie diaria en orden cronológico
}
