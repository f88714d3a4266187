package ports

import "github.com/jhoicas/Ventas-api/internal/application/dto"

// ItemReportExporter genera la representación descargable del reporte de
// artículos (el botón "Exportar Excel" de la vista).
type ItemReportExporter interface {
	// ItemsToXLSX devuelve el libro XLSX con una fila por artículo.
	ItemsToXLSX(items []dto.ItemSummaryDTO) ([]byte, error)
}
