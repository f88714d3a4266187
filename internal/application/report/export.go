package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/ports"
)

// ExportUseCase genera la descarga XLSX de la vista de artículos.
// Reutiliza GetItemReport, así la exportación refleja exactamente el mismo
// orden y filtro que la tabla en pantalla.
type ExportUseCase struct {
	reports  *UseCase
	exporter ports.ItemReportExporter
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(reports *UseCase, exporter ports.ItemReportExporter) *ExportUseCase {
	return &ExportUseCase{reports: reports, exporter: exporter}
}

// ItemsXLSX devuelve el libro XLSX y el nombre de archivo sugerido.
func (uc *ExportUseCase) ItemsXLSX(ctx context.Context, req dto.ItemReportRequest) ([]byte, string, error) {
	rep, err := uc.reports.GetItemReport(ctx, req)
	if err != nil {
		return nil, "", err
	}
	book, err := uc.exporter.ItemsToXLSX(rep.Items)
	if err != nil {
		return nil, "", fmt.Errorf("generar XLSX: %w", err)
	}
	filename := fmt.Sprintf("ventas_por_articulo_%s.xlsx", time.Now().Format("2006-01-02"))
	return book, filename, nil
}
