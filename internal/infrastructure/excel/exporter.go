// Package excel genera los libros XLSX descargables de los reportes.
package excel

import (
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/ports"
	"github.com/xuri/excelize/v2"
)

var _ ports.ItemReportExporter = (*Exporter)(nil)

const sheetName = "Ventas por Artículo"

var itemHeaders = []string{
	"Artículo", "Categoría", "Cantidad",
	"Ventas brutas", "Descuentos", "Ventas netas",
	"Costo de bienes", "Beneficio bruto", "Margen",
}

// Exporter implementación del puerto de exportación sobre excelize.
type Exporter struct{}

// NewExporter construye el exportador XLSX.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ItemsToXLSX escribe una hoja con una fila por artículo, en el mismo orden
// en que llegan (la vista ya los entrega ordenados y filtrados).
func (e *Exporter) ItemsToXLSX(items []dto.ItemSummaryDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("borrar hoja por defecto: %w", err)
	}

	for col, h := range itemHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("escribir cabecera %q: %w", h, err)
		}
	}

	for i, it := range items {
		row := []interface{}{
			it.ItemName,
			it.CategoryName,
			it.Quantity,
			it.GrossSales.InexactFloat64(),
			it.Discounts.InexactFloat64(),
			it.NetSales.InexactFloat64(),
			it.Cost.InexactFloat64(),
			it.GrossProfit.InexactFloat64(),
			it.MarginPct,
		}
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
