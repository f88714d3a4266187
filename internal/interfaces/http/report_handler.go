package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// ReportHandler expone las vistas del motor de reportes de venta.
type ReportHandler struct {
	uc     *report.UseCase
	export *report.ExportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.UseCase, export *report.ExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, export: export}
}

// GetSummary godoc
// @Summary      Resumen del período con serie diaria para el gráfico
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// GetDaily godoc
// @Summary      Ventas agregadas por día calendario
// @Tags         reports
// @Produce      json
// @Param        sort_by    query  string  false  "fecha|brutas|netas|beneficio|margen"
// @Param        direction  query  string  false  "asc|desc"
// @Success      200  {object}  dto.DailyReportDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) GetDaily(c *fiber.Ctx) error {
	var req dto.SortRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.GetDailyReport(c.UserContext(), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// GetItems godoc
// @Summary      Ventas agregadas por artículo, con orden y filtro
// @Tags         reports
// @Produce      json
// @Param        search     query  string  false  "subcadena sobre artículo o categoría"
// @Param        sort_by    query  string  false  "item_name|category_name|quantity|brutas|netas|beneficio|margen"
// @Param        direction  query  string  false  "asc|desc"
// @Success      200  {object}  dto.ItemReportDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/items [get]
func (h *ReportHandler) GetItems(c *fiber.Ctx) error {
	var req dto.ItemReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.GetItemReport(c.UserContext(), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// GetCategories godoc
// @Summary      Ranking de categorías por ventas
// @Tags         reports
// @Produce      json
// @Param        search  query  string  false  "subcadena sobre el nombre de categoría"
// @Success      200  {object}  dto.CategoryReportDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/categories [get]
func (h *ReportHandler) GetCategories(c *fiber.Ctx) error {
	var req dto.CategoryReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.GetCategoryReport(c.UserContext(), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// ExportItems godoc
// @Summary      Descarga XLSX de la vista de artículos (mismo orden y filtro)
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search     query  string  false  "subcadena sobre artículo o categoría"
// @Param        sort_by    query  string  false  "item_name|category_name|quantity|brutas|netas|beneficio|margen"
// @Param        direction  query  string  false  "asc|desc"
// @Success      200  {file}  binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/items/export [get]
func (h *ReportHandler) ExportItems(c *fiber.Ctx) error {
	var req dto.ItemReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	book, filename, err := h.export.ItemsXLSX(c.UserContext(), req)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(book)
}

// reportError traduce errores de los casos de uso a HTTP. Una fuente caída es
// 502: el agregado no se pudo calcular, no hay versión parcial que servir.
func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrSourceUnavailable) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SOURCE_UNAVAILABLE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
