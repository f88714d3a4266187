package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportUC  *report.UseCase
	ExportUC  *report.ExportUseCase
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Reportes (protegido, requiere Bearer Token)
	reports := api.Group("/reports", AuthMiddleware(deps.JWTSecret))
	reportHandler := NewReportHandler(deps.ReportUC, deps.ExportUC)
	reports.Get("/summary", reportHandler.GetSummary)
	reports.Get("/daily", reportHandler.GetDaily)
	reports.Get("/items", reportHandler.GetItems)
	reports.Get("/items/export", reportHandler.ExportItems)
	reports.Get("/categories", reportHandler.GetCategories)
}
