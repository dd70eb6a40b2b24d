package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-manager-api/internal/application/auth"
	"github.com/jhoicas/stock-manager-api/internal/application/report"
	"github.com/jhoicas/stock-manager-api/internal/application/stock"
	"github.com/jhoicas/stock-manager-api/internal/application/usecase"
	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	LedgerUC    *stock.LedgerUseCase
	ReportUC    *report.UseCase
	AuthUC      *auth.AuthUseCase
	CSVExporter Exporter
	PDFExporter Exporter
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Stock movements (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.LedgerUC)
	stockGroup.Post("/in", stockHandler.StockIn)
	stockGroup.Post("/out", stockHandler.StockOut)
	stockGroup.Delete("/movements/:id", stockHandler.Reverse)

	// Dashboard y alertas (protegido)
	dashboardHandler := NewDashboardHandler(deps.ReportUC)
	protected.Get("/dashboard", dashboardHandler.Dashboard)
	protected.Get("/alerts", dashboardHandler.Alerts)

	// Reports (protegido, solo admin)
	reports := protected.Group("/reports", RequireRole(entity.RoleAdmin))
	reportHandler := NewReportHandler(deps.ReportUC, deps.CSVExporter, deps.PDFExporter)
	reports.Get("/", reportHandler.Movements)
	reports.Get("/export/csv", reportHandler.ExportCSV)
	reports.Get("/export/pdf", reportHandler.ExportPDF)
}
