package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kardex-api/internal/application/auth"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/application/reports"
	"github.com/jhoicas/kardex-api/internal/application/usecase"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	MovementUC  *inventory.MovementUseCase
	KardexUC    *inventory.KardexUseCase
	ReconcileUC *inventory.ReconcileUseCase
	AlertUC     *inventory.AlertUseCase
	ReportUC    *reports.ReportUseCase
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
	adminOnly := RequireRole(entity.RoleAdministrador)

	// Products (protegido; escrituras solo administrador)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.KardexUC, deps.ReconcileUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Get("/:id/kardex", productHandler.Kardex)
	products.Post("/:id/reconcile", adminOnly, productHandler.Reconcile)

	// Categories (protegido; escrituras solo administrador)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Inventory movements (protegido; el permiso por tipo de movimiento se
	// valida en el handler según el rol)
	movements := protected.Group("/inventory-movements")
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	movements.Post("/", inventoryHandler.RegisterMovement)
	movements.Post("/entrada", inventoryHandler.RegisterEntrada)
	movements.Post("/salida", inventoryHandler.RegisterSalida)
	movements.Post("/ajuste", inventoryHandler.RegisterAjuste)
	movements.Get("/", inventoryHandler.List)
	movements.Get("/:id", inventoryHandler.GetByID)

	// Alerts (protegido; resolución manual para administrador y auxiliar)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Get("/active", alertHandler.ListActive)
	alerts.Get("/:id", alertHandler.GetByID)
	alerts.Patch("/:id", RequireRole(entity.RoleAdministrador, entity.RoleAuxiliar), alertHandler.Update)

	// Reports (protegido; solo administrador)
	reportsGroup := protected.Group("/reports", adminOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/purchases", reportHandler.Purchases)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
}
