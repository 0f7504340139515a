package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	ProductUC      *usecase.ProductUseCase
	RecordMovement *inventory.RecordMovementUseCase
	StockUC        *usecase.StockUseCase
	ReportUC       *usecase.ReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/password", userHandler.ResetPassword)
	users.Delete("/:id", userHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Deactivate)

	// Inventory: movimientos y consultas de saldo (protegido; ADJUSTMENT
	// exige ADMIN en el handler)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecordMovement)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	stockHandler := NewStockHandler(deps.StockUC)
	invGroup.Get("/stock", stockHandler.Balance)
	invGroup.Get("/stock/product/:id", stockHandler.ByProduct)

	// Reports (protegido, solo lectura)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/movements", reportHandler.Movements)
	reports.Get("/movements/pdf", reportHandler.MovementsPDF)
	reports.Get("/incoming", reportHandler.Incoming)
	reports.Get("/outgoing", reportHandler.Outgoing)
	reports.Get("/transfers", reportHandler.Transfers)
	reports.Get("/adjustments", reportHandler.Adjustments)
	reports.Get("/new-products", reportHandler.NewProducts)
	reports.Get("/reconciliation", reportHandler.Reconciliation)
}
