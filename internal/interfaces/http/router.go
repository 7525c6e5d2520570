package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maxjack20001-bot/logistics-system/internal/application/auth"
	"github.com/maxjack20001-bot/logistics-system/internal/application/ledger"
	"github.com/maxjack20001-bot/logistics-system/internal/application/usecase"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	LocationUC *usecase.LocationUseCase
	TripUC     *usecase.TripUseCase
	LedgerUC   *ledger.UseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
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

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.LedgerUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Get("/:id/balance", itemHandler.Balance)
	items.Get("/:id/stock", itemHandler.StockByBin)

	// Inventory: libro de movimientos (protegido; escribir requiere admin o bodeguero)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	invGroup.Post("/inbound/:itemId", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.RegisterInbound)
	invGroup.Post("/outbound/:itemId", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.RegisterOutbound)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	// Warehouses / zones / bins (protegido)
	locationHandler := NewLocationHandler(deps.LocationUC)
	warehouses := protected.Group("/warehouses")
	warehouses.Post("/", locationHandler.CreateWarehouse)
	warehouses.Get("/", locationHandler.ListWarehouses)
	warehouses.Get("/:id", locationHandler.GetWarehouse)
	warehouses.Delete("/:id", RequireRole(entity.RoleAdmin), locationHandler.DeleteWarehouse)
	warehouses.Post("/:id/zones", locationHandler.CreateZone)
	warehouses.Get("/:id/zones", locationHandler.ListZones)
	zones := protected.Group("/zones")
	zones.Post("/:id/bins", locationHandler.CreateBin)
	zones.Get("/:id/bins", locationHandler.ListBins)

	// Trips (protegido; cambiar estado permite también al conductor)
	trips := protected.Group("/trips")
	tripHandler := NewTripHandler(deps.TripUC)
	trips.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), tripHandler.Create)
	trips.Get("/", tripHandler.List)
	trips.Get("/:id", tripHandler.GetByID)
	trips.Put("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleConductor), tripHandler.UpdateStatus)
}
