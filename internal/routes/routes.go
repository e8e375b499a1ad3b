package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/vardhaman/internal/config"
	"github.com/example/vardhaman/internal/handlers"
	"github.com/example/vardhaman/internal/middleware"
	"github.com/example/vardhaman/internal/storage"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, store *storage.Service, log *zap.Logger) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	taxonomyHandler := handlers.NewTaxonomyHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	priceUpdateHandler := handlers.NewPriceUpdateHandler(db)
	productHandler := handlers.NewProductHandler(db)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Taxonomy routes
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.ListCategories)
	categories.Post("/", categoryHandler.CreateCategory)
	categories.Get("/:id", categoryHandler.GetCategory)
	categories.Patch("/:id", categoryHandler.UpdateCategory)
	categories.Delete("/:id", categoryHandler.DeleteCategory)

	itemFors := api.Group("/item-fors")
	itemFors.Get("/", taxonomyHandler.ListItemFors)
	itemFors.Post("/", taxonomyHandler.CreateItemFor)
	itemFors.Get("/:id", taxonomyHandler.GetItemFor)
	itemFors.Patch("/:id", taxonomyHandler.UpdateItemFor)
	itemFors.Delete("/:id", taxonomyHandler.DeleteItemFor)

	materials := api.Group("/materials")
	materials.Get("/", taxonomyHandler.ListMaterials)
	materials.Post("/", taxonomyHandler.CreateMaterial)
	materials.Get("/:id", taxonomyHandler.GetMaterial)
	materials.Patch("/:id", taxonomyHandler.UpdateMaterial)
	materials.Delete("/:id", taxonomyHandler.DeleteMaterial)

	metals := api.Group("/metals")
	metals.Get("/", taxonomyHandler.ListMetals)
	metals.Post("/", taxonomyHandler.CreateMetal)
	metals.Get("/:id", taxonomyHandler.GetMetal)
	metals.Patch("/:id", taxonomyHandler.UpdateMetal)
	metals.Delete("/:id", taxonomyHandler.DeleteMetal)

	// Price updates
	priceUpdates := api.Group("/price-updates")
	priceUpdates.Get("/", priceUpdateHandler.ListPriceUpdates)
	priceUpdates.Post("/", priceUpdateHandler.CreatePriceUpdate)
	priceUpdates.Get("/:id", priceUpdateHandler.GetPriceUpdate)
	priceUpdates.Patch("/:id", priceUpdateHandler.UpdatePriceUpdate)
	priceUpdates.Delete("/:id", priceUpdateHandler.DeletePriceUpdate)

	// Products
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Post("/", productHandler.CreateProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Patch("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	// Media uploads, only when an object-storage backend is configured
	if store != nil {
		uploadHandler := handlers.NewUploadHandler(store, log)
		api.Post("/uploads", middleware.AuthMiddleware(cfg), uploadHandler.Upload)
	}
}
