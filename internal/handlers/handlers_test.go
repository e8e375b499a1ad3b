package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a gorm handle backed by sqlmock, mirroring the production
// dialector configuration.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return db, mock
}

// newTestApp registers the catalog routes the way routes.Register does.
func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})

	taxonomyHandler := NewTaxonomyHandler(db)
	categoryHandler := NewCategoryHandler(db)
	priceUpdateHandler := NewPriceUpdateHandler(db)
	productHandler := NewProductHandler(db)

	api := app.Group("/api")

	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.ListCategories)
	categories.Post("/", categoryHandler.CreateCategory)
	categories.Get("/:id", categoryHandler.GetCategory)
	categories.Patch("/:id", categoryHandler.UpdateCategory)
	categories.Delete("/:id", categoryHandler.DeleteCategory)

	metals := api.Group("/metals")
	metals.Get("/", taxonomyHandler.ListMetals)
	metals.Post("/", taxonomyHandler.CreateMetal)
	metals.Get("/:id", taxonomyHandler.GetMetal)
	metals.Patch("/:id", taxonomyHandler.UpdateMetal)
	metals.Delete("/:id", taxonomyHandler.DeleteMetal)

	priceUpdates := api.Group("/price-updates")
	priceUpdates.Get("/", priceUpdateHandler.ListPriceUpdates)
	priceUpdates.Post("/", priceUpdateHandler.CreatePriceUpdate)
	priceUpdates.Get("/:id", priceUpdateHandler.GetPriceUpdate)
	priceUpdates.Patch("/:id", priceUpdateHandler.UpdatePriceUpdate)
	priceUpdates.Delete("/:id", priceUpdateHandler.DeletePriceUpdate)

	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Post("/", productHandler.CreateProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Patch("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	return app
}

// doJSON issues a request against the test app and decodes the envelope.
func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	envelope := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	}
	return res, envelope
}
