package handlers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	itemForA   = "607f1f77bcf86cd799439001"
	itemForB   = "607f1f77bcf86cd799439002"
	itemForC   = "607f1f77bcf86cd799439003"
	categoryA  = "607f1f77bcf86cd799439010"
	materialA  = "607f1f77bcf86cd799439020"
	metalA     = "607f1f77bcf86cd799439030"
	productOne = "607f1f77bcf86cd799439100"
)

func productBody(itemFors string) string {
	return `{
		"productName": "Eternity Band",
		"making": 10,
		"discount": 0,
		"itemFor": [` + itemFors + `],
		"category": ["` + categoryA + `"],
		"material": "` + materialA + `",
		"metal": "` + metalA + `",
		"media": {"images": ["https://cdn.example.com/a.jpg"], "video": "https://cdn.example.com/a.mp4"},
		"details": [{"size": 6, "weight": 2.2, "height": 1.1, "stock": 5, "description": "plain band"}],
		"description": "a classic band"
	}`
}

func expectCount(mock sqlmock.Sqlmock, table, id string, count int) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "` + table + `"`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestCreateProduct(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db)
	mock.MatchExpectationsInOrder(false)

	expectCount(mock, "item_fors", itemForA, 1)
	expectCount(mock, "categories", categoryA, 1)
	expectCount(mock, "materials", materialA, 1)
	expectCount(mock, "metals", metalA, 1)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "products"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "product_details"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, envelope := doJSON(t, app, "POST", "/api/products/", productBody(`"`+itemForA+`"`))

	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "eternity band", data["productName"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProductReportsMissingItemFors(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db)
	mock.MatchExpectationsInOrder(false)

	// B and C do not resolve; A does
	expectCount(mock, "item_fors", itemForA, 1)
	expectCount(mock, "item_fors", itemForB, 0)
	expectCount(mock, "item_fors", itemForC, 0)

	body := productBody(`"` + itemForA + `", "` + itemForB + `", "` + itemForC + `"`)
	res, envelope := doJSON(t, app, "POST", "/api/products/", body)

	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.Equal(t, "error", envelope["status"])

	// the offending identifiers come back verbatim, preserving input order
	data := envelope["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, itemForB, data[0])
	assert.Equal(t, itemForC, data[1])

	// no write and no later reference kind was consulted
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProductUnknownMetal(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db)
	mock.MatchExpectationsInOrder(false)

	expectCount(mock, "item_fors", itemForA, 1)
	expectCount(mock, "categories", categoryA, 1)
	expectCount(mock, "materials", materialA, 1)
	expectCount(mock, "metals", metalA, 0)

	res, envelope := doJSON(t, app, "POST", "/api/products/", productBody(`"`+itemForA+`"`))

	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.Contains(t, envelope["message"], metalA)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductExpandsReferences(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db)
	mock.MatchExpectationsInOrder(false)

	productColumns := []string{
		"id", "product_name", "making", "discount", "item_for", "category",
		"material_id", "metal_id", "media_images", "media_video",
		"media_preview_images", "description",
	}
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(
			productOne, "eternity band", 10.0, 0.0,
			"{"+itemForA+"}", "{"+categoryA+"}",
			materialA, metalA,
			"{https://cdn.example.com/a.jpg}", "https://cdn.example.com/a.mp4",
			"{}", "a classic band",
		))
	mock.ExpectQuery(`SELECT \* FROM "product_details"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "size", "weight", "height", "stock", "description"}).
			AddRow("607f1f77bcf86cd799439200", productOne, 6.0, 2.2, 1.1, 5, "plain band"))
	mock.ExpectQuery(`SELECT \* FROM "item_fors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_for_name"}).AddRow(itemForA, "women"))
	mock.ExpectQuery(`SELECT \* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_name"}).AddRow(categoryA, "rings"))
	mock.ExpectQuery(`SELECT \* FROM "materials"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "material_name"}).AddRow(materialA, "diamond"))
	mock.ExpectQuery(`SELECT \* FROM "metals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "metal_name"}).AddRow(metalA, "gold"))

	res, envelope := doJSON(t, app, "GET", "/api/products/"+productOne, "")

	require.Equal(t, fiber.StatusOK, res.StatusCode)
	data := envelope["data"].(map[string]any)

	// expanded reference objects carry the identifiers the product stores
	itemFors := data["itemFor"].([]any)
	require.Len(t, itemFors, 1)
	assert.Equal(t, itemForA, itemFors[0].(map[string]any)["_id"])

	categories := data["category"].([]any)
	require.Len(t, categories, 1)
	assert.Equal(t, categoryA, categories[0].(map[string]any)["_id"])

	assert.Equal(t, materialA, data["material"].(map[string]any)["_id"])
	assert.Equal(t, metalA, data["metal"].(map[string]any)["_id"])

	details := data["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "plain band", details[0].(map[string]any)["description"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProduct(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "product_details"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "products"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, envelope := doJSON(t, app, "DELETE", "/api/products/"+productOne, "")

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, "success", envelope["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
