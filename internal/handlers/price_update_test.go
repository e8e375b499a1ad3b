package handlers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

const (
	testMetalID    = "507f1f77bcf86cd799439011"
	testMaterialID = "507f1f77bcf86cd799439012"
)

func TestCreatePriceUpdate(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "metals"`).
		WithArgs(testMetalID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "materials"`).
		WithArgs(testMaterialID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "price_updates"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, envelope := doJSON(t, app, "POST", "/api/price-updates/",
		`{"metalId": "`+testMetalID+`", "materialId": "`+testMaterialID+`", "price": 1234.567}`)

	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "1234.57", data["price"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePriceUpdateUnknownMaterial(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "metals"`).
		WithArgs(testMetalID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "materials"`).
		WithArgs(testMaterialID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	res, envelope := doJSON(t, app, "POST", "/api/price-updates/",
		`{"metalId": "`+testMetalID+`", "materialId": "`+testMaterialID+`", "price": 10}`)

	// the failing reference is named, and nothing is written
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.Contains(t, envelope["message"], "materialId")
	assert.Contains(t, envelope["message"], testMaterialID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePriceUpdateMalformedBody(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db)

	res, envelope := doJSON(t, app, "POST", "/api/price-updates/",
		`{"metalId": "`+testMetalID+`", "materialId": "`+testMaterialID+`", "price": -5}`)

	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "error", envelope["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
