package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vardhaman/internal/models"
	"github.com/example/vardhaman/internal/validation"
)

// ProductHandler manages product CRUD and runs the reference checks every
// product write requires.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.db.Preload("Details").Find(&products).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "", products)
}

// expandedProduct is the item-level read shape: reference identifiers are
// replaced with the records they point at.
type expandedProduct struct {
	models.Product
	ItemFor  []models.ItemFor  `json:"itemFor"`
	Category []models.Category `json:"category"`
	Material *models.Material  `json:"material"`
	Metal    *models.Metal     `json:"metal"`
}

// GetProduct loads a product with its references expanded. A reference that
// no longer resolves (deleted after the product was written) is simply
// omitted from the expansion.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.db.Preload("Details").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	expanded := expandedProduct{Product: product}

	if err := h.db.Where("id IN ?", []string(product.ItemFor)).Find(&expanded.ItemFor).Error; err != nil {
		return err
	}
	if err := h.db.Where("id IN ?", []string(product.Category)).Find(&expanded.Category).Error; err != nil {
		return err
	}

	var material models.Material
	if err := h.db.First(&material, "id = ?", product.MaterialID).Error; err == nil {
		expanded.Material = &material
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var metal models.Metal
	if err := h.db.First(&metal, "id = ?", product.MetalID).Error; err == nil {
		expanded.Metal = &metal
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return success(c, fiber.StatusOK, "", expanded)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	payload, err := validation.ParseProduct(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.checkReferences(payload); err != nil {
		return err
	}

	product := buildProduct(payload)
	if err := h.db.Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "product already exists")
		}
		return err
	}

	return success(c, fiber.StatusCreated, "product added successfully", product)
}

// UpdateProduct replaces every product field and swaps the owned detail
// rows wholesale, inside one transaction.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	payload, err := validation.ParseProduct(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing models.Product
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	if err := h.checkReferences(payload); err != nil {
		return err
	}

	product := buildProduct(payload)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	for i := range product.Details {
		product.Details[i].ProductID = existing.ID
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", existing.ID).Delete(&models.ProductDetail{}).Error; err != nil {
			return err
		}
		return tx.Save(&product).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "product already exists")
		}
		return err
	}

	return success(c, fiber.StatusOK, "product updated successfully", product)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var deleted int64
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductDetail{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Product{}, "id = ?", id)
		deleted = result.RowsAffected
		return result.Error
	}); err != nil {
		return err
	}

	if deleted == 0 {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return success(c, fiber.StatusOK, "product deleted", nil)
}

// checkReferences runs the full reference validation for a product payload:
// both plural lists first, each fanned out concurrently, then the two
// singular references. Any failure aborts the request before a write.
func (h *ProductHandler) checkReferences(payload *validation.ProductPayload) error {
	missing, err := missingRefs(h.db, &models.ItemFor{}, payload.ItemFor)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &refError{message: "some item-for references were not found", missing: missing}
	}

	missing, err = missingRefs(h.db, &models.Category{}, payload.Category)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &refError{message: "some category references were not found", missing: missing}
	}

	ok, err := existsByID(h.db, &models.Material{}, payload.Material)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "material not found: "+payload.Material)
	}

	ok, err = existsByID(h.db, &models.Metal{}, payload.Metal)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "metal not found: "+payload.Metal)
	}

	return nil
}

func buildProduct(payload *validation.ProductPayload) models.Product {
	product := models.Product{
		ProductName: payload.ProductName,
		Making:      payload.Making,
		Discount:    payload.Discount,
		ItemFor:     payload.ItemFor,
		Category:    payload.Category,
		MaterialID:  payload.Material,
		MetalID:     payload.Metal,
		Media: models.Media{
			Images:        payload.Media.Images,
			Video:         payload.Media.Video,
			PreviewImages: payload.Media.PreviewImages,
		},
		Description: payload.Description,
	}

	for _, d := range payload.Details {
		product.Details = append(product.Details, models.ProductDetail{
			Size:        d.Size,
			Weight:      d.Weight,
			Height:      d.Height,
			Stock:       d.Stock,
			Description: d.Description,
		})
	}

	return product
}
