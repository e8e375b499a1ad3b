package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vardhaman/internal/models"
	"github.com/example/vardhaman/internal/validation"
)

// TaxonomyHandler manages the flat lookup tables: metals, materials and
// item-for tags.
type TaxonomyHandler struct {
	db *gorm.DB
}

// NewTaxonomyHandler constructs TaxonomyHandler.
func NewTaxonomyHandler(db *gorm.DB) *TaxonomyHandler {
	return &TaxonomyHandler{db: db}
}

// Metals

func (h *TaxonomyHandler) ListMetals(c *fiber.Ctx) error {
	var metals []models.Metal
	return listAll(c, h.db, &metals)
}

func (h *TaxonomyHandler) GetMetal(c *fiber.Ctx) error {
	var metal models.Metal
	return getByID(c, h.db, &metal, "metal")
}

func (h *TaxonomyHandler) CreateMetal(c *fiber.Ctx) error {
	payload, err := validation.ParseMetal(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	metal := models.Metal{MetalName: payload.MetalName}
	if err := h.db.Create(&metal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "metal already exists")
		}
		return err
	}

	return success(c, fiber.StatusCreated, "metal created successfully", metal)
}

func (h *TaxonomyHandler) UpdateMetal(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	payload, err := validation.ParseMetal(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var metal models.Metal
	if err := h.db.First(&metal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "metal not found")
		}
		return err
	}

	metal.MetalName = payload.MetalName
	if err := h.db.Save(&metal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "metal already exists")
		}
		return err
	}

	return success(c, fiber.StatusOK, "metal updated successfully", metal)
}

func (h *TaxonomyHandler) DeleteMetal(c *fiber.Ctx) error {
	return deleteByID(c, h.db, &models.Metal{}, "metal")
}

// Materials

func (h *TaxonomyHandler) ListMaterials(c *fiber.Ctx) error {
	var materials []models.Material
	return listAll(c, h.db, &materials)
}

func (h *TaxonomyHandler) GetMaterial(c *fiber.Ctx) error {
	var material models.Material
	return getByID(c, h.db, &material, "material")
}

func (h *TaxonomyHandler) CreateMaterial(c *fiber.Ctx) error {
	payload, err := validation.ParseMaterial(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	material := models.Material{MaterialName: payload.MaterialName}
	if err := h.db.Create(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "material already exists")
		}
		return err
	}

	return success(c, fiber.StatusCreated, "material created successfully", material)
}

func (h *TaxonomyHandler) UpdateMaterial(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	payload, err := validation.ParseMaterial(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var material models.Material
	if err := h.db.First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "material not found")
		}
		return err
	}

	material.MaterialName = payload.MaterialName
	if err := h.db.Save(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "material already exists")
		}
		return err
	}

	return success(c, fiber.StatusOK, "material updated successfully", material)
}

func (h *TaxonomyHandler) DeleteMaterial(c *fiber.Ctx) error {
	return deleteByID(c, h.db, &models.Material{}, "material")
}

// ItemFors

func (h *TaxonomyHandler) ListItemFors(c *fiber.Ctx) error {
	var itemFors []models.ItemFor
	return listAll(c, h.db, &itemFors)
}

func (h *TaxonomyHandler) GetItemFor(c *fiber.Ctx) error {
	var itemFor models.ItemFor
	return getByID(c, h.db, &itemFor, "item-for")
}

func (h *TaxonomyHandler) CreateItemFor(c *fiber.Ctx) error {
	payload, err := validation.ParseItemFor(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	itemFor := models.ItemFor{ItemForName: payload.ItemForName}
	if err := h.db.Create(&itemFor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "item-for already exists")
		}
		return err
	}

	return success(c, fiber.StatusCreated, "item-for created successfully", itemFor)
}

func (h *TaxonomyHandler) UpdateItemFor(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	payload, err := validation.ParseItemFor(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var itemFor models.ItemFor
	if err := h.db.First(&itemFor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "item-for not found")
		}
		return err
	}

	itemFor.ItemForName = payload.ItemForName
	if err := h.db.Save(&itemFor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "item-for already exists")
		}
		return err
	}

	return success(c, fiber.StatusOK, "item-for updated successfully", itemFor)
}

func (h *TaxonomyHandler) DeleteItemFor(c *fiber.Ctx) error {
	return deleteByID(c, h.db, &models.ItemFor{}, "item-for")
}
