package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vardhaman/internal/models"
	"github.com/example/vardhaman/internal/validation"
)

// CategoryHandler manages the category tree. Only direct self-reference is
// rejected; deeper cycles and orphaned children match the historical
// behavior and are left alone.
type CategoryHandler struct {
	db *gorm.DB
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	return listAll(c, h.db, &categories)
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	var category models.Category
	return getByID(c, h.db, &category, "category")
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	payload, err := validation.ParseCategory(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if payload.ParentCategoryID != nil {
		ok, err := existsByID(h.db, &models.Category{}, *payload.ParentCategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "invalid parent category")
		}
	}

	category := models.Category{
		CategoryName:     payload.CategoryName,
		ParentCategoryID: payload.ParentCategoryID,
	}
	if err := h.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "category already exists")
		}
		return err
	}

	return success(c, fiber.StatusCreated, "category created successfully", category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	payload, err := validation.ParseCategory(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Direct self-reference gets its own error, distinct from an unknown
	// parent.
	if payload.ParentCategoryID != nil && *payload.ParentCategoryID == id {
		return fiber.NewError(fiber.StatusBadRequest, "parentCategoryId should not be the same as the category ID")
	}

	var category models.Category
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	if payload.ParentCategoryID != nil {
		ok, err := existsByID(h.db, &models.Category{}, *payload.ParentCategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "invalid parent category")
		}
	}

	category.CategoryName = payload.CategoryName
	category.ParentCategoryID = payload.ParentCategoryID
	if err := h.db.Save(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "category already exists")
		}
		return err
	}

	return success(c, fiber.StatusOK, "category updated successfully", category)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	return deleteByID(c, h.db, &models.Category{}, "category")
}
