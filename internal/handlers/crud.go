package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vardhaman/internal/objectid"
)

// paramID validates the :id path segment format before any store access.
func paramID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if !objectid.IsValid(id) {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid ID")
	}
	return id, nil
}

// Generic helpers for the simple lookup tables.

func listAll(c *fiber.Ctx, db *gorm.DB, dest any) error {
	if err := db.Find(dest).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "", dest)
}

func getByID(c *fiber.Ctx, db *gorm.DB, dest any, name string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := db.First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, name+" not found")
		}
		return err
	}

	return success(c, fiber.StatusOK, "", dest)
}

func deleteByID(c *fiber.Ctx, db *gorm.DB, model any, name string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, name+" not found")
	}

	return success(c, fiber.StatusOK, name+" deleted", nil)
}
