package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vardhaman/internal/models"
	"github.com/example/vardhaman/internal/validation"
)

// PriceUpdateHandler manages metal/material price records.
type PriceUpdateHandler struct {
	db *gorm.DB
}

// NewPriceUpdateHandler constructs PriceUpdateHandler.
func NewPriceUpdateHandler(db *gorm.DB) *PriceUpdateHandler {
	return &PriceUpdateHandler{db: db}
}

func (h *PriceUpdateHandler) ListPriceUpdates(c *fiber.Ctx) error {
	var updates []models.PriceUpdate
	return listAll(c, h.db, &updates)
}

func (h *PriceUpdateHandler) GetPriceUpdate(c *fiber.Ctx) error {
	var update models.PriceUpdate
	return getByID(c, h.db, &update, "price-update")
}

func (h *PriceUpdateHandler) CreatePriceUpdate(c *fiber.Ctx) error {
	payload, err := validation.ParsePriceUpdate(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.checkReferences(payload); err != nil {
		return err
	}

	update := models.PriceUpdate{
		MetalID:    payload.MetalID,
		MaterialID: payload.MaterialID,
		Price:      payload.Price,
	}
	if err := h.db.Create(&update).Error; err != nil {
		return err
	}

	return success(c, fiber.StatusCreated, "price-update created successfully", update)
}

func (h *PriceUpdateHandler) UpdatePriceUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	payload, err := validation.ParsePriceUpdate(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var update models.PriceUpdate
	if err := h.db.First(&update, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "price-update not found")
		}
		return err
	}

	if err := h.checkReferences(payload); err != nil {
		return err
	}

	update.MetalID = payload.MetalID
	update.MaterialID = payload.MaterialID
	update.Price = payload.Price
	if err := h.db.Save(&update).Error; err != nil {
		return err
	}

	return success(c, fiber.StatusOK, "price-update updated successfully", update)
}

func (h *PriceUpdateHandler) DeletePriceUpdate(c *fiber.Ctx) error {
	return deleteByID(c, h.db, &models.PriceUpdate{}, "price-update")
}

// checkReferences confirms both singular references resolve before any
// write is attempted.
func (h *PriceUpdateHandler) checkReferences(payload *validation.PriceUpdatePayload) error {
	ok, err := existsByID(h.db, &models.Metal{}, payload.MetalID)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "invalid metalId: "+payload.MetalID)
	}

	ok, err = existsByID(h.db, &models.Material{}, payload.MaterialID)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "invalid materialId: "+payload.MaterialID)
	}

	return nil
}
