package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vardhaman/internal/config"
	"github.com/example/vardhaman/internal/models"
	"github.com/example/vardhaman/internal/utils"
	"github.com/example/vardhaman/internal/validation"
)

// AuthHandler manages administrator accounts and login.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Register creates an administrator account and returns a signed token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	payload, err := validation.ParseCredentials(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return err
	}

	user := models.User{Email: payload.Email, PasswordHash: hash}
	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "user already exists")
		}
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusCreated, "user registered successfully", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login verifies credentials and returns a signed token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	payload, err := validation.ParseCredentials(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user models.User
	if err := h.db.First(&user, "email = ?", payload.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, payload.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, "login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}
