package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// success writes the uniform success envelope.
func success(c *fiber.Ctx, code int, message string, data any) error {
	body := fiber.Map{"status": "success"}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

// refError reports a plural reference list whose entries did not all
// resolve. The offending identifiers ride along so the envelope can return
// them verbatim.
type refError struct {
	message string
	missing []string
}

func (e *refError) Error() string { return e.message }

// ErrorHandler converts every handler failure into the uniform error
// envelope. Expected outcomes arrive as *fiber.Error or translated gorm
// sentinels; anything else is logged and reported as a generic 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var refErr *refError
		if errors.As(err, &refErr) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "error",
				"message": refErr.message,
				"data":    refErr.missing,
			})
		}

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, gorm.ErrDuplicatedKey):
			code = fiber.StatusConflict
			message = "resource already exists"
		case errors.Is(err, gorm.ErrRecordNotFound):
			code = fiber.StatusNotFound
			message = "resource not found"
		default:
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		return c.Status(code).JSON(fiber.Map{"status": "error", "message": message})
	}
}
