package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/vardhaman/internal/storage"
)

// UploadHandler streams media files to object storage and returns the URL
// to embed in a product payload.
type UploadHandler struct {
	store *storage.Service
	log   *zap.Logger
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(store *storage.Service, log *zap.Logger) *UploadHandler {
	return &UploadHandler{store: store, log: log}
}

// Upload accepts one multipart file under the "file" field.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read file")
	}
	defer file.Close()

	url, err := h.store.Upload(c.Context(), file, fileHeader.Filename, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return err
	}

	h.log.Info("media uploaded",
		zap.String("file", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size))

	return success(c, fiber.StatusCreated, "file uploaded successfully", fiber.Map{"url": url})
}
