package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/services"
)

// screeningErrorResponse maps pipeline failures onto HTTP statuses.
// Extraction failures are client errors, everything else is a 500.
func screeningErrorResponse(c *fiber.Ctx, err error) error {
	var extractionErr *services.ExtractionError
	if errors.As(err, &extractionErr) {
		status := fiber.StatusBadRequest
		if extractionErr.Code == services.CodeFileNotFound {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error":      extractionErr.Message,
			"error_code": extractionErr.Code,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
