package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

const minJobDescriptionLength = 20

type ScreenHandler struct {
	screening      services.ScreeningService
	pdfParser      services.PDFParserService
	storageService services.StorageService
}

func NewScreenHandler(
	screening services.ScreeningService,
	pdfParser services.PDFParserService,
	storageService services.StorageService,
) *ScreenHandler {
	return &ScreenHandler{
		screening:      screening,
		pdfParser:      pdfParser,
		storageService: storageService,
	}
}

// HandleScreen handles POST /screen: one resume PDF against one job
// description, returning the full screening payload.
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if len(strings.TrimSpace(jobDescription)) < minJobDescriptionLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description is too short (minimum 20 characters)",
		})
	}
	jobTitle := c.FormValue("job_title", "Job Position")

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file provided",
		})
	}

	_, filePath, err := h.storageService.SaveUpload(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer h.storageService.DeleteFile(filepath.Base(filePath))

	result, err := h.screening.ScreenResume(filePath, jobDescription, jobTitle)
	if err != nil {
		return screeningErrorResponse(c, err)
	}

	return c.JSON(result)
}

// HandleExtract handles POST /extract: text extraction only.
func (h *ScreenHandler) HandleExtract(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file provided",
		})
	}

	_, filePath, err := h.storageService.SaveUpload(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer h.storageService.DeleteFile(filepath.Base(filePath))

	content, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		return screeningErrorResponse(c, err)
	}

	return c.JSON(models.ExtractionResponse{
		Text:             content.Text,
		NumPages:         content.PageCount,
		FileSizeBytes:    content.FileSizeBytes,
		ExtractionMethod: content.Method,
	})
}
