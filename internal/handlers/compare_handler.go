package handlers

import (
	"encoding/json"
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

type CompareHandler struct {
	screening      services.ScreeningService
	comparison     services.ComparisonService
	storageService services.StorageService
	maxJobs        int
}

func NewCompareHandler(
	screening services.ScreeningService,
	comparison services.ComparisonService,
	storageService services.StorageService,
	maxJobs int,
) *CompareHandler {
	return &CompareHandler{
		screening:      screening,
		comparison:     comparison,
		storageService: storageService,
		maxJobs:        maxJobs,
	}
}

// HandleCompare handles POST /compare: one resume PDF ranked against
// several jobs submitted as a JSON array in the "jobs" form field.
func (h *CompareHandler) HandleCompare(c *fiber.Ctx) error {
	jobsJSON := c.FormValue("jobs")
	if jobsJSON == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobs field is required (JSON array of job descriptions)",
		})
	}

	var jobs []models.JobInput
	if err := json.Unmarshal([]byte(jobsJSON), &jobs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobs field must be a JSON array",
		})
	}

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

	resume, err := h.screening.ProcessResume(filePath)
	if err != nil {
		return screeningErrorResponse(c, err)
	}

	result, err := h.comparison.CompareResumeToJobs(resume, jobs, h.maxJobs)
	if err != nil {
		return comparisonErrorResponse(c, err)
	}

	return c.JSON(result)
}

func comparisonErrorResponse(c *fiber.Ctx, err error) error {
	var missingField *services.MissingJobFieldError
	if errors.Is(err, services.ErrTooFewJobs) ||
		errors.Is(err, services.ErrTooManyJobs) ||
		errors.As(err, &missingField) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
