package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

type ImproveHandler struct {
	screening      services.ScreeningService
	improvement    services.ImprovementService
	storageService services.StorageService
}

func NewImproveHandler(
	screening services.ScreeningService,
	improvement services.ImprovementService,
	storageService services.StorageService,
) *ImproveHandler {
	return &ImproveHandler{
		screening:      screening,
		improvement:    improvement,
		storageService: storageService,
	}
}

// HandleImprove handles POST /improve: a resume PDF plus job fields,
// returning quality suggestions grounded in the match result.
func (h *ImproveHandler) HandleImprove(c *fiber.Ctx) error {
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

	resume, err := h.screening.ProcessResume(filePath)
	if err != nil {
		return screeningErrorResponse(c, err)
	}

	job := h.screening.ProcessJob(models.JobInput{
		Title:       jobTitle,
		Description: jobDescription,
	})

	match, err := h.screening.MatchResumeToJob(resume, job)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(h.improvement.GenerateSuggestions(resume, job, match))
}
