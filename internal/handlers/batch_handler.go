package handlers

import (
	"encoding/json"
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

type BatchHandler struct {
	batch          services.BatchService
	storageService services.StorageService
}

func NewBatchHandler(batch services.BatchService, storageService services.StorageService) *BatchHandler {
	return &BatchHandler{
		batch:          batch,
		storageService: storageService,
	}
}

// HandleBatch handles POST /batch: several resume PDFs ranked against
// one job. Uploads that fail validation at save time still enter the
// batch so they are reported as failed entries, not dropped silently.
func (h *BatchHandler) HandleBatch(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	uploads := form.File["resumes"]
	if len(uploads) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume files provided",
		})
	}

	job := models.JobInput{
		Title:       c.FormValue("job_title", "Job Position"),
		Description: c.FormValue("job_description"),
	}
	if skillsJSON := c.FormValue("required_skills"); skillsJSON != "" {
		if err := json.Unmarshal([]byte(skillsJSON), &job.RequiredSkills); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "required_skills must be a JSON array",
			})
		}
	}

	files := make([]services.BatchFile, 0, len(uploads))
	saved := []string{}
	for _, upload := range uploads {
		_, filePath, err := h.storageService.SaveUpload(upload)
		if err != nil {
			files = append(files, services.BatchFile{
				Filename: upload.Filename,
				Err:      err,
			})
			continue
		}
		saved = append(saved, filepath.Base(filePath))
		files = append(files, services.BatchFile{
			Path:     filePath,
			Filename: upload.Filename,
		})
	}
	defer func() {
		for _, name := range saved {
			h.storageService.DeleteFile(name)
		}
	}()

	result, err := h.batch.ProcessResumes(files, job)
	if err != nil {
		return batchErrorResponse(c, err)
	}

	return c.JSON(models.BatchResponse{
		BatchResult: result,
		Statistics:  services.GetBatchStatistics(result),
	})
}

func batchErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrTooFewResumes) ||
		errors.Is(err, services.ErrTooManyResumes) ||
		errors.Is(err, services.ErrMissingJobDescription) ||
		errors.Is(err, services.ErrAggregateSizeExceeded) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
