package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

const minSkillsTextLength = 20

type SkillsHandler struct {
	extractor services.SkillExtractorService
}

func NewSkillsHandler(extractor services.SkillExtractorService) *SkillsHandler {
	return &SkillsHandler{
		extractor: extractor,
	}
}

// HandleExtractSkills handles POST /skills.
func (h *SkillsHandler) HandleExtractSkills(c *fiber.Ctx) error {
	var req models.SkillsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Request body must be JSON",
		})
	}

	if len(strings.TrimSpace(req.Text)) < minSkillsTextLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Text is too short (minimum 20 characters)",
		})
	}

	return c.JSON(models.SkillsResponse{
		Skills: h.extractor.ExtractSkills(req.Text),
	})
}
