package handlers

import (
	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

type LearningHandler struct {
	learning services.LearningService
}

func NewLearningHandler(learning services.LearningService) *LearningHandler {
	return &LearningHandler{
		learning: learning,
	}
}

// HandleLearningPath handles POST /learning-path.
func (h *LearningHandler) HandleLearningPath(c *fiber.Ctx) error {
	var req models.LearningPathRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Request body must be JSON",
		})
	}

	if len(req.MissingSkills) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing_skills is required",
		})
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "beginner"
	}

	plan := h.learning.GenerateLearningPlan(req.MissingSkills, req.MaxSkills, difficulty, req.ResumeID, req.JobID)
	return c.JSON(plan)
}
