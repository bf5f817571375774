package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

type MatchHandler struct {
	vectorizer services.Vectorizer
	matcher    services.MatcherService
	explainer  services.ExplainerService
}

func NewMatchHandler(
	vectorizer services.Vectorizer,
	matcher services.MatcherService,
	explainer services.ExplainerService,
) *MatchHandler {
	return &MatchHandler{
		vectorizer: vectorizer,
		matcher:    matcher,
		explainer:  explainer,
	}
}

// HandleMatch handles POST /match. Vectors are derived server-side
// from the submitted texts.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_text is required",
		})
	}

	if strings.TrimSpace(req.JobText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_text is required",
		})
	}

	resumeVector := h.vectorizer.Vectorize(req.ResumeText)
	jobVector := h.vectorizer.Vectorize(req.JobText)

	match, err := h.matcher.CalculateMatchScore(
		resumeVector,
		jobVector,
		req.ResumeSkills,
		req.RequiredSkills,
		req.Weights,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.MatchResponse{
		Match:       match,
		Explanation: h.explainer.GenerateMatchExplanation(match),
		GapAnalysis: h.explainer.GenerateSkillGapAnalysis(req.ResumeSkills, req.RequiredSkills),
	})
}
