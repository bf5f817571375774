package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/services"
)

type HealthHandler struct {
	taxonomy   services.TaxonomyService
	vectorizer services.Vectorizer
}

func NewHealthHandler(taxonomy services.TaxonomyService, vectorizer services.Vectorizer) *HealthHandler {
	return &HealthHandler{
		taxonomy:   taxonomy,
		vectorizer: vectorizer,
	}
}

func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	taxonomyStatus := "loaded"
	if len(h.taxonomy.Skills()) == 0 {
		taxonomyStatus = "missing"
	}
	synonymsStatus := "loaded"
	if len(h.taxonomy.Synonyms()) == 0 {
		synonymsStatus = "missing"
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
		"dependencies": fiber.Map{
			"skills_taxonomy":   taxonomyStatus,
			"skill_synonyms":    synonymsStatus,
			"vector_dimensions": h.vectorizer.Dimensions(),
		},
	})
}
