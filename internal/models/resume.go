package models

import (
	"time"

	"github.com/google/uuid"
)

type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
	CategoryDomain    SkillCategory = "domain"
)

// CandidateSkill is a skill extracted from a résumé.
type CandidateSkill struct {
	SkillName  string        `json:"skill_name"`
	Category   SkillCategory `json:"category"`
	Confidence float64       `json:"confidence"`
}

// ContactInfo holds fields parsed from the résumé text.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Resume is the normalized résumé input for the matching engine. The
// boundary layer (handlers, CLI, batch) converts every external
// representation into this struct before calling the core.
type Resume struct {
	ResumeID  string `json:"resume_id"`
	Timestamp string `json:"timestamp"`

	Contact ContactInfo `json:"candidate"`

	ExtractedText string           `json:"extracted_text"`
	Skills        []CandidateSkill `json:"skills"`

	Vector []float64 `json:"vector_representation,omitempty"`

	ExtractionMethod string `json:"extraction_method,omitempty"`
	NumPages         int    `json:"num_pages,omitempty"`
	FileSizeBytes    int64  `json:"file_size_bytes,omitempty"`
	SourceFile       string `json:"source_file,omitempty"`
}

func NewResume() *Resume {
	return &Resume{
		ResumeID:  uuid.New().String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Contact:   ContactInfo{Name: "Unknown"},
		Skills:    []CandidateSkill{},
	}
}

// SkillNames returns the plain skill names in extraction order.
func (r *Resume) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.SkillName)
	}
	return names
}

// SkillsByCategory filters skills by category.
func (r *Resume) SkillsByCategory(category SkillCategory) []CandidateSkill {
	var out []CandidateSkill
	for _, s := range r.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
