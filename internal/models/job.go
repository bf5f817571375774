package models

import "github.com/google/uuid"

type SkillImportance string

const (
	ImportanceCritical   SkillImportance = "critical"
	ImportancePreferred  SkillImportance = "preferred"
	ImportanceNiceToHave SkillImportance = "nice-to-have"
)

// SkillRequirement is one required skill of a job, with its importance
// tier. Immutable once the Job is built.
type SkillRequirement struct {
	SkillName  string          `json:"skill_name"`
	Importance SkillImportance `json:"importance"`
}

// Job is the normalized job-description input for the matching engine.
type Job struct {
	JobID          string             `json:"job_id"`
	Title          string             `json:"title"`
	Company        string             `json:"company,omitempty"`
	Description    string             `json:"description"`
	RequiredSkills []SkillRequirement `json:"required_skills"`
	Vector         []float64          `json:"vector_representation,omitempty"`
}

func NewJob(title, description string) *Job {
	return &Job{
		JobID:          uuid.New().String(),
		Title:          title,
		Description:    description,
		RequiredSkills: []SkillRequirement{},
	}
}

// SkillNames returns all required skill names in requirement order.
func (j *Job) SkillNames() []string {
	names := make([]string, 0, len(j.RequiredSkills))
	for _, s := range j.RequiredSkills {
		names = append(names, s.SkillName)
	}
	return names
}

// CriticalSkills returns the names of critical requirements.
func (j *Job) CriticalSkills() []string {
	var names []string
	for _, s := range j.RequiredSkills {
		if s.Importance == ImportanceCritical {
			names = append(names, s.SkillName)
		}
	}
	return names
}

func (j *Job) AddSkill(name string, importance SkillImportance) {
	j.RequiredSkills = append(j.RequiredSkills, SkillRequirement{
		SkillName:  name,
		Importance: importance,
	})
}
