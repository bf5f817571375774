package models

// Course is one learning resource for a skill.
type Course struct {
	Title          string  `json:"title"`
	Provider       string  `json:"provider"`
	URL            string  `json:"url"`
	Difficulty     string  `json:"difficulty"`
	Duration       string  `json:"duration"`
	Cost           string  `json:"cost"`
	Certificate    bool    `json:"certificate"`
	Rating         float64 `json:"rating"`
	IsFallback     bool    `json:"is_fallback,omitempty"`
	WhyRecommended string  `json:"why_recommended,omitempty"`
}

// SkillLearningPlan groups recommended courses for one missing skill.
type SkillLearningPlan struct {
	SkillName          string          `json:"skill_name"`
	Importance         SkillImportance `json:"importance"`
	CurrentProficiency string          `json:"current_proficiency"`
	RecommendedCourses []Course        `json:"recommended_courses"`
}

// Milestone is one month of a learning path.
type Milestone struct {
	Month           int      `json:"month"`
	Focus           string   `json:"focus"`
	Courses         []string `json:"courses"`
	ExpectedOutcome string   `json:"expected_outcome"`
}

// LearningPlan is a learning path covering the top missing skills.
type LearningPlan struct {
	LearningPlanID     string              `json:"learning_plan_id"`
	ResumeID           string              `json:"resume_id,omitempty"`
	JobID              string              `json:"job_id,omitempty"`
	Timestamp          string              `json:"timestamp"`
	TotalSkillsToLearn int                 `json:"total_skills_to_learn"`
	EstimatedTotalTime string              `json:"estimated_total_time"`
	Skills             []SkillLearningPlan `json:"skills"`
	Milestones         []Milestone         `json:"learning_path_milestones"`
}
