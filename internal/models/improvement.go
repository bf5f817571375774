package models

type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// Suggestion is one actionable résumé improvement.
type Suggestion struct {
	Category    string             `json:"category"`
	Priority    SuggestionPriority `json:"priority"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ActionItems []string           `json:"action_items"`
	Impact      string             `json:"impact"`
}

// ImprovementReport bundles suggestions, positive points and a quality
// score for one résumé-job pair.
type ImprovementReport struct {
	SuggestionID   string       `json:"suggestion_id"`
	ResumeID       string       `json:"resume_id"`
	JobID          string       `json:"job_id"`
	Timestamp      string       `json:"timestamp"`
	QualityScore   int          `json:"overall_resume_quality_score"`
	Suggestions    []Suggestion `json:"suggestions"`
	PositivePoints []string     `json:"positive_points"`
}
