package models

// RankedJobMatch is one job's entry in a multi-job comparison. A failed
// job still produces an entry with a zero score, recommendation "error"
// and the captured message.
type RankedJobMatch struct {
	JobID      string `json:"job_id"`
	JobTitle   string `json:"job_title"`
	JobCompany string `json:"job_company,omitempty"`

	OverallScore float64   `json:"overall_score"`
	Subscores    Subscores `json:"subscores"`

	MatchedSkills []string           `json:"matched_skills"`
	MissingSkills []SkillRequirement `json:"missing_skills"`

	Recommendation Recommendation `json:"recommendation"`
	Rank           int            `json:"rank"`
	Error          string         `json:"error,omitempty"`
}

// BestMatchSummary summarizes the rank-1 entry of a comparison.
type BestMatchSummary struct {
	Rank         int     `json:"rank"`
	JobTitle     string  `json:"job_title"`
	OverallScore float64 `json:"overall_score"`
}

// ComparisonResult ranks one résumé against several jobs.
type ComparisonResult struct {
	ComparisonID    string            `json:"comparison_id"`
	ResumeID        string            `json:"resume_id"`
	Timestamp       string            `json:"timestamp"`
	NumJobsCompared int               `json:"num_jobs_compared"`
	BestMatch       *BestMatchSummary `json:"best_match"`
	Results         []RankedJobMatch  `json:"results"`
}

// BestMatchDetails is the expanded breakdown of the winning job.
type BestMatchDetails struct {
	JobTitle            string             `json:"job_title"`
	JobCompany          string             `json:"job_company,omitempty"`
	OverallScore        float64            `json:"overall_score"`
	SkillMatchScore     float64            `json:"skill_match_score"`
	SemanticSimilarity  float64            `json:"semantic_similarity"`
	MatchedSkills       []string           `json:"matched_skills"`
	MissingSkills       []SkillRequirement `json:"missing_skills"`
	Recommendation      Recommendation     `json:"recommendation"`
	AdvantageOverSecond float64            `json:"advantage_over_second"`
}
