package models

// RankedCandidate is one successfully processed résumé in a batch run.
type RankedCandidate struct {
	ResumeID       string `json:"resume_id"`
	Filename       string `json:"filename"`
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email,omitempty"`

	OverallScore float64   `json:"overall_score"`
	Subscores    Subscores `json:"subscores"`

	MatchedSkills []string           `json:"matched_skills"`
	MissingSkills []SkillRequirement `json:"missing_skills"`

	Recommendation Recommendation `json:"recommendation"`
	Rank           int            `json:"rank"`
}

// FailedResume records a per-file failure without stopping the batch.
type FailedResume struct {
	Filename     string `json:"filename"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// BatchResult ranks several résumés against one job, tracking partial
// failures separately from successes.
type BatchResult struct {
	BatchID               string            `json:"batch_id"`
	JobID                 string            `json:"job_id"`
	JobTitle              string            `json:"job_title"`
	Timestamp             string            `json:"timestamp"`
	TotalResumesUploaded  int               `json:"total_resumes_uploaded"`
	SuccessfullyProcessed int               `json:"successfully_processed"`
	FailedResumes         []FailedResume    `json:"failed_resumes"`
	ProcessingTimeSeconds float64           `json:"processing_time_seconds"`
	Results               []RankedCandidate `json:"results"`
}

// BatchStatistics summarizes a batch run per recommendation band.
type BatchStatistics struct {
	TotalProcessed int     `json:"total_processed"`
	AverageScore   float64 `json:"average_score"`
	HighestScore   float64 `json:"highest_score"`
	LowestScore    float64 `json:"lowest_score"`
	StrongMatches  int     `json:"strong_matches"`
	GoodMatches    int     `json:"good_matches"`
	WeakMatches    int     `json:"weak_matches"`
	NoMatches      int     `json:"no_matches"`
	FailedCount    int     `json:"failed_count"`
}
