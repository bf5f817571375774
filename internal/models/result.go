package models

// MatchRequest is the JSON body of POST /api/v1/match. Vectors are
// derived from the texts server-side; callers only supply skills and
// raw text.
type MatchRequest struct {
	ResumeText     string             `json:"resume_text"`
	JobText        string             `json:"job_text"`
	ResumeSkills   []string           `json:"resume_skills"`
	RequiredSkills []SkillRequirement `json:"required_skills"`
	Weights        *ScoreWeights      `json:"weights,omitempty"`
}

// MatchResponse pairs a match result with its derived reports.
type MatchResponse struct {
	Match       *MatchResult      `json:"match"`
	Explanation string            `json:"explanation"`
	GapAnalysis *SkillGapAnalysis `json:"gap_analysis"`
}

// JobInput is a single job in a compare or batch request.
type JobInput struct {
	JobID          string             `json:"job_id,omitempty"`
	Title          string             `json:"title"`
	Company        string             `json:"company,omitempty"`
	Description    string             `json:"description"`
	RequiredSkills []SkillRequirement `json:"required_skills,omitempty"`
}

// ScreenResponse is the full single-screening payload.
type ScreenResponse struct {
	Resume *Resume      `json:"resume"`
	Job    *Job         `json:"job"`
	Match  *MatchResult `json:"match"`

	Explanation string `json:"explanation"`
}

// SkillsRequest is the JSON body of POST /api/v1/skills.
type SkillsRequest struct {
	Text string `json:"text"`
}

type SkillsResponse struct {
	Skills []CandidateSkill `json:"skills"`
}

// LearningPathRequest is the JSON body of POST /api/v1/learning-path.
type LearningPathRequest struct {
	MissingSkills []SkillRequirement `json:"missing_skills"`
	Difficulty    string             `json:"difficulty,omitempty"`
	MaxSkills     int                `json:"max_skills,omitempty"`
	ResumeID      string             `json:"resume_id,omitempty"`
	JobID         string             `json:"job_id,omitempty"`
}

// BatchResponse attaches summary statistics to a batch result.
type BatchResponse struct {
	*BatchResult
	Statistics *BatchStatistics `json:"statistics"`
}

// ExtractionResponse is the payload of POST /api/v1/extract.
type ExtractionResponse struct {
	Text             string `json:"text"`
	NumPages         int    `json:"num_pages"`
	FileSizeBytes    int64  `json:"file_size_bytes"`
	ExtractionMethod string `json:"extraction_method"`
}
