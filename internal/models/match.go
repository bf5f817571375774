package models

type Recommendation string

const (
	StrongMatch Recommendation = "strong-match"
	GoodMatch   Recommendation = "good-match"
	WeakMatch   Recommendation = "weak-match"
	NoMatch     Recommendation = "no-match"

	// RecommendationError marks a per-item scoring failure inside a
	// multi-job comparison. It never appears on a single-match result.
	RecommendationError Recommendation = "error"
)

// Subscores breaks the overall score into its weighted components.
type Subscores struct {
	SkillMatch         float64 `json:"skill_match"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
}

// ScoreWeights controls how subscores combine into the overall score.
// Weights are applied as given, never renormalized; a set that does
// not sum to 1.0 is the caller's responsibility.
type ScoreWeights struct {
	SkillMatch         float64 `json:"skill_match"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{SkillMatch: 0.5, SemanticSimilarity: 0.5}
}

// MatchResult is the central output of the scoring engine. Constructed
// fresh per match call and never mutated afterwards, except for the
// caller attaching resume_id/job_id.
type MatchResult struct {
	MatchID   string  `json:"match_id"`
	ResumeID  *string `json:"resume_id"`
	JobID     *string `json:"job_id"`
	Timestamp string  `json:"timestamp"`

	OverallScore float64   `json:"overall_score"`
	Subscores    Subscores `json:"subscores"`

	MatchedSkills []string           `json:"matched_skills"`
	MissingSkills []SkillRequirement `json:"missing_skills"`

	Recommendation Recommendation `json:"recommendation"`
}

// IsAcceptable reports whether the match is good or strong.
func (m *MatchResult) IsAcceptable() bool {
	return m.Recommendation == StrongMatch || m.Recommendation == GoodMatch
}

// SkillGapAnalysis partitions required skills into matched/missing per
// importance tier, plus candidate skills absent from the requirements.
type SkillGapAnalysis struct {
	CriticalMatched   []string `json:"critical_matched"`
	CriticalMissing   []string `json:"critical_missing"`
	PreferredMatched  []string `json:"preferred_matched"`
	PreferredMissing  []string `json:"preferred_missing"`
	NiceToHaveMatched []string `json:"nice_to_have_matched"`
	NiceToHaveMissing []string `json:"nice_to_have_missing"`
	ExtraSkills       []string `json:"extra_skills"`
}
