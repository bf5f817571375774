package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/models"
)

// Importance weights for the skill-match hit rate. Unknown importance
// tiers fall back to the preferred weight.
const (
	weightCritical   = 1.0
	weightPreferred  = 0.6
	weightNiceToHave = 0.3
)

// Recommendation thresholds, inclusive lower bounds. The four bands
// partition [0,1] with no gaps or overlaps.
const (
	thresholdStrongMatch = 0.75
	thresholdGoodMatch   = 0.55
	thresholdWeakMatch   = 0.35
)

// MatcherService calculates match scores between résumés and jobs. All
// operations are deterministic given their inputs, aside from the
// generated match_id and timestamp.
type MatcherService interface {
	CalculateMatchScore(
		resumeVector, jobVector []float64,
		resumeSkills []string,
		requiredSkills []models.SkillRequirement,
		weights *models.ScoreWeights,
	) (*models.MatchResult, error)

	MatchSkills(
		resumeSkills []string,
		requiredSkills []models.SkillRequirement,
	) (score float64, matched []string, missing []models.SkillRequirement)

	BatchCalculateScores(
		resumeVectors [][]float64,
		jobVector []float64,
		resumeSkillLists [][]string,
		requiredSkills []models.SkillRequirement,
	) ([]*models.MatchResult, error)
}

type matcherService struct {
	taxonomy TaxonomyService
	logger   *zap.Logger
}

func NewMatcherService(taxonomy TaxonomyService, logger *zap.Logger) MatcherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &matcherService{
		taxonomy: taxonomy,
		logger:   logger,
	}
}

// CalculateMatchScore implements MatcherService. Vector dimensions are
// validated before any scoring work so malformed input never produces
// a partially filled result. Weights are applied exactly as given;
// a map that does not sum to 1.0 is the caller's responsibility.
func (m *matcherService) CalculateMatchScore(
	resumeVector, jobVector []float64,
	resumeSkills []string,
	requiredSkills []models.SkillRequirement,
	weights *models.ScoreWeights,
) (*models.MatchResult, error) {
	if len(resumeVector) != VectorDimensions || len(jobVector) != VectorDimensions {
		m.logger.Error("invalid vector dimension",
			zap.Int("resume_len", len(resumeVector)),
			zap.Int("job_len", len(jobVector)))
		return nil, fmt.Errorf("%w: got %d and %d",
			ErrInvalidVectorDimension, len(resumeVector), len(jobVector))
	}

	w := models.DefaultScoreWeights()
	if weights != nil {
		w = *weights
	}

	semanticSimilarity := CosineSimilarity(resumeVector, jobVector)
	skillMatch, matched, missing := m.MatchSkills(resumeSkills, requiredSkills)

	overall := skillMatch*w.SkillMatch + semanticSimilarity*w.SemanticSimilarity

	result := &models.MatchResult{
		MatchID:      uuid.New().String(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		OverallScore: round3(overall),
		Subscores: models.Subscores{
			SkillMatch:         round3(skillMatch),
			SemanticSimilarity: round3(semanticSimilarity),
		},
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Recommendation: recommendationFor(round3(overall)),
	}

	return result, nil
}

// MatchSkills implements MatcherService. Comparison is
// case-insensitive on synonym-normalized names; matched and missing
// preserve requirement order. An empty requirement list scores 1.0 by
// convention, reducing the overall score to pure semantic similarity.
func (m *matcherService) MatchSkills(
	resumeSkills []string,
	requiredSkills []models.SkillRequirement,
) (float64, []string, []models.SkillRequirement) {
	matched := []string{}
	missing := []models.SkillRequirement{}

	if len(requiredSkills) == 0 {
		return 1.0, matched, missing
	}

	candidate := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		candidate[m.taxonomy.NormalizeKey(s)] = struct{}{}
	}

	var weightedSum, totalWeight float64

	for _, req := range requiredSkills {
		weight := importanceWeight(req.Importance)
		totalWeight += weight

		if _, ok := candidate[m.taxonomy.NormalizeKey(req.SkillName)]; ok {
			matched = append(matched, req.SkillName)
			weightedSum += weight
		} else {
			missing = append(missing, req)
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = weightedSum / totalWeight
	}

	return score, matched, missing
}

// BatchCalculateScores implements MatcherService. Results come back
// stable-sorted by overall score descending, original order preserved
// among ties.
func (m *matcherService) BatchCalculateScores(
	resumeVectors [][]float64,
	jobVector []float64,
	resumeSkillLists [][]string,
	requiredSkills []models.SkillRequirement,
) ([]*models.MatchResult, error) {
	if len(resumeVectors) != len(resumeSkillLists) {
		return nil, fmt.Errorf("mismatched batch inputs: %d vectors, %d skill lists",
			len(resumeVectors), len(resumeSkillLists))
	}

	results := make([]*models.MatchResult, 0, len(resumeVectors))
	for i := range resumeVectors {
		result, err := m.CalculateMatchScore(
			resumeVectors[i], jobVector, resumeSkillLists[i], requiredSkills, nil)
		if err != nil {
			return nil, fmt.Errorf("scoring resume %d: %w", i, err)
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	return results, nil
}

func importanceWeight(importance models.SkillImportance) float64 {
	switch importance {
	case models.ImportanceCritical:
		return weightCritical
	case models.ImportanceNiceToHave:
		return weightNiceToHave
	default:
		return weightPreferred
	}
}

func recommendationFor(score float64) models.Recommendation {
	switch {
	case score >= thresholdStrongMatch:
		return models.StrongMatch
	case score >= thresholdGoodMatch:
		return models.GoodMatch
	case score >= thresholdWeakMatch:
		return models.WeakMatch
	default:
		return models.NoMatch
	}
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
