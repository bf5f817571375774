package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/models"
)

// DefaultMaxJobs bounds one multi-job comparison.
const DefaultMaxJobs = 5

// ComparisonService ranks one résumé against several jobs. One job's
// scoring failure never aborts the whole comparison; the failed job is
// recorded with a zero score and recommendation "error".
type ComparisonService interface {
	CompareResumeToJobs(resume *models.Resume, jobs []models.JobInput, maxJobs int) (*models.ComparisonResult, error)
	BestMatchDetails(result *models.ComparisonResult) *models.BestMatchDetails
}

type comparisonService struct {
	screening ScreeningService
	logger    *zap.Logger
}

func NewComparisonService(screening ScreeningService, logger *zap.Logger) ComparisonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &comparisonService{screening: screening, logger: logger}
}

func (c *comparisonService) CompareResumeToJobs(
	resume *models.Resume,
	jobs []models.JobInput,
	maxJobs int,
) (*models.ComparisonResult, error) {
	if maxJobs <= 0 {
		maxJobs = DefaultMaxJobs
	}

	// Input contract first, before any scoring work.
	if len(jobs) < 2 {
		return nil, ErrTooFewJobs
	}
	if len(jobs) > maxJobs {
		return nil, fmt.Errorf("%w: maximum %d jobs allowed, got %d",
			ErrTooManyJobs, maxJobs, len(jobs))
	}
	for i, job := range jobs {
		if strings.TrimSpace(job.Title) == "" {
			return nil, &MissingJobFieldError{Index: i, Field: "title"}
		}
		if strings.TrimSpace(job.Description) == "" {
			return nil, &MissingJobFieldError{Index: i, Field: "description"}
		}
	}

	results := make([]models.RankedJobMatch, 0, len(jobs))

	for i, input := range jobs {
		job := c.screening.ProcessJob(input)

		match, err := c.screening.MatchResumeToJob(resume, job)
		if err != nil {
			c.logger.Warn("job scoring failed, recording error entry",
				zap.Int("index", i), zap.String("title", input.Title), zap.Error(err))
			results = append(results, models.RankedJobMatch{
				JobID:          job.JobID,
				JobTitle:       job.Title,
				JobCompany:     job.Company,
				MatchedSkills:  []string{},
				MissingSkills:  []models.SkillRequirement{},
				Recommendation: models.RecommendationError,
				Error:          err.Error(),
			})
			continue
		}

		results = append(results, models.RankedJobMatch{
			JobID:          job.JobID,
			JobTitle:       job.Title,
			JobCompany:     job.Company,
			OverallScore:   match.OverallScore,
			Subscores:      match.Subscores,
			MatchedSkills:  match.MatchedSkills,
			MissingSkills:  match.MissingSkills,
			Recommendation: match.Recommendation,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	var best *models.BestMatchSummary
	if len(results) > 0 {
		best = &models.BestMatchSummary{
			Rank:         1,
			JobTitle:     results[0].JobTitle,
			OverallScore: results[0].OverallScore,
		}
	}

	return &models.ComparisonResult{
		ComparisonID:    uuid.New().String(),
		ResumeID:        resume.ResumeID,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		NumJobsCompared: len(results),
		BestMatch:       best,
		Results:         results,
	}, nil
}

// BestMatchDetails expands the rank-1 entry, including its score
// advantage over the runner-up.
func (c *comparisonService) BestMatchDetails(result *models.ComparisonResult) *models.BestMatchDetails {
	if result == nil || len(result.Results) == 0 {
		return nil
	}

	best := result.Results[0]
	details := &models.BestMatchDetails{
		JobTitle:           best.JobTitle,
		JobCompany:         best.JobCompany,
		OverallScore:       best.OverallScore,
		SkillMatchScore:    best.Subscores.SkillMatch,
		SemanticSimilarity: best.Subscores.SemanticSimilarity,
		MatchedSkills:      best.MatchedSkills,
		MissingSkills:      best.MissingSkills,
		Recommendation:     best.Recommendation,
	}
	if len(result.Results) > 1 {
		details.AdvantageOverSecond = round3(best.OverallScore - result.Results[1].OverallScore)
	}
	return details
}

// FormatComparisonTable renders a comparison as a fixed-width text
// table for terminal display.
func FormatComparisonTable(result *models.ComparisonResult) string {
	if result == nil || len(result.Results) == 0 {
		return "No comparison results available."
	}

	var b strings.Builder
	rule := strings.Repeat("=", 80)

	b.WriteString(rule + "\n")
	b.WriteString("MULTI-JOB COMPARISON RESULTS\n")
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("%-6s%-30s%-10s%-15s%-10s\n", "Rank", "Job Title", "Score", "Match", "Skills"))
	b.WriteString(strings.Repeat("-", 80) + "\n")

	for _, r := range result.Results {
		title := r.JobTitle
		if len(title) > 28 {
			title = title[:28]
		}
		b.WriteString(fmt.Sprintf("%-6d%-30s%-10s%-15s%-10d\n",
			r.Rank,
			title,
			fmt.Sprintf("%.0f%%", r.OverallScore*100),
			titleCase(string(r.Recommendation)),
			len(r.MatchedSkills)))
	}

	b.WriteString(rule)
	return b.String()
}
