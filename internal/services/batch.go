package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/models"
)

const (
	// DefaultMaxResumes bounds one batch run.
	DefaultMaxResumes = 10
	// DefaultMaxBatchBytes caps the cumulative size of all files in a
	// batch, checked before any per-item processing begins.
	DefaultMaxBatchBytes = 50 * 1024 * 1024
)

// BatchFile points at one résumé on disk. Filename is the name
// reported in results; it defaults to the base of Path, but upload
// handlers pass the client's original filename since the stored path
// is randomized. A non-nil Err marks a file already rejected upstream,
// recorded as a failed entry without touching the disk.
type BatchFile struct {
	Path     string
	Filename string
	Err      error
}

// BatchFilesFromPaths wraps plain paths for callers like the CLI.
func BatchFilesFromPaths(paths []string) []BatchFile {
	files := make([]BatchFile, 0, len(paths))
	for _, p := range paths {
		files = append(files, BatchFile{Path: p})
	}
	return files
}

// BatchService ranks several résumé files against one job. Per-file
// failures are recorded with a stable error code and never stop the
// batch.
type BatchService interface {
	ProcessResumes(resumeFiles []BatchFile, job models.JobInput) (*models.BatchResult, error)
}

type batchService struct {
	screening     ScreeningService
	maxResumes    int
	maxTotalBytes int64
	logger        *zap.Logger
}

func NewBatchService(screening ScreeningService, maxResumes int, maxTotalBytes int64, logger *zap.Logger) BatchService {
	if maxResumes <= 0 {
		maxResumes = DefaultMaxResumes
	}
	if maxTotalBytes <= 0 {
		maxTotalBytes = DefaultMaxBatchBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &batchService{
		screening:     screening,
		maxResumes:    maxResumes,
		maxTotalBytes: maxTotalBytes,
		logger:        logger,
	}
}

func (b *batchService) ProcessResumes(resumeFiles []BatchFile, job models.JobInput) (*models.BatchResult, error) {
	if len(resumeFiles) < 2 {
		return nil, ErrTooFewResumes
	}
	if len(resumeFiles) > b.maxResumes {
		return nil, fmt.Errorf("%w: maximum %d resumes allowed, got %d",
			ErrTooManyResumes, b.maxResumes, len(resumeFiles))
	}
	if strings.TrimSpace(job.Description) == "" {
		return nil, ErrMissingJobDescription
	}

	// Aggregate size cap is a pre-flight check; files that do not
	// exist are skipped here and fail individually below.
	var totalSize int64
	for _, f := range resumeFiles {
		if info, err := os.Stat(f.Path); err == nil {
			totalSize += info.Size()
		}
	}
	if totalSize > b.maxTotalBytes {
		return nil, fmt.Errorf("%w: %dMB limit",
			ErrAggregateSizeExceeded, b.maxTotalBytes/(1024*1024))
	}

	start := time.Now()

	processedJob := b.screening.ProcessJob(job)

	results := []models.RankedCandidate{}
	failed := []models.FailedResume{}

	for _, f := range resumeFiles {
		filename := f.Filename
		if filename == "" {
			filename = filepath.Base(f.Path)
		}

		err := f.Err
		var candidate *models.RankedCandidate
		if err == nil {
			candidate, err = b.processOne(f.Path, filename, processedJob)
		}
		if err != nil {
			code := classifyBatchError(err)
			b.logger.Warn("resume failed in batch",
				zap.String("filename", filename),
				zap.String("error_code", code),
				zap.Error(err))
			failed = append(failed, models.FailedResume{
				Filename:     filename,
				ErrorCode:    code,
				ErrorMessage: err.Error(),
			})
			continue
		}

		results = append(results, *candidate)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return &models.BatchResult{
		BatchID:               uuid.New().String(),
		JobID:                 processedJob.JobID,
		JobTitle:              processedJob.Title,
		Timestamp:             time.Now().UTC().Format(time.RFC3339),
		TotalResumesUploaded:  len(resumeFiles),
		SuccessfullyProcessed: len(results),
		FailedResumes:         failed,
		ProcessingTimeSeconds: round2(time.Since(start).Seconds()),
		Results:               results,
	}, nil
}

func (b *batchService) processOne(path, filename string, job *models.Job) (*models.RankedCandidate, error) {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return nil, NewExtractionError(CodeInvalidFile,
			"invalid file type: %s", filepath.Ext(path))
	}

	resume, err := b.screening.ProcessResume(path)
	if err != nil {
		return nil, err
	}

	match, err := b.screening.MatchResumeToJob(resume, job)
	if err != nil {
		return nil, err
	}

	return &models.RankedCandidate{
		ResumeID:       resume.ResumeID,
		Filename:       filename,
		CandidateName:  resume.Contact.Name,
		CandidateEmail: resume.Contact.Email,
		OverallScore:   match.OverallScore,
		Subscores:      match.Subscores,
		MatchedSkills:  match.MatchedSkills,
		MissingSkills:  match.MissingSkills,
		Recommendation: match.Recommendation,
	}, nil
}

// classifyBatchError maps a per-file failure onto the four batch error
// codes. Size and page limits are validation failures; unreadable or
// textless documents count as corrupted.
func classifyBatchError(err error) string {
	var extractionErr *ExtractionError
	if errors.As(err, &extractionErr) {
		switch extractionErr.Code {
		case CodeFileNotFound:
			return CodeFileNotFound
		case CodeInvalidFile, CodePDFTooLarge, CodePDFTooManyPages:
			return CodeInvalidFile
		case CodePDFNoText, CodePDFCorrupted:
			return CodePDFCorrupted
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "pdf") {
		return CodePDFCorrupted
	}
	return CodeProcessingError
}

// GetBatchStatistics summarizes a batch run per recommendation band.
func GetBatchStatistics(result *models.BatchResult) *models.BatchStatistics {
	stats := &models.BatchStatistics{
		FailedCount: len(result.FailedResumes),
	}
	if len(result.Results) == 0 {
		return stats
	}

	stats.TotalProcessed = len(result.Results)
	stats.LowestScore = result.Results[0].OverallScore

	var sum float64
	for _, r := range result.Results {
		sum += r.OverallScore
		if r.OverallScore > stats.HighestScore {
			stats.HighestScore = r.OverallScore
		}
		if r.OverallScore < stats.LowestScore {
			stats.LowestScore = r.OverallScore
		}

		switch r.Recommendation {
		case models.StrongMatch:
			stats.StrongMatches++
		case models.GoodMatch:
			stats.GoodMatches++
		case models.WeakMatch:
			stats.WeakMatches++
		case models.NoMatch:
			stats.NoMatches++
		}
	}
	stats.AverageScore = round3(sum / float64(len(result.Results)))

	return stats
}

// TopCandidates returns the first n ranked candidates.
func TopCandidates(result *models.BatchResult, n int) []models.RankedCandidate {
	if n <= 0 || n > len(result.Results) {
		n = len(result.Results)
	}
	return result.Results[:n]
}

// FormatBatchResultsTable renders a batch result as a fixed-width text
// table for terminal display.
func FormatBatchResultsTable(result *models.BatchResult) string {
	if result == nil || len(result.Results) == 0 {
		return "No results to display."
	}

	var b strings.Builder
	rule := strings.Repeat("=", 90)

	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("BATCH PROCESSING RESULTS - %s\n", result.JobTitle))
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("Processed: %d | Failed: %d | Time: %.1fs\n",
		result.SuccessfullyProcessed, len(result.FailedResumes), result.ProcessingTimeSeconds))
	b.WriteString(strings.Repeat("-", 90) + "\n")
	b.WriteString(fmt.Sprintf("%-6s%-25s%-30s%-10s%-15s\n", "Rank", "Candidate", "Email", "Score", "Match"))
	b.WriteString(strings.Repeat("-", 90) + "\n")

	for _, r := range result.Results {
		name := r.CandidateName
		if len(name) > 23 {
			name = name[:23]
		}
		email := r.CandidateEmail
		if email == "" {
			email = "N/A"
		}
		if len(email) > 28 {
			email = email[:28]
		}
		b.WriteString(fmt.Sprintf("%-6d%-25s%-30s%-10s%-15s\n",
			r.Rank, name, email,
			fmt.Sprintf("%.0f%%", r.OverallScore*100),
			titleCase(string(r.Recommendation))))
	}

	b.WriteString(rule)

	if len(result.FailedResumes) > 0 {
		b.WriteString("\n\nFailed to Process:\n")
		for _, f := range result.FailedResumes {
			b.WriteString(fmt.Sprintf("  - %s: %s\n", f.Filename, f.ErrorMessage))
		}
	}

	return b.String()
}

// ExportBatchResultsCSV renders a batch result as CSV.
func ExportBatchResultsCSV(result *models.BatchResult) string {
	var b strings.Builder
	b.WriteString("Rank,Candidate Name,Email,Filename,Overall Score,Skill Match,Semantic Similarity,Recommendation,Matched Skills Count,Missing Skills Count\n")

	for _, r := range result.Results {
		b.WriteString(fmt.Sprintf("%d,%q,%q,%q,%.2f%%,%.2f%%,%.2f%%,%s,%d,%d\n",
			r.Rank,
			r.CandidateName,
			r.CandidateEmail,
			r.Filename,
			r.OverallScore*100,
			r.Subscores.SkillMatch*100,
			r.Subscores.SemanticSimilarity*100,
			r.Recommendation,
			len(r.MatchedSkills),
			len(r.MissingSkills)))
	}

	return strings.TrimSuffix(b.String(), "\n")
}
