package services

import (
	"fmt"

	"go.uber.org/zap"

	"talentsift/resume-screener/internal/models"
)

// ScreeningService orchestrates the extraction, vectorization, skill
// extraction and scoring chain for one résumé-job pair. All inputs are
// normalized structs; boundary layers convert external representations
// before calling in.
type ScreeningService interface {
	ProcessResume(pdfPath string) (*models.Resume, error)
	ProcessJob(input models.JobInput) *models.Job
	MatchResumeToJob(resume *models.Resume, job *models.Job) (*models.MatchResult, error)
	ScreenResume(pdfPath, jobText, jobTitle string) (*models.ScreenResponse, error)
}

type screeningService struct {
	pdfParser  PDFParserService
	vectorizer Vectorizer
	extractor  SkillExtractorService
	matcher    MatcherService
	explainer  ExplainerService
	weights    models.ScoreWeights
	logger     *zap.Logger
}

func NewScreeningService(
	pdfParser PDFParserService,
	vectorizer Vectorizer,
	extractor SkillExtractorService,
	matcher MatcherService,
	explainer ExplainerService,
	weights models.ScoreWeights,
	logger *zap.Logger,
) ScreeningService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &screeningService{
		pdfParser:  pdfParser,
		vectorizer: vectorizer,
		extractor:  extractor,
		matcher:    matcher,
		explainer:  explainer,
		weights:    weights,
		logger:     logger,
	}
}

// ProcessResume runs a résumé PDF through extraction, cleaning,
// contact parsing, skill extraction and vectorization.
func (s *screeningService) ProcessResume(pdfPath string) (*models.Resume, error) {
	s.logger.Info("processing resume", zap.String("path", pdfPath))

	content, err := s.pdfParser.ExtractText(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("extracting resume text: %w", err)
	}

	cleaned := CleanText(content.Text)

	resume := models.NewResume()
	resume.Contact = ParseContactInfo(cleaned)
	resume.ExtractedText = cleaned
	resume.Skills = s.extractor.ExtractSkills(cleaned)
	resume.Vector = s.vectorizer.Vectorize(cleaned)
	resume.ExtractionMethod = content.Method
	resume.NumPages = content.PageCount
	resume.FileSizeBytes = content.FileSizeBytes
	resume.SourceFile = pdfPath

	s.logger.Info("resume processed",
		zap.String("candidate", resume.Contact.Name),
		zap.Int("skills", len(resume.Skills)))
	return resume, nil
}

// ProcessJob normalizes a job input and derives its vector. When no
// required skills are supplied, skills extracted from the description
// become preferred requirements.
func (s *screeningService) ProcessJob(input models.JobInput) *models.Job {
	title := input.Title
	if title == "" {
		title = "Job Position"
	}

	job := models.NewJob(title, input.Description)
	if input.JobID != "" {
		job.JobID = input.JobID
	}
	job.Company = input.Company
	job.Vector = s.vectorizer.Vectorize(input.Description)

	if len(input.RequiredSkills) > 0 {
		job.RequiredSkills = input.RequiredSkills
	} else {
		for _, skill := range s.extractor.ExtractSkills(input.Description) {
			job.AddSkill(skill.SkillName, models.ImportancePreferred)
		}
	}

	s.logger.Info("job processed",
		zap.String("title", job.Title),
		zap.Int("required_skills", len(job.RequiredSkills)))
	return job
}

// MatchResumeToJob scores a processed résumé against a processed job
// and attaches the pair's identifiers to the fresh result.
func (s *screeningService) MatchResumeToJob(resume *models.Resume, job *models.Job) (*models.MatchResult, error) {
	resumeVector := resume.Vector
	if resumeVector == nil {
		resumeVector = s.vectorizer.Vectorize(resume.ExtractedText)
	}
	jobVector := job.Vector
	if jobVector == nil {
		jobVector = s.vectorizer.Vectorize(job.Description)
	}

	weights := s.weights
	result, err := s.matcher.CalculateMatchScore(
		resumeVector, jobVector, resume.SkillNames(), job.RequiredSkills, &weights)
	if err != nil {
		return nil, err
	}

	resumeID := resume.ResumeID
	jobID := job.JobID
	result.ResumeID = &resumeID
	result.JobID = &jobID

	s.logger.Info("match scored",
		zap.Float64("overall_score", result.OverallScore),
		zap.String("recommendation", string(result.Recommendation)))
	return result, nil
}

// ScreenResume is the end-to-end path: process both inputs, score, and
// render the explanation.
func (s *screeningService) ScreenResume(pdfPath, jobText, jobTitle string) (*models.ScreenResponse, error) {
	resume, err := s.ProcessResume(pdfPath)
	if err != nil {
		return nil, err
	}

	job := s.ProcessJob(models.JobInput{Title: jobTitle, Description: jobText})

	match, err := s.MatchResumeToJob(resume, job)
	if err != nil {
		return nil, err
	}

	return &models.ScreenResponse{
		Resume:      resume,
		Job:         job,
		Match:       match,
		Explanation: s.explainer.GenerateMatchExplanation(match),
	}, nil
}
