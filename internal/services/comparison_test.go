package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"talentsift/resume-screener/internal/models"
)

// stubScreening scripts the screening pipeline for comparison and
// batch tests. Scores are looked up by résumé source path first, then
// by job title.
type stubScreening struct {
	jobScores    map[string]float64
	jobErrs      map[string]error
	resumeScores map[string]float64
	resumeErrs   map[string]error
}

func (s *stubScreening) ProcessResume(pdfPath string) (*models.Resume, error) {
	if err := s.resumeErrs[pdfPath]; err != nil {
		return nil, err
	}
	resume := models.NewResume()
	resume.ExtractedText = pdfPath
	return resume, nil
}

func (s *stubScreening) ProcessJob(input models.JobInput) *models.Job {
	job := models.NewJob(input.Title, input.Description)
	job.Company = input.Company
	job.RequiredSkills = append(job.RequiredSkills, input.RequiredSkills...)
	return job
}

func (s *stubScreening) MatchResumeToJob(resume *models.Resume, job *models.Job) (*models.MatchResult, error) {
	if err := s.jobErrs[job.Title]; err != nil {
		return nil, err
	}
	score, ok := s.resumeScores[resume.ExtractedText]
	if !ok {
		score = s.jobScores[job.Title]
	}
	return &models.MatchResult{
		MatchID:      "match-" + job.Title,
		OverallScore: score,
		Subscores: models.Subscores{
			SkillMatch:         score,
			SemanticSimilarity: score,
		},
		MatchedSkills:  []string{},
		MissingSkills:  []models.SkillRequirement{},
		Recommendation: recommendationFor(score),
	}, nil
}

func (s *stubScreening) ScreenResume(pdfPath, jobText, jobTitle string) (*models.ScreenResponse, error) {
	resume, err := s.ProcessResume(pdfPath)
	if err != nil {
		return nil, err
	}
	job := s.ProcessJob(models.JobInput{Title: jobTitle, Description: jobText})
	match, err := s.MatchResumeToJob(resume, job)
	if err != nil {
		return nil, err
	}
	return &models.ScreenResponse{Resume: resume, Job: job, Match: match}, nil
}

func jobInputs(titles ...string) []models.JobInput {
	inputs := make([]models.JobInput, 0, len(titles))
	for _, t := range titles {
		inputs = append(inputs, models.JobInput{Title: t, Description: "Build and run " + t + " systems"})
	}
	return inputs
}

func TestCompareRejectsTooFewJobs(t *testing.T) {
	svc := NewComparisonService(&stubScreening{}, nil)

	_, err := svc.CompareResumeToJobs(models.NewResume(), jobInputs("Backend Engineer"), 5)
	if !errors.Is(err, ErrTooFewJobs) {
		t.Fatalf("expected ErrTooFewJobs, got %v", err)
	}
}

func TestCompareRejectsTooManyJobs(t *testing.T) {
	svc := NewComparisonService(&stubScreening{}, nil)

	_, err := svc.CompareResumeToJobs(models.NewResume(), jobInputs("A", "B", "C", "D"), 3)
	if !errors.Is(err, ErrTooManyJobs) {
		t.Fatalf("expected ErrTooManyJobs, got %v", err)
	}
	if !strings.Contains(err.Error(), "maximum 3 jobs") {
		t.Errorf("error should name the limit: %v", err)
	}
}

func TestCompareRejectsMissingJobFields(t *testing.T) {
	svc := NewComparisonService(&stubScreening{}, nil)

	jobs := jobInputs("Backend Engineer", "Data Engineer")
	jobs[1].Title = "   "
	_, err := svc.CompareResumeToJobs(models.NewResume(), jobs, 5)

	var fieldErr *MissingJobFieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected MissingJobFieldError, got %v", err)
	}
	if fieldErr.Index != 1 || fieldErr.Field != "title" {
		t.Errorf("wrong error detail: index=%d field=%q", fieldErr.Index, fieldErr.Field)
	}
	if fieldErr.Error() != `job 2 missing "title" field` {
		t.Errorf("error message uses 1-based job numbering, got %q", fieldErr.Error())
	}

	jobs = jobInputs("Backend Engineer", "Data Engineer")
	jobs[0].Description = ""
	_, err = svc.CompareResumeToJobs(models.NewResume(), jobs, 5)
	if !errors.As(err, &fieldErr) || fieldErr.Field != "description" {
		t.Errorf("expected description field error, got %v", err)
	}
}

func TestCompareRanksJobsByScore(t *testing.T) {
	stub := &stubScreening{jobScores: map[string]float64{
		"Backend Engineer":  0.45,
		"Platform Engineer": 0.82,
		"Data Engineer":     0.61,
	}}
	svc := NewComparisonService(stub, nil)

	resume := models.NewResume()
	result, err := svc.CompareResumeToJobs(resume, jobInputs("Backend Engineer", "Platform Engineer", "Data Engineer"), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.NumJobsCompared != 3 {
		t.Errorf("NumJobsCompared = %d, want 3", result.NumJobsCompared)
	}
	if result.ResumeID != resume.ResumeID {
		t.Errorf("ResumeID = %q, want %q", result.ResumeID, resume.ResumeID)
	}

	wantOrder := []string{"Platform Engineer", "Data Engineer", "Backend Engineer"}
	for i, want := range wantOrder {
		got := result.Results[i]
		if got.JobTitle != want {
			t.Errorf("rank %d: got %q, want %q", i+1, got.JobTitle, want)
		}
		if got.Rank != i+1 {
			t.Errorf("%s: rank = %d, want %d", got.JobTitle, got.Rank, i+1)
		}
	}

	if result.BestMatch == nil {
		t.Fatal("BestMatch should be set")
	}
	if result.BestMatch.Rank != 1 || result.BestMatch.JobTitle != "Platform Engineer" {
		t.Errorf("unexpected best match: %+v", result.BestMatch)
	}
	if result.BestMatch.OverallScore != 0.82 {
		t.Errorf("best score = %v, want 0.82", result.BestMatch.OverallScore)
	}
}

func TestCompareIsolatesPerJobFailures(t *testing.T) {
	stub := &stubScreening{
		jobScores: map[string]float64{"Backend Engineer": 0.7},
		jobErrs:   map[string]error{"Broken Role": fmt.Errorf("vector dimension mismatch")},
	}
	svc := NewComparisonService(stub, nil)

	result, err := svc.CompareResumeToJobs(models.NewResume(), jobInputs("Broken Role", "Backend Engineer"), 5)
	if err != nil {
		t.Fatalf("one failed job must not abort the comparison: %v", err)
	}

	if result.Results[0].JobTitle != "Backend Engineer" {
		t.Errorf("failed job must sort below scored jobs, got %q first", result.Results[0].JobTitle)
	}

	failed := result.Results[1]
	if failed.Recommendation != models.RecommendationError {
		t.Errorf("recommendation = %q, want %q", failed.Recommendation, models.RecommendationError)
	}
	if failed.OverallScore != 0 {
		t.Errorf("failed job score = %v, want 0", failed.OverallScore)
	}
	if failed.Error != "vector dimension mismatch" {
		t.Errorf("error message = %q", failed.Error)
	}
	if failed.MatchedSkills == nil || failed.MissingSkills == nil {
		t.Error("failed entry must carry initialized skill slices")
	}
}

func TestBestMatchDetails(t *testing.T) {
	stub := &stubScreening{jobScores: map[string]float64{
		"Platform Engineer": 0.82,
		"Data Engineer":     0.615,
	}}
	svc := NewComparisonService(stub, nil)

	result, err := svc.CompareResumeToJobs(models.NewResume(), jobInputs("Platform Engineer", "Data Engineer"), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details := svc.BestMatchDetails(result)
	if details == nil {
		t.Fatal("expected details for a non-empty comparison")
	}
	if details.JobTitle != "Platform Engineer" {
		t.Errorf("JobTitle = %q", details.JobTitle)
	}
	if details.AdvantageOverSecond != 0.205 {
		t.Errorf("AdvantageOverSecond = %v, want 0.205", details.AdvantageOverSecond)
	}
	if details.Recommendation != models.StrongMatch {
		t.Errorf("Recommendation = %q", details.Recommendation)
	}

	if svc.BestMatchDetails(nil) != nil {
		t.Error("nil result must yield nil details")
	}
	if svc.BestMatchDetails(&models.ComparisonResult{}) != nil {
		t.Error("empty result must yield nil details")
	}
}

func TestFormatComparisonTable(t *testing.T) {
	if got := FormatComparisonTable(nil); got != "No comparison results available." {
		t.Errorf("nil result: %q", got)
	}

	result := &models.ComparisonResult{Results: []models.RankedJobMatch{
		{
			Rank:           1,
			JobTitle:       "Senior Platform Engineer With A Very Long Title",
			OverallScore:   0.82,
			MatchedSkills:  []string{"Go", "Kubernetes"},
			Recommendation: models.StrongMatch,
		},
		{
			Rank:           2,
			JobTitle:       "Data Engineer",
			OverallScore:   0.61,
			MatchedSkills:  []string{"Python"},
			Recommendation: models.GoodMatch,
		},
	}}

	table := FormatComparisonTable(result)
	if !strings.Contains(table, "MULTI-JOB COMPARISON RESULTS") {
		t.Error("table missing header")
	}
	if !strings.Contains(table, "82%") || !strings.Contains(table, "61%") {
		t.Error("table missing percentage scores")
	}
	if !strings.Contains(table, "Strong Match") || !strings.Contains(table, "Good Match") {
		t.Error("table missing recommendation labels")
	}
	if strings.Contains(table, "Senior Platform Engineer With A Very Long Title") {
		t.Error("long job titles must be truncated")
	}
	if !strings.Contains(table, "Senior Platform Engineer Wit") {
		t.Error("truncated title missing")
	}
}

func TestCompareKeepsInputOrderOnTies(t *testing.T) {
	stub := &stubScreening{jobScores: map[string]float64{
		"First Role":  0.6,
		"Second Role": 0.6,
		"Winner":      0.9,
	}}
	svc := NewComparisonService(stub, nil)

	result, err := svc.CompareResumeToJobs(models.NewResume(), jobInputs("First Role", "Second Role", "Winner"), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"Winner", "First Role", "Second Role"}
	for i, want := range wantOrder {
		got := result.Results[i]
		if got.JobTitle != want {
			t.Errorf("position %d: got %q, want %q", i, got.JobTitle, want)
		}
		if got.Rank != i+1 {
			t.Errorf("%s: rank = %d, want dense rank %d", got.JobTitle, got.Rank, i+1)
		}
	}
}
