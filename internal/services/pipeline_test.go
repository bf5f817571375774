package services

import (
	"testing"

	"talentsift/resume-screener/internal/models"
)

func newTestScreening() ScreeningService {
	taxonomy := NewTaxonomyService("", "", nil)
	vectorizer := NewHashingVectorizer()
	return NewScreeningService(
		NewPDFParserService(ExtractionLimits{}),
		vectorizer,
		NewSkillExtractorService(taxonomy, 0.7, 100, nil),
		NewMatcherService(taxonomy, nil),
		NewExplainerService(taxonomy),
		models.ScoreWeights{SkillMatch: 0.5, SemanticSimilarity: 0.5},
		nil,
	)
}

func TestProcessJobWithExplicitSkills(t *testing.T) {
	svc := newTestScreening()

	job := svc.ProcessJob(models.JobInput{
		JobID:       "job-42",
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Build Go services",
		RequiredSkills: []models.SkillRequirement{
			{SkillName: "Go", Importance: models.ImportanceCritical},
		},
	})

	if job.JobID != "job-42" {
		t.Errorf("supplied JobID must be preserved, got %q", job.JobID)
	}
	if job.Title != "Backend Engineer" || job.Company != "Acme" {
		t.Errorf("job fields: title=%q company=%q", job.Title, job.Company)
	}
	if len(job.RequiredSkills) != 1 || job.RequiredSkills[0].SkillName != "Go" {
		t.Errorf("explicit skills must pass through untouched: %+v", job.RequiredSkills)
	}
	if len(job.Vector) != VectorDimensions {
		t.Errorf("job vector has %d dimensions", len(job.Vector))
	}
}

func TestProcessJobExtractsSkillsFromDescription(t *testing.T) {
	svc := newTestScreening()

	description := "We are looking for an engineer with strong Python and Kubernetes " +
		"experience to build and operate data pipelines in a cloud environment."
	job := svc.ProcessJob(models.JobInput{Description: description})

	if job.Title != "Job Position" {
		t.Errorf("empty title should default, got %q", job.Title)
	}

	names := map[string]models.SkillImportance{}
	for _, req := range job.RequiredSkills {
		names[req.SkillName] = req.Importance
	}
	if names["Python"] != models.ImportancePreferred || names["Kubernetes"] != models.ImportancePreferred {
		t.Errorf("description skills should become preferred requirements: %v", names)
	}
}

func TestMatchResumeToJobAttachesIdentifiers(t *testing.T) {
	svc := newTestScreening()

	resume := models.NewResume()
	resume.ExtractedText = "Senior engineer with years of Go and Kubernetes production experience."
	resume.Skills = []models.CandidateSkill{
		{SkillName: "Go", Category: models.CategoryTechnical, Confidence: 0.9},
	}

	job := svc.ProcessJob(models.JobInput{
		Title:       "Platform Engineer",
		Description: "Operate Go services on Kubernetes",
		RequiredSkills: []models.SkillRequirement{
			{SkillName: "Go", Importance: models.ImportanceCritical},
		},
	})

	match, err := svc.MatchResumeToJob(resume, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if match.ResumeID == nil || *match.ResumeID != resume.ResumeID {
		t.Error("match must reference the resume id")
	}
	if match.JobID == nil || *match.JobID != job.JobID {
		t.Error("match must reference the job id")
	}
	if match.Subscores.SkillMatch != 1.0 {
		t.Errorf("single required skill is matched, skill subscore = %v", match.Subscores.SkillMatch)
	}

	// Vectors are derived lazily when the resume carries none.
	if resume.Vector != nil {
		t.Error("MatchResumeToJob must not mutate the resume")
	}
}

func TestProcessResumeMissingFile(t *testing.T) {
	svc := newTestScreening()

	_, err := svc.ProcessResume("/nonexistent/resume.pdf")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
