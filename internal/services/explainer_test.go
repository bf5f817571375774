package services

import (
	"strings"
	"testing"

	"talentsift/resume-screener/internal/models"
)

func newTestExplainer() ExplainerService {
	return NewExplainerService(NewTaxonomyService("", "", nil))
}

func TestGenerateMatchExplanationSections(t *testing.T) {
	e := newTestExplainer()

	result := &models.MatchResult{
		OverallScore: 0.813,
		Subscores: models.Subscores{
			SkillMatch:         0.63,
			SemanticSimilarity: 1.0,
		},
		MatchedSkills: []string{"Python"},
		MissingSkills: []models.SkillRequirement{
			{SkillName: "Docker", Importance: models.ImportancePreferred},
		},
		Recommendation: models.StrongMatch,
	}

	text := e.GenerateMatchExplanation(result)

	for _, want := range []string{
		"## Match Assessment: Strong Match",
		"**Overall Score: 81%**",
		"- Skill Match: 63%",
		"- Semantic Similarity: 100%",
		"### Matched Skills",
		"- Python",
		"### Missing Skills",
		"- Docker (preferred)",
		"strong match",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("explanation missing %q:\n%s", want, text)
		}
	}
}

func TestGenerateMatchExplanationOmitsEmptySections(t *testing.T) {
	e := newTestExplainer()

	result := &models.MatchResult{
		OverallScore:   0.5,
		MatchedSkills:  []string{},
		MissingSkills:  []models.SkillRequirement{},
		Recommendation: models.WeakMatch,
	}

	text := e.GenerateMatchExplanation(result)

	if strings.Contains(text, "### Matched Skills") {
		t.Error("expected no matched skills section")
	}
	if strings.Contains(text, "### Missing Skills") {
		t.Error("expected no missing skills section")
	}
	if !strings.Contains(text, "weak match") {
		t.Error("expected weak-match guidance paragraph")
	}
}

func TestExplanationIsDeterministic(t *testing.T) {
	e := newTestExplainer()

	result := &models.MatchResult{
		OverallScore:   0.6,
		MatchedSkills:  []string{"Go", "Docker"},
		Recommendation: models.GoodMatch,
	}

	if e.GenerateMatchExplanation(result) != e.GenerateMatchExplanation(result) {
		t.Fatal("expected identical output for identical input")
	}
}

func TestGenerateSkillGapAnalysisBuckets(t *testing.T) {
	e := newTestExplainer()

	required := []models.SkillRequirement{
		{SkillName: "Python", Importance: models.ImportanceCritical},
		{SkillName: "Kubernetes", Importance: models.ImportanceCritical},
		{SkillName: "Docker", Importance: models.ImportancePreferred},
		{SkillName: "GraphQL", Importance: models.ImportanceNiceToHave},
	}
	resumeSkills := []string{"Python", "Docker", "Rust"}

	analysis := e.GenerateSkillGapAnalysis(resumeSkills, required)

	if len(analysis.CriticalMatched) != 1 || analysis.CriticalMatched[0] != "Python" {
		t.Fatalf("unexpected critical matched: %v", analysis.CriticalMatched)
	}
	if len(analysis.CriticalMissing) != 1 || analysis.CriticalMissing[0] != "Kubernetes" {
		t.Fatalf("unexpected critical missing: %v", analysis.CriticalMissing)
	}
	if len(analysis.PreferredMatched) != 1 || analysis.PreferredMatched[0] != "Docker" {
		t.Fatalf("unexpected preferred matched: %v", analysis.PreferredMatched)
	}
	if len(analysis.NiceToHaveMissing) != 1 || analysis.NiceToHaveMissing[0] != "GraphQL" {
		t.Fatalf("unexpected nice-to-have missing: %v", analysis.NiceToHaveMissing)
	}
	if len(analysis.ExtraSkills) != 1 || analysis.ExtraSkills[0] != "Rust" {
		t.Fatalf("unexpected extra skills: %v", analysis.ExtraSkills)
	}
}

func TestGenerateSkillGapAnalysisUsesSynonyms(t *testing.T) {
	e := newTestExplainer()

	required := []models.SkillRequirement{
		{SkillName: "React", Importance: models.ImportanceCritical},
	}

	analysis := e.GenerateSkillGapAnalysis([]string{"ReactJS"}, required)

	if len(analysis.CriticalMatched) != 1 {
		t.Fatalf("expected ReactJS to match React, got %v", analysis.CriticalMatched)
	}
	if len(analysis.ExtraSkills) != 0 {
		t.Fatalf("expected no extra skills, got %v", analysis.ExtraSkills)
	}
}

func TestGapAnalysisConsistentWithMatcher(t *testing.T) {
	taxonomy := NewTaxonomyService("", "", nil)
	e := NewExplainerService(taxonomy)
	m := NewMatcherService(taxonomy, nil)

	required := []models.SkillRequirement{
		{SkillName: "Python", Importance: models.ImportanceCritical},
		{SkillName: "Terraform", Importance: models.ImportancePreferred},
	}
	resumeSkills := []string{"python"}

	_, matched, missing := m.MatchSkills(resumeSkills, required)
	analysis := e.GenerateSkillGapAnalysis(resumeSkills, required)

	gapMatched := len(analysis.CriticalMatched) + len(analysis.PreferredMatched) + len(analysis.NiceToHaveMatched)
	gapMissing := len(analysis.CriticalMissing) + len(analysis.PreferredMissing) + len(analysis.NiceToHaveMissing)

	if gapMatched != len(matched) {
		t.Fatalf("matcher found %d matched, gap analysis found %d", len(matched), gapMatched)
	}
	if gapMissing != len(missing) {
		t.Fatalf("matcher found %d missing, gap analysis found %d", len(missing), gapMissing)
	}
}

func TestFormatSkillGapReport(t *testing.T) {
	e := newTestExplainer()

	analysis := &models.SkillGapAnalysis{
		CriticalMatched: []string{"Python"},
		CriticalMissing: []string{"Kubernetes"},
		ExtraSkills:     []string{"Rust"},
	}

	report := e.FormatSkillGapReport(analysis)

	for _, want := range []string{
		"## Skill Gap Analysis",
		"### Critical Skills",
		"**Matched:**",
		"  - Python",
		"**Missing:**",
		"  - Kubernetes",
		"### Preferred Skills\nNone specified.",
		"### Additional Skills (Not Required)",
		"  - Rust",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"strong-match": "Strong Match",
		"no-match":     "No Match",
		"error":        "Error",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGapAnalysisDedupesExtraSkills(t *testing.T) {
	e := newTestExplainer()

	analysis := e.GenerateSkillGapAnalysis(
		[]string{"JS", "JavaScript", "Go"},
		[]models.SkillRequirement{
			{SkillName: "Go", Importance: models.ImportanceCritical},
		},
	)

	if len(analysis.ExtraSkills) != 1 || analysis.ExtraSkills[0] != "JS" {
		t.Errorf("synonym duplicates must collapse to the first spelling, got %v", analysis.ExtraSkills)
	}
	if len(analysis.CriticalMatched) != 1 || analysis.CriticalMatched[0] != "Go" {
		t.Errorf("required skill must stay out of extras: %+v", analysis.CriticalMatched)
	}
}
