package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"talentsift/resume-screener/internal/models"
)

func newTestLearning() LearningService {
	return NewLearningService(NewTaxonomyService("", "", nil), "", nil)
}

func TestFindCoursesSortedByRating(t *testing.T) {
	svc := newTestLearning()

	courses := svc.FindCoursesForSkill("Python", "", 3)
	if len(courses) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(courses))
	}
	for i := 1; i < len(courses); i++ {
		if courses[i].Rating > courses[i-1].Rating {
			t.Errorf("courses not sorted by rating: %v after %v", courses[i].Rating, courses[i-1].Rating)
		}
	}
	if courses[0].Title != "Python for Everybody" {
		t.Errorf("top course = %q", courses[0].Title)
	}
}

func TestFindCoursesDifficultyFilter(t *testing.T) {
	svc := newTestLearning()

	intermediate := svc.FindCoursesForSkill("Python", "intermediate", 3)
	if len(intermediate) != 1 || intermediate[0].Difficulty != "intermediate" {
		t.Errorf("intermediate filter: %+v", intermediate)
	}

	// No course matches the level; the unfiltered catalog entry is
	// better than nothing.
	advanced := svc.FindCoursesForSkill("Python", "advanced", 5)
	if len(advanced) != 3 {
		t.Errorf("unmatched difficulty should keep all courses, got %d", len(advanced))
	}
}

func TestFindCoursesResolvesSynonyms(t *testing.T) {
	svc := newTestLearning()

	courses := svc.FindCoursesForSkill("K8s", "", 3)
	if len(courses) == 0 || courses[0].IsFallback {
		t.Fatalf("K8s should resolve to the Kubernetes catalog entry, got %+v", courses)
	}
	if !strings.Contains(courses[0].Title, "Kubernetes") {
		t.Errorf("unexpected course: %q", courses[0].Title)
	}
}

func TestFindCoursesCaseInsensitiveWithoutTaxonomy(t *testing.T) {
	svc := NewLearningService(nil, "", nil)

	courses := svc.FindCoursesForSkill("python", "", 3)
	if len(courses) == 0 || courses[0].IsFallback {
		t.Errorf("lowercase lookup should hit the catalog, got %+v", courses)
	}
}

func TestFindCoursesPartialMatch(t *testing.T) {
	svc := NewLearningService(nil, "", nil)

	courses := svc.FindCoursesForSkill("AWS Lambda", "", 3)
	if len(courses) == 0 || courses[0].IsFallback {
		t.Errorf("AWS Lambda should fall back to the AWS catalog entry, got %+v", courses)
	}
}

func TestFindCoursesFallbackResource(t *testing.T) {
	svc := newTestLearning()

	courses := svc.FindCoursesForSkill("COBOL", "", 3)
	if len(courses) != 1 {
		t.Fatalf("expected single fallback resource, got %d", len(courses))
	}
	c := courses[0]
	if !c.IsFallback || c.Provider != "YouTube" {
		t.Errorf("unexpected fallback: %+v", c)
	}
	if !strings.Contains(c.URL, "COBOL+tutorial") {
		t.Errorf("fallback URL not query-escaped: %q", c.URL)
	}
}

func TestGenerateLearningPlanOrdersByImportance(t *testing.T) {
	svc := newTestLearning()

	missing := []models.SkillRequirement{
		{SkillName: "Docker", Importance: models.ImportanceNiceToHave},
		{SkillName: "Go", Importance: models.SkillImportance("essential")},
		{SkillName: "Kubernetes", Importance: models.ImportanceCritical},
		{SkillName: "Python", Importance: models.ImportancePreferred},
	}

	plan := svc.GenerateLearningPlan(missing, 0, "", "resume-1", "job-1")
	if plan.ResumeID != "resume-1" || plan.JobID != "job-1" {
		t.Errorf("plan ids: resume=%q job=%q", plan.ResumeID, plan.JobID)
	}
	if plan.TotalSkillsToLearn != 4 {
		t.Errorf("TotalSkillsToLearn = %d, want 4", plan.TotalSkillsToLearn)
	}

	wantOrder := []string{"Kubernetes", "Python", "Docker", "Go"}
	for i, want := range wantOrder {
		if plan.Skills[i].SkillName != want {
			t.Errorf("skill %d = %q, want %q", i, plan.Skills[i].SkillName, want)
		}
	}
	if plan.Skills[0].CurrentProficiency != "none" {
		t.Errorf("CurrentProficiency = %q", plan.Skills[0].CurrentProficiency)
	}
	for _, c := range plan.Skills[0].RecommendedCourses {
		if c.WhyRecommended == "" {
			t.Errorf("course %q missing recommendation reason", c.Title)
		}
	}
}

func TestGenerateLearningPlanCapsSkills(t *testing.T) {
	svc := newTestLearning()

	missing := []models.SkillRequirement{
		{SkillName: "Python", Importance: models.ImportanceCritical},
		{SkillName: "Go", Importance: models.ImportanceCritical},
		{SkillName: "Docker", Importance: models.ImportanceCritical},
	}

	plan := svc.GenerateLearningPlan(missing, 2, "", "", "")
	if plan.TotalSkillsToLearn != 2 {
		t.Errorf("maxSkills=2 should keep 2 skills, got %d", plan.TotalSkillsToLearn)
	}
}

func TestGenerateLearningPlanEstimatesTime(t *testing.T) {
	svc := newTestLearning()

	single := svc.GenerateLearningPlan([]models.SkillRequirement{
		{SkillName: "Go", Importance: models.ImportanceCritical},
	}, 0, "", "", "")
	if single.EstimatedTotalTime != "1 month" {
		t.Errorf("single short skill: %q", single.EstimatedTotalTime)
	}

	// Python (8 weeks) plus Kubernetes (3 weeks) lands in the 2-3
	// month band.
	pair := svc.GenerateLearningPlan([]models.SkillRequirement{
		{SkillName: "Python", Importance: models.ImportanceCritical},
		{SkillName: "Kubernetes", Importance: models.ImportanceCritical},
	}, 0, "", "", "")
	if pair.EstimatedTotalTime != "2-3 months" {
		t.Errorf("two skills: %q", pair.EstimatedTotalTime)
	}

	// Fallback resources do not count toward the estimate.
	unknown := svc.GenerateLearningPlan([]models.SkillRequirement{
		{SkillName: "COBOL", Importance: models.ImportanceCritical},
	}, 0, "", "", "")
	if unknown.EstimatedTotalTime != "1 month" {
		t.Errorf("fallback-only plan: %q", unknown.EstimatedTotalTime)
	}
}

func TestGenerateLearningPlanMilestones(t *testing.T) {
	svc := newTestLearning()

	plan := svc.GenerateLearningPlan([]models.SkillRequirement{
		{SkillName: "Python", Importance: models.ImportanceCritical},
		{SkillName: "Kubernetes", Importance: models.ImportancePreferred},
	}, 0, "", "", "")

	if len(plan.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(plan.Milestones))
	}

	first := plan.Milestones[0]
	if first.Month != 1 || first.Focus != "Python fundamentals" {
		t.Errorf("first milestone: %+v", first)
	}
	if first.ExpectedOutcome != "Write basic Python programs" {
		t.Errorf("first outcome: %q", first.ExpectedOutcome)
	}
	if len(first.Courses) != 1 || first.Courses[0] != "Python for Everybody" {
		t.Errorf("first milestone courses: %v", first.Courses)
	}

	second := plan.Milestones[1]
	if second.Month != 2 || second.ExpectedOutcome != "Deploy applications to cloud" {
		t.Errorf("second milestone: %+v", second)
	}
}

func TestWhyRecommended(t *testing.T) {
	cases := []struct {
		name   string
		course models.Course
		want   string
	}{
		{"high rating", models.Course{Rating: 4.9}, "Highly rated by learners"},
		{"free", models.Course{Rating: 4.2, Cost: "free"}, "Free and comprehensive"},
		{"certificate", models.Course{Rating: 4.2, Cost: "paid", Certificate: true}, "Includes certificate"},
		{"default", models.Course{Rating: 4.2, Cost: "paid"}, "Recommended for skill development"},
	}
	for _, tc := range cases {
		if got := whyRecommended(tc.course); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDurationInWeeks(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"8 weeks", 8},
		{"1 week", 1},
		{"2 months", 8},
		{"weeks", 4},
		{"self-paced", 2},
	}
	for _, tc := range cases {
		if got := durationInWeeks(tc.in); got != tc.want {
			t.Errorf("durationInWeeks(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatTotalDuration(t *testing.T) {
	cases := []struct {
		weeks int
		want  string
	}{
		{0, "1 month"},
		{4, "1 month"},
		{11, "2-3 months"},
		{16, "4 months"},
	}
	for _, tc := range cases {
		if got := formatTotalDuration(tc.weeks); got != tc.want {
			t.Errorf("formatTotalDuration(%d) = %q, want %q", tc.weeks, got, tc.want)
		}
	}
}

func TestLearningCatalogFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resources.json")
	catalog := `{"Rust": [{"title": "The Rust Book", "provider": "Official Docs", "url": "https://doc.rust-lang.org/book/", "difficulty": "beginner", "duration": "6 weeks", "cost": "free", "rating": 4.9}]}`
	if err := os.WriteFile(path, []byte(catalog), 0o644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	svc := NewLearningService(nil, path, nil)
	courses := svc.FindCoursesForSkill("Rust", "", 3)
	if len(courses) != 1 || courses[0].Title != "The Rust Book" {
		t.Fatalf("file catalog not loaded: %+v", courses)
	}

	// A custom catalog replaces the built-in one entirely.
	if got := svc.FindCoursesForSkill("Python", "", 3); len(got) != 1 || !got[0].IsFallback {
		t.Errorf("built-in entries should be gone, got %+v", got)
	}

	// Unreadable path keeps the built-in catalog.
	fallback := NewLearningService(nil, filepath.Join(dir, "missing.json"), nil)
	if got := fallback.FindCoursesForSkill("Python", "", 3); len(got) == 0 || got[0].IsFallback {
		t.Errorf("built-in catalog expected on load failure, got %+v", got)
	}
}
