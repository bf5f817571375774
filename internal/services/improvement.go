package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentsift/resume-screener/internal/models"
)

// ImprovementService analyzes résumé quality against a job match and
// produces actionable suggestions with a 0-100 quality score.
type ImprovementService interface {
	GenerateSuggestions(resume *models.Resume, job *models.Job, match *models.MatchResult) *models.ImprovementReport
}

type improvementService struct {
	metricsPattern  *regexp.Regexp
	jobWordsPattern *regexp.Regexp
}

func NewImprovementService() ImprovementService {
	return &improvementService{
		metricsPattern:  regexp.MustCompile(`\b\d+%|\$\d+|\d+\s*(million|thousand|users|customers|projects)`),
		jobWordsPattern: regexp.MustCompile(`\b[a-zA-Z]{3,}\b`),
	}
}

var suggestionActionVerbs = []string{
	"develop", "design", "implement", "manage", "lead", "create",
	"analyze", "build", "collaborate", "optimize", "maintain",
}

var suggestionCommonWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "you": {}, "will": {},
	"are": {}, "this": {}, "that": {}, "have": {}, "from": {},
}

func (s *improvementService) GenerateSuggestions(resume *models.Resume, job *models.Job, match *models.MatchResult) *models.ImprovementReport {
	suggestions := []models.Suggestion{}

	if sg := s.analyzeMissingCriticalSkills(match.MissingSkills); sg != nil {
		suggestions = append(suggestions, *sg)
	}
	if sg := s.analyzeMissingKeywords(resume.ExtractedText, job.Description); sg != nil {
		suggestions = append(suggestions, *sg)
	}
	suggestions = append(suggestions, s.analyzeFormatting(resume)...)
	suggestions = append(suggestions, s.analyzeContentGaps(resume.ExtractedText)...)
	suggestions = append(suggestions, s.analyzeATSCompatibility(resume)...)

	// High priority first; append order breaks ties.
	rank := map[models.SuggestionPriority]int{
		models.PriorityHigh:   0,
		models.PriorityMedium: 1,
		models.PriorityLow:    2,
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return rank[suggestions[i].Priority] < rank[suggestions[j].Priority]
	})

	return &models.ImprovementReport{
		SuggestionID:   uuid.New().String(),
		ResumeID:       resume.ResumeID,
		JobID:          job.JobID,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		QualityScore:   s.calculateQualityScore(resume),
		Suggestions:    suggestions,
		PositivePoints: s.generatePositivePoints(resume, match),
	}
}

func (s *improvementService) analyzeMissingCriticalSkills(missing []models.SkillRequirement) *models.Suggestion {
	names := []string{}
	for _, req := range missing {
		if req.Importance == models.ImportanceCritical {
			names = append(names, req.SkillName)
		}
		if len(names) == 5 {
			break
		}
	}
	if len(names) == 0 {
		return nil
	}

	titleNames := names
	if len(titleNames) > 3 {
		titleNames = titleNames[:3]
	}

	impact := len(names) * 5
	if impact > 25 {
		impact = 25
	}

	return &models.Suggestion{
		Category:    "missing_critical_skills",
		Priority:    models.PriorityHigh,
		Title:       "Add Critical Skills: " + strings.Join(titleNames, ", "),
		Description: fmt.Sprintf("This job requires %s as critical skills, but they're not clearly mentioned in your resume.", strings.Join(names, ", ")),
		ActionItems: []string{
			"Add a dedicated 'Technical Skills' or 'Skills' section if missing",
			fmt.Sprintf("List your experience with %s in your projects", names[0]),
			"Include these skills in your work experience descriptions where applicable",
		},
		Impact: fmt.Sprintf("Adding these could improve your match score by ~%d%%", impact),
	}
}

func (s *improvementService) analyzeMissingKeywords(resumeText, jobText string) *models.Suggestion {
	missing := s.missingKeywords(resumeText, jobText)
	if len(missing) == 0 {
		return nil
	}

	titleWords := missing
	if len(titleWords) > 3 {
		titleWords = titleWords[:3]
	}

	return &models.Suggestion{
		Category:    "missing_keywords",
		Priority:    models.PriorityMedium,
		Title:       "Add Key Terms: " + strings.Join(titleWords, ", "),
		Description: "Important keywords from the job description are missing from your resume.",
		ActionItems: []string{
			fmt.Sprintf("Incorporate '%s' in relevant sections", missing[0]),
			"Mirror the language used in the job description",
			"Add industry-specific terminology where applicable",
		},
		Impact: "Better keyword alignment improves ATS matching",
	}
}

// missingKeywords extracts job-description terms absent from the
// résumé, action verbs first, capped at 15.
func (s *improvementService) missingKeywords(resumeText, jobText string) []string {
	jobLower := strings.ToLower(jobText)
	resumeLower := strings.ToLower(resumeText)

	missing := []string{}
	for _, verb := range suggestionActionVerbs {
		if strings.Contains(jobLower, verb) && !strings.Contains(resumeLower, verb) {
			missing = append(missing, verb)
		}
	}

	seen := map[string]struct{}{}
	words := []string{}
	for _, word := range s.jobWordsPattern.FindAllString(jobLower, -1) {
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		if _, common := suggestionCommonWords[word]; common {
			continue
		}
		if len(word) > 4 && !strings.Contains(resumeLower, word) {
			words = append(words, word)
		}
	}
	sort.Strings(words)

	missing = append(missing, words...)
	if len(missing) > 15 {
		missing = missing[:15]
	}
	return missing
}

func (s *improvementService) analyzeFormatting(resume *models.Resume) []models.Suggestion {
	issues := []models.Suggestion{}

	missingContact := []string{}
	if resume.Contact.Name == "" || resume.Contact.Name == "Unknown" {
		missingContact = append(missingContact, "name")
	}
	if resume.Contact.Email == "" {
		missingContact = append(missingContact, "email")
	}
	if resume.Contact.Phone == "" {
		missingContact = append(missingContact, "phone")
	}
	if len(missingContact) > 0 {
		issues = append(issues, models.Suggestion{
			Category:    "formatting",
			Priority:    models.PriorityHigh,
			Title:       "Add Missing Contact Info: " + strings.Join(missingContact, ", "),
			Description: "Essential contact information is missing or not properly formatted.",
			ActionItems: []string{
				"Include your full name at the top of the resume",
				"Add a professional email address",
				"Include a phone number with area code",
			},
			Impact: "Recruiters cannot contact you without complete contact information",
		})
	}

	charCount := len(resume.ExtractedText)
	if charCount < 500 {
		issues = append(issues, models.Suggestion{
			Category:    "formatting",
			Priority:    models.PriorityHigh,
			Title:       "Resume Too Short",
			Description: fmt.Sprintf("Your resume has only %d characters. This may indicate missing content or extraction issues.", charCount),
			ActionItems: []string{
				"Expand your work experience descriptions",
				"Add more details about projects and achievements",
				"Include education, skills, and certifications sections",
			},
			Impact: "Short resumes lack the detail needed to assess qualifications",
		})
	} else if charCount > 30000 {
		issues = append(issues, models.Suggestion{
			Category:    "formatting",
			Priority:    models.PriorityMedium,
			Title:       "Resume May Be Too Long",
			Description: fmt.Sprintf("Your resume has %d characters, which may be too lengthy.", charCount),
			ActionItems: []string{
				"Focus on the most recent 10-15 years of experience",
				"Remove outdated or irrelevant information",
				"Use concise bullet points instead of paragraphs",
			},
			Impact: "Long resumes may not be fully read by recruiters",
		})
	}

	textLower := strings.ToLower(resume.ExtractedText)
	sectionKeywords := []string{"experience", "education", "skills", "summary", "objective", "projects"}
	found := 0
	for _, kw := range sectionKeywords {
		if strings.Contains(textLower, kw) {
			found++
		}
	}
	if found < 2 {
		issues = append(issues, models.Suggestion{
			Category:    "formatting",
			Priority:    models.PriorityMedium,
			Title:       "Add Clear Section Headers",
			Description: "Your resume may lack clear section organization.",
			ActionItems: []string{
				"Add 'Work Experience' or 'Professional Experience' section",
				"Include 'Education' section with degrees",
				"Add 'Skills' or 'Technical Skills' section",
			},
			Impact: "Well-organized resumes are easier to scan quickly",
		})
	}

	return issues
}

func (s *improvementService) analyzeContentGaps(resumeText string) []models.Suggestion {
	gaps := []models.Suggestion{}
	textLower := strings.ToLower(resumeText)

	educationKeywords := []string{
		"degree", "bachelor", "master", "phd", "university", "college",
		"diploma", "b.s.", "b.a.", "m.s.", "m.a.",
	}
	if !containsAny(textLower, educationKeywords) {
		gaps = append(gaps, models.Suggestion{
			Category:    "content_gaps",
			Priority:    models.PriorityMedium,
			Title:       "Add Education Section",
			Description: "No education credentials were detected in your resume.",
			ActionItems: []string{
				"Add your highest degree and institution",
				"Include graduation year (optional if >15 years)",
				"Mention relevant coursework or honors if applicable",
			},
			Impact: "Education is often a basic requirement filter",
		})
	}

	experienceKeywords := []string{
		"worked", "managed", "developed", "led", "created", "company", "responsibilities",
	}
	if !containsAny(textLower, experienceKeywords) {
		gaps = append(gaps, models.Suggestion{
			Category:    "content_gaps",
			Priority:    models.PriorityMedium,
			Title:       "Expand Work Experience Details",
			Description: "Your resume may lack detailed work experience descriptions.",
			ActionItems: []string{
				"Use action verbs to describe your accomplishments",
				"Include job titles, company names, and dates",
				"Describe your responsibilities and achievements",
			},
			Impact: "Work experience is the most important section for most roles",
		})
	}

	if !s.metricsPattern.MatchString(textLower) {
		gaps = append(gaps, models.Suggestion{
			Category:    "content_gaps",
			Priority:    models.PriorityMedium,
			Title:       "Add Quantifiable Achievements",
			Description: "Your resume lacks numbers and metrics. Recruiters prefer measurable impact.",
			ActionItems: []string{
				"Add metrics like 'Improved performance by 20%'",
				"Quantify project outcomes: 'Processed 1M+ records'",
				"Include team size, budget, or timeline numbers",
			},
			Impact: "Makes your resume more compelling and credible",
		})
	}

	return gaps
}

func (s *improvementService) analyzeATSCompatibility(resume *models.Resume) []models.Suggestion {
	issues := []models.Suggestion{}

	if resume.FileSizeBytes > 5*1024*1024 {
		issues = append(issues, models.Suggestion{
			Category:    "ats_compatibility",
			Priority:    models.PriorityLow,
			Title:       "File Size Warning",
			Description: fmt.Sprintf("Your resume is %.1fMB, which may be too large for some ATS systems.", float64(resume.FileSizeBytes)/(1024*1024)),
			ActionItems: []string{
				"Compress images if any are included",
				"Consider using a simpler format",
				"Remove unnecessary graphics or design elements",
			},
			Impact: "Large files may fail to upload or process correctly",
		})
	}

	// Heavy tab or space runs usually mean tables or columns.
	if strings.Count(resume.ExtractedText, "\t") > 20 || strings.Count(resume.ExtractedText, "    ") > 30 {
		issues = append(issues, models.Suggestion{
			Category:    "ats_compatibility",
			Priority:    models.PriorityLow,
			Title:       "Consider Simpler Formatting",
			Description: "Your resume may have complex formatting (tables/columns) that ATS may not parse correctly.",
			ActionItems: []string{
				"Use a single-column layout for better ATS compatibility",
				"Avoid tables and text boxes",
				"Use standard bullet points instead of custom symbols",
			},
			Impact: "Complex layouts can cause ATS parsing errors",
		})
	}

	return issues
}

// calculateQualityScore rates the résumé itself, independent of any
// job. Base 50, additive bonuses, capped at 100.
func (s *improvementService) calculateQualityScore(resume *models.Resume) int {
	score := 50
	textLower := strings.ToLower(resume.ExtractedText)

	if resume.Contact.Email != "" {
		score += 10
	}
	if resume.Contact.Phone != "" {
		score += 5
	}

	charCount := len(resume.ExtractedText)
	switch {
	case charCount >= 500 && charCount <= 5000:
		score += 10
	case charCount > 5000 && charCount <= 15000:
		score += 7
	case charCount > 15000:
		score += 3
	}

	if containsAny(textLower, []string{"degree", "bachelor", "master", "phd", "university", "college"}) {
		score += 10
	}
	if containsAny(textLower, []string{"worked", "managed", "developed", "led", "created", "responsible"}) {
		score += 10
	}
	if s.metricsPattern.MatchString(textLower) {
		score += 10
	}

	hasSoft := false
	hasTechnical := false
	for _, skill := range resume.Skills {
		if skill.Category == models.CategorySoft {
			hasSoft = true
		} else {
			hasTechnical = true
		}
	}
	if hasSoft && hasTechnical {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

func (s *improvementService) generatePositivePoints(resume *models.Resume, match *models.MatchResult) []string {
	positive := []string{}
	textLower := strings.ToLower(resume.ExtractedText)

	if len(match.MatchedSkills) > 0 {
		positive = append(positive, fmt.Sprintf("Strong skill alignment: %d skills match the job requirements", len(match.MatchedSkills)))
	}

	if match.OverallScore >= thresholdStrongMatch {
		positive = append(positive, "Excellent overall match for this position")
	} else if match.OverallScore >= thresholdGoodMatch {
		positive = append(positive, "Good foundation for this role with room to grow")
	}

	if resume.Contact.Email != "" && resume.Contact.Phone != "" {
		positive = append(positive, "Complete contact information provided")
	}

	if len(resume.ExtractedText) >= 1000 && len(resume.ExtractedText) <= 10000 {
		positive = append(positive, "Well-structured resume length")
	}

	if containsAny(textLower, []string{"years", "experience", "senior", "lead", "manager"}) {
		positive = append(positive, "Demonstrates relevant professional experience")
	}

	if s.metricsPattern.MatchString(textLower) {
		positive = append(positive, "Includes quantifiable achievements")
	}

	if len(positive) > 5 {
		positive = positive[:5]
	}
	return positive
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// FormatImprovementSummary renders a short text summary of a report.
func FormatImprovementSummary(report *models.ImprovementReport) string {
	high := 0
	medium := 0
	for _, s := range report.Suggestions {
		switch s.Priority {
		case models.PriorityHigh:
			high++
		case models.PriorityMedium:
			medium++
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Resume Quality Score: %d/100\n\n", report.QualityScore))
	b.WriteString(fmt.Sprintf("Total Suggestions: %d\n", len(report.Suggestions)))
	b.WriteString(fmt.Sprintf("  - High Priority: %d\n", high))
	b.WriteString(fmt.Sprintf("  - Medium Priority: %d\n", medium))

	if high > 0 {
		b.WriteString("\nTop Priority Actions:\n")
		shown := 0
		for _, s := range report.Suggestions {
			if s.Priority != models.PriorityHigh {
				continue
			}
			b.WriteString(fmt.Sprintf("  - %s\n", s.Title))
			shown++
			if shown == 3 {
				break
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}
