package services

import (
	"fmt"
	"strings"

	"talentsift/resume-screener/internal/models"
)

// ExplainerService renders match results as structured gap analysis
// and human-readable text. Rendering is fully deterministic: the same
// result always yields the same text.
type ExplainerService interface {
	GenerateMatchExplanation(result *models.MatchResult) string
	GenerateSkillGapAnalysis(resumeSkills []string, requiredSkills []models.SkillRequirement) *models.SkillGapAnalysis
	FormatSkillGapReport(analysis *models.SkillGapAnalysis) string
}

type explainerService struct {
	taxonomy TaxonomyService
}

func NewExplainerService(taxonomy TaxonomyService) ExplainerService {
	return &explainerService{taxonomy: taxonomy}
}

func (e *explainerService) GenerateMatchExplanation(result *models.MatchResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("## Match Assessment: %s\n", titleCase(string(result.Recommendation))))
	b.WriteString(fmt.Sprintf("**Overall Score: %.0f%%**\n\n", result.OverallScore*100))

	b.WriteString("### Score Breakdown\n")
	b.WriteString(fmt.Sprintf("- Skill Match: %.0f%%\n", result.Subscores.SkillMatch*100))
	b.WriteString(fmt.Sprintf("- Semantic Similarity: %.0f%%\n\n", result.Subscores.SemanticSimilarity*100))

	if len(result.MatchedSkills) > 0 {
		b.WriteString("### Matched Skills\n")
		for _, skill := range result.MatchedSkills {
			b.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		b.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		b.WriteString("### Missing Skills\n")
		for _, skill := range result.MissingSkills {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", skill.SkillName, skill.Importance))
		}
		b.WriteString("\n")
	}

	b.WriteString("### Recommendation\n")
	b.WriteString(guidanceFor(result.Recommendation))

	return b.String()
}

// guidanceFor returns the canned paragraph for a recommendation band.
// The banding itself comes from the scoring stage; this only renders.
func guidanceFor(recommendation models.Recommendation) string {
	switch recommendation {
	case models.StrongMatch:
		return "This candidate is a **strong match** for the position. " +
			"They possess most of the required skills and their background " +
			"aligns well with the job requirements."
	case models.GoodMatch:
		return "This candidate is a **good match** for the position. " +
			"They have many relevant skills, though there may be some gaps " +
			"that could be addressed through training."
	case models.WeakMatch:
		return "This candidate is a **weak match** for the position. " +
			"There are significant skill gaps that would need to be addressed. " +
			"Consider if the candidate has transferable skills or potential for growth."
	default:
		return "This candidate is **not a match** for the position based on the " +
			"current requirements. Consider other candidates or review if " +
			"requirements can be adjusted."
	}
}

// GenerateSkillGapAnalysis partitions required skills into matched and
// missing per importance tier, using the same normalization primitive
// as the skill matcher. Candidate skills absent from the requirements
// land in ExtraSkills in input order, one entry per normalized skill.
func (e *explainerService) GenerateSkillGapAnalysis(
	resumeSkills []string,
	requiredSkills []models.SkillRequirement,
) *models.SkillGapAnalysis {
	analysis := &models.SkillGapAnalysis{
		CriticalMatched:   []string{},
		CriticalMissing:   []string{},
		PreferredMatched:  []string{},
		PreferredMissing:  []string{},
		NiceToHaveMatched: []string{},
		NiceToHaveMissing: []string{},
		ExtraSkills:       []string{},
	}

	candidate := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		candidate[e.taxonomy.NormalizeKey(s)] = struct{}{}
	}

	required := make(map[string]struct{}, len(requiredSkills))

	for _, req := range requiredSkills {
		key := e.taxonomy.NormalizeKey(req.SkillName)
		required[key] = struct{}{}

		_, has := candidate[key]
		switch req.Importance {
		case models.ImportanceCritical:
			if has {
				analysis.CriticalMatched = append(analysis.CriticalMatched, req.SkillName)
			} else {
				analysis.CriticalMissing = append(analysis.CriticalMissing, req.SkillName)
			}
		case models.ImportanceNiceToHave:
			if has {
				analysis.NiceToHaveMatched = append(analysis.NiceToHaveMatched, req.SkillName)
			} else {
				analysis.NiceToHaveMissing = append(analysis.NiceToHaveMissing, req.SkillName)
			}
		default:
			if has {
				analysis.PreferredMatched = append(analysis.PreferredMatched, req.SkillName)
			} else {
				analysis.PreferredMissing = append(analysis.PreferredMissing, req.SkillName)
			}
		}
	}

	extras := make(map[string]struct{})
	for _, s := range resumeSkills {
		key := e.taxonomy.NormalizeKey(s)
		if _, ok := required[key]; ok {
			continue
		}
		if _, dup := extras[key]; dup {
			continue
		}
		extras[key] = struct{}{}
		analysis.ExtraSkills = append(analysis.ExtraSkills, s)
	}

	return analysis
}

func (e *explainerService) FormatSkillGapReport(analysis *models.SkillGapAnalysis) string {
	var b strings.Builder

	b.WriteString("## Skill Gap Analysis\n\n")

	writeTier(&b, "Critical Skills", analysis.CriticalMatched, analysis.CriticalMissing)
	writeTier(&b, "Preferred Skills", analysis.PreferredMatched, analysis.PreferredMissing)
	writeTier(&b, "Nice-to-Have Skills", analysis.NiceToHaveMatched, analysis.NiceToHaveMissing)

	if len(analysis.ExtraSkills) > 0 {
		b.WriteString("### Additional Skills (Not Required)\n")
		for _, skill := range analysis.ExtraSkills {
			b.WriteString(fmt.Sprintf("  - %s\n", skill))
		}
	}

	return b.String()
}

func writeTier(b *strings.Builder, heading string, matched, missing []string) {
	b.WriteString(fmt.Sprintf("### %s\n", heading))

	if len(matched) == 0 && len(missing) == 0 {
		b.WriteString("None specified.\n\n")
		return
	}

	if len(matched) > 0 {
		b.WriteString("**Matched:**\n")
		for _, skill := range matched {
			b.WriteString(fmt.Sprintf("  - %s\n", skill))
		}
	}
	if len(missing) > 0 {
		b.WriteString("**Missing:**\n")
		for _, skill := range missing {
			b.WriteString(fmt.Sprintf("  - %s\n", skill))
		}
	}
	b.WriteString("\n")
}

// titleCase turns "strong-match" into "Strong Match".
func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
