package services

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"talentsift/resume-screener/internal/models"
)

// SkillExtractorService identifies candidate skills in free text by
// word-boundary matching against the taxonomy. It never fails; text
// shorter than the minimum length yields an empty list.
type SkillExtractorService interface {
	ExtractSkills(text string) []models.CandidateSkill
}

type skillPattern struct {
	name     string
	category models.SkillCategory
	pattern  *regexp.Regexp
}

type skillExtractorService struct {
	taxonomy      TaxonomyService
	patterns      []skillPattern
	aliasPatterns map[string]*regexp.Regexp
	minConfidence float64
	minTextLength int
	logger        *zap.Logger
}

func NewSkillExtractorService(
	taxonomy TaxonomyService,
	minConfidence float64,
	minTextLength int,
	logger *zap.Logger,
) SkillExtractorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if minConfidence <= 0 {
		minConfidence = 0.7
	}
	if minTextLength <= 0 {
		minTextLength = 100
	}

	s := &skillExtractorService{
		taxonomy:      taxonomy,
		minConfidence: minConfidence,
		minTextLength: minTextLength,
		logger:        logger,
	}

	for _, category := range []models.SkillCategory{
		models.CategoryTechnical, models.CategorySoft, models.CategoryDomain,
	} {
		for _, name := range taxonomy.Skills()[category] {
			s.patterns = append(s.patterns, skillPattern{
				name:     name,
				category: category,
				pattern:  compileSkillPattern(name),
			})
		}
	}

	s.aliasPatterns = make(map[string]*regexp.Regexp, len(taxonomy.Synonyms()))
	for alias := range taxonomy.Synonyms() {
		s.aliasPatterns[alias] = compileSkillPattern(alias)
	}

	return s
}

func (s *skillExtractorService) ExtractSkills(text string) []models.CandidateSkill {
	if len(strings.TrimSpace(text)) < s.minTextLength {
		s.logger.Debug("text too short for skill extraction",
			zap.Int("length", len(text)))
		return []models.CandidateSkill{}
	}

	// Abbreviations found in the text contribute their canonical names
	// before taxonomy matching, so "K8s" surfaces as Kubernetes.
	expanded := s.expandSynonyms(text)

	best := map[string]models.CandidateSkill{}
	order := []string{}

	for _, sp := range s.patterns {
		if !sp.pattern.MatchString(expanded) {
			continue
		}

		confidence := skillConfidence(sp.pattern, expanded)
		if confidence < s.minConfidence {
			continue
		}

		if existing, ok := best[sp.name]; !ok {
			best[sp.name] = models.CandidateSkill{
				SkillName:  sp.name,
				Category:   sp.category,
				Confidence: round2(confidence),
			}
			order = append(order, sp.name)
		} else if confidence > existing.Confidence {
			existing.Confidence = round2(confidence)
			best[sp.name] = existing
		}
	}

	skills := make([]models.CandidateSkill, 0, len(order))
	for _, name := range order {
		skills = append(skills, best[name])
	}
	return skills
}

// expandSynonyms appends the canonical name for every alias present in
// the text. The original text is preserved untouched.
func (s *skillExtractorService) expandSynonyms(text string) string {
	if text == "" {
		return ""
	}

	var additions []string
	for alias, canonical := range s.taxonomy.Synonyms() {
		if s.aliasPatterns[alias].MatchString(text) {
			additions = append(additions, canonical)
		}
	}
	if len(additions) == 0 {
		return text
	}
	sort.Strings(additions)
	return text + " " + strings.Join(additions, " ")
}

var confidenceContexts = []string{"experience", "proficient", "expert", "skilled", "knowledge"}

// skillConfidence starts at 0.7, boosted by repeated mentions (up to
// +0.2) and by proximity vocabulary like "proficient" (+0.1), capped
// at 1.0.
func skillConfidence(pattern *regexp.Regexp, text string) float64 {
	confidence := 0.7

	count := len(pattern.FindAllStringIndex(text, 4))
	if count > 1 {
		boost := 0.1 * float64(count-1)
		if boost > 0.2 {
			boost = 0.2
		}
		confidence += boost
	}

	lower := strings.ToLower(text)
	for _, context := range confidenceContexts {
		if strings.Contains(lower, context) {
			confidence += 0.1
			break
		}
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// compileSkillPattern builds a case-insensitive word-boundary pattern
// for a skill name, tolerating a plural "s". Names ending in symbols
// (C++, C#) cannot take a trailing \b, so the boundary is relaxed on
// that side.
func compileSkillPattern(name string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(strings.ToLower(name))

	prefix := `\b`
	if !startsWithWordChar(name) {
		prefix = ``
	}

	suffix := `s?\b`
	if !endsWithWordChar(name) {
		suffix = `(?:$|[^\w])`
	}

	return regexp.MustCompile(`(?i)` + prefix + escaped + suffix)
}

func startsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
