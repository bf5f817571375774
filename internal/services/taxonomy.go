package services

import (
	"encoding/json"
	"os"
	"strings"

	"go.uber.org/zap"

	"talentsift/resume-screener/internal/models"
)

// TaxonomyService owns the skill taxonomy and the synonym table. Its
// Normalize method is the single matching primitive shared by the
// skill matcher and the gap analysis; nothing else resolves synonyms.
type TaxonomyService interface {
	// Normalize maps an alternate spelling or abbreviation to its
	// canonical skill name. Identity when no synonym is known.
	Normalize(name string) string
	// NormalizeKey is Normalize followed by lowercasing, the exact
	// form both matching passes compare on.
	NormalizeKey(name string) string
	Skills() map[models.SkillCategory][]string
	Synonyms() map[string]string
}

type taxonomyService struct {
	skills        map[models.SkillCategory][]string
	synonyms      map[string]string
	synonymsByKey map[string]string
	logger        *zap.Logger
}

// NewTaxonomyService loads the taxonomy and synonym table from the
// given JSON files, falling back to the built-in tables when a path is
// empty or unreadable.
func NewTaxonomyService(taxonomyPath, synonymsPath string, logger *zap.Logger) TaxonomyService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &taxonomyService{
		skills:   defaultSkillTaxonomy(),
		synonyms: defaultSkillSynonyms(),
		logger:   logger,
	}

	if taxonomyPath != "" {
		var loaded map[models.SkillCategory][]string
		if err := readJSONFile(taxonomyPath, &loaded); err != nil {
			logger.Warn("falling back to built-in taxonomy",
				zap.String("path", taxonomyPath), zap.Error(err))
		} else {
			s.skills = loaded
		}
	}

	if synonymsPath != "" {
		var loaded map[string]string
		if err := readJSONFile(synonymsPath, &loaded); err != nil {
			logger.Warn("falling back to built-in synonyms",
				zap.String("path", synonymsPath), zap.Error(err))
		} else {
			s.synonyms = loaded
		}
	}

	s.synonymsByKey = make(map[string]string, len(s.synonyms))
	for alias, canonical := range s.synonyms {
		s.synonymsByKey[strings.ToLower(alias)] = canonical
	}

	return s
}

func (s *taxonomyService) Normalize(name string) string {
	if canonical, ok := s.synonyms[name]; ok {
		return canonical
	}
	if canonical, ok := s.synonymsByKey[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

func (s *taxonomyService) NormalizeKey(name string) string {
	return strings.ToLower(s.Normalize(name))
}

func (s *taxonomyService) Skills() map[models.SkillCategory][]string {
	return s.skills
}

func (s *taxonomyService) Synonyms() map[string]string {
	return s.synonyms
}

func readJSONFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func defaultSkillTaxonomy() map[models.SkillCategory][]string {
	return map[models.SkillCategory][]string{
		models.CategoryTechnical: {
			"Python", "JavaScript", "Java", "C++", "C#", "Go", "SQL", "HTML", "CSS",
			"React", "Angular", "Vue", "Node.js", "Django", "Flask", "FastAPI",
			"Machine Learning", "Deep Learning", "NLP", "Computer Vision",
			"TensorFlow", "PyTorch", "Keras", "scikit-learn", "pandas", "numpy",
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git", "Linux",
			"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch",
			"REST API", "GraphQL", "Microservices", "CI/CD", "Agile", "Scrum",
		},
		models.CategorySoft: {
			"Communication", "Leadership", "Teamwork", "Problem Solving",
			"Critical Thinking", "Time Management", "Adaptability", "Creativity",
			"Collaboration", "Presentation", "Negotiation", "Mentoring",
			"Project Management", "Decision Making", "Conflict Resolution",
		},
		models.CategoryDomain: {
			"Finance", "Healthcare", "E-commerce", "Banking", "Insurance",
			"Retail", "Manufacturing", "Logistics", "Education", "Marketing",
			"Sales", "HR", "Legal", "Real Estate", "Consulting",
		},
	}
}

func defaultSkillSynonyms() map[string]string {
	return map[string]string{
		"JS":                    "JavaScript",
		"TS":                    "TypeScript",
		"ReactJS":               "React",
		"React.js":              "React",
		"AngularJS":             "Angular",
		"Vue.js":                "Vue",
		"VueJS":                 "Vue",
		"NodeJS":                "Node.js",
		"Node":                  "Node.js",
		"K8s":                   "Kubernetes",
		"ML":                    "Machine Learning",
		"DL":                    "Deep Learning",
		"Postgres":              "PostgreSQL",
		"Mongo":                 "MongoDB",
		"Amazon Web Services":   "AWS",
		"Google Cloud":          "GCP",
		"Google Cloud Platform": "GCP",
		"Golang":                "Go",
		"Sklearn":               "scikit-learn",
		"TF":                    "TensorFlow",
		"CICD":                  "CI/CD",
		"RESTful API":           "REST API",
		"REST":                  "REST API",
	}
}
