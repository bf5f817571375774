package services

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/models"
)

const defaultMaxLearningSkills = 5

// LearningService builds a learning path for the skills a candidate is
// missing, ordered by requirement importance.
type LearningService interface {
	GenerateLearningPlan(missing []models.SkillRequirement, maxSkills int, difficulty, resumeID, jobID string) *models.LearningPlan
	FindCoursesForSkill(skillName, difficulty string, maxCourses int) []models.Course
}

type learningService struct {
	taxonomy  TaxonomyService
	resources map[string][]models.Course
	logger    *zap.Logger
}

// NewLearningService loads the course catalog from resourcesPath when
// given, falling back to the built-in catalog.
func NewLearningService(taxonomy TaxonomyService, resourcesPath string, logger *zap.Logger) LearningService {
	if logger == nil {
		logger = zap.NewNop()
	}

	resources := defaultLearningResources
	if resourcesPath != "" {
		loaded := map[string][]models.Course{}
		if err := readJSONFile(resourcesPath, &loaded); err != nil {
			logger.Warn("could not load learning resources, using built-in catalog",
				zap.String("path", resourcesPath),
				zap.Error(err))
		} else {
			resources = loaded
		}
	}

	return &learningService{
		taxonomy:  taxonomy,
		resources: resources,
		logger:    logger,
	}
}

func (l *learningService) GenerateLearningPlan(missing []models.SkillRequirement, maxSkills int, difficulty, resumeID, jobID string) *models.LearningPlan {
	if maxSkills <= 0 {
		maxSkills = defaultMaxLearningSkills
	}

	order := map[models.SkillImportance]int{
		models.ImportanceCritical:   0,
		models.ImportancePreferred:  1,
		models.ImportanceNiceToHave: 2,
	}
	sorted := make([]models.SkillRequirement, len(missing))
	copy(sorted, missing)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, ok := order[sorted[i].Importance]
		if !ok {
			ri = 3
		}
		rj, ok := order[sorted[j].Importance]
		if !ok {
			rj = 3
		}
		return ri < rj
	})
	if len(sorted) > maxSkills {
		sorted = sorted[:maxSkills]
	}

	skills := []models.SkillLearningPlan{}
	totalWeeks := 0

	for _, req := range sorted {
		courses := l.FindCoursesForSkill(req.SkillName, difficulty, 3)
		for i := range courses {
			courses[i].WhyRecommended = whyRecommended(courses[i])
		}

		skills = append(skills, models.SkillLearningPlan{
			SkillName:          req.SkillName,
			Importance:         req.Importance,
			CurrentProficiency: "none",
			RecommendedCourses: courses,
		})

		if len(courses) > 0 && !courses[0].IsFallback {
			totalWeeks += durationInWeeks(courses[0].Duration)
		}
	}

	return &models.LearningPlan{
		LearningPlanID:     uuid.New().String(),
		ResumeID:           resumeID,
		JobID:              jobID,
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
		TotalSkillsToLearn: len(skills),
		EstimatedTotalTime: formatTotalDuration(totalWeeks),
		Skills:             skills,
		Milestones:         buildMilestones(skills),
	}
}

// FindCoursesForSkill resolves a skill against the catalog through the
// synonym map, then case-insensitive and partial key matches, and
// returns a generic fallback resource when nothing fits.
func (l *learningService) FindCoursesForSkill(skillName, difficulty string, maxCourses int) []models.Course {
	if maxCourses <= 0 {
		maxCourses = 3
	}

	normalized := skillName
	if l.taxonomy != nil {
		normalized = l.taxonomy.Normalize(skillName)
	}

	courses, ok := l.resources[normalized]
	if !ok {
		courses, ok = l.resources[skillName]
	}
	if !ok {
		for key, c := range l.resources {
			if strings.EqualFold(key, skillName) || strings.EqualFold(key, normalized) {
				courses, ok = c, true
				break
			}
		}
	}
	if !ok {
		skillLower := strings.ToLower(skillName)
		for key, c := range l.resources {
			keyLower := strings.ToLower(key)
			if strings.Contains(keyLower, skillLower) || strings.Contains(skillLower, keyLower) {
				courses, ok = c, true
				break
			}
		}
	}
	if !ok {
		return []models.Course{fallbackResource(skillName)}
	}

	if difficulty != "" {
		filtered := []models.Course{}
		for _, c := range courses {
			if c.Difficulty == difficulty {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			courses = filtered
		}
	}

	out := make([]models.Course, len(courses))
	copy(out, courses)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })

	if len(out) > maxCourses {
		out = out[:maxCourses]
	}
	return out
}

func whyRecommended(c models.Course) string {
	switch {
	case c.Rating >= 4.8:
		return "Highly rated by learners"
	case c.Cost == "free":
		return "Free and comprehensive"
	case c.Certificate:
		return "Includes certificate"
	default:
		return "Recommended for skill development"
	}
}

func fallbackResource(skillName string) models.Course {
	return models.Course{
		Title:      fmt.Sprintf("Search '%s' tutorials", skillName),
		Provider:   "YouTube",
		URL:        "https://www.youtube.com/results?search_query=" + url.QueryEscape(skillName+" tutorial"),
		Difficulty: "varies",
		Duration:   "self-paced",
		Cost:       "free",
		Rating:     4.0,
		IsFallback: true,
	}
}

// durationInWeeks parses strings like "4 weeks" or "2 months" and
// estimates unparseable values conservatively.
func durationInWeeks(duration string) int {
	lower := strings.ToLower(duration)
	fields := strings.Fields(lower)

	n := 0
	if len(fields) > 0 {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, fields[0])
		n, _ = strconv.Atoi(digits)
	}

	switch {
	case strings.Contains(lower, "week"):
		if n == 0 {
			return 4
		}
		return n
	case strings.Contains(lower, "month"):
		if n == 0 {
			return 4
		}
		return n * 4
	default:
		return 2
	}
}

func formatTotalDuration(weeks int) string {
	months := weeks / 4
	switch {
	case weeks <= 4:
		return "1 month"
	case weeks <= 12:
		return fmt.Sprintf("%d-%d months", months, months+1)
	default:
		return fmt.Sprintf("%d months", months)
	}
}

func buildMilestones(skills []models.SkillLearningPlan) []models.Milestone {
	milestones := []models.Milestone{}
	for i, skill := range skills {
		if len(skill.RecommendedCourses) == 0 {
			continue
		}
		milestones = append(milestones, models.Milestone{
			Month:           i + 1,
			Focus:           skill.SkillName + " fundamentals",
			Courses:         []string{skill.RecommendedCourses[0].Title},
			ExpectedOutcome: milestoneOutcome(skill.SkillName),
		})
	}
	return milestones
}

func milestoneOutcome(skillName string) string {
	lower := strings.ToLower(skillName)
	switch {
	case containsAny(lower, []string{"python", "javascript", "java", "programming", "golang"}):
		return fmt.Sprintf("Write basic %s programs", skillName)
	case containsAny(lower, []string{"machine learning", "deep learning", "ml", "ai"}):
		return "Build simple ML models"
	case containsAny(lower, []string{"react", "angular", "vue", "frontend"}):
		return "Create interactive web components"
	case containsAny(lower, []string{"docker", "kubernetes", "devops", "aws"}):
		return "Deploy applications to cloud"
	case containsAny(lower, []string{"communication", "leadership", "teamwork"}):
		return fmt.Sprintf("Apply %s skills in workplace", skillName)
	default:
		return fmt.Sprintf("Build foundational knowledge in %s", skillName)
	}
}

// defaultLearningResources is the built-in course catalog, used when no
// external catalog file is configured.
var defaultLearningResources = map[string][]models.Course{
	"Python": {
		{Title: "Python for Everybody", Provider: "Coursera", URL: "https://www.coursera.org/specializations/python", Difficulty: "beginner", Duration: "8 weeks", Cost: "free to audit", Certificate: true, Rating: 4.8},
		{Title: "Automate the Boring Stuff with Python", Provider: "Udemy", URL: "https://www.udemy.com/course/automate/", Difficulty: "beginner", Duration: "6 weeks", Cost: "paid", Certificate: true, Rating: 4.6},
		{Title: "Intermediate Python", Provider: "DataCamp", URL: "https://www.datacamp.com/courses/intermediate-python", Difficulty: "intermediate", Duration: "4 weeks", Cost: "paid", Certificate: true, Rating: 4.5},
	},
	"JavaScript": {
		{Title: "JavaScript Algorithms and Data Structures", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", Difficulty: "beginner", Duration: "10 weeks", Cost: "free", Certificate: true, Rating: 4.7},
		{Title: "The Complete JavaScript Course", Provider: "Udemy", URL: "https://www.udemy.com/course/the-complete-javascript-course/", Difficulty: "beginner", Duration: "8 weeks", Cost: "paid", Certificate: true, Rating: 4.7},
		{Title: "JavaScript: The Advanced Concepts", Provider: "Udemy", URL: "https://www.udemy.com/course/advanced-javascript-concepts/", Difficulty: "advanced", Duration: "5 weeks", Cost: "paid", Certificate: true, Rating: 4.8},
	},
	"TypeScript": {
		{Title: "Understanding TypeScript", Provider: "Udemy", URL: "https://www.udemy.com/course/understanding-typescript/", Difficulty: "beginner", Duration: "5 weeks", Cost: "paid", Certificate: true, Rating: 4.7},
		{Title: "TypeScript Handbook", Provider: "Official Docs", URL: "https://www.typescriptlang.org/docs/handbook/intro.html", Difficulty: "intermediate", Duration: "2 weeks", Cost: "free", Certificate: false, Rating: 4.6},
	},
	"Go": {
		{Title: "A Tour of Go", Provider: "Official Docs", URL: "https://go.dev/tour/", Difficulty: "beginner", Duration: "2 weeks", Cost: "free", Certificate: false, Rating: 4.8},
		{Title: "Learn Go with Tests", Provider: "GitBook", URL: "https://quii.gitbook.io/learn-go-with-tests/", Difficulty: "intermediate", Duration: "4 weeks", Cost: "free", Certificate: false, Rating: 4.7},
	},
	"Java": {
		{Title: "Java Programming and Software Engineering Fundamentals", Provider: "Coursera", URL: "https://www.coursera.org/specializations/java-programming", Difficulty: "beginner", Duration: "12 weeks", Cost: "free to audit", Certificate: true, Rating: 4.6},
		{Title: "Java Programming Masterclass", Provider: "Udemy", URL: "https://www.udemy.com/course/java-the-complete-java-developer-course/", Difficulty: "beginner", Duration: "10 weeks", Cost: "paid", Certificate: true, Rating: 4.6},
	},
	"React": {
		{Title: "React - The Complete Guide", Provider: "Udemy", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/", Difficulty: "beginner", Duration: "6 weeks", Cost: "paid", Certificate: true, Rating: 4.7},
		{Title: "Full Stack Open", Provider: "University of Helsinki", URL: "https://fullstackopen.com/en/", Difficulty: "intermediate", Duration: "12 weeks", Cost: "free", Certificate: true, Rating: 4.9},
		{Title: "React Official Tutorial", Provider: "Official Docs", URL: "https://react.dev/learn", Difficulty: "beginner", Duration: "2 weeks", Cost: "free", Certificate: false, Rating: 4.5},
	},
	"Angular": {
		{Title: "Angular - The Complete Guide", Provider: "Udemy", URL: "https://www.udemy.com/course/the-complete-guide-to-angular-2/", Difficulty: "beginner", Duration: "8 weeks", Cost: "paid", Certificate: true, Rating: 4.7},
	},
	"Vue": {
		{Title: "Vue - The Complete Guide", Provider: "Udemy", URL: "https://www.udemy.com/course/vuejs-2-the-complete-guide/", Difficulty: "beginner", Duration: "6 weeks", Cost: "paid", Certificate: true, Rating: 4.7},
	},
	"Node.js": {
		{Title: "Node.js, Express, MongoDB & More", Provider: "Udemy", URL: "https://www.udemy.com/course/nodejs-express-mongodb-bootcamp/", Difficulty: "intermediate", Duration: "8 weeks", Cost: "paid", Certificate: true, Rating: 4.7},
	},
	"SQL": {
		{Title: "SQL for Data Science", Provider: "Coursera", URL: "https://www.coursera.org/learn/sql-for-data-science", Difficulty: "beginner", Duration: "4 weeks", Cost: "free to audit", Certificate: true, Rating: 4.6},
		{Title: "The Complete SQL Bootcamp", Provider: "Udemy", URL: "https://www.udemy.com/course/the-complete-sql-bootcamp/", Difficulty: "beginner", Duration: "4 weeks", Cost: "paid", Certificate: true, Rating: 4.7},
	},
	"PostgreSQL": {
		{Title: "PostgreSQL for Everybody", Provider: "Coursera", URL: "https://www.coursera.org/specializations/postgresql-for-everybody", Difficulty: "intermediate", Duration: "8 weeks", Cost: "free to audit", Certificate: true, Rating: 4.7},
	},
	"MongoDB": {
		{Title: "MongoDB University M001", Provider: "MongoDB University", URL: "https://learn.mongodb.com/", Difficulty: "beginner", Duration: "3 weeks", Cost: "free", Certificate: true, Rating: 4.6},
	},
	"Docker": {
		{Title: "Docker Mastery", Provider: "Udemy", URL: "https://www.udemy.com/course/docker-mastery/", Difficulty: "beginner", Duration: "4 weeks", Cost: "paid", Certificate: true, Rating: 4.7},
		{Title: "Docker Getting Started", Provider: "Official Docs", URL: "https://docs.docker.com/get-started/", Difficulty: "beginner", Duration: "1 week", Cost: "free", Certificate: false, Rating: 4.5},
	},
	"Kubernetes": {
		{Title: "Kubernetes for the Absolute Beginners", Provider: "Udemy", URL: "https://www.udemy.com/course/learn-kubernetes/", Difficulty: "beginner", Duration: "3 weeks", Cost: "paid", Certificate: true, Rating: 4.6},
		{Title: "Kubernetes Basics", Provider: "Official Docs", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/", Difficulty: "beginner", Duration: "1 week", Cost: "free", Certificate: false, Rating: 4.4},
	},
	"AWS": {
		{Title: "AWS Cloud Practitioner Essentials", Provider: "AWS Skill Builder", URL: "https://explore.skillbuilder.aws/learn", Difficulty: "beginner", Duration: "2 weeks", Cost: "free", Certificate: false, Rating: 4.6},
		{Title: "Ultimate AWS Certified Solutions Architect Associate", Provider: "Udemy", URL: "https://www.udemy.com/course/aws-certified-solutions-architect-associate-saa-c03/", Difficulty: "intermediate", Duration: "8 weeks", Cost: "paid", Certificate: true, Rating: 4.7},
	},
	"Terraform": {
		{Title: "HashiCorp Terraform Associate Prep", Provider: "Udemy", URL: "https://www.udemy.com/course/terraform-beginner-to-advanced/", Difficulty: "intermediate", Duration: "4 weeks", Cost: "paid", Certificate: true, Rating: 4.6},
	},
	"Machine Learning": {
		{Title: "Machine Learning Specialization", Provider: "Coursera", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Difficulty: "beginner", Duration: "12 weeks", Cost: "free to audit", Certificate: true, Rating: 4.9},
		{Title: "Hands-On Machine Learning", Provider: "O'Reilly", URL: "https://www.oreilly.com/library/view/hands-on-machine-learning/9781098125967/", Difficulty: "intermediate", Duration: "10 weeks", Cost: "paid", Certificate: false, Rating: 4.8},
	},
	"Deep Learning": {
		{Title: "Deep Learning Specialization", Provider: "Coursera", URL: "https://www.coursera.org/specializations/deep-learning", Difficulty: "intermediate", Duration: "16 weeks", Cost: "free to audit", Certificate: true, Rating: 4.9},
	},
	"Communication": {
		{Title: "Improving Communication Skills", Provider: "Coursera", URL: "https://www.coursera.org/learn/wharton-communication-skills", Difficulty: "beginner", Duration: "4 weeks", Cost: "free to audit", Certificate: true, Rating: 4.6},
	},
	"Leadership": {
		{Title: "Leading People and Teams", Provider: "Coursera", URL: "https://www.coursera.org/specializations/leading-teams", Difficulty: "beginner", Duration: "8 weeks", Cost: "free to audit", Certificate: true, Rating: 4.7},
	},
	"Project Management": {
		{Title: "Google Project Management Certificate", Provider: "Coursera", URL: "https://www.coursera.org/professional-certificates/google-project-management", Difficulty: "beginner", Duration: "24 weeks", Cost: "paid", Certificate: true, Rating: 4.8},
	},
}
