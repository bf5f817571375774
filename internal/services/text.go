package services

import (
	"regexp"
	"strings"

	"talentsift/resume-screener/internal/models"
)

// CleanText normalizes text extracted from a PDF: collapses runs of
// spaces and tabs, trims every line, and squeezes blank-line runs down
// to a single separator.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = regexp.MustCompile(`[ \t]+`).ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
		regexp.MustCompile(`\+?[0-9]{1,3}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}`),
		regexp.MustCompile(`\b[0-9]{10,12}\b`),
	}

	nonDigitPattern = regexp.MustCompile(`[^\d+]`)
)

// ParseContactInfo extracts structured candidate fields from cleaned
// résumé text using pattern matching.
func ParseContactInfo(text string) models.ContactInfo {
	info := models.ContactInfo{Name: "Unknown"}

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}
	if m := extractPhone(text); m != "" {
		info.Phone = m
	}
	if m := linkedinPattern.FindString(text); m != "" {
		info.LinkedIn = m
	}
	if m := githubPattern.FindString(text); m != "" {
		info.GitHub = m
	}
	if name := extractName(text); name != "" {
		info.Name = name
	}

	return info
}

func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		match := pattern.FindString(text)
		if match == "" {
			continue
		}
		if len(nonDigitPattern.ReplaceAllString(match, "")) >= 10 {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

// extractName takes the first plausible line: short, mostly letters,
// no contact markers. Résumés conventionally start with the name.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 60 {
			return ""
		}
		lower := strings.ToLower(line)
		if strings.ContainsAny(line, "@0123456789") ||
			strings.Contains(lower, "resume") ||
			strings.Contains(lower, "curriculum") {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 1 && len(words) <= 4 {
			return line
		}
		return ""
	}
	return ""
}
