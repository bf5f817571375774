package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"talentsift/resume-screener/internal/models"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a resume against a job description",
	RunE: func(cmd *cobra.Command, _ []string) error {
		resumePath, _ := cmd.Flags().GetString("resume")
		job, _ := cmd.Flags().GetString("job")
		title, _ := cmd.Flags().GetString("title")
		output, _ := cmd.Flags().GetString("output")

		return screen(resumePath, job, title, output)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("resume", "r", "", "path to resume PDF")
	// No shorthand: -j belongs to the persistent --json flag.
	screenCmd.Flags().String("job", "", "job description text or file path")
	screenCmd.Flags().StringP("title", "t", "Job Position", "job title")
	screenCmd.Flags().StringP("output", "o", "", "output file for results (JSON)")

	screenCmd.MarkFlagRequired("resume")
	screenCmd.MarkFlagRequired("job")
}

func screen(resumePath, job, title, output string) error {
	jobText := job
	if content, err := os.ReadFile(job); err == nil {
		jobText = string(content)
	}

	fmt.Printf("Processing resume: %s\n", resumePath)
	fmt.Printf("Job: %s\n", title)

	p, err := newPipeline()
	if err != nil {
		return err
	}
	result, err := p.screening.ScreenResume(resumePath, jobText, title)
	if err != nil {
		return err
	}

	printMatchSummary(result.Match)

	if output != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		fmt.Printf("\nResults saved to: %s\n", output)
	}

	return nil
}

func printMatchSummary(match *models.MatchResult) {
	rule := strings.Repeat("=", 50)

	fmt.Printf("\n%s\n", rule)
	fmt.Println("MATCH RESULT")
	fmt.Println(rule)
	fmt.Printf("Overall Score: %.0f%%\n", match.OverallScore*100)
	fmt.Printf("Recommendation: %s\n", titleWords(string(match.Recommendation)))
	fmt.Printf("\nSkill Match: %.0f%%\n", match.Subscores.SkillMatch*100)
	fmt.Printf("Semantic Similarity: %.0f%%\n", match.Subscores.SemanticSimilarity*100)

	if len(match.MatchedSkills) > 0 {
		fmt.Printf("\nMatched Skills: %s\n", strings.Join(match.MatchedSkills, ", "))
	}

	if len(match.MissingSkills) > 0 {
		missing := make([]string, 0, len(match.MissingSkills))
		for _, s := range match.MissingSkills {
			missing = append(missing, s.SkillName)
		}
		fmt.Printf("Missing Skills: %s\n", strings.Join(missing, ", "))
	}
}

// titleWords turns "strong-match" into "Strong Match".
func titleWords(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "-", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
