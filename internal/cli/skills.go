package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Extract skills from text",
	RunE: func(cmd *cobra.Command, _ []string) error {
		text, _ := cmd.Flags().GetString("text")
		file, _ := cmd.Flags().GetString("file")
		return skills(text, file)
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)

	skillsCmd.Flags().StringP("text", "t", "", "text to analyze")
	skillsCmd.Flags().StringP("file", "f", "", "file containing text")
}

func skills(text, file string) error {
	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}
		text = string(content)
	}
	if text == "" {
		return errors.New("provide --text or --file")
	}

	p, err := newPipeline()
	if err != nil {
		return err
	}
	found := p.extractor.ExtractSkills(text)

	// Highest confidence first, name as tiebreaker.
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Confidence != found[j].Confidence {
			return found[i].Confidence > found[j].Confidence
		}
		return found[i].SkillName < found[j].SkillName
	})

	fmt.Printf("Found %d skills:\n\n", len(found))
	for _, skill := range found {
		fmt.Printf("  %s (%s): %.0f%%\n", skill.SkillName, skill.Category, skill.Confidence*100)
	}

	return nil
}
