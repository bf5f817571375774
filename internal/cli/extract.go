package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const extractPreviewChars = 2000

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text from a resume PDF",
	RunE: func(cmd *cobra.Command, _ []string) error {
		file, _ := cmd.Flags().GetString("file")
		return extract(file)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("file", "f", "", "path to PDF file")
	extractCmd.MarkFlagRequired("file")
}

func extract(file string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}

	content, err := p.pdfParser.ExtractText(file)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 50)

	fmt.Printf("Pages: %d\n", content.PageCount)
	fmt.Printf("Method: %s\n", content.Method)
	fmt.Printf("\n%s\n", rule)
	fmt.Println("EXTRACTED TEXT:")
	fmt.Println(rule)

	if len(content.Text) > extractPreviewChars {
		fmt.Println(content.Text[:extractPreviewChars])
		fmt.Printf("\n... (truncated, %d total characters)\n", len(content.Text))
	} else {
		fmt.Println(content.Text)
	}

	return nil
}
