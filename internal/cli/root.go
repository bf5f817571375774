package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"talentsift/resume-screener/internal/config"
	"talentsift/resume-screener/internal/logger"
	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

const app = "screener"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "screener matches resume PDFs against job descriptions",
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// pipeline assembles the screening stack the same way the API server
// does, minus the HTTP layer.
type pipeline struct {
	screening services.ScreeningService
	pdfParser services.PDFParserService
	extractor services.SkillExtractorService
	explainer services.ExplainerService
}

func newPipeline() (*pipeline, error) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	cfg := config.Load()

	taxonomy := services.NewTaxonomyService(
		cfg.Taxonomy.TaxonomyPath,
		cfg.Taxonomy.SynonymsPath,
		logger.Named(zlog, "taxonomy"),
	)
	vectorizer := services.NewHashingVectorizer()
	matcher := services.NewMatcherService(taxonomy, logger.Named(zlog, "matcher"))
	explainer := services.NewExplainerService(taxonomy)

	pdfParser := services.NewPDFParserService(services.ExtractionLimits{
		MaxFileSizeBytes: cfg.Storage.MaxFileSize,
		MaxPages:         cfg.Limits.MaxResumePages,
		MaxTextChars:     cfg.Limits.MaxExtractedChars,
	})
	extractor := services.NewSkillExtractorService(
		taxonomy,
		cfg.Limits.MinSkillConfidence,
		cfg.Limits.MinTextLength,
		logger.Named(zlog, "extractor"),
	)

	screening := services.NewScreeningService(
		pdfParser,
		vectorizer,
		extractor,
		matcher,
		explainer,
		models.ScoreWeights{
			SkillMatch:         cfg.Matching.SkillMatchWeight,
			SemanticSimilarity: cfg.Matching.SemanticSimilarityWeight,
		},
		logger.Named(zlog, "screening"),
	)

	return &pipeline{
		screening: screening,
		pdfParser: pdfParser,
		extractor: extractor,
		explainer: explainer,
	}, nil
}
