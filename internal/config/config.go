package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Matching MatchingConfig
	Limits   LimitsConfig
	Taxonomy TaxonomyConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type MatchingConfig struct {
	SkillMatchWeight         float64
	SemanticSimilarityWeight float64
	MaxJobsPerComparison     int
	MaxResumesPerBatch       int
	MaxBatchSizeBytes        int64
}

type LimitsConfig struct {
	MaxResumePages     int
	MaxExtractedChars  int
	MinTextLength      int
	MinSkillConfidence float64
}

type TaxonomyConfig struct {
	TaxonomyPath  string
	SynonymsPath  string
	ResourcesPath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 5*1024*1024),
		},
		Matching: MatchingConfig{
			SkillMatchWeight:         getEnvAsFloat("SKILL_MATCH_WEIGHT", 0.5),
			SemanticSimilarityWeight: getEnvAsFloat("SEMANTIC_SIMILARITY_WEIGHT", 0.5),
			MaxJobsPerComparison:     getEnvAsInt("MAX_JOBS_PER_COMPARISON", 5),
			MaxResumesPerBatch:       getEnvAsInt("MAX_RESUMES_PER_BATCH", 10),
			MaxBatchSizeBytes:        getEnvAsInt64("MAX_BATCH_SIZE_BYTES", 50*1024*1024),
		},
		Limits: LimitsConfig{
			MaxResumePages:     getEnvAsInt("MAX_RESUME_PAGES", 10),
			MaxExtractedChars:  getEnvAsInt("MAX_EXTRACTED_TEXT_LENGTH", 50000),
			MinTextLength:      getEnvAsInt("MIN_TEXT_LENGTH", 100),
			MinSkillConfidence: getEnvAsFloat("MIN_SKILL_CONFIDENCE", 0.7),
		},
		Taxonomy: TaxonomyConfig{
			TaxonomyPath:  getEnv("SKILLS_TAXONOMY_PATH", ""),
			SynonymsPath:  getEnv("SKILL_SYNONYMS_PATH", ""),
			ResourcesPath: getEnv("LEARNING_RESOURCES_PATH", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
