package config

import (
	"os"
	"strconv"
)

// Config holds server-level configuration
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	RedisURI string

	// MLServiceURL points at the semantic-similarity microservice. Empty means
	// the local fallback scorer is used for every answer.
	MLServiceURL string

	UploadDir string
	JWTSecret string

	// Interview pacing constants
	MaxWarmupQuestions    int
	QuestionsPerTopic     int
	ResumeQuestionsTarget int
	MixRoundQuestions     int
}

// Load reads configuration from the environment with development defaults
func Load() *Config {
	return &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		MongoURI:     getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnvOrDefault("MONGO_DB", "interviewerbot"),
		RedisURI:     getEnvOrDefault("REDIS_URI", "localhost:6379"),
		MLServiceURL: os.Getenv("ML_SERVICE_URL"),
		UploadDir:    getEnvOrDefault("UPLOAD_DIR", "uploads"),
		JWTSecret:    getEnvOrDefault("JWT_SECRET", "dev-secret-change-in-production"),

		MaxWarmupQuestions:    getEnvIntOrDefault("MAX_WARMUP_QUESTIONS", 3),
		QuestionsPerTopic:     getEnvIntOrDefault("QUESTIONS_PER_TOPIC", 5),
		ResumeQuestionsTarget: getEnvIntOrDefault("RESUME_QUESTIONS_TARGET", 20),
		MixRoundQuestions:     getEnvIntOrDefault("MIX_ROUND_QUESTIONS", 5),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
