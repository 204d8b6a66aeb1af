package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the blog automation tools.
type Config struct {
	// Content store API
	APIBaseURL     string        `json:"api_base_url" validate:"required,url"`
	AuthorID       string        `json:"author_id" validate:"required"`
	PublishTimeout time.Duration `json:"publish_timeout"`

	// OpenAI
	OpenAIKey  string `json:"-" validate:"required"`
	TextModel  string `json:"text_model" validate:"required"`
	ImageModel string `json:"image_model" validate:"required"`

	// Generation
	PostsPerDay int      `json:"posts_per_day" validate:"min=1"`
	Languages   []string `json:"languages" validate:"min=1,dive,oneof=en ar"`

	// Topic cache (optional; empty URL disables it)
	RedisURL string        `json:"redis_url"`
	TopicTTL time.Duration `json:"topic_ttl"`

	// Run log
	RunLogDir string `json:"run_log_dir"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// Load loads configuration from environment variables and validates it.
// A missing OpenAI credential is fatal; everything else has a default.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		APIBaseURL:     getEnv("NEXTJS_API_URL", "https://clicksalesmedia.com/api"),
		AuthorID:       getEnv("BLOG_AUTHOR_ID", "cmbmdeprt000081y34rklazoj"),
		PublishTimeout: getEnvAsDuration("PUBLISH_TIMEOUT", 30*time.Second),

		OpenAIKey:  getEnv("OPENAI_API_KEY", ""),
		TextModel:  getEnv("OPENAI_MODEL", "o4-mini"),
		ImageModel: getEnv("IMAGE_MODEL", "dall-e-3"),

		PostsPerDay: getEnvAsInt("POSTS_PER_DAY", 2),
		Languages:   getEnvAsList("LANGUAGES", "en,ar"),

		RedisURL: getEnv("REDIS_URL", ""),
		TopicTTL: getEnvAsDuration("TOPIC_TTL", 168*time.Hour),

		RunLogDir: getEnv("RUN_LOG_DIR", "."),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsList(name, defaultVal string) []string {
	raw := getEnv(name, defaultVal)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
