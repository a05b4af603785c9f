package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EngineKeyword = "keyword"
	EngineGemini  = "gemini"
)

type Config struct {
	Server        ServerConfig
	Analyzer      AnalyzerConfig
	Qdrant        QdrantConfig
	Gemini        GeminiConfig
	Upload        UploadConfig
	Session       SessionConfig
	Notifications NotificationConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AnalyzerConfig struct {
	Engine  string
	Timeout time.Duration
	// AnalyzeLimit caps analysis submissions per client per minute.
	AnalyzeLimit int
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

// Enabled reports whether guideline retrieval should be wired in.
func (q QdrantConfig) Enabled() bool {
	return q.URL != ""
}

type GeminiConfig struct {
	APIKey            string
	Model             string
	EmbedModel        string
	RequestsPerMinute int
	RetryMaxAttempts  int
	RetryDelay        time.Duration
}

type UploadConfig struct {
	MaxFileSize int64
}

type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type NotificationConfig struct {
	Buffer int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Analyzer: AnalyzerConfig{
			Engine:       strings.ToLower(getEnv("ANALYZER_ENGINE", EngineKeyword)),
			Timeout:      getEnvAsDuration("ANALYSIS_TIMEOUT", "30s"),
			AnalyzeLimit: getEnvAsInt("ANALYZE_RATE_LIMIT", 20),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "resume_matcher_guidelines"),
		},
		Gemini: GeminiConfig{
			APIKey:            getEnv("GEMINI_API_KEY", ""),
			Model:             getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			EmbedModel:        getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
			RequestsPerMinute: getEnvAsInt("GEMINI_REQUESTS_PER_MINUTE", 30),
			RetryMaxAttempts:  getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			RetryDelay:        getEnvAsDuration("RETRY_DELAY", "1s"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Session: SessionConfig{
			IdleTTL:       getEnvAsDuration("SESSION_IDLE_TTL", "30m"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "1m"),
		},
		Notifications: NotificationConfig{
			Buffer: getEnvAsInt("NOTIFICATION_BUFFER", 256),
		},
	}
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Analyzer.Engine {
	case EngineKeyword:
	case EngineGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when ANALYZER_ENGINE=%s", EngineGemini)
		}
	default:
		return fmt.Errorf("unknown ANALYZER_ENGINE %q (want %s or %s)", c.Analyzer.Engine, EngineKeyword, EngineGemini)
	}

	if c.Analyzer.Timeout <= 0 {
		return fmt.Errorf("ANALYSIS_TIMEOUT must be positive, got %s", c.Analyzer.Timeout)
	}
	if c.Gemini.RetryDelay < 0 {
		return fmt.Errorf("RETRY_DELAY must not be negative, got %s", c.Gemini.RetryDelay)
	}
	if c.Session.IdleTTL <= 0 || c.Session.SweepInterval <= 0 {
		return fmt.Errorf("session durations must be positive")
	}
	return nil
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
