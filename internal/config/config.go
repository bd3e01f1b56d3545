package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// app config, loaded once in main and passed down
type Config struct {
	Port        string
	MongoURI    string
	MongoDBName string

	AllowedOrigins []string
	AppBaseURL     string

	// AI provider; empty disables question generation and answer scoring
	AIProvider string

	// dashboard liveness sweep interval
	PingInterval time.Duration

	ReportExportEnabled  bool
	ReportExportSchedule string
	ReportExportDir      string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "interviewbit"),

		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		AppBaseURL:     getEnv("APP_BASE_URL", "http://localhost:5173"),

		AIProvider: getEnv("AI_PROVIDER", "gemini"),

		PingInterval: getEnvDuration("WS_PING_INTERVAL", 30*time.Second),

		ReportExportEnabled:  getEnvBool("REPORT_EXPORT_ENABLED", false),
		ReportExportSchedule: getEnv("REPORT_EXPORT_SCHEDULE", "0 2 * * *"),
		ReportExportDir:      getEnv("REPORT_EXPORT_DIR", "./exports"),
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.MongoURI == "" {
		return errors.New("MONGO_URI must not be empty")
	}
	if cfg.AIProvider != "" && cfg.AIProvider != "gemini" {
		return errors.New("unsupported AI provider: " + cfg.AIProvider + ". Currently supported: gemini")
	}
	if cfg.PingInterval < time.Second {
		return errors.New("WS_PING_INTERVAL must be at least 1s")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
