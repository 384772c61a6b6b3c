package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// DefaultCORSOrigins are the web client origins allowed when CORS_ALLOWED_ORIGINS is unset.
var DefaultCORSOrigins = []string{"http://localhost:3000", "https://rally-metrics.vercel.app"}

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := load(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return cfg
}

func load(lookup func(key string) (string, bool)) (Config, error) {
	var missing []string
	// A helper function to get a required env var. Missing keys are reported together.
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		missing = append(missing, key)
		return ""
	}
	getEnvDefault := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}
	var badDuration error
	getDuration := func(key string, fallback time.Duration) time.Duration {
		raw, ok := lookup(key)
		if !ok || raw == "" {
			return fallback
		}
		d, err := time.ParseDuration(raw)
		if err != nil && badDuration == nil {
			badDuration = fmt.Errorf("environment variable %s is not a duration: %w", key, err)
		}
		return d
	}

	cfg := Config{
		DBName:       getEnvDefault("DB_NAME", "rally_metrics.db"),
		Port:         getEnvDefault("PORT", "8080"),
		StatsCSVPath: getEnvDefault("STATS_CSV_PATH", "data/mlp_stats.csv"),
		CORSOrigins:  splitList(getEnvDefault("CORS_ALLOWED_ORIGINS", strings.Join(DefaultCORSOrigins, ","))),
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY"),
			BaseURL: getEnvDefault("GEMINI_BASE_URL", ""),
			Model:   getEnvDefault("GEMINI_MODEL", ""),
			Timeout: getDuration("GEMINI_TIMEOUT", 20*time.Second),
		},
		Refresh: RefreshConfig{
			Schedule:       getEnvDefault("REFRESH_SCHEDULE", "0 8 * * *"),
			Timezone:       getEnvDefault("REFRESH_TIMEZONE", "America/Los_Angeles"),
			Command:        getEnvDefault("REFRESH_COMMAND", ""),
			CommandTimeout: getDuration("REFRESH_COMMAND_TIMEOUT", 10*time.Minute),
		},
		Redis: RedisConfig{
			URL:        getEnvDefault("REDIS_URL", ""),
			SummaryTTL: getDuration("SUMMARY_CACHE_TTL", 24*time.Hour),
		},
		Slack: SlackConfig{
			Token:     getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvDefault("SLACK_CHANNEL_ID", ""),
		},
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if badDuration != nil {
		return Config{}, badDuration
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
