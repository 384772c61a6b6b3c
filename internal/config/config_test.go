package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(lookupFrom(map[string]string{"GEMINI_API_KEY": "secret"}))
	require.NoError(t, err)

	assert.Equal(t, "rally_metrics.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/mlp_stats.csv", cfg.StatsCSVPath)
	assert.Equal(t, DefaultCORSOrigins, cfg.CORSOrigins)
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, 20*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "0 8 * * *", cfg.Refresh.Schedule)
	assert.Equal(t, "America/Los_Angeles", cfg.Refresh.Timezone)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SummaryTTL)
	assert.False(t, cfg.Slack.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(lookupFrom(map[string]string{
		"GEMINI_API_KEY":       "secret",
		"GEMINI_TIMEOUT":       "5s",
		"PORT":                 "9090",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
		"REFRESH_COMMAND":      "python3 scripts/main.py",
		"SLACK_BOT_TOKEN":      "xoxb-1",
		"SLACK_CHANNEL_ID":     "C123",
		"TURSO_PRIMARY_URL":    "libsql://rally.turso.io",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "python3 scripts/main.py", cfg.Refresh.Command)
	assert.Equal(t, "libsql://rally.turso.io", cfg.Turso.PrimaryURL)
	assert.True(t, cfg.Slack.Enabled())
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := load(lookupFrom(map[string]string{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_BadDuration(t *testing.T) {
	_, err := load(lookupFrom(map[string]string{
		"GEMINI_API_KEY": "secret",
		"GEMINI_TIMEOUT": "twenty",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_TIMEOUT")
}
