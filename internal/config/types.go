package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName       string
	Port         string
	StatsCSVPath string
	CORSOrigins  []string
	Turso        TursoConfig
	Gemini       GeminiConfig
	Refresh      RefreshConfig
	Redis        RedisConfig
	Slack        SlackConfig
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}
type RefreshConfig struct {
	Schedule       string
	Timezone       string
	Command        string
	CommandTimeout time.Duration
}
type RedisConfig struct {
	URL        string
	SummaryTTL time.Duration
}
type SlackConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether Slack notifications are configured.
func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}
